// Package config holds server configuration, merged from defaults, an
// optional YAML file, and command-line flags (flags win).
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the server configuration.
type Config struct {
	Port                 int    `yaml:"port"`
	MOTD                 string `yaml:"motd"`
	MaxPlayers           int    `yaml:"max_players"`
	ViewDistance         int    `yaml:"view_distance"` // chunk radius streamed on login
	CompressionThreshold int    `yaml:"compression_threshold"` // bodies this size or larger are deflated; -1 disables
	DataDir              string `yaml:"data_dir"`      // registry data directory; empty = built-in registry
	LogLevel             string `yaml:"log_level"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:                 25565,
		MOTD:                 "A voxelwire server",
		MaxPlayers:           20,
		ViewDistance:         2,
		CompressionThreshold: -1,
		LogLevel:             "info",
	}
}

// Load reads a YAML config file into a fresh Config on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	return cfg, nil
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["port"] {
		cfg.Port = fromFile.Port
	}
	if !explicitFlags["motd"] {
		cfg.MOTD = fromFile.MOTD
	}
	if !explicitFlags["max-players"] {
		cfg.MaxPlayers = fromFile.MaxPlayers
	}
	if !explicitFlags["view-distance"] {
		cfg.ViewDistance = fromFile.ViewDistance
	}
	if !explicitFlags["compression-threshold"] {
		cfg.CompressionThreshold = fromFile.CompressionThreshold
	}
	if !explicitFlags["data-dir"] {
		cfg.DataDir = fromFile.DataDir
	}
	if !explicitFlags["log"] {
		cfg.LogLevel = fromFile.LogLevel
	}
}
