package gamedata

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// PrismarineJS data files, as fetched by cmd/dmd.
const (
	blocksFile = "blocks.json"
	biomesFile = "biomes.json"
)

type blockEntry struct {
	Name         string `json:"name"`
	MinStateID   int32  `json:"minStateId"`
	MaxStateID   int32  `json:"maxStateId"`
	DefaultState int32  `json:"defaultState"`
}

type biomeEntry struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
}

// LoadDir builds a Registry from a directory of downloaded data files.
// Block names resolve to their default state ID.
func LoadDir(dir string) (*Registry, error) {
	var blocks []blockEntry
	if err := readJSON(filepath.Join(dir, blocksFile), &blocks); err != nil {
		return nil, err
	}

	var biomes []biomeEntry
	if err := readJSON(filepath.Join(dir, biomesFile), &biomes); err != nil {
		return nil, err
	}

	reg := &Registry{
		blockStates: make(map[string]int32, len(blocks)),
		biomes:      make(map[string]int32, len(biomes)),
	}
	for _, b := range blocks {
		if b.Name == "" {
			return nil, fmt.Errorf("%s: block entry with empty name", blocksFile)
		}
		reg.blockStates[b.Name] = b.DefaultState
	}
	for _, b := range biomes {
		if b.Name == "" {
			return nil, fmt.Errorf("%s: biome entry with empty name", biomesFile)
		}
		reg.biomes[b.Name] = b.ID
	}

	return reg, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read data file: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return nil
}
