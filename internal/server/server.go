package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"

	"voxelwire/internal/server/config"
	"voxelwire/internal/server/conn"
	"voxelwire/pkg/gamedata"
)

// Server accepts TCP connections and hands each to its own connection handler.
type Server struct {
	cfg      *config.Config
	log      *slog.Logger
	registry *gamedata.Registry
}

// New creates a Server. The registry is loaded from cfg.DataDir when set,
// otherwise the built-in table is used.
func New(cfg *config.Config, log *slog.Logger) (*Server, error) {
	registry := gamedata.Builtin()
	if cfg.DataDir != "" {
		loaded, err := gamedata.LoadDir(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("load registry data: %w", err)
		}
		registry = loaded
		log.Info("registry loaded",
			"dir", cfg.DataDir,
			"blockStates", registry.BlockStateCount(),
			"biomes", registry.BiomeCount(),
		)
	}

	return &Server{
		cfg:      cfg,
		log:      log,
		registry: registry,
	}, nil
}

// Start begins listening for connections and blocks until the context is cancelled.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	lc := net.ListenConfig{}

	listener, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	defer listener.Close()

	s.log.Info("server started",
		"port", s.cfg.Port,
		"motd", s.cfg.MOTD,
		"viewDistance", s.cfg.ViewDistance,
		"compressionThreshold", s.cfg.CompressionThreshold,
	)

	// Close listener when context is cancelled.
	go func() {
		<-ctx.Done()
		listener.Close()
	}()

	for {
		c, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				s.log.Info("server shutting down")
				return nil
			}
			s.log.Error("accept connection", "error", err)
			continue
		}

		connection := conn.NewConnection(ctx, c, s.cfg, s.log, s.registry)
		go connection.Handle()
	}
}
