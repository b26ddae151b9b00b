// Package main is the entry point for the vlog web server.
//
// main stays minimal: read configuration, create the logger, start the
// server. Everything else lives in internal/.
package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/johnrjervis/juggling-vlog/internal/config"
	"github.com/johnrjervis/juggling-vlog/internal/server"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfgPath := config.Path()
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Error("failed to load config",
			slog.String("path", cfgPath),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}

	// Ensure the database directory exists before SQLite tries to create
	// the file inside it.
	dbDir := filepath.Dir(cfg.Database.Path)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		logger.Error("failed to create database directory",
			slog.String("dir", dbDir),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}

	srv, err := server.New(cfg, logger)
	if err != nil {
		logger.Error("failed to create server", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Start blocks until the server is shut down via SIGINT/SIGTERM.
	if err := srv.Start(); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
