package main

import (
	"fmt"
	"log/slog"

	"github.com/openstays/stays-api/internal/config"
)

// loadAppConfig loads the application configuration from environment
// variables or a config file.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	if cfg.Database.URL != "" {
		slog.Debug("Database configuration", "url_present", true)
	} else {
		slog.Info("No database URL configured, using in-memory storage")
	}

	return cfg, nil
}
