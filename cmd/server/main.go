// Package main implements the entry point for the stays API server, a
// short-term rental listing service managing users, places, amenities and
// reviews.
package main

import (
	"context"
	"log"
)

// main wires configuration, logging, storage and the HTTP server together,
// then blocks until shutdown.
func main() {
	cfg, err := loadAppConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := setupAppLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logger: %v", err)
	}

	ctx := context.Background()

	app, err := newApplication(ctx, cfg, appLogger)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
