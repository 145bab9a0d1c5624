package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/techzen-dev/techzen/internal/config"
	"github.com/techzen-dev/techzen/internal/imghost"
	"github.com/techzen-dev/techzen/internal/logger"
	"github.com/techzen-dev/techzen/internal/server"
	"github.com/techzen-dev/techzen/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger.Init(cfg.Logging.Level, cfg.Logging.Format)
	log := logger.GetLogger()

	// Connect to the document store once; the handle lives for the process
	connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	st, err := store.Connect(connectCtx, cfg.Mongo.URI, cfg.Mongo.Database, log)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to document store")
	}
	log.Info().Str("database", cfg.Mongo.Database).Msg("Connected to MongoDB")

	uploader := imghost.NewClient(cfg.ImgHost.UploadURL)

	srv := server.New(cfg, st, uploader, log)

	log.Info().Str("port", cfg.Server.Port).Msg("TechZen server starting...")

	// Start HTTP server (this blocks until shutdown)
	if err := srv.Start(); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}

	// Disconnect the store after the HTTP server has drained
	closeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := st.Close(closeCtx); err != nil {
		log.Error().Err(err).Msg("Error disconnecting from document store")
	}
}
