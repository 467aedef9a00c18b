package main

import (
	"os"

	"github.com/aylin/coursebook/internal/pkg/logger"
	"github.com/aylin/coursebook/internal/server"
)

// @title Coursebook API
// @version 1.0
// @description API for student course enrollment and grade records

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
