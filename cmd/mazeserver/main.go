package main

import (
	"fmt"
	"os"

	"github.com/Mshel/sshmaze/internal/config"
	"github.com/Mshel/sshmaze/internal/game"
	"github.com/Mshel/sshmaze/internal/server"
	"github.com/charmbracelet/log"
)

func main() {
	if err := run(); err != nil {
		log.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

// run returns instead of exiting so the score store is closed on every path.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	log.SetLevel(cfg.LogLevel)

	scores, err := game.NewHighScoreService(cfg.DBPath)
	if err != nil {
		log.Error("High scores disabled", "db", cfg.DBPath, "error", err)
		scores = nil
	} else {
		defer scores.Close()
	}

	sshServer, err := server.New(cfg, scores)
	if err != nil {
		return fmt.Errorf("failed to start ssh server: %w", err)
	}
	return sshServer.ListenAndServe()
}
