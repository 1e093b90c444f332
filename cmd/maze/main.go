package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/Mshel/sshmaze/internal/config"
	"github.com/Mshel/sshmaze/internal/game"
	"github.com/Mshel/sshmaze/internal/maze"
	"github.com/Mshel/sshmaze/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error %v\n", err)
		os.Exit(1)
	}
}

// run returns instead of exiting so the log file and score store are closed on every path.
func run(args []string, stdout io.Writer) error {
	flags := flag.NewFlagSet("maze", flag.ContinueOnError)
	dump := flags.Bool("dump", false, "print one generated maze and exit")
	seed := flags.Int64("seed", 0, "maze seed for -dump, 0 picks one from the clock")
	logPath := flags.String("log", "maze.log", "file the game logs to while the UI owns the terminal")
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if *dump {
		grid, err := maze.NewGenerator(maze.WithSeed(*seed)).Generate(cfg.MazeCols, cfg.MazeRows)
		if err != nil {
			return err
		}
		_, err = io.WriteString(stdout, grid.String())
		return err
	}

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer logFile.Close()
	log.SetOutput(logFile)
	log.SetLevel(cfg.LogLevel)

	scores, err := game.NewHighScoreService(cfg.DBPath)
	if err != nil {
		log.Error("High scores disabled", "db", cfg.DBPath, "error", err)
		scores = nil
	} else {
		defer scores.Close()
	}

	name := ""
	if u, err := user.Current(); err == nil {
		name = u.Username
	}

	controller := ui.NewControllerModel(ui.NewSessionFactory(cfg.MazeCols, cfg.MazeRows, scores), ui.ScoreBoardFor(scores), name, 0, 0)
	p := tea.NewProgram(controller, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
