package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/Mshel/sshmaze/internal/maze"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Config holds the server and game settings.
type Config struct {
	Host                string    // Interface the SSH server binds to
	Port                string    // Port the SSH server listens on
	PrivateKeyPath      string    // Host key location, generated on first start if missing
	DBPath              string    // SQLite file for the leaderboard
	MazeCols            int       // Maze width in cells
	MazeRows            int       // Maze height in cells
	MaxConnectionsPerIP int       // Concurrent SSH sessions allowed from one address
	LogLevel            log.Level // Minimum level written by the logger
}

// Load reads an optional .env file and then the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug(".env file not found or could not be loaded", "error", err)
	}

	cols, err := getEnvAsIntWithDefault("MAZE_COLS", 20)
	if err != nil {
		return Config{}, err
	}
	rows, err := getEnvAsIntWithDefault("MAZE_ROWS", 20)
	if err != nil {
		return Config{}, err
	}
	if cols < maze.MinSize || rows < maze.MinSize {
		return Config{}, fmt.Errorf("maze size %dx%d is too small, need at least %dx%d", cols, rows, maze.MinSize, maze.MinSize)
	}

	maxConn, err := getEnvAsIntWithDefault("MAZE_MAX_CONN_PER_IP", 2)
	if err != nil {
		return Config{}, err
	}

	level, err := log.ParseLevel(getEnvWithDefault("MAZE_LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, fmt.Errorf("environment variable MAZE_LOG_LEVEL: %w", err)
	}

	return Config{
		Host:                getEnvWithDefault("MAZE_HOST", "0.0.0.0"),
		Port:                getEnvWithDefault("MAZE_PORT", "6996"),
		PrivateKeyPath:      getEnvWithDefault("MAZE_PRIVATE_KEY_PATH", ".ssh/id_ed25519"),
		DBPath:              getEnvWithDefault("MAZE_DB_PATH", "highscores.db"),
		MazeCols:            cols,
		MazeRows:            rows,
		MaxConnectionsPerIP: maxConn,
		LogLevel:            level,
	}, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsIntWithDefault(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return value, nil
}
