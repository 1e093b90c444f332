package config

import (
	"os"
	"strconv"
	"testing"

	"github.com/Mshel/sshmaze/internal/maze"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var mazeEnvKeys = []string{
	"MAZE_HOST", "MAZE_PORT", "MAZE_PRIVATE_KEY_PATH", "MAZE_DB_PATH",
	"MAZE_COLS", "MAZE_ROWS", "MAZE_MAX_CONN_PER_IP", "MAZE_LOG_LEVEL",
}

// clearEnv blanks every key via t.Setenv so the originals come back after the test,
// then unsets them so the defaults apply.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range mazeEnvKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "6996", cfg.Port)
	assert.Equal(t, ".ssh/id_ed25519", cfg.PrivateKeyPath)
	assert.Equal(t, "highscores.db", cfg.DBPath)
	assert.Equal(t, 20, cfg.MazeCols)
	assert.Equal(t, 20, cfg.MazeRows)
	assert.Equal(t, 2, cfg.MaxConnectionsPerIP)
	assert.Equal(t, log.InfoLevel, cfg.LogLevel)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("MAZE_PORT", "2222")
	t.Setenv("MAZE_COLS", "31")
	t.Setenv("MAZE_ROWS", "15")
	t.Setenv("MAZE_LOG_LEVEL", "debug")
	t.Setenv("MAZE_DB_PATH", "/tmp/maze.db")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "2222", cfg.Port)
	assert.Equal(t, 31, cfg.MazeCols)
	assert.Equal(t, 15, cfg.MazeRows)
	assert.Equal(t, log.DebugLevel, cfg.LogLevel)
	assert.Equal(t, "/tmp/maze.db", cfg.DBPath)
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value string
	}{
		{"NonIntegerCols", "MAZE_COLS", "wide"},
		{"TooSmallRows", "MAZE_ROWS", "2"},
		{"NonIntegerConnLimit", "MAZE_MAX_CONN_PER_IP", "many"},
		{"UnknownLogLevel", "MAZE_LOG_LEVEL", "loud"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_SizeFollowsGeneratorMinimum(t *testing.T) {
	clearEnv(t)
	t.Setenv("MAZE_COLS", strconv.Itoa(maze.MinSize))
	t.Setenv("MAZE_ROWS", strconv.Itoa(maze.MinSize))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, maze.MinSize, cfg.MazeCols)

	t.Setenv("MAZE_COLS", strconv.Itoa(maze.MinSize-1))
	_, err = Load()
	assert.Error(t, err)
}
