package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_DumpPrintsSeededMaze(t *testing.T) {
	t.Setenv("MAZE_COLS", "7")
	t.Setenv("MAZE_ROWS", "5")

	var first, second bytes.Buffer
	require.NoError(t, run([]string{"-dump", "-seed", "42"}, &first))
	require.NoError(t, run([]string{"-dump", "-seed", "42"}, &second))

	lines := strings.Split(strings.TrimRight(first.String(), "\n"), "\n")
	assert.Len(t, lines, 5)
	assert.Contains(t, first.String(), "#")
	assert.Equal(t, first.String(), second.String(), "the same seed draws the same maze")
}

func TestRun_InvalidConfiguration(t *testing.T) {
	t.Setenv("MAZE_COLS", "wide")

	err := run([]string{"-dump"}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "invalid configuration")
}

func TestRun_UnwritableLogReturnsError(t *testing.T) {
	t.Setenv("MAZE_DB_PATH", filepath.Join(t.TempDir(), "scores.db"))
	logPath := filepath.Join(t.TempDir(), "missing", "maze.log")

	err := run([]string{"-log", logPath}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestRun_UnknownFlag(t *testing.T) {
	err := run([]string{"-bogus"}, &bytes.Buffer{})
	assert.Error(t, err)
}
