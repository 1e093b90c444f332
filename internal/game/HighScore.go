package game

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
)

type HighScoreService struct {
	db *sql.DB
}

const tableName = "level_completions"

type Score struct {
	ID         int
	RunID      string
	PlayerName string
	Level      int
	Elapsed    time.Duration
	Moves      int
	Cols       int
	Rows       int
	CreatedAt  time.Time
}

func NewHighScoreService(dbPath string) (*HighScoreService, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database %s: %w", dbPath, err)
	}

	service := &HighScoreService{db: db}
	if err := service.createTable(); err != nil {
		db.Close()
		return nil, err
	}

	return service, nil
}

// createTable creates the level_completions table if it does not exist.
func (serviceImpl *HighScoreService) createTable() error {
	const createTableSQL = `
	CREATE TABLE IF NOT EXISTS ` + tableName + ` (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		player_name TEXT NOT NULL,
		level INTEGER NOT NULL,
		elapsed_ms INTEGER NOT NULL,
		moves INTEGER NOT NULL,
		maze_cols INTEGER NOT NULL,
		maze_rows INTEGER NOT NULL,
		created_at DATETIME NOT NULL
	);`

	_, err := serviceImpl.db.Exec(createTableSQL)
	if err != nil {
		return fmt.Errorf("failed to execute CREATE TABLE: %w", err)
	}
	log.Debug("High scores table ensured.", "table", tableName)
	return nil
}

func (serviceImpl *HighScoreService) SaveCompletion(c Completion) error {
	const insertSQL = `
	INSERT INTO ` + tableName + ` (run_id, player_name, level, elapsed_ms, moves, maze_cols, maze_rows, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?);`

	_, err := serviceImpl.db.Exec(insertSQL, c.RunID, c.PlayerName, c.Level, c.Elapsed.Milliseconds(),
		c.Moves, c.Cols, c.Rows, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to insert completion for %s: %w", c.PlayerName, err)
	}

	return nil
}

// GetFastestCompletions retrieves a paginated list of scores, deepest level first, then fastest time.
func (serviceImpl *HighScoreService) GetFastestCompletions(limit, offset int) ([]Score, error) {
	const selectSQL = `
	SELECT id, run_id, player_name, level, elapsed_ms, moves, maze_cols, maze_rows, created_at
	FROM ` + tableName + `
	ORDER BY level DESC, elapsed_ms ASC, id ASC
	LIMIT ? OFFSET ?;`

	rows, err := serviceImpl.db.Query(selectSQL, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query high scores: %w", err)
	}
	defer rows.Close()

	var scores []Score

	for rows.Next() {
		var score Score
		var elapsedMs int64
		err := rows.Scan(&score.ID, &score.RunID, &score.PlayerName, &score.Level, &elapsedMs,
			&score.Moves, &score.Cols, &score.Rows, &score.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		score.Elapsed = time.Duration(elapsedMs) * time.Millisecond
		scores = append(scores, score)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating rows: %w", err)
	}

	return scores, nil
}

func (serviceImpl *HighScoreService) GetTotalScoreCount() (int, error) {
	const countSQL = `SELECT COUNT(*) FROM ` + tableName + `;`
	var count int
	err := serviceImpl.db.QueryRow(countSQL).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get total score count: %w", err)
	}
	return count, nil
}

func (serviceImpl *HighScoreService) Close() error {
	return serviceImpl.db.Close()
}
