package game

import (
	"fmt"
	"time"

	"github.com/Mshel/sshmaze/internal/maze"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

type TimerTickMsg struct{}

type LevelCompleteMsg struct {
	Completion Completion
}

// Completion describes one finished level.
type Completion struct {
	RunID      string
	PlayerName string
	Level      int
	Elapsed    time.Duration
	Moves      int
	Cols       int
	Rows       int
}

func (c Completion) Seconds() int {
	return int(c.Elapsed / time.Second)
}

type ScoreRecorder interface {
	SaveCompletion(c Completion) error
}

type MoveOutcome struct {
	Moved bool
	Won   bool
}

// Session is a single player's run through consecutive levels. It is owned by
// one UI model and is not safe for concurrent use.
type Session struct {
	playerName string
	runID      string
	cols       int
	rows       int

	generator *maze.Generator
	clock     func() time.Time
	recorder  ScoreRecorder

	grid      *maze.Grid
	player    maze.Point
	level     int
	moves     int
	startedAt time.Time
	wonAt     time.Time
	won       bool
}

type SessionOption func(*Session)

func WithSize(cols, rows int) SessionOption {
	return func(s *Session) {
		s.cols = cols
		s.rows = rows
	}
}

func WithGenerator(g *maze.Generator) SessionOption {
	return func(s *Session) {
		s.generator = g
	}
}

func WithClock(clock func() time.Time) SessionOption {
	return func(s *Session) {
		s.clock = clock
	}
}

func WithRecorder(r ScoreRecorder) SessionOption {
	return func(s *Session) {
		s.recorder = r
	}
}

func NewSession(playerName string, opts ...SessionOption) (*Session, error) {
	s := &Session{
		playerName: playerName,
		runID:      uuid.NewString(),
		cols:       DefaultColCount,
		rows:       DefaultRowCount,
		clock:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.generator == nil {
		s.generator = maze.NewGenerator()
	}

	if err := s.startLevel(1); err != nil {
		return nil, err
	}
	log.Info("Session started", "player", s.playerName, "run", s.runID, "cols", s.cols, "rows", s.rows)
	return s, nil
}

func (s *Session) startLevel(level int) error {
	grid, err := s.generator.Generate(s.cols, s.rows)
	if err != nil {
		return fmt.Errorf("failed to generate maze for level %d: %w", level, err)
	}

	s.grid = grid
	s.level = level
	s.player = grid.Start()
	s.moves = 0
	s.won = false
	s.wonAt = time.Time{}
	s.startedAt = s.clock()
	return nil
}

func (s *Session) Grid() *maze.Grid    { return s.grid }
func (s *Session) Player() maze.Point  { return s.player }
func (s *Session) Goal() maze.Point    { return s.grid.Goal() }
func (s *Session) Level() int          { return s.level }
func (s *Session) Moves() int          { return s.moves }
func (s *Session) Won() bool           { return s.won }
func (s *Session) RunID() string       { return s.runID }
func (s *Session) PlayerName() string  { return s.playerName }
func (s *Session) DistanceToGoal() int { return GetManhattanDistance(s.player, s.Goal()) }

// Elapsed is the time spent on the current level. It stops once the goal is
// reached.
func (s *Session) Elapsed() time.Duration {
	if s.won {
		return s.wonAt.Sub(s.startedAt)
	}
	return s.clock().Sub(s.startedAt)
}

func (s *Session) ElapsedSeconds() int {
	return int(s.Elapsed() / time.Second)
}

// Move steps the player one cell. Blocked moves and moves after the goal has
// been reached leave the session untouched.
func (s *Session) Move(dir Direction) MoveOutcome {
	if s.won {
		return MoveOutcome{}
	}

	next := maze.Point{X: s.player.X + dir.Dx, Y: s.player.Y + dir.Dy}
	if !s.grid.IsOpen(next.X, next.Y) {
		return MoveOutcome{}
	}

	s.player = next
	s.moves++

	if s.player != s.Goal() {
		return MoveOutcome{Moved: true}
	}

	s.won = true
	s.wonAt = s.clock()
	s.recordCompletion()
	return MoveOutcome{Moved: true, Won: true}
}

// Completion reports the finished level, or false while it is still in play.
func (s *Session) Completion() (Completion, bool) {
	if !s.won {
		return Completion{}, false
	}
	return Completion{
		RunID:      s.runID,
		PlayerName: s.playerName,
		Level:      s.level,
		Elapsed:    s.Elapsed(),
		Moves:      s.moves,
		Cols:       s.cols,
		Rows:       s.rows,
	}, true
}

func (s *Session) recordCompletion() {
	completion, _ := s.Completion()
	log.Info("Level completed", "player", s.playerName, "run", s.runID, "level", completion.Level,
		"seconds", completion.Seconds(), "moves", completion.Moves)

	if s.recorder == nil {
		return
	}
	if err := s.recorder.SaveCompletion(completion); err != nil {
		log.Error("High score persist err", "player", s.playerName, "error", err)
	}
}

func (s *Session) NextLevel() error {
	return s.startLevel(s.level + 1)
}

func (s *Session) Reset() error {
	log.Debug("Session reset", "player", s.playerName, "run", s.runID, "level", s.level)
	return s.startLevel(1)
}

// Hint is the shortest route from the player to the goal.
func (s *Session) Hint() []maze.Point {
	return s.grid.ShortestPath(s.player, s.Goal())
}
