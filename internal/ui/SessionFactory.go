package ui

import "github.com/Mshel/sshmaze/internal/game"

// NewSessionFactory starts cols x rows sessions that record into scores.
// scores may be nil.
func NewSessionFactory(cols, rows int, scores *game.HighScoreService) SessionFactory {
	return func(playerName string) (*game.Session, error) {
		opts := []game.SessionOption{game.WithSize(cols, rows)}
		if scores != nil {
			opts = append(opts, game.WithRecorder(scores))
		}
		return game.NewSession(playerName, opts...)
	}
}

// ScoreBoardFor avoids handing the controller a non-nil interface around a nil store.
func ScoreBoardFor(scores *game.HighScoreService) ScoreBoard {
	if scores == nil {
		return nil
	}
	return scores
}
