package game

import "time"

const (
	TimerTickDuration = 100 * time.Millisecond
	DefaultColCount   = 20
	DefaultRowCount   = 20
	WallColor         = 238
	VoidColor         = 254
	PlayerColor       = 196
	GoalColor         = 41
	HintColor         = 214
)
