package components

import (
	cfg "github.com/automoto/stickybomb/config"
	"github.com/yohamta/donburi/features/events"
)

type ScoreUpdate struct {
	P1, P2 int
}

type TimeUpdate struct {
	Seconds int
}

type GameOver struct {
	Winner cfg.WinnerID
}

type GameStart struct{}

// Notifications are queued during a tick and delivered at its end.
var (
	ScoreUpdated = events.NewEventType[ScoreUpdate]()
	TimeUpdated  = events.NewEventType[TimeUpdate]()
	GameEnded    = events.NewEventType[GameOver]()
	GameStarted  = events.NewEventType[GameStart]()
)
