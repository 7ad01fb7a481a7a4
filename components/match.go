package components

import (
	cfg "github.com/automoto/stickybomb/config"
	"github.com/yohamta/donburi"
)

// MatchData stores the current match state.
// This is a singleton component - only one match exists at a time.
type MatchData struct {
	TimeLeft        float64 // seconds
	IsRunning       bool
	Winner          cfg.WinnerID
	Duration        float64
	WinScore        int
	LastWholeSecond int // last value reported through a time update
	Kills           int // explosion deaths this match
}

var Match = donburi.NewComponentType[MatchData]()

// Leader compares two scores: the higher one wins, equal scores draw.
func Leader(p1, p2 int) cfg.WinnerID {
	switch {
	case p1 > p2:
		return cfg.WinnerOf(cfg.Player1)
	case p2 > p1:
		return cfg.WinnerOf(cfg.Player2)
	}
	return cfg.WinnerDraw
}
