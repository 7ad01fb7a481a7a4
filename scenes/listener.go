package scenes

import cfg "github.com/automoto/stickybomb/config"

// Listener receives match notifications. Calls happen on the ticking
// goroutine at the end of the tick that raised them.
type Listener interface {
	OnScoreUpdate(p1, p2 int)
	OnTimeUpdate(seconds int)
	OnGameOver(winner cfg.WinnerID)
	OnGameStart()
}

// NopListener ignores every notification.
type NopListener struct{}

func (NopListener) OnScoreUpdate(int, int)  {}
func (NopListener) OnTimeUpdate(int)        {}
func (NopListener) OnGameOver(cfg.WinnerID) {}
func (NopListener) OnGameStart()            {}
