package components

import (
	cfg "github.com/automoto/stickybomb/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed     bool // Currently held down
	JustPressed bool // Pressed since the previous tick
}

// PlayerInputData is the per-player view of the keyboard latched at the
// start of a tick.
type PlayerInputData struct {
	Actions [cfg.ActionCount]ActionState
}

// Consume reports whether an edge action fired this tick and clears it so it
// cannot act twice.
func (p *PlayerInputData) Consume(a cfg.ActionID) bool {
	if !p.Actions[a].JustPressed {
		return false
	}
	p.Actions[a].JustPressed = false
	return true
}

func (p *PlayerInputData) Held(a cfg.ActionID) bool {
	return p.Actions[a].Pressed
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()

// KeyboardData buffers key events between ticks.
type KeyboardData struct {
	Held    map[ebiten.Key]bool
	Pressed map[ebiten.Key]bool // down edges since the last tick
}

var Keyboard = donburi.NewComponentType[KeyboardData]()
