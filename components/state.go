package components

import (
	"github.com/automoto/stickybomb/config"
	"github.com/yohamta/donburi"
)

// StateData caches the derived movement state. Only the player system writes it.
type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    float64 // seconds spent in CurrentState
}

var State = donburi.NewComponentType[StateData]()
