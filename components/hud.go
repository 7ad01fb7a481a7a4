package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HUDData holds the timer pulse used when the match is nearly over.
type HUDData struct {
	Pulse *gween.Tween
	Alpha float64
}

var HUD = donburi.NewComponentType[HUDData]()
