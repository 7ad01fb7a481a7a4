package components

import "github.com/yohamta/donburi"

// AnimationData is the sprite sheet phase: row per state, frame within the row.
type AnimationData struct {
	Row   int
	Frame int
	Timer float64
}

var Animation = donburi.NewComponentType[AnimationData]()
