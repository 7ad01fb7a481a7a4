package components

import "github.com/yohamta/donburi"

type PhysicsData struct {
	SpeedX        float64
	SpeedY        float64
	OnGround      bool
	CanDoubleJump bool
	// Dropping makes one-way platforms passable for the current tick.
	Dropping bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
