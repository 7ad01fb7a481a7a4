package systems

import (
	"math"

	"github.com/automoto/stickybomb/components"
	cfg "github.com/automoto/stickybomb/config"
)

// DeriveState maps health and motion to the movement state. Dead wins over
// everything, then airborne, then running.
func DeriveState(hp int, speedX, speedY float64, onGround bool) cfg.StateID {
	switch {
	case hp <= 0:
		return cfg.Dead
	case !onGround && speedY > 0:
		return cfg.Falling
	case !onGround:
		return cfg.Jumping
	case math.Abs(speedX) > cfg.Physics.RunThreshold:
		return cfg.Running
	}
	return cfg.Idle
}

func setState(state *components.StateData, next cfg.StateID, dt float64) {
	if state.CurrentState == next {
		state.StateTimer += dt
		return
	}
	state.PreviousState = state.CurrentState
	state.CurrentState = next
	state.StateTimer = 0
}

// animationRow returns the sprite sheet row for a state.
func animationRow(state cfg.StateID) int {
	switch state {
	case cfg.Running:
		return 1
	case cfg.Jumping, cfg.Falling:
		return 2
	}
	return 0
}

func advanceAnimation(anim *components.AnimationData, state cfg.StateID, dt float64) {
	row := animationRow(state)
	if row != anim.Row {
		anim.Row = row
		anim.Frame = 0
		anim.Timer = 0
		return
	}
	anim.Timer += dt
	for anim.Timer >= cfg.Animation.FrameSeconds {
		anim.Timer -= cfg.Animation.FrameSeconds
		anim.Frame = (anim.Frame + 1) % cfg.Animation.Frames
	}
}
