package systems

import (
	"github.com/automoto/stickybomb/components"
	cfg "github.com/automoto/stickybomb/config"
	"github.com/automoto/stickybomb/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayers moves both players for one tick.
func UpdatePlayers(ecs *ecs.ECS) {
	platforms := collectPlatforms(ecs)
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		updatePlayer(ecs, e, platforms)
	})
}

func updatePlayer(ecs *ecs.ECS, e *donburi.Entry, platforms []platformBody) {
	player := components.Player.Get(e)
	health := components.Health.Get(e)
	dt := cfg.C.DT()

	if !health.Alive() {
		player.RespawnTimer -= dt
		if player.RespawnTimer <= 0 {
			Respawn(ecs, e)
		}
		return
	}

	obj := components.Object.Get(e)
	physics := components.Physics.Get(e)
	input := components.PlayerInput.Get(e)

	if input.Consume(cfg.ActionJump) {
		Jump(physics)
	}

	if input.Held(cfg.ActionMoveLeft) {
		physics.SpeedX -= cfg.Physics.MoveSpeed
		player.FacingRight = false
	}
	if input.Held(cfg.ActionMoveRight) {
		physics.SpeedX += cfg.Physics.MoveSpeed
		player.FacingRight = true
	}
	physics.Dropping = input.Held(cfg.ActionDrop)
	if physics.Dropping {
		physics.SpeedY += cfg.Physics.FastFallSpeed
	}

	StepBody(obj, physics, platforms)

	state := components.State.Get(e)
	setState(state, DeriveState(health.Current, physics.SpeedX, physics.SpeedY, physics.OnGround), dt)
	advanceAnimation(components.Animation.Get(e), state.CurrentState, dt)
}

// Jump applies a grounded jump, or the double jump while airborne. A request
// with neither available does nothing.
func Jump(physics *components.PhysicsData) bool {
	switch {
	case physics.OnGround:
		physics.SpeedY = cfg.Physics.JumpForce
		physics.OnGround = false
		return true
	case physics.CanDoubleJump:
		physics.SpeedY = cfg.Physics.DoubleJumpForce
		physics.CanDoubleJump = false
		return true
	}
	return false
}

// livingPlayer finds the player with the given id if it is alive.
func livingPlayer(ecs *ecs.ECS, id cfg.PlayerID) (*donburi.Entry, bool) {
	p, ok := FindPlayer(ecs, id)
	if !ok || !components.Health.Get(p).Alive() {
		return nil, false
	}
	return p, true
}

// FindPlayer returns the player entity with the given id.
func FindPlayer(ecs *ecs.ECS, id cfg.PlayerID) (*donburi.Entry, bool) {
	var found *donburi.Entry
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if found == nil && components.Player.Get(e).ID == id {
			found = e
		}
	})
	return found, found != nil
}
