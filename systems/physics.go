package systems

import (
	"github.com/automoto/stickybomb/components"
	cfg "github.com/automoto/stickybomb/config"
	"github.com/automoto/stickybomb/shared/gamemath"
	"github.com/automoto/stickybomb/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// platformBody is a platform snapshot used for landing checks.
type platformBody struct {
	rect gamemath.Rect
	kind cfg.PlatformKind
}

func collectPlatforms(ecs *ecs.ECS) []platformBody {
	var out []platformBody
	tags.Platform.Each(ecs.World, func(e *donburi.Entry) {
		out = append(out, platformBody{
			rect: components.Object.Get(e).Rect(),
			kind: components.Platform.Get(e).Kind,
		})
	})
	return out
}

// StepBody integrates one tick of player kinematics: friction, gravity,
// movement, bounds and one-sided platform landing.
func StepBody(obj *components.ObjectData, physics *components.PhysicsData, platforms []platformBody) {
	physics.SpeedX *= cfg.Physics.Friction
	physics.SpeedY += cfg.Physics.Gravity
	physics.SpeedX = gamemath.ClampSpeed(physics.SpeedX, cfg.Physics.MaxSpeed)

	prevBottom := obj.Y + obj.H
	obj.X += physics.SpeedX
	obj.Y += physics.SpeedY

	physics.OnGround = false
	clampToBounds(obj, physics)

	body := obj.Rect()
	for _, p := range platforms {
		switch p.kind {
		case cfg.PlatformOneWay:
			if physics.Dropping {
				continue
			}
		case cfg.PlatformGround:
			// always solid from above
		}
		if physics.SpeedY < 0 || !gamemath.Crossed(prevBottom, body.Bottom(), p.rect.Y) {
			continue
		}
		if !gamemath.OverlapsX(body, p.rect) {
			continue
		}
		obj.Y = p.rect.Y - obj.H
		body = obj.Rect()
		land(physics)
	}
	obj.Update()
}

func clampToBounds(obj *components.ObjectData, physics *components.PhysicsData) {
	b := cfg.Arena.Bounds
	if obj.X < b.Left {
		obj.X = b.Left
		physics.SpeedX = 0
	}
	if obj.X+obj.W > b.Right {
		obj.X = b.Right - obj.W
		physics.SpeedX = 0
	}
	if obj.Y < b.Top {
		obj.Y = b.Top
		physics.SpeedY = 0
	}
	if obj.Y+obj.H > b.Bottom {
		obj.Y = b.Bottom - obj.H
		land(physics)
	}
}

func land(physics *components.PhysicsData) {
	physics.SpeedY = 0
	physics.OnGround = true
	physics.CanDoubleJump = true
}
