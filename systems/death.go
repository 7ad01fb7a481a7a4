package systems

import (
	"github.com/automoto/stickybomb/components"
	cfg "github.com/automoto/stickybomb/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Kill marks a player dead and schedules the respawn.
func Kill(e *donburi.Entry) {
	health := components.Health.Get(e)
	health.Current = 0
	components.Player.Get(e).RespawnTimer = cfg.Player.RespawnTime
	setState(components.State.Get(e), cfg.Dead, 0)
}

// Respawn restores a dead player at the respawn point.
func Respawn(ecs *ecs.ECS, e *donburi.Entry) {
	components.Health.Get(e).Restore()
	components.Player.Get(e).RespawnTimer = 0

	obj := components.Object.Get(e)
	obj.MoveTo(cfg.Player.RespawnX, cfg.Player.RespawnY)
	components.Physics.SetValue(e, components.PhysicsData{CanDoubleJump: true})
	setState(components.State.Get(e), cfg.Idle, 0)
	components.Animation.SetValue(e, components.AnimationData{})

	SpawnParticles(ecs, obj.Center(), cfg.Particles.RespawnColor, cfg.Particles.RespawnCount)
}
