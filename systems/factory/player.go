package factory

import (
	"github.com/automoto/stickybomb/archetypes"
	"github.com/automoto/stickybomb/components"
	cfg "github.com/automoto/stickybomb/config"
	"github.com/automoto/stickybomb/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, spawn cfg.PlayerSpawn) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(spawn.X, spawn.Y, cfg.Player.Width, cfg.Player.Height)
	obj.AddTags("character", tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	components.Player.SetValue(player, components.PlayerData{
		ID:          spawn.ID,
		FacingRight: spawn.FacingRight,
		Color:       spawn.Color,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		CanDoubleJump: true,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.MaxHP,
		Max:     cfg.Player.MaxHP,
	})
	addToSpace(ecs, obj)

	return player
}
