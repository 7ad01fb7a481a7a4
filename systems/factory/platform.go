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

func CreatePlatform(ecs *ecs.ECS, spec cfg.PlatformSpec) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	obj := resolv.NewObject(spec.X, spec.Y, spec.W, spec.H)
	switch spec.Kind {
	case cfg.PlatformGround:
		obj.AddTags(tags.ResolvSolid)
	case cfg.PlatformOneWay:
		obj.AddTags(tags.ResolvOneWay)
	}
	obj.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	components.Platform.SetValue(platform, components.PlatformData{Kind: spec.Kind})
	addToSpace(ecs, obj)

	return platform
}

// CreateArena builds the collision space covering the screen and every
// static platform.
func CreateArena(ecs *ecs.ECS, arena cfg.ArenaConfig) {
	space := archetypes.Space.Spawn(ecs)
	components.Space.Set(space, resolv.NewSpace(cfg.C.Width, cfg.C.Height, arena.CellSize, arena.CellSize))

	for _, spec := range arena.Platforms {
		CreatePlatform(ecs, spec)
	}
}

// addToSpace registers a body with the arena's collision space, if any.
func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if e, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(e).Add(obj)
	}
}
