package factory

import (
	"github.com/automoto/stickybomb/archetypes"
	"github.com/automoto/stickybomb/components"
	cfg "github.com/automoto/stickybomb/config"
	"github.com/automoto/stickybomb/shared/gamemath"
	"github.com/automoto/stickybomb/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBomb spawns the inactive bomb, due to appear after the first spawn
// delay. It joins the collision space once it appears.
func CreateBomb(ecs *ecs.ECS) *donburi.Entry {
	bomb := archetypes.Bomb.Spawn(ecs)

	square := gamemath.SquareAround(gamemath.Vec2{}, cfg.Bomb.Radius)
	obj := resolv.NewObject(square.X, square.Y, square.W, square.H)
	obj.AddTags(tags.ResolvBomb)
	obj.Data = bomb
	components.Object.SetValue(bomb, components.ObjectData{Object: obj})
	components.Bomb.SetValue(bomb, components.BombData{
		Radius:     cfg.Bomb.Radius,
		State:      cfg.BombSpawning,
		Owner:      cfg.NoPlayer,
		SpawnTimer: cfg.Bomb.FirstSpawnDelay,
	})

	return bomb
}
