package components

import (
	cfg "github.com/automoto/stickybomb/config"
	"github.com/automoto/stickybomb/shared/gamemath"
	"github.com/yohamta/donburi"
)

// BombData is the single shared bomb. Its position is the center of the
// bomb's Object, a square of side 2*Radius.
type BombData struct {
	Active           bool
	Vel              gamemath.Vec2
	Radius           float64
	State            cfg.BombStateID
	Owner            cfg.PlayerID
	Timer            float64 // fuse, valid while stuck
	TransferCooldown float64
	StickCooldown    float64
	SpawnTimer       float64
}

// Release clears ownership and hides the bomb until the next spawn.
func (b *BombData) Release(spawnIn float64) {
	b.Active = false
	b.State = cfg.BombSpawning
	b.Owner = cfg.NoPlayer
	b.Vel = gamemath.Vec2{}
	b.SpawnTimer = spawnIn
}

var Bomb = donburi.NewComponentType[BombData]()
