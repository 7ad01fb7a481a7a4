package components

import (
	"image/color"

	cfg "github.com/automoto/stickybomb/config"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	ID           cfg.PlayerID
	FacingRight  bool
	RespawnTimer float64 // seconds until respawn, only meaningful while dead
	Score        int
	Color        color.RGBA
}

// Facing returns 1 when facing right and -1 otherwise.
func (p *PlayerData) Facing() float64 {
	if p.FacingRight {
		return 1
	}
	return -1
}

var Player = donburi.NewComponentType[PlayerData]()
