package systems

import (
	"image/color"
	"math/rand/v2"

	"github.com/automoto/stickybomb/components"
	cfg "github.com/automoto/stickybomb/config"
	"github.com/automoto/stickybomb/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// SpawnParticles emits a burst of count particles at origin. When the live
// set is full the oldest particles are evicted first.
func SpawnParticles(ecs *ecs.ECS, origin gamemath.Vec2, c color.RGBA, count int) {
	if count <= 0 {
		return
	}
	e, ok := components.Particles.First(ecs.World)
	if !ok {
		return
	}
	particles := components.Particles.Get(e)
	rng := GetRand(ecs)
	spread := cfg.Particles.Spread
	lifeTicks := float32(1 / cfg.Particles.Decay)

	for i := 0; i < count; i++ {
		vel := gamemath.Vec2{
			X: (rng.Float64()*2 - 1) * spread,
			Y: (rng.Float64()*2 - 1) * spread,
		}
		size := rng.Float64()*cfg.Particles.SizeRange + cfg.Particles.MinSize
		fade := gween.New(1, 0, lifeTicks, ease.Linear)
		particles.Live = append(particles.Live, components.NewParticle(origin, vel, c, size, fade))
	}

	if limit := cfg.Particles.MaxLive; limit > 0 && len(particles.Live) > limit {
		drop := len(particles.Live) - limit
		particles.Live = append(particles.Live[:0], particles.Live[drop:]...)
	}
}

// UpdateParticles ages every particle and removes the expired ones.
func UpdateParticles(ecs *ecs.ECS) {
	e, ok := components.Particles.First(ecs.World)
	if !ok {
		return
	}
	particles := components.Particles.Get(e)
	live := particles.Live[:0]
	for i := range particles.Live {
		p := particles.Live[i]
		if p.Step() {
			live = append(live, p)
		}
	}
	particles.Live = live
}

// GetRand returns the world's random source, falling back to a global one.
func GetRand(ecs *ecs.ECS) components.Rand {
	if e, ok := components.RNG.First(ecs.World); ok {
		if r := components.RNG.Get(e).Rand; r != nil {
			return r
		}
	}
	return globalRand{}
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }
func (globalRand) IntN(n int) int   { return rand.IntN(n) }
