package components

import (
	"image/color"

	"github.com/automoto/stickybomb/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type Particle struct {
	Pos   gamemath.Vec2
	Vel   gamemath.Vec2
	Life  float64
	Color color.RGBA
	Size  float64
	fade  *gween.Tween
}

// NewParticle returns a particle at full life that fades out linearly over
// the given number of ticks.
func NewParticle(pos, vel gamemath.Vec2, c color.RGBA, size float64, fade *gween.Tween) Particle {
	return Particle{Pos: pos, Vel: vel, Life: 1, Color: c, Size: size, fade: fade}
}

// Step advances the particle by one tick and reports whether it is still alive.
func (p *Particle) Step() bool {
	p.Pos = p.Pos.Add(p.Vel)
	if p.fade == nil {
		p.Life = 0
		return false
	}
	life, done := p.fade.Update(1)
	p.Life = float64(life)
	return !done && p.Life > 0
}

// ParticlesData is the live particle set, oldest first.
type ParticlesData struct {
	Live []Particle
}

var Particles = donburi.NewComponentType[ParticlesData]()
