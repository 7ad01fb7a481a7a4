package systems

import (
	"image/color"
	"testing"

	"github.com/automoto/stickybomb/components"
	cfg "github.com/automoto/stickybomb/config"
	"github.com/automoto/stickybomb/shared/gamemath"
)

func TestSpawnParticles(t *testing.T) {
	tests := []struct {
		name     string
		f        float64
		wantVel  float64
		wantSize float64
	}{
		{"low", 0, -cfg.Particles.Spread, cfg.Particles.MinSize},
		{"mid", 0.5, 0, cfg.Particles.MinSize + cfg.Particles.SizeRange/2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS(t)
			setRand(e, fixedRand{f: tt.f})
			origin := gamemath.Vec2{X: 100, Y: 200}

			SpawnParticles(e, origin, cfg.Particles.PoofColor, 7)

			live := components.Particles.Get(components.Particles.MustFirst(e.World)).Live
			if len(live) != 7 {
				t.Fatalf("len = %d", len(live))
			}
			for _, p := range live {
				if p.Pos != origin || p.Life != 1 || p.Color != cfg.Particles.PoofColor {
					t.Fatalf("particle = %+v", p)
				}
				if p.Vel.X != tt.wantVel || p.Vel.Y != tt.wantVel {
					t.Fatalf("vel = %+v, want %v", p.Vel, tt.wantVel)
				}
				if p.Size != tt.wantSize {
					t.Fatalf("size = %v, want %v", p.Size, tt.wantSize)
				}
			}
		})
	}
}

func TestParticlesFadeOut(t *testing.T) {
	e := newTestECS(t)
	setRand(e, fixedRand{f: 1})
	SpawnParticles(e, gamemath.Vec2{}, cfg.Particles.RespawnColor, 1)
	particles := components.Particles.Get(components.Particles.MustFirst(e.World))

	for i := 0; i < 25; i++ {
		UpdateParticles(e)
	}
	if len(particles.Live) != 1 {
		t.Fatal("particle expired early")
	}
	p := particles.Live[0]
	if p.Life < 0.45 || p.Life > 0.55 {
		t.Fatalf("life after 25 ticks = %v", p.Life)
	}
	if p.Pos.X != 25*cfg.Particles.Spread {
		t.Fatalf("pos = %+v", p.Pos)
	}

	ticks := 25
	for len(particles.Live) > 0 && ticks < 100 {
		UpdateParticles(e)
		ticks++
	}
	if ticks < 50 || ticks > 51 {
		t.Fatalf("expired after %d ticks, want ~50", ticks)
	}
}

func TestParticleCapEvictsOldest(t *testing.T) {
	cfg.Particles.MaxLive = 10
	t.Cleanup(cfg.SetDefaults)

	e := newTestECS(t)
	first := color.RGBA{R: 1, A: 0xff}
	second := color.RGBA{G: 1, A: 0xff}
	SpawnParticles(e, gamemath.Vec2{}, first, 8)
	SpawnParticles(e, gamemath.Vec2{}, second, 5)

	live := components.Particles.Get(components.Particles.MustFirst(e.World)).Live
	if len(live) != 10 {
		t.Fatalf("len = %d, want 10", len(live))
	}
	for i, p := range live {
		want := first
		if i >= 5 {
			want = second
		}
		if p.Color != want {
			t.Fatalf("particle %d color = %v, want %v", i, p.Color, want)
		}
	}
}
