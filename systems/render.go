package systems

import (
	"image/color"

	"github.com/automoto/stickybomb/components"
	cfg "github.com/automoto/stickybomb/config"
	"github.com/automoto/stickybomb/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawArena draws the background, idle spawn nodes and platforms.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.HUD.Background)

	if e, ok := tags.Bomb.First(ecs.World); ok {
		if bomb := components.Bomb.Get(e); bomb.State == cfg.BombSpawning && !bomb.Active {
			for _, n := range cfg.Arena.SpawnNodes {
				vector.FillCircle(screen, float32(n.X), float32(n.Y), 5, cfg.HUD.SpawnNodeColor, true)
			}
		}
	}

	tags.Platform.Each(ecs.World, func(e *donburi.Entry) {
		r := components.Object.Get(e).Rect()
		var clr color.RGBA
		switch components.Platform.Get(e).Kind {
		case cfg.PlatformGround:
			clr = cfg.HUD.GroundColor
		case cfg.PlatformOneWay:
			clr = cfg.HUD.PlatformColor
		}
		vector.FillRect(screen, float32(r.X+5), float32(r.Y+5), float32(r.W), float32(r.H), color.RGBA{0, 0, 0, 0x60}, false)
		vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
	})
}

// DrawPlayers draws living players as colored hitboxes with a health bar.
func DrawPlayers(ecs *ecs.ECS, screen *ebiten.Image) {
	stuckOn := cfg.NoPlayer
	if e, ok := tags.Bomb.First(ecs.World); ok {
		if bomb := components.Bomb.Get(e); bomb.State == cfg.BombStuck {
			stuckOn = bomb.Owner
		}
	}

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		health := components.Health.Get(e)
		if !health.Alive() {
			return
		}
		player := components.Player.Get(e)
		r := components.Object.Get(e).Rect()

		if player.ID == stuckOn {
			vector.FillCircle(screen, float32(r.Center().X), float32(r.Y-10), 5, cfg.HUD.SweatColor, true)
			vector.FillCircle(screen, float32(r.Center().X+10), float32(r.Y-5), 3, cfg.HUD.SweatColor, true)
		}

		vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), player.Color, false)
		eyeX := r.X + 5
		if player.FacingRight {
			eyeX = r.X + 25
		}
		vector.FillRect(screen, float32(eyeX), float32(r.Y+10), 10, 10, color.White, false)

		pct := float64(health.Current) / float64(health.Max)
		bar := cfg.HUD.HealthHigh
		switch {
		case pct <= 0.2:
			bar = cfg.HUD.HealthLow
		case pct <= 0.5:
			bar = cfg.HUD.HealthMid
		}
		vector.FillRect(screen, float32(r.X-5), float32(r.Y-25), float32(r.W+10), 8, cfg.HUD.HealthBack, false)
		vector.FillRect(screen, float32(r.X-4), float32(r.Y-24), float32((r.W+8)*pct), 6, bar, false)
	})
}

// DrawBomb draws the bomb whenever it is visible.
func DrawBomb(ecs *ecs.ECS, screen *ebiten.Image) {
	e, ok := tags.Bomb.First(ecs.World)
	if !ok {
		return
	}
	bomb := components.Bomb.Get(e)
	if !bomb.Active && !bomb.State.Owned() && bomb.State != cfg.BombThrown {
		return
	}
	c := components.Object.Get(e).Center()
	vector.FillCircle(screen, float32(c.X), float32(c.Y), float32(bomb.Radius), cfg.HUD.BombColor, true)
	if bomb.State.Owned() {
		vector.FillCircle(screen, float32(c.X+10), float32(c.Y-bomb.Radius-5), 3, cfg.HUD.FuseColor, true)
	}
}

// DrawParticles draws the live particle set, faded by remaining life.
func DrawParticles(ecs *ecs.ECS, screen *ebiten.Image) {
	e, ok := components.Particles.First(ecs.World)
	if !ok {
		return
	}
	for _, p := range components.Particles.Get(e).Live {
		c := p.Color
		c.A = uint8(float64(c.A) * p.Life)
		c.R = uint8(float64(c.R) * p.Life)
		c.G = uint8(float64(c.G) * p.Life)
		c.B = uint8(float64(c.B) * p.Life)
		vector.FillRect(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(p.Size), float32(p.Size), c, false)
	}
}
