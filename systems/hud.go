package systems

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/stickybomb/components"
	cfg "github.com/automoto/stickybomb/config"
	"github.com/automoto/stickybomb/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHUD advances the low-time timer pulse.
func UpdateHUD(ecs *ecs.ECS) {
	hud := GetOrCreateHUD(ecs)
	match := GetMatch(ecs)
	if match.TimeLeft > cfg.HUD.LowTime {
		hud.Alpha = 1
		return
	}
	v, done := hud.Pulse.Update(float32(cfg.C.DT()))
	if done {
		hud.Pulse.Reset()
	}
	// 1 -> 0.3 -> 1 over one pulse
	hud.Alpha = 1 - 0.7*(1-math.Abs(2*float64(v)-1))
}

// GetOrCreateHUD returns the singleton HUD component, creating if needed.
func GetOrCreateHUD(ecs *ecs.ECS) *components.HUDData {
	if _, ok := components.HUD.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.HUD))
		components.HUD.SetValue(ent, components.HUDData{
			Pulse: gween.New(0, 1, float32(cfg.HUD.PulseSeconds), ease.Linear),
			Alpha: 1,
		})
	}

	ent, _ := components.HUD.First(ecs.World)
	return components.HUD.Get(ent)
}

// FormatTime renders seconds as m:ss.
func FormatTime(seconds int) string {
	seconds = max(seconds, 0)
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// DrawMatchHUD draws both scores and the match clock.
func DrawMatchHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	match := GetMatch(ecs)
	hud := GetOrCreateHUD(ecs)
	p1, p2 := Scores(ecs)
	face := fonts.HUD.Get()
	width := float64(screen.Bounds().Dx())

	drawText(screen, fmt.Sprintf("PLAYER 1  %d / %d", p1, match.WinScore), face, 20, 16, text.AlignStart, cfg.Player.Spawns[0].Color)
	drawText(screen, fmt.Sprintf("%d / %d  PLAYER 2", p2, match.WinScore), face, width-20, 16, text.AlignEnd, cfg.Player.Spawns[1].Color)

	clr := cfg.HUD.TextColor
	if match.TimeLeft <= cfg.HUD.WarnTime {
		clr = cfg.HUD.WarnColor
	}
	clr.A = uint8(float64(clr.A) * hud.Alpha)
	drawText(screen, FormatTime(int(math.Ceil(match.TimeLeft))), fonts.Title.Get(), width/2, 8, text.AlignCenter, clr)
}

// DrawOverlay draws the pause, start and game over banners.
func DrawOverlay(ecs *ecs.ECS, screen *ebiten.Image) {
	match := GetMatch(ecs)
	paused := GetOrCreatePause(ecs).IsPaused

	var title, hint string
	switch {
	case paused:
		title, hint = "PAUSED", "P / Esc to resume"
	case match.IsRunning:
		return
	case match.Winner == cfg.WinnerPending:
		title, hint = "STICKY BOMB", "Enter to start"
	case match.Winner == cfg.WinnerDraw:
		title, hint = "DRAW", "Enter for a rematch"
	default:
		title, hint = fmt.Sprintf("PLAYER %d WINS", match.Winner), "Enter for a rematch"
	}

	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, w, h, cfg.HUD.OverlayColor, false)
	drawText(screen, title, fonts.Title.Get(), float64(w)/2, float64(h)/2-40, text.AlignCenter, cfg.HUD.TextColor)
	drawText(screen, hint, fonts.HUD.Get(), float64(w)/2, float64(h)/2+20, text.AlignCenter, cfg.HUD.TextColor)
}

func drawText(screen *ebiten.Image, s string, face text.Face, x, y float64, align text.Align, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	text.Draw(screen, s, face, op)
}
