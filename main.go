package main

import (
	"flag"
	"log"
	"math/rand/v2"
	"slices"

	"github.com/automoto/stickybomb/config"
	"github.com/automoto/stickybomb/fonts"
	"github.com/automoto/stickybomb/scenes"
	"github.com/automoto/stickybomb/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type Game struct {
	scene   *scenes.MatchScene
	watcher *config.TuningWatcher
	keys    []ebiten.Key
}

func NewGame(watcher *config.TuningWatcher, opts ...scenes.Option) *Game {
	return &Game{
		scene:   scenes.NewMatchScene(opts...),
		watcher: watcher,
	}
}

func (g *Game) Update() error {
	if g.watcher != nil {
		select {
		case t := <-g.watcher.Updates():
			log.Printf("[tuning] reloaded, applies to the next match")
			g.scene.QueueTuning(t)
		default:
		}
	}

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		switch {
		case slices.Contains(config.HostInput.Pause, k):
			if g.scene.IsRunning() {
				g.scene.TogglePause()
			}
		case slices.Contains(config.HostInput.Start, k):
			if !g.scene.IsRunning() {
				g.scene.Start()
			}
		default:
			g.scene.KeyDown(k)
		}
	}

	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		g.scene.KeyUp(k)
	}

	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	duration := flag.Float64("duration", 0, "match duration in seconds (30-600)")
	winScore := flag.Int("winscore", 0, "points needed to win (1-20)")
	tuningPath := flag.String("tuning", "", "optional YAML tuning file, reloaded on change")
	seed := flag.Uint64("seed", 0, "fixed random seed for spawn nodes and particles")
	flag.Parse()

	if *tuningPath != "" {
		t, err := config.LoadTuning(*tuningPath, config.CurrentTuning())
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		config.ApplyTuning(t)
	}

	// Initialize persistence and load saved settings
	settings := config.DefaultSettings()
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		settings = *saved
	}
	if *duration > 0 {
		settings.MatchDuration = *duration
	}
	if *winScore > 0 {
		settings.WinScore = *winScore
	}
	if err := settings.Validate(); err != nil {
		log.Printf("Warning: %v", err)
		settings = settings.Clamp()
	}
	if err := systems.SaveSettings(settings); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
	}

	var watcher *config.TuningWatcher
	if *tuningPath != "" {
		w, err := config.WatchTuning(*tuningPath, config.CurrentTuning())
		if err != nil {
			log.Printf("Warning: tuning hot reload disabled: %v", err)
		} else {
			watcher = w
			defer watcher.Close()
		}
	}

	if err := fonts.LoadDefaults(config.HUD.FontSize, config.HUD.TitleFontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TickRate)

	opts := []scenes.Option{scenes.WithSettings(settings)}
	if *seed != 0 {
		opts = append(opts, scenes.WithRand(rand.New(rand.NewPCG(*seed, *seed))))
	}

	if err := ebiten.RunGame(NewGame(watcher, opts...)); err != nil {
		log.Fatal(err)
	}
}
