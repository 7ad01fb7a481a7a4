package scenes

import (
	"image/color"
	"log"
	"math"
	"math/rand/v2"
	"time"

	"github.com/automoto/stickybomb/components"
	cfg "github.com/automoto/stickybomb/config"
	"github.com/automoto/stickybomb/systems"
	"github.com/automoto/stickybomb/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MatchScene owns one match world and is its only mutator. It is not safe
// for concurrent use; call every method from the ticking goroutine.
type MatchScene struct {
	ecs      *ecs.ECS
	listener Listener
	rand     components.Rand
	settings cfg.Settings
	tuning   *cfg.Tuning
	started  bool
}

type Option func(*MatchScene)

func WithListener(l Listener) Option {
	return func(ms *MatchScene) { ms.listener = l }
}

// WithRand sets the random source for spawn nodes and particles.
func WithRand(r components.Rand) Option {
	return func(ms *MatchScene) { ms.rand = r }
}

func WithSettings(s cfg.Settings) Option {
	return func(ms *MatchScene) { ms.settings = s.Clamp() }
}

// NewMatchScene builds an idle match. Nothing ticks until Start.
func NewMatchScene(opts ...Option) *MatchScene {
	ms := &MatchScene{
		listener: NopListener{},
		settings: cfg.DefaultSettings(),
	}
	for _, opt := range opts {
		opt(ms)
	}
	if ms.rand == nil {
		seed := uint64(time.Now().UnixNano())
		ms.rand = rand.New(rand.NewPCG(seed, seed>>1))
	}
	ms.configure()
	return ms
}

// Start replaces the whole match with a fresh one using the latest settings
// and tuning, then starts the clock.
func (ms *MatchScene) Start() {
	if ms.tuning != nil {
		cfg.ApplyTuning(*ms.tuning)
		ms.tuning = nil
		log.Printf("[tuning] applied")
	}
	ms.configure()
	ms.started = true
	systems.StartMatch(ms.ecs)
	systems.ProcessEvents(ms.ecs)
}

// Tick advances the match by one fixed step. Nothing changes while paused
// or after the match ended.
func (ms *MatchScene) Tick() {
	ms.ecs.Update()
}

func (ms *MatchScene) Update() {
	ms.Tick()
}

func (ms *MatchScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	ms.ecs.Draw(screen)
}

func (ms *MatchScene) SetPaused(paused bool) {
	systems.SetPaused(ms.ecs, paused)
}

func (ms *MatchScene) TogglePause() {
	ms.SetPaused(!ms.IsPaused())
}

func (ms *MatchScene) IsPaused() bool {
	return systems.GetOrCreatePause(ms.ecs).IsPaused
}

func (ms *MatchScene) IsRunning() bool {
	return systems.IsMatchRunning(ms.ecs)
}

func (ms *MatchScene) KeyDown(key ebiten.Key) {
	systems.KeyDown(ms.ecs, key)
}

func (ms *MatchScene) KeyUp(key ebiten.Key) {
	systems.KeyUp(ms.ecs, key)
}

// SetSettings stores new match rules for the next Start. A running match is
// never affected. Before the first match the idle preview is refreshed.
func (ms *MatchScene) SetSettings(s cfg.Settings) {
	ms.settings = s.Clamp()
	if ms.started {
		return
	}
	ms.configure()
	match := systems.GetMatch(ms.ecs)
	ms.listener.OnTimeUpdate(int(math.Ceil(match.TimeLeft)))
}

func (ms *MatchScene) Settings() cfg.Settings {
	return ms.settings
}

// QueueTuning stores tuning to apply at the next Start. Match rules still
// at the tuned defaults follow the new defaults; rules chosen by the player
// are kept.
func (ms *MatchScene) QueueTuning(t cfg.Tuning) {
	defaults := cfg.DefaultSettings()
	if ms.tuning != nil {
		defaults = ms.tuning.Settings()
	}
	if ms.settings == defaults {
		ms.settings = t.Settings().Clamp()
	}
	ms.tuning = &t
}

func (ms *MatchScene) configure() {
	var held map[ebiten.Key]bool
	if ms.ecs != nil {
		held = systems.GetOrCreateKeyboard(ms.ecs).Held
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateInput))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateMatch))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayers))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateBomb))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateParticles))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateHUD))
	ecs.AddSystem(systems.ProcessEvents)

	ecs.AddRenderer(cfg.Default, systems.DrawArena)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayers)
	ecs.AddRenderer(cfg.Default, systems.DrawBomb)
	ecs.AddRenderer(cfg.Default, systems.DrawParticles)
	ecs.AddRenderer(cfg.Default, systems.DrawMatchHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawOverlay)

	factory.CreateArena(ecs, cfg.Arena)
	for _, spawn := range cfg.Player.Spawns {
		factory.CreatePlayer(ecs, spawn)
	}
	factory.CreateBomb(ecs)
	factory.CreateMatch(ecs, ms.settings)
	factory.CreateParticles(ecs)
	factory.CreateRNG(ecs, ms.rand)

	kb := systems.GetOrCreateKeyboard(ecs)
	for k, v := range held {
		kb.Held[k] = v
	}

	ms.subscribe(ecs.World)
	ms.ecs = ecs
}

func (ms *MatchScene) subscribe(w donburi.World) {
	components.ScoreUpdated.Subscribe(w, func(_ donburi.World, e components.ScoreUpdate) {
		ms.listener.OnScoreUpdate(e.P1, e.P2)
	})
	components.TimeUpdated.Subscribe(w, func(_ donburi.World, e components.TimeUpdate) {
		ms.listener.OnTimeUpdate(e.Seconds)
	})
	components.GameEnded.Subscribe(w, func(_ donburi.World, e components.GameOver) {
		ms.listener.OnGameOver(e.Winner)
	})
	components.GameStarted.Subscribe(w, func(_ donburi.World, _ components.GameStart) {
		ms.listener.OnGameStart()
	})
}
