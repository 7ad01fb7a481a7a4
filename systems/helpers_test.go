package systems

import (
	"testing"

	"github.com/automoto/stickybomb/components"
	cfg "github.com/automoto/stickybomb/config"
	"github.com/automoto/stickybomb/shared/gamemath"
	"github.com/automoto/stickybomb/systems/factory"
	"github.com/automoto/stickybomb/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// fixedRand always returns the same values.
type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) IntN(n int) int   { return r.n % n }

// newTestECS builds the default arena with a running match.
func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateArena(e, cfg.Arena)
	for _, spawn := range cfg.Player.Spawns {
		factory.CreatePlayer(e, spawn)
	}
	factory.CreateBomb(e)
	factory.CreateMatch(e, cfg.DefaultSettings())
	factory.CreateParticles(e)
	factory.CreateRNG(e, fixedRand{f: 0.5})
	GetMatch(e).IsRunning = true
	return e
}

func mustPlayer(t *testing.T, e *ecs.ECS, id cfg.PlayerID) *donburi.Entry {
	t.Helper()
	p, ok := FindPlayer(e, id)
	if !ok {
		t.Fatalf("player %d not found", id)
	}
	return p
}

func mustBomb(t *testing.T, e *ecs.ECS) (*components.BombData, *components.ObjectData) {
	t.Helper()
	b, ok := tags.Bomb.First(e.World)
	if !ok {
		t.Fatal("bomb not found")
	}
	return components.Bomb.Get(b), components.Object.Get(b)
}

func particleCount(e *ecs.ECS) int {
	p, ok := components.Particles.First(e.World)
	if !ok {
		return 0
	}
	return len(components.Particles.Get(p).Live)
}

// checkBombOwnership verifies that only held or stuck bombs have an owner.
func checkBombOwnership(t *testing.T, bomb *components.BombData) {
	t.Helper()
	if owned := bomb.Owner != cfg.NoPlayer; owned != bomb.State.Owned() {
		t.Fatalf("bomb state %v with owner %d", bomb.State, bomb.Owner)
	}
}

func near(a, b float64) bool {
	const eps = 1e-9
	d := a - b
	return d < eps && d > -eps
}

func centerOf(t *testing.T, e *ecs.ECS, id cfg.PlayerID) gamemath.Vec2 {
	t.Helper()
	return components.Object.Get(mustPlayer(t, e, id)).Center()
}

func setRand(e *ecs.ECS, r components.Rand) {
	components.RNG.Get(components.RNG.MustFirst(e.World)).Rand = r
}

// attachBomb puts the bomb on a player in the given owned state.
func attachBomb(t *testing.T, e *ecs.ECS, id cfg.PlayerID, state cfg.BombStateID) *components.BombData {
	t.Helper()
	bomb, obj := mustBomb(t, e)
	bomb.Active = true
	bomb.State = state
	bomb.Owner = id
	bomb.Timer = cfg.Bomb.FuseTime
	bomb.SpawnTimer = cfg.Bomb.SpawnInterval
	trackBody(e, obj)
	obj.CenterOn(centerOf(t, e, id))
	return bomb
}

// launchBomb puts a free bomb in flight.
func launchBomb(t *testing.T, e *ecs.ECS, center, vel gamemath.Vec2) *components.BombData {
	t.Helper()
	bomb, obj := mustBomb(t, e)
	bomb.Active = true
	bomb.State = cfg.BombThrown
	bomb.Owner = cfg.NoPlayer
	bomb.Vel = vel
	bomb.StickCooldown = 0
	trackBody(e, obj)
	obj.CenterOn(center)
	return bomb
}

func countGameOvers(e *ecs.ECS) *[]components.GameOver {
	var got []components.GameOver
	components.GameEnded.Subscribe(e.World, func(_ donburi.World, ev components.GameOver) {
		got = append(got, ev)
	})
	return &got
}
