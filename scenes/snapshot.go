package scenes

import (
	"image/color"

	"github.com/automoto/stickybomb/components"
	cfg "github.com/automoto/stickybomb/config"
	"github.com/automoto/stickybomb/shared/gamemath"
	"github.com/automoto/stickybomb/systems"
	"github.com/automoto/stickybomb/tags"
)

type PlayerSnapshot struct {
	ID            cfg.PlayerID
	Pos           gamemath.Vec2
	Vel           gamemath.Vec2
	Size          gamemath.Vec2
	HP            int
	MaxHP         int
	FacingRight   bool
	OnGround      bool
	CanDoubleJump bool
	State         cfg.StateID
	RespawnTimer  float64
	Score         int
	AnimRow       int
	AnimFrame     int
}

type BombSnapshot struct {
	Active           bool
	Pos              gamemath.Vec2 // center
	Vel              gamemath.Vec2
	Radius           float64
	State            cfg.BombStateID
	Owner            cfg.PlayerID
	Timer            float64
	TransferCooldown float64
	StickCooldown    float64
	SpawnTimer       float64
}

type ParticleSnapshot struct {
	Pos   gamemath.Vec2
	Vel   gamemath.Vec2
	Life  float64
	Color color.RGBA
	Size  float64
}

// Snapshot is a point-in-time copy of the match. It shares nothing with the
// live world.
type Snapshot struct {
	Players   [2]PlayerSnapshot
	Bomb      BombSnapshot
	Particles []ParticleSnapshot
	TimeLeft  float64
	IsRunning bool
	Winner    cfg.WinnerID
	WinScore  int
	Paused    bool
}

// Snapshot copies the current match state.
func (ms *MatchScene) Snapshot() Snapshot {
	var s Snapshot
	match := systems.GetMatch(ms.ecs)
	s.TimeLeft = match.TimeLeft
	s.IsRunning = match.IsRunning
	s.Winner = match.Winner
	s.WinScore = match.WinScore
	s.Paused = systems.GetOrCreatePause(ms.ecs).IsPaused

	for i, id := range []cfg.PlayerID{cfg.Player1, cfg.Player2} {
		e, ok := systems.FindPlayer(ms.ecs, id)
		if !ok {
			continue
		}
		player := components.Player.Get(e)
		r := components.Object.Get(e).Rect()
		physics := components.Physics.Get(e)
		health := components.Health.Get(e)
		anim := components.Animation.Get(e)
		s.Players[i] = PlayerSnapshot{
			ID:            id,
			Pos:           gamemath.Vec2{X: r.X, Y: r.Y},
			Vel:           gamemath.Vec2{X: physics.SpeedX, Y: physics.SpeedY},
			Size:          gamemath.Vec2{X: r.W, Y: r.H},
			HP:            health.Current,
			MaxHP:         health.Max,
			FacingRight:   player.FacingRight,
			OnGround:      physics.OnGround,
			CanDoubleJump: physics.CanDoubleJump,
			State:         components.State.Get(e).CurrentState,
			RespawnTimer:  player.RespawnTimer,
			Score:         player.Score,
			AnimRow:       anim.Row,
			AnimFrame:     anim.Frame,
		}
	}

	if e, ok := tags.Bomb.First(ms.ecs.World); ok {
		bomb := components.Bomb.Get(e)
		s.Bomb = BombSnapshot{
			Active:           bomb.Active,
			Pos:              components.Object.Get(e).Center(),
			Vel:              bomb.Vel,
			Radius:           bomb.Radius,
			State:            bomb.State,
			Owner:            bomb.Owner,
			Timer:            bomb.Timer,
			TransferCooldown: bomb.TransferCooldown,
			StickCooldown:    bomb.StickCooldown,
			SpawnTimer:       bomb.SpawnTimer,
		}
	}

	if e, ok := components.Particles.First(ms.ecs.World); ok {
		live := components.Particles.Get(e).Live
		s.Particles = make([]ParticleSnapshot, 0, len(live))
		for _, p := range live {
			s.Particles = append(s.Particles, ParticleSnapshot{
				Pos: p.Pos, Vel: p.Vel, Life: p.Life, Color: p.Color, Size: p.Size,
			})
		}
	}
	return s
}
