package factory

import (
	"github.com/automoto/stickybomb/archetypes"
	"github.com/automoto/stickybomb/components"
	cfg "github.com/automoto/stickybomb/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMatch spawns the match singleton for the given settings. The match
// starts stopped; the scene flips it to running.
func CreateMatch(ecs *ecs.ECS, settings cfg.Settings) *donburi.Entry {
	match := archetypes.Match.Spawn(ecs)
	components.Match.SetValue(match, components.MatchData{
		TimeLeft:        settings.MatchDuration,
		Duration:        settings.MatchDuration,
		WinScore:        settings.WinScore,
		Winner:          cfg.WinnerPending,
		LastWholeSecond: -1,
	})
	return match
}

func CreateParticles(ecs *ecs.ECS) *donburi.Entry {
	particles := archetypes.Particles.Spawn(ecs)
	components.Particles.SetValue(particles, components.ParticlesData{
		Live: make([]components.Particle, 0, cfg.Particles.MaxLive),
	})
	return particles
}

func CreateRNG(ecs *ecs.ECS, r components.Rand) *donburi.Entry {
	e := archetypes.RNG.Spawn(ecs)
	components.RNG.SetValue(e, components.RNGData{Rand: r})
	return e
}
