package systems

import (
	"github.com/automoto/stickybomb/components"
	"github.com/yohamta/donburi/ecs"
)

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// WithRunningCheck wraps a system to skip execution once the match is over.
// A system that ends the match stops the rest of that tick.
func WithRunningCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if !IsMatchRunning(e) {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system so it only runs while the match is live.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(WithRunningCheck(system))
}

// SetPaused changes the pause state. Pending key presses are dropped on pause.
func SetPaused(ecs *ecs.ECS, paused bool) {
	pause := GetOrCreatePause(ecs)
	if pause.IsPaused == paused {
		return
	}
	pause.IsPaused = paused
	if paused {
		DropPressedKeys(ecs)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{IsPaused: false})
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}
