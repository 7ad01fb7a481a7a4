package systems

import (
	"github.com/automoto/stickybomb/components"
	cfg "github.com/automoto/stickybomb/config"
	"github.com/automoto/stickybomb/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput latches the buffered keyboard into every player's input for
// this tick. Press edges are cleared afterwards so each press is seen by
// exactly one tick.
func UpdateInput(ecs *ecs.ECS) {
	kb := GetOrCreateKeyboard(ecs)
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		id := components.Player.Get(e).ID
		input := components.PlayerInput.Get(e)
		for a := cfg.ActionNone + 1; a < cfg.ActionCount; a++ {
			key, ok := cfg.KeyFor(id, a)
			if !ok {
				input.Actions[a] = components.ActionState{}
				continue
			}
			input.Actions[a] = components.ActionState{
				Pressed:     kb.Held[key],
				JustPressed: a.Edge() && kb.Pressed[key],
			}
		}
	})
	clear(kb.Pressed)
}

// KeyDown records a key press. The press edge is only buffered while the
// match accepts input; held state is always tracked.
func KeyDown(ecs *ecs.ECS, key ebiten.Key) {
	kb := GetOrCreateKeyboard(ecs)
	if !kb.Held[key] && acceptsInput(ecs) {
		kb.Pressed[key] = true
	}
	kb.Held[key] = true
}

func KeyUp(ecs *ecs.ECS, key ebiten.Key) {
	kb := GetOrCreateKeyboard(ecs)
	delete(kb.Held, key)
}

// DropPressedKeys discards press edges that no tick has seen yet.
func DropPressedKeys(ecs *ecs.ECS) {
	clear(GetOrCreateKeyboard(ecs).Pressed)
}

func acceptsInput(ecs *ecs.ECS) bool {
	return IsMatchRunning(ecs) && !GetOrCreatePause(ecs).IsPaused
}

// GetOrCreateKeyboard returns the singleton Keyboard component, creating if needed.
func GetOrCreateKeyboard(ecs *ecs.ECS) *components.KeyboardData {
	if _, ok := components.Keyboard.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Keyboard))
		components.Keyboard.SetValue(ent, components.KeyboardData{
			Held:    map[ebiten.Key]bool{},
			Pressed: map[ebiten.Key]bool{},
		})
	}

	ent, _ := components.Keyboard.First(ecs.World)
	return components.Keyboard.Get(ent)
}
