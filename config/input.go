package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionDrop
	ActionJump
	ActionThrow
	ActionCount // Must be last - used for array sizing
)

// Edge reports whether the action fires once per key press instead of being
// sampled while held.
func (a ActionID) Edge() bool {
	return a == ActionJump || a == ActionThrow
}

// Binding identifies one player's logical action.
type Binding struct {
	Player PlayerID
	Action ActionID
}

// HostInputConfig holds the keys handled outside the match.
type HostInputConfig struct {
	Start []ebiten.Key
	Pause []ebiten.Key
}

var (
	// ControlSchemeBindings maps every player action to a physical key.
	ControlSchemeBindings map[Binding]ebiten.Key
	HostInput             HostInputConfig
)

func init() {
	ControlSchemeBindings = map[Binding]ebiten.Key{
		{Player1, ActionMoveLeft}:  ebiten.KeyA,
		{Player1, ActionMoveRight}: ebiten.KeyD,
		{Player1, ActionDrop}:      ebiten.KeyS,
		{Player1, ActionJump}:      ebiten.KeyW,
		{Player1, ActionThrow}:     ebiten.KeyG,

		{Player2, ActionMoveLeft}:  ebiten.KeyArrowLeft,
		{Player2, ActionMoveRight}: ebiten.KeyArrowRight,
		{Player2, ActionDrop}:      ebiten.KeyArrowDown,
		{Player2, ActionJump}:      ebiten.KeyArrowUp,
		{Player2, ActionThrow}:     ebiten.KeyL,
	}

	HostInput = HostInputConfig{
		Start: []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace},
		Pause: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
	}
}

// KeyFor returns the key bound to a player's action.
func KeyFor(p PlayerID, a ActionID) (ebiten.Key, bool) {
	k, ok := ControlSchemeBindings[Binding{Player: p, Action: a}]
	return k, ok
}
