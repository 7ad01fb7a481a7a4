package systems

import (
	"github.com/automoto/stickybomb/components"
	cfg "github.com/automoto/stickybomb/config"
	"github.com/automoto/stickybomb/shared/gamemath"
	"github.com/automoto/stickybomb/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// trackBody adds a body to the arena's collision space.
func trackBody(ecs *ecs.ECS, obj *components.ObjectData) {
	if obj.Space != nil {
		return
	}
	if e, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(e).Add(obj.Object)
	}
}

// untrackBody takes a body out of the collision space so nothing can touch it.
func untrackBody(obj *components.ObjectData) {
	if obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}
}

// touchingPlayers returns the players whose hitbox overlaps obj, keyed by id.
// The collision space gives the candidates; bodies that only share an edge
// are not touching.
func touchingPlayers(obj *components.ObjectData) map[cfg.PlayerID]*donburi.Entry {
	if obj.Space == nil {
		return nil
	}
	check := obj.Check(0, 0, tags.ResolvPlayer)
	if check == nil {
		return nil
	}

	r := obj.Rect()
	found := make(map[cfg.PlayerID]*donburi.Entry, 2)
	for _, o := range check.ObjectsByTags(tags.ResolvPlayer) {
		e, ok := o.Data.(*donburi.Entry)
		if !ok || e == nil || !e.Valid() {
			continue
		}
		if gamemath.Overlaps(r, rectOf(o)) {
			found[components.Player.Get(e).ID] = e
		}
	}
	return found
}

// touchesSolid reports whether obj overlaps any solid ground body.
func touchesSolid(obj *components.ObjectData) bool {
	if obj.Space == nil {
		return false
	}
	check := obj.Check(0, 0, tags.ResolvSolid)
	if check == nil {
		return false
	}
	r := obj.Rect()
	for _, o := range check.ObjectsByTags(tags.ResolvSolid) {
		if gamemath.Overlaps(r, rectOf(o)) {
			return true
		}
	}
	return false
}

func rectOf(o *resolv.Object) gamemath.Rect {
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}
