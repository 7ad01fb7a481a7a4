package components

import (
	"github.com/automoto/stickybomb/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// Rect returns the object's bounds.
func (o *ObjectData) Rect() gamemath.Rect {
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// Center returns the middle of the object's bounds.
func (o *ObjectData) Center() gamemath.Vec2 {
	return o.Rect().Center()
}

// MoveTo places the object's top-left corner and refreshes its cells in the
// collision space.
func (o *ObjectData) MoveTo(x, y float64) {
	o.X = x
	o.Y = y
	o.Update()
}

// CenterOn places the object so its center is at c.
func (o *ObjectData) CenterOn(c gamemath.Vec2) {
	o.MoveTo(c.X-o.W/2, c.Y-o.H/2)
}

var (
	Object = donburi.NewComponentType[ObjectData]()
	Space  = donburi.NewComponentType[resolv.Space]()
)
