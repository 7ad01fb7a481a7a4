package gamemath

// Vec2 is a displacement or velocity pair.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// SquareAround returns the bounding square of a circle.
func SquareAround(center Vec2, radius float64) Rect {
	return Rect{X: center.X - radius, Y: center.Y - radius, W: radius * 2, H: radius * 2}
}

// Overlaps reports whether a and b share a non-empty interior.
// Rectangles that only touch along an edge do not overlap.
func Overlaps(a, b Rect) bool {
	return OverlapsX(a, b) &&
		a.Y < b.Bottom() && a.Bottom() > b.Y
}

// OverlapsX reports whether the horizontal spans of a and b intersect.
func OverlapsX(a, b Rect) bool {
	return a.X < b.Right() && a.Right() > b.X
}
