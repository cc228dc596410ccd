package style

// Vec2 is a 2D position or offset in chart space.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Neg returns -v.
func (v Vec2) Neg() Vec2 { return Vec2{-v.X, -v.Y} }

// Rect is an axis-aligned rectangle with its origin at (X, Y).
type Rect struct {
	X, Y, W, H float64
}

// Min returns the smaller of the two sides.
func (r Rect) Min() float64 {
	if r.W < r.H {
		return r.W
	}
	return r.H
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}
