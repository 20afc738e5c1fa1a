package core

// Point represents a 2D grid coordinate
type Point struct {
	X, Y int
}

// Rect is an inclusive rectangle in grid coordinates
// Normalized rects satisfy Left <= Right and Top <= Bottom
type Rect struct {
	Left, Top     int
	Right, Bottom int
}

// NormalizeRect builds the rect spanned by two corners in any order
func NormalizeRect(a, b Point) Rect {
	return Rect{
		Left:   min(a.X, b.X),
		Top:    min(a.Y, b.Y),
		Right:  max(a.X, b.X),
		Bottom: max(a.Y, b.Y),
	}
}

// Width returns the number of columns covered
func (r Rect) Width() int {
	return r.Right - r.Left + 1
}

// Height returns the number of rows covered
func (r Rect) Height() int {
	return r.Bottom - r.Top + 1
}

// TopLeft returns the origin corner
func (r Rect) TopLeft() Point {
	return Point{X: r.Left, Y: r.Top}
}

// Contains reports whether p lies inside the rect
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// Clip intersects r with bounds, ok is false if nothing remains
func (r Rect) Clip(bounds Rect) (Rect, bool) {
	out := Rect{
		Left:   max(r.Left, bounds.Left),
		Top:    max(r.Top, bounds.Top),
		Right:  min(r.Right, bounds.Right),
		Bottom: min(r.Bottom, bounds.Bottom),
	}
	if out.Left > out.Right || out.Top > out.Bottom {
		return Rect{}, false
	}
	return out, true
}
