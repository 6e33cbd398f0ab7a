package damage

import "github.com/chewxy/math32"

// Rect is an axis-aligned rectangle in scalar coordinates.
// Left/Top is the minimum corner, Right/Bottom the maximum.
type Rect struct {
	Left, Top, Right, Bottom Scalar
}

// MakeXYWH creates a rectangle from its top-left corner and dimensions.
func MakeXYWH(x, y, w, h Scalar) Rect {
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// MakeLTRB creates a rectangle from its four edges.
func MakeLTRB(left, top, right, bottom Scalar) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() Scalar {
	return r.Right - r.Left
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() Scalar {
	return r.Bottom - r.Top
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// MakeOutset returns the rectangle expanded outward to the nearest integer
// pixel boundaries: floor for the left/top edges, ceil for right/bottom.
func (r Rect) MakeOutset() Rect {
	return Rect{
		Left:   math32.Floor(r.Left),
		Top:    math32.Floor(r.Top),
		Right:  math32.Ceil(r.Right),
		Bottom: math32.Ceil(r.Bottom),
	}
}

// Outset returns the rectangle grown by d on every edge.
func (r Rect) Outset(d Scalar) Rect {
	return Rect{
		Left:   r.Left - d,
		Top:    r.Top - d,
		Right:  r.Right + d,
		Bottom: r.Bottom + d,
	}
}

// IntersectsWithTolerance reports whether the closures of r and other
// overlap within Epsilon. Numerically-adjacent rectangles count as
// intersecting so that they merge instead of abutting.
func (r Rect) IntersectsWithTolerance(other Rect) bool {
	return r.Left <= other.Right+Epsilon &&
		other.Left <= r.Right+Epsilon &&
		r.Top <= other.Bottom+Epsilon &&
		other.Top <= r.Bottom+Epsilon
}

// Join returns the smallest rectangle containing both r and other.
func (r Rect) Join(other Rect) Rect {
	return Rect{
		Left:   math32.Min(r.Left, other.Left),
		Top:    math32.Min(r.Top, other.Top),
		Right:  math32.Max(r.Right, other.Right),
		Bottom: math32.Max(r.Bottom, other.Bottom),
	}
}

// Intersect returns the overlap of r and other, or the zero Rect when they
// do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	out := Rect{
		Left:   math32.Max(r.Left, other.Left),
		Top:    math32.Max(r.Top, other.Top),
		Right:  math32.Min(r.Right, other.Right),
		Bottom: math32.Min(r.Bottom, other.Bottom),
	}
	if out.Right <= out.Left || out.Bottom <= out.Top {
		return Rect{}
	}
	return out
}

// NearlyEqual reports whether all four edges of r and other are equal
// within Epsilon.
func (r Rect) NearlyEqual(other Rect) bool {
	return ScalarNearlyEqual(r.Left, other.Left) &&
		ScalarNearlyEqual(r.Top, other.Top) &&
		ScalarNearlyEqual(r.Right, other.Right) &&
		ScalarNearlyEqual(r.Bottom, other.Bottom)
}
