package damage

// clipKind identifies the shape of a single clip element.
type clipKind uint8

const (
	clipRect clipKind = iota
	clipRound
)

// clipElement is one accumulated clip region in absolute coordinates.
type clipElement struct {
	kind   clipKind
	rect   Rect
	radius Scalar // corner radius for clipRound, 0 otherwise
}

func (e clipElement) nearlyEqual(other clipElement) bool {
	return e.kind == other.kind &&
		e.rect.NearlyEqual(other.rect) &&
		ScalarNearlyEqual(e.radius, other.radius)
}

// Path is an immutable clipping-region handle: the intersection of the clip
// elements accumulated while walking a display list, each stored as an
// absolute-coordinate rectangle or rounded rectangle.
//
// Paths are shared across composition states and never mutated after
// construction; deriving a clipped path returns a new Path.
type Path struct {
	elems []clipElement
}

// NewPath returns the empty path, which clips nothing.
func NewPath() *Path {
	return &Path{}
}

// IsEmpty reports whether the path has no clip elements.
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.elems) == 0
}

// withElement returns a new Path with e appended. The receiver's element
// slice is capped so the copies never alias growth.
func (p *Path) withElement(e clipElement) *Path {
	if p == nil {
		return &Path{elems: []clipElement{e}}
	}
	elems := p.elems[:len(p.elems):len(p.elems)]
	return &Path{elems: append(elems, e)}
}

// ClipRect returns a path additionally clipped by the given
// absolute-coordinate rectangle.
func (p *Path) ClipRect(r Rect) *Path {
	return p.withElement(clipElement{kind: clipRect, rect: r})
}

// ClipRound returns a path additionally clipped by the given
// absolute-coordinate rounded rectangle.
func (p *Path) ClipRound(r Rect, borderRadius Scalar) *Path {
	return p.withElement(clipElement{kind: clipRound, rect: r, radius: borderRadius})
}

// Bounds returns the absolute axis-aligned bounding box of the clip region:
// the intersection of all element boxes. ok is false for the empty path,
// which does not constrain drawing.
func (p *Path) Bounds() (bounds Rect, ok bool) {
	if p.IsEmpty() {
		return Rect{}, false
	}
	bounds = p.elems[0].rect
	for _, e := range p.elems[1:] {
		bounds = bounds.Intersect(e.rect)
	}
	return bounds, true
}

// NearlyEqual reports whether two paths hold the same clip elements within
// Epsilon. Nil is treated as the empty path.
func (p *Path) NearlyEqual(other *Path) bool {
	if p.IsEmpty() || other.IsEmpty() {
		return p.IsEmpty() == other.IsEmpty()
	}
	if len(p.elems) != len(other.elems) {
		return false
	}
	for i := range p.elems {
		if !p.elems[i].nearlyEqual(other.elems[i]) {
			return false
		}
	}
	return true
}
