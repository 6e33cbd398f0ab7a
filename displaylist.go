package damage

// OpKind identifies a display-list operation variant.
type OpKind uint8

// Operation variant constants.
const (
	// OpPushContext opens a child composition context.
	OpPushContext OpKind = iota
	// OpPopContext closes the innermost context.
	OpPopContext
	// OpClipRect intersects the current clip with a local rectangle.
	OpClipRect
	// OpClipRound intersects the current clip with a local rounded rectangle.
	OpClipRound
	// OpDrawPicture draws a recorded picture.
	OpDrawPicture
	// OpDrawExternalSurface draws a snapshot of an external surface.
	OpDrawExternalSurface
	// OpPrepareMask rasterizes a mask onto the mask target.
	OpPrepareMask
	// OpApplyMask composites the prepared mask over prior draws.
	OpApplyMask
)

// String returns a human-readable name for the operation kind.
func (k OpKind) String() string {
	switch k {
	case OpPushContext:
		return "PushContext"
	case OpPopContext:
		return "PopContext"
	case OpClipRect:
		return "ClipRect"
	case OpClipRound:
		return "ClipRound"
	case OpDrawPicture:
		return "DrawPicture"
	case OpDrawExternalSurface:
		return "DrawExternalSurface"
	case OpPrepareMask:
		return "PrepareMask"
	case OpApplyMask:
		return "ApplyMask"
	default:
		return "Unknown"
	}
}

// Picture is a recorded drawing whose cull rectangle bounds everything it
// can touch, in local coordinates.
type Picture interface {
	CullRect() Rect
}

// Mask produces its local-coordinate bounds; the mask contents themselves
// are opaque to damage resolution.
type Mask interface {
	Bounds() Rect
}

// ExternalSurface is a surface rendered outside this pipeline and composed
// into it, e.g. a platform view or video frame.
type ExternalSurface interface {
	RelativeSize() (width, height Scalar)
}

// ExternalSurfaceSnapshot pins one frame of an external surface.
type ExternalSurfaceSnapshot interface {
	ExternalSurface() ExternalSurface
}

// Op is a single display-list operation. Kind selects the variant; the
// remaining fields are the variant payloads.
type Op struct {
	Kind OpKind

	// PushContext
	Opacity    Scalar
	Matrix     Matrix
	LayerID    uint64
	HasUpdates bool

	// ClipRect / ClipRound
	Width, Height Scalar
	BorderRadius  Scalar

	// Draw / mask payloads
	Picture Picture
	Surface ExternalSurfaceSnapshot
	Mask    Mask
}

// Visitor receives display-list operations in producer order.
type Visitor interface {
	Visit(op Op)
}

// DisplayList is an immutable ordered description of one frame's drawing
// operations, organized into planes.
type DisplayList struct {
	width, height Scalar
	planes        [][]Op
}

// Size returns the display list's logical dimensions.
func (dl *DisplayList) Size() (width, height Scalar) {
	return dl.width, dl.height
}

// PlanesCount returns the number of planes.
func (dl *DisplayList) PlanesCount() int {
	return len(dl.planes)
}

// VisitOperations feeds every operation of the given plane to v, in
// producer order.
func (dl *DisplayList) VisitOperations(plane int, v Visitor) {
	for _, op := range dl.planes[plane] {
		v.Visit(op)
	}
}

// boundsPicture is a Picture that records nothing beyond its cull rect.
type boundsPicture struct {
	cull Rect
}

// BoundsPicture returns a Picture whose only content is its cull rectangle.
// Producers that already know a drawing's bounds can contribute damage
// without recording real drawing commands.
func BoundsPicture(cull Rect) Picture {
	return boundsPicture{cull: cull}
}

func (p boundsPicture) CullRect() Rect {
	return p.cull
}
