package damage

// Builder provides a fluent API for constructing display lists.
// Operations are appended to the current plane in call order; NextPlane
// starts a new plane.
//
// Example:
//
//	list := NewBuilder(100, 100).
//	    PushContext(1.0, IdentityMatrix(), 1, false).
//	    DrawBounds(100, 100).
//	    WithContext(1.0, TranslateMatrix(50, 50), 2, true, func(b *Builder) {
//	        b.DrawBounds(10, 10)
//	    }).
//	    PopContext().
//	    Build()
type Builder struct {
	width, height Scalar
	planes        [][]Op
	depth         int
}

// NewBuilder creates a builder for a display list of the given logical size
// with a single empty plane.
func NewBuilder(width, height Scalar) *Builder {
	return &Builder{
		width:  width,
		height: height,
		planes: make([][]Op, 1),
	}
}

func (b *Builder) push(op Op) *Builder {
	plane := len(b.planes) - 1
	b.planes[plane] = append(b.planes[plane], op)
	return b
}

// PushContext opens a child context with the given opacity, local matrix,
// layer id, and intra-layer update flag.
//
// A producer introducing a layer for the first time must set hasUpdates on
// the introducing frame; the resolver has no other appearance signal.
func (b *Builder) PushContext(opacity Scalar, matrix Matrix, layerID uint64, hasUpdates bool) *Builder {
	b.depth++
	return b.push(Op{
		Kind:       OpPushContext,
		Opacity:    opacity,
		Matrix:     matrix,
		LayerID:    layerID,
		HasUpdates: hasUpdates,
	})
}

// PopContext closes the innermost open context.
func (b *Builder) PopContext() *Builder {
	if b.depth == 0 {
		panic("damage: PopContext without matching PushContext")
	}
	b.depth--
	return b.push(Op{Kind: OpPopContext})
}

// WithContext executes the callback inside a child context.
// The context is popped after the callback completes.
func (b *Builder) WithContext(opacity Scalar, matrix Matrix, layerID uint64, hasUpdates bool, fn func(*Builder)) *Builder {
	b.PushContext(opacity, matrix, layerID, hasUpdates)
	if fn != nil {
		fn(b)
	}
	return b.PopContext()
}

// ClipRect intersects the current context's clip with the local rectangle
// (0, 0, width, height).
func (b *Builder) ClipRect(width, height Scalar) *Builder {
	return b.push(Op{Kind: OpClipRect, Width: width, Height: height})
}

// ClipRound intersects the current context's clip with the local rounded
// rectangle (0, 0, width, height).
func (b *Builder) ClipRound(borderRadius, width, height Scalar) *Builder {
	return b.push(Op{Kind: OpClipRound, BorderRadius: borderRadius, Width: width, Height: height})
}

// DrawPicture records a picture draw.
func (b *Builder) DrawPicture(p Picture) *Builder {
	return b.push(Op{Kind: OpDrawPicture, Picture: p})
}

// DrawBounds records a draw covering the local rectangle
// (0, 0, width, height).
func (b *Builder) DrawBounds(width, height Scalar) *Builder {
	return b.DrawPicture(BoundsPicture(MakeXYWH(0, 0, width, height)))
}

// DrawExternalSurface records an external surface draw.
func (b *Builder) DrawExternalSurface(s ExternalSurfaceSnapshot) *Builder {
	return b.push(Op{Kind: OpDrawExternalSurface, Surface: s})
}

// PrepareMask records a mask rasterization.
func (b *Builder) PrepareMask(m Mask) *Builder {
	return b.push(Op{Kind: OpPrepareMask, Mask: m})
}

// ApplyMask records the application of the prepared mask.
func (b *Builder) ApplyMask() *Builder {
	return b.push(Op{Kind: OpApplyMask})
}

// NextPlane starts a new plane. Subsequent operations are appended to it.
func (b *Builder) NextPlane() *Builder {
	b.planes = append(b.planes, nil)
	return b
}

// Build returns the constructed display list and resets the builder for
// reuse. Build panics if a pushed context was never popped.
func (b *Builder) Build() *DisplayList {
	if b.depth != 0 {
		panic("damage: Build with unbalanced PushContext")
	}
	list := &DisplayList{width: b.width, height: b.height, planes: b.planes}
	b.planes = make([][]Op, 1)
	return list
}
