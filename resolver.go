package damage

// contextStackDepth is the expected maximum composition depth. Deeper
// scenes spill to the heap via append.
const contextStackDepth = 8

// Resolver computes the minimal set of surface rectangles whose pixels must
// be re-rasterized to bring the framebuffer in sync with successive display
// lists. It is scoped to one render surface and driven per frame as
// BeginUpdates, any number of AddDamageFromDisplayListUpdates, then
// EndUpdates.
//
// The resolver is not reentrant; concurrent calls on one instance are
// undefined. Separate instances are independent.
//
// A frame abandoned without EndUpdates leaves the current layer contents
// populated; the next BeginUpdates does not clear them, so a restarted
// frame carries the stale contributions until its own EndUpdates.
type Resolver struct {
	width  Scalar
	height Scalar

	layerContents         map[uint64]*LayerContent
	previousLayerContents map[uint64]*LayerContent
	damageRects           []Rect
}

// New creates an empty resolver.
func New() *Resolver {
	return &Resolver{
		layerContents:         make(map[uint64]*LayerContent),
		previousLayerContents: make(map[uint64]*LayerContent),
	}
}

// BeginUpdates announces the surface size for the frame. A size change
// damages the full expanded surface rectangle. Non-finite or negative
// dimensions panic.
func (r *Resolver) BeginUpdates(surfaceWidth, surfaceHeight Scalar) {
	if !isFinite(surfaceWidth) || !isFinite(surfaceHeight) ||
		surfaceWidth < 0 || surfaceHeight < 0 {
		panic("damage: invalid surface size")
	}

	changed := r.width != surfaceWidth || r.height != surfaceHeight
	r.width = surfaceWidth
	r.height = surfaceHeight

	if changed {
		r.addDamage(expandDamage(MakeXYWH(0, 0, surfaceWidth, surfaceHeight)))
	}
}

// AddDamageFromDisplayListUpdates walks the display list under a starting
// composition whose matrix scales display-list coordinates to surface
// coordinates, recording per-layer contributions. Multiple calls between
// BeginUpdates and EndUpdates accumulate.
func (r *Resolver) AddDamageFromDisplayListUpdates(list *DisplayList) {
	listWidth, listHeight := list.Size()
	v := newComputeDamageVisitor(r, r.width/listWidth, r.height/listHeight)
	for i := 0; i < list.PlanesCount(); i++ {
		list.VisitOperations(i, v)
	}
}

// EndUpdates diffs this frame's layer set against the previous frame's,
// rotates the frame state, and returns the merged damage list. The returned
// rectangles are owned by the caller. An empty result means nothing
// changed.
func (r *Resolver) EndUpdates() []Rect {
	r.resolveDamage()

	r.previousLayerContents, r.layerContents = r.layerContents, r.previousLayerContents
	clear(r.layerContents)

	rects := r.damageRects
	r.damageRects = nil
	return rects
}

// setLayerContent registers this frame's contribution for a layer.
// Successive writes for the same layer within a frame overwrite.
func (r *Resolver) setLayerContent(layerID uint64, rect Rect, absoluteMatrix Matrix, clipPath *Path, absoluteOpacity Scalar, hasUpdates bool) {
	content, ok := r.layerContents[layerID]
	if !ok {
		content = &LayerContent{}
		r.layerContents[layerID] = content
	}
	content.AbsoluteRect = rect
	content.AbsoluteMatrix = absoluteMatrix
	content.ClipPath = clipPath
	content.AbsoluteOpacity = absoluteOpacity
	content.HasUpdates = hasUpdates
}

// addDamage inserts rect into the damage list, merging it with every
// rectangle it touches so the list stays pairwise disjoint under tolerance.
// The merged rectangle can grow into rectangles the first pass skipped, so
// the scan repeats until nothing intersects.
func (r *Resolver) addDamage(rect Rect) {
	for {
		merged := false
		for i := range r.damageRects {
			if r.damageRects[i].IntersectsWithTolerance(rect) {
				rect = rect.Join(r.damageRects[i])
				r.damageRects = append(r.damageRects[:i], r.damageRects[i+1:]...)
				merged = true
				break
			}
		}
		if !merged {
			break
		}
	}
	r.damageRects = append(r.damageRects, rect)
}

// expandDamage applies the shared expansion policy: snap outward to integer
// pixel boundaries, then grow by one pixel on every edge. Damage rectangles
// are consumed as raster clip regions and anti-aliasing can touch pixels
// one outside the geometric bounds; without the margin, edge pixels are
// never re-rasterized and leave trailing artifacts.
func expandDamage(r Rect) Rect {
	return r.MakeOutset().Outset(1)
}

// damageContext pairs a composition state with the layer it contributes to.
type damageContext struct {
	state      CompositionState
	layerID    uint64
	hasUpdates bool
}

// computeDamageVisitor walks one display list, maintaining the composition
// stack and registering a contribution for every drawing operation.
type computeDamageVisitor struct {
	resolver *Resolver
	stack    []damageContext
}

func newComputeDamageVisitor(r *Resolver, scaleX, scaleY Scalar) *computeDamageVisitor {
	base := IdentityMatrix()
	base.SetScaleX(scaleX)
	base.SetScaleY(scaleY)

	v := &computeDamageVisitor{
		resolver: r,
		stack:    make([]damageContext, 1, contextStackDepth),
	}
	v.stack[0] = damageContext{
		state: NewCompositionState(NewPath(), base, 1.0),
	}
	return v
}

func (v *computeDamageVisitor) top() *damageContext {
	return &v.stack[len(v.stack)-1]
}

// Visit dispatches one display-list operation.
func (v *computeDamageVisitor) Visit(op Op) {
	switch op.Kind {
	case OpPushContext:
		top := v.top()
		v.stack = append(v.stack, damageContext{
			state:      top.state.PushContext(op.Opacity, op.Matrix),
			layerID:    op.LayerID,
			hasUpdates: op.HasUpdates,
		})

	case OpPopContext:
		if len(v.stack) == 1 {
			panic("damage: PopContext on the root context")
		}
		v.stack = v.stack[:len(v.stack)-1]

	case OpClipRect:
		v.top().state.ClipRect(op.Width, op.Height)

	case OpClipRound:
		v.top().state.ClipRound(op.BorderRadius, op.Width, op.Height)

	case OpDrawPicture:
		v.addDamageIfNeeded(op.Picture.CullRect())

	case OpDrawExternalSurface:
		width, height := op.Surface.ExternalSurface().RelativeSize()
		v.addDamageIfNeeded(MakeXYWH(0, 0, width, height))

	case OpPrepareMask:
		v.addDamageIfNeeded(op.Mask.Bounds())

	case OpApplyMask:
		// Constrained by the preceding PrepareMask and the draws under it;
		// applying adds no damage of its own.
	}
}

// addDamageIfNeeded projects a local bounding rectangle through the current
// composition, expands it, and registers it as the layer's contribution for
// this frame.
func (v *computeDamageVisitor) addDamageIfNeeded(bounds Rect) {
	ctx := v.top()
	absoluteRect := expandDamage(ctx.state.AbsoluteClippedRect(bounds))

	v.resolver.setLayerContent(ctx.layerID,
		absoluteRect,
		ctx.state.AbsoluteMatrix(),
		ctx.state.AbsoluteClipPath(),
		ctx.state.AbsoluteOpacity(),
		ctx.hasUpdates)
}
