package damage

// CompositionState is one element of the stack maintained while walking a
// display list. It accumulates the absolute transform, the product of
// ancestor opacities, and the intersection of ancestor clips, and maps
// local-coordinate rectangles to absolute surface coordinates.
//
// The depth-0 state carries the empty clip path (nothing clipped), the
// surface's ingestion-scale matrix, and opacity 1.
type CompositionState struct {
	clip    *Path
	matrix  Matrix
	opacity Scalar
}

// NewCompositionState creates a composition state from its absolute parts.
func NewCompositionState(clip *Path, matrix Matrix, opacity Scalar) CompositionState {
	return CompositionState{clip: clip, matrix: matrix, opacity: opacity}
}

// PushContext derives the state for a child context: the child matrix is
// composed on the right, the opacity multiplied, and the clip inherited.
func (s CompositionState) PushContext(childOpacity Scalar, childMatrix Matrix) CompositionState {
	return CompositionState{
		clip:    s.clip,
		matrix:  s.matrix.Multiply(childMatrix),
		opacity: s.opacity * childOpacity,
	}
}

// ClipRect intersects the accumulated clip with the local-coordinate
// rectangle (0, 0, width, height), stored in absolute coordinates.
func (s *CompositionState) ClipRect(width, height Scalar) {
	s.clip = s.clip.ClipRect(s.matrix.MapRect(MakeXYWH(0, 0, width, height)))
}

// ClipRound intersects the accumulated clip with the local-coordinate
// rounded rectangle (0, 0, width, height), stored in absolute coordinates.
func (s *CompositionState) ClipRound(borderRadius, width, height Scalar) {
	s.clip = s.clip.ClipRound(s.matrix.MapRect(MakeXYWH(0, 0, width, height)), borderRadius)
}

// AbsoluteClippedRect projects a local rectangle through the accumulated
// matrix and intersects it with the bounding box of the accumulated clip.
func (s CompositionState) AbsoluteClippedRect(local Rect) Rect {
	abs := s.matrix.MapRect(local)
	if bounds, ok := s.clip.Bounds(); ok {
		abs = abs.Intersect(bounds)
	}
	return abs
}

// AbsoluteMatrix returns the accumulated local-to-surface transform.
func (s CompositionState) AbsoluteMatrix() Matrix {
	return s.matrix
}

// AbsoluteClipPath returns the accumulated clip path.
func (s CompositionState) AbsoluteClipPath() *Path {
	return s.clip
}

// AbsoluteOpacity returns the product of ancestor opacities.
func (s CompositionState) AbsoluteOpacity() Scalar {
	return s.opacity
}
