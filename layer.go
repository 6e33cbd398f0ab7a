package damage

// LayerContent records the last known on-surface contribution of one layer:
// its expanded damage rectangle and the composition it was drawn under.
// HasUpdates is the producer's intra-layer change flag; the cross-frame diff
// consumes it.
type LayerContent struct {
	AbsoluteRect    Rect
	AbsoluteMatrix  Matrix
	ClipPath        *Path
	AbsoluteOpacity Scalar
	HasUpdates      bool
}

// resolveDamage cross-checks this frame's layer set against the previous
// frame's and emits damage for disappeared, changed, and appeared layers.
//
// A layer appearing without HasUpdates set is not detected: there is no
// present-in-current-but-absent-in-previous test. Producers must flag the
// introducing frame.
func (r *Resolver) resolveDamage() {
	for layerID, old := range r.previousLayerContents {
		cur, ok := r.layerContents[layerID]
		if !ok {
			// Layer no longer exists, evict the entire previous rect.
			r.addDamage(old.AbsoluteRect)
			continue
		}

		if cur.HasUpdates ||
			!cur.AbsoluteMatrix.NearlyEqual(old.AbsoluteMatrix) ||
			!cur.ClipPath.NearlyEqual(old.ClipPath) ||
			!cur.AbsoluteRect.NearlyEqual(old.AbsoluteRect) ||
			!ScalarNearlyEqual(cur.AbsoluteOpacity, old.AbsoluteOpacity) {
			cur.HasUpdates = false

			r.addDamage(old.AbsoluteRect)
			r.addDamage(cur.AbsoluteRect)
		}
	}

	// Layers not handled above with the flag still set appeared this frame.
	for _, cur := range r.layerContents {
		if cur.HasUpdates {
			cur.HasUpdates = false
			r.addDamage(cur.AbsoluteRect)
		}
	}
}
