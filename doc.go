// Package damage computes raster damage for a retained-mode 2D rendering
// pipeline.
//
// # Overview
//
// Given successive display lists describing what should appear on a
// surface, a Resolver computes the minimal set of axis-aligned rectangles
// whose pixels must be re-rasterized to bring the framebuffer into sync
// with the new scene. Restricting the next raster pass to these rectangles
// avoids redrawing unchanged regions, which is the key optimization of an
// incremental compositor.
//
// # Quick Start
//
//	import "github.com/gogpu/damage"
//
//	resolver := damage.New()
//
//	// Per frame:
//	resolver.BeginUpdates(800, 600)
//	resolver.AddDamageFromDisplayListUpdates(displayList)
//	rects := resolver.EndUpdates()
//
//	// rects is the merged damage list; empty means nothing changed.
//
// # Architecture
//
// The library is organized into:
//   - Geometry: Rect, Matrix, Path (clip handle), Scalar helpers
//   - Display list: Op variants, DisplayList, Builder, Visitor
//   - Resolution: CompositionState stack walk, LayerContent diffing,
//     union-merged damage list
//   - raster: integer clip regions and damage-clipped buffer presentation
//
// # Damage Model
//
// Damage is conservative, never exact: every contributed rectangle is
// snapped outward to integer pixel boundaries and grown by one pixel for
// anti-aliasing bleed. Layer contributions are tracked across frames by
// 64-bit layer id; disappeared, moved, and flagged layers emit damage at
// EndUpdates. A newly appearing layer emits damage only when it is flagged. All scalar comparisons are epsilon-tolerant
// (Epsilon = 1e-4) so numerically-equivalent transforms produced by
// different code paths compare equal.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
package damage
