// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/damage"
)

// DefaultFullCopyThreshold is the damage-rect count above which a full
// copy beats walking a fragmented region.
const DefaultFullCopyThreshold = 16

// Presenter syncs a freshly rasterized back buffer into a front buffer,
// restricted to the damage region. Pixels outside the region are left
// untouched, except when Present falls back to a full copy.
type Presenter struct {
	// FullCopyThreshold overrides DefaultFullCopyThreshold when positive.
	FullCopyThreshold int
}

// Present copies src into dst over the damage region. With an empty damage
// list it does nothing. When the region is too fragmented, or the buffers
// disagree on size, it falls back to one full copy (scaled with
// nearest-neighbor when sizes differ).
func (p *Presenter) Present(dst xdraw.Image, src image.Image, rects []damage.Rect) {
	if len(rects) == 0 {
		return
	}

	if dst.Bounds().Dx() != src.Bounds().Dx() || dst.Bounds().Dy() != src.Bounds().Dy() {
		xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
		return
	}

	threshold := p.FullCopyThreshold
	if threshold <= 0 {
		threshold = DefaultFullCopyThreshold
	}

	region := Region(dst.Bounds(), rects)
	if len(region) > threshold {
		xdraw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, xdraw.Src)
		return
	}

	for _, r := range region {
		sp := src.Bounds().Min.Add(r.Min.Sub(dst.Bounds().Min))
		xdraw.Draw(dst, r, src, sp, xdraw.Src)
	}
}
