// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package raster consumes damage lists on the raster side: it converts
// scalar damage rectangles into integer device clip regions and restricts
// framebuffer presentation to those regions.
package raster

import (
	"image"

	"github.com/chewxy/math32"

	"github.com/gogpu/damage"
)

// Region converts a damage list into an integer device clip region.
// Each rectangle is rounded outward to whole pixels, clamped to bounds,
// and dropped if nothing of it remains on the surface.
func Region(bounds image.Rectangle, rects []damage.Rect) []image.Rectangle {
	region := make([]image.Rectangle, 0, len(rects))
	for _, r := range rects {
		clipped := image.Rect(
			int(math32.Floor(r.Left)),
			int(math32.Floor(r.Top)),
			int(math32.Ceil(r.Right)),
			int(math32.Ceil(r.Bottom)),
		).Intersect(bounds)
		if clipped.Empty() {
			continue
		}
		region = append(region, clipped)
	}
	return region
}

// DeviceRegion is Region at a device pixel scale: damage rectangles are in
// scalar (point) units and the surface in physical pixels.
func DeviceRegion(bounds image.Rectangle, rects []damage.Rect, pointScale damage.Scalar) []image.Rectangle {
	if pointScale == 1 {
		return Region(bounds, rects)
	}
	scaled := make([]damage.Rect, len(rects))
	for i, r := range rects {
		scaled[i] = damage.Rect{
			Left:   r.Left * pointScale,
			Top:    r.Top * pointScale,
			Right:  r.Right * pointScale,
			Bottom: r.Bottom * pointScale,
		}
	}
	return Region(bounds, scaled)
}
