// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gogpu/damage"
)

func solidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

var (
	red  = color.RGBA{R: 255, A: 255}
	blue = color.RGBA{B: 255, A: 255}
)

func TestPresentCopiesOnlyDamagedRegion(t *testing.T) {
	dst := solidImage(20, 20, blue)
	src := solidImage(20, 20, red)

	var p Presenter
	p.Present(dst, src, []damage.Rect{damage.MakeXYWH(5, 5, 5, 5)})

	assert.Equal(t, red, dst.RGBAAt(5, 5))
	assert.Equal(t, red, dst.RGBAAt(9, 9))
	assert.Equal(t, blue, dst.RGBAAt(4, 4), "outside the region is untouched")
	assert.Equal(t, blue, dst.RGBAAt(10, 10), "outside the region is untouched")
}

func TestPresentEmptyDamageDoesNothing(t *testing.T) {
	dst := solidImage(10, 10, blue)
	src := solidImage(10, 10, red)

	var p Presenter
	p.Present(dst, src, nil)

	assert.Equal(t, blue, dst.RGBAAt(5, 5))
}

func TestPresentFallsBackToFullCopyWhenFragmented(t *testing.T) {
	dst := solidImage(40, 40, blue)
	src := solidImage(40, 40, red)

	rects := make([]damage.Rect, 0, 4)
	for i := 0; i < 4; i++ {
		rects = append(rects, damage.MakeXYWH(damage.Scalar(i*10), 0, 2, 2))
	}

	p := Presenter{FullCopyThreshold: 3}
	p.Present(dst, src, rects)

	// Beyond the threshold everything is copied, damaged or not.
	assert.Equal(t, red, dst.RGBAAt(39, 39))
}

func TestPresentScalesOnSizeMismatch(t *testing.T) {
	dst := solidImage(10, 10, blue)
	src := solidImage(20, 20, red)

	var p Presenter
	p.Present(dst, src, []damage.Rect{damage.MakeXYWH(0, 0, 1, 1)})

	assert.Equal(t, red, dst.RGBAAt(0, 0))
	assert.Equal(t, red, dst.RGBAAt(9, 9), "mismatched sizes force a full scaled copy")
}
