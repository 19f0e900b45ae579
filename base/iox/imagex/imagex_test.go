// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAsRGBA(t *testing.T) {
	assert.Nil(t, AsRGBA(nil))

	rgba := image.NewRGBA(image.Rect(0, 0, 2, 2))
	assert.Same(t, rgba, AsRGBA(rgba))

	rgba.SetRGBA(1, 1, color.RGBA{10, 20, 30, 255})
	sub := rgba.SubImage(image.Rect(1, 1, 2, 2))
	out := AsRGBA(sub)
	assert.NotSame(t, rgba, out)
	assert.Equal(t, image.Rect(0, 0, 1, 1), out.Bounds())
	assert.Equal(t, color.RGBA{10, 20, 30, 255}, out.RGBAAt(0, 0))

	gray := image.NewGray(image.Rect(0, 0, 1, 1))
	gray.SetGray(0, 0, color.Gray{128})
	assert.Equal(t, color.RGBA{128, 128, 128, 255}, AsRGBA(gray).RGBAAt(0, 0))
}

func TestCompareColors(t *testing.T) {
	assert.True(t, CompareUint8(10, 12, 2))
	assert.False(t, CompareUint8(10, 13, 2))
	assert.False(t, CompareUint8(13, 10, 2))
	assert.True(t, CompareColors(color.RGBA{255, 0, 0, 255}, color.RGBA{250, 3, 0, 255}, 5))
	assert.False(t, CompareColors(color.RGBA{255, 0, 0, 255}, color.RGBA{255, 0, 9, 255}, 5))
}
