// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Vector2 is a 2D vector with X and Y components.
// It is mostly used for U, V texture coordinates.
type Vector2 struct {
	X float32
	Y float32
}

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2(x, y float32) Vector2 {
	return Vector2{X: x, Y: y}
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}

// ToSlice copies this vector's components to the given slice, starting at offset.
func (v Vector2) ToSlice(array []float32, offset int) {
	array[offset] = v.X
	array[offset+1] = v.Y
}

// Vector2Slice flattens the given vectors into one float32 slice,
// in the interleaved layout expected by a vertex buffer.
func Vector2Slice(vs []Vector2) []float32 {
	fs := make([]float32, 2*len(vs))
	for i, v := range vs {
		v.ToSlice(fs, 2*i)
	}
	return fs
}
