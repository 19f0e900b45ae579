// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tutorial

import (
	"testing"

	"cogentcore.org/gltut/base/tolassert"
	"cogentcore.org/gltut/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = float32(1e-5)

func TestGeometry(t *testing.T) {
	assert.Len(t, TriangleVertices(), 3)
	vs := CubeVertices()
	assert.Len(t, vs, 36)
	assert.Len(t, CubeColors(), 36)
	assert.Len(t, CubeUVs(), 36)
	for _, v := range vs {
		assert.Equal(t, float32(1), math32.Abs(v.X))
		assert.Equal(t, float32(1), math32.Abs(v.Y))
		assert.Equal(t, float32(1), math32.Abs(v.Z))
	}
	for _, c := range CubeColors() {
		assert.True(t, c.X >= 0 && c.X <= 1 && c.Y >= 0 && c.Y <= 1 && c.Z >= 0 && c.Z <= 1, c)
	}
	assert.Equal(t, math32.Vec2(0.000059, 0.000004), CubeUVs()[0])

	// every triangle lies on one face of the cube
	for i := 0; i < len(vs); i += 3 {
		a, b, c := vs[i], vs[i+1], vs[i+2]
		onFace := (a.X == b.X && b.X == c.X) || (a.Y == b.Y && b.Y == c.Y) || (a.Z == b.Z && b.Z == c.Z)
		assert.True(t, onFace, "triangle %d", i/3)
		// half of a 2x2 face
		n := b.Sub(a).Cross(c.Sub(a))
		tolassert.EqualTol(t, 4, n.Length(), tol, "triangle %d", i/3)
	}
}

func TestScenes(t *testing.T) {
	scs := Scenes()
	var nums []int
	for _, s := range scs {
		nums = append(nums, s.Number)
	}
	assert.Equal(t, []int{2, 3, 4, 5, 6, 7}, nums)

	s, err := Get(3)
	require.NoError(t, err)
	assert.Equal(t, "Tutorial 03", s.Title)
	tolassert.EqualTolSlice(t, math32.Ortho(-10, 10, -10, 10, 0, 100).Slice(), s.Projection.Slice(), tol)
	tolassert.EqualTolSlice(t, math32.Rotate(45, math32.Vec3(10, 1, -2)).Slice(), s.Model.Slice(), tol)

	_, err = Get(1)
	assert.ErrorIs(t, err, ErrNoScene)
	_, err = Get(8)
	assert.ErrorIs(t, err, ErrNoScene)
}

func TestSceneMVP(t *testing.T) {
	s, err := Get(4)
	require.NoError(t, err)
	p := math32.Perspective(45, 4.0/3.0, 0.1, 100)
	v := math32.LookAt(math32.Vec3(4, 3, 3), math32.Vec3(0, 0, 0), math32.Vec3(0, 1, 0))
	tolassert.EqualTolSlice(t, p.Mul(v).Slice(), s.MVP().Slice(), tol)

	// the cameras of tut04 and tut06 start out the same
	s6, err := Get(6)
	require.NoError(t, err)
	tolassert.EqualTolSlice(t, s.MVP().Slice(), s6.MVP().Slice(), tol)
}

func TestNDCVertices(t *testing.T) {
	s, err := Get(2)
	require.NoError(t, err)
	ndc := s.NDCVertices()
	require.Len(t, ndc, 3)
	for i, v := range TriangleVertices() {
		assert.Equal(t, v, ndc[i])
	}

	// the whole cube is visible in tut04
	s, err = Get(4)
	require.NoError(t, err)
	for i, c := range s.ClipVertices() {
		assert.Greater(t, c.W, float32(0), "vertex %d", i)
		n := c.PerspDiv()
		assert.True(t, math32.Abs(n.X) <= 1 && math32.Abs(n.Y) <= 1 && math32.Abs(n.Z) <= 1, "vertex %d: %v", i, n)
	}
}
