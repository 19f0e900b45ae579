// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"cogentcore.org/gltut/base/tolassert"
	"github.com/stretchr/testify/assert"
)

const StandardTol = float32(1.0e-6)

func TolAssertEqualVector3(t *testing.T, tol float32, vt, va Vector3) {
	t.Helper()
	tolassert.EqualTol(t, vt.X, va.X, tol)
	tolassert.EqualTol(t, vt.Y, va.Y, tol)
	tolassert.EqualTol(t, vt.Z, va.Z, tol)
}

func TolAssertEqualMatrix4(t *testing.T, tol float32, mt, ma Matrix4) {
	t.Helper()
	tolassert.EqualTolSlice(t, mt[:], ma[:], tol)
}

var testMatrices = []Matrix4{
	{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16},
	Perspective(45, 4.0/3.0, 0.1, 100),
	Ortho(-10, 10, -10, 10, 0, 100),
	LookAt(Vec3(4, 3, 3), Vec3(0, 0, 0), Vec3(0, 1, 0)),
	Rotate(45, Vec3(10, 1, -2)),
	Translate(Vec3(1, -2, 3)).Mul(Scale(Vec3(2, 3, 4))),
}

func TestMatrix4Identity(t *testing.T) {
	id := Identity4()
	for _, m := range testMatrices {
		TolAssertEqualMatrix4(t, StandardTol, m, id.Mul(m))
		TolAssertEqualMatrix4(t, StandardTol, m, m.Mul(id))
	}
}

func TestMatrix4MulOrder(t *testing.T) {
	a := Translate(Vec3(1, 0, 0))
	b := Scale(Vec3(2, 2, 2))
	p := Vec3(1, 1, 1)

	// scale first, then translate
	ab := a.Mul(b)
	TolAssertEqualVector3(t, StandardTol, Vec3(3, 2, 2), ab.MulVector3AsPoint(p))
	// translate first, then scale
	ba := b.Mul(a)
	TolAssertEqualVector3(t, StandardTol, Vec3(4, 2, 2), ba.MulVector3AsPoint(p))

	// associative
	c := Rotate(30, Vec3(0, 1, 0))
	TolAssertEqualMatrix4(t, 1e-5, a.Mul(b).Mul(c), a.Mul(b.Mul(c)))
}

func TestMatrix4MulElements(t *testing.T) {
	m := testMatrices[0]
	r := m.Mul(m)
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m.At(k, row) * m.At(col, k)
			}
			assert.Equal(t, sum, r.At(col, row), "col %d row %d", col, row)
		}
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(90, 1.0, 0.1, 100.0)
	assert.Equal(t, float32(0), m.At(3, 3))
	assert.Equal(t, float32(-1), m.At(2, 3))
	tolassert.EqualTol(t, 1, m.At(0, 0), StandardTol)
	tolassert.EqualTol(t, 1, m.At(1, 1), StandardTol)
	tolassert.EqualTol(t, (100+0.1)/(0.1-100), m.At(2, 2), StandardTol)
	tolassert.EqualTol(t, 2*100*0.1/(0.1-100), m.At(3, 2), StandardTol)

	ma := Perspective(90, 2.0, 0.1, 100.0)
	tolassert.EqualTol(t, 0.5, ma.At(0, 0), StandardTol)

	zeros := 0
	for _, v := range m {
		if v == 0 {
			zeros++
		}
	}
	assert.Equal(t, 11, zeros)

	// near plane maps to -1, far plane to +1
	tolassert.EqualTol(t, -1, m.MulVector3AsPoint(Vec3(0, 0, -0.1)).Z, 1e-4)
	tolassert.EqualTol(t, 1, m.MulVector3AsPoint(Vec3(0, 0, -100)).Z, 1e-4)
}

func TestOrtho(t *testing.T) {
	m := Ortho(-10, 10, -5, 5, 0, 100)
	TolAssertEqualVector3(t, StandardTol, Vec3(-1, -1, -1), m.MulVector3AsPoint(Vec3(-10, -5, 0)))
	TolAssertEqualVector3(t, StandardTol, Vec3(1, 1, 1), m.MulVector3AsPoint(Vec3(10, 5, -100)))
	TolAssertEqualVector3(t, StandardTol, Vec3(0, 0, 0), m.MulVector3AsPoint(Vec3(0, 0, -50)))
	assert.Equal(t, float32(1), m.At(3, 3))
}

func TestLookAt(t *testing.T) {
	eye := Vec3(4, 3, 3)
	m := LookAt(eye, Vec3(0, 0, 0), Vec3(0, 1, 0))

	fwd := Vec3(4, 3, 3).Normal()
	row := m.Row(2)
	TolAssertEqualVector3(t, StandardTol, fwd, Vec3(row.X, row.Y, row.Z))

	// eye maps to the origin, center to the negative z axis
	TolAssertEqualVector3(t, 1e-5, Vec3(0, 0, 0), m.MulVector3AsPoint(eye))
	center := m.MulVector3AsPoint(Vec3(0, 0, 0))
	tolassert.EqualTol(t, 0, center.X, 1e-5)
	tolassert.EqualTol(t, 0, center.Y, 1e-5)
	tolassert.EqualTol(t, -eye.Length(), center.Z, 1e-5)

	// rows of the rotation are orthonormal
	for i := 0; i < 3; i++ {
		ri := m.Row(i)
		v := Vec3(ri.X, ri.Y, ri.Z)
		tolassert.EqualTol(t, 1, v.Length(), StandardTol)
	}

	// same as looking from the origin, then translating by -eye
	dir := LookAt(Vec3(0, 0, 0), Vec3(0, 0, 0).Sub(eye), Vec3(0, 1, 0))
	TolAssertEqualMatrix4(t, 1e-5, dir.Mul(Translate(eye.MulScalar(-1))), m)
}

func TestLookAtDegenerate(t *testing.T) {
	m := LookAt(Vec3(0, 5, 0), Vec3(0, 0, 0), Vec3(0, 1, 0))
	assert.True(t, IsNaN(m.At(0, 0)))
}

func TestTranslateScale(t *testing.T) {
	tr := Translate(Vec3(1, 2, 3))
	assert.Equal(t, Vector4{1, 2, 3, 1}, Vector4{tr.At(3, 0), tr.At(3, 1), tr.At(3, 2), tr.At(3, 3)})
	TolAssertEqualVector3(t, StandardTol, Vec3(1, 2, 3), tr.MulVector3AsPoint(Vec3(0, 0, 0)))
	// directions (w = 0) ignore translation
	assert.Equal(t, Vec4(1, 0, 0, 0), Vec4(1, 0, 0, 0).MulMatrix4(&tr))

	sc := Scale(Vec3(2, 3, 4))
	assert.Equal(t, Matrix4{2, 0, 0, 0, 0, 3, 0, 0, 0, 0, 4, 0, 0, 0, 0, 1}, sc)
}

func TestRotate(t *testing.T) {
	vx := Vec3(1, 0, 0)
	vy := Vec3(0, 1, 0)
	vz := Vec3(0, 0, 1)

	rvz := Rotate(90, vz)
	TolAssertEqualVector3(t, StandardTol, vy, rvz.MulVector3AsPoint(vx))
	rvx := Rotate(90, vx)
	TolAssertEqualVector3(t, StandardTol, vz, rvx.MulVector3AsPoint(vy))
	rvy := Rotate(90, vy)
	TolAssertEqualVector3(t, StandardTol, vx, rvy.MulVector3AsPoint(vz))

	// axis is normalized internally
	TolAssertEqualMatrix4(t, StandardTol, Rotate(90, vz), Rotate(90, Vec3(0, 0, 7)))

	// rotation matrices are orthonormal
	r := Rotate(45, Vec3(10, 1, -2))
	for i := 0; i < 3; i++ {
		ri := r.Row(i)
		tolassert.EqualTol(t, 1, ri.Dot(ri), 1e-5)
		rj := r.Row((i + 1) % 3)
		tolassert.EqualTol(t, 0, ri.Dot(rj), 1e-5)
	}

	degenerate := Rotate(45, Vec3(0, 0, 0))
	assert.True(t, IsNaN(degenerate.At(0, 0)))
}

func TestMatrix4Slice(t *testing.T) {
	m := Translate(Vec3(5, 6, 7))
	s := m.Slice()
	assert.Len(t, s, 16)
	assert.Equal(t, []float32{5, 6, 7, 1}, s[12:])
	s[0] = 42
	assert.Equal(t, float32(1), m[0])

	assert.Equal(t, "[1 0 0 5]\n[0 1 0 6]\n[0 0 1 7]\n[0 0 0 1]", m.String())

	buf := make([]float32, 20)
	m.ToSlice(buf, 4)
	assert.Equal(t, float32(5), buf[16])
}
