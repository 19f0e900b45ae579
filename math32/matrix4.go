// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"strings"
)

// Matrix4 is 4x4 matrix organized internally as column matrix:
// element (col, row) is stored at index col*4+row. This is
// the layout expected by the graphics API for uniform matrices,
// so [Matrix4.Slice] can be uploaded directly.
//
// Matrices compose right to left: a.Mul(b) applies b first and
// then a, so a model-view-projection matrix is built as
// projection.Mul(view).Mul(model).
type Matrix4 [16]float32

// Identity4 returns a new identity [Matrix4] matrix.
func Identity4() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// At returns the element at the given column and row.
func (m *Matrix4) At(col, row int) float32 {
	return m[col*4+row]
}

// SetAt sets the element at the given column and row.
func (m *Matrix4) SetAt(col, row int, v float32) {
	m[col*4+row] = v
}

// Row returns the given row as a [Vector4].
func (m *Matrix4) Row(row int) Vector4 {
	return Vec4(m[row], m[4+row], m[8+row], m[12+row])
}

// Slice returns the matrix as a flat column-major slice of 16 floats.
func (m Matrix4) Slice() []float32 {
	fs := make([]float32, 16)
	m.ToSlice(fs, 0)
	return fs
}

// ToSlice copies this matrix's elements to the given slice, starting at offset.
func (m *Matrix4) ToSlice(array []float32, offset int) {
	copy(array[offset:], m[:])
}

// String returns the matrix laid out as 4 rows.
func (m Matrix4) String() string {
	var b strings.Builder
	for row := 0; row < 4; row++ {
		r := m.Row(row)
		fmt.Fprintf(&b, "[%v %v %v %v]", r.X, r.Y, r.Z, r.W)
		if row < 3 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Mul returns the matrix product of this matrix with other:
// result(col, row) = sum over k of m(k, row) * other(col, k).
// The result applies other's transform first, then this one.
func (m Matrix4) Mul(other Matrix4) Matrix4 {
	var r Matrix4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m.At(k, row) * other.At(col, k)
			}
			r[col*4+row] = sum
		}
	}
	return r
}

// MulVector3AsPoint returns the given point transformed by this matrix,
// including the perspective divide.
func (m *Matrix4) MulVector3AsPoint(v Vector3) Vector3 {
	return v.MulMatrix4AsPoint(m)
}

// Perspective returns a right-handed perspective projection matrix
// for the given vertical field of view in degrees, aspect ratio
// (width / height) and near and far clipping distances.
// near == far or aspect == 0 give a degenerate matrix; there is no check.
func Perspective(fovDegrees, aspect, near, far float32) Matrix4 {
	f := 1 / Tan(DegToRad(fovDegrees)/2)
	var m Matrix4
	m.SetAt(0, 0, f/aspect)
	m.SetAt(1, 1, f)
	m.SetAt(2, 2, (far+near)/(near-far))
	m.SetAt(2, 3, -1)
	m.SetAt(3, 2, 2*far*near/(near-far))
	m.SetAt(3, 3, 0)
	return m
}

// Ortho returns an orthographic projection matrix mapping the given box
// to the normalized device cube.
func Ortho(left, right, bottom, top, near, far float32) Matrix4 {
	m := Identity4()
	m.SetAt(0, 0, 2/(right-left))
	m.SetAt(1, 1, 2/(top-bottom))
	m.SetAt(2, 2, -2/(far-near))
	m.SetAt(3, 0, -(right+left)/(right-left))
	m.SetAt(3, 1, -(top+bottom)/(top-bottom))
	m.SetAt(3, 2, -(far+near)/(far-near))
	return m
}

// LookAt returns a view matrix for a camera at eye looking at center,
// with the given up direction. The rows of the rotation part are the
// right, corrected up and backward (negated forward) axes, and the
// translation column is the rotation applied to -eye.
//
// An up direction parallel to the view direction produces NaN elements.
func LookAt(eye, center, up Vector3) Matrix4 {
	f := center.Sub(eye).Normal()
	s := f.Cross(up.Normal()).Normal()
	u := s.Cross(f)

	rot := Identity4()
	rot.SetAt(0, 0, s.X)
	rot.SetAt(1, 0, s.Y)
	rot.SetAt(2, 0, s.Z)
	rot.SetAt(0, 1, u.X)
	rot.SetAt(1, 1, u.Y)
	rot.SetAt(2, 1, u.Z)
	rot.SetAt(0, 2, -f.X)
	rot.SetAt(1, 2, -f.Y)
	rot.SetAt(2, 2, -f.Z)
	rot.SetAt(3, 0, -s.Dot(eye))
	rot.SetAt(3, 1, -u.Dot(eye))
	rot.SetAt(3, 2, f.Dot(eye))
	return rot
}

// Translate returns a matrix that translates by the given vector.
func Translate(t Vector3) Matrix4 {
	m := Identity4()
	m.SetAt(3, 0, t.X)
	m.SetAt(3, 1, t.Y)
	m.SetAt(3, 2, t.Z)
	return m
}

// Scale returns a matrix that scales each axis by the given vector.
func Scale(s Vector3) Matrix4 {
	m := Identity4()
	m.SetAt(0, 0, s.X)
	m.SetAt(1, 1, s.Y)
	m.SetAt(2, 2, s.Z)
	return m
}

// Rotate returns a matrix that rotates by the given angle in degrees
// around the given axis. The axis is normalized first; a zero axis
// produces NaN elements.
func Rotate(angleDegrees float32, axis Vector3) Matrix4 {
	return RotationFromQuat(NewQuatAxisAngle(axis.Normal(), DegToRad(angleDegrees)))
}

// RotationFromQuat returns the rotation matrix for the given
// unit quaternion.
func RotationFromQuat(q Quat) Matrix4 {
	x, y, z, w := q.X, q.Y, q.Z, q.W
	x2, y2, z2 := x+x, y+y, z+z
	xx, xy, xz := x*x2, x*y2, x*z2
	yy, yz, zz := y*y2, y*z2, z*z2
	wx, wy, wz := w*x2, w*y2, w*z2

	m := Identity4()
	m[0] = 1 - (yy + zz)
	m[1] = xy + wz
	m[2] = xz - wy
	m[4] = xy - wz
	m[5] = 1 - (xx + zz)
	m[6] = yz + wx
	m[8] = xz + wy
	m[9] = yz - wx
	m[10] = 1 - (xx + yy)
	return m
}
