// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tutorial provides the transforms and geometry of the
// individual tutorial scenes.
package tutorial

import (
	"fmt"
	"slices"

	"cogentcore.org/gltut/base/errors"
	"cogentcore.org/gltut/camera"
	"cogentcore.org/gltut/math32"
)

// ErrNoScene is returned by [Get] for a tutorial without a scene.
var ErrNoScene = errors.New("tutorial: no such scene")

// Scene is the transform setup of one tutorial.
type Scene struct {

	// Number is the tutorial number.
	Number int

	// Title is the window title.
	Title string

	// Projection is the projection matrix.
	Projection math32.Matrix4

	// View is the camera matrix.
	View math32.Matrix4

	// Model is the model matrix.
	Model math32.Matrix4

	// Vertices are the vertices drawn by the scene.
	Vertices []math32.Vector3
}

// MVP returns the model-view-projection matrix of the scene.
func (s *Scene) MVP() math32.Matrix4 {
	return s.Projection.Mul(s.View).Mul(s.Model)
}

// ClipVertices returns the scene vertices transformed by [Scene.MVP]
// into homogeneous clip coordinates.
func (s *Scene) ClipVertices() []math32.Vector4 {
	mvp := s.MVP()
	res := make([]math32.Vector4, len(s.Vertices))
	for i, v := range s.Vertices {
		res[i] = math32.Vector4FromVector3(v, 1).MulMatrix4(&mvp)
	}
	return res
}

// NDCVertices returns the scene vertices in normalized device
// coordinates, after the perspective divide.
func (s *Scene) NDCVertices() []math32.Vector3 {
	mvp := s.MVP()
	res := make([]math32.Vector3, len(s.Vertices))
	for i, v := range s.Vertices {
		res[i] = mvp.MulVector3AsPoint(v)
	}
	return res
}

func (s *Scene) String() string {
	return fmt.Sprintf("tut%02d %q, %d vertices", s.Number, s.Title, len(s.Vertices))
}

// camera is at (4,3,3) in world space, looking at the origin, with Y up.
func defaultView() math32.Matrix4 {
	return math32.LookAt(math32.Vec3(4, 3, 3), math32.Vec3(0, 0, 0), math32.Vec3(0, 1, 0))
}

// 45° field of view, 4:3 ratio, display range 0.1 unit <-> 100 units.
func defaultProjection() math32.Matrix4 {
	return math32.Perspective(45, 4.0/3.0, 0.1, 100)
}

// Scenes returns the scenes of all the tutorials that use transforms,
// in tutorial order.
func Scenes() []*Scene {
	cam := camera.New()
	return []*Scene{
		{
			Number:     2,
			Title:      "Tutorial 02",
			Projection: math32.Identity4(),
			View:       math32.Identity4(),
			Model:      math32.Identity4(),
			Vertices:   TriangleVertices(),
		},
		{
			Number:     3,
			Title:      "Tutorial 03",
			Projection: math32.Ortho(-10, 10, -10, 10, 0, 100),
			View:       defaultView(),
			Model:      math32.Rotate(45, math32.Vec3(10, 1, -2)),
			Vertices:   TriangleVertices(),
		},
		{
			Number:     4,
			Title:      "Tutorial 04",
			Projection: defaultProjection(),
			View:       defaultView(),
			Model:      math32.Identity4(),
			Vertices:   CubeVertices(),
		},
		{
			Number:     5,
			Title:      "Tutorial 05",
			Projection: defaultProjection(),
			View:       defaultView(),
			Model:      math32.Identity4(),
			Vertices:   CubeVertices(),
		},
		{
			Number:     6,
			Title:      "Tutorial 06",
			Projection: cam.Projection,
			View:       cam.View,
			Model:      math32.Identity4(),
			Vertices:   CubeVertices(),
		},
		// tut07 draws a mesh loaded with the obj package.
		{
			Number:     7,
			Title:      "Tutorial 07",
			Projection: cam.Projection,
			View:       cam.View,
			Model:      math32.Identity4(),
		},
	}
}

// Get returns the scene of the given tutorial number.
func Get(n int) (*Scene, error) {
	scs := Scenes()
	i := slices.IndexFunc(scs, func(s *Scene) bool { return s.Number == n })
	if i < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNoScene, n)
	}
	return scs[i], nil
}
