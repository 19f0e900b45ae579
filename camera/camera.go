// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package camera provides first-person camera controls driven by
// per-frame mouse and keyboard input, producing the projection and
// view matrices for rendering.
package camera

import (
	"fmt"
	"time"

	"cogentcore.org/gltut/config"
	"cogentcore.org/gltut/math32"
)

// FOV limits for [Controls.Wheel], in degrees.
const (
	MinFOV = 1
	MaxFOV = 120
)

// Controls is a first-person camera. The look direction is given by
// a horizontal angle around the Y axis and a vertical angle above
// the XZ plane, both in radians.
type Controls struct {

	// Position is the camera location in world space.
	Position math32.Vector3

	// HorizontalAngle is the yaw in radians; π/2 looks along +X.
	HorizontalAngle float32

	// VerticalAngle is the pitch in radians.
	VerticalAngle float32

	// FOV is the vertical field of view in degrees.
	FOV float32

	// Aspect is the width / height aspect ratio.
	Aspect float32

	// Near is the near clip plane distance.
	Near float32

	// Far is the far clip plane distance.
	Far float32

	// Speed is the movement speed in units per millisecond.
	Speed float32

	// MouseSpeed is the look speed in radians per millisecond per pixel.
	MouseSpeed float32

	// Projection is the projection matrix as of the last update.
	Projection math32.Matrix4

	// View is the view matrix as of the last update.
	View math32.Matrix4
}

// Input is the user input for one frame.
type Input struct {

	// Delta is the time since the previous frame.
	Delta time.Duration

	// MouseDX and MouseDY are the relative mouse motion in pixels.
	MouseDX, MouseDY float32

	// Forward, Back, Left and Right are the movement key states.
	Forward, Back, Left, Right bool
}

// New returns new [Controls] with default values.
func New() *Controls {
	c := &Controls{}
	c.Defaults()
	return c
}

// Defaults sets the default camera: at (0,0,5) looking along +X,
// with a 45° 4:3 perspective. The initial view looks at the
// origin from (4,3,3) until the first [Controls.Update].
func (c *Controls) Defaults() {
	c.Position = math32.Vec3(0, 0, 5)
	c.HorizontalAngle = math32.Pi / 2
	c.VerticalAngle = 0
	c.FOV = 45
	c.Aspect = 4.0 / 3.0
	c.Near = 0.1
	c.Far = 100
	c.Speed = 0.0005
	c.MouseSpeed = 0.0005
	c.Projection = math32.Perspective(c.FOV, c.Aspect, c.Near, c.Far)
	c.View = math32.LookAt(math32.Vec3(4, 3, 3), math32.Vector3{}, math32.Vec3(0, 1, 0))
}

// SetFromConfig sets the projection and speed settings from
// the given config.
func (c *Controls) SetFromConfig(cfg *config.Config) {
	c.FOV = cfg.Camera.FOV
	c.Near = cfg.Camera.Near
	c.Far = cfg.Camera.Far
	c.Speed = cfg.Camera.Speed
	c.MouseSpeed = cfg.Camera.MouseSpeed
	c.Aspect = cfg.Aspect()
	c.Projection = math32.Perspective(c.FOV, c.Aspect, c.Near, c.Far)
}

// Direction returns the unit look direction for the current angles.
func (c *Controls) Direction() math32.Vector3 {
	sh, ch := math32.Sincos(c.HorizontalAngle)
	sv, cv := math32.Sincos(c.VerticalAngle)
	return math32.Vec3(cv*sh, sv, cv*ch)
}

// Right returns the unit right vector, which is always horizontal.
func (c *Controls) Right() math32.Vector3 {
	s, co := math32.Sincos(c.HorizontalAngle - math32.Pi/2)
	return math32.Vec3(s, 0, co)
}

// Up returns the up vector, perpendicular to [Controls.Right]
// and [Controls.Direction].
func (c *Controls) Up() math32.Vector3 {
	return c.Right().Cross(c.Direction())
}

// Update applies one frame of input: it turns the camera by the
// mouse motion, moves it along the direction and right vectors for
// held keys, and recomputes [Controls.Projection] and [Controls.View].
func (c *Controls) Update(in Input) {
	ms := float32(in.Delta) / float32(time.Millisecond)
	c.HorizontalAngle -= c.MouseSpeed * ms * in.MouseDX
	c.VerticalAngle -= c.MouseSpeed * ms * in.MouseDY

	dir := c.Direction()
	right := c.Right()
	up := right.Cross(dir)

	step := ms * c.Speed
	if in.Forward {
		c.Position.SetAdd(dir.MulScalar(step))
	}
	if in.Back {
		c.Position.SetSub(dir.MulScalar(step))
	}
	if in.Right {
		c.Position.SetAdd(right.MulScalar(step))
	}
	if in.Left {
		c.Position.SetSub(right.MulScalar(step))
	}
	c.UpdateMatrix(dir, up)
}

// UpdateMatrix recomputes the projection and view matrices for the
// given look direction and up vector.
func (c *Controls) UpdateMatrix(dir, up math32.Vector3) {
	c.Projection = math32.Perspective(c.FOV, c.Aspect, c.Near, c.Far)
	c.View = math32.LookAt(c.Position, c.Position.Add(dir), up)
}

// Wheel zooms by changing the field of view 5° per wheel step,
// within [MinFOV, MaxFOV]. It takes effect on the next update.
func (c *Controls) Wheel(dy float32) {
	c.FOV = math32.Clamp(c.FOV-5*dy, MinFOV, MaxFOV)
}

// MVP returns the model-view-projection matrix for the given model matrix.
func (c *Controls) MVP(model math32.Matrix4) math32.Matrix4 {
	return c.Projection.Mul(c.View).Mul(model)
}

func (c *Controls) String() string {
	return fmt.Sprintf("camera at %v, h %.3g, v %.3g, fov %.3g", c.Position, c.HorizontalAngle, c.VerticalAngle, c.FOV)
}
