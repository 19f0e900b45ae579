// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tutorial

import "cogentcore.org/gltut/math32"

// TriangleVertices returns the single triangle drawn by the first tutorials.
func TriangleVertices() []math32.Vector3 {
	return []math32.Vector3{
		math32.Vec3(-1, -1, 0),
		math32.Vec3(1, -1, 0),
		math32.Vec3(0, 1, 0),
	}
}

// CubeVertices returns the 36 vertices (12 triangles) of the cube
// spanning -1..1 on each axis.
func CubeVertices() []math32.Vector3 {
	return []math32.Vector3{
		math32.Vec3(-1, -1, -1),
		math32.Vec3(-1, -1, 1),
		math32.Vec3(-1, 1, 1),
		math32.Vec3(1, 1, -1),
		math32.Vec3(-1, -1, -1),
		math32.Vec3(-1, 1, -1),
		math32.Vec3(1, -1, 1),
		math32.Vec3(-1, -1, -1),
		math32.Vec3(1, -1, -1),
		math32.Vec3(1, 1, -1),
		math32.Vec3(1, -1, -1),
		math32.Vec3(-1, -1, -1),
		math32.Vec3(-1, -1, -1),
		math32.Vec3(-1, 1, 1),
		math32.Vec3(-1, 1, -1),
		math32.Vec3(1, -1, 1),
		math32.Vec3(-1, -1, 1),
		math32.Vec3(-1, -1, -1),
		math32.Vec3(-1, 1, 1),
		math32.Vec3(-1, -1, 1),
		math32.Vec3(1, -1, 1),
		math32.Vec3(1, 1, 1),
		math32.Vec3(1, -1, -1),
		math32.Vec3(1, 1, -1),
		math32.Vec3(1, -1, -1),
		math32.Vec3(1, 1, 1),
		math32.Vec3(1, -1, 1),
		math32.Vec3(1, 1, 1),
		math32.Vec3(1, 1, -1),
		math32.Vec3(-1, 1, -1),
		math32.Vec3(1, 1, 1),
		math32.Vec3(-1, 1, -1),
		math32.Vec3(-1, 1, 1),
		math32.Vec3(1, 1, 1),
		math32.Vec3(-1, 1, 1),
		math32.Vec3(1, -1, 1),
	}
}

// CubeColors returns one color per cube vertex; the values are random.
func CubeColors() []math32.Vector3 {
	return []math32.Vector3{
		math32.Vec3(0.583, 0.771, 0.014),
		math32.Vec3(0.609, 0.115, 0.436),
		math32.Vec3(0.327, 0.483, 0.844),
		math32.Vec3(0.822, 0.569, 0.201),
		math32.Vec3(0.435, 0.602, 0.223),
		math32.Vec3(0.31, 0.747, 0.185),
		math32.Vec3(0.597, 0.77, 0.761),
		math32.Vec3(0.559, 0.436, 0.73),
		math32.Vec3(0.359, 0.583, 0.152),
		math32.Vec3(0.483, 0.596, 0.789),
		math32.Vec3(0.559, 0.861, 0.639),
		math32.Vec3(0.195, 0.548, 0.859),
		math32.Vec3(0.014, 0.184, 0.576),
		math32.Vec3(0.771, 0.328, 0.97),
		math32.Vec3(0.406, 0.615, 0.116),
		math32.Vec3(0.676, 0.977, 0.133),
		math32.Vec3(0.971, 0.572, 0.833),
		math32.Vec3(0.14, 0.616, 0.489),
		math32.Vec3(0.997, 0.513, 0.064),
		math32.Vec3(0.945, 0.719, 0.592),
		math32.Vec3(0.543, 0.021, 0.978),
		math32.Vec3(0.279, 0.317, 0.505),
		math32.Vec3(0.167, 0.62, 0.077),
		math32.Vec3(0.347, 0.857, 0.137),
		math32.Vec3(0.055, 0.953, 0.042),
		math32.Vec3(0.714, 0.505, 0.345),
		math32.Vec3(0.783, 0.29, 0.734),
		math32.Vec3(0.722, 0.645, 0.174),
		math32.Vec3(0.302, 0.455, 0.848),
		math32.Vec3(0.225, 0.587, 0.04),
		math32.Vec3(0.517, 0.713, 0.338),
		math32.Vec3(0.053, 0.959, 0.12),
		math32.Vec3(0.393, 0.621, 0.362),
		math32.Vec3(0.673, 0.211, 0.457),
		math32.Vec3(0.82, 0.883, 0.371),
		math32.Vec3(0.982, 0.099, 0.879),
	}
}

// CubeUVs returns the texture coordinates for the cube vertices,
// laid out for the uvtemplate textures.
func CubeUVs() []math32.Vector2 {
	return []math32.Vector2{
		math32.Vec2(5.9e-05, 4e-06),
		math32.Vec2(0.000103, 0.336048),
		math32.Vec2(0.335973, 0.335903),
		math32.Vec2(1.000023, 1.3e-05),
		math32.Vec2(0.667979, 0.335851),
		math32.Vec2(0.999958, 0.336064),
		math32.Vec2(0.667979, 0.335851),
		math32.Vec2(0.336024, 0.671877),
		math32.Vec2(0.667969, 0.671889),
		math32.Vec2(1.000023, 1.3e-05),
		math32.Vec2(0.668104, 1.3e-05),
		math32.Vec2(0.667979, 0.335851),
		math32.Vec2(5.9e-05, 4e-06),
		math32.Vec2(0.335973, 0.335903),
		math32.Vec2(0.336098, 7.1e-05),
		math32.Vec2(0.667979, 0.335851),
		math32.Vec2(0.335973, 0.335903),
		math32.Vec2(0.336024, 0.671877),
		math32.Vec2(1.000004, 0.671847),
		math32.Vec2(0.999958, 0.336064),
		math32.Vec2(0.667979, 0.335851),
		math32.Vec2(0.668104, 1.3e-05),
		math32.Vec2(0.335973, 0.335903),
		math32.Vec2(0.667979, 0.335851),
		math32.Vec2(0.335973, 0.335903),
		math32.Vec2(0.668104, 1.3e-05),
		math32.Vec2(0.336098, 7.1e-05),
		math32.Vec2(0.000103, 0.336048),
		math32.Vec2(4e-06, 0.67187),
		math32.Vec2(0.336024, 0.671877),
		math32.Vec2(0.000103, 0.336048),
		math32.Vec2(0.336024, 0.671877),
		math32.Vec2(0.335973, 0.335903),
		math32.Vec2(0.667969, 0.671889),
		math32.Vec2(1.000004, 0.671847),
		math32.Vec2(0.667979, 0.335851),
	}
}
