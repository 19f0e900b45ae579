// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command gltut prints the transforms of the OpenGL tutorials and
// inspects the textures and models they load.
package main

import (
	"os"

	"cogentcore.org/gltut/base/errors"
	"cogentcore.org/gltut/cmd/gltut/cmd"
)

func main() {
	if err := cmd.Root().Execute(); err != nil {
		errors.Log(err)
		os.Exit(1)
	}
}
