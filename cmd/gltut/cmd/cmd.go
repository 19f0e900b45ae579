// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the commands of the gltut tool, which
// prints the transforms of the tutorials and inspects asset files.
package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"cogentcore.org/gltut/base/fsx"
	"cogentcore.org/gltut/camera"
	"cogentcore.org/gltut/config"
	"cogentcore.org/gltut/dds"
	"cogentcore.org/gltut/math32"
	"cogentcore.org/gltut/obj"
	"cogentcore.org/gltut/texture"
	"cogentcore.org/gltut/tutorial"
	"github.com/muesli/termenv"
)

// heading writes a bold section heading.
func heading(out *termenv.Output, s string) {
	fmt.Fprintln(out, out.String(s).Bold())
}

// AssetPath returns the given path if it is a file that exists, and
// otherwise the path within [config.Config.AssetDir].
func AssetPath(c *config.Config, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	dfs, fnm, err := fsx.DirFS(path)
	if err == nil {
		if ok, _ := fsx.FileExistsFS(dfs, fnm); ok {
			return path
		}
	}
	return c.AssetPath(path)
}

// MVP prints the transforms of the given tutorial. The camera
// tutorials (6 and later) use the projection settings of the config.
// If ndc is set, it also prints the vertices in normalized device coordinates.
func MVP(w io.Writer, c *config.Config, tut int, ndc bool) error {
	s, err := tutorial.Get(tut)
	if err != nil {
		return err
	}
	if s.Number >= 6 {
		cam := camera.New()
		cam.SetFromConfig(c)
		s.Projection = cam.Projection
	}
	out := termenv.NewOutput(w)
	heading(out, s.String())
	for _, m := range []struct {
		name string
		m    math32.Matrix4
	}{{"Projection", s.Projection}, {"View", s.View}, {"Model", s.Model}, {"MVP", s.MVP()}} {
		heading(out, m.name)
		fmt.Fprintln(out, m.m)
	}
	if ndc && len(s.Vertices) > 0 {
		heading(out, "NDC")
		for i, v := range s.NDCVertices() {
			fmt.Fprintf(out, "%3d %v\n", i, v)
		}
	}
	return nil
}

// DDS prints the header and mip levels of the given DDS file.
// If strict is set, the file must hold the full payload
// declared by the header.
func DDS(w io.Writer, c *config.Config, path string, strict bool) error {
	tex, err := dds.OpenFile(AssetPath(c, path), dds.Options{PartialPayload: !strict})
	if err != nil {
		return err
	}
	out := termenv.NewOutput(w)
	heading(out, path)
	fmt.Fprintln(out, tex)
	fmt.Fprintf(out, "format: %s (%s), GL internal format 0x%X\n", tex.Format, dds.FourCCString(tex.Format.FourCC()), tex.Format.GLInternalFormat())
	fmt.Fprintf(out, "linear size: %d\n", tex.LinearSize)
	for _, lv := range tex.Levels {
		fmt.Fprintf(out, "level %d: %dx%d, %d bytes\n", lv.Level, lv.Width, lv.Height, len(lv.Data))
	}
	return nil
}

// OBJ prints the counts and warnings of the given OBJ file.
func OBJ(w io.Writer, c *config.Config, path string, invertV bool) error {
	ms, err := obj.OpenFile(AssetPath(c, path), obj.Options{InvertV: invertV})
	if err != nil {
		return err
	}
	out := termenv.NewOutput(w)
	heading(out, path)
	fmt.Fprintf(out, "triangles: %d\nvertices: %d\nuvs: %d\nnormals: %d\n", ms.Triangles(), len(ms.Vertices), len(ms.UVs), len(ms.Normals))
	if len(ms.Warnings) > 0 {
		heading(out, "Warnings")
		for _, wn := range ms.Warnings {
			fmt.Fprintln(out, out.String(wn).Foreground(out.Color("3")))
		}
	}
	return nil
}

// Texture prints the type, size and upload formats of the given texture file.
func Texture(w io.Writer, c *config.Config, path string) error {
	tx, err := texture.OpenFile(AssetPath(c, path))
	if err != nil {
		return err
	}
	out := termenv.NewOutput(w)
	heading(out, path)
	fmt.Fprintln(out, tx)
	fmt.Fprintf(out, "type: %s, compressed: %v\n", tx.Type, tx.IsCompressed())
	fmt.Fprintf(out, "GL internal format 0x%X, format 0x%X\n", tx.GLInternalFormat(), tx.GLFormat())
	return nil
}
