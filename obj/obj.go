// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package obj is used to parse the geometry of Wavefront OBJ files (*.obj)
// into flat, unindexed vertex, texture coordinate and normal arrays that
// can be uploaded directly as vertex buffers. Materials, groups and the
// other statements of the format are skipped with a warning.
// Basic format info: https://en.wikipedia.org/wiki/Wavefront_.obj_file
package obj

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strconv"
	"strings"

	"cogentcore.org/gltut/base/errors"
	"cogentcore.org/gltut/base/fsx"
	"cogentcore.org/gltut/math32"
)

var (
	// ErrFormat is returned for a malformed statement or number.
	ErrFormat = errors.New("obj: invalid format")

	// ErrIndexRange is returned for a face index that does not
	// refer to a vertex, texture coordinate or normal in the file.
	ErrIndexRange = errors.New("obj: index out of range")
)

// Options are the loading options.
type Options struct {
	// InvertV negates the v texture coordinate, which is needed
	// for DDS textures because their origin is the top left corner.
	InvertV bool
}

// Mesh is the unindexed geometry of an OBJ file: each face corner
// is expanded into one element of each array, so triangle i uses
// elements 3*i, 3*i+1 and 3*i+2.
type Mesh struct {
	// Vertices are the corner positions.
	Vertices []math32.Vector3

	// UVs are the corner texture coordinates; empty if the faces have none.
	UVs []math32.Vector2

	// Normals are the corner normals; empty if the faces have none.
	Normals []math32.Vector3

	// Warnings are messages about statements that were skipped.
	Warnings []string
}

// Triangles returns the number of triangles in the mesh.
func (ms *Mesh) Triangles() int {
	return len(ms.Vertices) / 3
}

// Face is one face as read from the file, with 0-based indices;
// an absent texture coordinate or normal index is -1.
type Face struct {
	Vertices []int
	Uvs      []int
	Normals  []int

	// line is the line number the face was read from.
	line int
}

// Decoder contains all decoded data from the obj file.
type Decoder struct {
	Options

	Vertices []math32.Vector3 // vertex positions, in file order
	Uvs      []math32.Vector2 // texture coordinates, in file order
	Normals  []math32.Vector3 // vertex normals, in file order
	Faces    []Face           // faces, in file order
	Warnings []string         // warning messages
	line     int              // current line number
}

// NewDecoder returns a new [Decoder] with the given options.
func NewDecoder(opts Options) *Decoder {
	return &Decoder{Options: opts}
}

// Decode loads the mesh in the given OBJ data.
// The whole load fails on the first error.
func Decode(r io.Reader, opts Options) (*Mesh, error) {
	dec := NewDecoder(opts)
	if err := dec.Decode(r); err != nil {
		return nil, err
	}
	return dec.Mesh()
}

// Open loads the mesh in the given file in the given filesystem.
func Open(fsys fs.FS, name string, opts Options) (*Mesh, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ms, err := Decode(f, opts)
	if err != nil {
		return nil, fmt.Errorf("obj.Open %q: %w", name, err)
	}
	return ms, nil
}

// OpenFile loads the mesh in the given file path.
func OpenFile(path string, opts Options) (*Mesh, error) {
	dfs, fnm, err := fsx.DirFS(path)
	if err != nil {
		return nil, err
	}
	return Open(dfs, fnm, opts)
}

// Decode reads the given data into the decoder's
// vertex, texture coordinate, normal and face lists.
func (dec *Decoder) Decode(r io.Reader) error {
	sc := bufio.NewScanner(r)
	dec.line = 0
	for sc.Scan() {
		dec.line++
		if err := dec.parseLine(sc.Text()); err != nil {
			return err
		}
	}
	return sc.Err()
}

// parseLine parses one obj file line, dispatching to specific parsers.
func (dec *Decoder) parseLine(line string) error {
	// Ignore empty lines
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	// Ignore comment lines
	ltype := fields[0]
	if strings.HasPrefix(ltype, "#") {
		return nil
	}
	switch ltype {
	case "v":
		v, err := dec.parseVector3(ltype, fields[1:])
		if err != nil {
			return err
		}
		dec.Vertices = append(dec.Vertices, v)
	case "vn":
		v, err := dec.parseVector3(ltype, fields[1:])
		if err != nil {
			return err
		}
		dec.Normals = append(dec.Normals, v)
	case "vt":
		return dec.parseTex(fields[1:])
	case "f":
		return dec.parseFace(fields[1:])
	default:
		dec.appendWarn("statement not supported: " + ltype)
	}
	return nil
}

// parseVector3 parses the fields of a vertex position or normal line:
// v <x> <y> <z> [w]
// vn <x> <y> <z>
func (dec *Decoder) parseVector3(ltype string, fields []string) (math32.Vector3, error) {
	var v math32.Vector3
	if len(fields) < 3 {
		return v, dec.formatError("%q with less than 3 fields", ltype)
	}
	var xyz [3]float32
	for i, f := range fields[:3] {
		val, err := dec.parseFloat(f)
		if err != nil {
			return v, err
		}
		xyz[i] = val
	}
	return math32.Vec3(xyz[0], xyz[1], xyz[2]), nil
}

// parseTex parses a vertex texture coordinate line:
// vt <u> <v> [w]
func (dec *Decoder) parseTex(fields []string) error {
	if len(fields) < 2 {
		return dec.formatError(`"vt" with less than 2 fields`)
	}
	u, err := dec.parseFloat(fields[0])
	if err != nil {
		return err
	}
	v, err := dec.parseFloat(fields[1])
	if err != nil {
		return err
	}
	if dec.InvertV {
		v = -v
	}
	dec.Uvs = append(dec.Uvs, math32.Vec2(u, v))
	return nil
}

// parseFace parses a face description line:
// f v1[/vt1][/vn1] v2[/vt2][/vn2] v3[/vt3][/vn3] ...
func (dec *Decoder) parseFace(fields []string) error {
	if len(fields) < 3 {
		return dec.formatError("face with less than 3 fields")
	}
	face := Face{
		Vertices: make([]int, len(fields)),
		Uvs:      make([]int, len(fields)),
		Normals:  make([]int, len(fields)),
		line:     dec.line,
	}
	for pos, f := range fields {
		// Separate the current field in its components: v vt vn
		vfields := strings.Split(f, "/")
		if len(vfields) > 3 {
			return dec.formatError("face field %q with more than 3 parts", f)
		}

		// The position index must always exist
		idx, err := dec.parseIndex(vfields[0], len(dec.Vertices), "vertex")
		if err != nil {
			return err
		}
		face.Vertices[pos] = idx

		face.Uvs[pos] = -1
		if len(vfields) > 1 && vfields[1] != "" {
			idx, err := dec.parseIndex(vfields[1], len(dec.Uvs), "uv")
			if err != nil {
				return err
			}
			face.Uvs[pos] = idx
		}

		face.Normals[pos] = -1
		if len(vfields) > 2 && vfields[2] != "" {
			idx, err := dec.parseIndex(vfields[2], len(dec.Normals), "normal")
			if err != nil {
				return err
			}
			face.Normals[pos] = idx
		}
	}
	dec.Faces = append(dec.Faces, face)
	return nil
}

// parseIndex parses a 1-based face index into a 0-based one.
// A negative index is relative to the end of the list read so far,
// whose length is n.
func (dec *Decoder) parseIndex(s string, n int, what string) (int, error) {
	val, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, dec.formatError("face %s index %q: %w", what, s, err)
	}
	switch {
	case val > 0:
		return int(val - 1), nil
	case val < 0:
		idx := n + int(val)
		if idx < 0 {
			return 0, fmt.Errorf("%w: line %d: relative face %s index %d with only %d defined", ErrIndexRange, dec.line, what, val, n)
		}
		return idx, nil
	}
	return 0, dec.formatError("face %s index value equal to 0", what)
}

func (dec *Decoder) parseFloat(s string) (float32, error) {
	val, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, dec.formatError("number %q: %w", s, err)
	}
	return float32(val), nil
}

// Mesh expands the decoded faces into a [Mesh]. Faces with more than
// 3 corners are split into a fan of triangles around the first corner.
// Texture coordinates and normals must be given for every corner or for none.
func (dec *Decoder) Mesh() (*Mesh, error) {
	ms := &Mesh{Warnings: dec.Warnings}
	for fi := range dec.Faces {
		face := &dec.Faces[fi]
		for idx := 2; idx < len(face.Vertices); idx++ {
			for _, corner := range [3]int{0, idx - 1, idx} {
				if err := dec.copyVertex(ms, face, corner); err != nil {
					return nil, err
				}
			}
		}
	}
	nv := len(ms.Vertices)
	if len(ms.UVs) != 0 && len(ms.UVs) != nv {
		return nil, fmt.Errorf("%w: %d of %d face corners have texture coordinates", ErrFormat, len(ms.UVs), nv)
	}
	if len(ms.Normals) != 0 && len(ms.Normals) != nv {
		return nil, fmt.Errorf("%w: %d of %d face corners have normals", ErrFormat, len(ms.Normals), nv)
	}
	slog.Debug("obj: mesh", "triangles", ms.Triangles(), "vertices", len(dec.Vertices), "uvs", len(dec.Uvs), "normals", len(dec.Normals), "warnings", len(dec.Warnings))
	return ms, nil
}

// copyVertex appends the data of the given face corner to the mesh.
func (dec *Decoder) copyVertex(ms *Mesh, face *Face, idx int) error {
	vi := face.Vertices[idx]
	if vi >= len(dec.Vertices) {
		return dec.indexError(face, "vertex", vi, len(dec.Vertices))
	}
	ms.Vertices = append(ms.Vertices, dec.Vertices[vi])

	if ui := face.Uvs[idx]; ui >= 0 {
		if ui >= len(dec.Uvs) {
			return dec.indexError(face, "uv", ui, len(dec.Uvs))
		}
		ms.UVs = append(ms.UVs, dec.Uvs[ui])
	}

	if ni := face.Normals[idx]; ni >= 0 {
		if ni >= len(dec.Normals) {
			return dec.indexError(face, "normal", ni, len(dec.Normals))
		}
		ms.Normals = append(ms.Normals, dec.Normals[ni])
	}
	return nil
}

func (dec *Decoder) indexError(face *Face, what string, idx, n int) error {
	return fmt.Errorf("%w: line %d: face %s index %d with only %d defined", ErrIndexRange, face.line, what, idx+1, n)
}

func (dec *Decoder) formatError(format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %w", ErrFormat, dec.line, fmt.Errorf(format, args...))
}

func (dec *Decoder) appendWarn(msg string) {
	wline := fmt.Sprintf("obj(%d): %s", dec.line, msg)
	slog.Debug(wline)
	dec.Warnings = append(dec.Warnings, wline)
}
