// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texture loads texture files for upload to the graphics API.
// The file type is detected from its contents: DDS files are kept
// block-compressed (see package dds), while BMP, PNG and JPEG
// images are decoded into RGBA pixels.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"io/fs"
	"log/slog"

	"cogentcore.org/gltut/base/errors"
	"cogentcore.org/gltut/base/fsx"
	"cogentcore.org/gltut/base/iox/imagex"
	"cogentcore.org/gltut/dds"
	"github.com/anthonynsimon/bild/transform"
	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	"golang.org/x/image/bmp"
)

// Uncompressed formats for the graphics API.
const (
	GLRGBA  uint32 = 0x1908
	GLRGBA8 uint32 = 0x8058
)

// ErrUnknownType is returned for data that is not a supported texture file.
var ErrUnknownType = errors.New("texture: unknown file type")

// TypeDDS is the file type of DirectDraw Surface files,
// registered with the filetype package.
var TypeDDS = filetype.NewType("dds", "image/vnd-ms.dds")

func init() {
	filetype.AddMatcher(TypeDDS, func(buf []byte) bool {
		return len(buf) >= len(dds.Magic) && string(buf[:len(dds.Magic)]) == dds.Magic
	})
}

// Texture is a texture loaded from a file. Exactly one of
// Compressed and RGBA is set.
type Texture struct {
	// Name of the texture, the file name if loaded from a file.
	Name string

	// Type is the detected file type extension: dds, bmp, png or jpg.
	Type string

	// Width and Height are the pixel dimensions of the (top level) image.
	Width  int
	Height int

	// Compressed is the block-compressed texture of a DDS file.
	Compressed *dds.Texture

	// RGBA is the decoded image of any other file.
	RGBA *image.RGBA
}

// IsCompressed returns whether the texture holds block-compressed data.
func (tx *Texture) IsCompressed() bool {
	return tx.Compressed != nil
}

// GLInternalFormat returns the internal format to pass to the
// graphics API texture upload call.
func (tx *Texture) GLInternalFormat() uint32 {
	if tx.Compressed != nil {
		return tx.Compressed.Format.GLInternalFormat()
	}
	return GLRGBA8
}

// GLFormat returns the pixel data format for an uncompressed upload,
// and 0 for compressed textures, which do not take one.
func (tx *Texture) GLFormat() uint32 {
	if tx.Compressed != nil {
		return 0
	}
	return GLRGBA
}

// UploadPixels returns the RGBA pixels in the row order that the graphics
// API expects, starting at the bottom row. It returns nil for
// compressed textures, whose levels are uploaded as stored.
func (tx *Texture) UploadPixels() []byte {
	if tx.RGBA == nil {
		return nil
	}
	return transform.FlipV(tx.RGBA).Pix
}

func (tx *Texture) String() string {
	if tx.Compressed != nil {
		return fmt.Sprintf("%s: %s", tx.Name, tx.Compressed)
	}
	return fmt.Sprintf("%s: %dx%d %s RGBA", tx.Name, tx.Width, tx.Height, tx.Type)
}

// Detect returns the file type of the given file header.
func Detect(head []byte) (types.Type, error) {
	kind, err := filetype.Match(head)
	if err != nil {
		return filetype.Unknown, fmt.Errorf("%w: %w", ErrUnknownType, err)
	}
	switch kind.Extension {
	case TypeDDS.Extension, "bmp", "png", "jpg":
		return kind, nil
	}
	return filetype.Unknown, fmt.Errorf("%w: %q", ErrUnknownType, kind.Extension)
}

// Decode decodes the texture in the given data, with the given name.
func Decode(r io.Reader, name string) (*Texture, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	kind, err := Detect(b)
	if err != nil {
		return nil, err
	}
	tx := &Texture{Name: name, Type: kind.Extension}
	if kind == TypeDDS {
		ct, err := dds.DecodeBytes(b, dds.Options{PartialPayload: true})
		if err != nil {
			return nil, err
		}
		tx.Compressed = ct
		tx.Width, tx.Height = ct.Width, ct.Height
		slog.Debug("texture: loaded", "texture", tx.String())
		return tx, nil
	}

	var img image.Image
	switch kind.Extension {
	case "bmp":
		img, err = bmp.Decode(bytes.NewReader(b))
	case "png":
		img, err = png.Decode(bytes.NewReader(b))
	case "jpg":
		img, err = jpeg.Decode(bytes.NewReader(b))
	}
	if err != nil {
		return nil, fmt.Errorf("texture: decoding %s: %w", kind.Extension, err)
	}
	tx.RGBA = imagex.AsRGBA(img)
	sz := tx.RGBA.Bounds().Size()
	tx.Width, tx.Height = sz.X, sz.Y
	slog.Debug("texture: loaded", "texture", tx.String())
	return tx, nil
}

// Open loads the texture in the given file in the given filesystem.
func Open(fsys fs.FS, name string) (*Texture, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tx, err := Decode(f, name)
	if err != nil {
		return nil, fmt.Errorf("texture.Open %q: %w", name, err)
	}
	return tx, nil
}

// OpenFile loads the texture in the given file path.
func OpenFile(path string) (*Texture, error) {
	dfs, fnm, err := fsx.DirFS(path)
	if err != nil {
		return nil, err
	}
	return Open(dfs, fnm)
}
