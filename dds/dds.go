// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dds decodes DirectDraw Surface (*.dds) files holding
// S3TC block-compressed textures (DXT1, DXT3, DXT5) into their
// mip levels, ready for upload with a compressed texture call.
// The blocks themselves are not decompressed.
package dds

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"cogentcore.org/gltut/base/errors"
	"cogentcore.org/gltut/base/fsx"
)

// Magic is the signature at the start of every DDS file.
const Magic = "DDS "

// HeaderSize is the size of the fixed header following [Magic].
const HeaderSize = 124

// Byte offsets of the fields read from the header.
const (
	offHeight      = 8
	offWidth       = 12
	offLinearSize  = 16
	offMipMapCount = 24
	offFourCC      = 80
)

// Decode errors. All of them are fatal to the decode call:
// there is never a partial result.
var (
	// ErrBadSignature is returned when the data does not start with [Magic].
	ErrBadSignature = errors.New("dds: bad signature")

	// ErrTruncated is returned when the header or pixel data is cut short.
	ErrTruncated = errors.New("dds: truncated data")

	// ErrUnsupportedFormat is returned for a compression tag other
	// than DXT1, DXT3 or DXT5.
	ErrUnsupportedFormat = errors.New("dds: unsupported format")
)

// Header has the fields of the DDS header that are needed to
// lay out the pixel data.
type Header struct {
	Height      uint32
	Width       uint32
	LinearSize  uint32
	MipMapCount uint32
	FourCC      uint32
}

// ParseHeader parses the fields of the given header bytes,
// which must be at least [HeaderSize] long.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("%w: header has %d of %d bytes", ErrTruncated, len(b), HeaderSize)
	}
	le := binary.LittleEndian
	return Header{
		Height:      le.Uint32(b[offHeight:]),
		Width:       le.Uint32(b[offWidth:]),
		LinearSize:  le.Uint32(b[offLinearSize:]),
		MipMapCount: le.Uint32(b[offMipMapCount:]),
		FourCC:      le.Uint32(b[offFourCC:]),
	}, nil
}

// Levels returns the number of mip levels to read: the header's
// count, where a count of 0 (no mipmap count given) means 1 rather
// than no levels at all.
func (h *Header) Levels() int {
	if h.MipMapCount == 0 {
		return 1
	}
	return int(h.MipMapCount)
}

// PayloadSize returns the number of pixel bytes following the header:
// twice the linear size of the top level when there are mipmaps,
// otherwise just the linear size.
func (h *Header) PayloadSize() int64 {
	if h.MipMapCount > 1 {
		return int64(h.LinearSize) * 2
	}
	return int64(h.LinearSize)
}

// MipLevel is the block data of one mip level.
type MipLevel struct {
	// Level is the mip level index, 0 being the full size image.
	Level int

	// Width and Height are the pixel dimensions of this level.
	Width  int
	Height int

	// Data is the block-compressed data of this level,
	// a sub-slice of [Texture.Data].
	Data []byte
}

// Texture is a decoded DDS texture. It is built once per load,
// handed to the graphics backend for upload, and can be discarded after.
type Texture struct {
	// Width and Height are the pixel dimensions of the top level.
	Width  int
	Height int

	// MipMapCount is the number of mip levels declared by the header.
	// A declared count of 0 is read as 1 rather than as no levels,
	// since writers leave it unset for textures without mipmaps.
	MipMapCount int

	// LinearSize is the byte size of the top level as declared by the header.
	LinearSize int

	// Format is the block-compression format.
	Format Format

	// Data is the whole pixel payload, all levels concatenated.
	Data []byte

	// Levels are the mip levels in order, starting at level 0.
	// There can be fewer than MipMapCount when the dimensions
	// reach zero first.
	Levels []MipLevel
}

// Options are the decoding options.
type Options struct {
	// PartialPayload accepts pixel data shorter than [Header.PayloadSize]
	// as long as every mip level still fits in it. Many writers store
	// exactly the mip chain, which is less than twice the size of the
	// top level, so files written that way need this to load.
	PartialPayload bool
}

// Decode reads a DDS texture from the given reader, requiring the
// full [Header.PayloadSize] bytes of pixel data.
// The error matches (with [errors.Is]) one of [ErrBadSignature],
// [ErrTruncated] or [ErrUnsupportedFormat], or is the read error.
func Decode(r io.Reader) (*Texture, error) {
	return DecodeOptions(r, Options{})
}

// DecodeOptions reads a DDS texture from the given reader using the given options.
func DecodeOptions(r io.Reader, opts Options) (*Texture, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, readError(err, "signature")
	}
	if string(magic[:]) != Magic {
		return nil, fmt.Errorf("%w: %q", ErrBadSignature, magic[:])
	}

	hb := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, hb); err != nil {
		return nil, readError(err, "header")
	}
	hdr, err := ParseHeader(hb)
	if err != nil {
		return nil, err
	}
	slog.Debug("dds: header", "height", hdr.Height, "width", hdr.Width, "linearSize", hdr.LinearSize,
		"mipMapCount", hdr.MipMapCount, "fourCC", FourCCString(hdr.FourCC))

	format, ok := FormatFromFourCC(hdr.FourCC)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, FourCCString(hdr.FourCC))
	}

	size := hdr.PayloadSize()
	data, err := io.ReadAll(io.LimitReader(r, size))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) < size && !opts.PartialPayload {
		return nil, fmt.Errorf("%w: pixel data has %d of %d bytes", ErrTruncated, len(data), size)
	}

	tex := &Texture{
		Width:       int(hdr.Width),
		Height:      int(hdr.Height),
		MipMapCount: hdr.Levels(),
		LinearSize:  int(hdr.LinearSize),
		Format:      format,
		Data:        data,
	}
	if err := tex.layoutLevels(hdr.Width, hdr.Height); err != nil {
		return nil, err
	}
	return tex, nil
}

// layoutLevels slices Data into the mip levels, starting from the
// given header dimensions. Each level halves the previous level's
// dimensions with integer division, so odd sizes round down, and the
// level size is computed from the halved values.
func (tex *Texture) layoutLevels(width, height uint32) error {
	offset := 0
	for level := 0; level < tex.MipMapCount && (width > 0 || height > 0); level++ {
		size, ok := tex.Format.LevelSize(width, height)
		if !ok {
			return fmt.Errorf("%w: mip level %d (%dx%d) is too large", ErrTruncated, level, width, height)
		}
		if size > len(tex.Data)-offset {
			return fmt.Errorf("%w: mip level %d (%dx%d) needs %d bytes at offset %d of %d",
				ErrTruncated, level, width, height, size, offset, len(tex.Data))
		}
		tex.Levels = append(tex.Levels, MipLevel{
			Level:  level,
			Width:  int(width),
			Height: int(height),
			Data:   tex.Data[offset : offset+size : offset+size],
		})
		offset += size
		width /= 2
		height /= 2
	}
	return nil
}

// readError converts a short read into [ErrTruncated].
func readError(err error, what string) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: reading %s", ErrTruncated, what)
	}
	return err
}

// DecodeBytes decodes a DDS texture from the given file contents.
func DecodeBytes(b []byte, opts Options) (*Texture, error) {
	return DecodeOptions(bytes.NewReader(b), opts)
}

// Open decodes the DDS texture from the given file in the given filesystem.
func Open(fsys fs.FS, name string, opts Options) (*Texture, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tex, err := DecodeOptions(bufio.NewReader(f), opts)
	if err != nil {
		return nil, fmt.Errorf("dds.Open %q: %w", name, err)
	}
	return tex, nil
}

// OpenFile decodes the DDS texture from the given file path.
func OpenFile(path string, opts Options) (*Texture, error) {
	dfs, fnm, err := fsx.DirFS(path)
	if err != nil {
		return nil, err
	}
	return Open(dfs, fnm, opts)
}

// String returns a one-line summary of the texture.
func (tex *Texture) String() string {
	return fmt.Sprintf("%dx%d %s, %d of %d mip levels, %d bytes", tex.Width, tex.Height, tex.Format, len(tex.Levels), tex.MipMapCount, len(tex.Data))
}
