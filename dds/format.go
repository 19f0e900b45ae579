// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dds

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Format is the block-compression format of a DDS texture.
type Format int32

const (
	// FormatUnknown is the zero value; no decoded texture has it.
	FormatUnknown Format = iota

	// BC1 is the format tagged "DXT1": 8 bytes per 4x4 block.
	BC1

	// BC3 is the format tagged "DXT3": 16 bytes per 4x4 block.
	BC3

	// BC5 is the format tagged "DXT5": 16 bytes per 4x4 block.
	BC5
)

// FourCC codes of the supported formats, as read little-endian
// from the pixel format section of the header.
const (
	FourCCDXT1 uint32 = 0x31545844 // "DXT1"
	FourCCDXT3 uint32 = 0x33545844 // "DXT3"
	FourCCDXT5 uint32 = 0x35545844 // "DXT5"
)

// S3TC compressed internal formats for the graphics API
// (EXT_texture_compression_s3tc).
const (
	CompressedRGBAS3TCDXT1 uint32 = 0x83F1
	CompressedRGBAS3TCDXT3 uint32 = 0x83F2
	CompressedRGBAS3TCDXT5 uint32 = 0x83F3
)

// FormatFromFourCC returns the [Format] for the given four-character code,
// and false if it is not one of the supported tags.
func FormatFromFourCC(fourCC uint32) (Format, bool) {
	switch fourCC {
	case FourCCDXT1:
		return BC1, true
	case FourCCDXT3:
		return BC3, true
	case FourCCDXT5:
		return BC5, true
	}
	return FormatUnknown, false
}

// FourCCString returns the four-character code as text.
func FourCCString(fourCC uint32) string {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], fourCC)
	return string(b[:])
}

func (f Format) String() string {
	switch f {
	case BC1:
		return "BC1"
	case BC3:
		return "BC3"
	case BC5:
		return "BC5"
	}
	return fmt.Sprintf("Format(%d)", int32(f))
}

// FourCC returns the four-character code this format is tagged with in a file.
func (f Format) FourCC() uint32 {
	switch f {
	case BC1:
		return FourCCDXT1
	case BC3:
		return FourCCDXT3
	case BC5:
		return FourCCDXT5
	}
	return 0
}

// BlockSize returns the number of bytes per 4x4 pixel block.
func (f Format) BlockSize() int {
	if f == BC1 {
		return 8
	}
	return 16
}

// GLInternalFormat returns the compressed internal format constant
// to pass to the graphics API's compressed texture upload.
func (f Format) GLInternalFormat() uint32 {
	switch f {
	case BC1:
		return CompressedRGBAS3TCDXT1
	case BC3:
		return CompressedRGBAS3TCDXT3
	case BC5:
		return CompressedRGBAS3TCDXT5
	}
	return 0
}

// LevelSize returns the number of bytes of one mip level of the given
// dimensions: ceil(width/4) * ceil(height/4) * BlockSize.
// It returns false if the size does not fit in an int.
func (f Format) LevelSize(width, height uint32) (int, bool) {
	bw := (uint64(width) + 3) / 4
	bh := (uint64(height) + 3) / 4
	bs := uint64(f.BlockSize())
	if bw != 0 && bh > uint64(math.MaxInt)/bs/bw {
		return 0, false
	}
	return int(bw * bh * bs), true
}
