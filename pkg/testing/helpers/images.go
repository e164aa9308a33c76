// Webapps Core
// Copyright (c) 2025 The Webapps Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Webapps Core.
//
// Webapps Core is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Webapps Core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Webapps Core.  If not, see <http://www.gnu.org/licenses/>.

package helpers

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func testImage(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 0x33, G: 0x66, B: 0xff, A: 0xff})
		}
	}
	return img
}

// PNGBytes returns an encoded width x height PNG.
func PNGBytes(t *testing.T, width, height int) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, testImage(width, height)))
	return buf.Bytes()
}

// JPEGBytes returns an encoded width x height JPEG.
func JPEGBytes(t *testing.T, width, height int) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, testImage(width, height), nil))
	return buf.Bytes()
}

// WritePNG writes a width x height PNG to path.
func WritePNG(t *testing.T, path string, width, height int) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, PNGBytes(t, width, height), 0o600))
}

// ICOBytes returns a single-image ICO container holding a PNG-encoded
// width x height image, the layout favicon.ico files commonly use.
func ICOBytes(t *testing.T, width, height int) []byte {
	t.Helper()

	payload := PNGBytes(t, width, height)

	dimByte := func(d int) byte {
		if d >= 256 {
			return 0
		}
		return byte(d)
	}

	var buf bytes.Buffer
	// ICONDIR: reserved, type 1 (icon), image count
	_ = binary.Write(&buf, binary.LittleEndian, uint16(0))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1))
	// ICONDIRENTRY
	buf.WriteByte(dimByte(width))
	buf.WriteByte(dimByte(height))
	buf.WriteByte(0) // palette size
	buf.WriteByte(0) // reserved
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1))  // planes
	_ = binary.Write(&buf, binary.LittleEndian, uint16(32)) // bits per pixel
	_ = binary.Write(&buf, binary.LittleEndian, uint32(len(payload)))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(22)) // data offset
	buf.Write(payload)

	return buf.Bytes()
}

// SVGBytes returns a minimal SVG document with the given intrinsic
// width and height attributes.
func SVGBytes(width, height int) []byte {
	return fmt.Appendf(nil,
		`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
  <rect width="%d" height="%d" fill="#3366ff"/>
</svg>
`, width, height, width, height, width, height)
}
