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

package icons

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	// Register the raster formats icon sources come in. ICO is handled
	// separately, image.Decode has no decoder for it.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/h2non/filetype"
	ico "github.com/sergeymakinen/go-ico"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const (
	// MinRasterSize is the smallest raster icon accepted by Decode, per
	// dimension.
	MinRasterSize = 96
	// MinVectorSize is the smallest SVG intrinsic size admitted into
	// local search results, per dimension.
	MinVectorSize = 64
)

// ErrIconTooSmall is returned for raster images below MinRasterSize.
var ErrIconTooSmall = errors.New("icon too small")

// Kind distinguishes vector icons, kept as raw bytes for scalable
// rendering, from size-validated raster icons.
type Kind int

const (
	Raster Kind = iota
	Vector
)

func (k Kind) String() string {
	switch k {
	case Raster:
		return "raster"
	case Vector:
		return "vector"
	default:
		return "unknown"
	}
}

// Icon is a decoded, validated icon candidate. Data holds the original
// encoded bytes, not decoded pixels; Width and Height are zero for
// vector icons.
type Icon struct {
	Source string
	Data   []byte
	Kind   Kind
	Width  int
	Height int
}

// Decode validates raw icon bytes read from source. A local SVG source
// wraps the bytes unconditionally as a vector icon. Everything else
// must decode as a raster image with both dimensions at least
// MinRasterSize.
func Decode(source string, data []byte) (*Icon, error) {
	if IsSVG(source) {
		return &Icon{Source: source, Data: data, Kind: Vector}, nil
	}

	img, err := decodeRaster(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", source, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() < MinRasterSize || bounds.Dy() < MinRasterSize {
		return nil, fmt.Errorf("%w: %dx%d", ErrIconTooSmall, bounds.Dx(), bounds.Dy())
	}

	return &Icon{
		Source: source,
		Data:   data,
		Kind:   Raster,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}

func decodeRaster(data []byte) (image.Image, error) {
	if filetype.Is(data, "ico") {
		img, err := ico.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode ICO: %w", err)
		}
		return img, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return img, nil
}
