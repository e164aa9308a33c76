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
	"encoding/xml"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/webapps-project/webapps-core/pkg/helpers"
)

// IsSVG reports whether source names a local SVG file. URLs are never
// treated as SVG regardless of their extension; a remote .svg is
// handled as an opaque download.
func IsSVG(source string) bool {
	return !helpers.URLValid(source) && filepath.Ext(source) == ".svg"
}

type svgHeader struct {
	Width   string `xml:"width,attr"`
	Height  string `xml:"height,attr"`
	ViewBox string `xml:"viewBox,attr"`
}

// SVGSize reads the intrinsic size of an SVG document from its width
// and height attributes, falling back to the viewBox when those are
// absent or carry non-pixel units.
func SVGSize(data []byte) (width, height float64, err error) {
	var header svgHeader
	if unmarshalErr := xml.Unmarshal(data, &header); unmarshalErr != nil {
		return 0, 0, fmt.Errorf("failed to parse svg: %w", unmarshalErr)
	}

	w, wErr := parseSVGLength(header.Width)
	h, hErr := parseSVGLength(header.Height)
	if wErr == nil && hErr == nil {
		return w, h, nil
	}

	fields := strings.Fields(strings.ReplaceAll(header.ViewBox, ",", " "))
	if len(fields) == 4 {
		vw, vwErr := strconv.ParseFloat(fields[2], 64)
		vh, vhErr := strconv.ParseFloat(fields[3], 64)
		if vwErr == nil && vhErr == nil {
			return vw, vh, nil
		}
	}

	return 0, 0, errors.New("svg has no usable dimensions")
}

func parseSVGLength(value string) (float64, error) {
	value = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(value), "px"))
	if value == "" {
		return 0, errors.New("empty length")
	}
	return strconv.ParseFloat(value, 64)
}
