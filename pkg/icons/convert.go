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
	"fmt"

	"github.com/fogleman/gg"
	ico "github.com/sergeymakinen/go-ico"
)

// ConvertICOToPNG re-encodes an ICO container as PNG, keeping the
// largest embedded image. Desktop environments handle .ico files in
// entry Icon keys inconsistently, PNG works everywhere.
func ConvertICOToPNG(icoBytes []byte) ([]byte, error) {
	img, err := ico.Decode(bytes.NewReader(icoBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to decode ICO: %w", err)
	}

	var buf bytes.Buffer
	if err := gg.NewContextForImage(img).EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}
