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
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charlievieth/fastwalk"
	"github.com/rs/zerolog/log"
	"github.com/webapps-project/webapps-core/pkg/helpers/syncutil"
)

// SearchLocal walks the icon tree under root and collects files whose
// name contains fragment. SVG candidates must carry a usable intrinsic
// size of at least MinVectorSize in both dimensions; raster files are
// not size-checked at this stage, the decode step does that. Results
// are de-duplicated and sorted. A missing root is the first-run case
// and yields an empty result.
func SearchLocal(ctx context.Context, root, fragment string) []string {
	var (
		mu    syncutil.Mutex
		found []string
	)
	seen := make(map[string]bool)

	walkErr := fastwalk.Walk(nil, root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are skipped, never fatal to the walk.
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if entry.IsDir() || !strings.Contains(entry.Name(), fragment) {
			return nil
		}
		if filepath.Ext(path) == ".svg" && !vectorSizeOK(path) {
			return nil
		}

		mu.Lock()
		defer mu.Unlock()
		if !seen[path] {
			seen[path] = true
			found = append(found, path)
		}
		return nil
	})
	if walkErr != nil {
		log.Debug().Err(walkErr).Msgf("icon search ended early: %s", root)
	}

	sort.Strings(found)
	return found
}

func vectorSizeOK(path string) bool {
	data, err := os.ReadFile(path) // #nosec G304 - path comes from walking the managed icon tree
	if err != nil {
		return false
	}
	width, height, err := SVGSize(data)
	if err != nil {
		return false
	}
	return width >= MinVectorSize && height >= MinVectorSize
}
