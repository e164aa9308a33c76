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

package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/webapps-project/webapps-core/pkg/config"
	"github.com/webapps-project/webapps-core/pkg/icons"
	"golang.org/x/sync/errgroup"
)

const decodeWorkers = 4

func listIconCandidates(w io.Writer, cfg *config.Instance, name, pageURL string) {
	ctx := context.Background()
	pipeline := icons.NewPipeline(cfg)

	candidates := pipeline.FindIcons(ctx, name, pageURL)

	// Decode candidates a few at a time. Undecodable or undersized
	// ones drop out of the listing, they are not errors.
	decoded := make([]*icons.Icon, len(candidates))
	var g errgroup.Group
	g.SetLimit(decodeWorkers)
	for i, candidate := range candidates {
		g.Go(func() error {
			icon, err := pipeline.Decode(ctx, candidate)
			if err != nil {
				log.Debug().Msgf("skipping icon candidate %s: %v", candidate, err)
				return nil
			}
			decoded[i] = icon
			return nil
		})
	}
	_ = g.Wait()

	shown := 0
	for _, icon := range decoded {
		if icon == nil {
			continue
		}
		shown++
		if icon.Kind == icons.Raster {
			_, _ = fmt.Fprintf(w, "%s\t%s %dx%d\n", icon.Source, icon.Kind, icon.Width, icon.Height)
		} else {
			_, _ = fmt.Fprintf(w, "%s\t%s\n", icon.Source, icon.Kind)
		}
	}

	for _, path := range pipeline.SearchUserIcons() {
		shown++
		_, _ = fmt.Fprintf(w, "%s\tuser\n", path)
	}

	if shown == 0 {
		_, _ = fmt.Fprintln(w, "No icons found.")
	}
}
