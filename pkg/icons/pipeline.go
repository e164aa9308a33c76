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

// Package icons resolves icon references for launchers: local icon
// search, user-curated icons, remote favicon scraping, decode
// validation, and placement into the managed icon folder.
package icons

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/bluele/gcache"
	"github.com/rs/zerolog/log"
	"github.com/webapps-project/webapps-core/pkg/config"
	"github.com/webapps-project/webapps-core/pkg/helpers"
	"github.com/webapps-project/webapps-core/pkg/shared/httpclient"
	"golang.org/x/sync/errgroup"
)

// cacheSize bounds the decoded-icon cache. Entries hold whole encoded
// files; a session browses at most a few dozen candidates.
const cacheSize = 64

// Pipeline is one session's icon resolver. It owns the HTTP client
// used for scraping and downloads and a per-session decode cache that
// dies with it.
type Pipeline struct {
	cfg    *config.Instance
	client *httpclient.Client
	cache  gcache.Cache
}

func NewPipeline(cfg *config.Instance) *Pipeline {
	return &Pipeline{
		cfg:    cfg,
		client: httpclient.NewClientFromConfig(cfg),
		cache:  gcache.New(cacheSize).LRU().Build(),
	}
}

// FindIcons gathers icon candidates for a launcher: files under the
// icon root matching name, then references scraped from pageURL when
// it is fetchable. Local results always come first.
func (p *Pipeline) FindIcons(ctx context.Context, name, pageURL string) []string {
	var (
		local  []string
		remote []string
	)

	var g errgroup.Group
	g.Go(func() error {
		local = SearchLocal(ctx, p.cfg.IconsDir(), name)
		return nil
	})
	if helpers.URLValid(pageURL) {
		g.Go(func() error {
			found, err := ScrapeIcons(ctx, p.client, pageURL)
			if err != nil {
				return err
			}
			remote = found
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		// A failed scrape costs the remote candidates, nothing else.
		log.Warn().Err(err).Msgf("favicon scrape failed: %s", pageURL)
	}

	return append(local, remote...)
}

// SearchUserIcons lists the user-curated MyIcons folder, unfiltered.
// An absent folder is the first-run case and yields nothing.
func (p *Pipeline) SearchUserIcons() []string {
	dir := p.cfg.UserIconsDir()

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var found []string
	for _, entry := range entries {
		if !entry.IsDir() {
			found = append(found, filepath.Join(dir, entry.Name()))
		}
	}
	return found
}

// Decode resolves source to validated icon bytes, fetching URLs and
// reading local paths. Results are cached per source for the life of
// the pipeline; failures are not cached.
func (p *Pipeline) Decode(ctx context.Context, source string) (*Icon, error) {
	if cached, err := p.cache.Get(source); err == nil {
		if icon, ok := cached.(*Icon); ok {
			return icon, nil
		}
	}

	data, err := p.readSource(ctx, source)
	if err != nil {
		return nil, err
	}

	icon, err := Decode(source, data)
	if err != nil {
		return nil, err
	}

	if setErr := p.cache.Set(source, icon); setErr != nil {
		log.Debug().Err(setErr).Msgf("icon cache set failed: %s", source)
	}
	return icon, nil
}

func (p *Pipeline) readSource(ctx context.Context, source string) ([]byte, error) {
	if helpers.URLValid(source) {
		data, err := p.client.GetBytes(ctx, source)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch icon %s: %w", source, err)
		}
		return data, nil
	}

	data, err := os.ReadFile(source) // #nosec G304 - source was chosen by the user
	if err != nil {
		return nil, fmt.Errorf("failed to read icon %s: %w", source, err)
	}
	return data, nil
}

// IconNameFromURL derives a search fragment from a page URL: the
// second-to-last label of the host, so www.example.com gives example.
// Single-label hosts give the label itself; anything unparseable gives
// an empty fragment.
func IconNameFromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	host := parsed.Hostname()
	if host == "" {
		return ""
	}
	parts := strings.Split(host, ".")
	if len(parts) < 2 {
		return host
	}
	return parts[len(parts)-2]
}
