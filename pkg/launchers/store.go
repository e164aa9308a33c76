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

package launchers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/webapps-project/webapps-core/pkg/browsers"
	"github.com/webapps-project/webapps-core/pkg/config"
)

// Store enumerates, creates, and deletes persisted launcher entries
// in the user's applications directory.
type Store struct {
	cfg     *config.Instance
	catalog *browsers.Catalog
}

func NewStore(cfg *config.Instance, catalog *browsers.Catalog) *Store {
	return &Store{
		cfg:     cfg,
		catalog: catalog,
	}
}

// ListResult carries one entry file's outcome. A file that fails to
// parse occupies its slot with Err set, it never fails the listing.
type ListResult struct {
	Launcher *Launcher
	Err      error
	Codename string
}

// List scans the applications directory for managed entries, parsing
// each one independently. A missing directory is the first-run case:
// it is created and an empty listing returned.
func (s *Store) List() []ListResult {
	dir := s.cfg.ApplicationsDir()

	entries, err := os.ReadDir(dir)
	if err != nil {
		if mkErr := os.MkdirAll(dir, 0o750); mkErr != nil {
			log.Error().Err(mkErr).Msgf("cannot create applications dir: %s", dir)
		}
		return nil
	}

	var results []ListResult
	for _, entry := range entries {
		filename := entry.Name()
		if !strings.HasPrefix(filename, config.EntryPrefix) ||
			!strings.HasSuffix(filename, config.EntryExt) {
			continue
		}

		codename := strings.ReplaceAll(filename, config.EntryPrefix, "")
		codename = strings.ReplaceAll(codename, config.EntryExt, "")

		launcher, readErr := ReadEntry(s.catalog, filepath.Join(dir, filename), codename)
		results = append(results, ListResult{
			Codename: codename,
			Launcher: launcher,
			Err:      readErr,
		})
	}

	return results
}

// Create persists the launcher through the codec. Validity was
// already evaluated at construction and is independent of whether
// this write succeeds.
func (s *Store) Create(l *Launcher) error {
	if err := os.MkdirAll(s.cfg.ApplicationsDir(), 0o750); err != nil {
		return fmt.Errorf("cannot create applications dir: %w", err)
	}
	return WriteEntry(s.cfg, l)
}

// Delete removes the launcher's entry file and, for Firefox-family
// browsers, its profile directory tree. A missing entry file is
// logged and skipped; profile removal is best-effort.
func (s *Store) Delete(l *Launcher) error {
	if _, err := os.Stat(l.Path); err == nil {
		if removeErr := os.Remove(l.Path); removeErr != nil {
			return fmt.Errorf("failed to remove desktop entry %s: %w", l.Path, removeErr)
		}
	} else {
		log.Error().Msgf("desktop entry not found: %s", l.Path)
	}

	if l.Browser.Kind.Family() == browsers.FamilyFirefox {
		profilePath, ok := FirefoxProfilePath(s.cfg, l)
		if ok {
			if err := os.RemoveAll(profilePath); err != nil {
				log.Warn().Err(err).Msgf("failed to remove profile: %s", profilePath)
			} else {
				log.Info().Msgf("removed firefox profile directory: %s", profilePath)
			}
		}
	}

	return nil
}
