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

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
	"github.com/webapps-project/webapps-core/pkg/config"
)

// EntryEvent describes one change to a managed desktop entry file.
type EntryEvent struct {
	Codename string
	Op       fsnotify.Op
}

// StartEntryWatch watches the applications directory and invokes
// onChange for every create, write, remove, or rename of a managed
// entry file. Other files in the directory are ignored. The caller
// owns the returned watcher and stops the watch by closing it.
func StartEntryWatch(cfg *config.Instance, onChange func(EntryEvent)) (*fsnotify.Watcher, error) {
	log.Info().Msg("starting desktop entry watcher")

	dir := cfg.ApplicationsDir()
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("cannot create applications dir: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}

				filename := filepath.Base(event.Name)
				if !strings.HasPrefix(filename, config.EntryPrefix) ||
					!strings.HasSuffix(filename, config.EntryExt) {
					continue
				}

				codename := strings.ReplaceAll(filename, config.EntryPrefix, "")
				codename = strings.ReplaceAll(codename, config.EntryExt, "")
				onChange(EntryEvent{Codename: codename, Op: event.Op})
			case watchErr, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Error().Msgf("error in watcher: %s", watchErr)
			}
		}
	}()

	if err := watcher.Add(dir); err != nil {
		if closeErr := watcher.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("error closing watcher")
		}
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	return watcher, nil
}
