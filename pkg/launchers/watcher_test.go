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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testhelpers "github.com/webapps-project/webapps-core/pkg/testing/helpers"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func collectEvents() (func(EntryEvent), chan EntryEvent) {
	events := make(chan EntryEvent, 16)
	return func(event EntryEvent) {
		select {
		case events <- event:
		default:
		}
	}, events
}

func awaitEvent(t *testing.T, events chan EntryEvent, codename string, op fsnotify.Op) {
	t.Helper()
	require.Eventually(t, func() bool {
		select {
		case event := <-events:
			return event.Codename == codename && event.Op.Has(op)
		default:
			return false
		}
	}, 3*time.Second, 10*time.Millisecond)
}

func TestEntryWatchReportsCreate(t *testing.T) {
	cfg := testhelpers.ConfigWithTempHome(t)

	onChange, events := collectEvents()
	watcher, err := StartEntryWatch(cfg, onChange)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, watcher.Close())
	}()

	path := cfg.DesktopEntryPath("Foo1234")
	require.NoError(t, os.WriteFile(path, []byte("[Desktop Entry]\n"), 0o600))

	awaitEvent(t, events, "Foo1234", fsnotify.Create)
}

func TestEntryWatchReportsRemove(t *testing.T) {
	cfg := testhelpers.ConfigWithTempHome(t)

	path := cfg.DesktopEntryPath("Foo1234")
	require.NoError(t, os.MkdirAll(cfg.ApplicationsDir(), 0o750))
	require.NoError(t, os.WriteFile(path, []byte("[Desktop Entry]\n"), 0o600))

	onChange, events := collectEvents()
	watcher, err := StartEntryWatch(cfg, onChange)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, watcher.Close())
	}()

	require.NoError(t, os.Remove(path))

	awaitEvent(t, events, "Foo1234", fsnotify.Remove)
}

func TestEntryWatchIgnoresForeignFiles(t *testing.T) {
	cfg := testhelpers.ConfigWithTempHome(t)

	onChange, events := collectEvents()
	watcher, err := StartEntryWatch(cfg, onChange)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, watcher.Close())
	}()

	// Events arrive in order, so once the managed entry shows up the
	// foreign files before it would already have been delivered.
	foreign := filepath.Join(cfg.ApplicationsDir(), "firefox.desktop")
	require.NoError(t, os.WriteFile(foreign, []byte("[Desktop Entry]\n"), 0o600))
	stray := filepath.Join(cfg.ApplicationsDir(), "webapp-Stray.txt")
	require.NoError(t, os.WriteFile(stray, []byte("x"), 0o600))
	managed := cfg.DesktopEntryPath("Real1234")
	require.NoError(t, os.WriteFile(managed, []byte("[Desktop Entry]\n"), 0o600))

	require.Eventually(t, func() bool {
		return len(events) > 0
	}, 3*time.Second, 10*time.Millisecond)

	first := <-events
	assert.Equal(t, "Real1234", first.Codename)
}
