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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/webapps-project/webapps-core/pkg/config"
)

// ConfigWithTempHome returns a config whose home, data, and state
// directories all live under a fresh temp dir. Tests using it must
// not run in parallel since it sets the home override variable.
func ConfigWithTempHome(t *testing.T) *config.Instance {
	t.Helper()
	t.Setenv(config.HomeEnv, t.TempDir())

	cfg, err := config.NewConfig(t.TempDir(), config.BaseDefaults)
	require.NoError(t, err)
	return cfg
}

// InstallFakeFlatpak drops an exported launch wrapper into the
// config's data directory so the browser probe reports the app
// installed. Returns the wrapper path.
func InstallFakeFlatpak(t *testing.T, cfg *config.Instance, appID string) string {
	t.Helper()

	bin := filepath.Join(cfg.DataDir(), "flatpak", "exports", "bin")
	require.NoError(t, os.MkdirAll(bin, 0o750))

	wrapper := filepath.Join(bin, appID)
	require.NoError(t, os.WriteFile(wrapper, []byte("#!/bin/sh\n"), 0o700))
	return wrapper
}
