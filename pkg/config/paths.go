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

package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// resolveDirs picks the base directories every other path hangs off.
// WEBAPPS_HOME forces all of them under one root, which keeps tests
// and portable installs away from the real home directory.
func resolveDirs() (home, dataHome, stateHome string) {
	if override := os.Getenv(HomeEnv); override != "" {
		return override,
			filepath.Join(override, ".local", "share"),
			filepath.Join(override, ".local", "state")
	}
	return xdg.Home, xdg.DataHome, xdg.StateHome
}

func xdgConfigHome() string {
	if override := os.Getenv(HomeEnv); override != "" {
		return filepath.Join(override, ".config")
	}
	return xdg.ConfigHome
}

func (c *Instance) HomeDir() string {
	return c.home
}

func (c *Instance) DataDir() string {
	return c.dataHome
}

func (c *Instance) LogDir() string {
	return filepath.Join(c.stateHome, AppName)
}

func (c *Instance) LogPath() string {
	return filepath.Join(c.LogDir(), LogFile)
}

func (c *Instance) ApplicationsDir() string {
	return filepath.Join(c.dataHome, "applications")
}

// DesktopEntryPath returns the managed entry file for a codename.
func (c *Instance) DesktopEntryPath(codename string) string {
	return filepath.Join(c.ApplicationsDir(), EntryPrefix+codename+EntryExt)
}

// IconsDir resolves the icon store root. Inside a Flatpak sandbox the
// regular XDG data path is read-only, so downloads move to the
// app-private directory instead.
func (c *Instance) IconsDir() string {
	if id := os.Getenv(SandboxEnv); id != "" {
		return filepath.Join(c.home, ".var", "app", id, "data", "icons")
	}
	return filepath.Join(c.dataHome, "icons")
}

// UserIconsDir holds icons the user dropped in by hand. It sits inside
// the icon store so both locations are searched together.
func (c *Instance) UserIconsDir() string {
	return filepath.Join(c.IconsDir(), "MyIcons")
}

// ProfilesDir is the root for isolated Chromium and Falkon profiles.
// Firefox-family profiles live elsewhere, see the launchers package.
func (c *Instance) ProfilesDir() string {
	return filepath.Join(c.dataHome, "ice", "profiles")
}
