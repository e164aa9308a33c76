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

// Package launchers owns the web-app launcher model: the desktop-entry
// codec, per-browser command-line synthesis, and the on-disk store of
// generated entries.
package launchers

import (
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/webapps-project/webapps-core/pkg/browsers"
	"github.com/webapps-project/webapps-core/pkg/config"
)

// Launcher is one persisted web-app shortcut. It owns a full Browser
// snapshot, so it stays self-describing even if that browser is later
// uninstalled.
type Launcher struct {
	Path             string
	Codename         string
	Browser          browsers.Browser `validate:"installed"`
	Name             string           `validate:"required"`
	Icon             string           `validate:"required"`
	Exec             string
	Args             []string
	Category         string
	URL              string `validate:"required,url"`
	CustomParameters string
	IsValid          bool
	IsolateProfile   bool
	Navbar           bool
	Incognito        bool
}

// NewLauncherArgs carries everything needed to construct a Launcher.
// Codename is optional, a fresh one is minted from Name when empty.
type NewLauncherArgs struct {
	Name             string
	Codename         string
	URL              string
	Icon             string
	Category         string
	Browser          browsers.Browser
	CustomParameters string
	IsolateProfile   bool
	Navbar           bool
	Incognito        bool
}

// NewLauncher builds a Launcher and evaluates its validity up front.
// Validity is derived state, never persisted: it only reflects whether
// the required fields and browser install check pass right now.
func NewLauncher(cfg *config.Instance, args NewLauncherArgs) *Launcher {
	codename := args.Codename
	if codename == "" {
		codename = MintCodename(args.Name)
	}

	launcher := &Launcher{
		Path:             cfg.DesktopEntryPath(codename),
		Codename:         codename,
		Browser:          args.Browser,
		Name:             args.Name,
		Icon:             args.Icon,
		Exec:             args.Browser.Exec,
		Args:             []string{},
		Category:         args.Category,
		URL:              args.URL,
		CustomParameters: args.CustomParameters,
		IsolateProfile:   args.IsolateProfile,
		Navbar:           args.Navbar,
		Incognito:        args.Incognito,
	}
	launcher.IsValid = Validate(launcher) == nil

	return launcher
}

// MintCodename derives a launcher id from its display name: spaces
// stripped, then a random 4-digit suffix in 1000..9999 so two apps
// with the same name stay distinct.
func MintCodename(name string) string {
	suffix := rand.IntN(9000) + 1000
	return strings.ReplaceAll(name, " ", "") + strconv.Itoa(suffix)
}

// WMClass returns the window class handed to the browser, which is
// also what the desktop shell uses to group the app's windows.
func (l *Launcher) WMClass() string {
	return config.WMClassPrefix + l.Codename
}
