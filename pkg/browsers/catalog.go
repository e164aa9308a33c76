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

package browsers

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/webapps-project/webapps-core/pkg/config"
)

// SentinelName is the display name of the placeholder entry returned
// at index 0 of every Installed listing.
const SentinelName = "Select browser"

const flatpakBin = ".local/share/flatpak/exports/bin/"

func nativeCandidates(dataHome string) []Browser {
	paths := []struct {
		kind Kind
		name string
		path string
	}{
		{KindFirefox, "Firefox", "/usr/bin/firefox"},
		{KindLibrewolf, "Librewolf", "/usr/bin/librewolf"},
		{KindChromium, "Chromium", "/usr/bin/chromium"},
		{KindChromium, "Google Chrome", "/usr/bin/google-chrome-stable"},
		{KindChromium, "Brave", "/usr/bin/brave"},
		{KindChromium, "Vivaldi", "/usr/bin/vivaldi"},
		{KindChromium, "Microsoft Edge", "/usr/bin/microsoft-edge-stable"},
		{KindFalkon, "Falkon", "/usr/bin/falkon"},
	}

	candidates := make([]Browser, 0, len(paths))
	for _, p := range paths {
		candidates = append(candidates, New(p.kind, p.name, p.path, p.path, dataHome))
	}
	return candidates
}

func flatpakCandidates(dataHome string) []Browser {
	apps := []struct {
		kind Kind
		name string
		id   string
	}{
		{KindFirefoxFlatpak, "Firefox (Flatpak)", "org.mozilla.firefox"},
		{KindLibrewolf, "Librewolf (Flatpak)", "io.gitlab.librewolf-community"},
		{KindWaterfoxFlatpak, "Waterfox (Flatpak)", "net.waterfox.waterfox"},
		{KindChromium, "Chromium (Flatpak)", "org.chromium.Chromium"},
		{KindChromium, "Google Chrome (Flatpak)", "com.google.Chrome"},
		{KindChromium, "Brave (Flatpak)", "com.brave.Browser"},
		{KindChromium, "Microsoft Edge (Flatpak)", "com.microsoft.Edge"},
		{KindFalkon, "Falkon (Flatpak)", "org.kde.falkon"},
	}

	candidates := make([]Browser, 0, len(apps))
	for _, a := range apps {
		// Flatpak exports a launch wrapper under the user's data home,
		// which doubles as the install probe.
		wrapper := flatpakBin + a.id
		candidates = append(candidates, New(a.kind, a.name, wrapper, wrapper, dataHome))
	}
	return candidates
}

// Catalog resolves browser candidates against one user environment.
type Catalog struct {
	dataHome string
	extra    []config.ExtraBrowser
}

func NewCatalog(cfg *config.Instance) *Catalog {
	return &Catalog{
		dataHome: cfg.DataDir(),
		extra:    cfg.ExtraBrowsers(),
	}
}

// Supported returns every known candidate with resolved paths,
// whether installed or not. Built-in rows come first, then browsers
// declared in config.toml.
func (c *Catalog) Supported() []Browser {
	candidates := nativeCandidates(c.dataHome)
	candidates = append(candidates, flatpakCandidates(c.dataHome)...)
	candidates = append(candidates, c.extraCandidates()...)
	return candidates
}

func (c *Catalog) extraCandidates() []Browser {
	candidates := make([]Browser, 0, len(c.extra))
	for _, eb := range c.extra {
		kind, err := ParseKind(eb.Kind)
		if err != nil {
			log.Warn().
				Str("browser", eb.Name).
				Msgf("skipping configured browser: %v", err)
			continue
		}

		test := eb.Test
		if test == "" {
			test = eb.Exec
		}
		candidates = append(candidates, New(kind, eb.Name, eb.Exec, test, c.dataHome))
	}
	return candidates
}

// Installed filters Supported down to candidates whose probe path
// exists, with the "Select browser" placeholder prepended at index 0.
// A probe failure of any sort counts as not installed and never fails
// the listing.
func (c *Catalog) Installed() []Browser {
	installed := []Browser{
		New(KindNone, SentinelName, "", "", c.dataHome),
	}

	for _, candidate := range c.Supported() {
		if _, err := os.Stat(candidate.test); err != nil {
			continue
		}
		installed = append(installed, candidate)
	}

	return installed
}

// FindByName scans the installed list for a display name match. Used
// to resolve the browser stored in a persisted launcher back to a
// live install.
func (c *Catalog) FindByName(name string) (Browser, bool) {
	for _, b := range c.Installed() {
		if b.Name == name {
			return b, true
		}
	}
	return Browser{}, false
}
