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

	"github.com/google/shlex"
	"github.com/webapps-project/webapps-core/pkg/assets"
	"github.com/webapps-project/webapps-core/pkg/browsers"
	"github.com/webapps-project/webapps-core/pkg/config"
)

// Synthesize computes the command line written to the entry's Exec
// key, dispatched on the browser kind. Firefox-family synthesis also
// bootstraps the launcher's browser profile on disk. Unrecognized
// kinds, including the placeholder, produce an empty string.
func Synthesize(cfg *config.Instance, l *Launcher) (string, error) {
	switch l.Browser.Kind {
	case browsers.KindFirefox, browsers.KindFirefoxFlatpak,
		browsers.KindLibrewolf, browsers.KindWaterfoxFlatpak:
		return synthesizeFirefox(cfg, l)
	case browsers.KindChromium:
		return synthesizeChromium(cfg, l), nil
	case browsers.KindFalkon:
		return synthesizeFalkon(cfg, l), nil
	case browsers.KindNone:
		return "", nil
	default:
		return "", nil
	}
}

// Argv splits an exec string into spawnable arguments, honoring
// shell-style quoting inside custom parameters.
func Argv(execStr string) ([]string, error) {
	argv, err := shlex.Split(execStr)
	if err != nil {
		return nil, fmt.Errorf("failed to split exec line: %w", err)
	}
	return argv, nil
}

func firefoxFork(kind browsers.Kind) string {
	switch kind {
	case browsers.KindFirefox, browsers.KindFirefoxFlatpak:
		return "firefox"
	case browsers.KindLibrewolf:
		return "librewolf"
	case browsers.KindWaterfoxFlatpak:
		return "waterfox"
	case browsers.KindNone, browsers.KindChromium, browsers.KindFalkon:
		return ""
	default:
		return ""
	}
}

// firefoxProfileRoot maps a fork onto its profile data directory.
// Profiles sit under each fork's Flatpak data path even for native
// installs.
func firefoxProfileRoot(home, fork string) string {
	switch fork {
	case "librewolf":
		return filepath.Join(home, ".var", "app", "io.gitlab.librewolf-community", "data", "ice", "librewolf")
	case "waterfox":
		return filepath.Join(home, ".var", "app", "net.waterfox.waterfox", "data", "ice", "waterfox")
	default:
		return filepath.Join(home, ".var", "app", "org.mozilla.firefox", "data", "ice", "firefox")
	}
}

// FirefoxProfilePath returns the profile directory used by a
// Firefox-family launcher, or false for every other family.
func FirefoxProfilePath(cfg *config.Instance, l *Launcher) (string, bool) {
	fork := firefoxFork(l.Browser.Kind)
	if fork == "" {
		return "", false
	}
	return filepath.Join(firefoxProfileRoot(cfg.HomeDir(), fork), l.Codename), true
}

// isolatedProfilePath is where Chromium and Falkon launchers keep
// their per-launcher user data when profile isolation is on.
func isolatedProfilePath(cfg *config.Instance, l *Launcher) string {
	return filepath.Join(cfg.ProfilesDir(), l.Codename)
}

func synthesizeFirefox(cfg *config.Instance, l *Launcher) (string, error) {
	profilePath, ok := FirefoxProfilePath(cfg, l)
	if !ok {
		return "", nil
	}

	if err := bootstrapFirefoxProfile(profilePath, l.Navbar); err != nil {
		return "", err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s --class %s --name %s --profile %s --no-remote ",
		l.Browser.Exec, l.WMClass(), l.WMClass(), profilePath)

	if l.Incognito {
		sb.WriteString("--private-window ")
	}

	if l.CustomParameters != "" {
		sb.WriteString(l.CustomParameters + " ")
	}

	sb.WriteString(l.URL)

	return sb.String(), nil
}

func synthesizeChromium(cfg *config.Instance, l *Launcher) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s --app=%s --class=%s --name=%s ",
		l.Browser.Exec, l.URL, l.WMClass(), l.WMClass())

	if l.IsolateProfile {
		sb.WriteString("--user-data-dir=" + isolatedProfilePath(cfg, l) + " ")
	}

	if l.Incognito {
		// Edge is the odd one out for the private-window flag.
		if strings.HasPrefix(l.Browser.Name, "Microsoft Edge") {
			sb.WriteString("--inprivate ")
		} else {
			sb.WriteString("--incognito ")
		}
	}

	if l.CustomParameters != "" {
		sb.WriteString(l.CustomParameters + " ")
	}

	return sb.String()
}

func synthesizeFalkon(cfg *config.Instance, l *Launcher) string {
	var sb strings.Builder

	// Profile isolation gates the entire leading argument block here,
	// executable included, not just the profile flag.
	if l.IsolateProfile {
		fmt.Fprintf(&sb, "%s --portable --wmclass %s --profile %s ",
			l.Browser.Exec, l.WMClass(), isolatedProfilePath(cfg, l))
	}

	if l.Incognito {
		sb.WriteString("--private-browsing ")
	}

	if l.CustomParameters != "" {
		sb.WriteString(l.CustomParameters + " ")
	}

	sb.WriteString("--no-remote --current-tab " + l.URL)

	return sb.String()
}

// bootstrapFirefoxProfile materializes the profile directory with the
// bundled preference files. It runs on every synthesis, so edits to a
// launcher always land in the profile on the next save.
func bootstrapFirefoxProfile(profilePath string, navbar bool) error {
	chromeDir := filepath.Join(profilePath, "chrome")
	if err := os.MkdirAll(chromeDir, 0o750); err != nil {
		return fmt.Errorf("failed to create profile directory %s: %w", profilePath, err)
	}

	userJS := filepath.Join(profilePath, "user.js")
	if err := os.WriteFile(userJS, assets.FirefoxUserJS, 0o600); err != nil {
		return fmt.Errorf("failed to write user.js: %w", err)
	}

	// The navbar toggle works through presence or absence of the
	// UI-hiding stylesheet: keeping the navbar means an empty file.
	css := assets.FirefoxUserChromeCSS
	if navbar {
		css = []byte{}
	}
	userChrome := filepath.Join(chromeDir, "userChrome.css")
	if err := os.WriteFile(userChrome, css, 0o600); err != nil {
		return fmt.Errorf("failed to write userChrome.css: %w", err)
	}

	return nil
}
