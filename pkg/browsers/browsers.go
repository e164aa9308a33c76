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

// Package browsers knows which browsers can host a web app, how each
// of them is launched, and how to tell whether one is installed.
package browsers

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Kind identifies one supported browser variant. The set is closed:
// command synthesis does an exhaustive switch over it.
type Kind int

const (
	// KindNone is the "Select browser" placeholder offered before the
	// user has picked anything. It never launches.
	KindNone Kind = iota
	KindFirefox
	KindFirefoxFlatpak
	KindLibrewolf
	KindWaterfoxFlatpak
	KindChromium
	KindFalkon
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindFirefox:
		return "firefox"
	case KindFirefoxFlatpak:
		return "firefox-flatpak"
	case KindLibrewolf:
		return "librewolf"
	case KindWaterfoxFlatpak:
		return "waterfox-flatpak"
	case KindChromium:
		return "chromium"
	case KindFalkon:
		return "falkon"
	default:
		return "unknown"
	}
}

// ParseKind maps a config-file kind label back to a Kind. Used for
// user-declared browsers in config.toml.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "firefox":
		return KindFirefox, nil
	case "firefox-flatpak":
		return KindFirefoxFlatpak, nil
	case "librewolf":
		return KindLibrewolf, nil
	case "waterfox-flatpak":
		return KindWaterfoxFlatpak, nil
	case "chromium":
		return KindChromium, nil
	case "falkon":
		return KindFalkon, nil
	default:
		return KindNone, fmt.Errorf("unknown browser kind: %q", s)
	}
}

// Family groups kinds that share a command-line synthesis algorithm.
type Family int

const (
	FamilyNone Family = iota
	FamilyFirefox
	FamilyChromium
	FamilyFalkon
)

func (k Kind) Family() Family {
	switch k {
	case KindFirefox, KindFirefoxFlatpak, KindLibrewolf, KindWaterfoxFlatpak:
		return FamilyFirefox
	case KindChromium:
		return FamilyChromium
	case KindFalkon:
		return FamilyFalkon
	case KindNone:
		return FamilyNone
	default:
		return FamilyNone
	}
}

// Browser is one launchable browser with resolved paths. Launchers
// embed a Browser by value, so a copy stays usable even if the
// install disappears later.
type Browser struct {
	Kind Kind
	Name string
	Exec string
	test string
}

// dataHomePrefix marks catalog paths that live under the per-user XDG
// data directory and need expanding to an absolute path.
const dataHomePrefix = ".local/share/"

// New resolves a catalog row into a Browser. Exec and probe paths
// starting with ".local/share/" are rebased onto dataHome, everything
// else is taken verbatim.
func New(kind Kind, name, exec, testPath, dataHome string) Browser {
	expand := func(p string) string {
		if rest, ok := strings.CutPrefix(p, dataHomePrefix); ok {
			return filepath.Join(dataHome, rest)
		}
		return p
	}

	return Browser{
		Kind: kind,
		Name: name,
		Exec: expand(exec),
		test: expand(testPath),
	}
}

// Installed reports whether this Browser represents a real install.
// Catalog entries are only ever handed out after their probe path was
// found on disk, so everything except the placeholder qualifies.
func (b Browser) Installed() bool {
	return b.Kind != KindNone
}

// ProbePath returns the path checked for install detection. It is
// never executed.
func (b Browser) ProbePath() string {
	return b.test
}
