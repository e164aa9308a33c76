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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/webapps-project/webapps-core/pkg/assets"
	"github.com/webapps-project/webapps-core/pkg/browsers"
	"github.com/webapps-project/webapps-core/pkg/config"
	testhelpers "github.com/webapps-project/webapps-core/pkg/testing/helpers"
)

func testLauncher(kind browsers.Kind, name, exec string) *Launcher {
	return &Launcher{
		Codename: "Test1234",
		Name:     "Test App",
		URL:      "https://example.com",
		Icon:     "/tmp/test.png",
		Browser:  browsers.New(kind, name, exec, exec, ""),
	}
}

func firefoxProfile(cfg *config.Instance) string {
	return filepath.Join(cfg.HomeDir(),
		".var", "app", "org.mozilla.firefox", "data", "ice", "firefox", "Test1234")
}

func TestSynthesizeFirefox(t *testing.T) {
	cfg := testhelpers.ConfigWithTempHome(t)
	profile := firefoxProfile(cfg)

	tests := []struct {
		name     string
		mutate   func(*Launcher)
		expected string
	}{
		{
			name:   "plain",
			mutate: func(_ *Launcher) {},
			expected: "/usr/bin/firefox --class WebApp-Test1234 --name WebApp-Test1234 " +
				"--profile " + profile + " --no-remote https://example.com",
		},
		{
			name:   "private_window",
			mutate: func(l *Launcher) { l.Incognito = true },
			expected: "/usr/bin/firefox --class WebApp-Test1234 --name WebApp-Test1234 " +
				"--profile " + profile + " --no-remote --private-window https://example.com",
		},
		{
			name:   "custom_parameters",
			mutate: func(l *Launcher) { l.CustomParameters = "--kiosk" },
			expected: "/usr/bin/firefox --class WebApp-Test1234 --name WebApp-Test1234 " +
				"--profile " + profile + " --no-remote --kiosk https://example.com",
		},
		{
			name: "private_window_and_custom",
			mutate: func(l *Launcher) {
				l.Incognito = true
				l.CustomParameters = "--kiosk"
			},
			expected: "/usr/bin/firefox --class WebApp-Test1234 --name WebApp-Test1234 " +
				"--profile " + profile + " --no-remote --private-window --kiosk https://example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			launcher := testLauncher(browsers.KindFirefox, "Firefox", "/usr/bin/firefox")
			tt.mutate(launcher)

			execLine, err := Synthesize(cfg, launcher)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, execLine)
		})
	}
}

func TestSynthesizeFirefoxForkProfileRoots(t *testing.T) {
	cfg := testhelpers.ConfigWithTempHome(t)

	tests := []struct {
		name string
		kind browsers.Kind
		root string
	}{
		{
			name: "firefox_flatpak",
			kind: browsers.KindFirefoxFlatpak,
			root: filepath.Join(".var", "app", "org.mozilla.firefox", "data", "ice", "firefox"),
		},
		{
			name: "librewolf",
			kind: browsers.KindLibrewolf,
			root: filepath.Join(".var", "app", "io.gitlab.librewolf-community", "data", "ice", "librewolf"),
		},
		{
			name: "waterfox_flatpak",
			kind: browsers.KindWaterfoxFlatpak,
			root: filepath.Join(".var", "app", "net.waterfox.waterfox", "data", "ice", "waterfox"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			launcher := testLauncher(tt.kind, "Fork", "/usr/bin/fork")

			profile, ok := FirefoxProfilePath(cfg, launcher)
			require.True(t, ok)
			assert.Equal(t, filepath.Join(cfg.HomeDir(), tt.root, "Test1234"), profile)

			execLine, err := Synthesize(cfg, launcher)
			require.NoError(t, err)
			assert.Contains(t, execLine, "--profile "+profile+" ")
		})
	}
}

func TestFirefoxProfilePathOtherFamilies(t *testing.T) {
	cfg := testhelpers.ConfigWithTempHome(t)

	for _, kind := range []browsers.Kind{browsers.KindNone, browsers.KindChromium, browsers.KindFalkon} {
		_, ok := FirefoxProfilePath(cfg, testLauncher(kind, "Other", "/usr/bin/other"))
		assert.False(t, ok, "kind %s has no firefox profile", kind)
	}
}

func TestSynthesizeFirefoxBootstrapsProfile(t *testing.T) {
	cfg := testhelpers.ConfigWithTempHome(t)
	profile := firefoxProfile(cfg)

	launcher := testLauncher(browsers.KindFirefox, "Firefox", "/usr/bin/firefox")

	_, err := Synthesize(cfg, launcher)
	require.NoError(t, err)

	userJS, err := os.ReadFile(filepath.Join(profile, "user.js"))
	require.NoError(t, err)
	assert.Equal(t, assets.FirefoxUserJS, userJS)

	// Navbar off hides browser chrome through the stylesheet.
	css, err := os.ReadFile(filepath.Join(profile, "chrome", "userChrome.css"))
	require.NoError(t, err)
	assert.Equal(t, assets.FirefoxUserChromeCSS, css)
}

func TestSynthesizeFirefoxNavbarClearsStylesheet(t *testing.T) {
	cfg := testhelpers.ConfigWithTempHome(t)
	profile := firefoxProfile(cfg)

	launcher := testLauncher(browsers.KindFirefox, "Firefox", "/usr/bin/firefox")
	launcher.Navbar = true

	_, err := Synthesize(cfg, launcher)
	require.NoError(t, err)

	css, err := os.ReadFile(filepath.Join(profile, "chrome", "userChrome.css"))
	require.NoError(t, err)
	assert.Empty(t, css)

	// Toggling the navbar back off restores the stylesheet in place.
	launcher.Navbar = false
	_, err = Synthesize(cfg, launcher)
	require.NoError(t, err)

	css, err = os.ReadFile(filepath.Join(profile, "chrome", "userChrome.css"))
	require.NoError(t, err)
	assert.Equal(t, assets.FirefoxUserChromeCSS, css)
}

func TestSynthesizeChromium(t *testing.T) {
	cfg := testhelpers.ConfigWithTempHome(t)
	isolated := filepath.Join(cfg.ProfilesDir(), "Test1234")

	tests := []struct {
		name     string
		browser  string
		exec     string
		mutate   func(*Launcher)
		expected string
	}{
		{
			name:    "plain",
			browser: "Chromium",
			exec:    "/usr/bin/chromium",
			mutate:  func(_ *Launcher) {},
			expected: "/usr/bin/chromium --app=https://example.com " +
				"--class=WebApp-Test1234 --name=WebApp-Test1234 ",
		},
		{
			name:    "isolated_profile",
			browser: "Chromium",
			exec:    "/usr/bin/chromium",
			mutate:  func(l *Launcher) { l.IsolateProfile = true },
			expected: "/usr/bin/chromium --app=https://example.com " +
				"--class=WebApp-Test1234 --name=WebApp-Test1234 " +
				"--user-data-dir=" + isolated + " ",
		},
		{
			name:    "incognito",
			browser: "Google Chrome",
			exec:    "/usr/bin/google-chrome-stable",
			mutate:  func(l *Launcher) { l.Incognito = true },
			expected: "/usr/bin/google-chrome-stable --app=https://example.com " +
				"--class=WebApp-Test1234 --name=WebApp-Test1234 --incognito ",
		},
		{
			name:    "edge_uses_inprivate",
			browser: "Microsoft Edge",
			exec:    "/usr/bin/microsoft-edge-stable",
			mutate:  func(l *Launcher) { l.Incognito = true },
			expected: "/usr/bin/microsoft-edge-stable --app=https://example.com " +
				"--class=WebApp-Test1234 --name=WebApp-Test1234 --inprivate ",
		},
		{
			name:    "edge_flatpak_uses_inprivate",
			browser: "Microsoft Edge (Flatpak)",
			exec:    "/usr/bin/flatpak-edge",
			mutate:  func(l *Launcher) { l.Incognito = true },
			expected: "/usr/bin/flatpak-edge --app=https://example.com " +
				"--class=WebApp-Test1234 --name=WebApp-Test1234 --inprivate ",
		},
		{
			name:    "custom_parameters",
			browser: "Chromium",
			exec:    "/usr/bin/chromium",
			mutate:  func(l *Launcher) { l.CustomParameters = "--force-dark-mode" },
			expected: "/usr/bin/chromium --app=https://example.com " +
				"--class=WebApp-Test1234 --name=WebApp-Test1234 --force-dark-mode ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			launcher := testLauncher(browsers.KindChromium, tt.browser, tt.exec)
			tt.mutate(launcher)

			execLine, err := Synthesize(cfg, launcher)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, execLine)
		})
	}
}

func TestSynthesizeChromiumPlainHasNoProfileFlags(t *testing.T) {
	cfg := testhelpers.ConfigWithTempHome(t)

	launcher := testLauncher(browsers.KindChromium, "Chromium", "/usr/bin/chromium")

	execLine, err := Synthesize(cfg, launcher)
	require.NoError(t, err)
	assert.NotContains(t, execLine, "--user-data-dir")
	assert.NotContains(t, execLine, "--incognito")
	assert.NotContains(t, execLine, "--inprivate")
}

func TestSynthesizeFalkon(t *testing.T) {
	cfg := testhelpers.ConfigWithTempHome(t)
	isolated := filepath.Join(cfg.ProfilesDir(), "Test1234")

	tests := []struct {
		name     string
		mutate   func(*Launcher)
		expected string
	}{
		{
			// Without isolation the executable never makes it into the
			// line, matching how these launchers have always spawned.
			name:     "plain",
			mutate:   func(_ *Launcher) {},
			expected: "--no-remote --current-tab https://example.com",
		},
		{
			name:   "isolated_profile",
			mutate: func(l *Launcher) { l.IsolateProfile = true },
			expected: "/usr/bin/falkon --portable --wmclass WebApp-Test1234 " +
				"--profile " + isolated + " --no-remote --current-tab https://example.com",
		},
		{
			name:     "private_browsing",
			mutate:   func(l *Launcher) { l.Incognito = true },
			expected: "--private-browsing --no-remote --current-tab https://example.com",
		},
		{
			name: "isolated_private_custom",
			mutate: func(l *Launcher) {
				l.IsolateProfile = true
				l.Incognito = true
				l.CustomParameters = "--kiosk"
			},
			expected: "/usr/bin/falkon --portable --wmclass WebApp-Test1234 " +
				"--profile " + isolated + " --private-browsing --kiosk " +
				"--no-remote --current-tab https://example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			launcher := testLauncher(browsers.KindFalkon, "Falkon", "/usr/bin/falkon")
			tt.mutate(launcher)

			execLine, err := Synthesize(cfg, launcher)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, execLine)
		})
	}
}

func TestSynthesizePlaceholderBrowser(t *testing.T) {
	cfg := testhelpers.ConfigWithTempHome(t)

	launcher := testLauncher(browsers.KindNone, browsers.SentinelName, "")

	execLine, err := Synthesize(cfg, launcher)
	require.NoError(t, err)
	assert.Empty(t, execLine)
}

func TestArgv(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		execLine string
		expected []string
	}{
		{
			name:     "plain_flags",
			execLine: "/usr/bin/chromium --app=https://example.com --incognito ",
			expected: []string{"/usr/bin/chromium", "--app=https://example.com", "--incognito"},
		},
		{
			name:     "quoted_custom_parameter",
			execLine: `/usr/bin/firefox --kiosk --lang "en US" https://example.com`,
			expected: []string{"/usr/bin/firefox", "--kiosk", "--lang", "en US", "https://example.com"},
		},
		{
			name:     "empty",
			execLine: "",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			argv, err := Argv(tt.execLine)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, argv)
		})
	}
}

func TestArgvUnbalancedQuote(t *testing.T) {
	t.Parallel()

	_, err := Argv(`/usr/bin/firefox --lang "en`)
	require.Error(t, err)
}
