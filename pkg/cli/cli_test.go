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

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/webapps-project/webapps-core/pkg/browsers"
	"github.com/webapps-project/webapps-core/pkg/config"
	testhelpers "github.com/webapps-project/webapps-core/pkg/testing/helpers"
)

func catalogWithChromium(t *testing.T) (*config.Instance, *browsers.Catalog) {
	t.Helper()
	cfg := testhelpers.ConfigWithTempHome(t)
	testhelpers.InstallFakeFlatpak(t, cfg, "org.chromium.Chromium")
	return cfg, browsers.NewCatalog(cfg)
}

func TestListBrowsersOutput(t *testing.T) {
	_, catalog := catalogWithChromium(t)

	var buf bytes.Buffer
	listBrowsers(&buf, catalog)

	out := buf.String()
	assert.Contains(t, out, "Chromium (Flatpak)\tchromium\t")
	assert.NotContains(t, out, browsers.SentinelName)
}

func TestListBrowsersNoneInstalled(t *testing.T) {
	cfg := testhelpers.ConfigWithTempHome(t)
	catalog := browsers.NewCatalog(cfg)

	var buf bytes.Buffer
	listBrowsers(&buf, catalog)

	assert.Equal(t, "No supported browsers installed.\n", buf.String())
}

func TestListLaunchersEmpty(t *testing.T) {
	cfg, catalog := catalogWithChromium(t)

	var buf bytes.Buffer
	listLaunchers(&buf, cfg, catalog)

	assert.Equal(t, "No web apps found.\n", buf.String())
}

func TestCreateThenListThenDelete(t *testing.T) {
	cfg, catalog := catalogWithChromium(t)

	iconPath := filepath.Join(t.TempDir(), "devdocs.png")
	testhelpers.WritePNG(t, iconPath, 128, 128)

	launcher, err := createLauncher(cfg, catalog, createArgs{
		name:    "DevDocs",
		url:     "https://devdocs.io",
		browser: "Chromium (Flatpak)",
		icon:    iconPath,
	})
	require.NoError(t, err)
	require.True(t, launcher.IsValid)
	assert.FileExists(t, launcher.Path)
	assert.FileExists(t, launcher.Icon)
	assert.Equal(t, filepath.Join(cfg.UserIconsDir(), "DevDocs.png"), launcher.Icon)

	var buf bytes.Buffer
	listLaunchers(&buf, cfg, catalog)
	out := buf.String()
	assert.Contains(t, out, launcher.Codename+"\tDevDocs\tChromium (Flatpak)\thttps://devdocs.io\tok\n")

	err = deleteLauncher(cfg, catalog, launcher.Codename)
	require.NoError(t, err)
	assert.NoFileExists(t, launcher.Path)
}

func TestCreateLauncherMissingFlags(t *testing.T) {
	cfg, catalog := catalogWithChromium(t)

	_, err := createLauncher(cfg, catalog, createArgs{
		url:     "https://devdocs.io",
		browser: "Chromium (Flatpak)",
		icon:    "icon.png",
	})
	require.ErrorContains(t, err, "create requires the name flag")
}

func TestCreateLauncherUnknownBrowser(t *testing.T) {
	cfg, catalog := catalogWithChromium(t)

	_, err := createLauncher(cfg, catalog, createArgs{
		name:    "DevDocs",
		url:     "https://devdocs.io",
		browser: "Ghost Browser",
		icon:    "icon.png",
	})
	require.ErrorContains(t, err, `no installed browser named "Ghost Browser"`)
}

func TestCreateLauncherSentinelBrowserRejected(t *testing.T) {
	cfg, catalog := catalogWithChromium(t)

	_, err := createLauncher(cfg, catalog, createArgs{
		name:    "DevDocs",
		url:     "https://devdocs.io",
		browser: browsers.SentinelName,
		icon:    "icon.png",
	})
	require.ErrorContains(t, err, "no installed browser named")
}

func TestCreateLauncherRejectsBareHostname(t *testing.T) {
	cfg, catalog := catalogWithChromium(t)

	iconPath := filepath.Join(t.TempDir(), "devdocs.png")
	testhelpers.WritePNG(t, iconPath, 128, 128)

	_, err := createLauncher(cfg, catalog, createArgs{
		name:    "DevDocs",
		url:     "devdocs.io",
		browser: "Chromium (Flatpak)",
		icon:    iconPath,
	})
	require.ErrorContains(t, err, "invalid launcher")
}

func TestDeleteLauncherUnknownCodename(t *testing.T) {
	cfg, catalog := catalogWithChromium(t)

	err := deleteLauncher(cfg, catalog, "Missing1234")
	require.ErrorContains(t, err, `no launcher with codename "Missing1234"`)
}

func TestDeleteLauncherUnparseableEntry(t *testing.T) {
	cfg, catalog := catalogWithChromium(t)

	path := cfg.DesktopEntryPath("Broken1234")
	entry := "[Desktop Entry]\nName=Broken\nIcon=broken.png\n" +
		"StartupWMClass=WebApp-Broken1234\nX-WebApp-Browser=Ghost Browser\n"
	require.NoError(t, testhelpers.NewOSFS().WriteFile(path, []byte(entry)))

	err := deleteLauncher(cfg, catalog, "Broken1234")
	require.NoError(t, err)
	assert.NoFileExists(t, path)
}

func TestListIconCandidatesIncludesUserIcons(t *testing.T) {
	cfg := testhelpers.ConfigWithTempHome(t)
	require.NoError(t, os.MkdirAll(cfg.UserIconsDir(), 0o750))

	testhelpers.WritePNG(t, filepath.Join(cfg.IconsDir(), "devdocs.png"), 128, 128)
	testhelpers.WritePNG(t, filepath.Join(cfg.UserIconsDir(), "mine.png"), 16, 16)

	var buf bytes.Buffer
	listIconCandidates(&buf, cfg, "devdocs", "")

	out := buf.String()
	assert.Contains(t, out, filepath.Join(cfg.IconsDir(), "devdocs.png")+"\traster 128x128\n")
	assert.Contains(t, out, filepath.Join(cfg.UserIconsDir(), "mine.png")+"\tuser\n")
}

func TestListIconCandidatesDropsUndersized(t *testing.T) {
	cfg := testhelpers.ConfigWithTempHome(t)
	require.NoError(t, os.MkdirAll(cfg.IconsDir(), 0o750))

	testhelpers.WritePNG(t, filepath.Join(cfg.IconsDir(), "devdocs-small.png"), 32, 32)

	var buf bytes.Buffer
	listIconCandidates(&buf, cfg, "devdocs", "")

	assert.Equal(t, "No icons found.\n", buf.String())
}

func TestListLaunchersReportsUnreadableEntry(t *testing.T) {
	cfg, catalog := catalogWithChromium(t)

	path := cfg.DesktopEntryPath("Ghost1234")
	entry := "[Desktop Entry]\nName=Ghost\nIcon=ghost.png\n" +
		"StartupWMClass=WebApp-Ghost1234\nX-WebApp-Browser=Ghost Browser\n"
	require.NoError(t, testhelpers.NewOSFS().WriteFile(path, []byte(entry)))

	var buf bytes.Buffer
	listLaunchers(&buf, cfg, catalog)

	out := buf.String()
	assert.Contains(t, out, "Ghost1234\t<unreadable: ")
	assert.Contains(t, out, `no installed browser named "Ghost Browser"`)
}

func TestIsFlagPassed(t *testing.T) {
	t.Parallel()

	assert.False(t, isFlagPassed("never-registered"))
}
