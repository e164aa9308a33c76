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
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/webapps-project/webapps-core/pkg/browsers"
	"github.com/webapps-project/webapps-core/pkg/config"
)

// ErrCannotResolveLauncher is returned when a persisted entry names a
// browser that is no longer installed. Such a launcher cannot be
// reconstructed.
var ErrCannotResolveLauncher = errors.New("cannot resolve launcher")

// wmClassMarkers identify an entry as one of ours. The extra markers
// accept entries imported from compatible prior tooling.
var wmClassMarkers = []string{
	"StartupWMClass=WebApp",
	"StartupWMClass=Chromium",
	"StartupWMClass=ICE-SSB",
}

// WriteEntry serializes the launcher to its desktop-entry file in a
// fixed key order. The Exec line is synthesized fresh on every write,
// never cached, so a re-saved launcher always carries a command line
// and profile files consistent with its current flags.
func WriteEntry(cfg *config.Instance, l *Launcher) error {
	execLine, err := Synthesize(cfg, l)
	if err != nil {
		return err
	}

	file, err := os.Create(l.Path)
	if err != nil {
		return fmt.Errorf("failed to create desktop entry %s: %w", l.Path, err)
	}

	lines := []string{
		"[Desktop Entry]",
		"Version=1.0",
		"Name=" + l.Name,
		"Comment=Web App",
		"Exec=" + execLine,
		"Terminal=false",
		"Type=Application",
		"Icon=" + l.Icon,
		"Categories=GTK;" + l.Category + ";",
		"MimeType=text/html;text/xml;application/xhtml_xml;",
		"StartupWMClass=" + l.WMClass(),
		"StartupNotify=true",
		"X-MultipleArgs=false",
		"X-WebApp-Browser=" + l.Browser.Name,
		"X-WebApp-URL=" + l.URL,
		"X-WebApp-Navbar=" + strconv.FormatBool(l.Navbar),
		"X-WebApp-PrivateWindow=" + strconv.FormatBool(l.Incognito),
		"X-WebApp-Isolated=" + strconv.FormatBool(l.IsolateProfile),
		"X-WebApp-CustomParameters=" + l.CustomParameters,
	}

	writer := bufio.NewWriter(file)
	for _, line := range lines {
		if _, err := fmt.Fprintln(writer, line); err != nil {
			_ = file.Close()
			return fmt.Errorf("failed to write desktop entry %s: %w", l.Path, err)
		}
	}

	if err := writer.Flush(); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to write desktop entry %s: %w", l.Path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close desktop entry %s: %w", l.Path, err)
	}

	return nil
}

// ReadEntry reconstructs a Launcher from a desktop-entry file. The
// codename comes from the caller, who derived it from the filename.
func ReadEntry(catalog *browsers.Catalog, path, codename string) (*Launcher, error) {
	file, err := os.Open(path) // #nosec G304 - path comes from the managed entries directory
	if err != nil {
		return nil, fmt.Errorf("failed to open desktop entry %s: %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	return parseEntry(catalog, file, path, codename)
}

// scanValue applies one lenient key test: a line belongs to a key if
// it contains the key token anywhere, and the value is the line with
// every occurrence of the token removed. Values must not contain
// another key token as a substring; entries written by this codec
// never do, and stricter parsing would reject entries from the prior
// tooling this format is shared with.
func scanValue(line, key string) (string, bool) {
	if !strings.Contains(line, key) {
		return "", false
	}
	return strings.ReplaceAll(line, key, ""), true
}

func parseEntry(catalog *browsers.Catalog, r io.Reader, path, codename string) (*Launcher, error) {
	var (
		browserName      string
		name             string
		icon             string
		execLine         string
		category         string
		url              string
		customParameters string
		isolateProfile   bool
		navbar           bool
		incognito        bool
		isWebApp         bool
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()

		for _, marker := range wmClassMarkers {
			if strings.Contains(line, marker) {
				isWebApp = true
			}
		}

		if v, ok := scanValue(line, "Name="); ok {
			name = v
		}
		if v, ok := scanValue(line, "Icon="); ok {
			icon = v
		}
		if v, ok := scanValue(line, "Exec="); ok {
			execLine = v
		}
		if v, ok := scanValue(line, "Categories="); ok {
			category = strings.ReplaceAll(strings.ReplaceAll(v, "GTK;", ""), ";", "")
		}
		if v, ok := scanValue(line, "X-WebApp-Browser="); ok {
			browserName = v
		}
		if v, ok := scanValue(line, "X-WebApp-URL="); ok {
			url = v
		}
		if v, ok := scanValue(line, "X-WebApp-CustomParameters="); ok {
			customParameters = v
		}
		if v, ok := scanValue(line, "X-WebApp-Isolated="); ok {
			isolateProfile = v == "true"
		}
		if v, ok := scanValue(line, "X-WebApp-Navbar="); ok {
			navbar = v == "true"
		}
		if v, ok := scanValue(line, "X-WebApp-PrivateWindow="); ok {
			incognito = v == "true"
		}
	}
	if err := scanner.Err(); err != nil {
		// A bad line never aborts the parse, whatever was readable
		// still counts.
		log.Error().Err(err).Msgf("error reading desktop entry: %s", path)
	}

	isValid := isWebApp && name != "" && icon != ""

	browser, ok := catalog.FindByName(browserName)
	if !ok {
		return nil, fmt.Errorf("%w: no installed browser named %q", ErrCannotResolveLauncher, browserName)
	}

	args := make([]string, 0)
	for i, arg := range strings.Split(execLine, " ") {
		if i > 0 && arg != "" {
			args = append(args, arg)
		}
	}

	return &Launcher{
		Path:             path,
		Codename:         codename,
		Browser:          browser,
		Name:             name,
		Icon:             icon,
		IsValid:          isValid,
		Exec:             execLine,
		Args:             args,
		Category:         category,
		URL:              url,
		CustomParameters: customParameters,
		IsolateProfile:   isolateProfile,
		Navbar:           navbar,
		Incognito:        incognito,
	}, nil
}
