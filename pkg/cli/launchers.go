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
	"context"
	"fmt"
	"io"

	"github.com/webapps-project/webapps-core/pkg/browsers"
	"github.com/webapps-project/webapps-core/pkg/config"
	"github.com/webapps-project/webapps-core/pkg/icons"
	"github.com/webapps-project/webapps-core/pkg/launchers"
)

func listBrowsers(w io.Writer, catalog *browsers.Catalog) {
	installed := catalog.Installed()
	if len(installed) <= 1 {
		_, _ = fmt.Fprintln(w, "No supported browsers installed.")
		return
	}

	for _, browser := range installed {
		if browser.Kind == browsers.KindNone {
			continue
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", browser.Name, browser.Kind, browser.Exec)
	}
}

func listLaunchers(w io.Writer, cfg *config.Instance, catalog *browsers.Catalog) {
	store := launchers.NewStore(cfg, catalog)

	results := store.List()
	if len(results) == 0 {
		_, _ = fmt.Fprintln(w, "No web apps found.")
		return
	}

	for _, result := range results {
		if result.Err != nil {
			_, _ = fmt.Fprintf(w, "%s\t<unreadable: %v>\n", result.Codename, result.Err)
			continue
		}

		l := result.Launcher
		state := "ok"
		if !l.IsValid {
			state = "invalid"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			l.Codename, l.Name, l.Browser.Name, l.URL, state)
	}
}

type createArgs struct {
	name      string
	url       string
	browser   string
	icon      string
	category  string
	params    string
	isolate   bool
	incognito bool
	navbar    bool
}

func createLauncher(
	cfg *config.Instance,
	catalog *browsers.Catalog,
	args createArgs,
) (*launchers.Launcher, error) {
	required := []struct {
		flag  string
		value string
	}{
		{"name", args.name},
		{"url", args.url},
		{"browser", args.browser},
		{"icon", args.icon},
	}
	for _, r := range required {
		if r.value == "" {
			return nil, fmt.Errorf("create requires the %s flag", r.flag)
		}
	}

	browser, found := catalog.FindByName(args.browser)
	if !found || browser.Kind == browsers.KindNone {
		return nil, fmt.Errorf("no installed browser named %q", args.browser)
	}

	pipeline := icons.NewPipeline(cfg)
	iconPath, err := pipeline.MoveIcon(context.Background(), args.icon, args.name)
	if err != nil {
		return nil, fmt.Errorf("failed to store icon: %w", err)
	}

	launcher := launchers.NewLauncher(cfg, launchers.NewLauncherArgs{
		Name:             args.name,
		URL:              args.url,
		Icon:             iconPath,
		Category:         args.category,
		Browser:          browser,
		CustomParameters: args.params,
		IsolateProfile:   args.isolate,
		Navbar:           args.navbar,
		Incognito:        args.incognito,
	})
	if validateErr := launchers.Validate(launcher); validateErr != nil {
		return nil, validateErr
	}

	store := launchers.NewStore(cfg, catalog)
	if err := store.Create(launcher); err != nil {
		return nil, fmt.Errorf("failed to create launcher: %w", err)
	}

	return launcher, nil
}

func deleteLauncher(cfg *config.Instance, catalog *browsers.Catalog, codename string) error {
	store := launchers.NewStore(cfg, catalog)

	for _, result := range store.List() {
		if result.Codename != codename {
			continue
		}

		launcher := result.Launcher
		if launcher == nil {
			// Unparseable entries are still removable, minus the
			// browser profile cleanup a resolved launcher would get.
			launcher = &launchers.Launcher{
				Path:     cfg.DesktopEntryPath(codename),
				Codename: codename,
			}
		}

		if err := store.Delete(launcher); err != nil {
			return fmt.Errorf("failed to delete launcher: %w", err)
		}
		return nil
	}

	return fmt.Errorf("no launcher with codename %q", codename)
}
