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
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/webapps-project/webapps-core/pkg/browsers"
	"github.com/webapps-project/webapps-core/pkg/config"
	"github.com/webapps-project/webapps-core/pkg/helpers"
)

type Flags struct {
	List     *bool
	Browsers *bool
	Create   *bool
	Delete   *string
	Icons    *string
	Version  *bool

	Name         *string
	URL          *string
	Browser      *string
	Icon         *string
	Category     *string
	CustomParams *string
	Isolate      *bool
	Incognito    *bool
	Navbar       *bool
}

// SetupFlags defines all common CLI flags.
func SetupFlags() *Flags {
	return &Flags{
		List: flag.Bool(
			"list",
			false,
			"list managed web app launchers",
		),
		Browsers: flag.Bool(
			"browsers",
			false,
			"list installed browsers",
		),
		Create: flag.Bool(
			"create",
			false,
			"create a launcher from the -name/-url/-browser/-icon flags",
		),
		Delete: flag.String(
			"delete",
			"",
			"delete the launcher with this codename",
		),
		Icons: flag.String(
			"icons",
			"",
			"search icon candidates for this name, scraping -url if given",
		),
		Version: flag.Bool(
			"version",
			false,
			"print version and exit",
		),
		Name: flag.String(
			"name",
			"",
			"display name of the new launcher",
		),
		URL: flag.String(
			"url",
			"",
			"web app URL",
		),
		Browser: flag.String(
			"browser",
			"",
			"installed browser name to launch with",
		),
		Icon: flag.String(
			"icon",
			"",
			"icon path or URL, stored into the managed icon folder",
		),
		Category: flag.String(
			"category",
			"",
			"desktop entry category",
		),
		CustomParams: flag.String(
			"params",
			"",
			"extra browser command line parameters",
		),
		Isolate: flag.Bool(
			"isolate",
			false,
			"give the launcher its own browser profile",
		),
		Incognito: flag.Bool(
			"incognito",
			false,
			"open the web app in a private window",
		),
		Navbar: flag.Bool(
			"navbar",
			false,
			"keep the Firefox navigation bar visible",
		),
	}
}

func isFlagPassed(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// Pre runs flag parsing and actions any immediate flags that don't
// require environment setup. Add any custom flags before running this.
func (f *Flags) Pre() {
	flag.Parse()

	if *f.Version {
		_, _ = fmt.Printf("Webapps v%s (linux)\n", config.AppVersion)
		os.Exit(0)
	}
}

// Post actions all remaining common flags that require the environment
// to be set up. Logging is allowed.
func (f *Flags) Post(cfg *config.Instance) {
	catalog := browsers.NewCatalog(cfg)

	switch {
	case *f.Browsers:
		listBrowsers(os.Stdout, catalog)
		os.Exit(0)
	case *f.List:
		listLaunchers(os.Stdout, cfg, catalog)
		os.Exit(0)
	case isFlagPassed("delete"):
		if *f.Delete == "" {
			_, _ = fmt.Fprint(os.Stderr, "Error: delete flag requires a codename\n")
			os.Exit(1)
		}

		if err := deleteLauncher(cfg, catalog, *f.Delete); err != nil {
			log.Error().Err(err).Msg("error deleting launcher")
			_, _ = fmt.Fprintf(os.Stderr, "Error deleting launcher: %v\n", err)
			os.Exit(1)
		}
		_, _ = fmt.Printf("Deleted %s\n", *f.Delete)
		os.Exit(0)
	case isFlagPassed("icons"):
		if *f.Icons == "" {
			_, _ = fmt.Fprint(os.Stderr, "Error: icons flag requires a name\n")
			os.Exit(1)
		}
		listIconCandidates(os.Stdout, cfg, *f.Icons, *f.URL)
		os.Exit(0)
	case *f.Create:
		launcher, err := createLauncher(cfg, catalog, createArgs{
			name:      *f.Name,
			url:       *f.URL,
			browser:   *f.Browser,
			icon:      *f.Icon,
			category:  *f.Category,
			params:    *f.CustomParams,
			isolate:   *f.Isolate,
			incognito: *f.Incognito,
			navbar:    *f.Navbar,
		})
		if err != nil {
			log.Error().Err(err).Msg("error creating launcher")
			_, _ = fmt.Fprintf(os.Stderr, "Error creating launcher: %v\n", err)
			os.Exit(1)
		}
		_, _ = fmt.Printf("Created %s (%s)\n", launcher.Codename, launcher.Path)
		os.Exit(0)
	}
}

// Setup initializes the user config and logging. Returns a user config
// object.
func Setup(defaults config.Values, writers []io.Writer) *config.Instance {
	cfg, err := config.NewConfig(config.DefaultConfigDir(), defaults)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	err = helpers.InitLogging(cfg.LogDir(), writers)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		os.Exit(1)
	}

	if cfg.DebugLogging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	return cfg
}
