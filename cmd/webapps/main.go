//go:build linux

/*
Webapps Core
Copyright (C) 2025 The Webapps Project Contributors

This file is part of Webapps Core.

Webapps Core is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Webapps Core is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Webapps Core.  If not, see <http://www.gnu.org/licenses/>.
*/

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/webapps-project/webapps-core/pkg/cli"
	"github.com/webapps-project/webapps-core/pkg/config"
	"github.com/webapps-project/webapps-core/pkg/launchers"
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	flags := cli.SetupFlags()

	watchMode := flag.Bool(
		"watch",
		false,
		"watch the applications directory and log entry changes",
	)

	flags.Pre()

	if os.Geteuid() == 0 {
		return errors.New("webapps cannot be run as root")
	}

	var logWriters []io.Writer
	if *watchMode {
		logWriters = []io.Writer{os.Stderr}
	}

	cfg := cli.Setup(
		config.BaseDefaults,
		logWriters,
	)

	defer func() {
		if err := recover(); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Panic: %s\n", err)
			log.Fatal().Msgf("panic: %v", err)
		}
	}()

	flags.Post(cfg)

	if !*watchMode {
		flag.Usage()
		return nil
	}

	watcher, err := launchers.StartEntryWatch(cfg, func(event launchers.EntryEvent) {
		log.Info().Msgf("desktop entry changed: %s (%s)", event.Codename, event.Op)
	})
	if err != nil {
		log.Error().Msgf("error starting entry watch: %s", err)
		return fmt.Errorf("error starting entry watch: %w", err)
	}
	defer func() {
		if closeErr := watcher.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("error closing watcher")
		}
	}()

	log.Info().Msg("started in watch mode")

	sigs := make(chan os.Signal, 1)
	defer close(sigs)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs

	return nil
}
