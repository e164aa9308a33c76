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

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"github.com/webapps-project/webapps-core/pkg/helpers/syncutil"
)

const SchemaVersion = 1

type Values struct {
	ConfigSchema int            `toml:"config_schema"`
	InstallID    string         `toml:"install_id,omitempty"`
	DebugLogging bool           `toml:"debug_logging"`
	Scrape       Scrape         `toml:"scrape,omitempty"`
	Browsers     []ExtraBrowser `toml:"browsers,omitempty"`
}

type Scrape struct {
	TimeoutSeconds int `toml:"timeout_seconds,omitempty"`
}

// ExtraBrowser declares a user-managed browser on top of the built-in
// set. Kind must name one of the supported launch styles, see the
// browsers package for accepted values.
type ExtraBrowser struct {
	Name string `toml:"name"`
	Kind string `toml:"kind"`
	Exec string `toml:"exec"`
	Test string `toml:"test,omitempty"`
}

var BaseDefaults = Values{
	ConfigSchema: SchemaVersion,
	Scrape: Scrape{
		TimeoutSeconds: 30,
	},
}

type Instance struct {
	mu        syncutil.RWMutex
	home      string
	dataHome  string
	stateHome string
	cfgPath   string
	vals      Values
	defaults  Values
}

// DefaultConfigDir is where NewConfig stores config.toml unless
// overridden through the WEBAPPS_CFG environment variable.
func DefaultConfigDir() string {
	return filepath.Join(xdgConfigHome(), AppName)
}

func NewConfig(configDir string, defaults Values) (*Instance, error) {
	cfg := Instance{
		cfgPath:  filepath.Join(configDir, CfgFile),
		vals:     defaults,
		defaults: defaults,
	}
	cfg.home, cfg.dataHome, cfg.stateHome = resolveDirs()

	if envPath := os.Getenv(CfgEnv); envPath != "" {
		log.Info().Msgf("config path overridden: %s", envPath)
		cfg.cfgPath = envPath
	}

	exists := true
	_, err := os.Stat(cfg.cfgPath)
	if err != nil {
		exists = false
	}

	if !exists {
		log.Info().Msg("saving new default config to disk")
		err := os.MkdirAll(filepath.Dir(cfg.cfgPath), 0o750)
		if err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}
		err = cfg.Save()
		if err != nil {
			return nil, err
		}
	}

	err = cfg.Load()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Instance) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	data, err := os.ReadFile(c.cfgPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	newVals := c.defaults
	err = toml.Unmarshal(data, &newVals)
	if err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	if newVals.ConfigSchema != SchemaVersion {
		log.Warn().Msgf(
			"config schema mismatch: got %d, expected %d",
			newVals.ConfigSchema, SchemaVersion,
		)
	}

	c.vals = newVals
	return nil
}

func (c *Instance) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.save()
}

func (c *Instance) save() error {
	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	if c.vals.InstallID == "" {
		newID := uuid.New().String()
		log.Info().Msgf("generated new install id: %s", newID)
		c.vals.InstallID = newID
	}

	data, err := toml.Marshal(&c.vals)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(c.cfgPath, data, 0o600)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func (c *Instance) InstallID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.InstallID
}

func (c *Instance) DebugLogging() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.DebugLogging
}

func (c *Instance) SetDebugLogging(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.DebugLogging = enabled
}

// ScrapeTimeout returns the per-request budget for remote icon
// lookups, falling back to the baked-in default when the configured
// value is not usable.
func (c *Instance) ScrapeTimeout() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.Scrape.TimeoutSeconds <= 0 {
		return ScrapeRequestTimeout
	}
	return time.Duration(c.vals.Scrape.TimeoutSeconds) * time.Second
}

func (c *Instance) ExtraBrowsers() []ExtraBrowser {
	c.mu.RLock()
	defer c.mu.RUnlock()
	browsers := make([]ExtraBrowser, len(c.vals.Browsers))
	copy(browsers, c.vals.Browsers)
	return browsers
}
