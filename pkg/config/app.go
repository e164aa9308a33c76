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

import "time"

var AppVersion = "DEVELOPMENT"

const (
	AppName = "webapps"
	LogFile = "core.log"
	CfgFile = "config.toml"
	CfgEnv  = "WEBAPPS_CFG"
	HomeEnv = "WEBAPPS_HOME"

	// SandboxEnv is set by the Flatpak runtime. When present, writable
	// data moves into the app-private directory under ~/.var/app.
	SandboxEnv = "FLATPAK_ID"

	// EntryPrefix and EntryExt frame the file name of every desktop
	// entry managed by this app. A file that does not match both is
	// never touched.
	EntryPrefix = "webapp-"
	EntryExt    = ".desktop"

	// WMClassPrefix is prepended to the launcher codename to form the
	// window class handed to the browser.
	WMClassPrefix = "WebApp-"

	ScrapeRequestTimeout = 30 * time.Second
)
