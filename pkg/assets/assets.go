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

// Package assets holds payloads bundled into the binary at build time.
// The Firefox profile files are copied verbatim into every generated
// web app profile, so their content must stay stable across releases.
package assets

import (
	_ "embed"
)

// FirefoxUserJS is the user.js preference file written into every
// Firefox-family web app profile.
//
//go:embed firefox/user.js
var FirefoxUserJS []byte

// FirefoxUserChromeCSS hides the browser UI for web app windows. It is
// written to chrome/userChrome.css unless the launcher keeps the navbar.
//
//go:embed firefox/userChrome.css
var FirefoxUserChromeCSS []byte
