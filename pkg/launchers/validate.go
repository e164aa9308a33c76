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
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/webapps-project/webapps-core/pkg/browsers"
)

// newValidator builds the validator used for launcher validity checks,
// with the custom "installed" rule for Browser fields.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("installed", validateInstalled)
	return v
}

func validateInstalled(fl validator.FieldLevel) bool {
	browser, ok := fl.Field().Interface().(browsers.Browser)
	if !ok {
		return false
	}
	return browser.Installed()
}

var defaultValidator = newValidator()

// Validate checks the launcher's required fields, URL syntax, and that
// its browser snapshot represents a real install.
func Validate(l *Launcher) error {
	if err := defaultValidator.Struct(l); err != nil {
		return fmt.Errorf("invalid launcher: %w", err)
	}
	return nil
}
