// Glint - Hotkey-Summoned Desktop AI Assistant
// Copyright (C) 2026 Glint Labs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

//go:build !darwin && !linux && !windows

package autostart

import "errors"

var errUnsupported = errors.New("autostart: not supported on this platform")

type noopManager struct{}

// New returns a stub for platforms without a login-item mechanism.
func New() Manager {
	return noopManager{}
}

func (noopManager) IsEnabled() bool { return false }
func (noopManager) Enable() error   { return errUnsupported }
func (noopManager) Disable() error  { return errUnsupported }
