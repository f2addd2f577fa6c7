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

//go:build !windows

package hotkey

import "errors"

// ErrUnsupported is returned where no system-wide key source exists.
var ErrUnsupported = errors.New("hotkey: system-wide key capture is not supported on this platform")

// NewSystemSource returns the global key-down source for this platform.
// Only Windows has one today. macOS needs a signed event-tap helper and
// Linux capture depends on the compositor, so both report ErrUnsupported.
func NewSystemSource() (Source, error) {
	return nil, ErrUnsupported
}
