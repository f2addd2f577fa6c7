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

// Package permission answers whether the app may observe keystrokes
// system-wide and can open the OS settings pane where the user grants that
// access. Granting itself always happens in the OS UI, never here.
package permission

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Service is what the onboarding flow and the settings panel ask about
// keystroke access.
type Service interface {
	// Granted reports whether system-wide key capture is available right
	// now. It is cheap enough to poll.
	Granted() bool
	// OpenSettings brings up the OS pane where the user can grant access.
	OpenSettings() error
}

// System consults the real operating system.
type System struct{}

// NewSystem returns the platform-backed permission service.
func NewSystem() *System {
	return &System{}
}

// Granted reports whether global key capture works for this process.
func (s *System) Granted() bool {
	switch runtime.GOOS {
	case "windows":
		// Low-level keyboard hooks are available to every process, no
		// opt-in required.
		return true
	default:
		// Capture needs a platform helper that is not built for this OS,
		// so access is never effectively granted.
		return false
	}
}

// settingsPanes holds the per-platform command that opens the relevant
// settings pane.
var settingsPanes = map[string][]string{
	"darwin":  {"open", "x-apple.systempreferences:com.apple.preference.security?Privacy_Accessibility"},
	"windows": {"cmd", "/c", "start", "ms-settings:easeofaccess-keyboard"},
	"linux":   {"gnome-control-center", "universal-access"},
}

// OpenSettings launches the settings pane and returns without waiting for
// it to close.
func (s *System) OpenSettings() error {
	args, ok := settingsPanes[runtime.GOOS]
	if !ok {
		return fmt.Errorf("no settings pane to open on %s", runtime.GOOS)
	}
	return exec.Command(args[0], args[1:]...).Start()
}
