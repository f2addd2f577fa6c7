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

package config

// Default chords. Both are stored in the canonical display form that the
// hotkey recorder produces.
const (
	DefaultHotkey    = "⌥Space"
	DefaultAttachKey = "⇧⌘A"
)

// SupportedBrowsers lists the browsers automation knows how to attach to.
var SupportedBrowsers = []string{"chrome", "edge", "brave"}

// DefaultConfig returns a minimal default configuration.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Hotkey:  DefaultHotkey,
		Settings: SettingsConfig{
			AutoUpdate:    false,
			LaunchAtLogin: false,
		},
		BrowserAutomation: BrowserConfig{
			Enabled:   false,
			Browsers:  []string{"chrome"},
			AttachKey: DefaultAttachKey,
		},
	}
}
