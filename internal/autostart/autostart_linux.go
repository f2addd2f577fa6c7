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

//go:build linux

package autostart

import (
	"fmt"
	"os"
	"path/filepath"
)

type linuxManager struct{}

// New returns the XDG autostart implementation.
func New() Manager {
	return linuxManager{}
}

func autostartDir() string {
	if config := os.Getenv("XDG_CONFIG_HOME"); config != "" {
		return filepath.Join(config, "autostart")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "autostart")
}

func desktopFilePath() string {
	return filepath.Join(autostartDir(), "glint.desktop")
}

func (linuxManager) IsEnabled() bool {
	_, err := os.Stat(desktopFilePath())
	return err == nil
}

func (linuxManager) Enable() error {
	if err := os.MkdirAll(autostartDir(), 0755); err != nil {
		return err
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolving executable: %w", err)
	}

	entry := fmt.Sprintf(`[Desktop Entry]
Type=Application
Name=Glint
Comment=Hotkey-summoned AI assistant
Exec=%s listen
Terminal=false
Categories=Utility;
X-GNOME-Autostart-enabled=true
`, exe)

	return os.WriteFile(desktopFilePath(), []byte(entry), 0644)
}

func (linuxManager) Disable() error {
	err := os.Remove(desktopFilePath())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
