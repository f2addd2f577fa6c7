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

package settings

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glint-app/glint/internal/autostart"
	"github.com/glint-app/glint/internal/config"
	"github.com/glint-app/glint/internal/hotkey"
	"github.com/glint-app/glint/internal/permission"
)

// Run shows the settings panel in an interactive terminal. cfg may be nil,
// in which case the config is loaded from disk (or defaulted). source may
// be nil when the platform has no system key source.
func Run(cfg *config.Config, perm permission.Service, auto autostart.Manager, source hotkey.Source) error {
	if cfg == nil {
		cfg = config.LoadOrDefault()
	}
	save := func(c *config.Config) error {
		config.EnsureDirs()
		return config.SaveConfig(c)
	}

	m := NewModel(cfg, perm, auto, source, save)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("settings error: %w", err)
	}
	return nil
}
