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

package onboarding

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glint-app/glint/internal/config"
	"github.com/glint-app/glint/internal/permission"
)

// fileStore persists the completion flag into the YAML config.
type fileStore struct {
	cfg  *config.Config
	save func(*config.Config) error
}

func (s fileStore) SetOnboardingCompleted(done bool) error {
	s.cfg.OnboardingCompleted = done
	return s.save(s.cfg)
}

// Run walks the user through first-run setup in an interactive terminal.
// cfg may be nil, in which case the config is loaded from disk (or
// defaulted). onCompleted, when non-nil, fires once setup finishes and
// the completion flag is saved.
func Run(cfg *config.Config, perm permission.Service, onCompleted func()) error {
	if cfg == nil {
		cfg = config.LoadOrDefault()
	}
	save := func(c *config.Config) error {
		config.EnsureDirs()
		return config.SaveConfig(c)
	}

	seq := NewSequencer(fileStore{cfg: cfg, save: save})
	if onCompleted != nil {
		unsubscribe := seq.Subscribe(onCompleted)
		defer unsubscribe()
	}

	p := tea.NewProgram(NewModel(seq, perm, cfg, save), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("onboarding error: %w", err)
	}

	m, ok := finalModel.(Model)
	if !ok {
		return fmt.Errorf("unexpected model type")
	}
	if m.Cancelled() || !m.Done() {
		return fmt.Errorf("setup cancelled")
	}
	return nil
}
