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

// Package state caches the loaded configuration for the lifetime of a
// command and tracks the installed-version marker used by self-update.
package state

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/glint-app/glint/internal/config"
)

var (
	mu      sync.Mutex
	current *config.Config
)

// Load reads the config from disk and caches the snapshot.
func Load() *config.Config {
	cfg := config.LoadOrDefault()
	mu.Lock()
	current = cfg
	mu.Unlock()
	return cfg
}

// Current returns the cached snapshot, loading it on first use.
func Current() *config.Config {
	mu.Lock()
	cfg := current
	mu.Unlock()
	if cfg != nil {
		return cfg
	}
	return Load()
}

// Invalidate drops the snapshot so the next read hits the disk. Called when
// another part of the program rewrote the config, such as the onboarding
// completion signal.
func Invalidate() {
	mu.Lock()
	current = nil
	mu.Unlock()
}

// InstalledVersion reads the saved version marker.
func InstalledVersion() string {
	data, err := os.ReadFile(filepath.Join(config.Home, ".version"))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// SaveVersion saves the current version marker.
func SaveVersion(version string) error {
	return os.WriteFile(filepath.Join(config.Home, ".version"), []byte(version+"\n"), 0644)
}
