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

import (
	"os"

	"gopkg.in/yaml.v3"
)

// LoadConfig reads and parses config.yaml.
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(ConfigFile())
}

// LoadConfigFrom reads config from a specific path.
func LoadConfigFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	migrateBrowsers(&cfg)
	return &cfg, nil
}

// browserReplacements maps legacy browser names to their current ones.
// Empty string means remove with no replacement.
var browserReplacements = map[string]string{
	"chromium":      "chrome",
	"google-chrome": "chrome",
	"msedge":        "edge",
}

// migrateBrowsers replaces legacy names in the browser list and drops
// duplicates.
func migrateBrowsers(cfg *Config) {
	var migrated []string
	seen := make(map[string]bool)
	for _, b := range cfg.BrowserAutomation.Browsers {
		if replacement, ok := browserReplacements[b]; ok {
			if replacement != "" && !seen[replacement] {
				seen[replacement] = true
				migrated = append(migrated, replacement)
			}
			continue
		}
		if !seen[b] {
			seen[b] = true
			migrated = append(migrated, b)
		}
	}
	cfg.BrowserAutomation.Browsers = migrated
}

// SaveConfig writes config to config.yaml.
func SaveConfig(cfg *Config) error {
	return SaveConfigTo(cfg, ConfigFile())
}

// SaveConfigTo writes config to a specific path.
func SaveConfigTo(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// LoadOrDefault loads config or returns defaults if file doesn't exist.
func LoadOrDefault() *Config {
	cfg, err := LoadConfig()
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}
