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

// Config is the top-level glint configuration (config.yaml).
type Config struct {
	Version             int            `yaml:"version"`
	OnboardingCompleted bool           `yaml:"onboarding_completed"`
	Hotkey              string         `yaml:"hotkey,omitempty"`
	Provider            ProviderConfig `yaml:"provider"`
	Settings            SettingsConfig `yaml:"settings"`
	BrowserAutomation   BrowserConfig  `yaml:"browser_automation"`
}

// ProviderConfig selects the AI provider and its credentials.
type ProviderConfig struct {
	Name    string `yaml:"name,omitempty"`
	APIKey  string `yaml:"api_key,omitempty"`
	BaseURL string `yaml:"base_url,omitempty"`
}

// SettingsConfig holds global settings.
type SettingsConfig struct {
	AutoUpdate    bool `yaml:"auto_update"`
	LaunchAtLogin bool `yaml:"launch_at_login"`
}

// BrowserConfig holds the browser automation settings.
type BrowserConfig struct {
	Enabled   bool     `yaml:"enabled"`
	Browsers  []string `yaml:"browsers,omitempty"`
	AttachKey string   `yaml:"attach_key,omitempty"`
}

// IsBrowserEnabled returns whether automation may attach to the named
// browser.
func (c *Config) IsBrowserEnabled(name string) bool {
	if !c.BrowserAutomation.Enabled {
		return false
	}
	for _, b := range c.BrowserAutomation.Browsers {
		if b == name {
			return true
		}
	}
	return false
}

// SetBrowserEnabled adds or removes the named browser from the automation
// list.
func (c *Config) SetBrowserEnabled(name string, enabled bool) {
	browsers := c.BrowserAutomation.Browsers
	for i, b := range browsers {
		if b == name {
			if !enabled {
				c.BrowserAutomation.Browsers = append(browsers[:i], browsers[i+1:]...)
			}
			return
		}
	}
	if enabled {
		c.BrowserAutomation.Browsers = append(browsers, name)
	}
}

// SecretValues returns the secret strings in the config mapped to a short
// field name, for masking wherever the config is printed.
func (c *Config) SecretValues() map[string]string {
	secrets := make(map[string]string)
	if c.Provider.APIKey != "" {
		secrets[c.Provider.APIKey] = "provider.api_key"
	}
	return secrets
}
