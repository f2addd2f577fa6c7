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

// Package provider is the catalog of AI backends glint can talk to.
package provider

import (
	"fmt"
	"os"
	"strings"
)

// Provider describes one AI backend.
type Provider struct {
	Name           string
	DisplayName    string
	DefaultBaseURL string
	// KeyPrefix is the expected start of an API key, empty when keys have
	// no fixed shape.
	KeyPrefix string
	// EnvVar names the environment variable the key is conventionally
	// exported in.
	EnvVar string
	// RequiresKey is false for local backends.
	RequiresKey bool
}

// Names lists all supported providers in menu order.
var Names = []string{"openai", "anthropic", "openrouter", "ollama", "custom"}

// registry holds the provider catalog.
var registry = map[string]Provider{}

func register(p Provider) {
	registry[p.Name] = p
}

func init() {
	register(Provider{
		Name:           "openai",
		DisplayName:    "OpenAI",
		DefaultBaseURL: "https://api.openai.com/v1",
		KeyPrefix:      "sk-",
		EnvVar:         "OPENAI_API_KEY",
		RequiresKey:    true,
	})
	register(Provider{
		Name:           "anthropic",
		DisplayName:    "Anthropic",
		DefaultBaseURL: "https://api.anthropic.com/v1",
		KeyPrefix:      "sk-ant-",
		EnvVar:         "ANTHROPIC_API_KEY",
		RequiresKey:    true,
	})
	register(Provider{
		Name:           "openrouter",
		DisplayName:    "OpenRouter",
		DefaultBaseURL: "https://openrouter.ai/api/v1",
		KeyPrefix:      "sk-or-",
		EnvVar:         "OPENROUTER_API_KEY",
		RequiresKey:    true,
	})
	register(Provider{
		Name:           "ollama",
		DisplayName:    "Ollama (local)",
		DefaultBaseURL: "http://localhost:11434/v1",
		RequiresKey:    false,
	})
	register(Provider{
		Name:        "custom",
		DisplayName: "Custom endpoint",
		RequiresKey: false,
	})
}

// Get returns the catalog entry for a name.
func Get(name string) (Provider, bool) {
	p, ok := registry[name]
	return p, ok
}

// IsValid returns true if the name is a known provider.
func IsValid(name string) bool {
	_, ok := registry[name]
	return ok
}

// DisplayName returns the human-readable name for a provider.
func DisplayName(name string) string {
	if p, ok := registry[name]; ok {
		return p.DisplayName
	}
	return name
}

// BaseURL returns the override when set, the provider default otherwise.
func BaseURL(name, override string) string {
	if override != "" {
		return override
	}
	if p, ok := registry[name]; ok {
		return p.DefaultBaseURL
	}
	return ""
}

// DetectKey returns an API key found in the provider's conventional
// environment variable, or "".
func DetectKey(name string) string {
	p, ok := registry[name]
	if !ok || p.EnvVar == "" {
		return ""
	}
	return strings.TrimSpace(os.Getenv(p.EnvVar))
}

// CheckKey runs a shape check on an API key for the named provider. It
// catches pasted fragments and wrong-provider keys, not revoked ones.
func CheckKey(name, key string) error {
	p, ok := registry[name]
	if !ok {
		return fmt.Errorf("unknown provider %q", name)
	}
	if !p.RequiresKey {
		return nil
	}
	if key == "" {
		return fmt.Errorf("%s needs an API key", p.DisplayName)
	}
	if p.KeyPrefix != "" && !strings.HasPrefix(key, p.KeyPrefix) {
		return fmt.Errorf("%s keys start with %q", p.DisplayName, p.KeyPrefix)
	}
	if len(key) < 20 {
		return fmt.Errorf("API key looks truncated")
	}
	return nil
}
