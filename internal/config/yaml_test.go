// Glint - Hotkey-Summoned Desktop AI Assistant
// Copyright (C) 2026 Glint Labs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.OnboardingCompleted = true
	cfg.Hotkey = "⇧⌘S"
	cfg.Provider = ProviderConfig{Name: "openai", APIKey: "sk-test", BaseURL: "https://api.openai.com/v1"}
	cfg.BrowserAutomation.Enabled = true

	if err := SaveConfigTo(cfg, path); err != nil {
		t.Fatalf("SaveConfigTo: %v", err)
	}

	loaded, err := LoadConfigFrom(path)
	if err != nil {
		t.Fatalf("LoadConfigFrom: %v", err)
	}
	if !loaded.OnboardingCompleted {
		t.Error("onboarding_completed not persisted")
	}
	if loaded.Hotkey != "⇧⌘S" {
		t.Errorf("hotkey = %q, want ⇧⌘S", loaded.Hotkey)
	}
	if loaded.Provider.Name != "openai" || loaded.Provider.APIKey != "sk-test" {
		t.Errorf("provider = %+v", loaded.Provider)
	}
	if !loaded.BrowserAutomation.Enabled {
		t.Error("browser_automation.enabled not persisted")
	}
}

func TestLoadConfigFromMissing(t *testing.T) {
	_, err := LoadConfigFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	if !os.IsNotExist(err) {
		t.Errorf("err = %v, want not-exist", err)
	}
}

func TestMigrateBrowsers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := `version: 1
browser_automation:
  enabled: true
  browsers:
    - chromium
    - chrome
    - msedge
`
	if err := os.WriteFile(path, []byte(raw), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadConfigFrom(path)
	if err != nil {
		t.Fatalf("LoadConfigFrom: %v", err)
	}
	got := cfg.BrowserAutomation.Browsers
	if len(got) != 2 || got[0] != "chrome" || got[1] != "edge" {
		t.Errorf("browsers after migration = %v, want [chrome edge]", got)
	}
}
