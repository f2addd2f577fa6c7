// Glint - Hotkey-Summoned Desktop AI Assistant
// Copyright (C) 2026 Glint Labs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package config

import "testing"

func TestWriteDefaults(t *testing.T) {
	orig := Home
	Home = t.TempDir()
	t.Cleanup(func() { Home = orig })

	wrote, err := WriteDefaults()
	if err != nil {
		t.Fatalf("WriteDefaults: %v", err)
	}
	if !wrote {
		t.Error("first call reported wrote = false, want true")
	}
	if !ConfigExists() {
		t.Fatal("config.yaml missing after WriteDefaults")
	}

	// A second call reports that nothing was written and leaves the
	// existing file alone.
	cfg := LoadOrDefault()
	cfg.Provider.Name = "openai"
	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	wrote, err = WriteDefaults()
	if err != nil {
		t.Fatalf("WriteDefaults: %v", err)
	}
	if wrote {
		t.Error("second call reported wrote = true, want false")
	}
	if got := LoadOrDefault().Provider.Name; got != "openai" {
		t.Errorf("provider after second call = %q, want openai", got)
	}
}
