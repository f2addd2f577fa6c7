// Glint - Hotkey-Summoned Desktop AI Assistant
// Copyright (C) 2026 Glint Labs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package state

import (
	"testing"

	"github.com/glint-app/glint/internal/config"
)

func withTempHome(t *testing.T) {
	t.Helper()
	orig := config.Home
	config.Home = t.TempDir()
	t.Cleanup(func() {
		config.Home = orig
		Invalidate()
	})
	Invalidate()
}

func TestSnapshotCaching(t *testing.T) {
	withTempHome(t)

	first := Current()
	if first == nil {
		t.Fatal("Current returned nil")
	}
	if second := Current(); second != first {
		t.Error("Current reloaded instead of returning the cached snapshot")
	}

	Invalidate()
	if third := Current(); third == first {
		t.Error("Current returned the stale snapshot after Invalidate")
	}
}

func TestVersionMarker(t *testing.T) {
	withTempHome(t)

	if got := InstalledVersion(); got != "" {
		t.Fatalf("InstalledVersion on fresh home = %q, want empty", got)
	}
	if err := SaveVersion("1.2.3"); err != nil {
		t.Fatalf("SaveVersion: %v", err)
	}
	if got := InstalledVersion(); got != "1.2.3" {
		t.Fatalf("InstalledVersion = %q, want 1.2.3", got)
	}
}
