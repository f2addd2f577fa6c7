// Glint - Hotkey-Summoned Desktop AI Assistant
// Copyright (C) 2026 Glint Labs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package settings

import (
	"testing"

	"github.com/glint-app/glint/internal/config"
)

func TestPanelRows(t *testing.T) {
	rows := panelRows()

	if rows[0].kind != kindHotkey {
		t.Fatalf("first row kind = %d, want hotkey", rows[0].kind)
	}
	if last := rows[len(rows)-1]; last.kind != kindAttachKey {
		t.Fatalf("last row kind = %d, want attach key", last.kind)
	}

	browsers := 0
	for _, r := range rows {
		if r.kind == kindBrowser {
			if r.browser != config.SupportedBrowsers[browsers] {
				t.Errorf("browser row %d = %q, want %q", browsers, r.browser, config.SupportedBrowsers[browsers])
			}
			browsers++
		}
	}
	if browsers != len(config.SupportedBrowsers) {
		t.Fatalf("browser rows = %d, want %d", browsers, len(config.SupportedBrowsers))
	}
}

func TestRowSections(t *testing.T) {
	tests := []struct {
		kind rowKind
		want string
	}{
		{kindHotkey, "Summon"},
		{kindProvider, "AI Provider"},
		{kindAPIKey, "AI Provider"},
		{kindBaseURL, "AI Provider"},
		{kindLaunchAtLogin, "System"},
		{kindPermission, "System"},
		{kindBrowserMaster, "Browser Automation"},
		{kindBrowser, "Browser Automation"},
		{kindAttachKey, "Browser Automation"},
	}
	for _, tt := range tests {
		if got := (row{kind: tt.kind}).section(); got != tt.want {
			t.Errorf("section(%d) = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestNextProviderName(t *testing.T) {
	tests := []struct {
		current string
		delta   int
		want    string
	}{
		{"openai", 1, "anthropic"},
		{"anthropic", -1, "openai"},
		{"custom", 1, "openai"},
		{"openai", -1, "custom"},
		{"", 1, "openai"},
		{"no-such", 1, "openai"},
	}
	for _, tt := range tests {
		if got := nextProviderName(tt.current, tt.delta); got != tt.want {
			t.Errorf("nextProviderName(%q, %d) = %q, want %q", tt.current, tt.delta, got, tt.want)
		}
	}
}

func TestBrowserListed(t *testing.T) {
	cfg := &config.Config{}
	cfg.BrowserAutomation.Browsers = []string{"chrome", "brave"}

	if !browserListed(cfg, "chrome") {
		t.Error("chrome should be listed")
	}
	if browserListed(cfg, "edge") {
		t.Error("edge should not be listed")
	}
	// Listing ignores the master toggle; that is the effective-state
	// query's job.
	cfg.BrowserAutomation.Enabled = false
	if !browserListed(cfg, "brave") {
		t.Error("brave should stay listed with automation off")
	}
}

func TestMaskKey(t *testing.T) {
	if got := maskKey(""); got != "" {
		t.Errorf("maskKey(\"\") = %q, want empty", got)
	}
	if got := maskKey("sk-abcdef0123456789"); got != "••••••••" {
		t.Errorf("maskKey = %q, want eight bullets", got)
	}
}
