// Glint - Hotkey-Summoned Desktop AI Assistant
// Copyright (C) 2026 Glint Labs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package platform

import "testing"

func TestName(t *testing.T) {
	tests := []struct {
		goos   string
		goarch string
		want   string
	}{
		{"darwin", "arm64", "macos-arm64"},
		{"darwin", "amd64", "macos-x86_64"},
		{"linux", "amd64", "linux-x86_64"},
		{"linux", "arm", "linux-armv7"},
		{"windows", "amd64", "windows-x86_64"},
		{"plan9", "riscv64", "unknown-riscv64"},
	}
	for _, tt := range tests {
		if got := Name(tt.goos, tt.goarch); got != tt.want {
			t.Errorf("Name(%q, %q) = %q, want %q", tt.goos, tt.goarch, got, tt.want)
		}
	}
}
