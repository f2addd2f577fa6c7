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

// Package platform owns the OS/architecture naming vocabulary. Release
// assets are named glint-<Name>, so the mapping here and the release
// pipeline must agree.
package platform

import "runtime"

func osName(goos string) string {
	switch goos {
	case "darwin":
		return "macos"
	case "linux":
		return "linux"
	case "windows":
		return "windows"
	default:
		return "unknown"
	}
}

func archName(goarch string) string {
	switch goarch {
	case "amd64":
		return "x86_64"
	case "arm64":
		return "arm64"
	case "arm":
		return "armv7"
	default:
		return goarch
	}
}

// Name returns the normalized "os-arch" string for a GOOS/GOARCH pair
// (e.g. "macos-arm64", "linux-x86_64").
func Name(goos, goarch string) string {
	return osName(goos) + "-" + archName(goarch)
}

// Pretty returns a human-facing platform label for the running system
// (e.g. "macOS arm64") for the info command.
func Pretty() string {
	os := osName(runtime.GOOS)
	switch os {
	case "macos":
		os = "macOS"
	case "linux":
		os = "Linux"
	case "windows":
		os = "Windows"
	}
	return os + " " + archName(runtime.GOARCH)
}
