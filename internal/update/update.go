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

package update

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/glint-app/glint/internal/platform"
)

const repoOwner = "glint-app"
const repoName = "glint"

// githubRelease is the subset of the GitHub releases API response we need.
type githubRelease struct {
	TagName string `json:"tag_name"`
}

// GetLatestVersion fetches the latest release tag from GitHub.
// Returns the version string without a leading "v" (e.g. "1.3.0").
func GetLatestVersion() (string, error) {
	url := fmt.Sprintf("https://api.github.com/repos/%s/%s/releases/latest", repoOwner, repoName)

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return "", fmt.Errorf("fetching latest release: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("GitHub API returned status %d", resp.StatusCode)
	}

	var release githubRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", fmt.Errorf("parsing release JSON: %w", err)
	}

	version := strings.TrimPrefix(release.TagName, "v")
	if version == "" {
		return "", fmt.Errorf("empty tag_name in release")
	}
	return version, nil
}

// IsNewer returns true if latest is a newer semver than current.
// Returns false if either version is unparseable (e.g. "dev").
func IsNewer(current, latest string) bool {
	curParts, curOk := parseSemver(current)
	latParts, latOk := parseSemver(latest)
	if !curOk || !latOk {
		return false
	}

	for i := 0; i < 3; i++ {
		if latParts[i] > curParts[i] {
			return true
		}
		if latParts[i] < curParts[i] {
			return false
		}
	}
	return false
}

// parseSemver splits a version string like "1.2.0" into [1, 2, 0].
// Returns false if the format is invalid.
func parseSemver(v string) ([3]int, bool) {
	v = strings.TrimPrefix(v, "v")
	parts := strings.SplitN(v, ".", 3)
	if len(parts) != 3 {
		return [3]int{}, false
	}
	var result [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return [3]int{}, false
		}
		result[i] = n
	}
	return result, true
}

// BinaryURL returns the download URL for a given version on this OS and architecture.
func BinaryURL(version string) string {
	return BinaryURLFor(version, runtime.GOOS, runtime.GOARCH)
}

// BinaryURLFor returns the download URL for a given version with explicit
// OS/arch. Asset names use the platform package's vocabulary, so
// "darwin"/"amd64" resolves to glint-macos-x86_64.
func BinaryURLFor(version, goos, goarch string) string {
	name := "glint-" + platform.Name(goos, goarch)
	if goos == "windows" {
		name += ".exe"
	}
	return fmt.Sprintf("https://github.com/%s/%s/releases/download/v%s/%s",
		repoOwner, repoName, version, name)
}

// DownloadAndReplace downloads the binary from url and replaces the current executable.
func DownloadAndReplace(url string) error {
	exePath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("finding current executable: %w", err)
	}
	exePath, err = filepath.EvalSymlinks(exePath)
	if err != nil {
		return fmt.Errorf("resolving symlinks: %w", err)
	}

	client := &http.Client{Timeout: 120 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("downloading binary: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download returned status %d", resp.StatusCode)
	}

	// Write to a temp file next to the current binary.
	dir := filepath.Dir(exePath)
	tmpFile, err := os.CreateTemp(dir, "glint-update-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	if _, err := io.Copy(tmpFile, resp.Body); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing download: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	// Set executable permissions.
	if err := os.Chmod(tmpPath, 0755); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("setting permissions: %w", err)
	}

	// Atomic-ish replace: rename current -> .old, rename tmp -> current, remove .old.
	oldPath := exePath + ".old"
	if err := os.Rename(exePath, oldPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("backing up current binary: %w", err)
	}

	if err := os.Rename(tmpPath, exePath); err != nil {
		// Try to restore the old binary.
		_ = os.Rename(oldPath, exePath)
		return fmt.Errorf("replacing binary: %w", err)
	}

	// Best-effort cleanup of the old binary.
	_ = os.Remove(oldPath)

	return nil
}

// CheckResult holds the result of an async update check.
type CheckResult struct {
	Available bool
	Latest    string
}

// AsyncCheck runs a version check in the background. The returned channel
// receives the result when done. The check respects the given timeout.
// The listener uses this at startup so a slow GitHub API never delays the
// hotkey becoming active.
func AsyncCheck(current string, timeout time.Duration) <-chan CheckResult {
	ch := make(chan CheckResult, 1)
	go func() {
		done := make(chan struct{})
		var result CheckResult
		go func() {
			latest, err := GetLatestVersion()
			if err == nil && IsNewer(current, latest) {
				result = CheckResult{Available: true, Latest: latest}
			}
			close(done)
		}()

		select {
		case <-done:
			ch <- result
		case <-time.After(timeout):
			ch <- CheckResult{}
		}
		close(ch)
	}()
	return ch
}
