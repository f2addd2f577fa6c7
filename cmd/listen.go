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

package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/glint-app/glint/internal/config"
	"github.com/glint-app/glint/internal/hotkey"
	"github.com/glint-app/glint/internal/permission"
	"github.com/glint-app/glint/internal/redactor"
	"github.com/glint-app/glint/internal/state"
	"github.com/glint-app/glint/internal/statusbar"
	"github.com/glint-app/glint/internal/ui"
	"github.com/glint-app/glint/internal/update"
	"github.com/spf13/cobra"
)

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Listen for the summon hotkey",
	Long:  "Captures the summon hotkey system-wide and announces each press until interrupted.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runListen()
	},
}

// chordPress tells the listen loop which of the registered chords fired.
type chordPress struct {
	attach bool
}

func runListen() error {
	cfg := state.Load()

	// Everything the listener logs passes through the secret redactor.
	ui.Redact = redactor.NewWithProvider(cfg.SecretValues).FilterString

	chordStr := cfg.Hotkey
	if chordStr == "" {
		chordStr = config.DefaultHotkey
	}
	chord, err := hotkey.ParseChord(chordStr)
	if err != nil {
		return fmt.Errorf("configured hotkey %q: %w", chordStr, err)
	}

	// The attach chord only participates while browser automation is on.
	attachStr := ""
	var attach hotkey.Chord
	if cfg.BrowserAutomation.Enabled {
		attachStr = cfg.BrowserAutomation.AttachKey
		if attachStr == "" {
			attachStr = config.DefaultAttachKey
		}
		attach, err = hotkey.ParseChord(attachStr)
		if err != nil {
			ui.Warnf("Ignoring invalid attach key %q: %v", attachStr, err)
			attachStr = ""
		}
	}

	if !permission.NewSystem().Granted() {
		ui.Warn("Accessibility permission not granted; key capture may not see every application.")
		ui.Info("Run 'glint permissions --open' to grant it.")
	}

	source, err := hotkey.NewSystemSource()
	if err != nil {
		return fmt.Errorf("starting key capture: %w", err)
	}

	presses := make(chan chordPress, 8)
	sub, err := source.Subscribe(func(ev hotkey.Event) hotkey.Decision {
		switch {
		case chord.Matches(ev):
			select {
			case presses <- chordPress{}:
			default:
			}
			return hotkey.Suppress
		case attachStr != "" && attach.Matches(ev):
			select {
			case presses <- chordPress{attach: true}:
			default:
			}
			return hotkey.Suppress
		}
		return hotkey.Forward
	})
	if err != nil {
		return fmt.Errorf("subscribing to key events: %w", err)
	}
	defer sub.Cancel()

	statusbar.Show(Version, cfg.Provider.Name, chordStr)
	defer statusbar.Hide()

	ui.Infof("Listening for %s. Press Ctrl+C to stop.", chordStr)
	if attachStr != "" {
		ui.Infof("Browser attach chord: %s", attachStr)
	}

	if cfg.Settings.AutoUpdate {
		go func() {
			if result := <-update.AsyncCheck(Version, 5*time.Second); result.Available {
				ui.Infof("Update available: v%s (run 'glint update')", result.Latest)
			}
		}()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case press := <-presses:
			if press.attach {
				ui.Successf("Attach chord pressed (%s). Browsers: %s.", attachStr, strings.Join(cfg.BrowserAutomation.Browsers, ", "))
			} else {
				ui.Successf("Summoned (%s).", chordStr)
			}
		case <-sigCh:
			fmt.Println()
			ui.Info("Stopping listener.")
			return nil
		}
	}
}

func init() {
	rootCmd.AddCommand(listenCmd)
}
