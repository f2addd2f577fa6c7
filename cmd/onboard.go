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

	"github.com/glint-app/glint/internal/config"
	"github.com/glint-app/glint/internal/onboarding"
	"github.com/glint-app/glint/internal/permission"
	"github.com/glint-app/glint/internal/state"
	"github.com/glint-app/glint/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Run the onboarding wizard",
	Long:  "Interactive onboarding to pick an AI provider, grant accessibility, and enable browser automation.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOnboarding()
	},
}

func runOnboarding() error {
	// Non-interactive terminal: fall back to defaults
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		ui.Warn("Non-interactive terminal detected.")
		wrote, err := config.WriteDefaults()
		if err != nil {
			return fmt.Errorf("writing defaults: %w", err)
		}
		if wrote {
			ui.Success("Default configuration written. Run 'glint onboard' interactively to finish setup.")
		} else {
			ui.Info("Existing configuration kept. Run 'glint onboard' interactively to finish setup.")
		}
		return nil
	}

	// Load existing config to pre-populate the wizard, or nil for a fresh start
	var existingCfg *config.Config
	if config.ConfigExists() {
		existingCfg = config.LoadOrDefault()
	}

	err := onboarding.Run(existingCfg, permission.NewSystem(), state.Invalidate)
	if err != nil {
		if err.Error() == "setup cancelled" {
			if existingCfg != nil {
				ui.Info("Onboarding cancelled. Existing configuration unchanged.")
			} else {
				ui.Info("Onboarding cancelled. Writing default configuration.")
				if _, err := config.WriteDefaults(); err != nil {
					return fmt.Errorf("writing defaults: %w", err)
				}
			}
			ui.Info("Run 'glint onboard' to finish setup later.")
			return nil
		}
		return err
	}

	cfg := state.Current()
	chord := cfg.Hotkey
	if chord == "" {
		chord = config.DefaultHotkey
	}

	ui.Success("Glint is ready!")
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  1. Start the listener:   glint listen")
	fmt.Printf("  2. Summon the assistant: %s\n", chord)
	fmt.Println()
	return nil
}

func init() {
	rootCmd.AddCommand(onboardCmd)
}
