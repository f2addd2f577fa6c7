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
	"runtime"

	"github.com/glint-app/glint/internal/config"
	"github.com/glint-app/glint/internal/state"
	"github.com/glint-app/glint/internal/ui"
	"github.com/spf13/cobra"
)

// Version is set by ldflags at build time.
var Version = "1.2.0"

// skipOnboardingCommands are commands that should not trigger first-run onboarding.
var skipOnboardingCommands = map[string]bool{
	"onboard":    true,
	"version":    true,
	"help":       true,
	"completion": true,
	"config":     true,
	"uninstall":  true,
	"update":     true,
}

var rootCmd = &cobra.Command{
	Use:   "glint",
	Short: "Hotkey-Summoned Desktop AI Assistant",
	Long:  "Glint – Summon an AI assistant from anywhere with a global hotkey",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v, _ := cmd.Flags().GetBool("verbose")
		ui.Verbose = v

		// Run onboarding until the user has completed it once
		if !state.Current().OnboardingCompleted && !skipOnboardingCommands[cmd.Name()] {
			ui.Info("Glint is not set up yet. Starting onboarding...")
			fmt.Println()
			if err := runOnboarding(); err != nil {
				return err
			}
			fmt.Println()
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		infoCmd.Run(cmd, args)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("glint version %s\n", Version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(versionCmd)

	rootCmd.SetVersionTemplate("glint version {{.Version}}\n")
	rootCmd.Version = Version
}

// Execute runs the root command.
func Execute() {
	if runtime.GOOS != "windows" && os.Getuid() == 0 {
		ui.Error("Refusing to run as root. Glint expects a regular desktop user.")
	}

	config.EnsureDirs()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
