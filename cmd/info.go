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
	"strings"

	"github.com/glint-app/glint/internal/autostart"
	"github.com/glint-app/glint/internal/config"
	"github.com/glint-app/glint/internal/permission"
	"github.com/glint-app/glint/internal/platform"
	"github.com/glint-app/glint/internal/provider"
	"github.com/glint-app/glint/internal/state"
	"github.com/glint-app/glint/internal/ui"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show system and configuration information",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := state.Current()

		ui.LogoSmall()
		fmt.Println()
		ui.Cecho("System Information", ui.Cyan)
		fmt.Println()

		fmt.Printf("  %-20s %s\n", "Version:", Version)
		fmt.Printf("  %-20s %s\n", "Platform:", platform.Pretty())
		fmt.Printf("  %-20s %s\n", "Config dir:", config.Home)
		fmt.Printf("  %-20s %s\n", "Cache dir:", config.Cache)
		if autostart.New().IsEnabled() {
			fmt.Printf("  %-20s enabled\n", "Launch at login:")
		} else {
			fmt.Printf("  %-20s disabled\n", "Launch at login:")
		}
		fmt.Println()

		ui.Cecho("Assistant", ui.Cyan)
		fmt.Println()

		if cfg.Provider.Name == "" {
			fmt.Printf("  %-20s not set\n", "Provider:")
		} else {
			fmt.Printf("  %-20s %s\n", "Provider:", provider.DisplayName(cfg.Provider.Name))
		}

		if cfg.Hotkey == "" {
			fmt.Printf("  %-20s %s (default)\n", "Summon hotkey:", config.DefaultHotkey)
		} else {
			fmt.Printf("  %-20s %s\n", "Summon hotkey:", cfg.Hotkey)
		}

		if cfg.OnboardingCompleted {
			fmt.Printf("  %-20s completed\n", "Onboarding:")
		} else {
			fmt.Printf("  %-20s not completed (run 'glint onboard')\n", "Onboarding:")
		}

		if permission.NewSystem().Granted() {
			fmt.Printf("  %-20s %sgranted%s\n", "Accessibility:", ui.Green, ui.NC)
		} else {
			fmt.Printf("  %-20s %snot granted%s\n", "Accessibility:", ui.Red, ui.NC)
		}
		fmt.Println()

		ui.Cecho("Browser Automation", ui.Cyan)
		fmt.Println()

		if cfg.BrowserAutomation.Enabled {
			fmt.Printf("  %-20s %senabled%s\n", "Status:", ui.Green, ui.NC)

			browsers := strings.Join(cfg.BrowserAutomation.Browsers, ", ")
			if browsers == "" {
				browsers = "none selected"
			}
			fmt.Printf("  %-20s %s\n", "Browsers:", browsers)

			attach := cfg.BrowserAutomation.AttachKey
			if attach == "" {
				attach = config.DefaultAttachKey
			}
			fmt.Printf("  %-20s %s\n", "Attach chord:", attach)
		} else {
			fmt.Printf("  %-20s disabled\n", "Status:")
		}
		fmt.Println()
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
