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
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/glint-app/glint/internal/autostart"
	"github.com/glint-app/glint/internal/config"
	"github.com/glint-app/glint/internal/ui"
	"github.com/spf13/cobra"
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove Glint configuration and data",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("This will UNINSTALL GLINT COMPLETELY.")
		fmt.Println("Actions:")
		fmt.Println("  - Disable launch at login")
		fmt.Println("  - Remove the configuration directory (including your API key)")
		fmt.Println("  - Remove cached data")
		fmt.Println()
		fmt.Print("Are you sure? [y/N] ")

		reader := bufio.NewReader(os.Stdin)
		response, _ := reader.ReadString('\n')
		response = strings.TrimSpace(response)
		if !strings.EqualFold(response, "y") {
			ui.Info("Cancelled")
			return
		}

		if err := autostart.New().Disable(); err != nil {
			ui.Debugf("Disabling launch at login: %v", err)
		}

		for _, dir := range []string{config.Home, config.Cache, config.Data} {
			if err := os.RemoveAll(dir); err != nil {
				ui.Warnf("Failed to remove %s: %v", dir, err)
			}
		}

		ui.Success("Glint uninstalled. Delete the binary itself to finish.")
	},
}

func init() {
	rootCmd.AddCommand(uninstallCmd)
}
