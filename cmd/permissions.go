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
	"github.com/glint-app/glint/internal/permission"
	"github.com/glint-app/glint/internal/ui"
	"github.com/spf13/cobra"
)

func newPermissionsCmd() *cobra.Command {
	var open bool

	cmd := &cobra.Command{
		Use:   "permissions",
		Short: "Check accessibility permission status",
		Long:  "Reports whether Glint may observe global key events. Granting happens in the OS settings pane, not here.",
		Run: func(cmd *cobra.Command, args []string) {
			perm := permission.NewSystem()

			if perm.Granted() {
				ui.Success("Accessibility permission granted.")
			} else {
				ui.Warn("Accessibility permission not granted.")
				ui.Info("Grant it in the system settings so the summon hotkey works everywhere.")
			}

			if open {
				if err := perm.OpenSettings(); err != nil {
					ui.Errorf("Failed to open system settings: %v", err)
				}
				ui.Info("Opened the system settings pane.")
			}
		},
	}

	cmd.Flags().BoolVarP(&open, "open", "o", false, "Open the system settings pane")
	return cmd
}

func init() {
	rootCmd.AddCommand(newPermissionsCmd())
}
