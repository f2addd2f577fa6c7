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

	"github.com/glint-app/glint/internal/autostart"
	"github.com/glint-app/glint/internal/hotkey"
	"github.com/glint-app/glint/internal/permission"
	"github.com/glint-app/glint/internal/settings"
	"github.com/glint-app/glint/internal/state"
	"github.com/glint-app/glint/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Open the interactive settings panel",
	Long:  "Change the summon hotkey, AI provider, launch at login, and browser automation.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("settings requires an interactive terminal")
		}

		// Without a system key source the hotkey row falls back to typing
		// the chord instead of recording it.
		source, err := hotkey.NewSystemSource()
		if err != nil {
			ui.Debugf("No system key source: %v", err)
			source = nil
		}

		return settings.Run(state.Load(), permission.NewSystem(), autostart.New(), source)
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
}
