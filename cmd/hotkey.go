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

	"github.com/glint-app/glint/internal/config"
	"github.com/glint-app/glint/internal/hotkey"
	"github.com/glint-app/glint/internal/state"
	"github.com/glint-app/glint/internal/ui"
	"github.com/spf13/cobra"
)

func newHotkeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hotkey",
		Short: "Show or change the summon hotkey",
		Long:  "Inspect or change the chord that summons the assistant. Chords accept symbols (⇧⌘S) or words (cmd+shift+s).",
	}

	cmd.AddCommand(newHotkeyShowCmd())
	cmd.AddCommand(newHotkeySetCmd())
	cmd.AddCommand(newHotkeyClearCmd())
	return cmd
}

func newHotkeyShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the current summon hotkey",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := state.Current()
			if cfg.Hotkey == "" {
				fmt.Printf("Hotkey: %s (default)\n", config.DefaultHotkey)
				return
			}
			fmt.Printf("Hotkey: %s\n", cfg.Hotkey)
		},
	}
}

func newHotkeySetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <chord>",
		Short: "Set the summon hotkey",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			chord, err := hotkey.ParseChord(args[0])
			if err != nil {
				ui.Errorf("Invalid chord %q: %v", args[0], err)
			}

			cfg := state.Load()
			cfg.Hotkey = chord.String()
			if err := config.SaveConfig(cfg); err != nil {
				ui.Errorf("Failed to save config: %v", err)
			}
			state.Invalidate()

			ui.Successf("Summon hotkey set to %s", chord.String())
			ui.Info("Restart 'glint listen' to pick up the change.")
		},
	}
}

func newHotkeyClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Reset the summon hotkey to the default",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := state.Load()
			cfg.Hotkey = ""
			if err := config.SaveConfig(cfg); err != nil {
				ui.Errorf("Failed to save config: %v", err)
			}
			state.Invalidate()

			ui.Successf("Summon hotkey reset to %s", config.DefaultHotkey)
		},
	}
}

func init() {
	rootCmd.AddCommand(newHotkeyCmd())
}
