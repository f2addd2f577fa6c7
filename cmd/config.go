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
	"github.com/glint-app/glint/internal/redactor"
	"github.com/glint-app/glint/internal/state"
	"github.com/glint-app/glint/internal/ui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd() *cobra.Command {
	var showPath bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long:  "Prints the loaded configuration as YAML with API keys redacted.",
		Run: func(cmd *cobra.Command, args []string) {
			if showPath {
				fmt.Println(config.ConfigFile())
				return
			}

			cfg := state.Current()
			out, err := yaml.Marshal(cfg)
			if err != nil {
				ui.Errorf("Failed to render config: %v", err)
			}

			r := redactor.NewWithProvider(cfg.SecretValues)
			fmt.Print(r.FilterString(string(out)))
		},
	}

	cmd.Flags().BoolVarP(&showPath, "path", "p", false, "Print the config file path")
	return cmd
}

func init() {
	rootCmd.AddCommand(newConfigCmd())
}
