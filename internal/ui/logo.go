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

package ui

import "fmt"

// LogoSmall prints the Glint ASCII logo.
func LogoSmall() {
	fmt.Print(Cyan)
	fmt.Println(`   ____ _ _       _   `)
	fmt.Println(`  / ___| (_)_ __ | |_ `)
	fmt.Println(` | |  _| | | '_ \| __|`)
	fmt.Println(` | |_| | | | | | | |_ `)
	fmt.Println(`  \____|_|_|_| |_|\__|`)
	fmt.Print(NC)
	fmt.Printf("%s      by Glint Labs (https://glint.app)%s\n", Dim, NC)
}

// Logo prints the full Glint logo with tagline.
func Logo() {
	LogoSmall()
	fmt.Println()
	fmt.Printf("%sHotkey-Summoned Desktop AI Assistant%s\n", Dim, NC)
}
