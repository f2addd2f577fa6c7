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

package hotkey

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Modifiers is a bit set of modifier flags held during a key event.
type Modifiers uint8

const (
	ModControl Modifiers = 1 << iota
	ModOption
	ModShift
	ModCommand
)

// modifierSymbols fixes the display order: control, option, shift, command.
var modifierSymbols = []struct {
	flag   Modifiers
	symbol string
}{
	{ModControl, "⌃"},
	{ModOption, "⌥"},
	{ModShift, "⇧"},
	{ModCommand, "⌘"},
}

// Symbols renders the active modifier flags as concatenated symbols in the
// fixed display order, with no separators.
func (m Modifiers) Symbols() string {
	var b strings.Builder
	for _, ms := range modifierSymbols {
		if m&ms.flag != 0 {
			b.WriteString(ms.symbol)
		}
	}
	return b.String()
}

// Has reports whether all the given flags are set.
func (m Modifiers) Has(flags Modifiers) bool {
	return m&flags == flags
}

// Event is one key-down event in the unified code space.
type Event struct {
	Code KeyCode
	Mods Modifiers
	// Rune is the printable character the key produces ignoring modifiers,
	// or 0 when the key has none.
	Rune rune
}

// KeyLabel decodes the key identity of an event: the canonical label for a
// named key, the uppercased printable character otherwise, or "" when
// neither is available.
func KeyLabel(ev Event) string {
	if label, ok := keyLabels[ev.Code]; ok {
		return label
	}
	if ev.Rune != 0 && unicode.IsPrint(ev.Rune) {
		return strings.ToUpper(string(ev.Rune))
	}
	return ""
}

// Qualifies reports whether an event can be committed as a hotkey: at
// least one modifier held, or a key from the special-key table.
func Qualifies(ev Event) bool {
	return ev.Mods.Symbols() != "" || IsSpecialKey(ev.Code)
}

// DecodeChord renders the canonical chord string for a qualifying event.
// The bool is false for events Qualifies rejects.
func DecodeChord(ev Event) (string, bool) {
	if !Qualifies(ev) {
		return "", false
	}
	return ev.Mods.Symbols() + KeyLabel(ev), true
}

// Chord is a parsed key combination.
type Chord struct {
	Mods Modifiers
	// Code is the named-key code, or KeyNone when Key is a printable
	// character.
	Code KeyCode
	// Key is the canonical key label ("S", "Space", "F5").
	Key string
}

// String renders the chord in canonical form.
func (c Chord) String() string {
	return c.Mods.Symbols() + c.Key
}

// Matches reports whether an event carries exactly this chord: the same
// modifier set and the same key.
func (c Chord) Matches(ev Event) bool {
	if ev.Mods != c.Mods {
		return false
	}
	if c.Code != KeyNone {
		return ev.Code == c.Code
	}
	return KeyLabel(ev) == c.Key
}

// modifierNames maps the spelled-out modifier words of the typeable chord
// form to their flags.
var modifierNames = map[string]Modifiers{
	"ctrl":    ModControl,
	"control": ModControl,
	"opt":     ModOption,
	"option":  ModOption,
	"alt":     ModOption,
	"shift":   ModShift,
	"cmd":     ModCommand,
	"command": ModCommand,
	"super":   ModCommand,
	"win":     ModCommand,
}

// ParseChord parses a chord string back into its parts. It accepts the
// canonical symbol form ("⇧⌘S", "⌥Space", "Escape") and the typeable
// spelled-out form ("cmd+shift+s", "alt+space"). A printable key needs at
// least one modifier; a named key stands on its own.
func ParseChord(s string) (Chord, error) {
	if strings.Contains(s, "+") {
		return parseSpelled(s)
	}
	rest := s
	var mods Modifiers
	for rest != "" {
		r, size := utf8.DecodeRuneInString(rest)
		flag, ok := symbolFlag(r)
		if !ok {
			break
		}
		if mods&flag != 0 {
			return Chord{}, fmt.Errorf("duplicate modifier in %q", s)
		}
		mods |= flag
		rest = rest[size:]
	}

	if rest == "" {
		return Chord{}, fmt.Errorf("missing key in %q", s)
	}

	if code, ok := labelCodes[rest]; ok {
		return Chord{Mods: mods, Code: code, Key: rest}, nil
	}

	r, size := utf8.DecodeRuneInString(rest)
	if size != len(rest) || !unicode.IsPrint(r) {
		return Chord{}, fmt.Errorf("unrecognized key %q", rest)
	}
	if mods == 0 {
		return Chord{}, fmt.Errorf("plain key %q needs at least one modifier", rest)
	}
	return Chord{Mods: mods, Code: KeyNone, Key: strings.ToUpper(rest)}, nil
}

func parseSpelled(s string) (Chord, error) {
	parts := strings.Split(s, "+")
	var mods Modifiers
	for _, p := range parts[:len(parts)-1] {
		flag, ok := modifierNames[strings.ToLower(strings.TrimSpace(p))]
		if !ok {
			return Chord{}, fmt.Errorf("unknown modifier %q in %q", p, s)
		}
		if mods&flag != 0 {
			return Chord{}, fmt.Errorf("duplicate modifier in %q", s)
		}
		mods |= flag
	}

	keyPart := strings.TrimSpace(parts[len(parts)-1])
	if keyPart == "" {
		return Chord{}, fmt.Errorf("missing key in %q", s)
	}
	for label, code := range labelCodes {
		if strings.EqualFold(label, keyPart) {
			return Chord{Mods: mods, Code: code, Key: label}, nil
		}
	}

	r, size := utf8.DecodeRuneInString(keyPart)
	if size != len(keyPart) || !unicode.IsPrint(r) {
		return Chord{}, fmt.Errorf("unrecognized key %q", keyPart)
	}
	if mods == 0 {
		return Chord{}, fmt.Errorf("plain key %q needs at least one modifier", keyPart)
	}
	return Chord{Mods: mods, Code: KeyNone, Key: strings.ToUpper(keyPart)}, nil
}

func symbolFlag(r rune) (Modifiers, bool) {
	for _, ms := range modifierSymbols {
		if ms.symbol == string(r) {
			return ms.flag, true
		}
	}
	return 0, false
}
