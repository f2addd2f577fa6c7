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

// Package hotkey captures a single key combination ("chord") from a stream
// of key-down events and renders it as a canonical string such as "⇧⌘S".
// Decoding is pure; the Recorder adds the arming state machine on top, and
// platform sources translate native key events into the unified code space.
package hotkey

// KeyCode identifies a physical key in the unified code space shared by all
// event sources. The numbering mirrors the classic virtual-keycode layout
// that the desktop sources report natively.
type KeyCode int

// KeyNone marks a chord whose key is a printable character rather than a
// named key.
const KeyNone KeyCode = -1

// Named keys.
const (
	KeyReturn KeyCode = 36
	KeyTab    KeyCode = 48
	KeySpace  KeyCode = 49
	KeyDelete KeyCode = 51
	KeyEscape KeyCode = 53
	KeyF5     KeyCode = 96
	KeyF6     KeyCode = 97
	KeyF7     KeyCode = 98
	KeyF3     KeyCode = 99
	KeyF8     KeyCode = 100
	KeyF9     KeyCode = 101
	KeyF11    KeyCode = 103
	KeyF10    KeyCode = 109
	KeyF12    KeyCode = 111
	KeyF4     KeyCode = 118
	KeyF2     KeyCode = 120
	KeyF1     KeyCode = 122
	KeyLeft   KeyCode = 123
	KeyRight  KeyCode = 124
	KeyDown   KeyCode = 125
	KeyUp     KeyCode = 126
)

// keyLabels maps named keys to their canonical labels.
var keyLabels = map[KeyCode]string{
	KeyReturn: "Return",
	KeyTab:    "Tab",
	KeySpace:  "Space",
	KeyDelete: "Delete",
	KeyEscape: "Escape",
	KeyLeft:   "Left",
	KeyRight:  "Right",
	KeyDown:   "Down",
	KeyUp:     "Up",
	KeyF1:     "F1",
	KeyF2:     "F2",
	KeyF3:     "F3",
	KeyF4:     "F4",
	KeyF5:     "F5",
	KeyF6:     "F6",
	KeyF7:     "F7",
	KeyF8:     "F8",
	KeyF9:     "F9",
	KeyF10:    "F10",
	KeyF11:    "F11",
	KeyF12:    "F12",
}

// labelCodes is the reverse of keyLabels, for parsing stored chords.
var labelCodes = func() map[string]KeyCode {
	m := make(map[string]KeyCode, len(keyLabels))
	for code, label := range keyLabels {
		m[label] = code
	}
	return m
}()

// specialKeys lists key codes that qualify as a hotkey without any modifier.
var specialKeys = map[KeyCode]bool{
	KeySpace:  true,
	KeyReturn: true,
	KeyTab:    true,
	KeyDelete: true,
	KeyEscape: true,
	KeyLeft:   true,
	KeyRight:  true,
	KeyDown:   true,
	KeyUp:     true,
	KeyF5:     true,
	KeyF6:     true,
}

// Function keys occupy a scattered block of the code space; this range picks
// up the block beginning at F5. Its low end overlaps the F5/F6 entries above.
// Keep both checks exactly as they are: narrowing either one could drop a
// code that currently qualifies.
const (
	functionKeyLow  KeyCode = 96
	functionKeyHigh KeyCode = 111
)

// IsSpecialKey reports whether the key qualifies as a hotkey on its own,
// with no modifier held.
func IsSpecialKey(code KeyCode) bool {
	if specialKeys[code] {
		return true
	}
	return code >= functionKeyLow && code <= functionKeyHigh
}
