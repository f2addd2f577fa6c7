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

//go:build windows

package hotkey

import (
	"fmt"
	"runtime"
	"sync"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procSetWindowsHookEx    = user32.NewProc("SetWindowsHookExW")
	procCallNextHookEx      = user32.NewProc("CallNextHookEx")
	procUnhookWindowsHookEx = user32.NewProc("UnhookWindowsHookEx")
	procPeekMessage         = user32.NewProc("PeekMessageW")
	procGetAsyncKeyState    = user32.NewProc("GetAsyncKeyState")
)

const (
	whKeyboardLL = 13
	wmKeydown    = 0x0100
	wmSyskeydown = 0x0104
	pmRemove     = 0x0001
)

const (
	vkBack    = 0x08
	vkTab     = 0x09
	vkReturn  = 0x0D
	vkShift   = 0x10
	vkControl = 0x11
	vkMenu    = 0x12 // Alt
	vkEscape  = 0x1B
	vkSpace   = 0x20
	vkLeft    = 0x25
	vkUp      = 0x26
	vkRight   = 0x27
	vkDown    = 0x28
	vkLwin    = 0x5B
	vkRwin    = 0x5C
)

// vkKeyCodes maps Windows virtual-key codes for named keys into the
// unified code space.
var vkKeyCodes = map[uint32]KeyCode{
	vkReturn: KeyReturn,
	vkTab:    KeyTab,
	vkSpace:  KeySpace,
	vkBack:   KeyDelete,
	vkEscape: KeyEscape,
	vkLeft:   KeyLeft,
	vkRight:  KeyRight,
	vkDown:   KeyDown,
	vkUp:     KeyUp,
	0x70:     KeyF1,
	0x71:     KeyF2,
	0x72:     KeyF3,
	0x73:     KeyF4,
	0x74:     KeyF5,
	0x75:     KeyF6,
	0x76:     KeyF7,
	0x77:     KeyF8,
	0x78:     KeyF9,
	0x79:     KeyF10,
	0x7A:     KeyF11,
	0x7B:     KeyF12,
}

type kbdllhookstruct struct {
	vkCode      uint32
	scanCode    uint32
	flags       uint32
	time        uint32
	dwExtraInfo uintptr
}

type winMsg struct {
	hwnd    uintptr
	message uint32
	wParam  uintptr
	lParam  uintptr
	time    uint32
	pt      struct{ x, y int32 }
}

// SystemSource captures key-down events system-wide through a low-level
// keyboard hook. Modifier keydowns are never delivered as events; they only
// show up as flags on the events of ordinary keys. One subscriber at a
// time; a Suppress decision swallows the keystroke before other
// applications see it.
type SystemSource struct {
	mu      sync.Mutex
	handler Handler
	hook    uintptr
	done    chan struct{}
	cb      uintptr // hook callback, created once per process
}

// NewSystemSource returns the global key-down source for this platform.
func NewSystemSource() (Source, error) {
	return &SystemSource{}, nil
}

// Subscribe installs the keyboard hook and starts its message loop.
func (s *SystemSource) Subscribe(h Handler) (Subscription, error) {
	s.mu.Lock()
	if s.handler != nil {
		s.mu.Unlock()
		return nil, ErrBusy
	}
	if s.cb == 0 {
		s.cb = windows.NewCallback(s.hookProc)
	}
	s.handler = h
	s.done = make(chan struct{})
	s.mu.Unlock()

	errCh := make(chan error, 1)
	go s.runHook(errCh)
	if err := <-errCh; err != nil {
		s.mu.Lock()
		s.handler = nil
		s.done = nil
		s.mu.Unlock()
		return nil, err
	}
	return &systemSubscription{source: s}, nil
}

func (s *SystemSource) hookProc(nCode int32, wParam uintptr, lParam uintptr) uintptr {
	if nCode >= 0 && (wParam == wmKeydown || wParam == wmSyskeydown) {
		kb := (*kbdllhookstruct)(unsafe.Pointer(lParam))
		if !isModifierVK(kb.vkCode) && s.dispatch(kb.vkCode) == Suppress {
			return 1
		}
	}
	r, _, _ := procCallNextHookEx.Call(0, uintptr(nCode), wParam, lParam)
	return r
}

func (s *SystemSource) dispatch(vk uint32) Decision {
	s.mu.Lock()
	h := s.handler
	s.mu.Unlock()
	if h == nil {
		return Forward
	}
	return h(translateVK(vk))
}

func (s *SystemSource) runHook(errCh chan<- error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	hook, _, err := procSetWindowsHookEx.Call(whKeyboardLL, s.cb, 0, 0)
	if hook == 0 {
		errCh <- fmt.Errorf("SetWindowsHookEx failed: %w", err)
		return
	}

	s.mu.Lock()
	s.hook = hook
	done := s.done
	s.mu.Unlock()

	errCh <- nil

	// Low-level hooks need a message pump on the installing thread.
	var m winMsg
	for {
		select {
		case <-done:
			return
		default:
			r, _, _ := procPeekMessage.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0, pmRemove)
			if r != 0 {
				continue
			}
			time.Sleep(5 * time.Millisecond)
		}
	}
}

type systemSubscription struct {
	source *SystemSource
	once   sync.Once
}

func (sub *systemSubscription) Cancel() {
	sub.once.Do(func() {
		s := sub.source
		s.mu.Lock()
		s.handler = nil
		if s.done != nil {
			close(s.done)
			s.done = nil
		}
		hook := s.hook
		s.hook = 0
		s.mu.Unlock()

		if hook != 0 {
			procUnhookWindowsHookEx.Call(hook)
		}
	})
}

// translateVK converts a virtual-key press plus the live modifier state
// into a unified event.
func translateVK(vk uint32) Event {
	ev := Event{Code: KeyNone, Mods: readModifiers()}
	if code, ok := vkKeyCodes[vk]; ok {
		ev.Code = code
		return ev
	}
	switch {
	case vk >= 'A' && vk <= 'Z':
		ev.Rune = rune('a' + vk - 'A')
	case vk >= '0' && vk <= '9':
		ev.Rune = rune(vk)
	}
	return ev
}

func isModifierVK(vk uint32) bool {
	switch vk {
	case vkShift, vkControl, vkMenu, vkLwin, vkRwin:
		return true
	}
	// Left/right variants of shift, control, and alt.
	return vk >= 0xA0 && vk <= 0xA5
}

func readModifiers() Modifiers {
	var m Modifiers
	if keyHeld(vkControl) {
		m |= ModControl
	}
	if keyHeld(vkMenu) {
		m |= ModOption
	}
	if keyHeld(vkShift) {
		m |= ModShift
	}
	if keyHeld(vkLwin) || keyHeld(vkRwin) {
		m |= ModCommand
	}
	return m
}

func keyHeld(vk int) bool {
	r, _, _ := procGetAsyncKeyState.Call(uintptr(vk))
	return r&0x8000 != 0
}
