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

package onboarding

import (
	"sync"
	"time"

	"github.com/glint-app/glint/internal/permission"
)

// PermissionPoll watches the permission state while the accessibility step
// is on screen. SetVisible(true) starts a once-per-second check,
// SetVisible(false) stops it. Results arrive through the callback on the
// poll's own goroutine.
type PermissionPoll struct {
	// Interval between checks. Zero means one second.
	Interval time.Duration

	svc      permission.Service
	onResult func(granted bool)

	mu     sync.Mutex
	cancel chan struct{}
}

// NewPermissionPoll returns a stopped poll.
func NewPermissionPoll(svc permission.Service, onResult func(bool)) *PermissionPoll {
	return &PermissionPoll{svc: svc, onResult: onResult}
}

// SetVisible starts the poll when the step becomes visible and stops it
// when the step is hidden. Both directions are idempotent.
func (p *PermissionPoll) SetVisible(visible bool) {
	if visible {
		p.start()
	} else {
		p.Stop()
	}
}

func (p *PermissionPoll) start() {
	p.mu.Lock()
	if p.cancel != nil {
		p.mu.Unlock()
		return
	}
	cancel := make(chan struct{})
	p.cancel = cancel
	p.mu.Unlock()

	interval := p.Interval
	if interval <= 0 {
		interval = time.Second
	}
	go p.run(cancel, interval)
}

// Stop ends the poll. Safe to call in any state.
func (p *PermissionPoll) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		close(cancel)
	}
}

func (p *PermissionPoll) run(cancel chan struct{}, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-cancel:
			return
		case <-ticker.C:
			granted := p.svc.Granted()
			p.mu.Lock()
			stale := p.cancel != cancel
			p.mu.Unlock()
			if stale {
				return
			}
			p.onResult(granted)
		}
	}
}
