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
	"errors"
	"sync"
	"time"
)

// State is the recorder's arming state.
type State int

const (
	// Idle: not listening. The control shows the stored chord or a prompt.
	Idle State = iota
	// Armed: an event subscription is active and the next qualifying chord
	// commits.
	Armed
)

// DefaultTimeout is how long the recorder stays armed waiting for a
// qualifying chord before cancelling itself.
const DefaultTimeout = 5 * time.Second

// Display labels for the recorder control.
const (
	PromptLabel    = "Press Enter to record"
	ListeningLabel = "Listening..."
)

// ErrClosed is returned by Start after Close.
var ErrClosed = errors.New("hotkey: recorder closed")

// Recorder captures a single key chord from an event source. While armed it
// holds exactly one subscription; every qualifying key-down commits the
// decoded chord and disarms, everything else passes through. An armed
// recorder cancels itself after a timeout.
type Recorder struct {
	// Timeout overrides DefaultTimeout when positive. Set before Start.
	Timeout time.Duration

	// OnState, when set, is called after every state transition. It runs
	// outside the recorder's lock, on whichever goroutine caused the
	// transition (including the timeout timer's).
	OnState func(State)

	source   Source
	onChange func(string)

	mu     sync.Mutex
	state  State
	sub    Subscription
	timer  *time.Timer
	gen    int // arm generation; a stale timer fire is ignored
	value  string
	closed bool
}

// NewRecorder creates an idle recorder. onChange receives the canonical
// chord string whenever a recording commits.
func NewRecorder(source Source, onChange func(string)) *Recorder {
	return &Recorder{source: source, onChange: onChange}
}

// SetValue sets the stored chord shown while idle.
func (r *Recorder) SetValue(chord string) {
	r.mu.Lock()
	r.value = chord
	r.mu.Unlock()
}

// Value returns the stored chord.
func (r *Recorder) Value() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.value
}

// State returns the current arming state.
func (r *Recorder) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Display returns the control's label: the listening label while armed, the
// stored chord while idle, or a prompt when nothing is stored yet.
func (r *Recorder) Display() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state == Armed {
		return ListeningLabel
	}
	if r.value == "" {
		return PromptLabel
	}
	return r.value
}

// Start arms the recorder: it subscribes to the event source and schedules
// the auto-cancel timeout. Starting while already armed restarts the
// timeout.
func (r *Recorder) Start() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return ErrClosed
	}
	if r.state == Armed {
		r.armTimerLocked()
		r.mu.Unlock()
		return nil
	}
	sub, err := r.source.Subscribe(r.handleEvent)
	if err != nil {
		r.mu.Unlock()
		return err
	}
	r.sub = sub
	r.state = Armed
	r.armTimerLocked()
	onState := r.OnState
	r.mu.Unlock()

	if onState != nil {
		onState(Armed)
	}
	return nil
}

// Stop cancels an active recording without committing. Safe to call in any
// state, any number of times.
func (r *Recorder) Stop() {
	r.mu.Lock()
	if r.state != Armed {
		r.mu.Unlock()
		return
	}
	sub := r.disarmLocked()
	onState := r.OnState
	r.mu.Unlock()

	if sub != nil {
		sub.Cancel()
	}
	if onState != nil {
		onState(Idle)
	}
}

// Close releases the recorder. Closing while armed drops the subscription;
// subsequent Start calls fail with ErrClosed.
func (r *Recorder) Close() {
	r.mu.Lock()
	r.closed = true
	if r.state != Armed {
		r.mu.Unlock()
		return
	}
	sub := r.disarmLocked()
	r.mu.Unlock()

	if sub != nil {
		sub.Cancel()
	}
}

// handleEvent decides one intercepted key-down. A qualifying chord commits:
// the value updates, the change callback fires, the recorder disarms, and
// the event is suppressed. Anything else is forwarded and the recorder
// stays armed.
func (r *Recorder) handleEvent(ev Event) Decision {
	chord, ok := DecodeChord(ev)
	if !ok {
		return Forward
	}

	r.mu.Lock()
	if r.state != Armed {
		r.mu.Unlock()
		return Forward
	}
	r.value = chord
	sub := r.disarmLocked()
	onChange := r.onChange
	onState := r.OnState
	r.mu.Unlock()

	if sub != nil {
		sub.Cancel()
	}
	if onChange != nil {
		onChange(chord)
	}
	if onState != nil {
		onState(Idle)
	}
	return Suppress
}

// expire is the timeout path. The generation check drops fires from timers
// superseded by a re-arm or an earlier stop.
func (r *Recorder) expire(gen int) {
	r.mu.Lock()
	if gen != r.gen || r.state != Armed {
		r.mu.Unlock()
		return
	}
	sub := r.disarmLocked()
	onState := r.OnState
	r.mu.Unlock()

	if sub != nil {
		sub.Cancel()
	}
	if onState != nil {
		onState(Idle)
	}
}

// armTimerLocked replaces any pending timeout with a fresh one. Caller
// holds r.mu.
func (r *Recorder) armTimerLocked() {
	if r.timer != nil {
		r.timer.Stop()
	}
	r.gen++
	gen := r.gen
	d := r.Timeout
	if d <= 0 {
		d = DefaultTimeout
	}
	r.timer = time.AfterFunc(d, func() { r.expire(gen) })
}

// disarmLocked moves to Idle and detaches the subscription. Caller holds
// r.mu and must Cancel the returned subscription after unlocking; it is
// non-nil at most once per arm cycle.
func (r *Recorder) disarmLocked() Subscription {
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
	r.gen++
	sub := r.sub
	r.sub = nil
	r.state = Idle
	return sub
}
