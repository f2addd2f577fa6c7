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

// Package onboarding walks a new user through glint's first-run setup:
// welcome, AI provider, accessibility access, browser automation, done.
// The Sequencer owns step order and completion; the TUI on top does the
// talking.
package onboarding

import "sync"

// Step is one stage of the onboarding flow.
type Step int

const (
	StepWelcome Step = iota
	StepProvider
	StepAccessibility
	StepBrowser
	StepComplete
)

// Steps lists the flow in order.
var Steps = []Step{StepWelcome, StepProvider, StepAccessibility, StepBrowser, StepComplete}

// Next returns the step after s, or false at the end of the flow.
func (s Step) Next() (Step, bool) {
	if s < StepWelcome || s >= StepComplete {
		return s, false
	}
	return s + 1, true
}

// Previous returns the step before s, or false at the start.
func (s Step) Previous() (Step, bool) {
	if s <= StepWelcome || s > StepComplete {
		return s, false
	}
	return s - 1, true
}

// String returns the step's display name.
func (s Step) String() string {
	switch s {
	case StepWelcome:
		return "welcome"
	case StepProvider:
		return "ai provider"
	case StepAccessibility:
		return "accessibility"
	case StepBrowser:
		return "browser automation"
	case StepComplete:
		return "complete"
	}
	return "unknown"
}

// Store persists the one fact the sequencer owns, the completion flag.
// Everything else a step collects is saved by the step itself before it
// advances.
type Store interface {
	SetOnboardingCompleted(done bool) error
}

// Sequencer owns the step order of the onboarding flow.
type Sequencer struct {
	store Store

	mu        sync.Mutex
	step      Step
	observers map[int]func()
	nextObs   int
}

// NewSequencer starts a flow at the welcome step.
func NewSequencer(store Store) *Sequencer {
	return &Sequencer{store: store, observers: make(map[int]func())}
}

// Current returns the active step.
func (s *Sequencer) Current() Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

// Advance moves to the next step and returns where the flow landed. Both
// "continue" and "skip" land here; whatever a step wants to persist happens
// before it calls Advance. Advancing at the final step does nothing.
func (s *Sequencer) Advance() Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	if next, ok := s.step.Next(); ok {
		s.step = next
	}
	return s.step
}

// Subscribe registers an observer for the completion signal. The returned
// func removes it and is safe to call more than once.
func (s *Sequencer) Subscribe(fn func()) func() {
	s.mu.Lock()
	id := s.nextObs
	s.nextObs++
	s.observers[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.observers, id)
			s.mu.Unlock()
		})
	}
}

// Complete marks onboarding finished: the flag is persisted, then every
// observer is notified. Calling Complete again repeats both; the flag
// write is idempotent and observers must tolerate hearing the signal
// twice. Observers run outside the sequencer's lock, so they may call
// back in.
func (s *Sequencer) Complete() error {
	s.mu.Lock()
	s.step = StepComplete
	obs := make([]func(), 0, len(s.observers))
	for _, fn := range s.observers {
		obs = append(obs, fn)
	}
	s.mu.Unlock()

	var err error
	if s.store != nil {
		err = s.store.SetOnboardingCompleted(true)
	}
	for _, fn := range obs {
		fn()
	}
	return err
}
