// Glint - Hotkey-Summoned Desktop AI Assistant
// Copyright (C) 2026 Glint Labs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package hotkey

import (
	"testing"
	"time"
)

// fakeSource hands the subscribed handler back to the test so it can push
// events, and counts lifecycle calls. Cancel is deliberately not
// once-guarded here so a double release would show up in the count.
type fakeSource struct {
	handler    Handler
	subscribes int
	cancels    int
}

func (f *fakeSource) Subscribe(h Handler) (Subscription, error) {
	f.handler = h
	f.subscribes++
	return &fakeSubscription{source: f}, nil
}

func (f *fakeSource) push(ev Event) Decision {
	if f.handler == nil {
		return Forward
	}
	return f.handler(ev)
}

type fakeSubscription struct{ source *fakeSource }

func (s *fakeSubscription) Cancel() {
	s.source.cancels++
	s.source.handler = nil
}

func TestRecorderCommit(t *testing.T) {
	src := &fakeSource{}
	var committed []string
	rec := NewRecorder(src, func(chord string) { committed = append(committed, chord) })

	if err := rec.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if rec.State() != Armed {
		t.Fatalf("state after Start = %v, want Armed", rec.State())
	}
	if got := rec.Display(); got != ListeningLabel {
		t.Errorf("Display while armed = %q, want %q", got, ListeningLabel)
	}

	if d := src.push(Event{Code: KeyNone, Mods: ModCommand | ModShift, Rune: 's'}); d != Suppress {
		t.Errorf("qualifying chord decision = %v, want Suppress", d)
	}
	if rec.State() != Idle {
		t.Errorf("state after commit = %v, want Idle", rec.State())
	}
	if len(committed) != 1 || committed[0] != "⇧⌘S" {
		t.Errorf("committed = %v, want [⇧⌘S]", committed)
	}
	if got := rec.Display(); got != "⇧⌘S" {
		t.Errorf("Display after commit = %q, want ⇧⌘S", got)
	}
	if src.cancels != 1 {
		t.Errorf("subscription cancelled %d times, want 1", src.cancels)
	}
}

func TestRecorderUnqualifiedKeyStaysArmed(t *testing.T) {
	src := &fakeSource{}
	var committed []string
	rec := NewRecorder(src, func(chord string) { committed = append(committed, chord) })

	if err := rec.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	// A bare letter does not qualify: it passes through and the recorder
	// keeps listening.
	if d := src.push(Event{Code: KeyNone, Rune: 's'}); d != Forward {
		t.Errorf("bare letter decision = %v, want Forward", d)
	}
	if rec.State() != Armed {
		t.Fatalf("state after bare letter = %v, want Armed", rec.State())
	}
	if len(committed) != 0 {
		t.Fatalf("bare letter committed %v", committed)
	}

	// A special key qualifies on its own.
	if d := src.push(Event{Code: KeyEscape}); d != Suppress {
		t.Errorf("escape decision = %v, want Suppress", d)
	}
	if len(committed) != 1 || committed[0] != "Escape" {
		t.Errorf("committed = %v, want [Escape]", committed)
	}
	if rec.State() != Idle {
		t.Errorf("state after escape = %v, want Idle", rec.State())
	}
}

func TestRecorderTimeout(t *testing.T) {
	src := &fakeSource{}
	var committed []string
	rec := NewRecorder(src, func(chord string) { committed = append(committed, chord) })
	rec.SetValue("⌥Space")
	rec.Timeout = 20 * time.Millisecond

	states := make(chan State, 4)
	rec.OnState = func(s State) { states <- s }

	if err := rec.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if s := <-states; s != Armed {
		t.Fatalf("first notification = %v, want Armed", s)
	}

	select {
	case s := <-states:
		if s != Idle {
			t.Fatalf("notification = %v, want Idle", s)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout never fired")
	}

	if rec.State() != Idle {
		t.Errorf("state after timeout = %v, want Idle", rec.State())
	}
	if got := rec.Display(); got != "⌥Space" {
		t.Errorf("Display after timeout = %q, want stored chord", got)
	}
	if len(committed) != 0 {
		t.Errorf("timeout committed %v, want none", committed)
	}
	if src.cancels != 1 {
		t.Errorf("subscription cancelled %d times, want 1", src.cancels)
	}
}

func TestRecorderRestartExtendsTimeout(t *testing.T) {
	src := &fakeSource{}
	rec := NewRecorder(src, nil)
	rec.Timeout = 300 * time.Millisecond

	states := make(chan State, 4)
	rec.OnState = func(s State) { states <- s }

	if err := rec.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	<-states

	time.Sleep(200 * time.Millisecond)
	// Starting again while armed restarts the countdown without a second
	// subscription.
	if err := rec.Start(); err != nil {
		t.Fatalf("restart: %v", err)
	}
	time.Sleep(200 * time.Millisecond)

	if rec.State() != Armed {
		t.Fatal("recorder disarmed before the restarted countdown ran out")
	}
	if src.subscribes != 1 {
		t.Errorf("subscribed %d times, want 1", src.subscribes)
	}

	select {
	case s := <-states:
		if s != Idle {
			t.Fatalf("notification = %v, want Idle", s)
		}
	case <-time.After(time.Second):
		t.Fatal("restarted timeout never fired")
	}
}

func TestRecorderStopIdempotent(t *testing.T) {
	src := &fakeSource{}
	rec := NewRecorder(src, nil)

	rec.Stop() // idle stop is a no-op

	if err := rec.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	rec.Stop()
	rec.Stop()
	rec.Stop()

	if rec.State() != Idle {
		t.Errorf("state = %v, want Idle", rec.State())
	}
	if src.cancels != 1 {
		t.Errorf("subscription cancelled %d times, want 1", src.cancels)
	}

	// The recorder is reusable after a stop.
	if err := rec.Start(); err != nil {
		t.Fatalf("Start after Stop: %v", err)
	}
	if src.subscribes != 2 {
		t.Errorf("subscribed %d times, want 2", src.subscribes)
	}
	rec.Stop()
}

func TestRecorderCloseWhileArmed(t *testing.T) {
	src := &fakeSource{}
	var committed []string
	rec := NewRecorder(src, func(chord string) { committed = append(committed, chord) })

	if err := rec.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	h := src.handler

	rec.Close()
	if src.cancels != 1 {
		t.Fatalf("subscription cancelled %d times, want 1", src.cancels)
	}

	// An event already in flight when the recorder went away must not
	// commit anything.
	if d := h(Event{Code: KeyEscape}); d != Forward {
		t.Errorf("decision after Close = %v, want Forward", d)
	}
	if len(committed) != 0 {
		t.Errorf("committed after Close = %v, want none", committed)
	}

	if err := rec.Start(); err != ErrClosed {
		t.Errorf("Start after Close = %v, want ErrClosed", err)
	}
}

func TestRecorderDisplay(t *testing.T) {
	src := &fakeSource{}
	rec := NewRecorder(src, nil)

	if got := rec.Display(); got != PromptLabel {
		t.Errorf("empty Display = %q, want %q", got, PromptLabel)
	}
	rec.SetValue("⌘K")
	if got := rec.Display(); got != "⌘K" {
		t.Errorf("Display = %q, want ⌘K", got)
	}
	if err := rec.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if got := rec.Display(); got != ListeningLabel {
		t.Errorf("Display while armed = %q, want %q", got, ListeningLabel)
	}
	rec.Stop()
	if got := rec.Display(); got != "⌘K" {
		t.Errorf("Display after Stop = %q, want ⌘K", got)
	}
}
