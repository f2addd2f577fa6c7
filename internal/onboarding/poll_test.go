// Glint - Hotkey-Summoned Desktop AI Assistant
// Copyright (C) 2026 Glint Labs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package onboarding

import (
	"sync/atomic"
	"testing"
	"time"
)

type stubPermission struct {
	granted atomic.Bool
	checks  atomic.Int32
}

func (s *stubPermission) Granted() bool {
	s.checks.Add(1)
	return s.granted.Load()
}

func (s *stubPermission) OpenSettings() error { return nil }

func TestPermissionPollDelivers(t *testing.T) {
	svc := &stubPermission{}
	results := make(chan bool, 64)
	poll := NewPermissionPoll(svc, func(granted bool) { results <- granted })
	poll.Interval = 5 * time.Millisecond

	poll.SetVisible(true)
	defer poll.Stop()

	select {
	case got := <-results:
		if got {
			t.Fatal("first result = true, want false")
		}
	case <-time.After(time.Second):
		t.Fatal("no poll result")
	}

	svc.granted.Store(true)
	deadline := time.After(time.Second)
	for {
		select {
		case got := <-results:
			if got {
				return
			}
		case <-deadline:
			t.Fatal("poll never reported the granted state")
		}
	}
}

func TestPermissionPollStopsWhenHidden(t *testing.T) {
	svc := &stubPermission{}
	var delivered atomic.Int32
	poll := NewPermissionPoll(svc, func(bool) { delivered.Add(1) })
	poll.Interval = 5 * time.Millisecond

	poll.SetVisible(true)
	deadline := time.Now().Add(time.Second)
	for delivered.Load() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("poll never delivered")
		}
		time.Sleep(time.Millisecond)
	}
	poll.SetVisible(false)

	// An in-flight check may still land, but after a settle period the
	// counter must hold steady.
	time.Sleep(20 * time.Millisecond)
	before := delivered.Load()
	time.Sleep(50 * time.Millisecond)
	if after := delivered.Load(); after != before {
		t.Fatalf("poll kept delivering after hide: %d -> %d", before, after)
	}
}

func TestPermissionPollRestart(t *testing.T) {
	svc := &stubPermission{}
	results := make(chan bool, 64)
	poll := NewPermissionPoll(svc, func(granted bool) { results <- granted })
	poll.Interval = 5 * time.Millisecond

	poll.SetVisible(true)
	select {
	case <-results:
	case <-time.After(time.Second):
		t.Fatal("no result from first run")
	}
	poll.SetVisible(false)

	for len(results) > 0 {
		<-results
	}

	poll.SetVisible(true)
	defer poll.Stop()
	select {
	case <-results:
	case <-time.After(time.Second):
		t.Fatal("no result after restart")
	}
}

func TestPermissionPollIdempotent(t *testing.T) {
	svc := &stubPermission{}
	poll := NewPermissionPoll(svc, func(bool) {})
	poll.Interval = 5 * time.Millisecond

	// Repeated shows and hides in either state must not panic or leak.
	poll.SetVisible(true)
	poll.SetVisible(true)
	poll.Stop()
	poll.Stop()
	poll.SetVisible(false)
}
