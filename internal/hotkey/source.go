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
)

// Decision tells an event source what to do with an intercepted event.
type Decision int

const (
	// Forward lets the event propagate to the rest of the application.
	Forward Decision = iota
	// Suppress consumes the event.
	Suppress
)

// Handler receives key-down events and decides, synchronously with event
// dispatch, whether each one is consumed.
type Handler func(Event) Decision

// Source delivers key-down events to at most one subscriber at a time.
type Source interface {
	Subscribe(h Handler) (Subscription, error)
}

// Subscription is an active event subscription. Cancel releases it and is
// safe to call more than once.
type Subscription interface {
	Cancel()
}

// ErrBusy is returned when a source already has an active subscription.
var ErrBusy = errors.New("hotkey: source already has a subscriber")

// FeedSource is a Source whose events are pushed synchronously by its
// owner. It lets the recorder run against key events that arrive by some
// route other than a platform hook; the owner feeds each event and honors
// the returned decision.
type FeedSource struct {
	mu      sync.Mutex
	handler Handler
	current *feedSubscription
}

// NewFeedSource returns an empty push source.
func NewFeedSource() *FeedSource {
	return &FeedSource{}
}

// Subscribe installs h as the active handler. Fails with ErrBusy while
// another subscription is active.
func (s *FeedSource) Subscribe(h Handler) (Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.handler != nil {
		return nil, ErrBusy
	}
	sub := &feedSubscription{source: s}
	s.handler = h
	s.current = sub
	return sub, nil
}

// Feed delivers one event to the active subscriber and returns its
// decision. Events fed while nothing is subscribed pass through untouched.
func (s *FeedSource) Feed(ev Event) Decision {
	s.mu.Lock()
	h := s.handler
	s.mu.Unlock()
	if h == nil {
		return Forward
	}
	return h(ev)
}

type feedSubscription struct {
	source *FeedSource
	once   sync.Once
}

func (f *feedSubscription) Cancel() {
	f.once.Do(func() {
		s := f.source
		s.mu.Lock()
		if s.current == f {
			s.handler = nil
			s.current = nil
		}
		s.mu.Unlock()
	})
}
