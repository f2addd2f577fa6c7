package hotkey

import "testing"

func TestFeedSourceNoSubscriber(t *testing.T) {
	s := NewFeedSource()
	if d := s.Feed(Event{Code: KeyEscape}); d != Forward {
		t.Errorf("Feed with no subscriber = %v, want Forward", d)
	}
}

func TestFeedSourceSingleSubscriber(t *testing.T) {
	s := NewFeedSource()
	sub, err := s.Subscribe(func(Event) Decision { return Suppress })
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	if _, err := s.Subscribe(func(Event) Decision { return Forward }); err != ErrBusy {
		t.Errorf("second Subscribe err = %v, want ErrBusy", err)
	}
	if d := s.Feed(Event{Code: KeyEscape}); d != Suppress {
		t.Errorf("Feed = %v, want Suppress", d)
	}

	sub.Cancel()
	if d := s.Feed(Event{Code: KeyEscape}); d != Forward {
		t.Errorf("Feed after Cancel = %v, want Forward", d)
	}
}

func TestFeedSourceResubscribe(t *testing.T) {
	s := NewFeedSource()
	first, err := s.Subscribe(func(Event) Decision { return Forward })
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	first.Cancel()
	first.Cancel()

	if _, err := s.Subscribe(func(Event) Decision { return Suppress }); err != nil {
		t.Fatalf("Subscribe after Cancel: %v", err)
	}
	if d := s.Feed(Event{Code: KeyEscape}); d != Suppress {
		t.Errorf("Feed = %v, want Suppress", d)
	}

	// A stale handle from the first subscription is inert.
	first.Cancel()
	if d := s.Feed(Event{Code: KeyEscape}); d != Suppress {
		t.Errorf("Feed after stale Cancel = %v, want Suppress", d)
	}
}
