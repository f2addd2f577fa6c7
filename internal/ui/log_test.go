package ui

import (
	"strings"
	"testing"
)

func TestRedactHook(t *testing.T) {
	t.Cleanup(func() { Redact = nil })

	if got := filtered("sk-live-1234"); got != "sk-live-1234" {
		t.Errorf("filtered without hook = %q, want input unchanged", got)
	}

	Redact = func(s string) string {
		return strings.ReplaceAll(s, "sk-live-1234", "<redacted>")
	}
	if got := filtered("key is sk-live-1234"); got != "key is <redacted>" {
		t.Errorf("filtered = %q, want key is <redacted>", got)
	}
	if got := filtered("no secrets here"); got != "no secrets here" {
		t.Errorf("filtered = %q, want input unchanged", got)
	}
}
