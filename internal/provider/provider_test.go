package provider

import "testing"

func TestIsValid(t *testing.T) {
	for _, name := range Names {
		if !IsValid(name) {
			t.Errorf("IsValid(%q) = false, want true", name)
		}
	}
	if IsValid("skynet") {
		t.Error("IsValid(skynet) = true, want false")
	}
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName("openai"); got != "OpenAI" {
		t.Errorf("DisplayName(openai) = %q", got)
	}
	// Unknown names pass through.
	if got := DisplayName("skynet"); got != "skynet" {
		t.Errorf("DisplayName(skynet) = %q", got)
	}
}

func TestBaseURL(t *testing.T) {
	if got := BaseURL("openai", ""); got != "https://api.openai.com/v1" {
		t.Errorf("BaseURL(openai) = %q", got)
	}
	if got := BaseURL("openai", "http://proxy.local/v1"); got != "http://proxy.local/v1" {
		t.Errorf("BaseURL with override = %q", got)
	}
	if got := BaseURL("custom", ""); got != "" {
		t.Errorf("BaseURL(custom) = %q, want empty", got)
	}
}

func TestDetectKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "  sk-from-env  ")
	if got := DetectKey("openai"); got != "sk-from-env" {
		t.Errorf("DetectKey(openai) = %q", got)
	}
	if got := DetectKey("custom"); got != "" {
		t.Errorf("DetectKey(custom) = %q, want empty", got)
	}
}

func TestCheckKey(t *testing.T) {
	tests := []struct {
		provider string
		key      string
		wantErr  bool
	}{
		{"openai", "sk-proj-abcdefghijklmnop", false},
		{"openai", "", true},
		{"openai", "ak-wrong-prefix-abcdef", true},
		{"openai", "sk-short", true},
		{"anthropic", "sk-ant-api03-abcdefghij", false},
		{"ollama", "", false},
		{"custom", "", false},
		{"skynet", "whatever", true},
	}
	for _, tt := range tests {
		err := CheckKey(tt.provider, tt.key)
		if (err != nil) != tt.wantErr {
			t.Errorf("CheckKey(%q, %q) err = %v, wantErr %v", tt.provider, tt.key, err, tt.wantErr)
		}
	}
}
