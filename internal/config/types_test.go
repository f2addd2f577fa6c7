package config

import "testing"

func TestIsBrowserEnabled(t *testing.T) {
	cfg := &Config{
		BrowserAutomation: BrowserConfig{
			Enabled:  true,
			Browsers: []string{"chrome", "edge"},
		},
	}
	if !cfg.IsBrowserEnabled("chrome") {
		t.Error("IsBrowserEnabled(chrome) = false, want true")
	}
	if cfg.IsBrowserEnabled("brave") {
		t.Error("IsBrowserEnabled(brave) = true, want false")
	}

	cfg.BrowserAutomation.Enabled = false
	if cfg.IsBrowserEnabled("chrome") {
		t.Error("IsBrowserEnabled with automation off = true, want false")
	}
}

func TestSetBrowserEnabled(t *testing.T) {
	cfg := &Config{
		BrowserAutomation: BrowserConfig{Enabled: true, Browsers: []string{"chrome"}},
	}

	cfg.SetBrowserEnabled("edge", true)
	if !cfg.IsBrowserEnabled("edge") {
		t.Error("edge not enabled after SetBrowserEnabled(edge, true)")
	}

	// Enabling twice must not duplicate the entry.
	cfg.SetBrowserEnabled("edge", true)
	if n := len(cfg.BrowserAutomation.Browsers); n != 2 {
		t.Errorf("browsers list has %d entries, want 2", n)
	}

	cfg.SetBrowserEnabled("chrome", false)
	if cfg.IsBrowserEnabled("chrome") {
		t.Error("chrome still enabled after SetBrowserEnabled(chrome, false)")
	}
	cfg.SetBrowserEnabled("chrome", false)
	if n := len(cfg.BrowserAutomation.Browsers); n != 1 {
		t.Errorf("browsers list has %d entries, want 1", n)
	}
}

func TestSecretValues(t *testing.T) {
	cfg := &Config{}
	if n := len(cfg.SecretValues()); n != 0 {
		t.Errorf("empty config has %d secrets, want 0", n)
	}

	cfg.Provider.APIKey = "sk-test-12345"
	secrets := cfg.SecretValues()
	if secrets["sk-test-12345"] != "provider.api_key" {
		t.Errorf("SecretValues() = %v, want api key mapped to provider.api_key", secrets)
	}
}
