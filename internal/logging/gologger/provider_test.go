package gologger

import "testing"

func TestNewProvider_RejectsUnknownFormat(t *testing.T) {
	if _, err := NewProvider(Config{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewProvider_DefaultsToConsole(t *testing.T) {
	provider, err := NewProvider(Config{Level: "warn"})
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}
	if provider.GetLogger("hugoprep.pipeline") == nil {
		t.Fatal("expected logger instance")
	}
}

func TestGetLogger_NilProvider(t *testing.T) {
	var provider *Provider
	logger := provider.GetLogger("anything")
	if logger == nil {
		t.Fatal("expected no-op logger for nil provider")
	}
	logger.Info("must not panic")
}

func TestNormalizeLevel(t *testing.T) {
	cases := map[string]bool{
		"debug":   true,
		"WARNING": true,
		"bogus":   false,
		"":        false,
	}
	for input, want := range cases {
		if got := normalizeLevel(input) != ""; got != want {
			t.Fatalf("normalizeLevel(%q) recognized=%v, want %v", input, got, want)
		}
	}
}
