package generator

import (
	"strings"
	"testing"
)

func TestNew_UnknownProvider(t *testing.T) {
	_, err := New("bard", DefaultConfig())
	if err == nil {
		t.Fatal("expected error for unknown provider")
	}
	if !strings.Contains(err.Error(), "unknown provider") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestNew_ModelValidation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.APIKey = "test-key"

	cfg.Model = "claude-sonnet-4-20250514"
	if _, err := New("anthropic", cfg); err != nil {
		t.Errorf("supported model rejected: %v", err)
	}

	cfg.Model = "gpt-4o"
	if _, err := New("anthropic", cfg); err == nil {
		t.Error("expected error for model from the wrong provider")
	}

	// The template backend has no model list; anything goes.
	cfg.Model = "whatever"
	if _, err := New("template", cfg); err != nil {
		t.Errorf("template backend rejected a model: %v", err)
	}
}

func TestDetect_Priority(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	if name, key := Detect(); name != "template" || key != "" {
		t.Errorf("no keys: Detect() = %q, %q, want template", name, key)
	}

	t.Setenv("OPENAI_API_KEY", "sk-openai")
	if name, key := Detect(); name != "openai" || key != "sk-openai" {
		t.Errorf("openai key only: Detect() = %q, %q", name, key)
	}

	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")
	if name, key := Detect(); name != "anthropic" || key != "sk-ant" {
		t.Errorf("both keys: Detect() = %q, %q, want anthropic first", name, key)
	}
}

func TestBackendError_Message(t *testing.T) {
	httpErr := &BackendError{Kind: KindHTTPStatus, Status: 429, Message: "rate limited"}
	if got := httpErr.Error(); !strings.Contains(got, "429") || !strings.Contains(got, "rate limited") {
		t.Errorf("Error() = %q", got)
	}

	netErr := &BackendError{Kind: KindNetwork, Message: "connection refused"}
	if got := netErr.Error(); strings.Contains(got, "status") {
		t.Errorf("network error should not mention a status: %q", got)
	}
}

func TestRequest_ApplyDefaults(t *testing.T) {
	req := Request{}
	req.applyDefaults()
	if req.MaxTokens != 1500 || req.Temperature != 0.7 {
		t.Errorf("defaults = %d tokens, %v temperature, want 1500, 0.7", req.MaxTokens, req.Temperature)
	}

	req = Request{MaxTokens: 800, Temperature: 0.2}
	req.applyDefaults()
	if req.MaxTokens != 800 || req.Temperature != 0.2 {
		t.Error("explicit values must survive applyDefaults")
	}
}
