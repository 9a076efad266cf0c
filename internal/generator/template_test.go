package generator

import (
	"context"
	"strings"
	"testing"

	"github.com/mediavision/centrepage/internal/property"
)

func TestTemplateProvider_Generate(t *testing.T) {
	p, err := NewTemplateProvider(DefaultConfig())
	if err != nil {
		t.Fatalf("NewTemplateProvider() error: %v", err)
	}

	rec := property.Record{
		property.FieldName:    "Test Tower",
		property.FieldCity:    "Austin",
		property.FieldAddress: "1 Main St",
	}

	resp, err := p.Generate(context.Background(), Request{Record: rec})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if !strings.HasPrefix(resp.Text, "# Test Tower - Office Space in Austin") {
		t.Errorf("wrong heading: %q", strings.SplitN(resp.Text, "\n", 2)[0])
	}
	if !strings.Contains(resp.Text, "1 Main St") {
		t.Error("address missing from template content")
	}
	if resp.Model != "template" {
		t.Errorf("Model = %q, want template", resp.Model)
	}
	if resp.Raw != "" {
		t.Error("local backend should not carry a raw payload")
	}
}

// The template output is deterministic: same record, same text.
func TestTemplateProvider_Deterministic(t *testing.T) {
	p, _ := NewTemplateProvider(DefaultConfig())
	rec := property.Record{property.FieldName: "Test Tower"}

	first, err := p.Generate(context.Background(), Request{Record: rec})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	second, err := p.Generate(context.Background(), Request{Record: rec})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if first.Text != second.Text {
		t.Error("template output varies between calls")
	}
}

func TestTemplateProvider_EmptyRecordDefaults(t *testing.T) {
	p, _ := NewTemplateProvider(DefaultConfig())

	resp, err := p.Generate(context.Background(), Request{Record: property.Record{}})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	for _, want := range []string{"Premium Office Space", "Major City", "Business District", "123 Main Street"} {
		if !strings.Contains(resp.Text, want) {
			t.Errorf("default %q missing from content", want)
		}
	}
}

func TestTemplateProvider_NotRemote(t *testing.T) {
	p, _ := NewTemplateProvider(DefaultConfig())
	if p.Remote() {
		t.Error("template backend must report Remote() = false")
	}
	if p.Name() != "template" {
		t.Errorf("Name() = %q, want template", p.Name())
	}
}

func TestTemplateProvider_NotifiesObserver(t *testing.T) {
	var events []CallEvent
	cfg := DefaultConfig()
	cfg.Observer = ObserverFunc(func(e CallEvent) {
		events = append(events, e)
	})

	p, _ := NewTemplateProvider(cfg)
	if _, err := p.Generate(context.Background(), Request{Record: property.Record{}, Prompt: "12345"}); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if len(events) != 1 {
		t.Fatalf("observer saw %d events, want 1", len(events))
	}
	e := events[0]
	if e.Provider != "template" || e.Err != nil || e.Response == nil {
		t.Errorf("unexpected event: %+v", e)
	}
	if e.PromptChars != 5 {
		t.Errorf("PromptChars = %d, want 5", e.PromptChars)
	}
}
