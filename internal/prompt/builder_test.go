package prompt

import (
	"strings"
	"testing"

	"github.com/mediavision/centrepage/internal/property"
	"github.com/mediavision/centrepage/internal/style"
)

// Every template field must appear in the prompt even when the record
// is empty, so prompt structure is identical across sparse records.
func TestBuild_EmptyRecordUsesPlaceholders(t *testing.T) {
	got := Build(property.Record{}, style.Default())

	for _, field := range promptFields {
		line := field + ": " + Placeholder
		if !strings.Contains(got, line) {
			t.Errorf("prompt missing placeholder line %q", line)
		}
	}
	if n := strings.Count(got, Placeholder); n != len(promptFields) {
		t.Errorf("placeholder count = %d, want %d", n, len(promptFields))
	}
}

func TestBuild_SubstitutesRecordFields(t *testing.T) {
	rec := property.Record{
		property.FieldName:    "Gateway Tower",
		property.FieldAddress: "500 Congress Ave",
		property.FieldCity:    "Austin",
	}
	got := Build(rec, style.Default())

	for _, want := range []string{
		"Property Name: Gateway Tower",
		"Address: 500 Congress Ave",
		"City: Austin",
		"Neighborhood: N/A",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuild_TargetKeywords(t *testing.T) {
	rec := property.Record{}

	cfg := style.Config{TargetKeywords: []string{"coworking", "private office"}}
	if got := Build(rec, cfg); !strings.Contains(got, "Target Keywords: coworking, private office") {
		t.Error("configured keywords not rendered")
	}

	// No keywords configured falls back to the fixed pair.
	if got := Build(rec, style.Config{}); !strings.Contains(got, "Target Keywords: office space, executive office") {
		t.Error("keyword fallback not rendered")
	}
}

func TestBuild_ExcludedTermsClause(t *testing.T) {
	cfg := style.Default()
	cfg.AddExcludedTerm("state-of-the-art")
	cfg.AddExcludedTerm("premier")

	got := Build(property.Record{}, cfg)

	if !strings.Contains(got, "Do NOT use the following terms") {
		t.Fatal("excluded terms clause missing")
	}
	if !strings.Contains(got, `1. "state-of-the-art"`) || !strings.Contains(got, `2. "premier"`) {
		t.Errorf("excluded terms not numbered in order:\n%s", got)
	}

	// Clause absent entirely when no terms are configured.
	if plain := Build(property.Record{}, style.Default()); strings.Contains(plain, "Do NOT use") {
		t.Error("excluded terms clause rendered with no terms configured")
	}
}

func TestBuild_ExampleCopies(t *testing.T) {
	cfg := style.Default()
	cfg.AddExampleCopy("First reference copy.")
	cfg.AddExampleCopy("Second reference copy.")

	got := Build(property.Record{}, cfg)

	if !strings.Contains(got, "EXAMPLE 1:\nFirst reference copy.") {
		t.Error("first example not rendered")
	}
	if !strings.Contains(got, "EXAMPLE 2:\nSecond reference copy.") {
		t.Error("second example not rendered")
	}
}

func TestBuild_EndsWithInstruction(t *testing.T) {
	got := Build(property.Record{}, style.Default())
	if !strings.HasSuffix(got, "Write the SEO-optimized content now:") {
		t.Errorf("prompt does not end with the generation instruction, got tail %q", got[len(got)-60:])
	}
}
