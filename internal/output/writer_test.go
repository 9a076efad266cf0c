package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type testItem struct {
	Name  string `json:"name" yaml:"name"`
	Score int    `json:"score" yaml:"score"`
}

func TestNewWriter_UnsupportedFormat(t *testing.T) {
	if _, err := NewWriter(&bytes.Buffer{}, Format("xml")); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestJSONWriter_SingleItem(t *testing.T) {
	var buf bytes.Buffer
	w, _ := NewWriter(&buf, FormatJSON)

	if err := w.Write(testItem{Name: "a", Score: 1}); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush() error: %v", err)
	}

	var got testItem
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("single item should decode as an object: %v", err)
	}
	if got.Name != "a" {
		t.Errorf("got %+v", got)
	}
}

func TestJSONWriter_MultipleItems(t *testing.T) {
	var buf bytes.Buffer
	w, _ := NewWriter(&buf, FormatJSON)

	_ = w.Write(testItem{Name: "a"})
	_ = w.Write(testItem{Name: "b"})
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush() error: %v", err)
	}

	var got []testItem
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("multiple items should decode as an array: %v", err)
	}
	if len(got) != 2 || got[1].Name != "b" {
		t.Errorf("got %+v", got)
	}
}

func TestJSONWriter_EmptyFlush(t *testing.T) {
	var buf bytes.Buffer
	w, _ := NewWriter(&buf, FormatJSON)
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush() error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("empty flush wrote %q", buf.String())
	}
}

func TestJSONLWriter_StreamsLines(t *testing.T) {
	var buf bytes.Buffer
	w, _ := NewWriter(&buf, FormatJSONL)

	_ = w.Write(testItem{Name: "a"})
	_ = w.Write(testItem{Name: "b"})
	_ = w.Flush()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	for i, line := range lines {
		var item testItem
		if err := json.Unmarshal([]byte(line), &item); err != nil {
			t.Errorf("line %d is not valid JSON: %v", i, err)
		}
	}
}

func TestYAMLWriter(t *testing.T) {
	var buf bytes.Buffer
	w, _ := NewWriter(&buf, FormatYAML)

	_ = w.Write(testItem{Name: "a", Score: 1})
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush() error: %v", err)
	}

	var got testItem
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("single item should decode as a mapping: %v", err)
	}
	if got.Name != "a" || got.Score != 1 {
		t.Errorf("got %+v", got)
	}

	buf.Reset()
	w, _ = NewWriter(&buf, FormatYAML)
	_ = w.Write(testItem{Name: "a"})
	_ = w.Write(testItem{Name: "b"})
	_ = w.Flush()

	var list []testItem
	if err := yaml.Unmarshal(buf.Bytes(), &list); err != nil {
		t.Fatalf("multiple items should decode as a sequence: %v", err)
	}
	if len(list) != 2 {
		t.Errorf("got %+v", list)
	}
}
