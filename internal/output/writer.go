// Package output serializes reports, snapshots, and structured-data
// documents in the formats the CLI offers.
package output

import (
	"fmt"
	"io"
)

// Format represents output format types.
type Format string

const (
	FormatJSON  Format = "json"
	FormatJSONL Format = "jsonl"
	FormatYAML  Format = "yaml"
)

// Writer handles output serialization. Items are buffered or streamed
// depending on the format; Flush finalizes the document.
type Writer interface {
	Write(data any) error
	Flush() error
}

// NewWriter creates a writer for the specified format.
func NewWriter(w io.Writer, format Format) (Writer, error) {
	switch format {
	case FormatJSON:
		return &JSONWriter{out: w}, nil
	case FormatJSONL:
		return &JSONLWriter{out: w}, nil
	case FormatYAML:
		return &YAMLWriter{out: w}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}
