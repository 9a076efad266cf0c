package output

import (
	"encoding/json"
	"io"
)

// JSONWriter buffers items and emits them as one indented document on
// Flush. A single item is emitted directly, multiple as an array.
type JSONWriter struct {
	out   io.Writer
	items []any
}

// Write buffers one item.
func (w *JSONWriter) Write(data any) error {
	w.items = append(w.items, data)
	return nil
}

// Flush writes the buffered items.
func (w *JSONWriter) Flush() error {
	var doc any
	switch len(w.items) {
	case 0:
		return nil
	case 1:
		doc = w.items[0]
	default:
		doc = w.items
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.out.Write(data)
	return err
}

// JSONLWriter streams newline-delimited JSON, one item per line.
type JSONLWriter struct {
	out io.Writer
}

// Write emits one item immediately.
func (w *JSONLWriter) Write(data any) error {
	line, err := json.Marshal(data)
	if err != nil {
		return err
	}
	line = append(line, '\n')
	_, err = w.out.Write(line)
	return err
}

// Flush is a no-op; lines are written eagerly.
func (w *JSONLWriter) Flush() error {
	return nil
}
