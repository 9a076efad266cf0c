package output

import (
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLWriter buffers items and emits a YAML document on Flush. A
// single item is emitted directly, multiple as a sequence.
type YAMLWriter struct {
	out   io.Writer
	items []any
}

// Write buffers one item.
func (w *YAMLWriter) Write(data any) error {
	w.items = append(w.items, data)
	return nil
}

// Flush writes the buffered items.
func (w *YAMLWriter) Flush() error {
	if len(w.items) == 0 {
		return nil
	}

	enc := yaml.NewEncoder(w.out)
	enc.SetIndent(2)

	var err error
	if len(w.items) == 1 {
		err = enc.Encode(w.items[0])
	} else {
		err = enc.Encode(w.items)
	}
	if err != nil {
		return err
	}
	return enc.Close()
}
