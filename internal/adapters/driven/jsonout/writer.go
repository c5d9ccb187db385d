// Package jsonout implements the RecordSink port as a single JSON array
// streamed to a writer: one compact object per document, comma separated,
// with no schema or versioning beyond the keys each document produced.
package jsonout

import (
	"encoding/json"
	"io"

	"github.com/custodia-labs/tedparse/internal/core/domain"
	"github.com/custodia-labs/tedparse/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.RecordSink = (*Writer)(nil)

// Writer streams records as one JSON array. Not safe for concurrent use;
// fan-out callers serialize their own writes.
type Writer struct {
	out   io.Writer
	first bool
	open  bool
}

// New creates a sink writing to out. The array opens on the first record
// (or on Close for an empty stream).
func New(out io.Writer) *Writer {
	return &Writer{out: out, first: true}
}

// Write serializes one record.
func (w *Writer) Write(record domain.Fields) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return err
	}
	prefix := ","
	if w.first {
		prefix = "["
		w.first = false
		w.open = true
	}
	if _, err := io.WriteString(w.out, prefix); err != nil {
		return err
	}
	_, err = w.out.Write(raw)
	return err
}

// Close terminates the array, opening it first if nothing was written.
func (w *Writer) Close() error {
	if !w.open {
		if _, err := io.WriteString(w.out, "["); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w.out, "]")
	return err
}
