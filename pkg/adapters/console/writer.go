// Package console prints relationship records for humans or as JSON lines.
package console

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/aretw0/orthology/internal/presentation/tui"
	"github.com/aretw0/orthology/pkg/domain"
)

// Writer implements ports.RecordWriter on a terminal or any io.Writer.
// Records of one target are grouped under the target label, one
// tab-indented line per other taxon.
type Writer struct {
	mu      sync.Mutex
	out     io.Writer
	palette *tui.Palette
	json    bool
}

// Option configures the Writer.
type Option func(*Writer)

// WithColor enables or disables ANSI colours. Colours follow terminal
// detection by default.
func WithColor(enabled bool) Option {
	return func(w *Writer) {
		if !enabled {
			w.palette = tui.Plain(w.out)
		}
	}
}

// WithJSON switches to one JSON object per record.
func WithJSON(enabled bool) Option {
	return func(w *Writer) {
		w.json = enabled
	}
}

// NewWriter creates a console writer on out.
func NewWriter(out io.Writer, opts ...Option) *Writer {
	w := &Writer{out: out, palette: tui.NewPalette(out)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// jsonRecord is the line format of JSON output.
type jsonRecord struct {
	Tree int `json:"tree"`
	domain.Record
}

// Write prints the records of one target.
func (w *Writer) Write(ctx context.Context, tree int, target string, records []domain.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.json {
		enc := json.NewEncoder(w.out)
		for _, r := range records {
			if err := enc.Encode(jsonRecord{Tree: tree, Record: r}); err != nil {
				return &domain.OutputTargetError{Path: "stdout", Err: err}
			}
		}
		return nil
	}

	header := target + ":"
	if tree > 0 {
		header = fmt.Sprintf("[tree %d] %s", tree+1, header)
	}
	if _, err := fmt.Fprintln(w.out, w.palette.Bold(header)); err != nil {
		return &domain.OutputTargetError{Path: "stdout", Err: err}
	}
	for _, r := range records {
		if _, err := fmt.Fprintf(w.out, "\t%s: %s\n", r.Other, w.palette.Colorize(r.Relationship)); err != nil {
			return &domain.OutputTargetError{Path: "stdout", Err: err}
		}
	}
	_, err := fmt.Fprintln(w.out)
	if err != nil {
		return &domain.OutputTargetError{Path: "stdout", Err: err}
	}
	return nil
}
