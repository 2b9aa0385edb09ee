package file

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/aretw0/orthology/pkg/domain"
)

// CSVWriter implements ports.RecordWriter by writing one CSV file per target
// into an existing directory. In-/out-paralogous relationships are written
// as "paralogous" with the specific kind in the extra_info column.
//
// A writer remembers the files it created: a second target mapping to the
// same file name is rejected instead of overwriting the first.
type CSVWriter struct {
	Dir       string
	Separator string

	mu      sync.Mutex
	written map[string]string
}

// NewCSVWriter creates a writer into dir. separator is stripped from target
// labels to build file names.
func NewCSVWriter(dir, separator string) *CSVWriter {
	return &CSVWriter{Dir: dir, Separator: separator}
}

// Path returns the file written for target in the given tree. Files of the
// first tree are named after the target alone; later trees get a ".treeN"
// suffix so multi-tree inputs do not overwrite each other.
func (w *CSVWriter) Path(tree int, target string) string {
	return filepath.Join(w.Dir, w.fileName(tree, target))
}

func (w *CSVWriter) fileName(tree int, target string) string {
	name := target
	if w.Separator != "" {
		name = strings.ReplaceAll(target, w.Separator, "")
	}
	if tree > 0 {
		name = fmt.Sprintf("%s.tree%d", name, tree+1)
	}
	return name + ".csv"
}

// claim checks that target maps to a plain file name inside Dir that no
// other target of this writer has used.
func (w *CSVWriter) claim(tree int, target, path string) error {
	base := target
	if w.Separator != "" {
		base = strings.ReplaceAll(target, w.Separator, "")
	}
	switch {
	case base == "", base == ".", base == "..":
		return &domain.OutputTargetError{Path: path, Err: fmt.Errorf("target %q gives an empty file name", target)}
	case strings.ContainsAny(base, `/\`):
		return &domain.OutputTargetError{Path: path, Err: fmt.Errorf("target %q contains a path separator", target)}
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.written == nil {
		w.written = make(map[string]string)
	}
	key := w.fileName(tree, target)
	if prev, ok := w.written[key]; ok && prev != target {
		return &domain.OutputTargetError{Path: path, Err: fmt.Errorf("targets %q and %q map to the same file", prev, target)}
	}
	w.written[key] = target
	return nil
}

// Write creates the CSV file of one target. The directory is never created:
// a missing directory is reported as a *domain.OutputTargetError.
func (w *CSVWriter) Write(ctx context.Context, tree int, target string, records []domain.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := w.Path(tree, target)
	if err := w.claim(tree, target, path); err != nil {
		return err
	}
	if info, err := os.Stat(w.Dir); err != nil {
		return &domain.OutputTargetError{Path: path, Err: err}
	} else if !info.IsDir() {
		return &domain.OutputTargetError{Path: path, Err: fmt.Errorf("%s is not a directory", w.Dir)}
	}

	f, err := os.Create(path)
	if err != nil {
		return &domain.OutputTargetError{Path: path, Err: err}
	}

	if err := writeRecords(f, records); err != nil {
		_ = f.Close()
		return &domain.OutputTargetError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &domain.OutputTargetError{Path: path, Err: err}
	}
	return nil
}

func writeRecords(f *os.File, records []domain.Record) error {
	cw := csv.NewWriter(f)
	if err := cw.Write(strings.Split(domain.CSVHeader, ",")); err != nil {
		return err
	}
	for _, r := range records {
		c := r.Collapsed()
		if err := cw.Write([]string{c.Other, string(c.Relationship), c.ExtraInfo}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
