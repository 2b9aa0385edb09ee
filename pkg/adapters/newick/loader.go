package newick

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/orthology/pkg/domain"
	"github.com/aretw0/orthology/pkg/ports"
	gonewick "github.com/evolbioinfo/gotree/io/newick"
)

// Loader implements ports.TreeLoader for Newick text.
type Loader struct{}

// NewLoader creates a Newick loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads every tree in r, in input order.
func (l *Loader) Load(ctx context.Context, r io.Reader) ([]ports.Node, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, &domain.MalformedInputError{Err: fmt.Errorf("read input: %w", err)}
	}
	return l.parse(ctx, string(raw))
}

// Parse is a convenience for loading trees from a string.
func Parse(input string) ([]ports.Node, error) {
	return NewLoader().parse(context.Background(), input)
}

func (l *Loader) parse(ctx context.Context, input string) ([]ports.Node, error) {
	chunks := Split(input)
	if len(chunks) == 0 {
		return nil, &domain.MalformedInputError{Err: errors.New("no tree found")}
	}

	trees := make([]ports.Node, 0, len(chunks))
	for i, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		source := fmt.Sprintf("tree %d", i+1)

		if !strings.HasSuffix(chunk, ";") {
			return nil, &domain.MalformedInputError{Source: source, Err: errors.New("missing terminal ';'")}
		}

		masked, labels, err := maskQuoted(chunk)
		if err != nil {
			return nil, &domain.MalformedInputError{Source: source, Err: err}
		}
		t, err := gonewick.NewParser(strings.NewReader(masked)).Parse()
		if err != nil {
			return nil, &domain.MalformedInputError{Source: source, Err: err}
		}
		root := t.Root()
		if root == nil {
			return nil, &domain.MalformedInputError{Source: source, Err: errors.New("tree has no root")}
		}
		trees = append(trees, convert(root, nil, labels))
	}
	return trees, nil
}
