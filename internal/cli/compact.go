package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/orthology/internal/presentation/tui"
	"github.com/aretw0/orthology/pkg/domain"
)

// RunCompact prints one statement per internal node of every tree.
func RunCompact(ctx context.Context, opts Options, streams Streams) error {
	s, err := newSession(opts, streams, domain.LifecycleHooks{})
	if err != nil {
		return err
	}
	trees, err := s.trees(ctx)
	if err != nil {
		return err
	}

	var render func(string) (string, error)
	if s.opts.Pretty && s.opts.Format != "json" {
		if render, err = tui.NewRenderer(); err != nil {
			return err
		}
	}

	enc := json.NewEncoder(streams.Out)
	for i, t := range trees {
		statements, err := s.engine.Compact(ctx, t)
		if err != nil {
			return err
		}

		switch {
		case s.opts.Format == "json":
			if err := enc.Encode(struct {
				Tree       int                `json:"tree"`
				Statements []domain.Statement `json:"statements"`
			}{i, statements}); err != nil {
				return &domain.OutputTargetError{Path: "stdout", Err: err}
			}
		case render != nil:
			md := tui.StatementsMarkdown(statements)
			if len(trees) > 1 {
				md = fmt.Sprintf("## Tree %d\n\n%s", i+1, md)
			}
			text, err := render(md)
			if err != nil {
				return err
			}
			fmt.Fprint(streams.Out, text)
		default:
			if len(trees) > 1 {
				fmt.Fprintf(streams.Out, "[tree %d]\n", i+1)
			}
			writeStatements(streams.Out, statements)
		}
	}
	return nil
}

// FormatStatement renders a statement in the classic console layout,
// e.g. "   ORTHOLOGY RELATIONSHIP: a,b <====> c".
func FormatStatement(st domain.Statement) string {
	name := string(st.Kind)
	if st.Kind == domain.StatementOrthologous {
		name = "ORTHOLOGY"
	}
	return fmt.Sprintf("   %s RELATIONSHIP: %s <====> %s",
		name, strings.Join(st.Left, ","), strings.Join(st.Right, ","))
}

func writeStatements(w io.Writer, statements []domain.Statement) {
	for _, st := range statements {
		fmt.Fprintln(w, FormatStatement(st))
	}
}
