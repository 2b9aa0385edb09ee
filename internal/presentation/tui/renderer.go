package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/orthology/pkg/domain"
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
func NewRenderer() (func(string) (string, error), error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}, nil
}

// StatementsMarkdown lays compact statements out as a Markdown table.
func StatementsMarkdown(statements []domain.Statement) string {
	var sb strings.Builder
	sb.WriteString("| Node | Relationship | Left | Right |\n")
	sb.WriteString("|---:|---|---|---|\n")
	for _, s := range statements {
		fmt.Fprintf(&sb, "| %d | %s | %s | %s |\n",
			s.NodeID, s.Kind, escapeCell(strings.Join(s.Left, ", ")), escapeCell(strings.Join(s.Right, ", ")))
	}
	return sb.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
