package tui

import (
	"io"

	"github.com/aretw0/orthology/pkg/domain"
	"github.com/muesli/termenv"
)

var relationshipColors = map[domain.Relationship]string{
	domain.Orthologous:   "#22c55e",
	domain.InParalogous:  "#3b82f6",
	domain.OutParalogous: "#a855f7",
	domain.Paralogous:    "#6366f1",
	domain.Ambiguous:     "#f59e0b",
}

// Palette colours relationship names for one output stream. With the Ascii
// profile (pipes, tests, NO_COLOR) text is returned unchanged.
type Palette struct {
	out *termenv.Output
}

// NewPalette detects the colour support of w.
func NewPalette(w io.Writer, opts ...termenv.OutputOption) *Palette {
	return &Palette{out: termenv.NewOutput(w, opts...)}
}

// Plain returns a palette that never emits escape codes.
func Plain(w io.Writer) *Palette {
	return NewPalette(w, termenv.WithProfile(termenv.Ascii))
}

// Colorize renders rel in its colour.
func (p *Palette) Colorize(rel domain.Relationship) string {
	hex, ok := relationshipColors[rel]
	if !ok {
		return rel.String()
	}
	return p.out.String(rel.String()).Foreground(p.out.Color(hex)).String()
}

// Bold renders s in bold.
func (p *Palette) Bold(s string) string {
	return p.out.String(s).Bold().String()
}
