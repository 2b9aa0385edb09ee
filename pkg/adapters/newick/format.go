package newick

import (
	"strings"

	"github.com/aretw0/orthology/pkg/ports"
)

// special lists the characters that force a label to be quoted.
const special = " \t\n\r()[]':;,"

// Format writes root as one Newick tree terminated by ';'.
func Format(root ports.Node) string {
	var sb strings.Builder
	write(&sb, root)
	sb.WriteByte(terminal)
	return sb.String()
}

func write(sb *strings.Builder, n ports.Node) {
	if children := n.Children(); len(children) > 0 {
		sb.WriteByte('(')
		for i, c := range children {
			if i > 0 {
				sb.WriteByte(',')
			}
			write(sb, c)
		}
		sb.WriteByte(')')
	}
	sb.WriteString(quoteLabel(n.Label()))
}

func quoteLabel(label string) string {
	if !strings.ContainsAny(label, special) {
		return label
	}
	return string(quote) + strings.ReplaceAll(label, "'", "''") + string(quote)
}
