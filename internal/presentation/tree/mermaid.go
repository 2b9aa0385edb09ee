package tree

import (
	"fmt"
	"strings"

	"github.com/aretw0/orthology/pkg/domain"
	"github.com/aretw0/orthology/pkg/ports"
)

// Overlay contains extra state to highlight on the graph.
type Overlay struct {
	// Targets are leaf labels to emphasise, usually the CLI targets.
	Targets []string
}

// GenerateMermaid produces a Mermaid flowchart of the tree. Internal nodes
// are shaped by the event inferred there:
// - Speciation: ((Circle))
// - Duplication: {Rhombus}
// - Ambiguous: {{Hexagon}}
// - Leaf or unknown event: [Rectangle]
// events is keyed by postorder node ID and may be nil.
func GenerateMermaid(root ports.Node, events map[int]domain.Event, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	nodes := postorder(root)
	ids := make(map[string]string)

	// Parents before children reads top-down in the generated source.
	for i := len(nodes) - 1; i >= 0; i-- {
		v := nodes[i]
		safeID := fmt.Sprintf("n%d", v.id)

		opener, closer := "[", "]"
		text := v.node.Label()

		if !v.node.IsLeaf() {
			event, known := events[v.id]
			switch {
			case !known:
			case event == domain.EventSpeciation:
				opener, closer = "((", "))"
			case event == domain.EventDuplication:
				opener, closer = "{", "}"
			case event == domain.EventAmbiguous:
				opener, closer = "{{", "}}"
			}
			if known {
				if text == "" {
					text = event.String()
				} else {
					text = fmt.Sprintf("%s <br/> %s", text, event)
				}
			}
		} else {
			ids[text] = safeID
		}
		if text == "" {
			text = " "
		}

		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, escapeLabel(text), closer))
		for _, child := range v.children {
			sb.WriteString(fmt.Sprintf("    %s --> n%d\n", safeID, child))
		}
	}

	if overlay != nil && len(overlay.Targets) > 0 {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for contrast regardless of theme.
		sb.WriteString("    classDef target fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[string]bool)
		for _, label := range overlay.Targets {
			safeID, ok := ids[label]
			if ok && !seen[safeID] {
				seen[safeID] = true
				sb.WriteString(fmt.Sprintf("    class %s target;\n", safeID))
			}
		}
	}

	return sb.String()
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
