package tree

import (
	"strings"

	"github.com/aretw0/orthology/pkg/domain"
	"github.com/aretw0/orthology/pkg/ports"
)

// RenderASCII draws the tree top-down with box characters. Internal nodes
// show their label and, when events is not nil, the inferred event.
func RenderASCII(root ports.Node, events map[int]domain.Event) string {
	if root == nil {
		return ""
	}

	nodes := postorder(root)
	var sb strings.Builder

	var draw func(id int, prefix string, last, top bool)
	draw = func(id int, prefix string, last, top bool) {
		v := nodes[id]

		line := v.node.Label()
		if !v.node.IsLeaf() {
			tag := "*"
			if event, ok := events[v.id]; ok {
				tag = event.String()
			}
			if line == "" {
				line = "(" + tag + ")"
			} else {
				line = line + " (" + tag + ")"
			}
		}

		childPrefix := prefix
		if !top {
			connector := "├── "
			childPrefix += "│   "
			if last {
				connector = "└── "
				childPrefix = prefix + "    "
			}
			sb.WriteString(prefix + connector)
		}
		sb.WriteString(line + "\n")

		for i, c := range v.children {
			draw(c, childPrefix, i == len(v.children)-1, false)
		}
	}

	draw(len(nodes)-1, "", true, true)
	return sb.String()
}
