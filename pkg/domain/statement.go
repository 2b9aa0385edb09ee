package domain

import (
	"fmt"
	"strings"
)

// StatementKind names the relationship a compact statement asserts.
type StatementKind string

const (
	StatementOrthologous   StatementKind = "ORTHOLOGOUS"
	StatementInParalogous  StatementKind = "IN-PARALOGOUS"
	StatementOutParalogous StatementKind = "OUT-PARALOGOUS"
)

// Relationship returns the pairwise relationship implied for every pair of
// the statement's cross product.
func (k StatementKind) Relationship() Relationship {
	switch k {
	case StatementOrthologous:
		return Orthologous
	case StatementInParalogous:
		return InParalogous
	}
	return OutParalogous
}

// Statement is a node-level relationship between two label groups: every
// pair drawn from Left x Right holds Kind.
type Statement struct {
	Kind   StatementKind `json:"kind"`
	NodeID int           `json:"node_id"`
	Left   []string      `json:"left"`
	Right  []string      `json:"right"`
}

// Pairs returns the size of the statement's cross product.
func (s Statement) Pairs() int {
	return len(s.Left) * len(s.Right)
}

func (s Statement) String() string {
	return fmt.Sprintf("%s: %s <=> %s", s.Kind, strings.Join(s.Left, ","), strings.Join(s.Right, ","))
}
