package stnujson

import (
	"math"
	"strconv"
	"strings"
)

// Bound marshals a float64 as a plain number, except +/-Inf which encode
// as the "inf"/"-inf" string sentinels spec.md §6 specifies.
type Bound float64

func (b Bound) MarshalJSON() ([]byte, error) {
	f := float64(b)
	if math.IsInf(f, 1) {
		return []byte(`"inf"`), nil
	}
	if math.IsInf(f, -1) {
		return []byte(`"-inf"`), nil
	}
	return []byte(strconv.FormatFloat(f, 'g', -1, 64)), nil
}

func (b *Bound) UnmarshalJSON(data []byte) error {
	trimmed := strings.Trim(string(data), `"`)
	switch trimmed {
	case "inf":
		*b = Bound(math.Inf(1))
		return nil
	case "-inf":
		*b = Bound(math.Inf(-1))
		return nil
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return ErrMalformed
	}
	*b = Bound(f)
	return nil
}

// Node is one entry of the wire schema's "nodes" array. Node 0 is the
// implicit origin and must never appear here (spec.md §6).
type Node struct {
	NodeID    int   `json:"node_id"`
	MinDomain Bound `json:"min_domain"`
	MaxDomain Bound `json:"max_domain"`
}

// Distribution is the optional named sampling descriptor of a contingent
// constraint.
type Distribution struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// ConstraintType is the wire-level edge kind: "stc" (requirement), or
// "stcu"/"pstc" (contingent, with or without a named distribution).
type ConstraintType string

const (
	STC  ConstraintType = "stc"
	STCU ConstraintType = "stcu"
	PSTC ConstraintType = "pstc"
)

// Constraint is one entry of the wire schema's "constraints" array.
type Constraint struct {
	FirstNode    int            `json:"first_node"`
	SecondNode   int            `json:"second_node"`
	Type         ConstraintType `json:"type"`
	MinDuration  Bound          `json:"min_duration"`
	MaxDuration  Bound          `json:"max_duration"`
	Distribution *Distribution  `json:"distribution,omitempty"`
}

// Document is the full wire shape of spec.md §6.
type Document struct {
	Nodes       []Node       `json:"nodes"`
	Constraints []Constraint `json:"constraints"`
}
