package dc

import "github.com/katalvlaran/stnu/core"

// Polarity records which side of a lifted constraint a conflict edge
// constrains.
type Polarity int

const (
	// Upper marks a constraint whose upper bound participates in the
	// conflict.
	Upper Polarity = iota
	// Lower marks a constraint whose lower bound participates.
	Lower
)

func (p Polarity) String() string {
	if p == Lower {
		return "LOWER"
	}
	return "UPPER"
}

// ConstraintRef identifies an original edge of the STNU by its (From, To)
// orientation as stored in core.STNU.
type ConstraintRef struct {
	From, To int
}

// Conflict partitions the original constraints a detected negative cycle
// implicates, split by requirement/contingent origin, per spec.md §4.2.
type Conflict struct {
	Requirement map[ConstraintRef]Polarity
	Contingent  map[ConstraintRef]Polarity
}

func newConflict() Conflict {
	return Conflict{
		Requirement: make(map[ConstraintRef]Polarity),
		Contingent:  make(map[ConstraintRef]Polarity),
	}
}

// Result is the outcome of Check.
type Result struct {
	DC          bool
	CycleEdges  []*core.NormEdge
	Lifted      Conflict
	CycleWeight float64
}
