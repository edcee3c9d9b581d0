package prob

import (
	"github.com/katalvlaran/stnu/core"
	"github.com/katalvlaran/stnu/dc"
)

// ConflictSlack is the per-conflict input to Estimate: the span (Cij+Cji)
// of every contingent edge implicated in the conflict, and the detected
// cycle's weight (spec.md §4.6).
type ConflictSlack struct {
	Lengths    []float64
	CycleWeight float64
}

// FromLifted builds a ConflictSlack from a dc.Conflict and the STNU it
// was lifted against, reading each implicated contingent edge's current
// span.
func FromLifted(s *core.STNU, conflict dc.Conflict, cycleWeight float64) ConflictSlack {
	lengths := make([]float64, 0, len(conflict.Contingent))
	for ref := range conflict.Contingent {
		if e, ok := s.GetEdge(ref.From, ref.To); ok {
			lengths = append(lengths, e.Span())
		}
	}
	return ConflictSlack{Lengths: lengths, CycleWeight: cycleWeight}
}
