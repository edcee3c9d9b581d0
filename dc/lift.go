// File: lift.go
// Role: get_final_result — lifting a detected cycle's edges back to the
// original STNU's requirement/contingent constraints, per spec.md §4.2.
package dc

import "github.com/katalvlaran/stnu/core"

// liftConflict classifies every edge of a detected cycle against the
// labeled graph's NodeKind map (core.NormalGraph.Kind), exactly per
// spec.md §4.2 "Lifting to the original STNU":
//
//   - both endpoints Original: a requirement constraint; UPPER polarity
//     when the edge direction matches the original (From,To) orientation,
//     LOWER otherwise.
//   - one endpoint Aux(i,j,...): a contingent constraint on (i,j); UPPER
//     polarity when the edge is the j->aux labeled step, LOWER when it is
//     the aux->i (or equivalent lower) step.
func liftConflict(s *core.STNU, g *core.NormalGraph, edges []*core.NormEdge) Conflict {
	out := newConflict()

	for _, e := range edges {
		fromKind := g.Kind(e.From)
		toKind := g.Kind(e.To)

		switch {
		case !fromKind.IsAux && !toKind.IsAux:
			ref, pol, ok := liftRequirement(s, fromKind.Orig, toKind.Orig)
			if ok {
				out.Requirement[ref] = pol
			}
		case toKind.IsAux:
			ref := ConstraintRef{From: toKind.ContingentFrom, To: toKind.ContingentTo}
			out.Contingent[ref] = Upper
		case fromKind.IsAux:
			ref := ConstraintRef{From: fromKind.ContingentFrom, To: fromKind.ContingentTo}
			out.Contingent[ref] = Lower
		}
	}
	return out
}

func liftRequirement(s *core.STNU, i, j int) (ConstraintRef, Polarity, bool) {
	if _, ok := s.GetEdge(i, j); ok {
		return ConstraintRef{From: i, To: j}, Upper, true
	}
	if _, ok := s.GetEdge(j, i); ok {
		return ConstraintRef{From: j, To: i}, Lower, true
	}
	return ConstraintRef{}, Upper, false
}
