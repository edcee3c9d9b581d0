// File: strongcontrol.go
// Role: Strong Controllability check, per spec.md §4.1.
package core

// IsStronglyControllable reports whether s is strongly controllable: a
// single fixed schedule of controllable events works under every
// contingent realization. It also returns the reduced STN built to decide
// the question (spec.md §13 supplement — original_source/stn.py's
// isStronglyControllable returns the induced network, not just a bool,
// which is useful for callers inspecting why controllability holds or
// fails).
//
// For every requirement edge (u, v), let (i, ℓi, ui) be the contingent
// bounds feeding u (or (u, 0, 0) if u is controllable), and similarly
// (j, ℓj, uj) for v. The induced requirement between i and j is
// [-Cji + ui - ℓj, Cij + ℓi - uj]. s is strongly controllable iff the
// resulting reduced STN is consistent.
func (s *STNU) IsStronglyControllable() (bool, *STNU, error) {
	reduced := New()
	for _, id := range s.Vertices() {
		reduced.AddVertex(id)
	}

	contingentBounds := func(node int) (source int, lower, upper float64) {
		e, ok := s.ContingentEdgeInto(node)
		if !ok {
			return node, 0, 0
		}
		return e.From, e.Lower(), e.Upper()
	}

	for _, e := range s.RequirementEdges() {
		i, li, ui := contingentBounds(e.From)
		j, lj, uj := contingentBounds(e.To)

		lower := e.Lower() + ui - lj
		upper := e.Upper() + li - uj

		if _, exists := reduced.GetEdge(i, j); exists {
			// Two original requirement edges can induce the same reduced
			// pair; intersect (AND) the induced intervals by tightening.
			reduced.UpdateEdge(i, j, upper, false)
			reduced.UpdateEdge(j, i, -lower, false)
		} else if err := reduced.AddEdge(i, j, lower, upper, Requirement); err != nil {
			return false, nil, err
		}
	}

	consistent := reduced.IsConsistent()
	return consistent, reduced, nil
}
