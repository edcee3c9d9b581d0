// File: edges.go
// Role: edge lifecycle — AddEdge/UpdateEdge/ModifyEdge/GetEdgeWeight/Edges,
// plus the contingent-sink-uniqueness invariant.
//
// Determinism: Edges()/RequirementEdges()/ContingentEdges() are sorted by
// (From, To) ascending so callers and tests get a stable iteration order.
//
// Concurrency: mutations take muEdgeAdj.Lock(); reads take muEdgeAdj.RLock().
package core

import "sort"

// AddEdge inserts a new edge (i, j) with bounds [lb, ub] (lb may be -Inf,
// ub may be +Inf) of the given type. Both endpoints are added as vertices
// if missing. Requesting a second contingent edge into an already
// uncontrollable node returns ErrDuplicateContingentSink. An empty
// interval (lb > ub) returns ErrEmptyInterval.
func (s *STNU) AddEdge(i, j int, lb, ub float64, typ EdgeType) error {
	if lb > ub {
		return ErrEmptyInterval
	}
	s.AddVertex(i)
	s.AddVertex(j)

	s.muEdgeAdj.Lock()
	defer s.muEdgeAdj.Unlock()

	key := edgeKey{From: i, To: j}
	e := &Edge{From: i, To: j, Cij: ub, Cji: -lb, Type: typ}

	if typ == Contingent {
		if _, exists := s.parent[j]; exists {
			return ErrDuplicateContingentSink
		}
		s.contingent[key] = e
		s.parent[j] = i
		return nil
	}
	s.requirement[key] = e
	return nil
}

// UpdateEdge tightens the stored weight for direction (i, j): it sets
// Cij := min(Cij, w) when a requirement or contingent edge (i,j) is
// stored, or Cji := min(Cji, w) when the edge is stored as (j,i). It
// never loosens a bound. Returns whether the stored weight strictly
// decreased (or, when equality is true, whether w equals the stored
// value).
func (s *STNU) UpdateEdge(i, j int, w float64, equality bool) bool {
	s.muEdgeAdj.Lock()
	defer s.muEdgeAdj.Unlock()

	changed := false
	for _, tbl := range []map[edgeKey]*Edge{s.requirement, s.contingent} {
		if e, ok := tbl[edgeKey{From: i, To: j}]; ok {
			if w < e.Cij {
				e.Cij = w
				changed = true
			} else if equality && w == e.Cij {
				changed = true
			}
		}
		if e, ok := tbl[edgeKey{From: j, To: i}]; ok {
			if w < e.Cji {
				e.Cji = w
				changed = true
			} else if equality && w == e.Cji {
				changed = true
			}
		}
	}
	return changed
}

// ModifyEdge replaces a single stored bound directly, bypassing the
// tighten-only discipline of UpdateEdge. It is used by the relaxation
// loop (spec.md §4.4) to shrink a contingent interval's upper bound by
// lowering Cij. Its counterpart ModifyEdgeLower raises the lower bound
// -Cji (i.e. lowers Cji).
func (s *STNU) ModifyEdge(i, j int, newCij float64) error {
	s.muEdgeAdj.Lock()
	defer s.muEdgeAdj.Unlock()

	key := edgeKey{From: i, To: j}
	if e, ok := s.requirement[key]; ok {
		e.Cij = newCij
		return nil
	}
	if e, ok := s.contingent[key]; ok {
		e.Cij = newCij
		return nil
	}
	return ErrEdgeNotFound
}

// ModifyEdgeLower replaces the stored Cji (negated lower bound) of edge
// (i, j) directly, the counterpart to ModifyEdge for shrinking a
// contingent interval's lower bound (spec.md §4.4 step 4, LOWER
// polarity).
func (s *STNU) ModifyEdgeLower(i, j int, newCji float64) error {
	s.muEdgeAdj.Lock()
	defer s.muEdgeAdj.Unlock()

	key := edgeKey{From: i, To: j}
	if e, ok := s.requirement[key]; ok {
		e.Cji = newCji
		return nil
	}
	if e, ok := s.contingent[key]; ok {
		e.Cji = newCji
		return nil
	}
	return ErrEdgeNotFound
}

// GetEdgeWeight returns Cij when (i,j) is stored, Cji when (j,i) is
// stored, 0 when i==j, and +Inf otherwise. When both a requirement and a
// contingent edge exist between the pair, the tighter (smaller) weight is
// returned.
func (s *STNU) GetEdgeWeight(i, j int) float64 {
	if i == j {
		return 0
	}
	s.muEdgeAdj.RLock()
	defer s.muEdgeAdj.RUnlock()

	best := Inf
	for _, tbl := range []map[edgeKey]*Edge{s.requirement, s.contingent} {
		if e, ok := tbl[edgeKey{From: i, To: j}]; ok && e.Cij < best {
			best = e.Cij
		}
		if e, ok := tbl[edgeKey{From: j, To: i}]; ok && e.Cji < best {
			best = e.Cji
		}
	}
	return best
}

// GetEdge returns the stored edge for ordered pair (i,j), preferring the
// requirement edge if both a requirement and a contingent edge with that
// exact orientation exist (the STNU allows one of each per ordered pair).
func (s *STNU) GetEdge(i, j int) (*Edge, bool) {
	s.muEdgeAdj.RLock()
	defer s.muEdgeAdj.RUnlock()
	key := edgeKey{From: i, To: j}
	if e, ok := s.requirement[key]; ok {
		return e, true
	}
	if e, ok := s.contingent[key]; ok {
		return e, true
	}
	return nil, false
}

// ContingentEdgeInto returns the unique contingent edge whose sink is j,
// if any.
func (s *STNU) ContingentEdgeInto(j int) (*Edge, bool) {
	s.muEdgeAdj.RLock()
	defer s.muEdgeAdj.RUnlock()
	i, ok := s.parent[j]
	if !ok {
		return nil, false
	}
	e, ok := s.contingent[edgeKey{From: i, To: j}]
	return e, ok
}

func sortedEdges(m map[edgeKey]*Edge) []*Edge {
	out := make([]*Edge, 0, len(m))
	for _, e := range m {
		out = append(out, e)
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].From != out[b].From {
			return out[a].From < out[b].From
		}
		return out[a].To < out[b].To
	})
	return out
}

// RequirementEdges returns all requirement edges, sorted by (From, To).
func (s *STNU) RequirementEdges() []*Edge {
	s.muEdgeAdj.RLock()
	defer s.muEdgeAdj.RUnlock()
	return sortedEdges(s.requirement)
}

// ContingentEdges returns all contingent edges, sorted by (From, To).
func (s *STNU) ContingentEdges() []*Edge {
	s.muEdgeAdj.RLock()
	defer s.muEdgeAdj.RUnlock()
	return sortedEdges(s.contingent)
}

// Edges returns every edge (requirement and contingent), sorted by
// (From, To); ties between a requirement and contingent edge sharing an
// orientation put the requirement edge first.
func (s *STNU) Edges() []*Edge {
	s.muEdgeAdj.RLock()
	all := make([]*Edge, 0, len(s.requirement)+len(s.contingent))
	for _, e := range s.requirement {
		all = append(all, e)
	}
	for _, e := range s.contingent {
		all = append(all, e)
	}
	s.muEdgeAdj.RUnlock()

	sort.SliceStable(all, func(a, b int) bool {
		if all[a].From != all[b].From {
			return all[a].From < all[b].From
		}
		if all[a].To != all[b].To {
			return all[a].To < all[b].To
		}
		return all[a].Type < all[b].Type
	})
	return all
}
