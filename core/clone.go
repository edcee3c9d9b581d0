// File: clone.go
// Role: deep-copy by value, per spec.md §5 ("Callers may run independent
// STNU analyses in parallel by cloning the STNU (deep copy by value)").
package core

// Clone returns an independent deep copy of s. The clone shares no
// mutable state with the receiver: mutating one never affects the other.
func (s *STNU) Clone() *STNU {
	s.muVert.RLock()
	s.muEdgeAdj.RLock()
	defer s.muVert.RUnlock()
	defer s.muEdgeAdj.RUnlock()

	out := &STNU{
		verts:       make(map[int]struct{}, len(s.verts)),
		requirement: make(map[edgeKey]*Edge, len(s.requirement)),
		contingent:  make(map[edgeKey]*Edge, len(s.contingent)),
		parent:      make(map[int]int, len(s.parent)),
		makespan:    s.makespan,
		hasMakespan: s.hasMakespan,
	}
	for id := range s.verts {
		out.verts[id] = struct{}{}
	}
	for k, e := range s.requirement {
		ce := *e
		out.requirement[k] = &ce
	}
	for k, e := range s.contingent {
		ce := *e
		out.contingent[k] = &ce
	}
	for k, v := range s.parent {
		out.parent[k] = v
	}
	return out
}
