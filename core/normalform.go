// File: normalform.go
// Role: labeled (normal-form) distance graph construction, per spec.md §3
// and §9's NodeKind sum-type design note.
//
// Normalize never mutates its input STNU; it is a pure, derived view
// consumed once per DC check and never persisted (spec.md §3 "Lifecycle").
package core

import "sort"

// LabelType distinguishes an ordinary (ungenerated) edge in the labeled
// graph from one of the two wait-constraint labels.
type LabelType int

const (
	// Normal edges carry no wait-constraint label.
	Normal LabelType = iota
	// Lower labels a "lower-case" edge: a wait that resolves once its
	// parent contingent has actually executed.
	Lower
	// Upper labels an "upper-case" edge: a wait that resolves as soon as
	// its parent contingent link is known to be live (time-to-wait bound).
	Upper
)

// NormEdge is one directed edge of the labeled distance graph.
//
// Parent identifies the contingent sink this label is attached to
// (meaningful only when Label != Normal); it is -1 for unlabeled edges.
type NormEdge struct {
	From, To int
	Weight   float64
	Label    LabelType
	Parent   int
}

// NodeKind is the sum type from spec.md §9: a node of the labeled graph
// is either an Original STNU vertex or an Aux vertex inserted to split a
// contingent edge with a strictly positive lower bound. Consulting Kind
// instead of a raw integer map prevents confusing an aux id for an
// original one when lifting conflicts back (dc.liftConflict).
type NodeKind struct {
	IsAux bool
	Orig  int // valid iff !IsAux

	// The following are valid iff IsAux: the aux vertex splits contingent
	// edge (ContingentFrom, ContingentTo) with bounds [L, U].
	ContingentFrom, ContingentTo int
	L, U                         float64
}

// NormalGraph is the derived labeled distance graph of an STNU.
type NormalGraph struct {
	nodes   []int // all node ids (original + aux), sorted ascending
	kinds   map[int]NodeKind
	incoming map[int][]*NormEdge // edges indexed by their To endpoint
}

// Nodes returns every node id in the labeled graph, sorted ascending.
func (g *NormalGraph) Nodes() []int { return g.nodes }

// Kind returns the NodeKind of node id.
func (g *NormalGraph) Kind(id int) NodeKind { return g.kinds[id] }

// Incoming returns the edges whose To endpoint is id, in insertion order.
func (g *NormalGraph) Incoming(id int) []*NormEdge { return g.incoming[id] }

// AddNovelEdge records a shortcut edge discovered during DC traversal
// (spec.md §4.2 step 5). Novel edges are always Normal/unlabeled.
func (g *NormalGraph) AddNovelEdge(from, to int, weight float64) *NormEdge {
	e := &NormEdge{From: from, To: to, Weight: weight, Label: Normal, Parent: -1}
	g.incoming[to] = append(g.incoming[to], e)
	return e
}

// Normalize derives the labeled distance graph of s without mutating s.
func (s *STNU) Normalize() *NormalGraph {
	g := &NormalGraph{
		kinds:    make(map[int]NodeKind),
		incoming: make(map[int][]*NormEdge),
	}
	for _, id := range s.Vertices() {
		g.kinds[id] = NodeKind{Orig: id}
	}

	auxSeq := -1
	nextAux := func() int {
		id := auxSeq
		auxSeq--
		return id
	}

	add := func(from, to int, w float64, label LabelType, parent int) {
		e := &NormEdge{From: from, To: to, Weight: w, Label: label, Parent: parent}
		g.incoming[to] = append(g.incoming[to], e)
	}

	for _, e := range s.RequirementEdges() {
		add(e.From, e.To, e.Cij, Normal, -1)
		add(e.To, e.From, e.Cji, Normal, -1)
	}

	for _, e := range s.ContingentEdges() {
		l, u := e.Lower(), e.Upper()
		i, j := e.From, e.To

		if l > 0 {
			v := nextAux()
			g.kinds[v] = NodeKind{IsAux: true, ContingentFrom: i, ContingentTo: j, L: l, U: u}

			add(i, v, -l, Normal, -1)
			add(v, i, l, Normal, -1)
			add(v, j, u-l, Normal, -1)
			add(j, v, 0, Normal, -1)

			add(v, j, 0, Lower, j)
			add(j, v, -(u - l), Upper, j)
		} else {
			// ℓ == 0: skip the auxiliary vertex and attach the labels
			// directly to the original i->j / j->i edges (spec.md §3).
			add(i, j, e.Cij, Normal, -1)
			add(j, i, e.Cji, Normal, -1)

			add(i, j, e.Cij, Lower, j)
			add(j, i, e.Cji, Upper, j)
		}
	}

	nodeSet := make(map[int]struct{}, len(g.kinds))
	for id := range g.kinds {
		nodeSet[id] = struct{}{}
	}
	g.nodes = make([]int, 0, len(nodeSet))
	for id := range nodeSet {
		g.nodes = append(g.nodes, id)
	}
	sort.Ints(g.nodes)

	return g
}
