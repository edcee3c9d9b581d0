// File: codec.go
// Role: Export/Import between core.STNU and the wire Document, per
// spec.md §6.
package stnujson

import (
	"github.com/goccy/go-json"
	"github.com/katalvlaran/stnu/core"
)

// Export serializes s to the STNU JSON wire format. Node 0 is omitted
// per spec.md §6 ("Node 0 is implicit origin and MUST be omitted").
func Export(s *core.STNU) ([]byte, error) {
	doc := Document{}
	for _, id := range s.Vertices() {
		if id == core.ZeroTimepoint {
			continue
		}
		maxD := s.GetEdgeWeight(core.ZeroTimepoint, id)
		minD := -s.GetEdgeWeight(id, core.ZeroTimepoint)
		doc.Nodes = append(doc.Nodes, Node{NodeID: id, MinDomain: Bound(minD), MaxDomain: Bound(maxD)})
	}

	for _, e := range s.Edges() {
		typ := STC
		var dist *Distribution
		if e.Type == core.Contingent {
			typ = STCU
			if e.Dist != nil {
				typ = PSTC
				dist = &Distribution{Name: e.Dist.Name, Type: e.Dist.Kind}
			}
		}
		doc.Constraints = append(doc.Constraints, Constraint{
			FirstNode:    e.From,
			SecondNode:   e.To,
			Type:         typ,
			MinDuration:  Bound(e.Lower()),
			MaxDuration:  Bound(e.Upper()),
			Distribution: dist,
		})
	}
	return json.Marshal(doc)
}

// Import parses the STNU JSON wire format into a fresh core.STNU,
// rejecting schema violations and contingent-sink-uniqueness breaks with
// ErrMalformed (spec.md §7 "MalformedInput").
func Import(data []byte) (*core.STNU, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, ErrMalformed
	}

	s := core.New()
	for _, n := range doc.Nodes {
		s.AddVertex(n.NodeID)
	}
	for _, c := range doc.Constraints {
		typ := core.Requirement
		if c.Type == STCU || c.Type == PSTC {
			typ = core.Contingent
		}
		if err := s.AddEdge(c.FirstNode, c.SecondNode, float64(c.MinDuration), float64(c.MaxDuration), typ); err != nil {
			return nil, ErrMalformed
		}
		if typ == core.Contingent && c.Distribution != nil {
			if e, ok := s.GetEdge(c.FirstNode, c.SecondNode); ok {
				e.Dist = &core.Distribution{Name: c.Distribution.Name, Kind: c.Distribution.Type}
			}
		}
	}
	return s, nil
}
