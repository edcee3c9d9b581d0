// File: convert.go
// Role: RawEdge -> core.STNU conversion, per spec.md §6.
package convert

import "github.com/katalvlaran/stnu/core"

const (
	typeControllable          = "controllable"
	typeUncontrollableBounded = "uncontrollable_bounded"
	typeUniform               = "uniform"
)

// eventNamer assigns stable, deterministic integer node ids to event
// names in first-appearance order, reserving 0 for the STNU's zero
// timepoint (no instance event is ever named "0" by convention of the
// source format, but starting external ids at 1 keeps the invariant
// true regardless).
type eventNamer struct {
	ids  map[string]int
	next int
}

func newEventNamer() *eventNamer {
	return &eventNamer{ids: make(map[string]int), next: 1}
}

func (n *eventNamer) id(name string) int {
	if id, ok := n.ids[name]; ok {
		return id
	}
	id := n.next
	n.ids[name] = id
	n.next++
	return id
}

// Convert builds a core.STNU from one instance's edge list.
func Convert(edges []RawEdge, opts Options) (*core.STNU, error) {
	s := core.New()
	names := newEventNamer()

	for _, re := range edges {
		i, j := names.id(re.StartEventName), names.id(re.EndEventName)

		switch re.Type {
		case typeControllable:
			lb, ub, ok := boundedProps(re.Properties)
			if !ok {
				return nil, ErrMalformed
			}
			if err := s.AddEdge(i, j, lb, ub, core.Requirement); err != nil {
				return nil, ErrMalformed
			}

		case typeUncontrollableBounded:
			lb, ub, ok := boundedProps(re.Properties)
			if !ok {
				return nil, ErrMalformed
			}
			if err := s.AddEdge(i, j, lb, ub, core.Contingent); err != nil {
				return nil, ErrMalformed
			}

		case typeUniform:
			lb, ub, ok := boundedProps(re.Properties)
			if !ok {
				return nil, ErrMalformed
			}
			if err := s.AddEdge(i, j, lb, ub, core.Contingent); err != nil {
				return nil, ErrMalformed
			}
			setDist(s, i, j, re.Type, "Uniform")

		default:
			mean, sigma, ok := gaussianProps(re.Properties)
			if !ok {
				return nil, ErrMalformed
			}
			k := opts.sigmaK()
			if err := s.AddEdge(i, j, mean-k*sigma, mean+k*sigma, core.Contingent); err != nil {
				return nil, ErrMalformed
			}
			setDist(s, i, j, re.Type, "Empirical")
		}
	}
	return s, nil
}

func boundedProps(props map[string]float64) (lb, ub float64, ok bool) {
	lb, lbOK := props["lb"]
	ub, ubOK := props["ub"]
	return lb, ub, lbOK && ubOK
}

func gaussianProps(props map[string]float64) (mean, sigma float64, ok bool) {
	mean, meanOK := props["mean"]
	sigma, sigmaOK := props["sigma"]
	return mean, sigma, meanOK && sigmaOK
}

func setDist(s *core.STNU, i, j int, name, kind string) {
	if e, ok := s.GetEdge(i, j); ok {
		e.Dist = &core.Distribution{Name: name, Kind: kind}
	}
}
