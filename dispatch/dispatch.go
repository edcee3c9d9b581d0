// File: dispatch.go
// Role: the late-dynamic / early-execution dispatch loop of spec.md §4.5.
//
// Wait-edge derivation is simplified relative to the source material's
// full normal-form/aux-vertex machinery: rather than re-deriving labeled
// UPPER edges through auxiliary vertices, dispatch consults the STNU's
// own all-pairs minimal distance matrix (core.STNU.AllPairsDistance,
// which exists specifically for this purpose) to find, for every
// contingent edge (i,j)=[l,u] and every other node k, the minimal path
// weight w = dist[j][k]; this induces the classic wait bound
// k >= schedule[i] + (u - w) while j has not yet executed. This captures
// the same constraint the labeled-graph construction encodes (direct
// neighbors and transitive chains alike, since the distance matrix is
// already transitively closed) without re-walking the aux vertices.
package dispatch

import (
	"context"
	"math"
	"sort"

	"github.com/katalvlaran/stnu/core"
	"github.com/rs/zerolog"
)

// Options configures a dispatch run.
type Options struct {
	Strategy Strategy
	Ctx      context.Context
	// Logger receives a structured event on a dispatch violation. Nil
	// defaults to a no-op logger.
	Logger *zerolog.Logger
}

func (o *Options) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Logger == nil {
		nop := zerolog.Nop()
		o.Logger = &nop
	}
}

type waitConstraint struct {
	K      int
	Sink   int // contingent sink; wait is active while this node hasn't executed
	Source int // contingent source; its schedule time anchors the bound
	Bound  float64
}

// Once runs a single dispatch trial against one realization.
func Once(s *core.STNU, real Realization, opts Options) Trial {
	opts.normalize()
	if err := opts.Ctx.Err(); err != nil {
		return Trial{Success: false, Err: err}
	}
	if !s.IsConsistent() {
		return Trial{Success: false, Err: ErrInconsistentNetwork}
	}

	dist, ids, err := s.AllPairsDistance()
	if err != nil {
		return Trial{Success: false, Err: ErrInconsistentNetwork}
	}
	idx := make(map[int]int, len(ids))
	for i, id := range ids {
		idx[id] = i
	}

	waitsByNode := make(map[int][]waitConstraint)
	edgeFromSource := make(map[int]*core.Edge)
	for _, e := range s.ContingentEdges() {
		edgeFromSource[e.From] = e
		for _, k := range ids {
			if k == e.From || k == e.To {
				continue
			}
			w := dist[idx[e.To]][idx[k]]
			if math.IsInf(w, 1) {
				continue
			}
			waitsByNode[k] = append(waitsByNode[k], waitConstraint{
				K: k, Sink: e.To, Source: e.From, Bound: e.Upper() - w,
			})
		}
	}

	blockingPreds := make(map[int][]int)
	for _, e := range s.RequirementEdges() {
		if e.Cij < 0 {
			blockingPreds[e.From] = append(blockingPreds[e.From], e.To)
		}
		if e.Cji < 0 {
			blockingPreds[e.To] = append(blockingPreds[e.To], e.From)
		}
	}

	executed := make(map[int]bool, len(ids))
	notExecuted := make(map[int]bool, len(ids))
	enabled := make(map[int]bool, len(ids))
	schedule := make(map[int]float64, len(ids))
	windowLo := make(map[int]float64, len(ids))
	windowHi := make(map[int]float64, len(ids))
	for _, id := range ids {
		notExecuted[id] = true
		windowLo[id] = 0
		windowHi[id] = math.Inf(1)
	}
	enabled[core.ZeroTimepoint] = true

	minSlack := math.Inf(1)

	allExecuted := func(nodes []int) bool {
		for _, n := range nodes {
			if !executed[n] {
				return false
			}
		}
		return true
	}

	for len(notExecuted) > 0 {
		var best int
		bestLo := math.Inf(1)
		found := false
		candidates := make([]int, 0, len(enabled))
		for id := range enabled {
			if notExecuted[id] {
				candidates = append(candidates, id)
			}
		}
		sort.Ints(candidates)

		for _, e := range candidates {
			lo := windowLo[e]
			if opts.Strategy == Late && !s.IsUncontrollable(e) {
				for _, w := range waitsByNode[e] {
					if !executed[w.Sink] && executed[w.Source] {
						if cand := schedule[w.Source] + w.Bound; cand > lo {
							lo = cand
						}
					}
				}
			}
			if !found || lo < bestLo {
				bestLo, best, found = lo, e, true
			}
		}
		if !found {
			// enabled is empty but notExecuted isn't: the network
			// cannot progress. Treat as a violation rather than
			// looping forever.
			opts.Logger.Debug().Msg("dispatch: no enabled event remains with nodes still unexecuted")
			return Trial{Success: false, Schedule: schedule, Err: ErrDispatchViolation}
		}

		now := bestLo
		schedule[best] = now

		for _, e := range s.Edges() {
			var diff float64
			switch {
			case e.From == best && executed[e.To]:
				diff = schedule[e.To] - now
			case e.To == best && executed[e.From]:
				diff = now - schedule[e.From]
			default:
				continue
			}
			if diff > e.Cij+Epsilon || diff < -e.Cji-Epsilon {
				opts.Logger.Debug().Int("node", best).Float64("diff", diff).Msg("dispatch: requirement edge violated")
				return Trial{Success: false, Schedule: schedule, Err: ErrDispatchViolation}
			}
			if m := e.Cij - diff; m < minSlack {
				minSlack = m
			}
			if m := diff + e.Cji; m < minSlack {
				minSlack = m
			}
		}

		if ce, ok := edgeFromSource[best]; ok {
			sink := ce.To
			delay := real[sink]
			windowLo[sink] = now + delay
			windowHi[sink] = now + delay
			enabled[sink] = true
		}

		executed[best] = true
		delete(enabled, best)
		delete(notExecuted, best)

		for _, e := range s.Edges() {
			if e.From == best {
				if cand := now + e.Cij; cand < windowHi[e.To] {
					windowHi[e.To] = cand
				}
				if cand := now - e.Cji; cand > windowLo[e.To] {
					windowLo[e.To] = cand
				}
			}
			if e.To == best {
				if cand := now + e.Cji; cand < windowHi[e.From] {
					windowHi[e.From] = cand
				}
				if cand := now - e.Cij; cand > windowLo[e.From] {
					windowLo[e.From] = cand
				}
			}
		}

		for _, id := range ids {
			if executed[id] || enabled[id] || s.IsUncontrollable(id) {
				continue
			}
			if allExecuted(blockingPreds[id]) {
				enabled[id] = true
			}
		}
	}

	if math.IsInf(minSlack, 1) {
		minSlack = 0
	}
	return Trial{Success: true, Schedule: schedule, Slack: minSlack, Err: nil}
}
