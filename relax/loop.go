// File: loop.go
// Role: the Relaxation Loop of spec.md §4.4.
package relax

import (
	"context"

	"github.com/katalvlaran/stnu/core"
	"github.com/katalvlaran/stnu/dc"
	"github.com/katalvlaran/stnu/lp"
	"github.com/rs/zerolog"
)

// Status summarizes how a Run terminated.
type Status int

const (
	// AlreadyDC means the input network was DC before any shrinking.
	AlreadyDC Status = iota
	// Repaired means one or more iterations shrank contingent edges and
	// the result is DC.
	Repaired
	// Irrecoverable means the relaxation LP could not reach Optimal, no
	// contingent edge was implicated in the detected cycle, or
	// maxIterations ran out before the network became DC.
	Irrecoverable
	// Cancelled means ctx was cancelled mid-loop.
	Cancelled
)

func (st Status) String() string {
	switch st {
	case AlreadyDC:
		return "AlreadyDC"
	case Repaired:
		return "Repaired"
	case Irrecoverable:
		return "Irrecoverable"
	default:
		return "Cancelled"
	}
}

// Outcome is the richer four-field result of Run: the termination
// status, the (possibly repaired) network, every conflict lifted across
// all iterations (not just the last), and the iteration count.
type Outcome struct {
	Status     Status
	Network    *core.STNU
	Cycles     []dc.Conflict
	Iterations int
}

// DefaultMaxIterations bounds the loop against a pathological network
// whose LP solutions never drive the cycle weight to zero because of
// floating-point staircasing; spec.md §4.4's termination argument holds
// for exact rational arithmetic, which this float64 implementation only
// approximates.
const DefaultMaxIterations = 1000

// NewSolver constructs a fresh lp.Solver; package lp/gonumsolver supplies
// the reference implementation. A Solver is single-use, so Run calls
// this once per iteration rather than reusing one across the loop.
type NewSolver func() lp.Solver

// Run repeatedly DC-checks s (working on a clone, never mutating the
// caller's network) and, on failure, shrinks the implicated contingent
// edges by the Relaxation LP's solution, per spec.md §4.4:
//  1. DC check; DC -> stop.
//  2. Build & solve the relaxation LP over the lifted contingent edges.
//  3. Non-Optimal -> Irrecoverable.
//  4. Apply ModifyEdge/ModifyEdgeLower per polarity.
//  5. Repeat, bounded by maxIterations.
//
// logger receives per-iteration diagnostics (iteration, cycle_weight)
// and the final iteration count and status; nil defaults to a no-op
// logger.
func Run(ctx context.Context, s *core.STNU, newSolver NewSolver, maxIterations int, logger *zerolog.Logger) Outcome {
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	network := s.Clone()
	var cycles []dc.Conflict

	for iter := 0; iter < maxIterations; iter++ {
		if err := ctx.Err(); err != nil {
			return Outcome{Status: Cancelled, Network: network, Cycles: cycles, Iterations: iter}
		}

		res := dc.Check(network, dc.Options{Ctx: ctx})
		if res.DC {
			status := AlreadyDC
			if iter > 0 {
				status = Repaired
			}
			logger.Debug().Int("iterations", iter).Str("status", status.String()).Msg("relax: loop terminated")
			return Outcome{Status: status, Network: network, Cycles: cycles, Iterations: iter}
		}
		cycles = append(cycles, res.Lifted)
		logger.Debug().Int("iteration", iter).Float64("cycle_weight", res.CycleWeight).Msg("relax: conflict detected")

		targets := liftedToTargets(network, res.Lifted)
		if len(targets) == 0 {
			return Outcome{Status: Irrecoverable, Network: network, Cycles: cycles, Iterations: iter}
		}

		solver := newSolver()
		eps := lp.BuildRelaxation(solver, targets, res.CycleWeight)
		if err := solver.Solve(ctx); err != nil || solver.Status() != lp.Optimal {
			return Outcome{Status: Irrecoverable, Network: network, Cycles: cycles, Iterations: iter}
		}

		for idx, tgt := range targets {
			shrink := solver.Value(eps[idx])
			if shrink <= 0 {
				continue
			}
			applyShrink(network, tgt, shrink)
		}
	}
	return Outcome{Status: Irrecoverable, Network: network, Cycles: cycles, Iterations: maxIterations}
}

// liftedToTargets flattens a Conflict's contingent side into the
// Relaxation LP's target list, looking up each edge's current span so
// BuildRelaxation can bound and normalize its epsilon variable.
func liftedToTargets(s *core.STNU, conflict dc.Conflict) []lp.RelaxationTarget {
	targets := make([]lp.RelaxationTarget, 0, len(conflict.Contingent))
	for ref, pol := range conflict.Contingent {
		e, ok := s.GetEdge(ref.From, ref.To)
		if !ok {
			continue
		}
		targets = append(targets, lp.RelaxationTarget{
			From:     ref.From,
			To:       ref.To,
			Span:     e.Span(),
			Polarity: int(pol),
		})
	}
	return targets
}

// applyShrink implements spec.md §4.4 step 4: UPPER polarity lowers the
// upper bound (Cij -= shrink); LOWER polarity raises the lower bound,
// which in this package's Cij/Cji storage means decreasing Cji.
func applyShrink(s *core.STNU, tgt lp.RelaxationTarget, shrink float64) {
	e, ok := s.GetEdge(tgt.From, tgt.To)
	if !ok {
		return
	}
	if dc.Polarity(tgt.Polarity) == dc.Upper {
		_ = s.ModifyEdge(tgt.From, tgt.To, e.Cij-shrink)
		return
	}
	_ = s.ModifyEdgeLower(tgt.From, tgt.To, e.Cji-shrink)
}
