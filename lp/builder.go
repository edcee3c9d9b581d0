// File: builder.go
// Role: the shared LP skeleton and the six controllability-LP variants of
// spec.md §4.3.
package lp

import (
	"math"

	"github.com/katalvlaran/stnu/core"
)

// Ref identifies a contingent edge by its (From, To) orientation, mirroring
// core's internal edge key without exposing it.
type Ref struct{ From, To int }

// Mode selects whether the skeleton builds the Strong-Controllability
// ("Super") shrink-away-from-the-edges formulation or the Weak/Dynamic
// ("Sub") shrink-toward-the-edges formulation (spec.md §4.3).
type Mode int

const (
	Super Mode = iota
	Sub
)

// ObjectiveVariant selects one of the six shared objective shapes over a
// Mode's contingent-shrink variables (spec.md §4.3).
type ObjectiveVariant int

const (
	Naive ObjectiveVariant = iota
	Normalized
	UniformStep
	Proportion
	MaxMin
	MinMax
)

// Skeleton is the set of variables the shared scaffolding of spec.md
// §4.3 registers: per-vertex t+/t-, and per-contingent-edge shrink
// variables (whose exact shape depends on ObjectiveVariant).
type Skeleton struct {
	TPlus, TMinus map[int]VarID
	EpsPlus       map[Ref]VarID
	EpsMinus      map[Ref]VarID
	// Shared is populated instead of EpsPlus/EpsMinus for UniformStep
	// (one epsilon shared by every contingent edge).
	Shared VarID
	hasShared bool
	// Delta is populated for Proportion; Z for MaxMin/MinMax.
	Delta, Z VarID
	hasDelta, hasZ bool
}

func clamp(x float64) float64 {
	if math.IsInf(x, 1) {
		return MaxFloat
	}
	if math.IsInf(x, -1) {
		return -MaxFloat
	}
	return x
}

func cz(s *core.STNU, v int) float64 {
	if h, ok := s.Makespan(); ok {
		return h
	}
	return MaxFloat
}

// buildSkeleton registers t+_i/t-_i for every vertex (pinning the zero
// timepoint to 0) and, per mode, the equality constraints tying each
// contingent edge's endpoints to its shrink variables, per spec.md §4.3:
//
//	Super: t+_j - t+_i = Cij + eps+_j ;  t-_j - t-_i = -Cji - eps-_j
//	Sub:   t+_j - t+_i = Cij - eps+_j ;  t-_j - t-_i = -Cji + eps-_j
//
// with, for Super, eps-_j capped at the edge's lower bound so that
// -Cji - eps-_j >= 0, and the requirement-edge inequalities t+_j - t-_i <= Cij,
// t+_i - t-_j <= Cji for every requirement edge.
func buildSkeleton(s *core.STNU, solver Solver, mode Mode, epsUpper float64) *Skeleton {
	sk := &Skeleton{
		TPlus:    make(map[int]VarID),
		TMinus:   make(map[int]VarID),
		EpsPlus:  make(map[Ref]VarID),
		EpsMinus: make(map[Ref]VarID),
	}

	for _, v := range s.Vertices() {
		bound := clamp(cz(s, v))
		sk.TPlus[v] = solver.NewVar(0, bound)
		sk.TMinus[v] = solver.NewVar(-bound, bound)
	}
	zero := sk.TPlus[core.ZeroTimepoint]
	zeroM := sk.TMinus[core.ZeroTimepoint]
	solver.AddConstraint(map[VarID]float64{zero: 1}, EQ, 0)
	solver.AddConstraint(map[VarID]float64{zeroM: 1}, EQ, 0)

	for _, e := range s.ContingentEdges() {
		ref := Ref{From: e.From, To: e.To}
		ep := solver.NewVar(0, epsUpper)
		emUpper := epsUpper
		if mode == Super && e.Lower() < emUpper {
			emUpper = e.Lower()
		}
		em := solver.NewVar(0, emUpper)
		sk.EpsPlus[ref] = ep
		sk.EpsMinus[ref] = em

		tpI, tpJ := sk.TPlus[e.From], sk.TPlus[e.To]
		tmI, tmJ := sk.TMinus[e.From], sk.TMinus[e.To]

		if mode == Super {
			// t+_j - t+_i - eps+_j = Cij
			solver.AddConstraint(map[VarID]float64{tpJ: 1, tpI: -1, ep: -1}, EQ, e.Cij)
			// t-_j - t-_i + eps-_j = -Cji
			solver.AddConstraint(map[VarID]float64{tmJ: 1, tmI: -1, em: 1}, EQ, -e.Cji)
		} else {
			// t+_j - t+_i + eps+_j = Cij
			solver.AddConstraint(map[VarID]float64{tpJ: 1, tpI: -1, ep: 1}, EQ, e.Cij)
			// t-_j - t-_i - eps-_j = -Cji
			solver.AddConstraint(map[VarID]float64{tmJ: 1, tmI: -1, em: -1}, EQ, -e.Cji)
		}
	}

	for _, e := range s.RequirementEdges() {
		tpJ, tmI := sk.TPlus[e.To], sk.TMinus[e.From]
		tpI, tmJ := sk.TPlus[e.From], sk.TMinus[e.To]
		solver.AddConstraint(map[VarID]float64{tpJ: 1, tmI: -1}, LE, e.Cij)
		solver.AddConstraint(map[VarID]float64{tpI: 1, tmJ: -1}, LE, e.Cji)
	}

	return sk
}

// BuildSuperInterval constructs the Strong-Controllability LP: maximize
// the guaranteed super-interval volume by maximizing the sum of
// eps+_j + eps-_j over every contingent edge (the Naive objective of
// spec.md §4.3; Normalized divides each term by the edge's span).
func BuildSuperInterval(s *core.STNU, solver Solver, variant ObjectiveVariant) *Skeleton {
	sk := buildSkeleton(s, solver, Super, MaxFloat)
	obj := make(map[VarID]float64)
	for ref, ep := range sk.EpsPlus {
		em := sk.EpsMinus[ref]
		w := 1.0
		if variant == Normalized {
			span := spanOf(s, ref)
			if span > 0 {
				w = 1.0 / span
			}
		}
		obj[ep] += w
		obj[em] += w
	}
	solver.SetObjective(obj, Maximize)
	return sk
}

// BuildMaxSubinterval constructs the DC-shrinkage LP: minimize the total
// shrink needed, mirroring BuildSuperInterval's objective shapes under the
// Sub equality signs.
func BuildMaxSubinterval(s *core.STNU, solver Solver, variant ObjectiveVariant) *Skeleton {
	sk := buildSkeleton(s, solver, Sub, MaxFloat)
	obj := make(map[VarID]float64)
	for ref, ep := range sk.EpsPlus {
		em := sk.EpsMinus[ref]
		w := 1.0
		if variant == Normalized {
			span := spanOf(s, ref)
			if span > 0 {
				w = 1.0 / span
			}
		}
		obj[ep] += w
		obj[em] += w
	}
	solver.SetObjective(obj, Minimize)
	return sk
}

// BuildUniformStep constructs the shared-epsilon variant: a single
// eps >= 0 substitutes for every contingent edge's eps+/eps-, bounded
// above by min(span)/2 for Sub or min(lower bound) for Super.
func BuildUniformStep(s *core.STNU, solver Solver, mode Mode) *Skeleton {
	bound := MaxFloat
	for _, e := range s.ContingentEdges() {
		if mode == Sub {
			if half := e.Span() / 2; half < bound {
				bound = half
			}
		} else if e.Lower() < bound {
			bound = e.Lower()
		}
	}
	sk := buildSkeletonSharedEps(s, solver, mode, bound)
	obj := map[VarID]float64{sk.Shared: 1}
	sense := Minimize
	if mode == Super {
		sense = Maximize
	}
	solver.SetObjective(obj, sense)
	return sk
}

// buildSkeletonSharedEps is buildSkeleton specialized to a single shared
// epsilon variable substituted for every eps+_j/eps-_j.
func buildSkeletonSharedEps(s *core.STNU, solver Solver, mode Mode, bound float64) *Skeleton {
	sk := &Skeleton{
		TPlus: make(map[int]VarID), TMinus: make(map[int]VarID),
		EpsPlus: make(map[Ref]VarID), EpsMinus: make(map[Ref]VarID),
	}
	for _, v := range s.Vertices() {
		b := clamp(cz(s, v))
		sk.TPlus[v] = solver.NewVar(0, b)
		sk.TMinus[v] = solver.NewVar(-b, b)
	}
	zero, zeroM := sk.TPlus[core.ZeroTimepoint], sk.TMinus[core.ZeroTimepoint]
	solver.AddConstraint(map[VarID]float64{zero: 1}, EQ, 0)
	solver.AddConstraint(map[VarID]float64{zeroM: 1}, EQ, 0)

	sk.Shared = solver.NewVar(0, bound)
	sk.hasShared = true

	for _, e := range s.ContingentEdges() {
		ref := Ref{From: e.From, To: e.To}
		sk.EpsPlus[ref] = sk.Shared
		sk.EpsMinus[ref] = sk.Shared

		tpI, tpJ := sk.TPlus[e.From], sk.TPlus[e.To]
		tmI, tmJ := sk.TMinus[e.From], sk.TMinus[e.To]
		if mode == Super {
			solver.AddConstraint(map[VarID]float64{tpJ: 1, tpI: -1, sk.Shared: -1}, EQ, e.Cij)
			solver.AddConstraint(map[VarID]float64{tmJ: 1, tmI: -1, sk.Shared: 1}, EQ, -e.Cji)
		} else {
			solver.AddConstraint(map[VarID]float64{tpJ: 1, tpI: -1, sk.Shared: 1}, EQ, e.Cij)
			solver.AddConstraint(map[VarID]float64{tmJ: 1, tmI: -1, sk.Shared: -1}, EQ, -e.Cji)
		}
	}
	for _, e := range s.RequirementEdges() {
		tpJ, tmI := sk.TPlus[e.To], sk.TMinus[e.From]
		tpI, tmJ := sk.TPlus[e.From], sk.TMinus[e.To]
		solver.AddConstraint(map[VarID]float64{tpJ: 1, tmI: -1}, LE, e.Cij)
		solver.AddConstraint(map[VarID]float64{tpI: 1, tmJ: -1}, LE, e.Cji)
	}
	return sk
}

// BuildProportion constructs the single-scalar-delta variant: every
// contingent edge shrinks by delta*(span); minimize delta.
func BuildProportion(s *core.STNU, solver Solver) *Skeleton {
	sk := buildSkeleton(s, solver, Sub, MaxFloat)
	delta := solver.NewVar(0, 1)
	sk.Delta = delta
	sk.hasDelta = true
	for _, e := range s.ContingentEdges() {
		ref := Ref{From: e.From, To: e.To}
		ep, em := sk.EpsPlus[ref], sk.EpsMinus[ref]
		solver.AddConstraint(map[VarID]float64{ep: 1, em: 1, delta: -e.Span()}, EQ, 0)
	}
	solver.SetObjective(map[VarID]float64{delta: 1}, Minimize)
	return sk
}

// BuildMaxMin constructs the max-min variant: z <= span - eps+_j - eps-_j
// for every contingent edge; maximize z.
func BuildMaxMin(s *core.STNU, solver Solver) *Skeleton {
	sk := buildSkeleton(s, solver, Sub, MaxFloat)
	z := solver.NewVar(0, MaxFloat)
	sk.Z = z
	sk.hasZ = true
	for _, e := range s.ContingentEdges() {
		ref := Ref{From: e.From, To: e.To}
		ep, em := sk.EpsPlus[ref], sk.EpsMinus[ref]
		solver.AddConstraint(map[VarID]float64{z: 1, ep: 1, em: 1}, LE, e.Span())
	}
	solver.SetObjective(map[VarID]float64{z: 1}, Maximize)
	return sk
}

// BuildMinMax constructs the min-max variant: z >= eps+_j + eps-_j for
// every contingent edge; minimize z.
func BuildMinMax(s *core.STNU, solver Solver) *Skeleton {
	sk := buildSkeleton(s, solver, Sub, MaxFloat)
	z := solver.NewVar(0, MaxFloat)
	sk.Z = z
	sk.hasZ = true
	for _, e := range s.ContingentEdges() {
		ref := Ref{From: e.From, To: e.To}
		ep, em := sk.EpsPlus[ref], sk.EpsMinus[ref]
		solver.AddConstraint(map[VarID]float64{z: 1, ep: -1, em: -1}, GE, 0)
	}
	solver.SetObjective(map[VarID]float64{z: 1}, Minimize)
	return sk
}

func spanOf(s *core.STNU, ref Ref) float64 {
	if e, ok := s.GetEdge(ref.From, ref.To); ok {
		return e.Span()
	}
	return 0
}

// RelaxationTarget is one lifted contingent edge the Relaxation LP of
// spec.md §4.3/§4.4 shrinks, carrying its polarity so package relax can
// apply the solved epsilon back with ModifyEdge.
type RelaxationTarget struct {
	From, To int
	Span     float64
	Polarity int // dc.Upper or dc.Lower, kept as a bare int to avoid an lp->dc import
}

// BuildRelaxation constructs the LP of spec.md §4.3's "Relaxation LP":
// one eps_j in [0, span_j] per lifted contingent edge, constrained so
// their sum offsets at least -cycleWeight, minimizing the normalized
// total shrink. Normalized is used rather than Proportion because the
// relaxation loop (spec.md §4.4) must shrink exactly the implicated
// edges, not every contingent edge in the network.
func BuildRelaxation(solver Solver, targets []RelaxationTarget, cycleWeight float64) map[int]VarID {
	eps := make(map[int]VarID, len(targets))
	sumCoeffs := make(map[VarID]float64, len(targets))
	objCoeffs := make(map[VarID]float64, len(targets))

	for idx, tgt := range targets {
		v := solver.NewVar(0, tgt.Span)
		eps[idx] = v
		sumCoeffs[v] = 1
		w := 1.0
		if tgt.Span > 0 {
			w = 1.0 / tgt.Span
		}
		objCoeffs[v] = w
	}
	solver.AddConstraint(sumCoeffs, GE, -cycleWeight)
	solver.SetObjective(objCoeffs, Minimize)
	return eps
}
