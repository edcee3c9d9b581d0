// File: simulate.go
// Role: realization sampling and the N-trial simulation driver of
// spec.md §4.5's simulate(network, N).
package dispatch

import (
	"context"
	"math/rand/v2"

	"github.com/katalvlaran/stnu/core"
)

// SampleRealization draws one duration per uncontrollable node
// independently from U[-Cji, Cij] on its incoming contingent edge, per
// spec.md §4.5. rng must be non-nil; callers inject a seeded source so
// simulations are reproducible (spec.md §5 "never rely on process-wide
// random state").
func SampleRealization(s *core.STNU, rng *rand.Rand) Realization {
	real := make(Realization)
	for _, e := range s.ContingentEdges() {
		lo, hi := e.Lower(), e.Upper()
		real[e.To] = lo + rng.Float64()*(hi-lo)
	}
	return real
}

// Simulate repeats Once n times on independent realizations drawn from a
// PCG source seeded by seed, and returns the aggregate success rate.
// Each trial works against a fresh clone of s (spec.md §5 "uses a fresh
// clone of the labeled graph per iteration") so trials never interfere.
func Simulate(ctx context.Context, s *core.STNU, n int, seed uint64, strategy Strategy) Stats {
	rng := rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
	trials := make([]Trial, 0, n)
	for i := 0; i < n; i++ {
		if ctx.Err() != nil {
			break
		}
		trials = append(trials, Once(s.Clone(), SampleRealization(s, rng), Options{Strategy: strategy, Ctx: ctx}))
	}
	return Summarize(trials)
}
