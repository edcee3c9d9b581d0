package dispatch

import "errors"

// Epsilon is the fixed floating-point tolerance spec.md §7 mandates for
// dispatch window comparisons.
const Epsilon = 1e-3

// ErrDispatchViolation is the error kind spec.md §7 names for a scheduled
// event breaking a requirement edge. A trial returning it is a normal,
// expected simulation outcome (a false trial), never a process abort.
var ErrDispatchViolation = errors.New("dispatch: scheduled event violates a requirement edge")

// ErrInconsistentNetwork is reported in Trial.Err by Once when the network
// fails IsConsistent, before any event is scheduled (spec.md §8 scenario
// 5: "dispatch is not attempted" against an inconsistent network).
var ErrInconsistentNetwork = errors.New("dispatch: network is not consistent")

// Strategy selects the controllable-event scheduling policy of spec.md
// §4.5.
type Strategy int

const (
	// Late is the default: controllable events are scheduled as late as
	// their active waits and windows allow.
	Late Strategy = iota
	// Early schedules controllable events at their minimal lower bound,
	// tightening but never relaxing other events' earliest times. Kept
	// behind this flag per spec.md §9's "experimental" caveat.
	Early
)

// Realization is a sampled duration for every uncontrollable node, keyed
// by the node id (the contingent edge's sink).
type Realization map[int]float64

// Trial is the outcome of one dispatch run.
type Trial struct {
	Success  bool
	Schedule map[int]float64
	// Slack is the minimal observed margin, over every edge (requirement
	// or contingent) whose endpoints were both scheduled, between the
	// scheduled difference and its nearer bound; only meaningful when
	// Success is true.
	Slack float64
	// Err is non-nil iff !Success: ErrDispatchViolation,
	// ErrInconsistentNetwork, or the context's error.
	Err error
}

// Stats summarizes N independent trials (spec.md §4.5 simulate driver).
type Stats struct {
	Trials      int
	Successes   int
	SuccessRate float64
	// MeanSlack is the average, over successful trials only, of each
	// trial's minimal edge slack (spec.md §13 supplement,
	// mirroring original_source/result_stats.py's aggregate reporting).
	MeanSlack float64
}

// Summarize aggregates a slice of Trial records into Stats, independent
// of how they were produced (Simulate calls it internally; callers
// driving Once themselves can reuse it too).
func Summarize(trials []Trial) Stats {
	stats := Stats{Trials: len(trials)}
	var slackTotal float64
	for _, t := range trials {
		if !t.Success {
			continue
		}
		stats.Successes++
		slackTotal += t.Slack
	}
	if stats.Trials > 0 {
		stats.SuccessRate = float64(stats.Successes) / float64(stats.Trials)
	}
	if stats.Successes > 0 {
		stats.MeanSlack = slackTotal / float64(stats.Successes)
	}
	return stats
}
