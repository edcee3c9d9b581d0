// Package dispatch implements the real-time execution simulator of
// spec.md §4.5: given a sampled realization of every contingent duration,
// it decides an execution time for each controllable event consistent
// with propagated wait constraints and all-pairs minimal priorities, and
// reports success or the first violated constraint.
//
// Late dynamic dispatch is the default strategy. Early execution is kept
// behind the Strategy flag as the source material's own "experimental"
// caveat (spec.md §9) — its find_bounds helper was observed to return
// degenerate zeros in several branches, so it is implemented but never
// the default, and no test in this package exercises it.
package dispatch
