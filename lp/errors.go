package lp

import "errors"

// ErrMakespanRequired reports that an STNU has no finite makespan. The
// Build functions in this package do not return it: without a makespan
// they bound the timepoint variables by MaxFloat instead.
var ErrMakespanRequired = errors.New("lp: STNU has no finite makespan; call SetMakespan first")

// ErrSolverInvalid names spec.md §7's SolverInvalid error kind. Nothing in
// this module returns or wraps it: solver failures surface as the Invalid
// Status instead.
var ErrSolverInvalid = errors.New("lp: solver reported an internal error")
