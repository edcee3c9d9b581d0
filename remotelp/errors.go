package remotelp

import "errors"

// ErrConnection is the ConnectionError status of spec.md §6 ("Exit codes:
// 0 success, 1 connection/error").
var ErrConnection = errors.New("remotelp: connection error")

// ErrNoObjective is returned when a completed job's response body does
// not contain a parseable "Objective <float>" line.
var ErrNoObjective = errors.New("remotelp: response has no Objective line")
