package stnujson

import "errors"

// ErrMalformed is the MalformedInput error kind of spec.md §7: a schema
// violation or a broken contingent-sink-uniqueness invariant observed at
// load time.
var ErrMalformed = errors.New("stnujson: malformed input")
