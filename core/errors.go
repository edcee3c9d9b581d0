package core

import "errors"

// Sentinel errors for STNU construction and closure operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrEmptyInterval indicates an edge would have -Cji > Cij (empty interval).
	ErrEmptyInterval = errors.New("core: empty interval (-Cji > Cij)")

	// ErrDuplicateContingentSink indicates a second contingent edge was added
	// into a node that already has an incoming contingent edge, violating the
	// contingent-sink uniqueness invariant.
	ErrDuplicateContingentSink = errors.New("core: node already has an incoming contingent edge")

	// ErrInconsistent indicates Minimal found a negative-length cycle: the
	// network admits no consistent schedule at all.
	ErrInconsistent = errors.New("core: network is inconsistent (empty interval after closure)")

	// ErrMakespanNotSet indicates an operation required a finite makespan
	// (edge (0,v) upper bound) that has not been established.
	ErrMakespanNotSet = errors.New("core: makespan not set")
)
