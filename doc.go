// Package stnu is an STNU (Simple Temporal Network with Uncertainty)
// toolkit: build, dynamically-controllability-check, relax, and dispatch
// temporal networks carrying both requirement and contingent constraints.
//
// Under the hood, everything is organized under a handful of
// subpackages:
//
//	core/     — the STNU data model, the labeled normal-form graph, and
//	            the Floyd-Warshall minimal-network closure
//	dc/       — the dynamic-controllability checker (recursive Dijkstra
//	            over the normal-form graph, with conflict lifting)
//	lp/       — the controllability-LP builders (six variants) and the
//	            relaxation LP, plus a gonum-backed reference solver
//	relax/    — the relaxation loop: detect, build/solve, shrink, repeat
//	dispatch/ — the late-dynamic / early-execution dispatch loop and
//	            Monte Carlo simulation driver
//	prob/     — the normal-CDF degree-of-controllability estimator
//	stnujson/ — the STNU JSON wire codec
//	convert/  — dataset-to-STNU conversion
//	remotelp/ — a client for an external LP solving service
//	cmd/stnuctl/ — a CLI wiring all of the above into check/relax/
//	            dispatch/batch subcommands
package stnu
