// Package relax implements the Relaxation Loop of spec.md §4.4: repeatedly
// run the DC Checker, and on failure, shrink exactly the contingent edges
// implicated in the detected cycle by the amount the Relaxation LP
// (package lp, BuildRelaxation) prescribes, until the network is dynamically
// controllable or the solver can no longer improve it.
package relax
