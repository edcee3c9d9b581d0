// Package convert adapts third-party dataset instance files into
// core.STNU networks, per spec.md §6's dataset-conversion shape:
//
//	{"instances": [{name: [{start_event_name, end_event_name, type,
//	  properties}, ...]}, ...]}
//
// "controllable" maps to a requirement edge; "uncontrollable_bounded"
// maps to a contingent edge with explicit lb/ub; a "uniform" distribution
// maps to contingent [lb, ub]; any other named distribution maps to
// contingent [mean - k*sigma, mean + k*sigma], where k is the
// SigmaK knob of Options (spec.md §9's documented ambiguity: the source
// material varies this factor between 0.5 and 1.5 across versions).
package convert
