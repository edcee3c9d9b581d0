// Package lp builds the family of controllability LPs described in
// spec.md §4.3 — SuperInterval (Strong Controllability), MaxSubinterval /
// uniform-step / proportion / max-min / min-max (Weak/Dynamic shrinkage),
// and the Relaxation LP consumed by package relax — over the abstract
// Solver contract of spec.md §6.
//
// The core never depends on a concrete solver: Solver is a minimal
// interface (NewVar/AddConstraint/SetObjective/Solve/Status/Value); package
// lp/gonumsolver supplies the reference implementation the spec asks for
// ("ship a reference implementation using the simplex method"), backed by
// gonum.org/v1/gonum/optimize/lp.Simplex.
//
// Failure semantics (spec.md §4.3): a Solver that cannot reach Optimal
// never panics or aborts the process; the Build functions only register
// variables and constraints, the outcome is read from Solver.Status, and
// callers — chiefly package relax — treat anything other than Optimal as
// "cannot improve".
package lp
