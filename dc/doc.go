// Package dc implements dynamic-controllability (DC) checking of an STNU
// via the conflict-generating labeled-graph algorithm (spec.md §4.2): a
// recursive Dijkstra traversal from every negative node of the normal-form
// labeled distance graph, detecting semi-reducible negative cycles.
//
// Check returns whether the network is DC and, if not, the cycle's edges
// together with a lifted conflict partitioning the offending original
// requirement/contingent constraints by LOWER/UPPER polarity — the input
// the relaxation loop (package relax) needs to repair the network.
//
// Determinism: negative nodes are visited by ascending node id,
// incoming-edge lists keep the order core.STNU.Normalize inserts them in
// (edges sorted by (From, To)), and priority-queue ties are broken by
// insertion order, so Check is deterministic given a fixed STNU.
package dc
