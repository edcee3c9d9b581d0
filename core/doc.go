// Package core defines the STNU graph model: Edge and the STNU type
// itself (vertices are plain int ids), together with the thread-safe primitives for building,
// querying, cloning, and closing networks.
//
// An STNU (Simple Temporal Network with Uncertainty) is a directed
// multigraph whose nodes are timepoints and whose edges carry an interval
// [-Cji, Cij] bounding the admissible duration between their endpoints.
// Requirement edges are controlled by the planner; contingent edges have
// their realized duration chosen by the environment at execution time.
//
// Node 0 is reserved as the zero timepoint (the network's origin); every
// STNU implicitly contains it.
//
// Safe for concurrent readers: STNU uses separate sync.RWMutex locks for
// the vertex catalog (muVert) and the edge/adjacency catalog (muEdgeAdj),
// following the same two-lock discipline as the graph model this package
// was adapted from. Mutating operations take write locks; derived views
// (Clone, Minimal, Normalize) take read locks and return a fresh value (a
// new STNU, or a NormalGraph for Normalize), never mutating the receiver.
package core
