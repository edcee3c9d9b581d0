// File: minimal.go
// Role: all-pairs shortest-path closure (Floyd–Warshall) producing the
// minimal network, per spec.md §4.1.
//
// Loop order is fixed (k -> i -> j) for deterministic accumulation,
// adapted from the teacher's matrix.FloydWarshall: +Inf marks "no path"
// and is never added to itself (saturating addition — spec.md §9), and
// the diagonal must read 0 before closure.
package core

import "math"

// Minimal computes the all-pairs shortest-path closure of s and returns a
// new STNU with every edge tightened to its minimal-network weight. It
// returns ErrInconsistent (and a nil network) if any diagonal entry closes
// to a negative value, i.e. a negative cycle exists and no interval in the
// original network can be simultaneously satisfied.
//
// Complexity: O(V^3) time, O(V^2) space. Minimal never mutates s.
func (s *STNU) Minimal() (*STNU, error) {
	ids := s.Vertices()
	n := len(ids)
	idx := make(map[int]int, n)
	for i, id := range ids {
		idx[id] = i
	}

	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := range dist[i] {
			if i == j {
				dist[i][j] = 0
			} else {
				dist[i][j] = Inf
			}
		}
	}
	for _, e := range s.Edges() {
		i, j := idx[e.From], idx[e.To]
		if e.Cij < dist[i][j] {
			dist[i][j] = e.Cij
		}
		if e.Cji < dist[j][i] {
			dist[j][i] = e.Cji
		}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			dik := dist[i][k]
			if math.IsInf(dik, 1) {
				continue
			}
			for j := 0; j < n; j++ {
				dkj := dist[k][j]
				if math.IsInf(dkj, 1) {
					continue
				}
				if cand := dik + dkj; cand < dist[i][j] {
					dist[i][j] = cand
				}
			}
		}
	}

	for i := 0; i < n; i++ {
		if dist[i][i] < 0 {
			return nil, ErrInconsistent
		}
	}

	out := s.Clone()
	for _, e := range out.Edges() {
		i, j := idx[e.From], idx[e.To]
		if dist[i][j] < e.Cij {
			e.Cij = dist[i][j]
		}
		if dist[j][i] < e.Cji {
			e.Cji = dist[j][i]
		}
		if e.Cji < -e.Cij {
			return nil, ErrInconsistent
		}
	}
	return out, nil
}

// IsConsistent reports whether Minimal succeeds.
func (s *STNU) IsConsistent() bool {
	_, err := s.Minimal()
	return err == nil
}

// AllPairsDistance returns the closed distance matrix (dist[i][j] is the
// minimal-network weight from i to j, sorted by ascending node id in both
// dimensions) and the id->index mapping, without constructing a new STNU.
// This is the form the dispatcher uses for the "all-pairs minimal"
// priorities of spec.md §4.5, and avoids rebuilding an STNU per trial.
func (s *STNU) AllPairsDistance() (dist [][]float64, ids []int, err error) {
	ids = s.Vertices()
	n := len(ids)
	idx := make(map[int]int, n)
	for i, id := range ids {
		idx[id] = i
	}
	dist = make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := range dist[i] {
			if i == j {
				dist[i][j] = 0
			} else {
				dist[i][j] = Inf
			}
		}
	}
	for _, e := range s.Edges() {
		i, j := idx[e.From], idx[e.To]
		if e.Cij < dist[i][j] {
			dist[i][j] = e.Cij
		}
		if e.Cji < dist[j][i] {
			dist[j][i] = e.Cji
		}
	}
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			dik := dist[i][k]
			if math.IsInf(dik, 1) {
				continue
			}
			for j := 0; j < n; j++ {
				dkj := dist[k][j]
				if math.IsInf(dkj, 1) {
					continue
				}
				if cand := dik + dkj; cand < dist[i][j] {
					dist[i][j] = cand
				}
			}
		}
	}
	for i := 0; i < n; i++ {
		if dist[i][i] < 0 {
			return nil, nil, ErrInconsistent
		}
	}
	return dist, ids, nil
}
