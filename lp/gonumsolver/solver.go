// Package gonumsolver is the reference lp.Solver implementation spec.md §6
// asks for ("ship a reference implementation using the simplex method"),
// backed by gonum.org/v1/gonum/optimize/lp.Simplex.
//
// gonum's Simplex expects standard form (minimize c^T x s.t. A x = b,
// x >= 0) and performs its own Phase-I search for an initial feasible
// basis when given a nil initialBasic, so this package's only job is the
// bounded-variable / inequality-to-equality conversion: each decision
// variable x with bounds [lb, ub] is represented internally as a shifted
// nonnegative y = x - lb, with an extra row y <= ub-lb when ub is finite;
// each <= / >= constraint gets a nonnegative slack/surplus column.
package gonumsolver

import (
	"context"
	"math"

	"github.com/katalvlaran/stnu/lp"
	"gonum.org/v1/gonum/mat"
	lpopt "gonum.org/v1/gonum/optimize/lp"
)

type variable struct{ lb, ub float64 }

type constraint struct {
	coeffs   map[lp.VarID]float64
	relation lp.Relation
	rhs      float64
}

// Solver is a single-use lp.Solver: build it, call Solve once, read
// Status/Value. Reuse after a second Solve is undefined, matching gonum's
// Simplex being a one-shot call rather than a warm-restartable solver.
type Solver struct {
	vars []variable
	cons []constraint

	objCoeffs map[lp.VarID]float64
	sense     lp.Sense

	status lp.Status
	values []float64 // indexed by lp.VarID
}

// New returns an empty Solver.
func New() *Solver {
	return &Solver{objCoeffs: make(map[lp.VarID]float64), status: lp.Invalid}
}

func (s *Solver) NewVar(lb, ub float64) lp.VarID {
	s.vars = append(s.vars, variable{lb: lb, ub: ub})
	return lp.VarID(len(s.vars) - 1)
}

func (s *Solver) AddConstraint(coeffs map[lp.VarID]float64, relation lp.Relation, rhs float64) {
	cp := make(map[lp.VarID]float64, len(coeffs))
	for k, v := range coeffs {
		cp[k] = v
	}
	s.cons = append(s.cons, constraint{coeffs: cp, relation: relation, rhs: rhs})
}

func (s *Solver) SetObjective(coeffs map[lp.VarID]float64, sense lp.Sense) {
	s.objCoeffs = make(map[lp.VarID]float64, len(coeffs))
	for k, v := range coeffs {
		s.objCoeffs[k] = v
	}
	s.sense = sense
}

func (s *Solver) Status() lp.Status { return s.status }

func (s *Solver) Value(v lp.VarID) float64 {
	if int(v) < 0 || int(v) >= len(s.values) {
		return 0
	}
	return s.values[v]
}

// Solve translates the bounded-variable program into gonum's standard
// form and runs the simplex method, honoring ctx cancellation before the
// (synchronous, non-cancellable once started) solve call.
func (s *Solver) Solve(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		s.status = lp.Invalid
		return err
	}

	n := len(s.vars)
	// Column layout: [0, n) shifted user variables y_i = x_i - lb_i,
	// followed by one slack/surplus column per generated row.
	type row struct {
		coeffs map[int]float64 // column -> coefficient, columns < n are user vars
		rhs    float64
	}
	var rows []row
	nextCol := n

	addRow := func(coeffs map[lp.VarID]float64, relation lp.Relation, rhs float64) {
		shiftedRHS := rhs
		cols := make(map[int]float64, len(coeffs)+1)
		for v, c := range coeffs {
			cols[int(v)] = c
			shiftedRHS -= c * s.vars[v].lb
		}
		switch relation {
		case lp.LE:
			cols[nextCol] = 1 // slack
			nextCol++
		case lp.GE:
			cols[nextCol] = -1 // surplus
			nextCol++
		case lp.EQ:
			// no extra column; gonum's internal Phase I supplies an
			// artificial variable for equality rows as needed.
		}
		rows = append(rows, row{coeffs: cols, rhs: shiftedRHS})
	}

	for v, variable := range s.vars {
		if !math.IsInf(variable.ub, 1) {
			addRow(map[lp.VarID]float64{lp.VarID(v): 1}, lp.LE, variable.ub-variable.lb)
		}
	}
	for _, c := range s.cons {
		addRow(c.coeffs, c.relation, c.rhs)
	}

	numCols := nextCol
	numRows := len(rows)
	if numRows == 0 {
		// No constraints at all: trivially optimal at every variable's
		// lower bound (or upper, for an unbounded-above maximize — not a
		// case the STNU builders ever produce, so lower bound suffices).
		s.status = lp.Optimal
		s.values = make([]float64, n)
		for i, variable := range s.vars {
			s.values[i] = variable.lb
		}
		return nil
	}

	a := mat.NewDense(numRows, numCols, nil)
	b := make([]float64, numRows)
	for r, rw := range rows {
		for col, coeff := range rw.coeffs {
			a.Set(r, col, coeff)
		}
		b[r] = rw.rhs
	}

	c := make([]float64, numCols)
	for v, coeff := range s.objCoeffs {
		if s.sense == lp.Maximize {
			c[int(v)] = -coeff
		} else {
			c[int(v)] = coeff
		}
	}

	_, x, err := lpopt.Simplex(c, a, b, 1e-10, nil)
	if err != nil {
		s.status = classifyError(err)
		return nil
	}

	s.status = lp.Optimal
	s.values = make([]float64, n)
	for v := 0; v < n; v++ {
		s.values[v] = s.vars[v].lb + x[v]
	}
	return nil
}

func classifyError(err error) lp.Status {
	switch err {
	case lpopt.ErrInfeasible:
		return lp.Infeasible
	case lpopt.ErrUnbounded:
		return lp.Unbounded
	default:
		return lp.Invalid
	}
}
