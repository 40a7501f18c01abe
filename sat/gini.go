// Package sat: the gini backend — a genuinely incremental in-process
// solver; clauses and fresh variables may arrive between any two solves.
package sat

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

// giniSatResult is the value gini's Solve returns on satisfiable instances;
// -giniSatResult means UNSAT and 0 means the solve was canceled.
const giniSatResult = 1

// Gini adapts github.com/go-air/gini to the Solver capability. It is the
// default backend: gini keeps learned clauses and solver state across
// Solve calls, so each strengthened probe resumes rather than restarts.
//
// A Gini instance owns one solver session and must not be shared across
// concurrent searches; create one per search.
type Gini struct {
	s        *gini.Gini
	maxVar   int  // highest variable id fed in so far
	hasModel bool // true right after a satisfiable Solve
}

// NewGini returns a fresh gini-backed solver session.
func NewGini() *Gini {
	return &Gini{s: gini.New()}
}

// Init resets the session, discarding all clauses and learned state.
func (g *Gini) Init() error {
	g.s = gini.New()
	g.maxVar = 0
	g.hasModel = false

	return nil
}

// AddClauses feeds every clause of delta into the cumulative session.
// gini accepts literals over variables it has never seen, so deltas with
// fresh auxiliaries need no pre-registration.
func (g *Gini) AddClauses(delta *Formula) error {
	for _, c := range delta.Clauses() {
		for _, l := range c {
			g.s.Add(giniLit(l))
		}
		g.s.Add(z.LitNull) // clause terminator
	}
	if mv := delta.MaxVar(); mv > g.maxVar {
		g.maxVar = mv
	}

	return nil
}

// Solve decides the accumulated clause set. A canceled underlying solve
// (gini returns 0) surfaces as ErrSolveInterrupted.
func (g *Gini) Solve() (bool, error) {
	switch g.s.Solve() {
	case giniSatResult:
		g.hasModel = true
		return true, nil
	case -giniSatResult:
		g.hasModel = false
		return false, nil
	default:
		g.hasModel = false
		return false, ErrSolveInterrupted
	}
}

// Model reads back the assignment of the last satisfiable Solve for every
// variable id fed into the session so far.
func (g *Gini) Model() (map[int]bool, error) {
	if !g.hasModel {
		return nil, ErrNoModel
	}
	m := make(map[int]bool, g.maxVar)
	for v := 1; v <= g.maxVar; v++ {
		m[v] = g.s.Value(z.Var(v).Pos())
	}

	return m, nil
}

// giniLit converts a signed DIMACS-style literal to gini's representation.
func giniLit(l int) z.Lit {
	if l < 0 {
		return z.Var(-l).Neg()
	}

	return z.Var(l).Pos()
}
