// Package sat: the gophersat backend — contract-equivalent to Gini but
// rebuilt per probe, because gophersat fixes its variable range when the
// underlying solver is constructed.
package sat

import "github.com/crillab/gophersat/solver"

// Gopher adapts github.com/crillab/gophersat to the Solver capability.
//
// gophersat cannot grow its variable range after construction, and the
// incremental cardinality encoding introduces fresh auxiliaries on every
// strengthening. Gopher therefore accumulates the cumulative clause set
// itself and constructs a fresh underlying solver on each Solve. The
// observable contract is identical — clauses from prior calls stay in
// effect — at the cost of re-deriving learned state per probe. Prefer
// NewGini unless you specifically want gophersat's search behavior.
type Gopher struct {
	clauses  [][]int
	maxVar   int
	model    []bool
	hasModel bool
}

// NewGopher returns a fresh gophersat-backed solver session.
func NewGopher() *Gopher {
	return &Gopher{}
}

// Init resets the session, discarding the accumulated clause set.
func (g *Gopher) Init() error {
	g.clauses = nil
	g.maxVar = 0
	g.model = nil
	g.hasModel = false

	return nil
}

// AddClauses copies every clause of delta into the cumulative set. Copies,
// not aliases: the caller is free to reuse or grow its formula afterwards.
func (g *Gopher) AddClauses(delta *Formula) error {
	for _, c := range delta.Clauses() {
		cc := make([]int, len(c))
		copy(cc, c)
		g.clauses = append(g.clauses, cc)
	}
	if mv := delta.MaxVar(); mv > g.maxVar {
		g.maxVar = mv
	}

	return nil
}

// Solve constructs an underlying solver over the accumulated clauses and
// decides it. An empty clause set is vacuously satisfiable.
func (g *Gopher) Solve() (bool, error) {
	g.hasModel = false
	if len(g.clauses) == 0 {
		g.model = nil
		g.hasModel = true

		return true, nil
	}

	s := solver.New(solver.ParseSlice(g.clauses))
	switch s.Solve() {
	case solver.Sat:
		g.model = s.Model()
		g.hasModel = true
		return true, nil
	case solver.Unsat:
		return false, nil
	default:
		return false, ErrSolveInterrupted
	}
}

// Model reads back the last satisfying assignment. Variables beyond the
// underlying solver's range (possible when a variable id was reserved but
// never appeared in a clause) default to false.
func (g *Gopher) Model() (map[int]bool, error) {
	if !g.hasModel {
		return nil, ErrNoModel
	}
	m := make(map[int]bool, g.maxVar)
	for v := 1; v <= g.maxVar; v++ {
		val := false
		if v-1 < len(g.model) {
			val = g.model[v-1]
		}
		m[v] = val
	}

	return m, nil
}
