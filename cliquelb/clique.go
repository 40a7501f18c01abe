// Package cliquelb implements the incremental SAT-driven maximum-clique
// search: bijection, exclusion clauses, and the Seeding/Probing/Improved/
// Exhausted state machine.
package cliquelb

import (
	"fmt"

	"github.com/katalvlaran/treebound/core"
	"github.com/katalvlaran/treebound/sat"
)

// searchState enumerates the explicit states of the solve loop. Keeping
// the loop a state machine (rather than ad hoc control flow) makes the
// "report k−1" contract auditable in isolation.
type searchState uint8

const (
	stateSeeding searchState = iota
	stateProbing
	stateImproved
	stateExhausted
)

// Compute runs the SAT-driven maximum-clique search on g and returns the
// tree-width lower bound with its witness clique.
//
// Steps:
//  1. Validate inputs; resolve options (gini backend by default).
//  2. Degenerate case: the empty graph yields {0, []} without touching
//     the solver.
//  3. Run the state machine: seed the solver with the static exclusion
//     clauses and the k=1 cardinality constraint, then probe, harvest,
//     and strengthen until the first unsatisfiable threshold.
//
// Error Conditions:
//   - ErrNilGraph / ErrNilSolver : invalid inputs.
//   - Any solver or encoder failure: the search aborts wholesale and the
//     result is {BoundUnknown, nil} with a wrapped error. No retries.
//
// Complexity: solver-dominated; O(n²) clauses seeded, one Solve per
// threshold, at most n+1 thresholds.
func Compute(g *core.Graph, opts ...Option) (Result, error) {
	// 1. Validate the graph before touching any options.
	if g == nil {
		return Result{Bound: BoundUnknown}, ErrNilGraph
	}

	// Resolve options over the defaults.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Solver == nil {
		return Result{Bound: BoundUnknown}, ErrNilSolver
	}

	// 2. Input degeneracy: no vertices means a trivial bound of 0 with an
	//    empty witness — not an error.
	vertices := g.Vertices()
	if len(vertices) == 0 {
		return Result{Bound: 0, Clique: []string{}}, nil
	}

	// 3. One fresh search instance per call; nothing is shared.
	s := &search{
		graph:    g,
		solver:   o.Solver,
		vertices: vertices,
		state:    stateSeeding,
	}
	res, err := s.run()
	if err != nil {
		return Result{Bound: BoundUnknown}, err
	}

	return res, nil
}

// search carries the whole per-invocation state: the bijection, the
// cardinality encoder, the shared variable counter, the threshold, and the
// best witness found so far. It lives for exactly one Compute call.
type search struct {
	graph  *core.Graph
	solver sat.Solver

	vertices []string       // stable iteration order for this search
	varOf    map[string]int // vertex → SAT variable (1-based, dense)
	vertexOf []string       // SAT variable − 1 → vertex

	card   *sat.AtLeastK
	k      int // current cardinality threshold
	maxVar int // shared highest-variable counter, threaded across deltas

	best  []string // best clique found; overwritten wholesale per witness
	state searchState
}

// run drives the state machine to termination and shapes the result.
func (s *search) run() (Result, error) {
	for {
		switch s.state {
		case stateSeeding:
			if err := s.seed(); err != nil {
				return Result{}, fmt.Errorf("cliquelb: seeding: %w", err)
			}
			s.state = stateProbing

		case stateProbing:
			ok, err := s.solver.Solve()
			if err != nil {
				return Result{}, fmt.Errorf("cliquelb: probe at threshold %d: %w", s.k, err)
			}
			if !ok {
				s.state = stateExhausted
				continue
			}
			if err = s.harvest(); err != nil {
				return Result{}, fmt.Errorf("cliquelb: witness at threshold %d: %w", s.k, err)
			}
			s.state = stateImproved

		case stateImproved:
			if err := s.strengthen(); err != nil {
				return Result{}, fmt.Errorf("cliquelb: strengthening to %d: %w", s.k+1, err)
			}
			s.state = stateProbing

		case stateExhausted:
			// k is the first threshold that failed; k−1 was the last one
			// proven satisfiable. The witness may be larger — reported
			// bound stays k−1 by contract.
			return Result{Bound: s.k - 1, Clique: s.best}, nil
		}
	}
}

// seed builds the bijection, the static exclusion clauses and the initial
// cardinality constraint, and loads them into a freshly initialized solver
// as the base incremental formula.
func (s *search) seed() error {
	if err := s.solver.Init(); err != nil {
		return err
	}

	// Vertex ↔ variable bijection over {1,…,n}, fixed for the search.
	n := len(s.vertices)
	s.varOf = make(map[string]int, n)
	s.vertexOf = make([]string, n)
	for i, v := range s.vertices {
		s.varOf[v] = i + 1
		s.vertexOf[i] = v
	}

	phi := sat.NewFormula()
	phi.SetMaxVar(n) // vertex variables occupy 1..n even before any clause

	// Exclusion clauses: a clique cannot contain both endpoints of a
	// non-edge. One clause per unordered non-adjacent pair, i < j.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if s.graph.IsAdjacent(s.vertices[i], s.vertices[j]) {
				continue
			}
			if err := phi.AddClause(-(i + 1), -(j + 1)); err != nil {
				return err
			}
		}
	}

	// Track the selection size with an incremental at-least-k constraint,
	// drawing auxiliaries from phi's counter.
	lits := make([]int, n)
	for i := range lits {
		lits[i] = i + 1
	}
	card, err := sat.NewAtLeastK(phi, lits, initialThreshold)
	if err != nil {
		return err
	}
	s.card = card
	s.k = initialThreshold

	if err = s.solver.AddClauses(phi); err != nil {
		return err
	}
	s.maxVar = phi.MaxVar()
	s.best = []string{}

	return nil
}

// harvest reads the current model and overwrites the best clique with the
// vertex set selected by it. The exclusion clauses guarantee the set is
// pairwise-adjacent; sorted vertex order keeps the output deterministic.
func (s *search) harvest() error {
	model, err := s.solver.Model()
	if err != nil {
		return err
	}

	clique := make([]string, 0, s.k)
	for i, v := range s.vertices {
		if model[i+1] {
			clique = append(clique, v)
		}
	}
	s.best = clique

	return nil
}

// strengthen bumps the threshold by exactly one and feeds the incremental
// clauses into the solver's cumulative formula, keeping the shared
// variable counter threaded through the delta.
func (s *search) strengthen() error {
	delta := sat.NewFormula()
	delta.SetMaxVar(s.maxVar)
	if err := s.card.StrengthenTo(delta, s.k+1); err != nil {
		return err
	}
	if err := s.solver.AddClauses(delta); err != nil {
		return err
	}
	s.maxVar = delta.MaxVar()
	s.k++

	return nil
}
