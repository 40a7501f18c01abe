package sat_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/treebound/sat" // package under test
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backends enumerates every Solver implementation under its display name;
// each contract test runs against all of them.
func backends() map[string]func() sat.Solver {
	return map[string]func() sat.Solver{
		"gini":      func() sat.Solver { return sat.NewGini() },
		"gophersat": func() sat.Solver { return sat.NewGopher() },
	}
}

// TestSolver_Contract exercises the four-operation capability on every
// backend: cumulative clause loading, SAT/UNSAT decisions, model access.
func TestSolver_Contract(t *testing.T) {
	for name, mk := range backends() {
		t.Run(name, func(t *testing.T) {
			s := mk()
			require.NoError(t, s.Init())

			// Model before any satisfiable solve is an error.
			_, err := s.Model()
			assert.ErrorIs(t, err, sat.ErrNoModel)

			// (x1 ∨ x2) ∧ (¬x1): satisfiable, x2 forced true.
			f := sat.NewFormula()
			require.NoError(t, f.AddClause(1, 2))
			require.NoError(t, f.AddClause(-1))
			require.NoError(t, s.AddClauses(f))

			ok, err := s.Solve()
			require.NoError(t, err)
			require.True(t, ok)

			model, err := s.Model()
			require.NoError(t, err)
			assert.False(t, model[1])
			assert.True(t, model[2])

			// Clauses are cumulative: adding (¬x2) flips the session UNSAT.
			delta := sat.NewFormula()
			require.NoError(t, delta.AddClause(-2))
			require.NoError(t, s.AddClauses(delta))

			ok, err = s.Solve()
			require.NoError(t, err)
			assert.False(t, ok)

			// After an UNSAT solve, no model is available.
			_, err = s.Model()
			assert.ErrorIs(t, err, sat.ErrNoModel)
		})
	}
}

// TestSolver_InitResets verifies Init discards the cumulative clause set.
func TestSolver_InitResets(t *testing.T) {
	for name, mk := range backends() {
		t.Run(name, func(t *testing.T) {
			s := mk()

			f := sat.NewFormula()
			require.NoError(t, f.AddClause(1))
			require.NoError(t, f.AddClause(-1))
			require.NoError(t, s.AddClauses(f))

			ok, err := s.Solve()
			require.NoError(t, err)
			require.False(t, ok, "x1 ∧ ¬x1 must be UNSAT")

			// Reset and load a satisfiable set: the contradiction is gone.
			require.NoError(t, s.Init())
			f2 := sat.NewFormula()
			require.NoError(t, f2.AddClause(1))
			require.NoError(t, s.AddClauses(f2))

			ok, err = s.Solve()
			require.NoError(t, err)
			assert.True(t, ok)
		})
	}
}

// TestSolver_FreshVariablesBetweenSolves verifies that deltas introducing
// variables unseen by earlier solves are handled by every backend — the
// pattern the incremental cardinality encoder depends on.
func TestSolver_FreshVariablesBetweenSolves(t *testing.T) {
	for name, mk := range backends() {
		t.Run(name, func(t *testing.T) {
			s := mk()

			f := sat.NewFormula()
			require.NoError(t, f.AddClause(1, 2))
			require.NoError(t, s.AddClauses(f))
			ok, err := s.Solve()
			require.NoError(t, err)
			require.True(t, ok)

			// Delta with a fresh auxiliary x3: (x3 ∨ ¬x1) ∧ (x3 ∨ ¬x2) ∧ (¬x3 ∨ x1).
			delta := sat.NewFormula()
			delta.SetMaxVar(f.MaxVar())
			aux := delta.NewVar()
			require.NoError(t, delta.AddClause(aux, -1))
			require.NoError(t, delta.AddClause(aux, -2))
			require.NoError(t, delta.AddClause(-aux, 1))
			require.NoError(t, s.AddClauses(delta))

			ok, err = s.Solve()
			require.NoError(t, err)
			require.True(t, ok)

			model, err := s.Model()
			require.NoError(t, err)
			// x3 ↔ something true among x1/x2 with x3→x1: x1 must hold.
			assert.True(t, model[aux])
			assert.True(t, model[1])
		})
	}
}

// TestSolver_BackendsAgree cross-checks the two backends on a pile of
// small generated instances: their SAT/UNSAT verdicts must coincide.
func TestSolver_BackendsAgree(t *testing.T) {
	// Each instance is a clause list; nil model expectations, only verdicts.
	instances := [][][]int{
		{{1}},
		{{1}, {-1}},
		{{1, 2}, {-1, 2}, {1, -2}, {-1, -2}},
		{{1, 2, 3}, {-1, -2}, {-2, -3}, {-1, -3}},
		{{1, -2}, {2, -3}, {3, -1}, {1, 2, 3}},
	}

	for i, inst := range instances {
		t.Run(fmt.Sprintf("instance_%d", i), func(t *testing.T) {
			verdicts := make(map[string]bool, 2)
			for name, mk := range backends() {
				f := sat.NewFormula()
				for _, c := range inst {
					require.NoError(t, f.AddClause(c...))
				}
				s := mk()
				require.NoError(t, s.AddClauses(f))
				ok, err := s.Solve()
				require.NoError(t, err)
				verdicts[name] = ok
			}
			assert.Equal(t, verdicts["gini"], verdicts["gophersat"])
		})
	}
}
