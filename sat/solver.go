// Package sat: the Solver capability — the four-operation contract every
// backend fulfills, modeled as an interface rather than a class hierarchy
// so search drivers never depend on a concrete solver.
package sat

import "errors"

// Sentinel errors shared by solver backends.
var (
	// ErrNoModel indicates Model was called before a satisfiable Solve.
	ErrNoModel = errors.New("sat: no model available")

	// ErrSolveInterrupted indicates the backend terminated without reaching
	// a SAT/UNSAT decision.
	ErrSolveInterrupted = errors.New("sat: solve interrupted")
)

// Solver is the capability an external SAT solver must expose to drive
// incremental searches.
//
// The contract is cumulative: clauses supplied through AddClauses remain
// in effect for every subsequent Solve until Init resets the session.
// Model is only meaningful immediately after a Solve that returned true;
// its result is superseded by the next Solve call.
type Solver interface {
	// Init resets the backend to an empty session.
	Init() error

	// AddClauses feeds a formula delta into the cumulative clause set.
	AddClauses(delta *Formula) error

	// Solve decides satisfiability of everything added so far.
	// It returns true for SAT, false for UNSAT.
	Solve() (bool, error)

	// Model returns the satisfying assignment of the last Solve as a
	// variable-id → truth-value mapping covering ids 1..MaxVar seen.
	Model() (map[int]bool, error)
}
