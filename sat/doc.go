// Package sat provides the propositional plumbing behind treebound's
// SAT-driven searches: CNF formulas, an incremental "at-least-k"
// cardinality encoding, a minimal solver capability with two real
// backends, and DIMACS CNF I/O.
//
// What & Why
//
//   - Formula / Clause:
//     A Clause is a non-empty set of signed integer literals (positive =
//     variable, negative = negation, magnitude = variable id). A Formula
//     is a multiset of clauses plus the highest variable id in use. The
//     id counter is monotonically non-decreasing and is threaded across
//     incremental formula deltas, so auxiliary variables introduced later
//     never collide with existing ones.
//
//   - AtLeastK (incremental cardinality):
//     A totalizer-style encoding of "at least k of these literals are
//     true". The comparator tree is emitted exactly once; strengthening
//     the threshold from k to k' > k emits only unit clauses, never
//     retracting anything — exactly what cumulative incremental SAT
//     sessions demand.
//
//   - Solver capability:
//     A four-operation interface (Init, AddClauses, Solve, Model) that
//     models the external SAT solver as a capability rather than a class
//     hierarchy. Two interchangeable backends ship with the package:
//     gini (github.com/go-air/gini — fully incremental, the default) and
//     gophersat (github.com/crillab/gophersat — rebuilds per solve, see
//     NewGopher for the trade-off).
//
//   - DIMACS:
//     WriteDIMACS / ReadDIMACS translate a Formula to and from the
//     standard "p cnf" file format, the universal interface to external
//     solvers.
//
// Error Conditions
//
//	ErrEmptyClause      - AddClause called with no literals.
//	ErrZeroLiteral      - AddClause called with a 0 literal (reserved by DIMACS).
//	ErrNoLiterals       - AtLeastK over an empty literal set.
//	ErrBadThreshold     - threshold below 1, or not strictly increasing.
//	ErrNoModel          - Model requested before a satisfiable Solve.
//	ErrSolveInterrupted - the backend gave up without a decision.
//
// All errors are sentinels; branch with errors.Is.
//
// For usage, see example_test.go in this package and the cliquelb package,
// which drives the full incremental loop.
package sat
