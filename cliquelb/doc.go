// Package cliquelb computes a provable lower bound on the tree-width of an
// undirected *core.Graph by finding a maximum clique with an incremental
// SAT search.
//
// What & Why
//
//   - What is the clique lower bound?
//     Every clique of a graph must appear together in one bag of any tree
//     decomposition, so the size of a maximum clique bounds from below how
//     wide the decomposition must be. A maximum clique therefore yields a
//     provable tree-width lower bound — one of the standard bounds exact
//     tree-width solvers use to prune their search.
//
//   - Why SAT instead of enumeration?
//     Maximum clique is NP-hard; brute-force enumeration dies on dense
//     graphs. Encoding "the selected vertex set is a clique" as CNF and
//     letting a CDCL solver search is both simple and surprisingly
//     effective, and the incremental interface means each strengthened
//     query reuses everything the solver already learned.
//
// The Encoding
//
//   - Variable bijection: vertices map to SAT variables {1,…,n}, in the
//     sorted vertex order core.Graph guarantees, fixed for the whole search.
//   - Exclusion clauses: for every unordered pair of distinct, NON-adjacent
//     vertices v, w one clause (¬x_v ∨ ¬x_w). This is the complement
//     encoding of "clique": rather than demanding an edge between every
//     selected pair, it forbids any non-edge from being fully selected —
//     equivalent, and exactly one clause per non-edge. The exclusion set is
//     static for the whole search.
//   - Cardinality: a sat.AtLeastK constraint "at least k selected" over all
//     vertex variables, strengthened by one after every satisfiable probe.
//     Strengthening emits unit clauses only; nothing is ever re-encoded.
//
// The Search Loop (explicit state machine)
//
//	Seeding → Probing → {Improved, Exhausted};  Improved → Probing
//
//   - Seeding: build the bijection, the exclusion clauses, and the k=1
//     cardinality constraint; load everything into the solver.
//   - Probing: one blocking Solve call.
//     SAT   → read the witness, overwrite the best clique wholesale, go to
//     Improved.
//     UNSAT → go to Exhausted.
//   - Improved: k ← k+1, emit the incremental clauses, back to Probing.
//   - Exhausted: report k−1, where k is the first threshold that failed,
//     with the last stored clique as witness.
//
// Known imprecision (preserved by contract):
// the constraint is "at least k", not "exactly k", so a satisfying witness
// may select more than k vertices. The stored clique can therefore be
// strictly larger than the reported bound k−1 at termination; the numeric
// result is still k−1. Callers wanting the sharper number can take
// len(Result.Clique) themselves — the witness is always a valid clique.
//
// Error Conditions
//
//	ErrNilGraph  - Compute called with a nil graph.
//	ErrNilSolver - WithSolver(nil) supplied.
//
// Any solver or encoder failure mid-search aborts the whole computation:
// the result carries the sentinel BoundUnknown (-1) and a wrapped error,
// never a partial bound. An empty graph is not an error; it yields bound 0
// with an empty witness.
//
// Concurrency
//
// One search is single-threaded and synchronous: one solver call in
// flight, no internal parallelism. A search instance (solver session,
// formula, bijection) must not be shared; run concurrent searches with
// fresh Options each. Timeouts are the caller's concern — wrap Compute
// and abandon it on your own clock.
//
// GoDoc Summary
//
//   - Compute(g *core.Graph, opts ...Option) (Result, error)
//     Run the full search. Returns {Bound, Clique} on success;
//     {BoundUnknown, nil} plus an error on solver/encoder failure.
//
// Complexity: O(n²) static clauses plus one SAT call per threshold; total
// work is solver-dominated and exponential in the worst case (the problem
// is NP-hard). Memory: O(n²) clauses, O(n log n) auxiliary variables.
//
// For examples of usage, see example_test.go in this package.
package cliquelb
