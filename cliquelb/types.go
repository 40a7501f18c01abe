// Package cliquelb defines configuration options, sentinel errors, and the
// result surface of the SAT-driven clique lower bound.
package cliquelb

import (
	"errors"

	"github.com/katalvlaran/treebound/sat"
)

// ErrNilGraph indicates that Compute was called with a nil graph.
var ErrNilGraph = errors.New("cliquelb: nil graph")

// ErrNilSolver indicates that WithSolver was given a nil backend.
var ErrNilSolver = errors.New("cliquelb: nil solver")

// BoundUnknown is the sentinel bound reported when the search aborted
// before producing a usable result (solver or encoder failure). It is
// never returned for legitimate inputs: even the empty graph has bound 0.
const BoundUnknown = -1

// initialThreshold is the first cardinality threshold probed. Any
// non-empty graph has a clique of size ≥ 1, so starting at 1 is safe.
const initialThreshold = 1

// Result is the outcome of one search.
type Result struct {
	// Bound is the tree-width lower bound: the size of the last threshold
	// proven satisfiable, or BoundUnknown on failure. By the documented
	// contract this is k−1 for the first failing threshold k, and may be
	// smaller than len(Clique) — see the package comment.
	Bound int

	// Clique is the witness vertex set: the selection harvested from the
	// last satisfying assignment, pairwise-adjacent in the input graph,
	// sorted ascending. Empty for the empty graph; nil on failure.
	Clique []string
}

// Options configures one search. Use DefaultOptions() for a default setup
// (gini backend).
type Options struct {
	// Solver is the SAT backend driving the search. Each Compute call
	// resets it via Init, so a zero-mileage backend per call is implied.
	Solver sat.Solver
}

// Option configures Options. All Option functions modify the pointed Options.
type Option func(*Options)

// WithSolver returns an Option that selects the SAT backend, e.g.
// sat.NewGopher() to trade gini's incrementality for gophersat's search.
func WithSolver(s sat.Solver) Option {
	return func(opts *Options) { opts.Solver = s }
}

// DefaultOptions returns Options initialized with the gini backend, the
// only bundled solver that keeps learned state across strengthened probes.
// Complexity: O(1) to construct.
func DefaultOptions() Options {
	return Options{Solver: sat.NewGini()}
}
