// Package sat: Formula and Clause — the CNF container shared by the
// static clique encoding and the evolving cardinality constraint.
package sat

import "errors"

// Sentinel errors for formula construction.
var (
	// ErrEmptyClause indicates an attempt to add a clause with no literals.
	ErrEmptyClause = errors.New("sat: empty clause")

	// ErrZeroLiteral indicates a literal with value 0, which DIMACS reserves
	// as the clause terminator and which has no polarity.
	ErrZeroLiteral = errors.New("sat: zero literal")
)

// Clause is a disjunction of signed integer literals. The sign encodes
// polarity (positive = variable, negative = negation); the magnitude is
// the variable id. A Clause is never empty.
type Clause []int

// Formula is a multiset of clauses together with the highest variable id
// in use. The id counter only ever grows, and SetMaxVar/MaxVar let callers
// thread one shared counter through a sequence of incremental deltas so
// that freshly allocated auxiliary variables never collide.
type Formula struct {
	clauses []Clause
	maxVar  int
}

// NewFormula returns an empty formula with no variables in use.
// Complexity: O(1)
func NewFormula() *Formula {
	return &Formula{}
}

// AddClause appends the clause formed by lits.
//
// Errors:
//   - ErrEmptyClause : if len(lits) == 0.
//   - ErrZeroLiteral : if any literal is 0.
//
// The highest-variable counter is raised to cover every literal, keeping
// the invariant that all literal magnitudes are ≤ MaxVar().
// Complexity: O(len(lits))
func (f *Formula) AddClause(lits ...int) error {
	if len(lits) == 0 {
		return ErrEmptyClause
	}
	c := make(Clause, len(lits))
	for i, l := range lits {
		if l == 0 {
			return ErrZeroLiteral
		}
		c[i] = l
		if v := abs(l); v > f.maxVar {
			f.maxVar = v
		}
	}
	f.clauses = append(f.clauses, c)

	return nil
}

// NewVar allocates a fresh variable id above every id in use and returns it.
// This is the shared arena allocator: both the static encoding and the
// cardinality encoder draw auxiliaries from the same counter.
// Complexity: O(1)
func (f *Formula) NewVar() int {
	f.maxVar++

	return f.maxVar
}

// MaxVar returns the highest variable id in use.
func (f *Formula) MaxVar() int { return f.maxVar }

// SetMaxVar raises the highest-variable counter to v. Lower values are
// ignored: the counter is monotone by contract, so a delta formula can be
// seeded from its predecessor without ever shrinking the id space.
func (f *Formula) SetMaxVar(v int) {
	if v > f.maxVar {
		f.maxVar = v
	}
}

// Clauses returns the underlying clause slice. The slice is shared, not
// copied; callers must treat it as read-only.
func (f *Formula) Clauses() []Clause { return f.clauses }

// Len returns the number of clauses.
func (f *Formula) Len() int { return len(f.clauses) }

// abs returns the magnitude of a literal.
func abs(l int) int {
	if l < 0 {
		return -l
	}

	return l
}
