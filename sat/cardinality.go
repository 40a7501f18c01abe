// Package sat: AtLeastK — an incremental totalizer encoding of the
// cardinality constraint "at least k of these literals are true".
package sat

import (
	"errors"
	"fmt"
)

// Sentinel errors for cardinality encoding.
var (
	// ErrNoLiterals indicates a cardinality constraint over an empty literal set.
	ErrNoLiterals = errors.New("sat: cardinality constraint over no literals")

	// ErrBadThreshold indicates a threshold below 1 or one that does not
	// strictly increase an existing constraint.
	ErrBadThreshold = errors.New("sat: bad cardinality threshold")
)

// AtLeastK maintains an "at least k" constraint over a fixed literal set.
//
// The encoding is a totalizer (Bailleux–Boutaouy style): a balanced binary
// tree of counters whose root outputs o_1..o_n satisfy
//
//	o_j = true  ⇒  at least j of the tracked literals are true.
//
// The whole tree is emitted once, at construction time, into the formula
// that owns the shared variable counter. Raising the threshold afterwards
// emits only unit clauses (one per step), which is what makes the
// constraint usable inside a cumulative incremental SAT session:
// previously emitted clauses are never retracted or rewritten.
type AtLeastK struct {
	n       int   // number of tracked literals
	outputs []int // outputs[j-1] asserts "at least j true"; leaf literals reused for n == 1
	bound   int   // current threshold k
}

// NewAtLeastK builds the totalizer tree over lits inside f and asserts the
// initial threshold k. Auxiliary variables are drawn from f.NewVar(), so f
// must be the formula (or delta chain) whose counter is shared with every
// other encoding in the same solver session.
//
// Errors:
//   - ErrNoLiterals   : len(lits) == 0.
//   - ErrZeroLiteral  : some literal is 0.
//   - ErrBadThreshold : k < 1.
//
// Complexity: O(n²) emitted clauses, O(n log n) auxiliary variables.
func NewAtLeastK(f *Formula, lits []int, k int) (*AtLeastK, error) {
	if len(lits) == 0 {
		return nil, ErrNoLiterals
	}
	if k < 1 {
		return nil, fmt.Errorf("initial threshold %d: %w", k, ErrBadThreshold)
	}
	for _, l := range lits {
		if l == 0 {
			return nil, ErrZeroLiteral
		}
	}

	c := &AtLeastK{n: len(lits)}
	c.outputs = buildTotalizer(f, lits)

	// Assert the initial threshold through the same path later increments
	// take, so construction and strengthening stay behaviorally identical.
	if err := c.StrengthenTo(f, k); err != nil {
		return nil, err
	}

	return c, nil
}

// StrengthenTo raises the threshold to k, emitting into delta only the
// incremental clauses needed: one unit clause per step from the previous
// threshold. Thresholds beyond the number of tracked literals are
// unsatisfiable by definition; they are encoded as a fresh-variable
// contradiction pair (t) ∧ (¬t), preserving the no-empty-clause invariant.
//
// delta must carry the shared variable counter (see Formula.SetMaxVar);
// any auxiliary it allocates is accounted there.
//
// Errors:
//   - ErrBadThreshold: k does not strictly exceed the current threshold.
//
// Complexity: O(k - previous k) emitted unit clauses.
func (c *AtLeastK) StrengthenTo(delta *Formula, k int) error {
	if k <= c.bound {
		return fmt.Errorf("threshold %d not above current %d: %w", k, c.bound, ErrBadThreshold)
	}

	for j := c.bound + 1; j <= k; j++ {
		if j > c.n {
			// Unreachable count: force the session UNSAT without an empty clause.
			t := delta.NewVar()
			if err := delta.AddClause(t); err != nil {
				return err
			}
			if err := delta.AddClause(-t); err != nil {
				return err
			}

			break
		}
		if err := delta.AddClause(c.outputs[j-1]); err != nil {
			return err
		}
	}
	c.bound = k

	return nil
}

// Threshold returns the current threshold k.
func (c *AtLeastK) Threshold() int { return c.bound }

// Size returns the number of tracked literals.
func (c *AtLeastK) Size() int { return c.n }

// buildTotalizer recursively merges the literal slice into a counter tree,
// emitting the "output implies count" clauses into f and returning the
// root's output literals (outputs[j-1] ⇒ at least j of lits true).
//
// For a node merging children with outputs a (p wide) and b (q wide) into
// fresh outputs r (p+q wide), the emitted clauses are
//
//	(¬r_m ∨ a_{i+1} ∨ b_{j+1})  for all i ∈ [0,p], j ∈ [0,q], m = i+j+1 ≤ p+q,
//
// where out-of-range child outputs are simply omitted. Single literals are
// their own one-wide output, so leaves cost no clauses and no auxiliaries.
func buildTotalizer(f *Formula, lits []int) []int {
	if len(lits) == 1 {
		return []int{lits[0]}
	}

	mid := len(lits) / 2
	a := buildTotalizer(f, lits[:mid])
	b := buildTotalizer(f, lits[mid:])
	p, q := len(a), len(b)

	// Fresh output variables for this node, drawn from the shared counter.
	r := make([]int, p+q)
	for i := range r {
		r[i] = f.NewVar()
	}

	scratch := make([]int, 0, 3)
	for i := 0; i <= p; i++ {
		for j := 0; j <= q; j++ {
			m := i + j + 1
			if m > p+q {
				continue
			}
			scratch = scratch[:0]
			scratch = append(scratch, -r[m-1])
			if i < p {
				scratch = append(scratch, a[i])
			}
			if j < q {
				scratch = append(scratch, b[j])
			}
			// Clauses built here are never empty: i == p ∧ j == q is the
			// skipped m > p+q case.
			_ = f.AddClause(scratch...)
		}
	}

	return r
}
