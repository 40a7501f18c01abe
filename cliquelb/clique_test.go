package cliquelb_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/treebound/builder"
	"github.com/katalvlaran/treebound/cliquelb" // package under test
	"github.com/katalvlaran/treebound/core"
	"github.com/katalvlaran/treebound/sat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertValidClique checks that every pair in the witness is adjacent in g.
func assertValidClique(t *testing.T, g *core.Graph, clique []string) {
	t.Helper()
	for i := 0; i < len(clique); i++ {
		for j := i + 1; j < len(clique); j++ {
			assert.True(t, g.IsAdjacent(clique[i], clique[j]),
				"witness pair %s—%s is not adjacent", clique[i], clique[j])
		}
	}
}

// bruteMaxClique enumerates all vertex subsets (fixtures stay tiny) and
// returns the true maximum clique size.
func bruteMaxClique(g *core.Graph) int {
	ids := g.Vertices()
	n := len(ids)
	best := 0
	for mask := 0; mask < 1<<n; mask++ {
		var members []string
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				members = append(members, ids[i])
			}
		}
		ok := true
		for i := 0; i < len(members) && ok; i++ {
			for j := i + 1; j < len(members); j++ {
				if !g.IsAdjacent(members[i], members[j]) {
					ok = false
					break
				}
			}
		}
		if ok && len(members) > best {
			best = len(members)
		}
	}

	return best
}

// TestCompute_EmptyGraph verifies the degenerate input: bound 0, empty
// witness, no error, solver untouched.
func TestCompute_EmptyGraph(t *testing.T) {
	res, err := cliquelb.Compute(core.NewGraph())
	require.NoError(t, err)
	assert.Equal(t, 0, res.Bound)
	assert.Empty(t, res.Clique)
	assert.NotNil(t, res.Clique, "empty graph yields an empty set, not nil")
}

// TestCompute_SingleVertex: one vertex is a clique of size 1.
func TestCompute_SingleVertex(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))

	res, err := cliquelb.Compute(g)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Bound)
	assert.Equal(t, []string{"A"}, res.Clique)
}

// TestCompute_IsolatedPair: two vertices, no edge — best clique size 1.
func TestCompute_IsolatedPair(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("B"))

	res, err := cliquelb.Compute(g)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Bound)
	assert.Len(t, res.Clique, 1)
}

// TestCompute_CompleteGraph: K_5 yields bound 5 with the full vertex set —
// the textbook sanity check.
func TestCompute_CompleteGraph(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Complete(5))
	require.NoError(t, err)

	res, err := cliquelb.Compute(g)
	require.NoError(t, err)
	assert.Equal(t, 5, res.Bound)
	assert.ElementsMatch(t, g.Vertices(), res.Clique)
}

// TestCompute_FourCycle: C_4 has no triangle; the bound is 2 and the
// witness is some adjacent pair.
func TestCompute_FourCycle(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(4))
	require.NoError(t, err)

	res, err := cliquelb.Compute(g)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Bound)
	assert.GreaterOrEqual(t, len(res.Clique), 2)
	assertValidClique(t, g, res.Clique)
}

// TestCompute_NamedShapes pins the bound for the stock fixture shapes.
func TestCompute_NamedShapes(t *testing.T) {
	cases := map[string]struct {
		cons  builder.Constructor
		bound int
	}{
		"path_6":  {builder.Path(6), 2},
		"star_7":  {builder.Star(7), 2},
		"cycle_5": {builder.Cycle(5), 2},
		"wheel_7": {builder.Wheel(7), 3},
		"k_3":     {builder.Complete(3), 3},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, nil, tc.cons)
			require.NoError(t, err)

			res, err := cliquelb.Compute(g)
			require.NoError(t, err)
			assert.Equal(t, tc.bound, res.Bound)
			assertValidClique(t, g, res.Clique)
			assert.GreaterOrEqual(t, len(res.Clique), res.Bound)
		})
	}
}

// TestCompute_SoundAgainstBruteForce cross-checks random fixtures: the
// reported bound never exceeds the true maximum clique size, and the
// witness is always a valid clique at least as large as the bound.
func TestCompute_SoundAgainstBruteForce(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(seed)},
			builder.RandomSparse(9, 0.45),
		)
		require.NoError(t, err)

		res, err := cliquelb.Compute(g)
		require.NoError(t, err)

		truth := bruteMaxClique(g)
		assert.LessOrEqual(t, res.Bound, truth, "seed %d: bound above the true clique number", seed)
		assert.GreaterOrEqual(t, len(res.Clique), res.Bound, "seed %d", seed)
		assertValidClique(t, g, res.Clique)
	}
}

// TestCompute_MonotoneUnderEdgeAddition: adding edges (never removing)
// must never decrease the reported bound.
func TestCompute_MonotoneUnderEdgeAddition(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(5))
	require.NoError(t, err)

	prev := 0
	ids := g.Vertices()
	// Fill the path up to K_5, one missing edge at a time.
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if g.IsAdjacent(ids[i], ids[j]) {
				continue
			}
			require.NoError(t, g.AddEdge(ids[i], ids[j]))

			res, cerr := cliquelb.Compute(g)
			require.NoError(t, cerr)
			assert.GreaterOrEqual(t, res.Bound, prev, "bound dropped after adding %s—%s", ids[i], ids[j])
			prev = res.Bound
		}
	}
	// Fully saturated: the path became K_5.
	assert.Equal(t, 5, prev)
}

// TestCompute_Deterministic: independent runs over the same static graph
// report the same bound, and every witness is a valid clique.
func TestCompute_Deterministic(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(7)},
		builder.RandomSparse(10, 0.5),
	)
	require.NoError(t, err)

	first, err := cliquelb.Compute(g)
	require.NoError(t, err)
	for run := 0; run < 3; run++ {
		res, cerr := cliquelb.Compute(g)
		require.NoError(t, cerr)
		assert.Equal(t, first.Bound, res.Bound)
		assertValidClique(t, g, res.Clique)
	}
}

// TestCompute_BackendsAgree: gini and gophersat report identical bounds.
func TestCompute_BackendsAgree(t *testing.T) {
	fixtures := map[string]builder.Constructor{
		"cycle_6":  builder.Cycle(6),
		"wheel_6":  builder.Wheel(6),
		"k_4":      builder.Complete(4),
		"sparse_8": builder.RandomSparse(8, 0.5),
	}
	for name, cons := range fixtures {
		t.Run(name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil,
				[]builder.BuilderOption{builder.WithSeed(13)}, cons)
			require.NoError(t, err)

			viaGini, err := cliquelb.Compute(g, cliquelb.WithSolver(sat.NewGini()))
			require.NoError(t, err)
			viaGopher, err := cliquelb.Compute(g, cliquelb.WithSolver(sat.NewGopher()))
			require.NoError(t, err)

			assert.Equal(t, viaGini.Bound, viaGopher.Bound)
			assertValidClique(t, g, viaGopher.Clique)
		})
	}
}

// TestCompute_InputValidation covers the nil-graph and nil-solver sentinels.
func TestCompute_InputValidation(t *testing.T) {
	res, err := cliquelb.Compute(nil)
	assert.ErrorIs(t, err, cliquelb.ErrNilGraph)
	assert.Equal(t, cliquelb.BoundUnknown, res.Bound)

	res, err = cliquelb.Compute(core.NewGraph(), cliquelb.WithSolver(nil))
	assert.ErrorIs(t, err, cliquelb.ErrNilSolver)
	assert.Equal(t, cliquelb.BoundUnknown, res.Bound)
}

// errProbe is a solver stub whose Solve always fails, exercising the
// abort-wholesale failure policy.
type errProbe struct {
	fail error
}

func (e *errProbe) Init() error                     { return nil }
func (e *errProbe) AddClauses(_ *sat.Formula) error { return nil }
func (e *errProbe) Solve() (bool, error)            { return false, e.fail }
func (e *errProbe) Model() (map[int]bool, error)    { return nil, sat.ErrNoModel }

// TestCompute_SolverFailureAborts: any probe error terminates the whole
// search with the sentinel bound and a wrapped cause — never a partial bound.
func TestCompute_SolverFailureAborts(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Complete(3))
	require.NoError(t, err)

	cause := errors.New("backend exploded")
	res, err := cliquelb.Compute(g, cliquelb.WithSolver(&errProbe{fail: cause}))

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, cliquelb.BoundUnknown, res.Bound)
	assert.Nil(t, res.Clique)
}
