package sat_test

import (
	"fmt"

	"github.com/katalvlaran/treebound/sat"
)

// ExampleAtLeastK shows the incremental pattern: encode "at least 1 of
// {x1, x2, x3}" once, then tighten the threshold step by step while the
// solver session accumulates clauses.
func ExampleAtLeastK() {
	f := sat.NewFormula()
	f.SetMaxVar(3)
	card, _ := sat.NewAtLeastK(f, []int{1, 2, 3}, 1)

	s := sat.NewGini()
	_ = s.AddClauses(f)

	prevMax := f.MaxVar()
	for {
		ok, _ := s.Solve()
		fmt.Printf("at least %d: %v\n", card.Threshold(), ok)
		if !ok {
			break
		}
		delta := sat.NewFormula()
		delta.SetMaxVar(prevMax)
		_ = card.StrengthenTo(delta, card.Threshold()+1)
		_ = s.AddClauses(delta)
		prevMax = delta.MaxVar()
	}

	// Output:
	// at least 1: true
	// at least 2: true
	// at least 3: true
	// at least 4: false
}
