// SPDX-License-Identifier: MIT
// Package: treebound/builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices): C_3 is the smallest simple cycle.
//   - Vertices 0..n-1 via cfg.idFn; ring edges i—(i+1 mod n).
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/treebound/core"
)

// File-local constants (no magic numbers; stable method tags for context).
const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
// For n ≥ 4 the clique number is 2 (no triangles), making C_4 the
// canonical "bound is exactly 2" scenario.
func Cycle(n int) Constructor {
	// Return a closure capturing n; BuildGraph will pass (g,cfg).
	return func(g *core.Graph, cfg builderConfig) error {
		// Validate parameter domain early (fail fast, no work on invalid input).
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		// Add n vertices with deterministic IDs produced by cfg.idFn.
		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodCycle, id, err)
			}
		}

		// Emit ring edges in ascending i; for i==n-1, connect back to 0.
		for i := 0; i < n; i++ {
			uID := cfg.idFn(i)
			vID := cfg.idFn((i + 1) % n)
			if err := g.AddEdge(uID, vID); err != nil {
				return fmt.Errorf("%s: AddEdge(%s—%s): %w", methodCycle, uID, vID, err)
			}
		}

		return nil
	}
}
