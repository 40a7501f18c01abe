// SPDX-License-Identifier: MIT
// Package: treebound/builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits each unordered pair {i,j} with i<j exactly once.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n) vertices + O(n²) edges emission.
//   - Space: O(n) extra for the precomputed ID slice.
//
// Determinism:
//   - Deterministic IDs via cfg.idFn; deterministic pair order (i,j), i<j.

package builder

import (
	"fmt"

	"github.com/katalvlaran/treebound/core"
)

// File-local constants for method tagging and parameter minima (no magic numbers).
const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
// The clique number of the result is n, which makes it the canonical
// fixture for tree-width lower-bound assertions.
func Complete(n int) Constructor {
	// The returned closure captures n; BuildGraph supplies (g,cfg).
	return func(g *core.Graph, cfg builderConfig) error {
		// Early parameter validation: K_n is defined for n≥1.
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		// Precompute IDs in deterministic index order.
		ids := make([]string, n)
		for i := 0; i < n; i++ {
			ids[i] = cfg.idFn(i)
			if err := g.AddVertex(ids[i]); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodComplete, ids[i], err)
			}
		}

		// Emit each unordered pair exactly once, lexicographic by (i,j).
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := g.AddEdge(ids[i], ids[j]); err != nil {
					return fmt.Errorf("%s: AddEdge(%s,%s): %w", methodComplete, ids[i], ids[j], err)
				}
			}
		}

		return nil
	}
}
