// SPDX-License-Identifier: MIT
// Package: treebound/builder
//
// impl_path.go — implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); Path(1) is a single vertex.
//   - Vertices 0..n-1 via cfg.idFn; chain edges i—(i+1).
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/treebound/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 1
)

// Path returns a Constructor that builds the n-vertex path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		// Vertices first, so Path(1) yields one isolated vertex.
		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodPath, id, err)
			}
		}

		// Chain edges in ascending order.
		for i := 1; i < n; i++ {
			uID := cfg.idFn(i - 1)
			vID := cfg.idFn(i)
			if err := g.AddEdge(uID, vID); err != nil {
				return fmt.Errorf("%s: AddEdge(%s—%s): %w", methodPath, uID, vID, err)
			}
		}

		return nil
	}
}
