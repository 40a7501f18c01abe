// SPDX-License-Identifier: MIT
// Package: treebound/builder
//
// impl_star.go — implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices): hub plus at least one leaf.
//   - Vertex 0 is the hub; vertices 1..n-1 are leaves, each tied to the hub.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/treebound/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
	starHubIndex = 0
)

// Star returns a Constructor that builds the n-vertex star S_n: one hub
// adjacent to n-1 pairwise non-adjacent leaves. Clique number 2.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		hub := cfg.idFn(starHubIndex)
		if err := g.AddVertex(hub); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, hub, err)
		}

		// Each leaf ties straight to the hub; AddEdge auto-creates the leaf.
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			if err := g.AddEdge(hub, leaf); err != nil {
				return fmt.Errorf("%s: AddEdge(%s—%s): %w", methodStar, hub, leaf, err)
			}
		}

		return nil
	}
}
