// SPDX-License-Identifier: MIT
// Package: treebound/builder
//
// impl_wheel.go — implementation of Wheel(n) constructor.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices): hub plus a rim cycle of ≥ 3.
//   - Vertex 0 is the hub; vertices 1..n-1 form the rim cycle, each also
//     tied to the hub.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/treebound/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
	wheelHubIndex = 0
)

// Wheel returns a Constructor that builds the n-vertex wheel W_n: a hub
// adjacent to every vertex of an (n-1)-cycle. For n ≥ 6 the clique number
// is 3 (hub plus one rim edge); W_4 is K_4.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}

		hub := cfg.idFn(wheelHubIndex)
		if err := g.AddVertex(hub); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodWheel, hub, err)
		}

		rim := n - 1 // number of rim vertices, indices 1..n-1
		for i := 1; i <= rim; i++ {
			uID := cfg.idFn(i)
			// Spoke: hub—rim vertex (auto-creates the rim vertex).
			if err := g.AddEdge(hub, uID); err != nil {
				return fmt.Errorf("%s: AddEdge(%s—%s): %w", methodWheel, hub, uID, err)
			}
			// Rim edge to the next rim vertex, wrapping back to index 1.
			vID := cfg.idFn(i%rim + 1)
			if err := g.AddEdge(uID, vID); err != nil {
				return fmt.Errorf("%s: AddEdge(%s—%s): %w", methodWheel, uID, vID, err)
			}
		}

		return nil
	}
}
