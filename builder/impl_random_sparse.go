// SPDX-License-Identifier: MIT
// Package: treebound/builder
//
// impl_random_sparse.go — implementation of RandomSparse(n, p) constructor
// (Erdős–Rényi G(n,p) over unordered pairs).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - Requires an RNG: supply WithSeed(...) or WithRand(...) (else ErrNeedRandSource).
//   - Every unordered pair {i,j}, i<j, is drawn exactly once and in
//     lexicographic order, so a fixed seed fixes the graph.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity: O(n²) pair draws, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/treebound/core"
)

const (
	methodRandomSparse   = "RandomSparse"
	minRandomSparseNodes = 1
	minProbability       = 0.0
	maxProbability       = 1.0
)

// RandomSparse returns a Constructor that builds G(n,p): n vertices, each
// unordered pair joined independently with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// Validate parameters before any mutation.
		if n < minRandomSparseNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomSparseNodes, ErrTooFewVertices)
		}
		if p < minProbability || p > maxProbability {
			return fmt.Errorf("%s: p=%g: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// Vertices in deterministic index order.
		ids := make([]string, n)
		for i := 0; i < n; i++ {
			ids[i] = cfg.idFn(i)
			if err := g.AddVertex(ids[i]); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodRandomSparse, ids[i], err)
			}
		}

		// One draw per unordered pair, in a fixed order: the draw sequence
		// (and hence the graph) is a pure function of the seed.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() >= p {
					continue
				}
				if err := g.AddEdge(ids[i], ids[j]); err != nil {
					return fmt.Errorf("%s: AddEdge(%s,%s): %w", methodRandomSparse, ids[i], ids[j], err)
				}
			}
		}

		return nil
	}
}
