// SPDX-License-Identifier: MIT
// Package: treebound/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g,
//     resolves cfg, runs cons in order.
//   - All public factories are declared in impl_*.go (single place per shape).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/treebound/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Preserve determinism for the same config and call order.
//
// Rationale: isolates topology logic behind a uniform function type.
// Complexity (this type): O(1) to pass; actual cost is in the closure body.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves
// the builder configuration from bopts, and applies all constructors in
// order. Any constructor error is wrapped with the context
// "BuildGraph: %w" and returned immediately; no partial cleanup is
// attempted by design.
//
// Complexity:
//   - Resolving options: O(len(bopts)) time, O(1) space.
//   - Applying K constructors: Σ cost of each constructor; wrapper overhead O(K).
//
// Errors:
//   - Wraps constructor errors via %w; callers should branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	// Create a new graph using the provided core graph options (O(1) here).
	g := core.NewGraph(gopts...)
	// Resolve the builder configuration once; constructors share it.
	cfg := newBuilderConfig(bopts...)

	// Apply constructors in caller order; first failure wins.
	for _, con := range cons {
		if err := con(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
