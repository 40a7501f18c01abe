// SPDX-License-Identifier: MIT
// Package: treebound/builder
//
// config.go — internal configuration, deterministic defaults, and the
// functional options that resolve into it.
//
// Deterministic defaults (no surprises):
//   - idFn = decimalID ("0","1","2",...)
//   - rng  = nil       (pure/deterministic unless seeded)

package builder

import (
	"math/rand" // RNG for stochastic builders
	"strconv"   // decimal vertex IDs ("0","1",...)
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn func(int) string
	// RNG for stochastic choices; nil means "no randomness available".
	rng *rand.Rand
}

// decimalID is the default ID scheme: 0 → "0", 1 → "1", ...
func decimalID(i int) string { return strconv.Itoa(i) }

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn: decimalID, // "0","1","2",...
		rng:  nil,       // no RNG unless explicitly set
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic vertex ID generator: idx -> string.
// Panics on nil to surface programmer error early and keep invariants tight.
// Complexity: O(1) time, O(1) space.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		// Fail fast: option constructors validate and panic.
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		// Seeded source → reproducible draws.
		c.rng = rand.New(rand.NewSource(seed))
	}
}
