// SPDX-License-Identifier: MIT
// Package: treebound/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are NEVER wrapped with formatted strings at definition site.
//   - Implementations SHOULD attach context using `%w`.
//   - Constructors MUST NOT panic at runtime; validation panics are
//     confined to option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (e.g., n) is smaller
// than the allowed minimum for the requested constructor.
// Classification: Validation error (parameters).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates an edge probability outside [0, 1].
// Classification: Validation error (parameters).
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG.
// Supply WithSeed(...) or WithRand(...).
// Classification: Validation error (configuration).
var ErrNeedRandSource = errors.New("builder: rng is required")
