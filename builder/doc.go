// SPDX-License-Identifier: MIT
// Package: treebound/builder
//
// doc.go — package overview.
//
// Package builder provides deterministic constructors for core.Graph
// fixtures: the canonical shapes tree-width experiments and tests reach
// for (complete graphs, cycles, paths, stars, wheels) plus seeded sparse
// random graphs.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g,
//     resolves cfg, runs cons in order.
//   - All public factories return a Constructor closure; implementations
//     live in impl_*.go, one file per shape.
//   - Functional options (BuilderOption) resolve into an immutable
//     builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒
//     identical graphs.
//   - Safety: never panic at runtime; constructors return sentinel errors.
//     Option constructors validate and panic on programmer error
//     (WithIDScheme(nil)), keeping invariants tight at setup time.
//
// Known clique numbers of the shipped shapes, handy for asserting
// tree-width lower bounds:
//
//	Complete(n)       → ω = n
//	Cycle(n), n ≥ 4   → ω = 2
//	Path(n), n ≥ 2    → ω = 2
//	Star(n)           → ω = 2
//	Wheel(n), n ≥ 6   → ω = 3 (hub + one rim edge)
//
// For usage, see example_test.go in this package.
package builder
