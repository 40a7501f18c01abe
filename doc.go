// Package treebound computes provable lower bounds on the tree-width of
// undirected graphs by searching for a maximum clique with an incremental
// SAT solver.
//
// 🚀 What is treebound?
//
//	A thread-safe library that brings together:
//		• Core primitives: build undirected simple graphs, query adjacency safely under locks
//		• Fixture builders: complete graphs, cycles, paths, stars, wheels, sparse random graphs
//		• SAT plumbing: CNF formulas, incremental "at-least-k" cardinality encodings, DIMACS I/O
//		• Pluggable solver backends: gini (incremental) and gophersat
//		• The clique lower bound: an incremental SAT search that never re-encodes from scratch
//
// ✨ Why choose treebound?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – sentinel errors, deterministic iteration order
//   - Pure Go – no cgo; SAT backends are ordinary Go modules
//   - Extensible – swap in any solver implementing the four-operation sat.Solver capability
//
// Under the hood, everything is organized under four subpackages:
//
//	core/     — fundamental Graph type & thread-safe primitives
//	builder/  — deterministic graph constructors for tests and experiments
//	sat/      — Formula, Clause, cardinality encodings, solver backends, DIMACS
//	cliquelb/ — the SAT-driven maximum-clique tree-width lower bound
//
// Quick ASCII example:
//
//	    A───B
//	    │ ╳ │
//	    C───D
//
//	K₄: every pair adjacent; cliquelb reports the lower bound 4.
//
// Every clique must appear together in some bag of any tree decomposition,
// so a maximum clique witnesses how wide the decomposition must be. See
// cliquelb's package documentation for the encoding and the incremental
// search loop.
//
//	go get github.com/katalvlaran/treebound
package treebound
