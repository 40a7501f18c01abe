// Package core defines the central Graph type and provides thread-safe
// primitives for building, querying, and cloning undirected simple graphs.
//
// This file declares the Graph struct, GraphOption, sentinel errors,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrLoopNotAllowed - self-loop when loops are disabled.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
// Loops are counted by EdgeCount but never make a vertex adjacent to itself:
// IsAdjacent(v, v) stays false by contract.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the core in-memory graph data structure.
//
// It models an undirected, unweighted simple graph (optionally with
// self-loops). A single sync.RWMutex guards the vertex set, the adjacency
// map and the edge counter; reads take the read lock, mutations the write
// lock.
type Graph struct {
	mu sync.RWMutex // guards vertices, adjacency, edgeCount, loopCount

	// Configuration flags
	allowLoops bool // allow self-loops

	// Storage
	vertices  map[string]struct{}            // vertex ID → presence
	adjacency map[string]map[string]struct{} // adjacency[u][v] mirrored for v,u
	edgeCount int                            // number of distinct unordered edges (excluding loops)
	loopCount int                            // number of self-loops
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph is undirected, unweighted, with no self-loops.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]struct{}),
		adjacency: make(map[string]map[string]struct{}),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}
