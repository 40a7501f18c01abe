// Package core provides a thread-safe in-memory undirected simple Graph
// with a minimal, composable API surface, tuned for the needs of
// tree-width lower-bound computations.
//
// The Graph G = (V,E) keeps exactly the structure those computations
// consume:
//
//   - Undirected, unweighted edges stored symmetrically:
//     adjacency[u][v] = struct{}{} and adjacency[v][u] = struct{}{}
//   - Optional self-loops (WithLoops); rejected by default
//   - A single sync.RWMutex guarding vertices, edges and adjacency
//   - Deterministic iteration — Vertices() and NeighborIDs() return
//     results sorted ascending by vertex ID
//
// Why use core.Graph?
//
//   - Stable iteration order — the vertex↔variable bijection built by
//     cliquelb requires one fixed order per search, and sorted IDs give
//     the same order on every run.
//   - Symmetric, irreflexive-safe adjacency — IsAdjacent(u, v) is defined
//     for every pair of IDs, returns false for u == v, and always equals
//     IsAdjacent(v, u).
//   - Clone support — grow a copy edge-by-edge to study how bounds change
//     while the original stays intact.
//
// Configuration Options (GraphOption):
//
//	– WithLoops()
//	    Permits self-loops (u == v); otherwise AddEdge(v, v) → ErrLoopNotAllowed.
//	    Loops never affect adjacency between distinct vertices.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error          // O(1)
//	HasVertex(id string) bool           // O(1)
//
//	// Edge lifecycle
//	AddEdge(u, v string) error          // O(1), auto-creates endpoints
//	HasEdge(u, v string) bool           // O(1)
//
//	// Queries
//	IsAdjacent(u, v string) bool        // O(1), symmetric, false for u == v
//	Vertices() []string                 // O(V log V), sorted
//	NeighborIDs(id string) ([]string, error) // O(deg log deg), sorted
//	VertexCount() int                   // O(1)
//	EdgeCount() int                     // O(1)
//	Clone() *Graph                      // O(V + E)
//
// All methods are safe for concurrent use; mutating and reading callers
// serialize on the internal RWMutex.
package core
