// Package core implements the Graph methods: vertex and edge lifecycle,
// adjacency queries, deterministic iteration, and cloning.
package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(id)

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1)
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// AddEdge inserts the undirected edge {u, v}, auto-creating missing
// endpoints. Adding an edge that already exists is a no-op, so repeated
// insertion never inflates EdgeCount.
//
// Errors:
//   - ErrEmptyVertexID  : if u == "" or v == "".
//   - ErrLoopNotAllowed : if u == v and the graph was built without WithLoops().
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v string) error {
	// 1. Validate endpoint IDs before touching any state.
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	if u == v && !g.allowLoops {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2. Endpoints are auto-created; AddEdge("A","B") on an empty graph
	//    yields two vertices and one edge.
	g.ensureVertex(u)
	g.ensureVertex(v)

	// 3. Self-loops are recorded in loopCount only; they never enter the
	//    adjacency map, keeping IsAdjacent irreflexive.
	if u == v {
		g.loopCount++
		return nil
	}

	// 4. Mirror the edge both ways; count it once.
	if _, ok := g.adjacency[u][v]; !ok {
		g.adjacency[u][v] = struct{}{}
		g.adjacency[v][u] = struct{}{}
		g.edgeCount++
	}

	return nil
}

// HasEdge reports whether the undirected edge {u, v} exists.
// Complexity: O(1)
func (g *Graph) HasEdge(u, v string) bool {
	return g.IsAdjacent(u, v)
}

// IsAdjacent reports whether distinct vertices u and v share an edge.
//
// The predicate is symmetric (IsAdjacent(u,v) == IsAdjacent(v,u)),
// irreflexive-safe (u == v ⇒ false, even with loops enabled), and total
// (unknown IDs ⇒ false, never an error).
//
// Complexity: O(1)
func (g *Graph) IsAdjacent(u, v string) bool {
	if u == v || u == "" || v == "" {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[u][v]

	return ok
}

// Vertices returns all vertex IDs sorted ascending.
//
// The sorted order is the stable iteration order callers rely on when
// building per-search translation tables: the same graph always yields
// the same sequence.
//
// Complexity: O(V log V)
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.mu.RUnlock()

	sort.Strings(ids)

	return ids
}

// NeighborIDs returns the IDs adjacent to id, sorted ascending.
//
// Errors:
//   - ErrVertexNotFound: if id is absent from the graph.
//
// Complexity: O(deg(v) log deg(v))
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	if _, ok := g.vertices[id]; !ok {
		g.mu.RUnlock()
		return nil, ErrVertexNotFound
	}
	ids := make([]string, 0, len(g.adjacency[id]))
	for nb := range g.adjacency[id] {
		ids = append(ids, nb)
	}
	g.mu.RUnlock()

	sort.Strings(ids)

	return ids, nil
}

// VertexCount returns the number of vertices.
// Complexity: O(1)
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of distinct undirected edges, self-loops
// included.
// Complexity: O(1)
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount + g.loopCount
}

// Clone returns a deep copy of the graph: same flags, same vertices, same
// edges, fully independent storage. Mutating the clone never affects the
// original, which makes it the natural tool for "add one edge and
// re-solve" experiments.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		allowLoops: g.allowLoops,
		vertices:   make(map[string]struct{}, len(g.vertices)),
		adjacency:  make(map[string]map[string]struct{}, len(g.adjacency)),
		edgeCount:  g.edgeCount,
		loopCount:  g.loopCount,
	}
	for id := range g.vertices {
		clone.vertices[id] = struct{}{}
	}
	for u, row := range g.adjacency {
		cr := make(map[string]struct{}, len(row))
		for v := range row {
			cr[v] = struct{}{}
		}
		clone.adjacency[u] = cr
	}

	return clone
}

// ensureVertex registers id in the vertex catalog and bootstraps its
// adjacency bucket. Caller must hold the write lock.
func (g *Graph) ensureVertex(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
	g.adjacency[id] = make(map[string]struct{})
}
