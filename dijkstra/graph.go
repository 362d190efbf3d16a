package dijkstra

import "fmt"

// Edge is a directed, weighted arc to vertex To.
type Edge struct {
	To     int
	Weight int64
}

// Graph is a directed graph over vertices 0..n-1 stored as adjacency lists.
// Parallel edges and self-loops are kept as given.
type Graph struct {
	adj   [][]Edge
	edges int
}

// NewGraph returns a graph with n vertices and no edges. n < 0 is treated
// as 0.
func NewGraph(n int) *Graph {
	if n < 0 {
		n = 0
	}

	return &Graph{adj: make([][]Edge, n)}
}

// AddEdge appends the directed edge u→v with weight w.
//
// Errors:
//   - ErrVertexOutOfRange if u or v is not in [0, Vertices()).
//   - ErrNegativeWeight   if w < 0.
func (g *Graph) AddEdge(u, v int, w int64) error {
	if u < 0 || u >= len(g.adj) {
		return fmt.Errorf("%w: from=%d, n=%d", ErrVertexOutOfRange, u, len(g.adj))
	}
	if v < 0 || v >= len(g.adj) {
		return fmt.Errorf("%w: to=%d, n=%d", ErrVertexOutOfRange, v, len(g.adj))
	}
	if w < 0 {
		return fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, u, v, w)
	}
	g.adj[u] = append(g.adj[u], Edge{To: v, Weight: w})
	g.edges++

	return nil
}

// Vertices returns the vertex count.
func (g *Graph) Vertices() int { return len(g.adj) }

// Edges returns the number of edges added so far.
func (g *Graph) Edges() int { return g.edges }

// Neighbors returns the outgoing edges of u. The slice is owned by the graph
// and must not be modified. It returns nil for an out-of-range u.
func (g *Graph) Neighbors(u int) []Edge {
	if u < 0 || u >= len(g.adj) {
		return nil
	}

	return g.adj[u]
}
