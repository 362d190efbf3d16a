// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted digraphs.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a graph with non-negative edge weights.
// It processes vertices in order of increasing distance using a min-heap priority queue,
// relaxing edges and updating distances accordingly.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is settled at most once: V extractions that do work.
//   - Each edge relaxation may push a new entry into the heap: up to E pushes.
//   - Space: O(V + E)
//   - O(V) for distance and predecessor slices.
//   - O(E) worst-case for entries in the heap under “lazy-decrease-key”.
//
// Notes on implementation choices:
//
//   - Negative weights are rejected when edges are added, so no pre-scan is needed.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance,
//     or once the optional Target has been settled.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"
)

// Result holds the output of one Dijkstra run.
type Result struct {
	// Dist[v] is the shortest distance from the source to v, or Unreachable.
	Dist []int64
	// Prev[v] is v's predecessor on one shortest path, -1 for the source and
	// unreached vertices. Nil unless WithReturnPath was given.
	Prev []int
	// Source is the vertex the search started from.
	Source int
}

// Reachable reports whether v was reached by the search.
func (r *Result) Reachable(v int) bool {
	return v >= 0 && v < len(r.Dist) && r.Dist[v] != Unreachable
}

// PathTo reconstructs the vertex sequence source→…→v.
//
// Errors:
//   - ErrPathNotRecorded if the run did not use WithReturnPath.
//   - ErrNoPath          if v is out of range or was not reached.
func (r *Result) PathTo(v int) ([]int, error) {
	if r.Prev == nil {
		return nil, ErrPathNotRecorded
	}
	if !r.Reachable(v) {
		return nil, fmt.Errorf("%w: %d", ErrNoPath, v)
	}

	var path []int
	for cur := v; cur != noVertex; cur = r.Prev[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to all other vertices of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Source must be a vertex of g (ErrSourceOutOfRange).
//  3. Target, if set, must be a vertex of g (ErrTargetOutOfRange).
//
// Options customization:
//
//   - Source(v):              starting vertex (default 0).
//   - WithTarget(v):          stop once v is settled.
//   - WithReturnPath():       populate Result.Prev.
//   - WithMaxDistance(x):     vertices with distance > x are not explored (x ≥ 0).
//   - WithInfEdgeThreshold(t): edges with weight ≥ t are skipped (t > 0).
func Dijkstra(g *Graph, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	V := g.Vertices()
	if cfg.Source < 0 || cfg.Source >= V {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrSourceOutOfRange, cfg.Source, V)
	}
	if cfg.Target != noVertex && (cfg.Target < 0 || cfg.Target >= V) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrTargetOutOfRange, cfg.Target, V)
	}

	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]int64, V),
		visited: make([]bool, V),
		pq:      make(nodePQ, 0, V),
	}
	if cfg.ReturnPath {
		r.prev = make([]int, V)
	}

	r.init()
	r.process()

	return &Result{Dist: r.dist, Prev: r.prev, Source: cfg.Source}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *Graph  // The input graph; read-only within Dijkstra.
	options Options // Configuration options (Source, thresholds, etc.).
	dist    []int64 // dist[v] = current best distance from Source.
	prev    []int   // prev[v] = predecessor on the shortest path, or nil.
	visited []bool  // visited[v] = distance of v is final.
	pq      nodePQ  // Min-heap of nodeItem for the lazy priority queue.
}

// init sets every distance to Unreachable and pushes Source=0 into the heap.
func (r *runner) init() {
	for v := range r.dist {
		r.dist[v] = Unreachable
		if r.prev != nil {
			r.prev[v] = noVertex
		}
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly extracts the closest unsettled vertex and relaxes its
// outgoing edges, until the heap drains, the frontier passes MaxDistance,
// or the Target is settled.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		u := item.id

		// Stale heap entry.
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true

		if u == r.options.Target {
			break
		}
		r.relax(u)
	}
}

// relax attempts to improve the distance of every neighbor of the settled vertex u.
func (r *runner) relax(u int) {
	du := r.dist[u]
	for _, e := range r.g.Neighbors(u) {
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		// du + w would overflow: the neighbor cannot be improved through u.
		if e.Weight > Unreachable-1-du {
			continue
		}
		newDist := du + e.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strict "<" avoids pushing duplicates on ties.
		if newDist >= r.dist[e.To] {
			continue
		}

		r.dist[e.To] = newDist
		if r.prev != nil {
			r.prev[e.To] = u
		}
		heap.Push(&r.pq, nodeItem{id: e.To, dist: newDist})
	}
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   int   // vertex index
	dist int64 // distance from source at push time
}

// nodePQ is a min-heap of nodeItem ordered by dist ascending. Outdated
// entries stay in the heap and are skipped when popped.
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. x must be a nodeItem.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the last element; heap.Pop moves the minimum there first.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
