// Package dijkstra provides Dijkstra's shortest-path algorithm on directed
// graphs with non-negative int64 edge weights and vertices numbered 0..n-1.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable vertices in O((V + E) log V) time, where V = |vertices| and E = |edges|.
//   - It relies on a min-heap (priority queue) to always expand the next-closest vertex.
//   - Supports optional path reconstruction, early exit on a target, distance caps,
//     and “impassable” edge thresholds.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - ReturnPath: records predecessors so Result.PathTo can rebuild each path.
//   - Target: stops as soon as the target's distance is final (single-pair queries).
//   - MaxDistance: aborts exploration beyond a specified distance, saving work in large graphs.
//   - InfEdgeThreshold: treats any edge with weight ≥ threshold as impassable (infinite cost).
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:         nil *Graph passed to Dijkstra.
//   - ErrSourceOutOfRange: Source is not a vertex.
//   - ErrTargetOutOfRange: Target is not a vertex.
//   - ErrVertexOutOfRange: AddEdge endpoint is not a vertex.
//   - ErrNegativeWeight:   AddEdge weight is negative.
//   - ErrNoPath, ErrPathNotRecorded: returned by Result.PathTo.
//   - ErrBadMaxDistance, ErrBadInfThreshold: panics from option constructors.
//
// API reference:
//
//	g := dijkstra.NewGraph(4)
//	_ = g.AddEdge(0, 1, 2)
//	res, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithReturnPath())
//	// res.Dist[v] == dijkstra.Unreachable when v was not reached.
//	path, err := res.PathTo(3)
//
// Thread safety:
//
//   - A *Graph must not be modified while Dijkstra runs on it.
//   - Concurrent Dijkstra calls on an unchanging graph are safe; each run owns its state.
package dijkstra
