// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on int-indexed weighted digraphs.
//
// Options:
//
//	– Source:           index of the starting vertex (must be in range).
//	– Target:           optional vertex; the search stops once it is settled.
//	– ReturnPath:       if true, record predecessors for path reconstruction.
//	– MaxDistance:      optional cap on distances to explore; vertices beyond this are skipped.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrNilGraph         if the provided graph pointer is nil.
//	– ErrSourceOutOfRange if the source index is not a vertex of the graph.
//	– ErrTargetOutOfRange if the target index is not a vertex of the graph.
//	– ErrVertexOutOfRange if AddEdge references a missing vertex.
//	– ErrNegativeWeight   if AddEdge is given a negative weight.
//	– ErrNoPath           if PathTo is asked for an unreachable vertex.
//	– ErrPathNotRecorded  if PathTo is called without WithReturnPath.
//	– ErrBadMaxDistance   if MaxDistance < 0 (panic in the option constructor).
//	– ErrBadInfThreshold  if InfEdgeThreshold <= 0 (panic in the option constructor).
package dijkstra

import (
	"errors"
	"math"
)

// Unreachable is the distance reported for vertices the search never reached.
const Unreachable int64 = math.MaxInt64

// noVertex marks an absent predecessor or an unset target.
const noVertex = -1

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceOutOfRange indicates that the source is not in [0, Vertices()).
	ErrSourceOutOfRange = errors.New("dijkstra: source vertex out of range")

	// ErrTargetOutOfRange indicates that the target is not in [0, Vertices()).
	ErrTargetOutOfRange = errors.New("dijkstra: target vertex out of range")

	// ErrVertexOutOfRange indicates that an edge endpoint is not a vertex.
	ErrVertexOutOfRange = errors.New("dijkstra: vertex out of range")

	// ErrNegativeWeight indicates that a negative edge weight was supplied.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrNoPath indicates that the requested vertex is unreachable from the source.
	ErrNoPath = errors.New("dijkstra: no path to vertex")

	// ErrPathNotRecorded indicates PathTo was called on a result computed
	// without WithReturnPath.
	ErrPathNotRecorded = errors.New("dijkstra: predecessors not recorded")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting vertex (0 by default).
// Target           – stop as soon as this vertex is settled (-1: explore everything).
// ReturnPath       – if true, Result.Prev is populated.
// MaxDistance      – optional cap on distances to explore. Must be ≥ 0.
// InfEdgeThreshold – edges with weight ≥ this are impassable. Must be > 0.
type Options struct {
	Source           int   // index of the source vertex
	Target           int   // early-exit vertex, or -1
	ReturnPath       bool  // whether to record predecessors
	MaxDistance      int64 // maximum distance to explore
	InfEdgeThreshold int64 // weight threshold above which edges are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex.
func Source(v int) Option {
	return func(o *Options) {
		o.Source = v
	}
}

// WithTarget makes the search stop as soon as v's distance is final.
// Distances of vertices settled after v are then left as discovered so far.
func WithTarget(v int) Option {
	return func(o *Options) {
		o.Target = v
	}
}

// WithReturnPath enables generation of the predecessor slice in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// A negative value panics with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold above which edges are
// considered non-traversable. A value ≤ 0 panics with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	if threshold <= 0 {
		panic(ErrBadInfThreshold.Error())
	}

	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
// source 0, no target, no predecessors, no distance cap, no impassable edges.
func DefaultOptions() Options {
	return Options{
		Source:           0,
		Target:           noVertex,
		ReturnPath:       false,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}
