package dijkstra

import (
	"context"
	"errors"
	"math"

	"github.com/katalvlaran/hillclimb/elevation"
)

// Sentinel errors returned by Dijkstra.
var (
	// ErrNilGraph indicates that a nil Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNoSource indicates that the Source option was never applied.
	ErrNoSource = errors.New("dijkstra: source coordinate not set")

	// ErrVertexNotFound indicates that the source is not a cell of the graph.
	ErrVertexNotFound = errors.New("dijkstra: source not found in graph")

	// ErrNegativeWeight indicates that Graph.Cost returned a negative price.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Graph is the implicit directed graph searched by Dijkstra.
// *elevation.Grid and *elevation.Reversed both satisfy it.
type Graph interface {
	// Contains reports whether c is a vertex.
	Contains(c elevation.Coordinate) bool
	// Neighbors lists the heads of the edges leaving c.
	Neighbors(c elevation.Coordinate) []elevation.Coordinate
	// Cost returns the price of the edge from→to, ok == false if absent.
	Cost(from, to elevation.Coordinate) (cost int64, ok bool)
}

// Options configures a Dijkstra run.
//
// Source      – starting cell; required.
// Target      – if set, the search stops once Target is finalized.
// StopWhen    – if set, the search stops at the first finalized cell for
//
//	which it returns true; that cell is reported by Result.Reached.
//
// MaxDistance – cells farther than this are never finalized. Default math.MaxInt64.
// Ctx         – checked between heap extractions. Default context.Background().
// OnFinalize  – called once per finalized cell with its distance.
type Options struct {
	Source      elevation.Coordinate
	Target      elevation.Coordinate
	StopWhen    func(c elevation.Coordinate) bool
	MaxDistance int64
	Ctx         context.Context
	OnFinalize  func(c elevation.Coordinate, dist int64)

	hasSource bool
	hasTarget bool
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns Options with no source, no target, no distance cap,
// a background context and no hooks.
func DefaultOptions() Options {
	return Options{
		MaxDistance: math.MaxInt64,
		Ctx:         context.Background(),
	}
}

// Source sets the starting cell. Must be supplied.
func Source(c elevation.Coordinate) Option {
	return func(o *Options) {
		o.Source = c
		o.hasSource = true
	}
}

// WithTarget stops the search once c has been finalized. Distances of cells
// still in the frontier at that point are tentative.
func WithTarget(c elevation.Coordinate) Option {
	return func(o *Options) {
		o.Target = c
		o.hasTarget = true
	}
}

// WithStopWhen stops the search at the first finalized cell satisfying fn.
func WithStopWhen(fn func(c elevation.Coordinate) bool) Option {
	return func(o *Options) {
		o.StopWhen = fn
	}
}

// WithMaxDistance caps the explored distance. Panics with ErrBadMaxDistance
// on a negative value.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithContext sets a context checked between heap extractions.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnFinalize registers a hook called once for every finalized cell.
func WithOnFinalize(fn func(c elevation.Coordinate, dist int64)) Option {
	return func(o *Options) {
		o.OnFinalize = fn
	}
}

// Result holds the state of a finished search.
//
// Dist maps every discovered cell to its best known distance; for cells that
// were finalized it is the true shortest distance. Prev maps every discovered
// cell except the source to its predecessor on that path.
type Result struct {
	Source elevation.Coordinate
	Dist   map[elevation.Coordinate]int64
	Prev   map[elevation.Coordinate]elevation.Coordinate

	reached    elevation.Coordinate
	hasReached bool
}

// Reached returns the cell that satisfied StopWhen, if any.
func (r *Result) Reached() (elevation.Coordinate, bool) {
	return r.reached, r.hasReached
}

// Distance returns the recorded distance to c and whether c was discovered.
func (r *Result) Distance(c elevation.Coordinate) (int64, bool) {
	d, ok := r.Dist[c]
	return d, ok
}

// PathTo rebuilds the walk Source → dst by following Prev backwards.
// An undiscovered dst yields an empty path.
func (r *Result) PathTo(dst elevation.Coordinate) elevation.Path {
	if _, ok := r.Dist[dst]; !ok {
		return nil
	}
	var path elevation.Path
	for cur := dst; ; {
		path = append(path, cur)
		if cur == r.Source {
			break
		}
		prev, ok := r.Prev[cur]
		if !ok {
			return nil // broken chain, never produced by Dijkstra
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
