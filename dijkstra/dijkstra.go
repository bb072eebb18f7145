package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/hillclimb/elevation"
)

// Dijkstra computes shortest distances from Options.Source over g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Source must be supplied (ErrNoSource).
//  3. g must contain Source (ErrVertexNotFound).
//
// The search runs until the frontier is empty, or until Target / StopWhen
// is satisfied. A destination that is never reached is simply absent from
// Result.Dist.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.hasSource {
		return nil, ErrNoSource
	}
	if !g.Contains(cfg.Source) {
		return nil, fmt.Errorf("%w: %s", ErrVertexNotFound, cfg.Source)
	}

	r := &runner{
		g:       g,
		options: cfg,
		res: &Result{
			Source: cfg.Source,
			Dist:   make(map[elevation.Coordinate]int64),
			Prev:   make(map[elevation.Coordinate]elevation.Coordinate),
		},
		done: make(map[elevation.Coordinate]bool),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// ShortestPath searches from source to g.End() and returns the walk,
// source included. The number of steps is len(path)-1. An unreachable end
// yields an empty path and a nil error.
func ShortestPath(g *elevation.Grid, source elevation.Coordinate, opts ...Option) (elevation.Path, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	all := make([]Option, 0, len(opts)+2)
	all = append(all, opts...)
	all = append(all, Source(source), WithTarget(g.End()))
	res, err := Dijkstra(g, all...)
	if err != nil {
		return nil, err
	}

	return res.PathTo(g.End()), nil
}

// runner holds the mutable state of a single Dijkstra execution. Nothing in
// it outlives the call.
type runner struct {
	g       Graph
	options Options
	res     *Result
	done    map[elevation.Coordinate]bool // finalized cells
	pq      nodePQ
	seq     uint64
}

// init seeds the heap with the source at distance zero.
func (r *runner) init() {
	r.res.Dist[r.options.Source] = 0
	heap.Init(&r.pq)
	r.push(r.options.Source, 0)
}

func (r *runner) push(c elevation.Coordinate, d int64) {
	heap.Push(&r.pq, &nodeItem{id: c, dist: d, seq: r.seq})
	r.seq++
}

// process repeatedly finalizes the closest frontier cell and relaxes its
// outgoing edges.
func (r *runner) process() error {
	cfg := r.options
	for r.pq.Len() > 0 {
		// 1) Honour cancellation between pops.
		if err := cfg.Ctx.Err(); err != nil {
			return err
		}

		// 2) Pop the closest entry and drop it if a shorter one already won.
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist
		if r.done[u] || d > r.res.Dist[u] {
			continue // stale entry
		}
		// 3) Everything left in the heap is beyond MaxDistance.
		if d > cfg.MaxDistance {
			break
		}

		// 4) Finalize u.
		r.done[u] = true
		if cfg.OnFinalize != nil {
			cfg.OnFinalize(u, d)
		}

		// 5) Early exit once the target or a StopWhen cell is settled.
		if cfg.hasTarget && u == cfg.Target {
			break
		}
		if cfg.StopWhen != nil && cfg.StopWhen(u) {
			r.res.reached = u
			r.res.hasReached = true
			break
		}

		// 6) Relax outgoing edges.
		if err := r.relax(u, d); err != nil {
			return err
		}
	}

	return nil
}

// relax offers every neighbor of the finalized cell u the distance d+cost.
func (r *runner) relax(u elevation.Coordinate, d int64) error {
	for _, v := range r.g.Neighbors(u) {
		// 1) Finalized cells never improve.
		if r.done[v] {
			continue
		}

		// 2) Fetch the step cost and reject negative weights.
		w, ok := r.g.Cost(u, v)
		if !ok {
			continue
		}
		if w < 0 {
			return fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, u, v, w)
		}
		// 3) Candidate distance, capped by MaxDistance.
		nd := d + w
		if nd > r.options.MaxDistance {
			continue
		}

		// 4) Record strict improvements and queue them.
		if old, seen := r.res.Dist[v]; seen && nd >= old {
			continue
		}
		r.res.Dist[v] = nd
		r.res.Prev[v] = u
		r.push(v, nd)
	}

	return nil
}

// nodeItem is a heap entry. seq breaks distance ties in push order.
type nodeItem struct {
	id   elevation.Coordinate
	dist int64
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
