package hiking

import (
	"slices"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hillclimb/dijkstra"
	"github.com/katalvlaran/hillclimb/elevation"
)

// BestPath returns the shortest walk to g.End() starting from any cell at
// elevation.Lowest, source included. If no lowest cell can reach the end the
// path is empty and err is nil.
func BestPath(g *elevation.Grid, opts ...Option) (elevation.Path, error) {
	if g == nil {
		return nil, dijkstra.ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	log := cfg.Logger.WithField("strategy", cfg.Strategy.String())
	var (
		best elevation.Path
		err  error
	)
	switch cfg.Strategy {
	case Reverse:
		best, err = reverse(g, cfg)
	case BruteForce:
		best, err = bruteForce(g, cfg, log)
	default:
		return nil, ErrUnknownStrategy
	}
	if err != nil {
		return nil, err
	}

	if best.Empty() {
		log.Info("no lowest cell reaches the end")
	} else {
		log.WithFields(logrus.Fields{
			"from":  best[0].String(),
			"steps": best.Steps(),
		}).Info("best hiking route")
	}
	return best, nil
}

// bruteForce runs one forward search per lowest cell and keeps the shortest
// non-empty result. Ties go to the earliest source.
func bruteForce(g *elevation.Grid, cfg Options, log logrus.FieldLogger) (elevation.Path, error) {
	sources := g.CellsAt(elevation.Lowest)
	log.WithField("sources", len(sources)).Debug("found start positions")

	results := make([]elevation.Path, len(sources))
	ctx := cfg.Ctx
	search := func(i int) error {
		path, err := dijkstra.ShortestPath(g, sources[i], dijkstra.WithContext(ctx))
		if err != nil {
			return err
		}
		results[i] = path
		return nil
	}

	if cfg.Workers <= 1 {
		for i := range sources {
			log.Debugf("computing %d/%d", i+1, len(sources))
			if err := search(i); err != nil {
				return nil, err
			}
		}
	} else {
		var eg *errgroup.Group
		eg, ctx = errgroup.WithContext(ctx)
		eg.SetLimit(cfg.Workers)
		for i := range sources {
			i := i
			eg.Go(func() error { return search(i) })
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}
	}

	var best elevation.Path
	for i, path := range results {
		entry := log.WithField("source", sources[i].String())
		if path.Empty() {
			entry.Debug("the route is empty")
			continue
		}
		if best == nil || len(path) < len(best) {
			entry.WithField("steps", path.Steps()).Debug("new best route")
			best = path
		}
	}
	return best, nil
}

// reverse walks backwards from the end over the reversed grid and stops at
// the first lowest cell it finalizes; the back-pointer chain from that cell
// is the best trail read end-first.
func reverse(g *elevation.Grid, cfg Options) (elevation.Path, error) {
	res, err := dijkstra.Dijkstra(g.Reverse(),
		dijkstra.Source(g.End()),
		dijkstra.WithContext(cfg.Ctx),
		dijkstra.WithStopWhen(func(c elevation.Coordinate) bool {
			h, _ := g.Elevation(c)
			return h == elevation.Lowest
		}),
	)
	if err != nil {
		return nil, err
	}
	low, ok := res.Reached()
	if !ok {
		return nil, nil
	}
	path := res.PathTo(low)
	slices.Reverse(path)
	return path, nil
}
