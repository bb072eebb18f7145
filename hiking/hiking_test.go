package hiking_test

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/hillclimb/dijkstra"
	"github.com/katalvlaran/hillclimb/elevation"
	"github.com/katalvlaran/hillclimb/hiking"
)

const sample = `Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi
`

// BestPathSuite exercises BestPath on the canonical map under every strategy.
type BestPathSuite struct {
	suite.Suite
	grid *elevation.Grid
}

func (s *BestPathSuite) SetupTest() {
	g, err := elevation.ParseString(sample)
	require.NoError(s.T(), err)
	s.grid = g
}

// requireTrail checks the path starts low, ends at E and only takes legal steps.
func (s *BestPathSuite) requireTrail(path elevation.Path) {
	require.NotEmpty(s.T(), path)
	h, ok := s.grid.Elevation(path[0])
	require.True(s.T(), ok)
	require.Equal(s.T(), elevation.Lowest, h)
	require.Equal(s.T(), s.grid.End(), path[len(path)-1])
	for i := 1; i < len(path); i++ {
		_, ok := s.grid.Cost(path[i-1], path[i])
		require.True(s.T(), ok, "illegal step %s -> %s", path[i-1], path[i])
	}
}

// TestBruteForce yields 29 steps, shorter than the 31 from 'S'.
func (s *BestPathSuite) TestBruteForce() {
	path, err := hiking.BestPath(s.grid)
	require.NoError(s.T(), err)
	require.Len(s.T(), path, 30)
	require.Equal(s.T(), 29, path.Steps())
	s.requireTrail(path)

	fromStart, err := dijkstra.ShortestPath(s.grid, s.grid.Start())
	require.NoError(s.T(), err)
	require.LessOrEqual(s.T(), path.Steps(), fromStart.Steps())
}

// TestReverse finds a trail of the same length with a single search.
func (s *BestPathSuite) TestReverse() {
	path, err := hiking.BestPath(s.grid, hiking.WithStrategy(hiking.Reverse))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 29, path.Steps())
	s.requireTrail(path)
}

// TestParallelMatchesSequential: worker count never changes the chosen trail.
func (s *BestPathSuite) TestParallelMatchesSequential() {
	seq, err := hiking.BestPath(s.grid)
	require.NoError(s.T(), err)
	for _, workers := range []int{0, 2, 4, 16} {
		par, err := hiking.BestPath(s.grid, hiking.WithWorkers(workers))
		require.NoError(s.T(), err)
		require.Equal(s.T(), seq, par, "workers=%d", workers)
	}
}

// TestCancelled aborts before any search completes.
func (s *BestPathSuite) TestCancelled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, opts := range [][]hiking.Option{
		{hiking.WithContext(ctx)},
		{hiking.WithContext(ctx), hiking.WithWorkers(3)},
		{hiking.WithContext(ctx), hiking.WithStrategy(hiking.Reverse)},
	} {
		_, err := hiking.BestPath(s.grid, opts...)
		require.ErrorIs(s.T(), err, context.Canceled)
	}
}

// TestLogsProgress records the per-source and summary entries.
func (s *BestPathSuite) TestLogsProgress() {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	_, err := hiking.BestPath(s.grid, hiking.WithLogger(logger))
	require.NoError(s.T(), err)

	last := hook.LastEntry()
	require.NotNil(s.T(), last)
	require.Equal(s.T(), "best hiking route", last.Message)
	require.Equal(s.T(), 29, last.Data["steps"])
	require.Equal(s.T(), "brute-force", last.Data["strategy"])

	var computing int
	for _, e := range hook.AllEntries() {
		if strings.HasPrefix(e.Message, "computing ") {
			computing++
		}
	}
	require.Equal(s.T(), len(s.grid.CellsAt(elevation.Lowest)), computing)
}

func TestBestPathSuite(t *testing.T) {
	suite.Run(t, new(BestPathSuite))
}

func TestBestPath_Unreachable(t *testing.T) {
	g, err := elevation.ParseString("Sab\nabE\n")
	require.NoError(t, err)
	for _, strategy := range []hiking.Strategy{hiking.BruteForce, hiking.Reverse} {
		path, err := hiking.BestPath(g, hiking.WithStrategy(strategy))
		require.NoError(t, err)
		assert.Empty(t, path, "strategy %s", strategy)
	}
}

func TestBestPath_Invalid(t *testing.T) {
	_, err := hiking.BestPath(nil)
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)

	g, err := elevation.ParseString(sample)
	require.NoError(t, err)
	_, err = hiking.BestPath(g, hiking.WithWorkers(-2))
	require.ErrorIs(t, err, hiking.ErrBadWorkers)

	_, err = hiking.BestPath(g, hiking.WithStrategy(hiking.Strategy(9)))
	require.ErrorIs(t, err, hiking.ErrUnknownStrategy)
}

func TestParseStrategy(t *testing.T) {
	cases := map[string]hiking.Strategy{
		"brute-force": hiking.BruteForce,
		"BruteForce":  hiking.BruteForce,
		" reverse ":   hiking.Reverse,
	}
	for in, want := range cases {
		got, err := hiking.ParseStrategy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := hiking.ParseStrategy("astar")
	require.ErrorIs(t, err, hiking.ErrUnknownStrategy)
	assert.Equal(t, "Strategy(7)", hiking.Strategy(7).String())
}

// TestBestPath_MatchesMinimumOverSources compares both strategies against
// the minimum of individual single-source searches on random small grids.
func TestBestPath_MatchesMinimumOverSources(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for round := 0; round < 300; round++ {
		rows := randomRows(rng, 4, 3)
		g, err := elevation.FromRows(rows)
		require.NoError(t, err)

		want := -1
		for _, src := range g.CellsAt(elevation.Lowest) {
			p, err := dijkstra.ShortestPath(g, src)
			require.NoError(t, err)
			if !p.Empty() && (want < 0 || p.Steps() < want) {
				want = p.Steps()
			}
		}

		msg := strings.Join(rows, "\n")
		brute, err := hiking.BestPath(g)
		require.NoError(t, err)
		require.Equal(t, want, brute.Steps(), "brute force on\n%s", msg)

		rev, err := hiking.BestPath(g, hiking.WithStrategy(hiking.Reverse))
		require.NoError(t, err)
		require.Equal(t, want, rev.Steps(), "reverse on\n%s", msg)
	}
}

// randomRows returns a w×h map over 'a'..'z' biased towards low letters, with
// 'E' next to a 'y' or 'z' often enough that both outcomes occur.
func randomRows(rng *rand.Rand, w, h int) []string {
	alphabet := "aabbcdxyz"
	cells := make([]byte, w*h)
	for i := range cells {
		cells[i] = alphabet[rng.Intn(len(alphabet))]
	}
	s := rng.Intn(len(cells))
	e := rng.Intn(len(cells) - 1)
	if e >= s {
		e++
	}
	cells[s], cells[e] = 'S', 'E'
	rows := make([]string, h)
	for y := 0; y < h; y++ {
		rows[y] = string(cells[y*w : (y+1)*w])
	}
	return rows
}
