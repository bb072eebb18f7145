package elevation

import (
	"slices"

	"golang.org/x/exp/maps"
)

// Grid is an immutable height-map with a designated start and end cell.
// Cells absent from the map are not part of the graph; the grid is not
// required to be rectangular.
type Grid struct {
	heights map[Coordinate]int
	start   Coordinate
	end     Coordinate
	rows    int
}

// Start returns the coordinate of the 'S' cell.
func (g *Grid) Start() Coordinate { return g.start }

// End returns the coordinate of the 'E' cell.
func (g *Grid) End() Coordinate { return g.end }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.heights) }

// Rows returns the number of input rows the grid was built from.
func (g *Grid) Rows() int { return g.rows }

// Contains reports whether c is a cell of the grid.
func (g *Grid) Contains(c Coordinate) bool {
	_, ok := g.heights[c]
	return ok
}

// Elevation returns the height of c and whether c is part of the grid.
func (g *Grid) Elevation(c Coordinate) (int, bool) {
	h, ok := g.heights[c]
	return h, ok
}

// Cost returns the price of stepping from a to b. The step exists only if b
// is an orthogonal neighbor of a, both cells are present, and b is at most
// one level higher than a. Missing steps report ok == false.
func (g *Grid) Cost(a, b Coordinate) (cost int64, ok bool) {
	if !adjacent(a, b) {
		return 0, false
	}
	ha, okA := g.heights[a]
	hb, okB := g.heights[b]
	if !okA || !okB {
		return 0, false
	}
	if hb > ha+1 {
		return 0, false // too steep
	}
	return 1, true
}

// Neighbors returns the cells reachable from c in a single step, in
// Directions order. A coordinate outside the grid has no neighbors.
func (g *Grid) Neighbors(c Coordinate) []Coordinate {
	if !g.Contains(c) {
		return nil
	}
	out := make([]Coordinate, 0, len(Directions))
	for _, d := range Directions {
		q := c.Move(d)
		if _, ok := g.Cost(c, q); ok {
			out = append(out, q)
		}
	}
	return out
}

// Cells returns every coordinate of the grid ordered by Coordinate.Less.
// Complexity: O(N log N).
func (g *Grid) Cells() []Coordinate {
	cells := maps.Keys(g.heights)
	slices.SortFunc(cells, compareCoordinates)
	return cells
}

// CellsAt returns the coordinates whose elevation equals level, ordered by
// Coordinate.Less.
func (g *Grid) CellsAt(level int) []Coordinate {
	var out []Coordinate
	for _, c := range g.Cells() {
		if g.heights[c] == level {
			out = append(out, c)
		}
	}
	return out
}

// Reverse returns a view of g with every edge inverted.
func (g *Grid) Reverse() *Reversed {
	return &Reversed{grid: g}
}

// Reversed is a read-only view of a Grid in which a step from p to q exists
// exactly when the Grid allows a step from q to p.
type Reversed struct {
	grid *Grid
}

// Contains reports whether c is a cell of the underlying grid.
func (r *Reversed) Contains(c Coordinate) bool { return r.grid.Contains(c) }

// Cost returns the forward cost of the step b→a.
func (r *Reversed) Cost(a, b Coordinate) (int64, bool) {
	return r.grid.Cost(b, a)
}

// Neighbors returns the cells q with a forward step q→c, in Directions order.
func (r *Reversed) Neighbors(c Coordinate) []Coordinate {
	if !r.grid.Contains(c) {
		return nil
	}
	out := make([]Coordinate, 0, len(Directions))
	for _, d := range Directions {
		q := c.Move(d)
		if _, ok := r.grid.Cost(q, c); ok {
			out = append(out, q)
		}
	}
	return out
}

func adjacent(a, b Coordinate) bool {
	d := b.Sub(a)
	for _, o := range offsets {
		if d == o {
			return true
		}
	}
	return false
}

func compareCoordinates(a, b Coordinate) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	}
	return 0
}
