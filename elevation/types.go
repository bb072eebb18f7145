package elevation

import (
	"fmt"
	"strings"
)

// Elevation bounds and the two marker characters of the input format.
const (
	Lowest  = 0  // 'a' and 'S'
	Highest = 25 // 'z' and 'E'

	StartMarker = 'S'
	EndMarker   = 'E'
)

// Coordinate identifies one grid cell. It is a comparable value and can be
// used directly as a map key.
type Coordinate struct {
	X, Y int
}

// Add returns the component-wise sum c+o.
func (c Coordinate) Add(o Coordinate) Coordinate {
	return Coordinate{X: c.X + o.X, Y: c.Y + o.Y}
}

// Sub returns the component-wise difference c-o.
func (c Coordinate) Sub(o Coordinate) Coordinate {
	return Coordinate{X: c.X - o.X, Y: c.Y - o.Y}
}

// Move returns the coordinate one step away in direction d.
func (c Coordinate) Move(d Direction) Coordinate {
	return c.Add(d.Offset())
}

// Less orders coordinates by Y, then by X.
func (c Coordinate) Less(o Coordinate) bool {
	if c.Y != o.Y {
		return c.Y < o.Y
	}
	return c.X < o.X
}

// String renders the coordinate as "(x, y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Direction is one of the four orthogonal moves.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every Direction in the order neighbors are produced.
var Directions = [...]Direction{Up, Down, Left, Right}

var offsets = [...]Coordinate{
	Up:    {X: 0, Y: 1},
	Down:  {X: 0, Y: -1},
	Left:  {X: -1, Y: 0},
	Right: {X: 1, Y: 0},
}

// Offset returns the unit vector of d.
func (d Direction) Offset() Coordinate {
	return offsets[d]
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Path is an ordered walk from a source to a destination, source included.
// An empty Path means the destination was unreachable.
type Path []Coordinate

// Empty reports whether p holds no coordinates.
func (p Path) Empty() bool { return len(p) == 0 }

// Steps returns the number of moves along p, or -1 for an empty path.
func (p Path) Steps() int {
	return len(p) - 1
}

// String renders p as a comma separated list of coordinates.
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}
