package elevation

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads a height-map, one row per line, and builds a Grid.
// Letters 'a'..'z' map to elevations 0..25; 'S' marks the start at elevation
// Lowest and 'E' the end at elevation Highest. Trailing blank lines and
// carriage returns are ignored.
//
// The first row receives the highest y so that y grows upward.
// Construction is atomic: any error leaves no partial Grid behind.
func Parse(r io.Reader) (*Grid, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("elevation: read grid: %w", err)
	}
	return FromRows(rows)
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}

// FromRows builds a Grid from already split rows. Rows may differ in length.
// Complexity: O(W×H).
func FromRows(rows []string) (*Grid, error) {
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}

	g := &Grid{
		heights: make(map[Coordinate]int, len(rows)*len(rows[0])),
		rows:    len(rows),
	}
	var hasStart, hasEnd bool
	top := len(rows) - 1
	for i, row := range rows {
		for x, ch := range []rune(row) {
			c := Coordinate{X: x, Y: top - i}
			switch {
			case ch == StartMarker:
				if hasStart {
					return nil, fmt.Errorf("%w %q at %s", ErrDuplicateMarker, ch, c)
				}
				hasStart = true
				g.start = c
				g.heights[c] = Lowest
			case ch == EndMarker:
				if hasEnd {
					return nil, fmt.Errorf("%w %q at %s", ErrDuplicateMarker, ch, c)
				}
				hasEnd = true
				g.end = c
				g.heights[c] = Highest
			case ch >= 'a' && ch <= 'z':
				g.heights[c] = int(ch - 'a')
			default:
				return nil, fmt.Errorf("%w %q at %s", ErrInvalidCell, ch, c)
			}
		}
	}
	if !hasStart {
		return nil, ErrMissingStart
	}
	if !hasEnd {
		return nil, ErrMissingEnd
	}

	return g, nil
}
