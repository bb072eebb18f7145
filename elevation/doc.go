// Package elevation models a climbing height-map as an implicit directed graph.
//
// What:
//
//   - Grid maps integer Coordinates to an elevation in [Lowest, Highest]
//     (letters 'a'..'z'), with a designated start ('S') and end ('E').
//   - Neighbors and Cost derive the edges on demand: a step goes to one of
//     the four orthogonal cells and may climb at most one level, while
//     descending any amount is allowed.
//   - Reverse exposes the same grid with every edge flipped, for searches
//     that walk backwards from the end.
//
// Coordinates:
//
//	The first input row is the top of the map and receives the highest y,
//	so y grows upward and (0,0) is the bottom-left cell:
//
//	    Sabqponm   y=4
//	    abcryxxl   y=3
//	    accszExk   y=2   S=(0,4)  E=(5,2)
//	    acctuvwj   y=1
//	    abdefghi   y=0
//
// Complexity:
//
//   - Parse:     O(W×H) time and memory.
//   - Neighbors: O(1) (at most four map lookups).
//   - Cells:     O(N log N) for the sorted enumeration.
//
// Errors:
//
//   - ErrConfiguration: base error every construction failure wraps.
//   - ErrEmptyGrid, ErrMissingStart, ErrMissingEnd, ErrDuplicateMarker,
//     ErrInvalidCell: specific construction failures.
//
// A Grid is immutable once built and safe for concurrent readers.
package elevation
