// Package hillclimb finds climbing routes across a letter height-map.
//
// A map is a block of text where 'a'..'z' are elevations, 'S' marks the
// start (elevation 'a') and 'E' the end (elevation 'z'). A single step moves
// to an orthogonal neighbor and may climb at most one level; descending is
// always allowed.
//
// Under the hood, everything is organized under three packages:
//
//	elevation/ — Coordinate, Direction, Path and the immutable Grid with its
//	             neighbor/cost rules and a reversed view
//	dijkstra/  — heap-based single-source shortest path over a Grid
//	hiking/    — best trail from any lowest cell: brute force (optionally
//	             parallel) or a single reversed search
//
// The hillclimb command (cmd/hillclimb) reads a puzzle file and prints both
// answers:
//
//	go run ./cmd/hillclimb -input input.txt -strategy reverse -v
package hillclimb
