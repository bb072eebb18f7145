// Package hiking finds the best hiking trail: the shortest climb to the end
// cell from ANY cell at the lowest elevation.
//
// Strategies:
//
//   - BruteForce (default): one dijkstra.ShortestPath per lowest cell. With
//     WithWorkers(n > 1) the sources are searched concurrently; the grid is
//     shared read-only and every search owns its own state.
//   - Reverse: a single search from the end over the reversed grid, stopping
//     at the first lowest cell it finalizes.
//
// Both strategies report the same number of steps. BruteForce breaks ties
// between equally short trails by source order (elevation.Grid.Cells), so
// its result does not depend on the worker count.
//
// Complexity:
//
//   - BruteForce: O(L · (V + E) log V) for L lowest cells.
//   - Reverse:    O((V + E) log V).
package hiking
