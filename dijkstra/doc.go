// Package dijkstra computes climbing distances over an elevation grid with
// Dijkstra's shortest-path algorithm.
//
// Overview:
//
//   - Dijkstra runs a single-source search over any Graph (an elevation.Grid
//     or its reversed view) and returns per-cell distances and back-pointers.
//   - ShortestPath is the grid-level entry point: it searches from a source
//     towards the grid's end cell and returns the walk as an elevation.Path.
//   - Edge prices come from Graph.Cost, so the search does not assume unit
//     weights even though the climbing rules only produce cost 1.
//
// Key features:
//
//   - WithTarget stops as soon as a destination is finalized.
//   - WithStopWhen stops at the first finalized cell matching a predicate.
//   - WithMaxDistance never finalizes cells beyond a distance cap.
//   - WithContext aborts a long search on cancellation.
//   - WithOnFinalize observes each cell as its distance becomes final.
//
// Determinism:
//
//	Entries with equal distance leave the heap in the order they were pushed,
//	and neighbors are relaxed in elevation.Directions order (up, down, left,
//	right). For a fixed graph and source the returned distances AND paths are
//	therefore identical across runs. Among several equally short paths the one
//	whose cells were discovered first wins.
//
// Complexity:
//
//   - Time:  O((V + E) log V); every cell is finalized once, every relaxation
//     pushes at most one heap entry ("lazy decrease-key").
//   - Space: O(V + E) for the distance and predecessor maps and the heap.
//
// Unreachable destinations are not errors: PathTo and ShortestPath return an
// empty elevation.Path.
//
// Errors (sentinel):
//
//   - ErrNilGraph        if the graph is nil.
//   - ErrNoSource        if no Source option was given.
//   - ErrVertexNotFound  if the source is not a cell of the graph.
//   - ErrNegativeWeight  if Graph.Cost reports a negative price.
//   - ErrBadMaxDistance  (panic) if WithMaxDistance receives a negative value.
package dijkstra
