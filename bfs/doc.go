// Package bfs provides a breadth-first search over an implicit graph,
// given as a start vertex and a neighbour function, returning unweighted
// shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - The graph is never materialised: neighbors(v) is called on demand.
//   - Returns a Result containing:
//   - Order:  visit sequence
//   - Depth:  map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Found:  whether the WithStopAt target was dequeued
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Stops as soon as a target is dequeued when WithStopAt is given.
//
// Why
//
//   - Compute unweighted shortest paths in O(V + E) time.
//   - Search move graphs (knight moves on a board) without building them.
//
// Determinism
//
//	Neighbors are enqueued in the order neighbors(v) returns them, so a
//	deterministic neighbour function yields a reproducible visit sequence
//	and, among equally short paths, always the same one.
//
// Complexity (V = reachable vertices, E = edges among them)
//
//   - Time:   O(V + E)   (each vertex enqueued at most once)
//   - Memory: O(V)       (queue, Depth map, Parent map, visited set)
//
// Usage
//
//	res, err := bfs.Search(start, neighbors,
//	    bfs.WithStopAt(target),
//	    bfs.WithOnVisit(func(v grid.Cell, depth int) error { return nil }),
//	)
//	if err != nil {
//	    // ErrNeighborsNil, ErrOptionViolation, context errors, or hook errors
//	}
//	path, err := res.PathTo(target) // ErrNoPath when target was not reached
//
// Errors
//
//   - ErrNeighborsNil     if the neighbour function is nil.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNoPath           from PathTo when the destination was not reached.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
