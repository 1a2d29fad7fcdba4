// Package traversal animates a knight token along the shortest path to a
// chosen cell, one traversal at a time.
//
// A Controller is either Idle or Animating. RequestTraversal moves it from
// Idle to Animating, frames the destination on the board surface, asks the
// path.Finder for a route from the token's current cell and plays that route
// step by step on its own goroutine:
//
//	for each cell in path:
//	    HighlightCell(cell); PlaceToken(cell)
//	    sleep EdgeDelay on the first and last cell, StepDelay otherwise
//	UnhighlightCell(every cell in path); UnframeCell(destination)
//
// The controller returns to Idle only after the whole sequence ran; there is
// no cancellation. A request arriving while Animating is dropped, not queued:
// it returns ErrBusyTraversalIgnored and touches neither the state nor the
// board. The busy check and the switch to Animating happen under one mutex,
// so concurrent callers cannot start two traversals.
//
// Errors:
//
//   - grid.ErrInvalidCell:      destination off the board; no state change.
//   - ErrBusyTraversalIgnored:  a traversal is already running; no state change.
//   - path.ErrNoPathFound:      destination unreachable; the frame is removed and
//     the controller returns to Idle.
package traversal
