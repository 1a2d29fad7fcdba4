// Package knightpath moves a knight across an N×N board along the
// fewest possible knight moves, animating each hop on a board surface.
//
// What is knightpath?
//
//	A small, thread-safe toolkit built from layered packages:
//		• Geometry: row-major cell indices, (col,row) coordinates, square colours
//		• Moves: the eight knight offsets, filtered to the board
//		• Search: generic breadth-first search over an implicit neighbour function
//		• Paths: shortest knight path between two cells, or ErrNoPathFound
//		• Traversal: Idle/Animating controller that drops clicks while busy
//		• Surfaces: recorder, in-memory state, tcell terminal board, HTTP API
//
// Layout:
//
//	grid/            Grid, Cell, Color, coordinate conversion & validation
//	knight/          Offsets, MovesFrom, IsMove, Neighbors
//	bfs/             Search[T] with hooks (OnEnqueue, OnDequeue, OnVisit) & WithStopAt
//	path/            Finder.ShortestPath, Path.Format
//	board/           Surface interface, Recorder, State, Multi
//	board/terminal/  interactive tcell board
//	traversal/       Controller.RequestTraversal, OnCellClicked
//	internal/        config (YAML), logging (slog), metrics (Prometheus), httpapi (chi)
//	cmd/knightpath/  play, serve, path & moves commands
//
// Quick example, corner to corner on the standard board:
//
//	[ 0, 0 ] → [ 1, 2 ] → … → [ 7, 7 ]   (6 moves)
//
//	go run ./cmd/knightpath path 0 63
package knightpath
