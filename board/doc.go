// Package board defines the Board Surface: the rendering and interaction
// collaborator the traversal controller instructs.
//
// A Surface receives five fire-and-forget instructions: PlaceToken,
// HighlightCell, UnhighlightCell, FrameCell and UnframeCell. Surfaces report
// user clicks by calling back into the controller (see
// traversal.Controller.OnCellClicked); that direction is not part of the
// interface.
//
// Implementations in this package:
//
//   - State:    concurrency-safe in-memory board, read through Snapshot.
//   - Recorder: logs every instruction in order; used by tests.
//   - Multi:    fans each instruction out to several surfaces.
//
// An interactive terminal surface lives in board/terminal.
package board
