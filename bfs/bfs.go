// Package bfs provides breadth-first search over an implicit graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores vertices in increasing distance from a start vertex,
// with optional hooks, depth limiting, neighbor filtering and early stop.
package bfs

import (
	"context"
	"fmt"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem[T comparable] struct {
	v     T
	depth int
}

// walker encapsulates mutable BFS state.
type walker[T comparable] struct {
	neighbors func(T) []T
	opts      Options[T]
	ctx       context.Context
	queue     []queueItem[T]
	visited   map[T]bool
	res       *Result[T]
}

// Search runs breadth-first search from start, expanding vertices with
// neighbors and applying any number of functional Options.
// Returns ErrNeighborsNil for a nil neighbour function, ErrOptionViolation
// for bad options, the context error on cancellation, or any user-supplied
// hook error. Reaching the end of the frontier is not an error; check
// Result.Found or PathTo.
func Search[T comparable](start T, neighbors func(T) []T, opts ...Option[T]) (*Result[T], error) {
	if neighbors == nil {
		return nil, ErrNeighborsNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[T]{
		neighbors: neighbors,
		opts:      o,
		ctx:       o.Ctx,
		queue:     make([]queueItem[T], 0, 16),
		visited:   make(map[T]bool, 16),
		res: &Result[T]{
			Start:  start,
			Order:  make([]T, 0, 16),
			Depth:  make(map[T]int, 16),
			Parent: make(map[T]T, 16),
		},
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(start, 0, nil)
	// Main loop
	return w.res, w.loop()
}

// enqueue marks v visited at depth d, calls OnEnqueue, records its parent,
// and adds it to the queue.
func (w *walker[T]) enqueue(v T, d int, parent *T) {
	w.visited[v] = true
	w.res.Depth[v] = d
	if parent != nil {
		w.res.Parent[v] = *parent
	}
	w.opts.OnEnqueue(v, d)
	w.queue = append(w.queue, queueItem[T]{v: v, depth: d})
}

// loop processes the queue until empty, target reached, error, or cancellation.
func (w *walker[T]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if w.opts.hasTarget && item.v == w.opts.target {
			w.res.Found = true
			return nil
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[T]) dequeue() queueItem[T] {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.v, item.depth)
	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker[T]) visit(item queueItem[T]) error {
	w.res.Order = append(w.res.Order, item.v)
	if err := w.opts.OnVisit(item.v, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.v, err)
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each
// unseen neighbor in the order the neighbour function returned it.
func (w *walker[T]) enqueueNeighbors(item queueItem[T]) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.neighbors(item.v) {
		if !w.opts.FilterNeighbor(item.v, nbr) {
			continue
		}
		// first time seen?
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, &item.v)
		}
	}
}
