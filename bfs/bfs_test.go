package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/knightpath/bfs"
)

// adjacency is a tiny undirected test graph keyed by vertex name.
type adjacency map[string][]string

// link adds an undirected edge u–v, preserving insertion order.
func (a adjacency) link(u, v string) {
	a[u] = append(a[u], v)
	if u != v {
		a[v] = append(a[v], u)
	}
}

func (a adjacency) neighbors(v string) []string {
	return a[v]
}

// TestSearch_Errors verifies that invalid inputs and options are rejected.
func TestSearch_Errors(t *testing.T) {
	// nil neighbour function
	if _, err := bfs.Search[string]("A", nil); !errors.Is(err, bfs.ErrNeighborsNil) {
		t.Errorf("nil neighbors: want ErrNeighborsNil, got %v", err)
	}
	// negative MaxDepth is a violation
	g := adjacency{}
	if _, err := bfs.Search("A", g.neighbors, bfs.WithMaxDepth[string](-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestSearch_SimpleTraversal covers the trivial isolated start vertex.
func TestSearch_SimpleTraversal(t *testing.T) {
	g := adjacency{}
	res, err := bfs.Search("A", g.neighbors)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth["A"]; d != 0 {
		t.Errorf("Depth[A] = %d; want 0", d)
	}
}

// TestCycleAndDepths covers a simple cycle and checks depths.
func TestCycleAndDepths(t *testing.T) {
	// A–B–C–D–A undirected cycle
	g := adjacency{}
	g.link("A", "B")
	g.link("B", "C")
	g.link("C", "D")
	g.link("D", "A")

	res, err := bfs.Search("A", g.neighbors)
	if err != nil {
		t.Fatal(err)
	}
	// neighbour order is insertion order: B before D
	if want := []string{"A", "B", "D", "C"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	for v, want := range map[string]int{"A": 0, "B": 1, "D": 1, "C": 2} {
		if got := res.Depth[v]; got != want {
			t.Errorf("Depth[%s] = %d; want %d", v, got, want)
		}
	}
}

// TestSearch_Disconnected ensures BFS only explores the component of the start vertex.
func TestSearch_Disconnected(t *testing.T) {
	g := adjacency{}
	g.link("X", "Y") // component 1
	g.link("P", "Q") // component 2

	resX, _ := bfs.Search("X", g.neighbors)
	if !reflect.DeepEqual(resX.Order, []string{"X", "Y"}) {
		t.Errorf("From X: got %v; want [X Y]", resX.Order)
	}
	if _, err := resX.PathTo("Q"); !errors.Is(err, bfs.ErrNoPath) {
		t.Errorf("PathTo(Q) from X: want ErrNoPath, got %v", err)
	}
}

// TestSearch_MaxDepth verifies WithMaxDepth behavior for positive, zero (no limit), and large depths.
func TestSearch_MaxDepth(t *testing.T) {
	g := adjacency{}
	g.link("A", "B")
	g.link("B", "C")
	// depth = 1 should only visit A,B
	if res, _ := bfs.Search("A", g.neighbors, bfs.WithMaxDepth[string](1)); !reflect.DeepEqual(res.Order, []string{"A", "B"}) {
		t.Errorf("MaxDepth=1: got %v; want [A B]", res.Order)
	}
	// depth = 0 => explicit no limit => visits all
	if res, _ := bfs.Search("A", g.neighbors, bfs.WithMaxDepth[string](0)); !reflect.DeepEqual(res.Order, []string{"A", "B", "C"}) {
		t.Errorf("MaxDepth=0: got %v; want [A B C]", res.Order)
	}
	// depth > graph size => same full traversal
	if res, _ := bfs.Search("A", g.neighbors, bfs.WithMaxDepth[string](10)); !reflect.DeepEqual(res.Order, []string{"A", "B", "C"}) {
		t.Errorf("MaxDepth=10: got %v; want [A B C]", res.Order)
	}
}

// TestSearch_FilterNeighbor shows how filtering prunes certain edges.
func TestSearch_FilterNeighbor(t *testing.T) {
	g := adjacency{}
	g.link("A", "B")
	g.link("B", "C")
	// filter out B→C
	res, _ := bfs.Search("A", g.neighbors,
		bfs.WithFilterNeighbor(func(curr, nbr string) bool {
			return !(curr == "B" && nbr == "C")
		}),
	)
	if want := []string{"A", "B"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("FilterNeighbor: got %v; want %v", res.Order, want)
	}
}

// TestSearch_SelfLoopAndParallelDedup ensures that loops and parallel edges do not enqueue twice.
func TestSearch_SelfLoopAndParallelDedup(t *testing.T) {
	g := adjacency{}
	g.link("A", "A") // self-loop
	g.link("A", "B")
	g.link("A", "B") // parallel
	res, _ := bfs.Search("A", g.neighbors)
	if want := []string{"A", "B"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("SelfLoop/Parallel: got %v; want %v", res.Order, want)
	}
}

// TestSearch_StopAt ends the search when the target is dequeued.
func TestSearch_StopAt(t *testing.T) {
	g := adjacency{}
	g.link("A", "B")
	g.link("A", "C")
	g.link("B", "D")
	g.link("C", "E")

	res, err := bfs.Search("A", g.neighbors, bfs.WithStopAt("C"))
	if err != nil {
		t.Fatal(err)
	}
	if !res.Found {
		t.Fatal("Found = false; want true")
	}
	// B was expanded before C, so D is enqueued but never visited; E never seen.
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if _, ok := res.Depth["E"]; ok {
		t.Error("E should not be discovered once C is reached")
	}
	path, err := res.PathTo("C")
	if err != nil || !reflect.DeepEqual(path, []string{"A", "C"}) {
		t.Errorf("PathTo(C) = %v, %v; want [A C]", path, err)
	}

	// unreachable target exhausts the frontier
	res, err = bfs.Search("A", g.neighbors, bfs.WithStopAt("Z"))
	if err != nil {
		t.Fatal(err)
	}
	if res.Found {
		t.Error("Found = true for unreachable target")
	}
	if len(res.Order) != 5 {
		t.Errorf("visited %d vertices; want all 5", len(res.Order))
	}
}

// TestSearch_Hooks asserts that hooks fire in the expected sequence and count.
func TestSearch_Hooks(t *testing.T) {
	g := adjacency{}
	g.link("A", "B")
	g.link("B", "C")

	var enq, deq, vis []string
	makeEntry := func(prefix, id string, d int) string {
		return prefix + ":" + id + "@" + strconv.Itoa(d)
	}

	_, err := bfs.Search("A", g.neighbors,
		bfs.WithOnEnqueue(func(id string, d int) { enq = append(enq, makeEntry("e", id, d)) }),
		bfs.WithOnDequeue(func(id string, d int) { deq = append(deq, makeEntry("d", id, d)) }),
		bfs.WithOnVisit(func(id string, d int) error { vis = append(vis, makeEntry("v", id, d)); return nil }),
	)
	if err != nil {
		t.Fatal(err)
	}

	// We expect BFS depths A@0, B@1, C@2
	wantDepths := []string{"A@0", "B@1", "C@2"}
	for i, suffix := range wantDepths {
		if !strings.HasSuffix(enq[i], suffix) {
			t.Errorf("OnEnqueue[%d] = %q, want suffix %q", i, enq[i], suffix)
		}
		if !strings.HasSuffix(deq[i], suffix) {
			t.Errorf("OnDequeue[%d] = %q, want suffix %q", i, deq[i], suffix)
		}
		if !strings.HasSuffix(vis[i], suffix) {
			t.Errorf("OnVisit[%d] = %q, want suffix %q", i, vis[i], suffix)
		}
	}
}

// TestSearch_OnVisitAbort propagates a hook error.
func TestSearch_OnVisitAbort(t *testing.T) {
	g := adjacency{}
	g.link("A", "B")
	stop := errors.New("stop")
	_, err := bfs.Search("A", g.neighbors,
		bfs.WithOnVisit(func(id string, _ int) error {
			if id == "B" {
				return stop
			}
			return nil
		}),
	)
	if !errors.Is(err, stop) {
		t.Errorf("OnVisit abort: want wrapped stop, got %v", err)
	}
}

// TestSearch_PathTo covers both trivial (start→start) and unreachable targets.
func TestSearch_PathTo(t *testing.T) {
	g := adjacency{}
	res, _ := bfs.Search("X", g.neighbors)
	if path, _ := res.PathTo("X"); !reflect.DeepEqual(path, []string{"X"}) {
		t.Errorf("PathTo start: got %v; want [X]", path)
	}
	_, err := res.PathTo("Y")
	if err == nil || !strings.Contains(err.Error(), "no path") {
		t.Errorf("PathTo unreachable: expected error, got %v", err)
	}
}

// TestSearch_Cancellation verifies that a cancelled context halts BFS promptly.
func TestSearch_Cancellation(t *testing.T) {
	g := adjacency{}
	// build a longer chain
	for i := 0; i < 100; i++ {
		g.link(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1))
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate
	if _, err := bfs.Search("v0", g.neighbors, bfs.WithContext[string](ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("Cancellation: want context.Canceled, got %v", err)
	}
}

// TestSearch_ConcurrentSafety ensures concurrent searches over the same read-only graph do not interfere.
func TestSearch_ConcurrentSafety(t *testing.T) {
	g := adjacency{}
	g.link("A", "B")
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() { _, err := bfs.Search("A", g.neighbors); errs <- err }()
	}
	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil {
			t.Errorf("Concurrent run #%d: unexpected error %v", i, err)
		}
	}
}
