package metrics_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/knightpath/board"
	"github.com/katalvlaran/knightpath/grid"
	"github.com/katalvlaran/knightpath/internal/metrics"
	"github.com/katalvlaran/knightpath/path"
	"github.com/katalvlaran/knightpath/traversal"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

// gather indexes the registry's metric families by name.
func gather(t *testing.T, reg *prometheus.Registry) map[string]*dto.MetricFamily {
	t.Helper()
	mfs, err := reg.Gather()
	require.NoError(t, err)
	out := make(map[string]*dto.MetricFamily, len(mfs))
	for _, mf := range mfs {
		out[mf.GetName()] = mf
	}
	return out
}

func counter(t *testing.T, mfs map[string]*dto.MetricFamily, name string) float64 {
	t.Helper()
	mf, ok := mfs[name]
	require.True(t, ok, "metric %s missing", name)
	return mf.GetMetric()[0].GetCounter().GetValue()
}

func TestRecorder_Events(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := metrics.New(reg)
	require.NoError(t, err)

	rec.TraversalStarted(0, 63, path.Path{0, 17, 34, 49, 59, 53, 63})
	rec.TraversalIgnored(5)
	rec.TraversalIgnored(6)
	rec.TraversalCompleted(path.Path{0, 17}, 1500*time.Millisecond)

	mfs := gather(t, reg)
	require.Equal(t, 1.0, counter(t, mfs, "knightpath_traversals_started_total"))
	require.Equal(t, 2.0, counter(t, mfs, "knightpath_traversals_ignored_total"))
	require.Equal(t, 1.0, counter(t, mfs, "knightpath_traversals_completed_total"))

	h := mfs["knightpath_traversal_moves"].GetMetric()[0].GetHistogram()
	require.Equal(t, uint64(1), h.GetSampleCount())
	require.Equal(t, 6.0, h.GetSampleSum())

	d := mfs["knightpath_traversal_duration_seconds"].GetMetric()[0].GetHistogram()
	require.InDelta(t, 1.5, d.GetSampleSum(), 1e-9)
}

func TestRecorder_DoubleRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := metrics.New(reg)
	require.NoError(t, err)
	_, err = metrics.New(reg)
	require.Error(t, err)
}

// TestRecorder_AsObserver wires the recorder into a controller.
func TestRecorder_AsObserver(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := metrics.New(reg)
	require.NoError(t, err)

	release := make(chan struct{})
	c, err := traversal.New(grid.Standard(), nil, board.NewState(),
		traversal.WithStart(0),
		traversal.WithObserver(rec),
		traversal.WithSleep(func(time.Duration) { <-release }),
	)
	require.NoError(t, err)

	tr, err := c.RequestTraversal(63)
	require.NoError(t, err)
	_, err = c.RequestTraversal(1)
	require.ErrorIs(t, err, traversal.ErrBusyTraversalIgnored)
	close(release)
	tr.Wait()

	mfs := gather(t, reg)
	require.Equal(t, 1.0, counter(t, mfs, "knightpath_traversals_started_total"))
	require.Equal(t, 1.0, counter(t, mfs, "knightpath_traversals_ignored_total"))
	require.Equal(t, 1.0, counter(t, mfs, "knightpath_traversals_completed_total"))
}
