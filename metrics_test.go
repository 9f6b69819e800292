package periodic

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvocationsMetric(t *testing.T) {

	counter := invocationsCounter.WithLabelValues("metrics-invocations")
	before := testutil.ToFloat64(counter)

	h, err := NewBuilder().Name("metrics-invocations").Spawn(time.Millisecond, func() {})
	require.NoError(t, err)

	require.Eventually(t, func() bool { return h.Invocations() >= 5 }, 5*time.Second, time.Millisecond)
	require.NoError(t, h.Cancel())

	assert.Equal(t, float64(h.Invocations()), testutil.ToFloat64(counter)-before)
}

func TestPanicsMetric(t *testing.T) {

	counter := panicsCounter.WithLabelValues("metrics-panics")
	before := testutil.ToFloat64(counter)

	h, err := NewBuilder().Name("metrics-panics").Spawn(time.Millisecond, func() { panic("boom") })
	require.NoError(t, err)

	require.Eventually(t, h.Stopped, 5*time.Second, time.Millisecond)
	assert.ErrorIs(t, h.Cancel(), ErrPanicked)

	assert.Equal(t, float64(1), testutil.ToFloat64(counter)-before)
}

func TestRunningLoopsMetric(t *testing.T) {

	before := testutil.ToFloat64(runningLoops)

	h, err := Spawn(time.Minute, func() {})
	require.NoError(t, err)
	assert.Equal(t, before+1, testutil.ToFloat64(runningLoops))

	require.NoError(t, h.Cancel())
	assert.Equal(t, before, testutil.ToFloat64(runningLoops))
}

func TestMetricLabel(t *testing.T) {
	assert.Equal(t, "unnamed", metricLabel(""))
	assert.Equal(t, "x", metricLabel("x"))
}
