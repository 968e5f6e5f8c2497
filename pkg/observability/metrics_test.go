package observability_test

import (
	"testing"
	"time"

	"github.com/aretw0/pastebutton/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Collect(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)

	m.ObserveResult("image")
	m.ObserveResult("image")
	m.ObserveResult("clear")
	m.ObserveNotification()
	m.ObserveDecodeFailure()
	m.ObserveBridge(15 * time.Millisecond)

	count, err := testutil.GatherAndCount(reg,
		"pastebutton_results_total",
		"pastebutton_notifications_total",
		"pastebutton_decode_failures_total",
		"pastebutton_bridge_duration_seconds",
	)
	require.NoError(t, err)
	assert.Equal(t, 5, count) // two result series + three single series
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *observability.Metrics
	assert.NotPanics(t, func() {
		m.ObserveResult("empty")
		m.ObserveNotification()
		m.ObserveDecodeFailure()
		m.ObserveBridge(time.Second)
	})
}
