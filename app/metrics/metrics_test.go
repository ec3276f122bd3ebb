package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"fanbase/app/metrics"
)

func TestActionsCounter(t *testing.T) {
	c := metrics.ActionsCounter().WithLabelValues("metrics_test", metrics.ResultOK)
	before := testutil.ToFloat64(c)
	c.Inc()
	require.Equal(t, before+1, testutil.ToFloat64(c))

	// registration is idempotent
	require.Same(t, metrics.ActionsCounter(), metrics.ActionsCounter())
	metrics.DeliverObserver("metrics_test").Observe(0.001)
}
