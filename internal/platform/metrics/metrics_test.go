package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_CountsOutcomes(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.RefreshSucceeded()
	m.RefreshFailed()
	m.RefreshFailed()
	m.RefreshSkipped()
	m.StorageReadFailed()
	m.StorageWriteFailed()
	m.StorageWriteFailed()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RateRefreshes.WithLabelValues("success")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.RateRefreshes.WithLabelValues("failure")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RateRefreshes.WithLabelValues("skipped")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StorageFailures.WithLabelValues("read")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.StorageFailures.WithLabelValues("write")))
}
