package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks rate refresh outcomes and preference storage failures.
type Metrics struct {
	RateRefreshes   *prometheus.CounterVec
	StorageFailures *prometheus.CounterVec
}

// New creates a new Metrics instance registered with reg.
// Pass prometheus.DefaultRegisterer to expose them on the default /metrics handler.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RateRefreshes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pricex_rate_refreshes_total",
			Help: "Rate table refresh attempts by outcome (success, failure, skipped)",
		}, []string{"outcome"}),
		StorageFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pricex_preference_storage_failures_total",
			Help: "Failed preference storage operations by operation (read, write)",
		}, []string{"operation"}),
	}
}

func (m *Metrics) RefreshSucceeded() { m.RateRefreshes.WithLabelValues("success").Inc() }
func (m *Metrics) RefreshFailed()    { m.RateRefreshes.WithLabelValues("failure").Inc() }

// RefreshSkipped records a refresh request made while another was in flight.
func (m *Metrics) RefreshSkipped() { m.RateRefreshes.WithLabelValues("skipped").Inc() }

func (m *Metrics) StorageReadFailed()  { m.StorageFailures.WithLabelValues("read").Inc() }
func (m *Metrics) StorageWriteFailed() { m.StorageFailures.WithLabelValues("write").Inc() }
