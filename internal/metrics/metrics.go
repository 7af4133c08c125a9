package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess       = "success"
	OutcomeNotConfigured = "not_configured"
	OutcomeBadStatus     = "bad_status"
	OutcomeRequestFailed = "request_failed"
	OutcomeNoText        = "no_text"

	StatusOK    = "ok"
	StatusError = "error"
)

type Metrics struct {
	GeminiRequests  *prometheus.CounterVec
	StoreOperations *prometheus.CounterVec
}

// New registers the collectors on reg. Pass a fresh prometheus.NewRegistry()
// in tests so repeated construction does not collide.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		GeminiRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gemini_requests_total",
				Help: "Total number of AI prompt requests by outcome",
			},
			[]string{"outcome"},
		),
		StoreOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scan_store_operations_total",
				Help: "Total number of scan store operations by result",
			},
			[]string{"operation", "status"},
		),
	}
}
