package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the claim, binding and revocation counters.
type Metrics struct {
	ClaimsSubmitted     prometheus.Counter
	DuplicateClaims     prometheus.Counter
	ClaimTransitions    *prometheus.CounterVec
	StaleStateConflicts prometheus.Counter
	BindingsCreated     prometheus.Counter
	BindingsRevoked     *prometheus.CounterVec
	ListingsArchived    prometheus.Counter
	NotifyFailures      *prometheus.CounterVec
	OperationDuration   *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ClaimsSubmitted: factory.NewCounter(prometheus.CounterOpts{
			Name: "estate_claims_submitted_total",
			Help: "Property claims accepted for adjudication",
		}),
		DuplicateClaims: factory.NewCounter(prometheus.CounterOpts{
			Name: "estate_claims_duplicate_total",
			Help: "Submissions rejected because a live claim already holds the right",
		}),
		ClaimTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "estate_claim_transitions_total",
			Help: "Committed claim transitions by transition and actor kind",
		}, []string{"transition", "actor"}),
		StaleStateConflicts: factory.NewCounter(prometheus.CounterOpts{
			Name: "estate_claim_stale_state_total",
			Help: "Transitions that lost a race or acted on an outdated read",
		}),
		BindingsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "estate_bindings_created_total",
			Help: "Active bindings created by approval",
		}),
		BindingsRevoked: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "estate_bindings_revoked_total",
			Help: "Bindings revoked by initiator",
		}, []string{"initiator"}),
		ListingsArchived: factory.NewCounter(prometheus.CounterOpts{
			Name: "estate_listings_archived_total",
			Help: "Listings archived because rights were revoked",
		}),
		NotifyFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "estate_notify_failures_total",
			Help: "Post-commit notifications that failed to hand off or deliver",
		}, []string{"kind"}),
		OperationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "estate_property_operation_duration_seconds",
			Help:    "Service operation latency including the transaction",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"operation", "outcome"}),
	}
}

func (m *Metrics) ObserveOperation(operation string, err error, elapsed time.Duration) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.OperationDuration.WithLabelValues(operation, outcome).Observe(elapsed.Seconds())
}
