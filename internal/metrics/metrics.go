package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values.
const (
	OutcomeOK       = "ok"
	OutcomeFailed   = "failed"
	OutcomeRejected = "rejected"
)

var (
	invocationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reclaim_platform_invocations_total",
		Help: "Facade invocations by canonical operation and outcome",
	}, []string{"operation", "outcome"}) // outcome=ok|failed|rejected

	unknownMethodsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reclaim_platform_unknown_methods_total",
		Help: "Requests naming a method the host does not expose",
	})
)

// RecordInvocation counts one invocation of operation.
func RecordInvocation(operation, outcome string) {
	invocationsTotal.WithLabelValues(operation, outcome).Inc()
}

// RecordUnknownMethod counts a request for an unregistered name.
func RecordUnknownMethod() {
	unknownMethodsTotal.Inc()
}
