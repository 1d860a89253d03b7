package handlers

import (
	"github.com/reclaim/platformhost/internal/facade"
	"github.com/reclaim/platformhost/internal/metrics"
)

// MetricsObserver records facade invocations in the Prometheus counters.
func MetricsObserver() facade.Observer {
	return func(operation, outcome string) {
		if outcome == facade.OutcomeFailed {
			metrics.RecordInvocation(operation, metrics.OutcomeFailed)
			return
		}
		metrics.RecordInvocation(operation, metrics.OutcomeOK)
	}
}
