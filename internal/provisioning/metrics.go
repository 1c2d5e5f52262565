package provisioning

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	stepsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nodeup",
			Subsystem: "provision",
			Name:      "steps_total",
			Help:      "Total number of catalog step evaluations by outcome",
		},
		[]string{"step", "result"},
	)

	stepDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "nodeup",
			Subsystem: "provision",
			Name:      "step_duration_seconds",
			Help:      "Duration of invoked catalog steps in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.1, 2, 12), // 100ms to ~3m
		},
		[]string{"step"},
	)
)

func init() {
	prometheus.MustRegister(stepsTotal, stepDuration)
}

// Step outcomes recorded in stepsTotal.
const (
	resultSuccess = "success"
	resultFailure = "failure"
	resultSkipped = "skipped"
)

// recordStepMetric records the outcome of one catalog step.
func recordStepMetric(step, result string, seconds float64) {
	stepsTotal.WithLabelValues(step, result).Inc()
	if result != resultSkipped {
		stepDuration.WithLabelValues(step).Observe(seconds)
	}
}
