// Package metrics holds the prometheus collectors for ledger operations.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultSuccess = "success"
	ResultError   = "error"
)

var (
	// Operations processed by the operator, partitioned by action and result
	operationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_operations_total",
			Help: "Total number of ledger write operations processed",
		},
		[]string{"operation", "result"},
	)

	operationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ledger_operation_duration_seconds",
			Help:    "Ledger write operation latencies in seconds, queue wait excluded",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	ledgerAppendFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ledger_append_failures_total",
			Help: "Ledger entries that could not be appended after the account file was persisted",
		},
	)

	queueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ledger_queue_depth",
			Help: "Write operations waiting for the operator",
		},
	)
)

// ObserveOperation records one processed operation.
func ObserveOperation(operation string, start time.Time, err error) {
	result := ResultSuccess
	if err != nil {
		result = ResultError
	}
	operationsTotal.WithLabelValues(operation, result).Inc()
	operationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// LedgerAppendFailed counts a ledger entry lost after its account change was persisted.
func LedgerAppendFailed() {
	ledgerAppendFailures.Inc()
}

// SetQueueDepth publishes the current operator backlog.
func SetQueueDepth(n int) {
	queueDepth.Set(float64(n))
}
