package ingestors

import (
	"san-monitor/internal/shared/metrics"
)

var (
	metricEventBatchIngestedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "event_batch_ingested_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricEventsAcceptedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "events_accepted_total",
		},
	)
)
