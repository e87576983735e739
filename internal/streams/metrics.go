package streams

import (
	"san-monitor/internal/shared/metrics"
)

var (
	metricIoEventProducedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "io_event_published_total",
		},
		[]string{"source"},
	)

	metricIoEventConsumedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "io_event_consumed_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricIoEventQueueDepth = metrics.NewGauge(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "io_event_queue_depth",
		},
	)

	metricAuditAppendTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAudit,
			Name:      "append_total",
		},
		[]string{"sink", metrics.FieldErrorCode},
	)

	metricWorkloadPushTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "workload_push_total",
		},
	)

	metricWorkloadSubscribers = metrics.NewGauge(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "workload_subscribers",
		},
	)
)
