package aggregators

import (
	"san-monitor/internal/shared/metrics"
)

var (
	// metricEventsIngestedTotal counts events applied to the engine, by event kind.
	metricEventsIngestedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "events_ingested_total",
		},
		[]string{"event_kind"},
	)

	// metricWindowRotatedTotal counts sealed windows. The first window opening is not counted.
	metricWindowRotatedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "window_rotated_total",
		},
	)

	// metricBurstDetectedTotal counts sealed windows that marked at least one path as burst.
	metricBurstDetectedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "burst_detected_total",
		},
	)

	metricPathsMonitored = metrics.NewGauge(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "paths_monitored",
		},
	)
)
