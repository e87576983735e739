package watchers

import (
	"san-monitor/internal/shared/metrics"
)

var (
	metricWatcherEventsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubWatcher,
			Name:      "events_total",
		},
		[]string{"event_kind"},
	)

	metricWatcherErrorsTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubWatcher,
			Name:      "errors_total",
		},
	)

	metricWatchedDirectories = metrics.NewGauge(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubWatcher,
			Name:      "watched_directories",
		},
	)
)
