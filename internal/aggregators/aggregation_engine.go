package aggregators

import (
	"context"
	"sync"
	"time"

	"san-monitor/internal/models"
	"san-monitor/internal/shared/loggers"
)

// IngestResult describes the side effects of one Ingest call, so callers can log or
// publish them after the engine's lock is released.
type IngestResult struct {
	Rotated           bool
	ClosedWindowStart time.Time
	BurstPaths        []string
	IsHighLoad        bool
	PathsMonitored    int
}

//go:generate mockgen -source=aggregation_engine.go -destination=./mocks/aggregation_engine_mock.go -package=mocks
type EventIngester interface {
	Ingest(ctx context.Context, event models.IoEvent) IngestResult
}

// AggregationEngine owns the open window, the window history and the per-path statistics.
//
// A single mutex guards all of it. Ingest and every query hold the mutex for their whole
// duration, so readers never observe a window mid-rotation. Nothing under the mutex does
// I/O; logging happens after it is released.
type AggregationEngine struct {
	mu sync.Mutex

	thresholds    models.Thresholds
	windows       *WindowManager
	tracker       *PathStatisticsTracker
	classifier    ThresholdClassifier
	burstDetector BurstDetector

	monitoringActive bool
}

func NewAggregationEngine(settings models.MonitorSettings, classifier ThresholdClassifier, burstDetector BurstDetector) *AggregationEngine {
	return &AggregationEngine{
		thresholds:    settings.Thresholds,
		windows:       NewWindowManager(settings.WindowDuration),
		tracker:       NewPathStatisticsTracker(),
		classifier:    classifier,
		burstDetector: burstDetector,
	}
}

// Ingest applies one event. Events are processed in call order and never dropped.
func (e *AggregationEngine) Ingest(ctx context.Context, event models.IoEvent) IngestResult {
	result := e.ingest(event)

	metricEventsIngestedTotal.WithLabelValues(string(event.Kind)).Inc()
	metricPathsMonitored.Set(float64(result.PathsMonitored))

	logger := loggers.Ctx(ctx)
	if result.Rotated {
		metricWindowRotatedTotal.Inc()
		logger.Debug().
			Time(loggers.FieldWindowStart, result.ClosedWindowStart).
			Msg("window sealed")
	}
	if len(result.BurstPaths) > 0 {
		metricBurstDetectedTotal.Inc()
		logger.Info().
			Time(loggers.FieldWindowStart, result.ClosedWindowStart).
			Int("burst_paths", len(result.BurstPaths)).
			Msg("burst detected")
	}

	return result
}

func (e *AggregationEngine) ingest(event models.IoEvent) IngestResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	var result IngestResult

	transition := e.windows.Observe(event.Timestamp)
	if transition.Rotated && transition.Closed != nil {
		result.Rotated = true
		result.ClosedWindowStart = transition.Closed.WindowStart

		burstPaths := e.burstDetector.Detect(e.windows.Trailing(), transition.Closed, e.thresholds)
		if len(burstPaths) > 0 {
			e.tracker.MarkBurst(burstPaths)
			result.BurstPaths = burstPaths
		}
	}

	current := e.windows.Current()
	current.AddEvent(event)

	stats := e.tracker.Record(event.Path, event.Kind, event.Timestamp)
	stats.IsHighLoad = e.classifier.Classify(event.Path, current, e.thresholds)

	result.IsHighLoad = stats.IsHighLoad
	result.PathsMonitored = e.tracker.Len()
	return result
}

// SetMonitoringActive records whether an event source is currently running.
func (e *AggregationEngine) SetMonitoringActive(active bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.monitoringActive = active
}
