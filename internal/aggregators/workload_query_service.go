package aggregators

import (
	"san-monitor/internal/models"
)

const recentHistoryLimit = 10

//go:generate mockgen -source=workload_query_service.go -destination=./mocks/workload_query_service_mock.go -package=mocks
type WorkloadQueryService interface {
	// CurrentWorkload returns the open window, flagged paths and the last few sealed windows.
	CurrentWorkload() *models.WorkloadSnapshot
	// PathStatistics returns a ServiceError wrapping ErrPathNotFound for unknown paths.
	PathStatistics(path string) (*models.PathStatisticsSnapshot, error)
	// WindowHistory returns up to limit sealed windows, newest last.
	WindowHistory(limit int) []models.TimeWindowSnapshot
	// Summary totals and averages the last limit sealed windows.
	Summary(limit int) *models.WorkloadSummary
}

func (e *AggregationEngine) CurrentWorkload() *models.WorkloadSnapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	return &models.WorkloadSnapshot{
		CurrentWindow:       e.currentWindowSnapshot(),
		HighLoadPaths:       e.tracker.Flagged(),
		RecentHistory:       snapshotWindows(e.windows.History(recentHistoryLimit)),
		TotalPathsMonitored: e.tracker.Len(),
		MonitoringActive:    e.monitoringActive,
	}
}

func (e *AggregationEngine) PathStatistics(path string) (*models.PathStatisticsSnapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	stats, ok := e.tracker.Get(path)
	if !ok {
		return nil, errPathNotFound(path)
	}
	snapshot := stats.Snapshot(path)
	return &snapshot, nil
}

func (e *AggregationEngine) WindowHistory(limit int) []models.TimeWindowSnapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	return snapshotWindows(e.windows.History(limit))
}

func (e *AggregationEngine) Summary(limit int) *models.WorkloadSummary {
	e.mu.Lock()
	defer e.mu.Unlock()

	history := e.windows.History(limit)
	summary := &models.WorkloadSummary{
		HighLoadPathsCount:  len(e.tracker.Flagged()),
		TotalPathsMonitored: e.tracker.Len(),
		WindowsAnalyzed:     len(history),
		CurrentWindow:       e.currentWindowSnapshot(),
	}
	for _, window := range history {
		summary.TotalReads += window.ReadCount
		summary.TotalWrites += window.WriteCount
		summary.TotalModifications += window.ModificationCount
	}
	if n := float64(len(history)); n > 0 {
		summary.AverageReadsPerWindow = float64(summary.TotalReads) / n
		summary.AverageWritesPerWindow = float64(summary.TotalWrites) / n
		summary.AverageModificationsPerWindow = float64(summary.TotalModifications) / n
	}
	return summary
}

// currentWindowSnapshot must be called with e.mu held.
func (e *AggregationEngine) currentWindowSnapshot() models.CurrentWindowSnapshot {
	current := e.windows.Current()
	if current == nil {
		return models.EmptyCurrentWindowSnapshot()
	}
	creates, deletes, renames := current.KindCounts()
	return models.CurrentWindowSnapshot{
		TimeWindowSnapshot: current.Snapshot(),
		CreateCount:        creates,
		DeleteCount:        deletes,
		RenameCount:        renames,
	}
}

func snapshotWindows(windows []*models.TimeWindow) []models.TimeWindowSnapshot {
	snapshots := make([]models.TimeWindowSnapshot, 0, len(windows))
	for _, window := range windows {
		snapshots = append(snapshots, window.Snapshot())
	}
	return snapshots
}
