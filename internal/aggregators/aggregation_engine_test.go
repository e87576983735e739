package aggregators

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"san-monitor/internal/models"
	"san-monitor/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var engineStart = time.Date(2025, 12, 28, 18, 3, 0, 0, time.UTC)

func newTestEngine() *AggregationEngine {
	settings := models.MonitorSettings{
		WindowDuration: time.Second,
		Thresholds:     models.DefaultThresholds(),
	}
	return NewAggregationEngine(settings, NewThresholdClassifier(), NewBurstDetector())
}

func at(ms int) time.Time {
	return engineStart.Add(time.Duration(ms) * time.Millisecond)
}

func TestAggregationEngine_Ingest_CreateModifyDelete(t *testing.T) {
	t.Parallel()

	engine := newTestEngine()
	ctx := context.Background()

	engine.Ingest(ctx, models.NewIoEvent(models.EventCreated, "/mnt/san01/a.txt", false, at(0)))
	engine.Ingest(ctx, models.NewIoEvent(models.EventModified, "/mnt/san01/a.txt", false, at(200)))
	engine.Ingest(ctx, models.NewIoEvent(models.EventDeleted, "/mnt/san01/a.txt", false, at(300)))

	workload := engine.CurrentWorkload()
	current := workload.CurrentWindow
	assert.Equal(t, engineStart, current.WindowStart)
	assert.Equal(t, int64(1), current.ReadCount)
	assert.Equal(t, int64(1), current.WriteCount)
	assert.Equal(t, int64(1), current.ModificationCount)
	assert.Equal(t, int64(1), current.CreateCount)
	assert.Equal(t, int64(1), current.DeleteCount)
	assert.Equal(t, int64(0), current.RenameCount)
	assert.Equal(t, 3, current.TotalEvents)
	assert.Equal(t, 1, workload.TotalPathsMonitored)
	assert.Empty(t, workload.HighLoadPaths)
	assert.Empty(t, workload.RecentHistory)

	stats, err := engine.PathStatistics("/mnt/san01/a.txt")
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalReads)
	assert.Equal(t, int64(1), stats.TotalWrites)
	assert.Equal(t, int64(1), stats.TotalModifications)
	assert.Equal(t, at(300), stats.LastAccessed)
}

func TestAggregationEngine_Ingest_RotatesAtBoundary(t *testing.T) {
	t.Parallel()

	engine := newTestEngine()
	ctx := context.Background()

	first := engine.Ingest(ctx, models.NewIoEvent(models.EventCreated, "/a", false, at(0)))
	assert.False(t, first.Rotated, "opening the first window does not seal anything")

	second := engine.Ingest(ctx, models.NewIoEvent(models.EventCreated, "/a", false, at(1000)))
	assert.True(t, second.Rotated)
	assert.Equal(t, engineStart, second.ClosedWindowStart)

	workload := engine.CurrentWorkload()
	assert.Equal(t, at(1000), workload.CurrentWindow.WindowStart)
	assert.Equal(t, int64(1), workload.CurrentWindow.ReadCount)
	require.Len(t, workload.RecentHistory, 1)
	assert.Equal(t, engineStart, workload.RecentHistory[0].WindowStart)
	assert.Equal(t, int64(1), workload.RecentHistory[0].ReadCount)
}

func TestAggregationEngine_Ingest_ReadWriteTotalsMatchEventCounts(t *testing.T) {
	t.Parallel()

	engine := newTestEngine()
	ctx := context.Background()

	kinds := []models.EventKind{
		models.EventCreated, models.EventModified, models.EventMoved,
		models.EventMovedTo, models.EventDeleted, models.EventCreated,
	}
	for i, kind := range kinds {
		engine.Ingest(ctx, models.NewIoEvent(kind, "/p", false, at(i*10)))
	}

	current := engine.CurrentWorkload().CurrentWindow
	// reads = created, writes = modified + moved + moved_to
	assert.Equal(t, int64(2), current.ReadCount)
	assert.Equal(t, int64(3), current.WriteCount)
	assert.Equal(t, int64(1), current.ModificationCount)
	assert.Equal(t, int64(2), current.RenameCount)
}

func TestAggregationEngine_Ingest_FlagsHighLoadPath(t *testing.T) {
	t.Parallel()

	engine := newTestEngine()
	ctx := context.Background()

	var result IngestResult
	for i := 0; i < 50; i++ {
		result = engine.Ingest(ctx, models.NewIoEvent(models.EventModified, "/hot", false, at(i)))
	}
	assert.True(t, result.IsHighLoad)

	workload := engine.CurrentWorkload()
	require.Len(t, workload.HighLoadPaths, 1)
	assert.Equal(t, "/hot", workload.HighLoadPaths[0].Path)
	assert.True(t, workload.HighLoadPaths[0].Stats.IsHighLoad)
}

func TestAggregationEngine_Ingest_HighLoadRecomputedAfterRotation(t *testing.T) {
	t.Parallel()

	engine := newTestEngine()
	ctx := context.Background()

	for i := 0; i < 50; i++ {
		engine.Ingest(ctx, models.NewIoEvent(models.EventModified, "/hot", false, at(i)))
	}
	stats, err := engine.PathStatistics("/hot")
	require.NoError(t, err)
	require.True(t, stats.IsHighLoad)

	result := engine.Ingest(ctx, models.NewIoEvent(models.EventModified, "/hot", false, at(1000)))
	assert.True(t, result.Rotated)
	assert.False(t, result.IsHighLoad, "one modification in the new window is below every threshold")

	stats, err = engine.PathStatistics("/hot")
	require.NoError(t, err)
	assert.False(t, stats.IsHighLoad)
	assert.Equal(t, int64(51), stats.TotalModifications, "totals keep accumulating across windows")
	assert.Empty(t, engine.CurrentWorkload().HighLoadPaths)
}

func TestAggregationEngine_ConcurrentIngestAndQueries(t *testing.T) {
	t.Parallel()

	engine := newTestEngine()
	ctx := context.Background()
	paths := []string{"/mnt/san01/a", "/mnt/san01/b", "/mnt/san02/c", "/mnt/san02/d"}

	const eventCount = 5000
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < eventCount; i++ {
			kind := models.EventCreated
			if i%2 == 1 {
				kind = models.EventModified
			}
			engine.Ingest(ctx, models.NewIoEvent(kind, paths[i%len(paths)], false, at(i)))
		}
	}()

	sum := func(counts map[string]int64) int64 {
		var total int64
		for _, n := range counts {
			total += n
		}
		return total
	}

	for q := 0; q < 2000; q++ {
		workload := engine.CurrentWorkload()
		current := workload.CurrentWindow
		require.Equal(t, current.ReadCount, sum(current.FileReads), "query %d saw a partial ingest", q)
		require.Equal(t, current.WriteCount, sum(current.FileWrites), "query %d saw a partial ingest", q)
		require.Equal(t, current.TotalEvents, len(current.Events))
		require.Equal(t, int64(current.TotalEvents), current.ReadCount+current.WriteCount)

		for _, window := range workload.RecentHistory {
			require.True(t, window.WindowStart.Before(current.WindowStart) || current.WindowStart.IsZero(),
				"sealed window %s is not older than the open one", window.WindowStart)
			require.Equal(t, 1000, window.TotalEvents, "sealed windows hold one second of events")
		}

		history := engine.WindowHistory(10)
		for i := 1; i < len(history); i++ {
			require.True(t, history[i-1].WindowStart.Before(history[i].WindowStart), fmt.Sprintf("history out of order at %d", i))
		}
	}

	wg.Wait()

	workload := engine.CurrentWorkload()
	require.Len(t, workload.RecentHistory, 4)
	var total int
	for _, window := range engine.WindowHistory(100) {
		total += window.TotalEvents
	}
	assert.Equal(t, eventCount, total+workload.CurrentWindow.TotalEvents)
	assert.Equal(t, len(paths), workload.TotalPathsMonitored)
}

func TestAggregationEngine_Ingest_MarksBurstPaths(t *testing.T) {
	t.Parallel()

	engine := newTestEngine()
	ctx := context.Background()

	// Four quiet windows with five reads and one modification each.
	for w := 0; w < 4; w++ {
		base := w * 1000
		for i := 0; i < 5; i++ {
			engine.Ingest(ctx, models.NewIoEvent(models.EventCreated, "/quiet", false, at(base+i)))
		}
		engine.Ingest(ctx, models.NewIoEvent(models.EventModified, "/w", false, at(base+10)))
	}
	// A busy fifth window.
	for i := 0; i < 30; i++ {
		engine.Ingest(ctx, models.NewIoEvent(models.EventCreated, "/busy", false, at(4000+i)))
	}
	engine.Ingest(ctx, models.NewIoEvent(models.EventModified, "/w", false, at(4100)))

	// Sealing the fifth window runs detection against avg 10 reads.
	result := engine.Ingest(ctx, models.NewIoEvent(models.EventCreated, "/next", false, at(5000)))
	assert.True(t, result.Rotated)
	assert.Equal(t, []string{"/busy", "/w"}, result.BurstPaths)

	busy, err := engine.PathStatistics("/busy")
	require.NoError(t, err)
	assert.True(t, busy.IsBurst)

	quiet, err := engine.PathStatistics("/quiet")
	require.NoError(t, err)
	assert.False(t, quiet.IsBurst)

	// Burst flags stay set after later windows.
	engine.Ingest(ctx, models.NewIoEvent(models.EventCreated, "/next", false, at(6000)))
	busy, err = engine.PathStatistics("/busy")
	require.NoError(t, err)
	assert.True(t, busy.IsBurst)
}

func TestWorkloadQueryService_CurrentWorkload_BeforeFirstEvent(t *testing.T) {
	t.Parallel()

	engine := newTestEngine()

	workload := engine.CurrentWorkload()
	assert.True(t, workload.CurrentWindow.WindowStart.IsZero())
	assert.Equal(t, int64(0), workload.CurrentWindow.ReadCount)
	assert.Equal(t, 0, workload.CurrentWindow.TotalEvents)
	assert.NotNil(t, workload.CurrentWindow.FileReads)
	assert.NotNil(t, workload.HighLoadPaths)
	assert.NotNil(t, workload.RecentHistory)
	assert.Equal(t, 0, workload.TotalPathsMonitored)
	assert.False(t, workload.MonitoringActive)
}

func TestWorkloadQueryService_CurrentWorkload_IsIdempotent(t *testing.T) {
	t.Parallel()

	engine := newTestEngine()
	ctx := context.Background()
	for i := 0; i < 120; i++ {
		engine.Ingest(ctx, models.NewIoEvent(models.EventCreated, "/p", false, at(i*100)))
	}
	engine.SetMonitoringActive(true)

	first := engine.CurrentWorkload()
	second := engine.CurrentWorkload()
	assert.Equal(t, first, second)
	assert.True(t, first.MonitoringActive)
	assert.Len(t, first.RecentHistory, recentHistoryLimit)
}

func TestWorkloadQueryService_CurrentWorkload_ReturnsCopies(t *testing.T) {
	t.Parallel()

	engine := newTestEngine()
	ctx := context.Background()
	engine.Ingest(ctx, models.NewIoEvent(models.EventCreated, "/p", false, at(0)))

	workload := engine.CurrentWorkload()
	workload.CurrentWindow.FileReads["/p"] = 999

	assert.Equal(t, int64(1), engine.CurrentWorkload().CurrentWindow.FileReads["/p"])
}

func TestWorkloadQueryService_PathStatistics_NotFound(t *testing.T) {
	t.Parallel()

	engine := newTestEngine()

	stats, err := engine.PathStatistics("/missing")
	assert.Nil(t, stats)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPathNotFound))

	serviceErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, codePathNotFound, serviceErr.Code)
	assert.True(t, serviceErr.IsNotFound())
}

func TestWorkloadQueryService_WindowHistory(t *testing.T) {
	t.Parallel()

	engine := newTestEngine()
	ctx := context.Background()
	for i := 0; i < 6; i++ {
		engine.Ingest(ctx, models.NewIoEvent(models.EventCreated, "/p", false, at(i*1000)))
	}

	history := engine.WindowHistory(3)
	require.Len(t, history, 3)
	assert.Equal(t, at(2000), history[0].WindowStart)
	assert.Equal(t, at(4000), history[2].WindowStart)

	assert.Len(t, engine.WindowHistory(100), 5)
}

func TestWorkloadQueryService_Summary(t *testing.T) {
	t.Parallel()

	engine := newTestEngine()
	ctx := context.Background()

	// Window 1: 2 reads. Window 2: 1 write, 1 modification. Window 3 stays open.
	engine.Ingest(ctx, models.NewIoEvent(models.EventCreated, "/a", false, at(0)))
	engine.Ingest(ctx, models.NewIoEvent(models.EventCreated, "/b", false, at(10)))
	engine.Ingest(ctx, models.NewIoEvent(models.EventModified, "/a", false, at(1000)))
	engine.Ingest(ctx, models.NewIoEvent(models.EventCreated, "/c", false, at(2000)))

	summary := engine.Summary(100)
	assert.Equal(t, 2, summary.WindowsAnalyzed)
	assert.Equal(t, int64(2), summary.TotalReads)
	assert.Equal(t, int64(1), summary.TotalWrites)
	assert.Equal(t, int64(1), summary.TotalModifications)
	assert.InDelta(t, 1.0, summary.AverageReadsPerWindow, 1e-9)
	assert.InDelta(t, 0.5, summary.AverageWritesPerWindow, 1e-9)
	assert.InDelta(t, 0.5, summary.AverageModificationsPerWindow, 1e-9)
	assert.Equal(t, 3, summary.TotalPathsMonitored)
	assert.Equal(t, int64(1), summary.CurrentWindow.ReadCount)

	empty := newTestEngine().Summary(100)
	assert.Equal(t, 0, empty.WindowsAnalyzed)
	assert.Zero(t, empty.AverageReadsPerWindow)
}
