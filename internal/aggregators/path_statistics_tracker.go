package aggregators

import (
	"sort"
	"time"

	"san-monitor/internal/models"
)

// PathStatisticsTracker keeps one PathStatistics per path ever observed.
// Entries are created on first use and never evicted. Not safe for concurrent use.
type PathStatisticsTracker struct {
	stats map[string]*models.PathStatistics
}

func NewPathStatisticsTracker() *PathStatisticsTracker {
	return &PathStatisticsTracker{stats: make(map[string]*models.PathStatistics)}
}

// Record classifies the event kind and updates the path's counters:
//   - created          -> read
//   - modified         -> write and modification
//   - moved, moved_to  -> write
//   - deleted          -> nothing but LastAccessed
func (t *PathStatisticsTracker) Record(path string, kind models.EventKind, ts time.Time) *models.PathStatistics {
	stats, ok := t.stats[path]
	if !ok {
		stats = models.NewPathStatistics()
		t.stats[path] = stats
	}

	switch kind {
	case models.EventCreated:
		stats.RecordRead(ts)
	case models.EventModified:
		stats.RecordWrite(ts)
		stats.RecordModification(ts)
	case models.EventMoved, models.EventMovedTo:
		stats.RecordWrite(ts)
	}
	stats.LastAccessed = ts

	return stats
}

func (t *PathStatisticsTracker) Get(path string) (*models.PathStatistics, bool) {
	stats, ok := t.stats[path]
	return stats, ok
}

func (t *PathStatisticsTracker) Len() int {
	return len(t.stats)
}

// MarkBurst sets the sticky burst flag on already-known paths and returns how many were marked.
func (t *PathStatisticsTracker) MarkBurst(paths []string) int {
	marked := 0
	for _, path := range paths {
		if stats, ok := t.stats[path]; ok {
			stats.IsBurst = true
			marked++
		}
	}
	return marked
}

// Flagged returns the high-load or burst paths sorted by path.
func (t *PathStatisticsTracker) Flagged() []models.HighLoadPath {
	flagged := make([]models.HighLoadPath, 0)
	for path, stats := range t.stats {
		if stats.IsFlagged() {
			flagged = append(flagged, models.HighLoadPath{Path: path, Stats: stats.Snapshot(path)})
		}
	}
	sort.Slice(flagged, func(i, j int) bool { return flagged[i].Path < flagged[j].Path })
	return flagged
}
