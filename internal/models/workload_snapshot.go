package models

import "time"

// TimeWindowSnapshot is the read-only view of a TimeWindow served to callers.
type TimeWindowSnapshot struct {
	WindowStart       time.Time        `json:"windowStart"`
	ReadCount         int64            `json:"readCount"`
	WriteCount        int64            `json:"writeCount"`
	ModificationCount int64            `json:"modificationCount"`
	FileReads         map[string]int64 `json:"fileReads"`
	FileWrites        map[string]int64 `json:"fileWrites"`
	FileModifications map[string]int64 `json:"fileModifications"`
	DirectoryReads    map[string]int64 `json:"directoryReads"`
	DirectoryWrites   map[string]int64 `json:"directoryWrites"`
	TotalEvents       int              `json:"totalEvents"`
	Events            []IoEvent        `json:"events"`
}

// CurrentWindowSnapshot adds the counts derived from the raw event list of the open window.
// DeleteCount is only tracked here: deletions never contribute to ReadCount or WriteCount.
type CurrentWindowSnapshot struct {
	TimeWindowSnapshot
	CreateCount int64 `json:"createCount"`
	DeleteCount int64 `json:"deleteCount"`
	RenameCount int64 `json:"renameCount"`
}

// EmptyCurrentWindowSnapshot is served before the first event arrives.
func EmptyCurrentWindowSnapshot() CurrentWindowSnapshot {
	return CurrentWindowSnapshot{
		TimeWindowSnapshot: NewTimeWindow(time.Time{}).Snapshot(),
	}
}

// HighLoadPath pairs a path with its statistics for the workload view.
type HighLoadPath struct {
	Path  string                 `json:"path"`
	Stats PathStatisticsSnapshot `json:"stats"`
}

// WorkloadSnapshot is the live view of monitored I/O activity.
//
// Example JSON (abridged):
//
//	{
//	  "currentWindow": {"windowStart": "2025-12-28T18:03:00Z", "readCount": 1, "deleteCount": 1, ...},
//	  "highLoadPaths": [{"path": "/mnt/san01/hot.db", "stats": {"isHighLoad": true, ...}}],
//	  "recentHistory": [...],
//	  "totalPathsMonitored": 42,
//	  "monitoringActive": true
//	}
type WorkloadSnapshot struct {
	CurrentWindow       CurrentWindowSnapshot `json:"currentWindow"`
	HighLoadPaths       []HighLoadPath        `json:"highLoadPaths"`
	RecentHistory       []TimeWindowSnapshot  `json:"recentHistory"`
	TotalPathsMonitored int                   `json:"totalPathsMonitored"`
	MonitoringActive    bool                  `json:"monitoringActive"`
}

// WorkloadSummary totals and averages activity over a slice of sealed windows.
type WorkloadSummary struct {
	TotalReads                    int64                 `json:"totalReads"`
	TotalWrites                   int64                 `json:"totalWrites"`
	TotalModifications            int64                 `json:"totalModifications"`
	AverageReadsPerWindow         float64               `json:"averageReadsPerWindow"`
	AverageWritesPerWindow        float64               `json:"averageWritesPerWindow"`
	AverageModificationsPerWindow float64               `json:"averageModificationsPerWindow"`
	HighLoadPathsCount            int                   `json:"highLoadPathsCount"`
	TotalPathsMonitored           int                   `json:"totalPathsMonitored"`
	WindowsAnalyzed               int                   `json:"windowsAnalyzed"`
	CurrentWindow                 CurrentWindowSnapshot `json:"currentWindow"`
}
