package models

import (
	"time"

	"san-monitor/internal/shared/ringbuffers"
)

// PathHistoryCapacity bounds each per-path recent-activity history.
const PathHistoryCapacity = 100

// PathStatistics accumulates activity for one path over the process lifetime.
// Totals never decrease. IsBurst is sticky: nothing in the engine clears it.
type PathStatistics struct {
	TotalReads         int64
	TotalWrites        int64
	TotalModifications int64

	ReadHistory         *ringbuffers.RingBuffer[time.Time]
	WriteHistory        *ringbuffers.RingBuffer[time.Time]
	ModificationHistory *ringbuffers.RingBuffer[time.Time]

	LastAccessed time.Time
	IsHighLoad   bool
	IsBurst      bool
}

func NewPathStatistics() *PathStatistics {
	return &PathStatistics{
		ReadHistory:         ringbuffers.New[time.Time](PathHistoryCapacity),
		WriteHistory:        ringbuffers.New[time.Time](PathHistoryCapacity),
		ModificationHistory: ringbuffers.New[time.Time](PathHistoryCapacity),
	}
}

func (s *PathStatistics) RecordRead(ts time.Time) {
	s.TotalReads++
	s.ReadHistory.Push(ts)
}

func (s *PathStatistics) RecordWrite(ts time.Time) {
	s.TotalWrites++
	s.WriteHistory.Push(ts)
}

func (s *PathStatistics) RecordModification(ts time.Time) {
	s.TotalModifications++
	s.ModificationHistory.Push(ts)
}

// IsFlagged reports whether the path belongs in the high-load view.
func (s *PathStatistics) IsFlagged() bool {
	return s.IsHighLoad || s.IsBurst
}

func (s *PathStatistics) Snapshot(path string) PathStatisticsSnapshot {
	return PathStatisticsSnapshot{
		Path:                  path,
		TotalReads:            s.TotalReads,
		TotalWrites:           s.TotalWrites,
		TotalModifications:    s.TotalModifications,
		IsHighLoad:            s.IsHighLoad,
		IsBurst:               s.IsBurst,
		LastAccessed:          s.LastAccessed,
		ReadFrequency:         s.ReadHistory.Len(),
		WriteFrequency:        s.WriteHistory.Len(),
		ModificationFrequency: s.ModificationHistory.Len(),
	}
}

// PathStatisticsSnapshot is the read-only view of PathStatistics.
// The frequency fields count the timestamps currently held in each bounded history.
type PathStatisticsSnapshot struct {
	Path                  string    `json:"path"`
	TotalReads            int64     `json:"totalReads"`
	TotalWrites           int64     `json:"totalWrites"`
	TotalModifications    int64     `json:"totalModifications"`
	IsHighLoad            bool      `json:"isHighLoad"`
	IsBurst               bool      `json:"isBurst"`
	LastAccessed          time.Time `json:"lastAccessed"`
	ReadFrequency         int       `json:"readFrequency"`
	WriteFrequency        int       `json:"writeFrequency"`
	ModificationFrequency int       `json:"modificationFrequency"`
}
