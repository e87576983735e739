package models

import (
	"maps"
	"sort"
	"time"
)

// TimeWindow aggregates the events whose timestamps fall in
// [WindowStart, WindowStart + window duration).
//
// Per category the per-path counts always sum to the scalar tally:
//   - ReadCount         = sum(FileReads) + sum(DirectoryReads)
//   - WriteCount        = sum(FileWrites) + sum(DirectoryWrites)
//   - ModificationCount = sum(FileModifications)
//
// Deleted events only land in Events.
type TimeWindow struct {
	WindowStart time.Time

	ReadCount         int64
	WriteCount        int64
	ModificationCount int64

	FileReads         map[string]int64
	FileWrites        map[string]int64
	FileModifications map[string]int64
	DirectoryReads    map[string]int64
	DirectoryWrites   map[string]int64

	Events []IoEvent
}

func NewTimeWindow(windowStart time.Time) *TimeWindow {
	return &TimeWindow{
		WindowStart:       windowStart,
		FileReads:         make(map[string]int64),
		FileWrites:        make(map[string]int64),
		FileModifications: make(map[string]int64),
		DirectoryReads:    make(map[string]int64),
		DirectoryWrites:   make(map[string]int64),
	}
}

func (w *TimeWindow) AddEvent(event IoEvent) {
	w.Events = append(w.Events, event)

	switch event.Kind {
	case EventCreated:
		if event.IsDirectory {
			w.DirectoryReads[event.Path]++
		} else {
			w.FileReads[event.Path]++
		}
		w.ReadCount++
	case EventModified:
		if event.IsDirectory {
			w.DirectoryWrites[event.Path]++
		} else {
			w.FileWrites[event.Path]++
			w.FileModifications[event.Path]++
			w.ModificationCount++
		}
		w.WriteCount++
	case EventMoved, EventMovedTo:
		if event.IsDirectory {
			w.DirectoryWrites[event.Path]++
		} else {
			w.FileWrites[event.Path]++
		}
		w.WriteCount++
	}
}

func (w *TimeWindow) ReadsFor(path string) int64 {
	return w.FileReads[path] + w.DirectoryReads[path]
}

func (w *TimeWindow) WritesFor(path string) int64 {
	return w.FileWrites[path] + w.DirectoryWrites[path]
}

func (w *TimeWindow) ModificationsFor(path string) int64 {
	return w.FileModifications[path]
}

// ActivePaths returns every path referenced by a read or write mapping, sorted.
func (w *TimeWindow) ActivePaths() []string {
	seen := make(map[string]struct{})
	for _, m := range []map[string]int64{w.FileReads, w.FileWrites, w.DirectoryReads, w.DirectoryWrites} {
		for path := range m {
			seen[path] = struct{}{}
		}
	}
	paths := make([]string, 0, len(seen))
	for path := range seen {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// KindCounts scans the raw event list. Deletions are only visible here.
func (w *TimeWindow) KindCounts() (creates, deletes, renames int64) {
	for _, event := range w.Events {
		switch {
		case event.Kind == EventCreated:
			creates++
		case event.Kind == EventDeleted:
			deletes++
		case event.Kind.IsRename():
			renames++
		}
	}
	return creates, deletes, renames
}

// Snapshot returns a deep copy suitable for handing out of the engine's lock.
func (w *TimeWindow) Snapshot() TimeWindowSnapshot {
	events := make([]IoEvent, len(w.Events))
	copy(events, w.Events)
	return TimeWindowSnapshot{
		WindowStart:       w.WindowStart,
		ReadCount:         w.ReadCount,
		WriteCount:        w.WriteCount,
		ModificationCount: w.ModificationCount,
		FileReads:         maps.Clone(w.FileReads),
		FileWrites:        maps.Clone(w.FileWrites),
		FileModifications: maps.Clone(w.FileModifications),
		DirectoryReads:    maps.Clone(w.DirectoryReads),
		DirectoryWrites:   maps.Clone(w.DirectoryWrites),
		TotalEvents:       len(w.Events),
		Events:            events,
	}
}
