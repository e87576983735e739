package models

import (
	"fmt"
	"time"
)

type EventKind string

const (
	EventCreated  EventKind = "created"
	EventModified EventKind = "modified"
	EventDeleted  EventKind = "deleted"
	EventMoved    EventKind = "moved"
	EventMovedTo  EventKind = "moved_to"
)

// EventKinds lists every kind an event source may emit.
var EventKinds = []EventKind{EventCreated, EventModified, EventDeleted, EventMoved, EventMovedTo}

func (k EventKind) IsValid() bool {
	switch k {
	case EventCreated, EventModified, EventDeleted, EventMoved, EventMovedTo:
		return true
	}
	return false
}

// IsRename reports whether the kind is either side of a move.
func (k EventKind) IsRename() bool {
	return k == EventMoved || k == EventMovedTo
}

func ParseEventKind(s string) (EventKind, error) {
	kind := EventKind(s)
	if !kind.IsValid() {
		return "", fmt.Errorf("invalid event kind: %q", s)
	}
	return kind, nil
}

// IoEvent is a normalized storage-access notification.
//
// Example JSON:
//
//	{
//	  "kind": "modified",
//	  "path": "/mnt/san01/projects/render.exr",
//	  "isDirectory": false,
//	  "timestamp": "2025-12-28T18:03:00.250Z"
//	}
type IoEvent struct {
	Kind        EventKind `json:"kind"`
	Path        string    `json:"path"`
	IsDirectory bool      `json:"isDirectory"`
	Timestamp   time.Time `json:"timestamp"`
}

func NewIoEvent(kind EventKind, path string, isDirectory bool, timestamp time.Time) IoEvent {
	return IoEvent{Kind: kind, Path: path, IsDirectory: isDirectory, Timestamp: timestamp}
}
