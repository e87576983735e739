package events

import (
	"time"

	"san-monitor/internal/models"
	"san-monitor/internal/shared/ulid"
)

// AuditEvent is the record of one ingested IoEvent handed to audit sinks after the
// aggregation engine has applied it. The ID is a ULID whose time component is the
// event timestamp, so IDs sort by event time.
//
// Example JSON:
//
//	{
//	  "id": "01JG8Z3K4N5P6Q7R8S9T0V1W2X",
//	  "kind": "modified",
//	  "path": "/mnt/san01/projects/render.exr",
//	  "isDirectory": false,
//	  "timestamp": "2025-12-28T18:03:00.250Z",
//	  "recordedAt": "2025-12-28T18:03:00.251Z"
//	}
type AuditEvent struct {
	ID          string           `json:"id"`
	Kind        models.EventKind `json:"kind"`
	Path        string           `json:"path"`
	IsDirectory bool             `json:"isDirectory"`
	Timestamp   time.Time        `json:"timestamp"`
	RecordedAt  time.Time        `json:"recordedAt"`
}

func NewAuditEvent(event models.IoEvent, recordedAt time.Time) AuditEvent {
	return AuditEvent{
		ID:          ulid.NewULIDAt(event.Timestamp),
		Kind:        event.Kind,
		Path:        event.Path,
		IsDirectory: event.IsDirectory,
		Timestamp:   event.Timestamp,
		RecordedAt:  recordedAt,
	}
}
