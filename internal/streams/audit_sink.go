package streams

import (
	"context"

	"san-monitor/internal/events"
)

// AuditEventSink receives ingested events in batches after the engine has applied them.
// A failing sink never blocks ingestion; the consumer logs and counts the failure.
//
//go:generate mockgen -source=audit_sink.go -destination=./mocks/audit_sink_mock.go -package=mocks
type AuditEventSink interface {
	Name() string
	Append(ctx context.Context, auditEvents []events.AuditEvent) error
}
