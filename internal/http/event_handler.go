package http

import (
	"net/http"
	"strings"
	"time"

	"san-monitor/internal/events"
	"san-monitor/internal/ingestors"
	"san-monitor/internal/models"
	"san-monitor/internal/stores"
)

const (
	defaultEventQueryLimit = 1000
	maxEventQueryLimit     = 10000

	defaultRetentionDays = 10
	maxRetentionDays     = 365
)

type eventsResponse struct {
	Events []events.AuditEvent `json:"events"`
	Count  int                 `json:"count"`
}

type cleanupResponse struct {
	DeletedCount int `json:"deletedCount"`
}

// eventHandler accepts event batches and serves the audit log.
type eventHandler struct {
	ingestionService ingestors.EventIngestionService
	eventLogStore    stores.EventLogStore
	now              func() time.Time
}

func newEventHandler(ingestionService ingestors.EventIngestionService, eventLogStore stores.EventLogStore) *eventHandler {
	return &eventHandler{
		ingestionService: ingestionService,
		eventLogStore:    eventLogStore,
		now:              time.Now,
	}
}

// Ingest handles POST /api/events.
func (h *eventHandler) Ingest(w http.ResponseWriter, r *http.Request) error {
	result, err := h.ingestionService.IngestBatch(r.Context(), idempotencyKey(r), contentType(r), r.Body)
	if err != nil {
		return err
	}

	writeJSON(w, r, http.StatusAccepted, result)
	return nil
}

// Query handles GET /api/events?kind=&start=&end=&limit=.
func (h *eventHandler) Query(w http.ResponseWriter, r *http.Request) error {
	var query stores.EventLogQuery

	if raw := strings.TrimSpace(r.URL.Query().Get("kind")); raw != "" {
		kind, err := models.ParseEventKind(strings.ToLower(raw))
		if err != nil {
			return errInvalidAuditQuery(err.Error(), err)
		}
		query.Kind = kind
	}

	start, end, err := timeRangeParams(r)
	if err != nil {
		return errInvalidAuditQuery(err.Error(), err)
	}
	query.Start, query.End = start, end

	query.Limit, err = intQueryParam(r, "limit", defaultEventQueryLimit, 1, maxEventQueryLimit)
	if err != nil {
		return errInvalidAuditQuery(err.Error(), err)
	}

	auditEvents, err := h.eventLogStore.Query(r.Context(), query)
	if err != nil {
		return errInternalAuditStoreFailed(err)
	}
	if auditEvents == nil {
		auditEvents = []events.AuditEvent{}
	}
	writeJSON(w, r, http.StatusOK, eventsResponse{Events: auditEvents, Count: len(auditEvents)})
	return nil
}

// Stats handles GET /api/events/stats?start=&end=.
func (h *eventHandler) Stats(w http.ResponseWriter, r *http.Request) error {
	start, end, err := timeRangeParams(r)
	if err != nil {
		return errInvalidAuditQuery(err.Error(), err)
	}

	stats, err := h.eventLogStore.Stats(r.Context(), start, end)
	if err != nil {
		return errInternalAuditStoreFailed(err)
	}
	writeJSON(w, r, http.StatusOK, stats)
	return nil
}

// Cleanup handles DELETE /api/events/cleanup?days=.
func (h *eventHandler) Cleanup(w http.ResponseWriter, r *http.Request) error {
	days, err := intQueryParam(r, "days", defaultRetentionDays, 1, maxRetentionDays)
	if err != nil {
		return errInvalidAuditQuery(err.Error(), err)
	}

	cutoff := h.now().UTC().Add(-time.Duration(days) * 24 * time.Hour)
	deleted, err := h.eventLogStore.Cleanup(r.Context(), cutoff)
	if err != nil {
		return errInternalAuditStoreFailed(err)
	}
	writeJSON(w, r, http.StatusOK, cleanupResponse{DeletedCount: deleted})
	return nil
}
