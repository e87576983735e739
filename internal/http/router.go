package http

import (
	"net/http"

	"san-monitor/internal/aggregators"
	"san-monitor/internal/ingestors"
	"san-monitor/internal/models"
	"san-monitor/internal/shared/loggers"
	"san-monitor/internal/shared/metrics"
	"san-monitor/internal/stores"
	"san-monitor/internal/streams"

	"github.com/go-chi/chi/v5"
)

// RouterDeps are the services the HTTP layer reads from and writes to.
type RouterDeps struct {
	QueryService     aggregators.WorkloadQueryService
	IngestionService ingestors.EventIngestionService
	EventLogStore    stores.EventLogStore
	Broadcaster      streams.WorkloadBroadcaster
	Settings         models.MonitorSettings
}

// NewRouter creates and configures the HTTP router.
func NewRouter(deps RouterDeps, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	workload := newWorkloadHandler(deps.QueryService, deps.Settings)
	eventsHandler := newEventHandler(deps.IngestionService, deps.EventLogStore)
	stream := newWorkloadStreamHandler(deps.Broadcaster)

	router.Get("/", errorHandlingAdapter(AppHandlerFunc(workload.Health)))
	router.Route("/api", func(r chi.Router) {
		r.Get("/workload", errorHandlingAdapter(AppHandlerFunc(workload.Current)))
		r.Get("/workload/history", errorHandlingAdapter(AppHandlerFunc(workload.History)))
		r.Get("/path", errorHandlingAdapter(AppHandlerFunc(workload.Path)))
		r.Get("/paths/high-load", errorHandlingAdapter(AppHandlerFunc(workload.HighLoadPaths)))
		r.Get("/config", errorHandlingAdapter(AppHandlerFunc(workload.Config)))
		r.Get("/stats/summary", errorHandlingAdapter(AppHandlerFunc(workload.Summary)))

		r.Post("/events", errorHandlingAdapter(AppHandlerFunc(eventsHandler.Ingest)))
		r.Get("/events", errorHandlingAdapter(AppHandlerFunc(eventsHandler.Query)))
		r.Get("/events/stats", errorHandlingAdapter(AppHandlerFunc(eventsHandler.Stats)))
		r.Delete("/events/cleanup", errorHandlingAdapter(AppHandlerFunc(eventsHandler.Cleanup)))
	})
	router.Get("/ws", errorHandlingAdapter(stream))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
