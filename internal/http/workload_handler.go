package http

import (
	"net/http"
	"strings"

	"san-monitor/internal/aggregators"
	"san-monitor/internal/models"
)

const (
	serviceName    = "SAN I/O Workload Monitor"
	serviceVersion = "1.0.0"

	defaultHistoryLimit = 100
	maxHistoryLimit     = 1000
	summaryWindowLimit  = 100
)

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

type historyResponse struct {
	History []models.TimeWindowSnapshot `json:"history"`
	Count   int                         `json:"count"`
}

type highLoadPathsResponse struct {
	HighLoadPaths []models.HighLoadPath `json:"highLoadPaths"`
	Count         int                   `json:"count"`
}

type configResponse struct {
	Locations             []string          `json:"locations"`
	WindowSeconds         float64           `json:"windowSeconds"`
	Thresholds            models.Thresholds `json:"thresholds"`
	EnableVolumeDetection bool              `json:"enableVolumeDetection"`
}

// workloadHandler serves the read-only monitoring views.
type workloadHandler struct {
	queryService aggregators.WorkloadQueryService
	settings     models.MonitorSettings
}

func newWorkloadHandler(queryService aggregators.WorkloadQueryService, settings models.MonitorSettings) *workloadHandler {
	return &workloadHandler{queryService: queryService, settings: settings}
}

// Health handles GET /.
func (h *workloadHandler) Health(w http.ResponseWriter, r *http.Request) error {
	writeJSON(w, r, http.StatusOK, healthResponse{Status: "running", Service: serviceName, Version: serviceVersion})
	return nil
}

// Current handles GET /api/workload.
func (h *workloadHandler) Current(w http.ResponseWriter, r *http.Request) error {
	writeJSON(w, r, http.StatusOK, h.queryService.CurrentWorkload())
	return nil
}

// History handles GET /api/workload/history?limit=.
func (h *workloadHandler) History(w http.ResponseWriter, r *http.Request) error {
	limit, err := intQueryParam(r, "limit", defaultHistoryLimit, 1, maxHistoryLimit)
	if err != nil {
		return errInvalidQueryArgument(err.Error(), err)
	}

	history := h.queryService.WindowHistory(limit)
	writeJSON(w, r, http.StatusOK, historyResponse{History: history, Count: len(history)})
	return nil
}

// Path handles GET /api/path?path=.
func (h *workloadHandler) Path(w http.ResponseWriter, r *http.Request) error {
	path := strings.TrimSpace(r.URL.Query().Get("path"))
	if path == "" {
		return errInvalidQueryArgument("path is required", nil)
	}

	stats, err := h.queryService.PathStatistics(path)
	if err != nil {
		return err
	}
	writeJSON(w, r, http.StatusOK, stats)
	return nil
}

// HighLoadPaths handles GET /api/paths/high-load.
func (h *workloadHandler) HighLoadPaths(w http.ResponseWriter, r *http.Request) error {
	paths := h.queryService.CurrentWorkload().HighLoadPaths
	writeJSON(w, r, http.StatusOK, highLoadPathsResponse{HighLoadPaths: paths, Count: len(paths)})
	return nil
}

// Config handles GET /api/config.
func (h *workloadHandler) Config(w http.ResponseWriter, r *http.Request) error {
	locations := h.settings.Locations
	if locations == nil {
		locations = []string{}
	}
	writeJSON(w, r, http.StatusOK, configResponse{
		Locations:             locations,
		WindowSeconds:         h.settings.WindowDuration.Seconds(),
		Thresholds:            h.settings.Thresholds,
		EnableVolumeDetection: h.settings.EnableVolumeDetection,
	})
	return nil
}

// Summary handles GET /api/stats/summary.
func (h *workloadHandler) Summary(w http.ResponseWriter, r *http.Request) error {
	writeJSON(w, r, http.StatusOK, h.queryService.Summary(summaryWindowLimit))
	return nil
}
