package handler

import (
	"net/http"

	"github.com/geosense/geosense/internal/api/response"
	"github.com/geosense/geosense/internal/report"
)

// ReportHandler handles the eco report endpoint.
type ReportHandler struct {
	reports *report.Service
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reports *report.Service) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// GetEcoReport handles GET /v1/eco-report?city=&range=.
// Unknown city and range values resolve to defaults; only a live air
// quality failure produces an error response.
func (h *ReportHandler) GetEcoReport(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	rep, err := h.reports.Build(r.Context(), report.Request{
		City:  query.Get("city"),
		Range: query.Get("range"),
	})
	if err != nil {
		response.ServiceUnavailable(w, r, "live air quality data is unavailable")
		return
	}

	response.JSON(w, r, http.StatusOK, rep)
}
