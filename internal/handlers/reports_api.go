package handlers

import (
	"net/http"
	"strings"

	"github.com/bobmcallan/vire-reports/internal/common"
	"github.com/bobmcallan/vire-reports/internal/interfaces"
)

// ReportsAPIHandler serves stored reports as JSON.
type ReportsAPIHandler struct {
	logger *common.Logger
	store  interfaces.ReportStore
}

// NewReportsAPIHandler creates a new reports API handler.
func NewReportsAPIHandler(logger *common.Logger, store interfaces.ReportStore) *ReportsAPIHandler {
	return &ReportsAPIHandler{logger: logger, store: store}
}

// HandleList handles GET /api/reports — the whole stored mapping.
func (h *ReportsAPIHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	reports, err := h.store.LoadAll(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, reports)
}

// HandleGet handles GET /api/reports/{id} — a single report by ID.
func (h *ReportsAPIHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	reportID := strings.TrimPrefix(r.URL.Path, "/api/reports/")
	if reportID == "" || strings.Contains(reportID, "/") {
		WriteError(w, http.StatusBadRequest, "invalid report id")
		return
	}

	rpt, err := h.store.Get(r.Context(), reportID)
	if err != nil {
		WriteError(w, http.StatusNotFound, err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, rpt)
}
