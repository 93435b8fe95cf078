package handlers

import (
	"net/http"
	"time"

	"safeindiatransport/auth"
	"safeindiatransport/query"
	"safeindiatransport/repository"
)

type DashboardHandler struct {
	BiltyRepo repository.BiltyRepository
	PartyRepo repository.PartyRepository
}

// GetSummary handles GET /dashboard. Admin only: the overview exposes
// every bilty in the system.
func (h *DashboardHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	if err := auth.RequireAdmin(auth.SessionFrom(r.Context())); err != nil {
		writeError(w, err)
		return
	}

	bilties, err := h.BiltyRepo.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	customers, err := h.PartyRepo.ListCustomers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	summary := query.Summarize(time.Now().UnixMilli(), bilties, customers)
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: summary})
}
