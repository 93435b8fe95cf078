package handlers

import (
	"encoding/json"
	"net/http"

	"safeindiatransport/auth"
	"safeindiatransport/models"
	"safeindiatransport/repository"
)

type PartyHandler struct {
	Repo      repository.PartyRepository
	BiltyRepo repository.BiltyRepository
}

// CreateParty handles POST /party. Admin only.
func (h *PartyHandler) CreateParty(w http.ResponseWriter, r *http.Request) {
	if err := auth.RequireAdmin(auth.SessionFrom(r.Context())); err != nil {
		writeError(w, err)
		return
	}

	var party models.Party
	if err := json.NewDecoder(r.Body).Decode(&party); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Invalid request payload: " + err.Error()})
		return
	}

	if err := h.Repo.Create(r.Context(), &party); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, ApiResponse{Success: true, Data: party})
}

// GetAllParties handles GET /party. Pass all=true to include deactivated
// parties.
func (h *PartyHandler) GetAllParties(w http.ResponseWriter, r *http.Request) {
	sess := auth.SessionFrom(r.Context())
	if sess == nil {
		writeError(w, auth.ErrInvalidToken)
		return
	}

	onlyActive := r.URL.Query().Get("all") != "true"
	list, err := h.Repo.List(r.Context(), onlyActive)
	if err != nil {
		writeError(w, err)
		return
	}
	if list == nil {
		list = []*models.Party{}
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: list})
}

// GetPartyByID handles GET /party/{id}.
func (h *PartyHandler) GetPartyByID(w http.ResponseWriter, r *http.Request, id string) {
	sess := auth.SessionFrom(r.Context())
	if sess == nil {
		writeError(w, auth.ErrInvalidToken)
		return
	}

	party, err := h.Repo.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if party == nil {
		writeJSON(w, http.StatusNotFound, ApiResponse{Success: false, Message: "Party not found"})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: party})
}

// UpdateParty handles PUT /party/{id}. Admin only.
func (h *PartyHandler) UpdateParty(w http.ResponseWriter, r *http.Request, id string) {
	if err := auth.RequireAdmin(auth.SessionFrom(r.Context())); err != nil {
		writeError(w, err)
		return
	}

	var party models.Party
	if err := json.NewDecoder(r.Body).Decode(&party); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Invalid request payload: " + err.Error()})
		return
	}

	updated, err := h.Repo.Update(r.Context(), id, &party)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: updated})
}

// DeleteParty handles DELETE /party/{id}. Soft delete only: the party is
// deactivated so historical bilties keep resolving. Admin only.
func (h *PartyHandler) DeleteParty(w http.ResponseWriter, r *http.Request, id string) {
	if err := auth.RequireAdmin(auth.SessionFrom(r.Context())); err != nil {
		writeError(w, err)
		return
	}

	if err := h.Repo.Deactivate(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Party deactivated"})
}

// GetPartyBilties handles GET /party/{id}/bilties: the consignee-scoped
// list backing the customer screens. Customers may only query their own
// party.
func (h *PartyHandler) GetPartyBilties(w http.ResponseWriter, r *http.Request, id string) {
	sess := auth.SessionFrom(r.Context())
	if sess == nil {
		writeError(w, auth.ErrInvalidToken)
		return
	}
	if !sess.IsAdmin() && sess.PartyID != id {
		writeError(w, auth.ErrForbidden)
		return
	}

	list, err := h.BiltyRepo.ListByConsignee(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if list == nil {
		list = []*models.Bilty{}
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: list})
}
