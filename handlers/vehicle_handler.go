package handlers

import (
	"encoding/json"
	"net/http"

	"safeindiatransport/auth"
	"safeindiatransport/models"
	"safeindiatransport/repository"
)

type VehicleHandler struct {
	Repo repository.VehicleRepository
}

// CreateVehicle handles POST /vehicle. Admin only.
func (h *VehicleHandler) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	if err := auth.RequireAdmin(auth.SessionFrom(r.Context())); err != nil {
		writeError(w, err)
		return
	}

	var vehicle models.Vehicle
	if err := json.NewDecoder(r.Body).Decode(&vehicle); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Invalid request payload: " + err.Error()})
		return
	}

	if err := h.Repo.Create(r.Context(), &vehicle); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, ApiResponse{Success: true, Data: vehicle})
}

// GetAllVehicles handles GET /vehicle. Pass all=true to include retired
// vehicles.
func (h *VehicleHandler) GetAllVehicles(w http.ResponseWriter, r *http.Request) {
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
		list = []*models.Vehicle{}
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: list})
}

// GetVehicleByID handles GET /vehicle/{id}.
func (h *VehicleHandler) GetVehicleByID(w http.ResponseWriter, r *http.Request, id string) {
	sess := auth.SessionFrom(r.Context())
	if sess == nil {
		writeError(w, auth.ErrInvalidToken)
		return
	}

	vehicle, err := h.Repo.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if vehicle == nil {
		writeJSON(w, http.StatusNotFound, ApiResponse{Success: false, Message: "Vehicle not found"})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: vehicle})
}
