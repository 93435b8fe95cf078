package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"safeindiatransport/auth"
	"safeindiatransport/models"
	"safeindiatransport/query"
	"safeindiatransport/repository"
)

type BiltyHandler struct {
	Repo          repository.BiltyRepository
	PublicBaseURL string
}

// CreateBilty handles POST /bilty. Admin only.
func (h *BiltyHandler) CreateBilty(w http.ResponseWriter, r *http.Request) {
	sess := auth.SessionFrom(r.Context())
	if err := auth.RequireAdmin(sess); err != nil {
		writeError(w, err)
		return
	}

	var input models.NewBiltyInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Invalid request payload: " + err.Error()})
		return
	}
	input.CreatedBy = sess.UserID

	bilty, err := h.Repo.Create(r.Context(), &input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, ApiResponse{Success: true, Data: bilty})
}

// GetAllBilty handles GET /bilty. Admins see everything; customers only the
// bilties consigned to their own party. The status/recent/search query
// params run the same filter engine the mobile list screens used.
func (h *BiltyHandler) GetAllBilty(w http.ResponseWriter, r *http.Request) {
	sess := auth.SessionFrom(r.Context())
	if sess == nil {
		writeError(w, auth.ErrInvalidToken)
		return
	}

	var list []*models.Bilty
	var err error
	if sess.IsAdmin() {
		list, err = h.Repo.List(r.Context())
	} else {
		if sess.PartyID == "" {
			writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: []*models.Bilty{}})
			return
		}
		list, err = h.Repo.ListByConsignee(r.Context(), sess.PartyID)
	}
	if err != nil {
		writeError(w, err)
		return
	}

	q := r.URL.Query()
	criteria := query.Criteria{
		Status: q.Get("status"),
		Recent: query.Window(q.Get("recent")),
		Search: q.Get("search"),
	}
	list = query.Apply(time.Now().UnixMilli(), list, criteria)
	if list == nil {
		list = []*models.Bilty{}
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: list})
}

// GetBiltyByID handles GET /bilty/{id}.
func (h *BiltyHandler) GetBiltyByID(w http.ResponseWriter, r *http.Request, id string) {
	sess := auth.SessionFrom(r.Context())
	if sess == nil {
		writeError(w, auth.ErrInvalidToken)
		return
	}

	bilty, err := h.Repo.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if bilty == nil {
		writeJSON(w, http.StatusNotFound, ApiResponse{Success: false, Message: "Bilty not found"})
		return
	}
	if !sess.IsAdmin() && bilty.ConsigneeID != sess.PartyID {
		writeError(w, auth.ErrForbidden)
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: bilty})
}

// UpdateBilty handles PUT /bilty/{id}: a full field replacement. Admin only.
func (h *BiltyHandler) UpdateBilty(w http.ResponseWriter, r *http.Request, id string) {
	if err := auth.RequireAdmin(auth.SessionFrom(r.Context())); err != nil {
		writeError(w, err)
		return
	}

	var fields models.EditableBiltyFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Invalid request payload: " + err.Error()})
		return
	}

	bilty, err := h.Repo.Update(r.Context(), id, &fields)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: bilty})
}

// UpdateStatus handles POST /bilty/{id}/status. Admin only.
func (h *BiltyHandler) UpdateStatus(w http.ResponseWriter, r *http.Request, id string) {
	if err := auth.RequireAdmin(auth.SessionFrom(r.Context())); err != nil {
		writeError(w, err)
		return
	}

	var body struct {
		Status   string  `json:"status"`
		Note     *string `json:"note,omitempty"`
		Location *string `json:"location,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Invalid request payload: " + err.Error()})
		return
	}

	bilty, err := h.Repo.UpdateStatus(r.Context(), id, body.Status, body.Note, body.Location)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: bilty})
}

// ShareBilty handles POST /bilty/{id}/share: creates (or reuses) the public
// tracking link for a bilty. Admin only.
func (h *BiltyHandler) ShareBilty(w http.ResponseWriter, r *http.Request, id string) {
	if err := auth.RequireAdmin(auth.SessionFrom(r.Context())); err != nil {
		writeError(w, err)
		return
	}

	link, err := h.Repo.EnsurePublicLink(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: map[string]string{
		"publicId": link.PublicID,
		"url":      h.PublicBaseURL + "/public/bilty/" + link.PublicID,
	}})
}

// DeleteBilty handles DELETE /bilty?id=. Hard delete, admin only,
// irreversible.
func (h *BiltyHandler) DeleteBilty(w http.ResponseWriter, r *http.Request) {
	if err := auth.RequireAdmin(auth.SessionFrom(r.Context())); err != nil {
		writeError(w, err)
		return
	}

	biltyID := r.URL.Query().Get("id")
	if biltyID == "" {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "missing bilty id"})
		return
	}

	if err := h.Repo.Delete(r.Context(), biltyID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Bilty deleted successfully"})
}
