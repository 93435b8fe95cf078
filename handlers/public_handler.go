package handlers

import (
	"net/http"

	"safeindiatransport/models"
	"safeindiatransport/repository"
	"safeindiatransport/workflow"
)

type PublicHandler struct {
	Repo repository.BiltyRepository
}

// publicBiltyView is the unauthenticated tracking payload: enough to render
// the timeline, nothing about parties' contacts or who created the record.
type publicBiltyView struct {
	BiltyNumber   string                `json:"biltyNumber"`
	Origin        string                `json:"origin"`
	Destination   string                `json:"destination"`
	Status        string                `json:"status"`
	TotalAmount   float64               `json:"totalAmount"`
	StatusHistory []models.StatusChange `json:"statusHistory"`
	Timeline      []workflow.Step       `json:"timeline"`
	ConsignorName string                `json:"consignorName,omitempty"`
	ConsigneeName string                `json:"consigneeName,omitempty"`
}

// TrackBilty handles GET /public/bilty/{publicId}. No session required.
func (h *PublicHandler) TrackBilty(w http.ResponseWriter, r *http.Request, publicID string) {
	bilty, err := h.Repo.ResolvePublicLink(r.Context(), publicID)
	if err != nil {
		writeError(w, err)
		return
	}
	if bilty == nil {
		writeJSON(w, http.StatusNotFound, ApiResponse{Success: false, Message: "Bilty not found"})
		return
	}

	view := publicBiltyView{
		BiltyNumber:   bilty.BiltyNumber,
		Origin:        bilty.Origin,
		Destination:   bilty.Destination,
		Status:        bilty.Status,
		TotalAmount:   bilty.TotalAmount,
		StatusHistory: bilty.StatusHistory,
		Timeline:      workflow.Classify(bilty.StatusHistory, bilty.Status),
	}
	if bilty.Consignor != nil {
		view.ConsignorName = bilty.Consignor.Name
	}
	if bilty.Consignee != nil {
		view.ConsigneeName = bilty.Consignee.Name
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: view})
}
