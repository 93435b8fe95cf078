package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"safeindiatransport/auth"
	"safeindiatransport/repository"
	"safeindiatransport/utils"
)

type PDFHandler struct {
	Repo     repository.BiltyRepository
	SavePath string
}

// BiltyPDF handles GET /bilty/pdf?id=: renders the printable bilty, saves
// it locally and uploads a copy to R2. Admin only.
func (h *PDFHandler) BiltyPDF(w http.ResponseWriter, r *http.Request) {
	if err := auth.RequireAdmin(auth.SessionFrom(r.Context())); err != nil {
		writeError(w, err)
		return
	}

	biltyID := r.URL.Query().Get("id")
	if biltyID == "" {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "missing bilty id"})
		return
	}

	bilty, err := h.Repo.GetByID(r.Context(), biltyID)
	if err != nil {
		writeError(w, err)
		return
	}
	if bilty == nil {
		writeJSON(w, http.StatusNotFound, ApiResponse{Success: false, Message: "Bilty not found"})
		return
	}

	saveDir := h.SavePath
	if saveDir == "" {
		saveDir = "./pdfs"
	}
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: "failed to create save directory: " + err.Error()})
		return
	}

	pdfBytes, err := utils.GenerateBiltyPDF(r.Context(), bilty)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: "failed to generate PDF: " + err.Error()})
		return
	}

	filename := fmt.Sprintf("bilty_%s_%d.pdf", bilty.BiltyNumber, time.Now().Unix())
	savePath := filepath.Join(saveDir, filename)

	if err := os.WriteFile(savePath, pdfBytes, 0644); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: "failed to save PDF: " + err.Error()})
		return
	}

	// R2 is best-effort: a failed upload still leaves the local file.
	fileURL, err := utils.UploadToR2(pdfBytes, filename)
	if err != nil {
		fmt.Printf("failed to upload PDF for bilty %s: %v\n", biltyID, err)
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: map[string]string{
		"file": filename,
		"url":  fileURL,
	}})
}
