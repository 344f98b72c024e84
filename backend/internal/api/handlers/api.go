package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ps-vitor/setam-sys/backend/internal/api/models"
	"github.com/ps-vitor/setam-sys/backend/internal/repositories"
	"github.com/ps-vitor/setam-sys/backend/internal/services/record"
)

type APIHandler struct {
	recordService *record.RecordService
}

func NewAPIHandler(recordService *record.RecordService) *APIHandler {
	return &APIHandler{recordService: recordService}
}

// RegisterRoutes mounts the read-only endpoints.
func (h *APIHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/api/records", h.handleRecords).Methods(http.MethodGet)
}

func (h *APIHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *APIHandler) handleRecords(w http.ResponseWriter, r *http.Request) {
	sheet, err := h.recordService.FindAll(r.Context())
	if errors.Is(err, repositories.ErrNoRecords) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, models.RecordsResponse{Header: sheet.Header, Rows: sheet.Rows})
}
