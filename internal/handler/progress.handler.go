package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mishumang/prame/internal/domain"
	"github.com/mishumang/prame/pkg/response"
)

type updateProgressRequest struct {
	UID          string                        `json:"uid"`
	ProgressData map[string]domain.DayActivity `json:"progressData"`
}

// UpdateProgress merges the submitted date entries into the user's log.
// Dates already present are replaced; the rest of the log is untouched.
func (h *UserHandler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	var req updateProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UID == "" || len(req.ProgressData) == 0 {
		response.Error(w, http.StatusBadRequest, "missing uid or progressData")
		return
	}

	if err := h.progress.Update(r.Context(), req.UID, req.ProgressData); err != nil {
		log.Printf("[ERROR] Progress update failed | UID=%s | Error=%v", req.UID, err)
		response.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}
	response.Success(w, http.StatusOK, "Progress updated successfully.")
}

// GetProgress returns the user's date-keyed mapping; a user with no
// record gets an empty mapping rather than a 404.
func (h *UserHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")
	if uid == "" {
		response.Error(w, http.StatusBadRequest, "missing uid parameter")
		return
	}

	data, err := h.progress.Get(r.Context(), uid)
	if err != nil {
		log.Printf("[ERROR] Progress fetch failed | UID=%s | Error=%v", uid, err)
		response.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	// The mapping is the body itself so a user with no record reads as {}.
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(data)
}
