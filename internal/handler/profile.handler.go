package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mishumang/prame/internal/domain"
	"github.com/mishumang/prame/pkg/response"
)

// GetProfile returns the identifier, name, email and creation time for
// the user in the path.
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(chi.URLParam(r, "userId"))
	if !ok {
		response.Error(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	u, err := h.auth.GetProfile(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, u)
}

type updateProfileRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// UpdateProfile applies a partial merge: only the fields present in the
// body are touched.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(chi.URLParam(r, "userId"))
	if !ok {
		response.Error(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.auth.UpdateProfile(r.Context(), userID, domain.ProfileUpdate{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, u)
}
