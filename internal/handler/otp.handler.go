package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mishumang/prame/pkg/response"
)

type sendOTPRequest struct {
	Phone string `json:"phone"`
}

// SendOTP issues a fresh code for the phone and dispatches it by SMS.
func (h *UserHandler) SendOTP(w http.ResponseWriter, r *http.Request) {
	var req sendOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Phone == "" {
		response.Error(w, http.StatusBadRequest, "phone number is required")
		return
	}

	if err := h.otp.SendOTP(r.Context(), req.Phone); err != nil {
		respondError(w, err)
		return
	}
	response.Success(w, http.StatusOK, "OTP sent successfully")
}

type verifyOTPRequest struct {
	Phone string `json:"phone"`
	OTP   string `json:"otp"`
}

// VerifyOTP checks the submitted code. The error message discriminates
// the not-found, expired, and incorrect cases.
func (h *UserHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req verifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Phone == "" || req.OTP == "" {
		response.Error(w, http.StatusBadRequest, "phone and OTP are required")
		return
	}

	if err := h.otp.VerifyOTP(r.Context(), req.Phone, req.OTP); err != nil {
		respondError(w, err)
		return
	}
	response.Success(w, http.StatusOK, "OTP verified")
}
