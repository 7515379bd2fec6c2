package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/mishumang/prame/pkg/response"
	"github.com/mishumang/prame/pkg/utils"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles email-based registration.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		response.Error(w, http.StatusBadRequest, "name, email, and password are required")
		return
	}
	if !utils.ValidateEmail(req.Email) {
		response.Error(w, http.StatusBadRequest, "invalid email format")
		return
	}

	if _, err := h.auth.RegisterEmail(r.Context(), req.Name, req.Email, req.Password); err != nil {
		respondError(w, err)
		return
	}
	response.Success(w, http.StatusCreated, "Registration successful.")
}

type registerPhoneRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// RegisterWithPhone handles phone-based registration. It does not log the
// user in or touch the OTP store; verification is a separate flow.
func (h *UserHandler) RegisterWithPhone(w http.ResponseWriter, r *http.Request) {
	var req registerPhoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Phone == "" || req.Name == "" || req.Password == "" {
		response.Error(w, http.StatusBadRequest, "phone, name, and password are required")
		return
	}
	if !utils.ValidatePhone(req.Phone) {
		response.Error(w, http.StatusBadRequest, "invalid phone number")
		return
	}

	if _, err := h.auth.RegisterPhone(r.Context(), req.Name, req.Phone, req.Password); err != nil {
		respondError(w, err)
		return
	}
	response.Success(w, http.StatusOK, "User registered successfully")
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login looks the user up by email and compares the password hash. On
// success the caller gets the user ID to establish its own session.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		response.Error(w, http.StatusBadRequest, "email and password are required")
		return
	}

	u, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{
		"userId": strconv.FormatInt(u.UserID, 10),
	})
}

type googleSignInRequest struct {
	IDToken     string `json:"idToken"`
	AccessToken string `json:"accessToken"`
}

// GoogleSignIn verifies the identity token and returns the resulting or
// existing user record.
func (h *UserHandler) GoogleSignIn(w http.ResponseWriter, r *http.Request) {
	var req googleSignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.IDToken == "" || req.AccessToken == "" {
		response.Error(w, http.StatusBadRequest, "missing idToken or accessToken")
		return
	}

	u, err := h.auth.GoogleSignIn(r.Context(), req.IDToken)
	if err != nil {
		log.Printf("[ERROR] Google sign-in failed: %v", err)
		response.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}
	response.JSON(w, http.StatusOK, u)
}

func parseUserID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
