package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/mishumang/prame/internal/service"
	"github.com/mishumang/prame/pkg/response"
	"github.com/mishumang/prame/pkg/xerrors"
)

type UserHandler struct {
	auth      *service.AuthService
	otp       *service.OTPService
	progress  *service.ProgressService
	uploadDir string
}

func NewUserHandler(auth *service.AuthService, otp *service.OTPService, progress *service.ProgressService, uploadDir string) *UserHandler {
	return &UserHandler{auth: auth, otp: otp, progress: progress, uploadDir: uploadDir}
}

func (h *UserHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "ok")
}

// respondError maps service errors onto the status-code taxonomy:
// 400 validation/conflict, 401 credential mismatch, 404 not found and a
// generic 500 for anything else, with the detail logged but not exposed.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, xerrors.ErrUserNotFound):
		response.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, xerrors.ErrInvalidCredentials):
		response.Error(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, xerrors.ErrUserAlreadyExists),
		errors.Is(err, xerrors.ErrEmailAlreadyInUse),
		errors.Is(err, xerrors.ErrPhoneAlreadyInUse),
		errors.Is(err, xerrors.ErrOTPNotFound),
		errors.Is(err, xerrors.ErrOTPExpired),
		errors.Is(err, xerrors.ErrOTPIncorrect),
		errors.Is(err, xerrors.ErrInvalidRequest):
		response.Error(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("[ERROR] Unexpected error: %v", err)
		response.Error(w, http.StatusInternalServerError, "internal server error")
	}
}
