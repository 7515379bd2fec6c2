package xerrors

import (
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
)

// Generic
var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrInternalServer = errors.New("internal server error")
	ErrNotFound       = errors.New("not found")
)

// Registration / Login
var (
	ErrUserAlreadyExists  = errors.New("user already registered")
	ErrEmailAlreadyInUse  = errors.New("user already registered with this email")
	ErrPhoneAlreadyInUse  = errors.New("user already registered with this phone number")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// OTP verification
var (
	ErrOTPNotFound  = errors.New("OTP not found")
	ErrOTPExpired   = errors.New("OTP has expired")
	ErrOTPIncorrect = errors.New("incorrect OTP")
)

// IsDuplicateKey reports whether err is a store-level unique index
// violation.
func IsDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

// DuplicateKeyError maps a unique index violation to the matching
// conflict sentinel, inspecting the offending index name.
func DuplicateKeyError(err error) error {
	if !mongo.IsDuplicateKeyError(err) {
		return err
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "email"):
		return ErrEmailAlreadyInUse
	case strings.Contains(msg, "phone"):
		return ErrPhoneAlreadyInUse
	default:
		return ErrUserAlreadyExists
	}
}
