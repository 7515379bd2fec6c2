package domain

import "time"

// UserOTP is the live verification record for a phone number. At most one
// exists per phone; issuing a new code replaces it.
type UserOTP struct {
	Phone     string    `json:"phone"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}
