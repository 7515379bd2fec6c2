package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mishumang/prame/internal/domain"
	"github.com/mishumang/prame/pkg/xerrors"
)

// OTPStore is the persisted one-time-code store, keyed by phone number.
type OTPStore interface {
	Upsert(ctx context.Context, otp *domain.UserOTP) error
	Get(ctx context.Context, phone string) (*domain.UserOTP, error)
	Delete(ctx context.Context, phone string) error
}

// SMSDispatcher delivers a text message to a phone number.
type SMSDispatcher interface {
	Send(ctx context.Context, to, body string) error
}

type OTPService struct {
	store OTPStore
	sms   SMSDispatcher
	ttl   time.Duration
	now   func() time.Time
}

func NewOTPService(store OTPStore, sms SMSDispatcher, ttl time.Duration) *OTPService {
	return &OTPService{store: store, sms: sms, ttl: ttl, now: time.Now}
}

// SendOTP issues a fresh code for phone, replacing any prior unconsumed
// one, and dispatches it by SMS. The record is written before dispatch;
// a failed dispatch leaves it in place and the caller simply re-issues.
func (s *OTPService) SendOTP(ctx context.Context, phone string) error {
	otp := &domain.UserOTP{
		Phone:     phone,
		Code:      randomCode(),
		ExpiresAt: s.now().Add(s.ttl),
	}

	if err := s.store.Upsert(ctx, otp); err != nil {
		return err
	}
	log.Printf("[INFO] Stored OTP | Phone=%s | ExpiresIn=%s", phone, s.ttl)

	if err := s.sms.Send(ctx, phone, fmt.Sprintf("Your OTP code is: %s", otp.Code)); err != nil {
		return err
	}
	return nil
}

// VerifyOTP checks the submitted code against the live record. The checks
// run in order and the first failing one wins: missing record, expiry,
// then exact match. A matching code is consumed, so it verifies at most
// once.
func (s *OTPService) VerifyOTP(ctx context.Context, phone, code string) error {
	otp, err := s.store.Get(ctx, phone)
	if err != nil {
		return err
	}
	if !s.now().Before(otp.ExpiresAt) {
		return xerrors.ErrOTPExpired
	}
	if otp.Code != code {
		return xerrors.ErrOTPIncorrect
	}
	if err := s.store.Delete(ctx, phone); err != nil {
		return err
	}
	log.Printf("[INFO] OTP verified | Phone=%s", phone)
	return nil
}
