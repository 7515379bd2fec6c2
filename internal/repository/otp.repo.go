package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mishumang/prame/internal/domain"
	"github.com/mishumang/prame/pkg/cache"
	"github.com/mishumang/prame/pkg/xerrors"
)

const otpNamespace = "otp"

// OTPRepo keeps live OTP records in Redis, keyed by phone number. The
// retention TTL outlives the code's own expiry so an expired code is
// still distinguishable from one that never existed; Redis reclaims the
// record once retention lapses.
type OTPRepo struct {
	cache     *cache.Cache
	retention time.Duration
}

func NewOTPRepo(c *cache.Cache, retention time.Duration) *OTPRepo {
	return &OTPRepo{cache: c, retention: retention}
}

// Upsert writes the record for otp.Phone, replacing any prior code.
func (r *OTPRepo) Upsert(ctx context.Context, otp *domain.UserOTP) error {
	data, err := json.Marshal(otp)
	if err != nil {
		return err
	}
	return r.cache.Set(ctx, otpNamespace, otp.Phone, data, r.retention)
}

func (r *OTPRepo) Get(ctx context.Context, phone string) (*domain.UserOTP, error) {
	val, err := r.cache.Get(ctx, otpNamespace, phone)
	if errors.Is(err, redis.Nil) {
		return nil, xerrors.ErrOTPNotFound
	}
	if err != nil {
		return nil, err
	}
	var otp domain.UserOTP
	if err := json.Unmarshal([]byte(val), &otp); err != nil {
		return nil, err
	}
	return &otp, nil
}

func (r *OTPRepo) Delete(ctx context.Context, phone string) error {
	return r.cache.Delete(ctx, otpNamespace, phone)
}
