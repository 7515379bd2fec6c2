package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/mishumang/prame/internal/domain"
	oauth2svc "github.com/mishumang/prame/internal/service/oauth2"
	"github.com/mishumang/prame/pkg/utils"
	"github.com/mishumang/prame/pkg/xerrors"
)

// UserStore is the persisted user record store. Uniqueness of email and
// phone is enforced by the store's own indexes; Create surfaces a
// conflict sentinel on a duplicate.
type UserStore interface {
	Create(ctx context.Context, u *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, userID int64) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID int64, upd domain.ProfileUpdate) (*domain.User, error)
}

// GoogleVerifier validates a third-party ID token and returns its
// verified claims.
type GoogleVerifier func(ctx context.Context, token, clientID string) (*oauth2svc.GoogleUser, error)

type AuthService struct {
	users          UserStore
	ids            IDGenerator
	verifyGoogle   GoogleVerifier
	googleClientID string
}

// IDGenerator issues unique numeric user identifiers.
type IDGenerator interface {
	Generate() int64
}

func NewAuthService(users UserStore, ids IDGenerator, verifyGoogle GoogleVerifier, googleClientID string) *AuthService {
	return &AuthService{
		users:          users,
		ids:            ids,
		verifyGoogle:   verifyGoogle,
		googleClientID: googleClientID,
	}
}

// RegisterEmail creates a user with a hashed password. A duplicate email
// is rejected by the store's unique index.
func (s *AuthService) RegisterEmail(ctx context.Context, name, email, password string) (*domain.User, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &domain.User{
		UserID:       s.ids.Generate(),
		UserName:     name,
		Email:        &email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// RegisterPhone creates a user identified by phone number. Registration
// and OTP verification are independent flows; the caller sequences them.
func (s *AuthService) RegisterPhone(ctx context.Context, name, phone, password string) (*domain.User, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &domain.User{
		UserID:       s.ids.Generate(),
		UserName:     name,
		Phone:        &phone,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if !utils.CheckPasswordHash(password, u.PasswordHash) {
		return nil, xerrors.ErrInvalidCredentials
	}
	return u, nil
}

// GoogleSignIn verifies the ID token and returns the matching user,
// creating one on first sign-in. Third-party-only accounts carry an
// empty password hash and cannot log in with a password.
func (s *AuthService) GoogleSignIn(ctx context.Context, idToken string) (*domain.User, error) {
	gu, err := s.verifyGoogle(ctx, idToken, s.googleClientID)
	if err != nil {
		return nil, err
	}

	u, err := s.users.FindByEmail(ctx, gu.Email)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, xerrors.ErrUserNotFound) {
		return nil, err
	}

	u = &domain.User{
		UserID:    s.ids.Generate(),
		UserName:  gu.Name,
		Email:     &gu.Email,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.users.Create(ctx, u); err != nil {
		// Lost a concurrent first-sign-in race; the store already has the
		// account, so hand back the winner's record.
		if errors.Is(err, xerrors.ErrEmailAlreadyInUse) {
			return s.users.FindByEmail(ctx, gu.Email)
		}
		return nil, err
	}
	log.Printf("[INFO] Created user from Google sign-in | UserID=%d", u.UserID)
	return u, nil
}

func (s *AuthService) GetProfile(ctx context.Context, userID int64) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID int64, upd domain.ProfileUpdate) (*domain.User, error) {
	return s.users.UpdateProfile(ctx, userID, upd)
}
