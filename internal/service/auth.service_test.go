package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mishumang/prame/internal/domain"
	oauth2svc "github.com/mishumang/prame/internal/service/oauth2"
	"github.com/mishumang/prame/pkg/xerrors"
)

// fakeUserStore mimics the store's unique-index rejection: duplicates
// fail at insert, without a prior existence read.
type fakeUserStore struct {
	byID    map[int64]*domain.User
	byEmail map[string]*domain.User
	byPhone map[string]*domain.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		byID:    make(map[int64]*domain.User),
		byEmail: make(map[string]*domain.User),
		byPhone: make(map[string]*domain.User),
	}
}

func (f *fakeUserStore) Create(_ context.Context, u *domain.User) error {
	if u.Email != nil {
		if _, ok := f.byEmail[*u.Email]; ok {
			return xerrors.ErrEmailAlreadyInUse
		}
	}
	if u.Phone != nil {
		if _, ok := f.byPhone[*u.Phone]; ok {
			return xerrors.ErrPhoneAlreadyInUse
		}
	}
	cp := *u
	f.byID[cp.UserID] = &cp
	if cp.Email != nil {
		f.byEmail[*cp.Email] = &cp
	}
	if cp.Phone != nil {
		f.byPhone[*cp.Phone] = &cp
	}
	return nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, xerrors.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserStore) FindByID(_ context.Context, userID int64) (*domain.User, error) {
	u, ok := f.byID[userID]
	if !ok {
		return nil, xerrors.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserStore) UpdateProfile(_ context.Context, userID int64, upd domain.ProfileUpdate) (*domain.User, error) {
	u, ok := f.byID[userID]
	if !ok {
		return nil, xerrors.ErrUserNotFound
	}
	if upd.Name != nil {
		u.UserName = *upd.Name
	}
	if upd.Email != nil {
		e := *upd.Email
		u.Email = &e
	}
	if upd.Phone != nil {
		p := *upd.Phone
		u.Phone = &p
	}
	cp := *u
	return &cp, nil
}

type seqIDs struct{ next int64 }

func (s *seqIDs) Generate() int64 {
	s.next++
	return s.next
}

func staticGoogleUser(email, name string) GoogleVerifier {
	return func(_ context.Context, _, _ string) (*oauth2svc.GoogleUser, error) {
		return &oauth2svc.GoogleUser{Email: email, Name: name, Sub: "google-sub"}, nil
	}
}

func newTestAuthService(store *fakeUserStore, verify GoogleVerifier) *AuthService {
	return NewAuthService(store, &seqIDs{}, verify, "client-id")
}

func TestRegisterEmail_RejectsDuplicate(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(store, nil)

	u, err := svc.RegisterEmail(context.Background(), "Asha", "asha@example.com", "secret123")
	require.NoError(t, err)
	assert.NotZero(t, u.UserID)
	assert.NotEqual(t, "secret123", u.PasswordHash, "password must never be stored in plaintext")

	_, err = svc.RegisterEmail(context.Background(), "Asha Again", "asha@example.com", "other456")
	assert.ErrorIs(t, err, xerrors.ErrEmailAlreadyInUse)
	assert.Len(t, store.byID, 1, "rejected registration must not write a record")
}

func TestRegisterPhone_RejectsDuplicate(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(store, nil)

	_, err := svc.RegisterPhone(context.Background(), "Ben", "+15550100", "secret123")
	require.NoError(t, err)

	_, err = svc.RegisterPhone(context.Background(), "Ben Again", "+15550100", "other456")
	assert.ErrorIs(t, err, xerrors.ErrPhoneAlreadyInUse)
	assert.Len(t, store.byID, 1)
}

func TestLogin(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(store, nil)

	reg, err := svc.RegisterEmail(context.Background(), "Asha", "asha@example.com", "secret123")
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		u, err := svc.Login(context.Background(), "asha@example.com", "secret123")
		require.NoError(t, err)
		assert.Equal(t, reg.UserID, u.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "asha@example.com", "wrongpass")
		assert.ErrorIs(t, err, xerrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "nobody@example.com", "secret123")
		assert.ErrorIs(t, err, xerrors.ErrUserNotFound)
	})
}

func TestLogin_GoogleOnlyAccountHasNoPassword(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(store, staticGoogleUser("gia@example.com", "Gia"))

	_, err := svc.GoogleSignIn(context.Background(), "id-token")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "gia@example.com", "")
	assert.ErrorIs(t, err, xerrors.ErrInvalidCredentials)
}

func TestGoogleSignIn_CreatesThenReuses(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(store, staticGoogleUser("gia@example.com", "Gia"))

	first, err := svc.GoogleSignIn(context.Background(), "id-token")
	require.NoError(t, err)
	assert.Equal(t, "Gia", first.UserName)
	assert.Empty(t, first.PasswordHash)

	second, err := svc.GoogleSignIn(context.Background(), "id-token")
	require.NoError(t, err)
	assert.Equal(t, first.UserID, second.UserID)
	assert.Len(t, store.byID, 1)
}

func TestGoogleSignIn_VerificationFailure(t *testing.T) {
	verifyErr := errors.New("audience mismatch")
	svc := newTestAuthService(newFakeUserStore(), func(_ context.Context, _, _ string) (*oauth2svc.GoogleUser, error) {
		return nil, verifyErr
	})

	_, err := svc.GoogleSignIn(context.Background(), "bad-token")
	assert.ErrorIs(t, err, verifyErr)
}

func TestUpdateProfile_PartialMerge(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(store, nil)

	reg, err := svc.RegisterEmail(context.Background(), "Asha", "asha@example.com", "secret123")
	require.NoError(t, err)

	name := "Asha K"
	u, err := svc.UpdateProfile(context.Background(), reg.UserID, domain.ProfileUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Asha K", u.UserName)
	require.NotNil(t, u.Email)
	assert.Equal(t, "asha@example.com", *u.Email, "absent fields stay untouched")

	_, err = svc.UpdateProfile(context.Background(), 99999, domain.ProfileUpdate{Name: &name})
	assert.ErrorIs(t, err, xerrors.ErrUserNotFound)
}
