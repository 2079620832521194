// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-med-reminder/internal/crypto"
	"github.com/MKhiriev/go-med-reminder/internal/logger"
	"github.com/MKhiriev/go-med-reminder/internal/mock"
	"github.com/MKhiriev/go-med-reminder/internal/store"
	"github.com/MKhiriev/go-med-reminder/internal/validators"
	"github.com/MKhiriev/go-med-reminder/models"
)

// newTestSessionSvc creates a sessionService with mocks
func newTestSessionSvc(t *testing.T, ctrl *gomock.Controller) (*sessionService, *mock.MockUserRepository, *mock.MockPasswordHasher) {
	t.Helper()
	users := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)
	return NewSessionService(users, hasher, logger.Nop()).(*sessionService), users, hasher
}

// ── Validate ─────────────────────────────────────────────────────────────────

func TestSessionService_Validate(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, _, _ := newTestSessionSvc(t, ctrl)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "valid", email: "ann@example.com", password: "secret1"},
		{name: "bad email", email: "ann", password: "secret1", wantErr: validators.ErrInvalidEmailFormat},
		{name: "five chars", email: "ann@example.com", password: "12345", wantErr: validators.ErrPasswordTooShort},
		{name: "six chars", email: "ann@example.com", password: "123456"},
		{name: "both bad reports email", email: "", password: "", wantErr: validators.ErrInvalidEmailFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Validate(tt.email, tt.password)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrValidation)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestSessionService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, users, hasher := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		users.EXPECT().GetUserByEmail(ctx, "ann@example.com").Return(models.User{Email: "ann@example.com", PasswordHash: "$2a$hash"}, nil),
		hasher.EXPECT().Compare("$2a$hash", "secret1").Return(nil),
	)

	require.NoError(t, s.Login(ctx, "ann@example.com", "secret1"))
	assert.True(t, s.IsLoggedIn())
	assert.Equal(t, "ann@example.com", s.CurrentEmail())
}

func TestSessionService_Login_NoFieldLeak(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s, users, _ := newTestSessionSvc(t, ctrl)

		users.EXPECT().GetUserByEmail(gomock.Any(), "ghost@example.com").Return(models.User{}, store.ErrUserNotFound)

		err := s.Login(context.Background(), "ghost@example.com", "secret1")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.False(t, s.IsLoggedIn())
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s, users, hasher := newTestSessionSvc(t, ctrl)

		users.EXPECT().GetUserByEmail(gomock.Any(), "ann@example.com").Return(models.User{Email: "ann@example.com", PasswordHash: "h"}, nil)
		hasher.EXPECT().Compare("h", "wrong-pass").Return(crypto.ErrPasswordMismatch)

		err := s.Login(context.Background(), "ann@example.com", "wrong-pass")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.False(t, s.IsLoggedIn())
	})
}

func TestSessionService_Login_ValidationBeforeLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, _, _ := newTestSessionSvc(t, ctrl)

	// no repository calls expected
	err := s.Login(context.Background(), "not-an-email", "secret1")
	assert.ErrorIs(t, err, validators.ErrInvalidEmailFormat)
}

func TestSessionService_Login_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, users, _ := newTestSessionSvc(t, ctrl)

	users.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, errors.New("db closed"))

	err := s.Login(context.Background(), "ann@example.com", "secret1")
	assert.ErrorIs(t, err, ErrStorage)
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestSessionService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, users, hasher := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		users.EXPECT().GetUserByEmail(ctx, "ann@example.com").Return(models.User{}, store.ErrUserNotFound),
		hasher.EXPECT().Hash("secret1").Return("$2a$hashed", nil),
		users.EXPECT().InsertUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) error {
				assert.Equal(t, "ann@example.com", u.Email)
				assert.Equal(t, "$2a$hashed", u.PasswordHash)
				assert.Equal(t, DefaultDisplayName, u.DisplayName)
				return nil
			},
		),
	)

	require.NoError(t, s.Register(ctx, "ann@example.com", "secret1", "secret1"))
	assert.False(t, s.IsLoggedIn(), "registration must not log in")
}

func TestSessionService_Register_Mismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, _, _ := newTestSessionSvc(t, ctrl)

	err := s.Register(context.Background(), "ann@example.com", "secret1", "secret2")
	assert.ErrorIs(t, err, ErrPasswordMismatch)
}

func TestSessionService_Register_ValidationBeforeMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, _, _ := newTestSessionSvc(t, ctrl)

	err := s.Register(context.Background(), "ann@example.com", "123", "456")
	assert.ErrorIs(t, err, validators.ErrPasswordTooShort)
	assert.NotErrorIs(t, err, ErrPasswordMismatch)
}

func TestSessionService_Register_DuplicateLeavesUserUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, users, _ := newTestSessionSvc(t, ctrl)

	users.EXPECT().GetUserByEmail(gomock.Any(), "ann@example.com").Return(models.User{Email: "ann@example.com"}, nil)
	// neither Hash nor InsertUser may be called

	err := s.Register(context.Background(), "ann@example.com", "secret1", "secret1")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestSessionService_Register_DuplicateOnInsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, users, hasher := newTestSessionSvc(t, ctrl)

	users.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUserNotFound)
	hasher.EXPECT().Hash(gomock.Any()).Return("h", nil)
	users.EXPECT().InsertUser(gomock.Any(), gomock.Any()).Return(store.ErrEmailAlreadyExists)

	err := s.Register(context.Background(), "ann@example.com", "secret1", "secret1")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

// ── ResetPassword ────────────────────────────────────────────────────────────

func TestSessionService_ResetPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, users, hasher := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		users.EXPECT().GetUserByEmail(ctx, "ann@example.com").Return(models.User{Email: "ann@example.com"}, nil),
		hasher.EXPECT().Hash("newpass1").Return("h2", nil),
		users.EXPECT().UpdatePassword(ctx, "ann@example.com", "h2").Return(nil),
	)

	require.NoError(t, s.ResetPassword(ctx, "ann@example.com", "newpass1"))
}

func TestSessionService_ResetPassword_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, users, _ := newTestSessionSvc(t, ctrl)

	users.EXPECT().GetUserByEmail(gomock.Any(), "ghost@example.com").Return(models.User{}, store.ErrUserNotFound)

	err := s.ResetPassword(context.Background(), "ghost@example.com", "newpass1")
	assert.ErrorIs(t, err, ErrEmailNotFound)
}

func TestSessionService_ResetPassword_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, _, _ := newTestSessionSvc(t, ctrl)

	err := s.ResetPassword(context.Background(), "ann@example.com", "short")
	assert.ErrorIs(t, err, validators.ErrPasswordTooShort)
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestSessionService_LogoutRunsHooks(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, _, _ := newTestSessionSvc(t, ctrl)
	s.email = "ann@example.com"

	var calls []string
	s.OnLogout(func() { calls = append(calls, "entry") })
	s.OnLogout(func() { calls = append(calls, "list") })

	s.Logout()

	assert.False(t, s.IsLoggedIn())
	assert.Empty(t, s.CurrentEmail())
	assert.Equal(t, []string{"entry", "list"}, calls)
}
