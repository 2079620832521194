package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-med-reminder/internal/crypto"
	"github.com/MKhiriev/go-med-reminder/internal/logger"
	"github.com/MKhiriev/go-med-reminder/internal/store"
	"github.com/MKhiriev/go-med-reminder/internal/validators"
	"github.com/MKhiriev/go-med-reminder/models"
)

// DefaultDisplayName is given to every new account.
const DefaultDisplayName = "User"

type sessionService struct {
	users     store.UserRepository
	hasher    crypto.PasswordHasher
	validator validators.Validator
	logger    *logger.Logger

	mu       sync.Mutex
	email    string
	onLogout []func()
}

// NewSessionService creates a logged-out SessionService.
func NewSessionService(users store.UserRepository, hasher crypto.PasswordHasher, log *logger.Logger) SessionService {
	return &sessionService{
		users:     users,
		hasher:    hasher,
		validator: validators.NewCredentialsValidator(),
		logger:    log,
	}
}

// Validate checks the email format first and then the password length.
func (s *sessionService) Validate(email, password string) error {
	err := s.validator.Validate(context.Background(), models.Credentials{Email: email, Password: password})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}

// Login never tells an unknown email apart from a wrong password.
func (s *sessionService) Login(ctx context.Context, email, password string) error {
	log := logger.FromContext(ctx)

	if err := s.Validate(email, password); err != nil {
		return err
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if errors.Is(err, store.ErrUserNotFound) {
		return ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "sessionService.Login").Msg("failed to look up user")
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}

	if err = s.hasher.Compare(user.PasswordHash, password); err != nil {
		return ErrInvalidCredentials
	}

	s.mu.Lock()
	s.email = user.Email
	s.mu.Unlock()

	s.logger.Info().Str("func", "sessionService.Login").Str("email", user.Email).Msg("user logged in")
	return nil
}

// Register creates an account without logging in. An existing account is
// never modified.
func (s *sessionService) Register(ctx context.Context, email, password, confirm string) error {
	log := logger.FromContext(ctx)

	if err := s.Validate(email, password); err != nil {
		return err
	}
	if password != confirm {
		return ErrPasswordMismatch
	}

	_, err := s.users.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		return ErrDuplicateEmail
	case !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Str("func", "sessionService.Register").Msg("failed to look up user")
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	err = s.users.InsertUser(ctx, models.User{
		Email:        email,
		PasswordHash: hash,
		DisplayName:  DefaultDisplayName,
	})
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		return ErrDuplicateEmail
	}
	if err != nil {
		log.Err(err).Str("func", "sessionService.Register").Msg("failed to insert user")
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}

	s.logger.Info().Str("func", "sessionService.Register").Str("email", email).Msg("user registered")
	return nil
}

func (s *sessionService) ResetPassword(ctx context.Context, email, newPassword string) error {
	log := logger.FromContext(ctx)

	if err := s.Validate(email, newPassword); err != nil {
		return err
	}

	if _, err := s.users.GetUserByEmail(ctx, email); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return ErrEmailNotFound
		}
		log.Err(err).Str("func", "sessionService.ResetPassword").Msg("failed to look up user")
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	if err = s.users.UpdatePassword(ctx, email, hash); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return ErrEmailNotFound
		}
		log.Err(err).Str("func", "sessionService.ResetPassword").Msg("failed to update password")
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}

	return nil
}

func (s *sessionService) Logout() {
	s.mu.Lock()
	email := s.email
	s.email = ""
	hooks := append([]func(){}, s.onLogout...)
	s.mu.Unlock()

	for _, fn := range hooks {
		fn()
	}

	s.logger.Info().Str("func", "sessionService.Logout").Str("email", email).Msg("user logged out")
}

func (s *sessionService) IsLoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.email != ""
}

func (s *sessionService) CurrentEmail() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.email
}

func (s *sessionService) OnLogout(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onLogout = append(s.onLogout, fn)
}
