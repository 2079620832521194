package validators

import (
	"context"
	"regexp"
	"unicode/utf8"

	"github.com/MKhiriev/go-med-reminder/models"
)

// Field name constants for [CredentialsValidator].
const (
	// FieldEmail targets the login email address.
	FieldEmail = "email"

	// FieldPassword targets the plaintext password as typed.
	FieldPassword = "password"
)

// MinPasswordLength is the shortest accepted password, in characters.
const MinPasswordLength = 6

// emailPattern is the conventional mobile-platform address pattern: a local
// part of allowed characters, "@", and a dotted domain. It must match the
// whole input.
var emailPattern = regexp.MustCompile(
	`^[a-zA-Z0-9+._%\-]{1,256}@[a-zA-Z0-9][a-zA-Z0-9\-]{0,64}(\.[a-zA-Z0-9][a-zA-Z0-9\-]{0,25})+$`,
)

// CredentialsValidator checks email/password pairs before any store access.
type CredentialsValidator struct{}

func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

// Validate accepts models.Credentials or *models.Credentials. Email is
// checked before password, so a pair with both problems reports the email.
func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateCredentials(c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !IsEmail(c.Email) {
				return ErrInvalidEmailFormat
			}
		case FieldPassword:
			if utf8.RuneCountInString(c.Password) < MinPasswordLength {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// IsEmail reports whether s is a well-formed email address.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}
