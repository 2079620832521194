// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-med-reminder/internal/app"
	"github.com/MKhiriev/go-med-reminder/internal/service"
	"github.com/MKhiriev/go-med-reminder/internal/validators"
	"github.com/MKhiriev/go-med-reminder/models"
)

// ErrUserQuit is returned by the login flow when the user closes the program.
var ErrUserQuit = errors.New("user quit the program")

// userMessage maps a coordinator error to the text shown on screen.
func userMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, validators.ErrInvalidEmailFormat):
		return app.MsgInvalidEmailFormat
	case errors.Is(err, validators.ErrPasswordTooShort):
		return app.MsgPasswordTooShort
	case errors.Is(err, service.ErrInvalidCredentials):
		return app.MsgInvalidCredentials
	case errors.Is(err, service.ErrPasswordMismatch):
		return app.MsgPasswordMismatch
	case errors.Is(err, service.ErrDuplicateEmail):
		return app.MsgDuplicateEmail
	case errors.Is(err, service.ErrEmailNotFound):
		return app.MsgEmailNotFound
	case errors.Is(err, validators.ErrEmptyName),
		errors.Is(err, validators.ErrEmptyDose),
		errors.Is(err, validators.ErrEmptyFrequency),
		errors.Is(err, validators.ErrEmptyTimeOfDay):
		return app.MsgFillAllFields
	case errors.Is(err, validators.ErrInvalidTimeOfDay),
		errors.Is(err, models.ErrInvalidTimeOfDay):
		return app.MsgInvalidTimeOfDay
	case errors.Is(err, service.ErrSchedulingPermission):
		return app.MsgSchedulingPermission
	case errors.Is(err, service.ErrStorage):
		return app.MsgSaveFailed
	default:
		return app.MsgUnexpectedError
	}
}

// saveStatus describes a successful save, including a reminder that could
// not be armed.
func saveStatus(res models.SaveResult) string {
	if res.ReminderErr != nil {
		return userMessage(res.ReminderErr)
	}
	return fmt.Sprintf(app.MsgSaved, res.FireAt.Format("Mon 15:04"))
}
