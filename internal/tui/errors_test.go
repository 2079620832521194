package tui

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-med-reminder/internal/app"
	"github.com/MKhiriev/go-med-reminder/internal/service"
	"github.com/MKhiriev/go-med-reminder/internal/validators"
	"github.com/MKhiriev/go-med-reminder/models"
)

func TestUserMessage(t *testing.T) {
	wrap := func(err error) error { return fmt.Errorf("%w: %w", service.ErrValidation, err) }

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "email format", err: wrap(validators.ErrInvalidEmailFormat), want: app.MsgInvalidEmailFormat},
		{name: "short password", err: wrap(validators.ErrPasswordTooShort), want: app.MsgPasswordTooShort},
		{name: "credentials", err: service.ErrInvalidCredentials, want: app.MsgInvalidCredentials},
		{name: "mismatch", err: service.ErrPasswordMismatch, want: app.MsgPasswordMismatch},
		{name: "duplicate", err: service.ErrDuplicateEmail, want: app.MsgDuplicateEmail},
		{name: "email not found", err: service.ErrEmailNotFound, want: app.MsgEmailNotFound},
		{name: "blank name", err: wrap(validators.ErrEmptyName), want: app.MsgFillAllFields},
		{name: "blank time", err: wrap(validators.ErrEmptyTimeOfDay), want: app.MsgFillAllFields},
		{name: "bad time", err: wrap(validators.ErrInvalidTimeOfDay), want: app.MsgInvalidTimeOfDay},
		{name: "permission", err: service.ErrSchedulingPermission, want: app.MsgSchedulingPermission},
		{name: "storage", err: fmt.Errorf("%w: disk full", service.ErrStorage), want: app.MsgSaveFailed},
		{name: "other", err: errors.New("boom"), want: app.MsgUnexpectedError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, userMessage(tt.err))
		})
	}
}

func TestSaveStatus(t *testing.T) {
	fireAt := time.Date(2026, 10, 16, 21, 0, 0, 0, time.Local)

	assert.Equal(t, fmt.Sprintf(app.MsgSaved, "Fri 21:00"), saveStatus(models.SaveResult{FireAt: fireAt}))
	assert.Equal(t, app.MsgSchedulingPermission, saveStatus(models.SaveResult{ReminderErr: service.ErrSchedulingPermission}))
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "Aspirin", fitText("Aspirin", 10))
	assert.Equal(t, "Vitamin...", fitText("Vitamin C 1000", 10))
	assert.Equal(t, "Vi", fitText("Vitamin", 2))
	assert.Equal(t, "Ибупр...", fitText("Ибупрофен", 8))
}
