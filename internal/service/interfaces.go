package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-med-reminder/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ReminderScheduler arms one daily-time reminder per medicine record.
type ReminderScheduler interface {
	// Schedule replaces any pending reminder under key with one that fires
	// at the next occurrence of timeOfDay and shows label. It returns the
	// fire time. A denied exact-alarm capability yields
	// [ErrSchedulingPermission]; an unparsable time yields [ErrValidation].
	Schedule(ctx context.Context, key, label string, timeOfDay models.TimeOfDay) (time.Time, error)

	// Cancel removes the pending reminder under key, reporting whether one
	// existed.
	Cancel(key string) bool

	// Pending returns the fire time of the reminder under key.
	Pending(key string) (time.Time, bool)
}

// EntryService holds the create/edit form of one medicine record.
type EntryService interface {
	Draft() models.Draft
	SetName(name string)
	SetDose(dose string)
	SetFrequency(frequency string)
	SetTimeOfDay(timeOfDay models.TimeOfDay)

	// EditingID returns the id of the loaded record, or 0 when creating.
	EditingID() int64

	// LoadIfEditing fills the draft from record id once. It does nothing for
	// id <= 0 or when a record is already loaded.
	LoadIfEditing(ctx context.Context, id int64) error

	// Save validates the draft, inserts or updates it for ownerEmail and then
	// schedules its reminder. On success the form is reset.
	Save(ctx context.Context, ownerEmail string) (models.SaveResult, error)

	// Reset clears the draft and the loaded id.
	Reset()
}

// ListService keeps the live, filtered listing of one owner's records.
type ListService interface {
	// Observe subscribes to ownerEmail's records, replacing any previous
	// subscription.
	Observe(ctx context.Context, ownerEmail string) error
	SetFilter(text string)
	Filter() string

	// View returns the current filtered listing.
	View() []models.Medicine

	// Views yields every new view. Unread views are replaced by newer ones.
	Views() <-chan []models.Medicine

	// Delete removes m from the store and cancels its reminder.
	Delete(ctx context.Context, m models.Medicine) error

	// DueToday counts records whose time of day has not passed yet on the
	// day of now.
	DueToday(now time.Time) int

	// Close ends the subscription and clears the listing.
	Close()
}

// SessionService tracks who is logged in.
type SessionService interface {
	Validate(email, password string) error
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, email, password, confirm string) error
	ResetPassword(ctx context.Context, email, newPassword string) error
	Logout()
	IsLoggedIn() bool
	CurrentEmail() string

	// OnLogout registers fn to run after every logout.
	OnLogout(fn func())
}

// RearmJob periodically re-arms reminders of the logged-in user.
type RearmJob interface {
	Run(ctx context.Context)
	// Kick requests an immediate pass.
	Kick()
}
