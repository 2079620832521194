package models

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimeOfDay is returned by [TimeOfDay.Clock] when the value is not
// a valid "HH:MM" wall-clock time.
var ErrInvalidTimeOfDay = errors.New("time of day must be in HH:MM format")

// DefaultTimeOfDay is the time pre-filled in a fresh draft.
const DefaultTimeOfDay TimeOfDay = "08:00"

// TimeOfDay is a wall-clock time in "HH:MM" (24h) format.
type TimeOfDay string

// Clock parses t and returns the hour and minute it denotes.
func (t TimeOfDay) Clock() (hour, minute int, err error) {
	parsed, err := time.Parse("15:04", string(t))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, string(t))
	}
	return parsed.Hour(), parsed.Minute(), nil
}

// Normalize returns t in zero-padded "HH:MM" form, so "8:05" becomes
// "08:05". On error t is returned unchanged.
func (t TimeOfDay) Normalize() (TimeOfDay, error) {
	hour, minute, err := t.Clock()
	if err != nil {
		return t, err
	}
	return TimeOfDay(fmt.Sprintf("%02d:%02d", hour, minute)), nil
}

// On returns the instant at t on the calendar day of day, in day's location.
func (t TimeOfDay) On(day time.Time) (time.Time, error) {
	hour, minute, err := t.Clock()
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := day.Date()
	return time.Date(y, m, d, hour, minute, 0, 0, day.Location()), nil
}

// Medicine is a user's entry describing what to take, how much, how often
// and at what time.
type Medicine struct {
	// ID is assigned by the store on insert; zero means "not persisted yet".
	ID int64 `json:"id"`

	Name      string    `json:"name"`
	Dose      string    `json:"dose"`
	Frequency string    `json:"frequency"`
	TimeOfDay TimeOfDay `json:"time_of_day"`

	// OwnerEmail references [User.Email].
	OwnerEmail string `json:"owner_email"`
}

// TableName returns the name of the database table
// associated with the Medicine model.
func (m Medicine) TableName() string {
	return "medicines"
}

// Persisted reports whether the record has a store-assigned id.
func (m Medicine) Persisted() bool {
	return m.ID > 0
}
