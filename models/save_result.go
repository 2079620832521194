package models

import "time"

// SaveResult is the outcome of saving an entry draft.
type SaveResult struct {
	// Medicine is the stored record with its id.
	Medicine Medicine
	// FireAt is when the reminder fires; zero when ReminderErr is set.
	FireAt time.Time
	// ReminderErr reports a reminder that could not be armed. The record is
	// saved regardless.
	ReminderErr error
}
