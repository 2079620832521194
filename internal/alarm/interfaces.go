package alarm

import (
	"errors"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/alarm_mock.go -package=mock

// ErrExactAlarmDenied is returned by [Facility.ScheduleExactWake] when the
// platform does not grant the exact-alarm capability.
var ErrExactAlarmDenied = errors.New("exact alarm permission denied")

// ErrFacilityClosed is returned when scheduling on a closed facility.
var ErrFacilityClosed = errors.New("alarm facility is closed")

// Deliverer receives the payload of a fired alarm.
type Deliverer interface {
	Deliver(payload string)
}

// Facility schedules exact one-shot wake-ups keyed by string.
type Facility interface {
	// ScheduleExactWake replaces any pending alarm under key with one that
	// fires at at and delivers payload.
	ScheduleExactWake(key string, at time.Time, payload string) error
	// Cancel removes the pending alarm under key and reports whether one
	// existed.
	Cancel(key string) bool
	// Pending returns the fire time of the alarm under key.
	Pending(key string) (time.Time, bool)
	// Close cancels every pending alarm.
	Close()
}
