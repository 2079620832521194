// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-med-reminder/internal/alarm"
	"github.com/MKhiriev/go-med-reminder/internal/logger"
	"github.com/MKhiriev/go-med-reminder/models"
)

// reminderLabelPrefix starts the text of every medicine reminder.
const reminderLabelPrefix = "Time to take: "

// ReminderKey returns the alarm key of the medicine record with the given id.
// Records are keyed by id, so two records with the same name keep separate
// reminders.
func ReminderKey(id int64) string {
	return "medicine-" + strconv.FormatInt(id, 10)
}

// ReminderLabel returns the reminder text for a medicine name.
func ReminderLabel(name string) string {
	return reminderLabelPrefix + name
}

// NextFireAt returns the first instant strictly after now at which the wall
// clock in now's location reads timeOfDay.
func NextFireAt(timeOfDay models.TimeOfDay, now time.Time) (time.Time, error) {
	hour, minute, err := timeOfDay.Clock()
	if err != nil {
		return time.Time{}, err
	}

	y, m, d := now.Date()
	candidate := time.Date(y, m, d, hour, minute, 0, 0, now.Location())
	if !candidate.After(now) {
		candidate = time.Date(y, m, d+1, hour, minute, 0, 0, now.Location())
	}
	return candidate, nil
}

type reminderScheduler struct {
	facility alarm.Facility
	now      func() time.Time
	logger   *logger.Logger
}

// NewReminderScheduler creates a ReminderScheduler on top of an alarm
// facility.
func NewReminderScheduler(facility alarm.Facility, log *logger.Logger) ReminderScheduler {
	return &reminderScheduler{
		facility: facility,
		now:      time.Now,
		logger:   log,
	}
}

func (s *reminderScheduler) Schedule(ctx context.Context, key, label string, timeOfDay models.TimeOfDay) (time.Time, error) {
	log := logger.FromContext(ctx)

	at, err := NextFireAt(timeOfDay, s.now())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if err = s.facility.ScheduleExactWake(key, at, label); err != nil {
		log.Err(err).Str("func", "reminderScheduler.Schedule").Str("key", key).Msg("failed to arm reminder")
		if errors.Is(err, alarm.ErrExactAlarmDenied) {
			return time.Time{}, fmt.Errorf("%w: %w", ErrSchedulingPermission, err)
		}
		return time.Time{}, fmt.Errorf("error arming reminder: %w", err)
	}

	s.logger.Debug().
		Str("func", "reminderScheduler.Schedule").
		Str("key", key).
		Time("fire_at", at).
		Msg("reminder scheduled")

	return at, nil
}

func (s *reminderScheduler) Cancel(key string) bool {
	return s.facility.Cancel(key)
}

func (s *reminderScheduler) Pending(key string) (time.Time, bool) {
	return s.facility.Pending(key)
}
