// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Notification is the user-visible message produced when a reminder fires.
type Notification struct {
	// ID uniquely identifies the delivered notification.
	ID string `json:"id"`

	// Channel is the fixed delivery channel of medicine reminders.
	Channel string `json:"channel"`

	// Title is the fixed notification title.
	Title string `json:"title"`

	// Body is the alarm payload, e.g. "Time to take: Vitamin C".
	Body string `json:"body"`

	// DeliveredAt is the moment the alarm fired.
	DeliveredAt time.Time `json:"delivered_at"`
}
