package tui

import (
	"time"

	"github.com/MKhiriev/go-med-reminder/models"
)

// NavigateTo asks [RootModel] to switch pages. A non-nil Payload is delivered
// to the new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload any
}

// LoginResult is produced by the login command.
type LoginResult struct {
	Email string
	Err   error
}

// RegisterResult is produced by the registration command.
type RegisterResult struct {
	Email string
	Err   error
}

// ResetResult is produced by the reset-password command.
type ResetResult struct {
	Email string
	Err   error
}

// NoticeMsg is shown as a status line by the menu page.
type NoticeMsg struct {
	Text string
}

type viewsMsg []models.Medicine

type viewsClosedMsg struct{}

type notificationMsg models.Notification

type notificationsClosedMsg struct{}

type clearBannerMsg struct {
	id string
}

type tickMsg time.Time

type loadedMsg struct {
	err error
}

type savedMsg struct {
	result models.SaveResult
	err    error
}

type deletedMsg struct {
	name string
	err  error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
