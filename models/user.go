package models

import "time"

// User is the owner of medicine records. Email is the primary key.
type User struct {
	// Email is the unique login identifier and the owner key of every
	// medicine record.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It must never hold plaintext.
	PasswordHash string `json:"-"`

	// DisplayName is the human-readable name shown in the UI.
	DisplayName string `json:"display_name"`

	// CreatedAt is the registration timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is an email/password pair as typed by the user.
type Credentials struct {
	Email    string
	Password string
}
