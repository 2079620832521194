package service

import "errors"

var (
	// ErrValidation wraps the field-level validator error of rejected input.
	ErrValidation = errors.New("validation failed")

	// ErrStorage wraps record store failures.
	ErrStorage = errors.New("storage failure")

	// ErrSchedulingPermission is reported when the reminder could not be
	// armed because exact alarms are not permitted.
	ErrSchedulingPermission = errors.New("exact alarm scheduling is not permitted")

	ErrNotLoggedIn = errors.New("no user is logged in")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPasswordMismatch   = errors.New("password confirmation does not match")
	ErrDuplicateEmail     = errors.New("email is already registered")
	ErrEmailNotFound      = errors.New("email not found")
)
