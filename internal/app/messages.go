// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// medreminder services and terminal UI.
//
// All Msg* constants are human-readable strings shown to the user or written
// into log entries to describe the outcome of an operation. Keeping them in
// one place ensures consistent wording throughout the app.
package app

const (
	// MsgInvalidEmailFormat is shown when the email does not look like an
	// address.
	MsgInvalidEmailFormat = "Invalid email format"

	// MsgPasswordTooShort is shown when the password has 5 characters or
	// fewer.
	MsgPasswordTooShort = "Password must be longer than 5 characters"

	// MsgInvalidCredentials is shown for any failed login, without telling
	// which of email or password was wrong.
	MsgInvalidCredentials = "Wrong email or password"

	// MsgPasswordMismatch is shown when the confirmation differs from the
	// password on registration.
	MsgPasswordMismatch = "Password confirmation does not match"

	// MsgDuplicateEmail is shown when registering an email that already has
	// an account.
	MsgDuplicateEmail = "Email is already registered"

	// MsgEmailNotFound is shown when resetting the password of an unknown
	// email.
	MsgEmailNotFound = "Email not found"

	// MsgRegisterSuccess confirms a new account. No automatic login follows.
	MsgRegisterSuccess = "Account created! You can log in now."

	// MsgResetPasswordSuccess confirms a password change.
	MsgResetPasswordSuccess = "Password changed. You can log in with the new password."

	// MsgFillAllFields is shown when any entry field is blank.
	MsgFillAllFields = "Please fill in all fields"

	// MsgInvalidTimeOfDay is shown when the reminder time is not HH:MM.
	MsgInvalidTimeOfDay = "Time must be in HH:MM format"

	// MsgSaveFailed is shown when the record store rejects a save.
	MsgSaveFailed = "Could not save the medicine"

	// MsgSaved confirms a save together with the next reminder time.
	MsgSaved = "Saved. Next reminder at %s"

	// MsgSchedulingPermission is shown when the record was saved but the
	// reminder could not be armed.
	MsgSchedulingPermission = "Saved, but exact alarms are not permitted: no reminder was set"

	// MsgDeleteConfirm asks before removing a record.
	MsgDeleteConfirm = "Are you sure you want to delete %s? (y/n)"

	// MsgCopied confirms that the reminder text is on the clipboard.
	MsgCopied = "Copied to clipboard"

	// MsgUnexpectedError covers failures the user cannot resolve.
	MsgUnexpectedError = "Something went wrong"
)
