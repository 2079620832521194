// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it reaches the store:
// medicine drafts (name, dose, frequency and "HH:MM" time) and account
// credentials (email format and password length).
//
// Validate may be scoped to a subset of fields, so a form can check the
// field the user just left without reporting errors for fields not yet
// filled in.
package validators

import "context"

// Validator checks a value such as a [models.Draft] or a credentials struct.
// Field names restrict the check to those fields; with none, every field
// is checked and the first failure is returned.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
