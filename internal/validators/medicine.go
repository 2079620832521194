// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-med-reminder/models"
)

// Field name constants used to restrict [MedicineValidator] to a subset of
// fields.
const (
	// FieldName targets the medicine name.
	FieldName = "name"

	// FieldDose targets the dose text, e.g. "500mg".
	FieldDose = "dose"

	// FieldFrequency targets the frequency text, e.g. "3x a day".
	FieldFrequency = "frequency"

	// FieldTimeOfDay targets the "HH:MM" reminder time.
	FieldTimeOfDay = "time_of_day"
)

// MedicineValidator validates entry drafts and medicine records. Every field
// must be non-blank and the time of day must be a real "HH:MM" clock time.
type MedicineValidator struct{}

// NewMedicineValidator constructs a new MedicineValidator and returns it as
// the Validator interface.
func NewMedicineValidator() Validator {
	return &MedicineValidator{}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported types:
//   - models.Draft / *models.Draft
//   - models.Medicine / *models.Medicine
//
// Fields are checked in form order (name, dose, frequency, time) and the
// first failure is returned.
func (v *MedicineValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Draft:
		return v.validateDraft(value, fields...)
	case *models.Draft:
		return v.validateDraft(*value, fields...)

	case models.Medicine:
		return v.validateDraft(models.DraftFromMedicine(value), fields...)
	case *models.Medicine:
		return v.validateDraft(models.DraftFromMedicine(*value), fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *MedicineValidator) validateDraft(d models.Draft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldDose, FieldFrequency, FieldTimeOfDay}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if isBlank(d.Name) {
				return ErrEmptyName
			}
		case FieldDose:
			if isBlank(d.Dose) {
				return ErrEmptyDose
			}
		case FieldFrequency:
			if isBlank(d.Frequency) {
				return ErrEmptyFrequency
			}
		case FieldTimeOfDay:
			if isBlank(string(d.TimeOfDay)) {
				return ErrEmptyTimeOfDay
			}
			if _, _, err := d.TimeOfDay.Clock(); err != nil {
				return errors.Join(ErrInvalidTimeOfDay, err)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
