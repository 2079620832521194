package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmailFormat = errors.New("invalid email format")
	ErrPasswordTooShort   = errors.New("password must be longer than 5 characters")

	ErrEmptyName        = errors.New("medicine name is required")
	ErrEmptyDose        = errors.New("dose is required")
	ErrEmptyFrequency   = errors.New("frequency is required")
	ErrEmptyTimeOfDay   = errors.New("time of day is required")
	ErrInvalidTimeOfDay = errors.New("invalid time of day")
)
