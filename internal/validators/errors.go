package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrRequiredField    = errors.New("required field is empty")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrInvalidBirthDate = errors.New("invalid birth date")
)
