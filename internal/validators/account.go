package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/MKhiriev/go-event-portal/models"
)

// Field names accepted by [AccountValidator] for field-level scoping.
const (
	FieldFullName   = "fullname"
	FieldNationalID = "cpf"
	FieldEmail      = "email"
	FieldBirthDate  = "birth_date"
	FieldPassword   = "password"
)

// BirthDateLayout is the date format the gateway accepts for birth dates.
const BirthDateLayout = time.DateOnly

// AccountValidator checks the account payloads: [models.RegisterPayload]
// and [models.UserUpdatePayload]. Both value and pointer forms are accepted.
type AccountValidator struct {
	now func() time.Time
}

func NewAccountValidator() Validator {
	return &AccountValidator{now: time.Now}
}

func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterPayload:
		return v.validateRegisterPayload(ctx, value, fields...)
	case *models.RegisterPayload:
		return v.validateRegisterPayload(ctx, *value, fields...)

	case models.UserUpdatePayload:
		return v.validateUserUpdate(ctx, value, fields...)
	case *models.UserUpdatePayload:
		return v.validateUserUpdate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AccountValidator) validateRegisterPayload(_ context.Context, payload models.RegisterPayload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFullName, FieldNationalID, FieldEmail, FieldBirthDate, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldFullName:
			if isBlank(payload.FullName) {
				return fmt.Errorf("%w: %s", ErrRequiredField, FieldFullName)
			}
		case FieldNationalID:
			if isBlank(payload.NationalID) {
				return fmt.Errorf("%w: %s", ErrRequiredField, FieldNationalID)
			}
		case FieldEmail:
			if err := validateEmail(payload.Email); err != nil {
				return err
			}
		case FieldBirthDate:
			if isBlank(payload.BirthDate) {
				return fmt.Errorf("%w: %s", ErrRequiredField, FieldBirthDate)
			}
			if err := v.validateBirthDate(payload.BirthDate); err != nil {
				return err
			}
		case FieldPassword:
			// whitespace is a legal password character
			if payload.Password == "" {
				return fmt.Errorf("%w: %s", ErrRequiredField, FieldPassword)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUserUpdate requires a name. The birth date may be left empty.
func (v *AccountValidator) validateUserUpdate(_ context.Context, payload models.UserUpdatePayload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFullName, FieldBirthDate}
	}

	for _, f := range fields {
		switch f {
		case FieldFullName:
			if isBlank(payload.FullName) {
				return fmt.Errorf("%w: %s", ErrRequiredField, FieldFullName)
			}
		case FieldBirthDate:
			if isBlank(payload.BirthDate) {
				continue
			}
			if err := v.validateBirthDate(payload.BirthDate); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccountValidator) validateBirthDate(value string) error {
	date, err := time.Parse(BirthDateLayout, strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("%w: expected %s", ErrInvalidBirthDate, BirthDateLayout)
	}
	if date.After(v.now()) {
		return fmt.Errorf("%w: date is in the future", ErrInvalidBirthDate)
	}
	return nil
}

func validateEmail(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return fmt.Errorf("%w: %s", ErrRequiredField, FieldEmail)
	}
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return ErrInvalidEmail
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
