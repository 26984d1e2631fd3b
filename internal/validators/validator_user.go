package validators

import (
	"context"

	"github.com/MKhiriev/go-user-directory/models"
)

// UserValidator implements Validator for the user request DTOs:
// CreateUserRequest and UpdateUserRequest, both by value and by pointer.
type UserValidator struct {
}

// NewUserValidator constructs a UserValidator and returns it as Validator.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate runs ValidateUser on the name and email carried by obj.
//
// Optional fields restrict the result to the named subset (FieldName,
// FieldEmail); when omitted both are checked. Returns ErrUnsupportedType for
// any other type, ErrUnknownField for an unknown field name, and a
// *ValidationError when at least one rule failed.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateUserRequest:
		return v.validateContacts(value.Name, value.Email, fields...)
	case *models.CreateUserRequest:
		if value == nil {
			return v.validateContacts(nil, nil, fields...)
		}
		return v.validateContacts(value.Name, value.Email, fields...)

	case models.UpdateUserRequest:
		return v.validateContacts(value.Name, value.Email, fields...)
	case *models.UpdateUserRequest:
		if value == nil {
			return v.validateContacts(nil, nil, fields...)
		}
		return v.validateContacts(value.Name, value.Email, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateContacts(name, email *string, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail}
	}

	all := ValidateUser(name, email)
	scoped := FieldErrors{}
	for _, f := range fields {
		switch f {
		case FieldName, FieldEmail:
			if msgs, ok := all[f]; ok {
				scoped[f] = msgs
			}
		default:
			return ErrUnknownField
		}
	}

	if scoped.Valid() {
		return nil
	}
	return &ValidationError{Fields: scoped}
}
