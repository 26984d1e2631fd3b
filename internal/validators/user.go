package validators

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Field names used as keys of FieldErrors and as optional scoping arguments
// to Validator.Validate.
const (
	FieldName  = "name"
	FieldEmail = "email"
)

// Messages reported by ValidateUser.
const (
	MsgNameRequired  = "Name is required."
	MsgNameTooShort  = "Name must be at least 2 characters long."
	MsgEmailRequired = "Email is required."
	MsgEmailInvalid  = "Invalid email format."
)

const minNameLength = 2

// emailPattern: exactly one '@', no ASCII whitespace, a '.' inside the domain
// part. RE2's \s is ASCII only, so validateEmail rejects Unicode spaces separately.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// FieldErrors maps a field name to its ordered list of messages.
// An empty FieldErrors means the input is valid.
type FieldErrors map[string][]string

// Add appends msg to the messages of field.
func (fe FieldErrors) Add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

// Valid reports whether no rule failed.
func (fe FieldErrors) Valid() bool {
	return len(fe) == 0
}

// ValidateUser checks a candidate name/email pair. A nil pointer means the
// field was absent. Each field is checked independently.
func ValidateUser(name, email *string) FieldErrors {
	errs := FieldErrors{}
	validateName(errs, name)
	validateEmail(errs, email)
	return errs
}

func validateName(errs FieldErrors, name *string) {
	if name == nil || strings.TrimSpace(*name) == "" {
		errs.Add(FieldName, MsgNameRequired)
		return
	}
	if utf8.RuneCountInString(strings.TrimSpace(*name)) < minNameLength {
		errs.Add(FieldName, MsgNameTooShort)
	}
}

func validateEmail(errs FieldErrors, email *string) {
	if email == nil || strings.TrimSpace(*email) == "" {
		errs.Add(FieldEmail, MsgEmailRequired)
		return
	}
	if strings.IndexFunc(*email, unicode.IsSpace) >= 0 || !emailPattern.MatchString(*email) {
		errs.Add(FieldEmail, MsgEmailInvalid)
	}
}
