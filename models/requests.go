package models

// CreateUserRequest is the body of POST /users.
// Both fields are pointers so that an absent field can be told apart from an
// empty one during validation.
type CreateUserRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

// UpdateUserRequest is the body of PUT /users/{id}.
// PUT replaces both fields; there are no partial updates.
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

// NameValue returns the requested name or an empty string when absent.
func (r CreateUserRequest) NameValue() string {
	return deref(r.Name)
}

// EmailValue returns the requested email or an empty string when absent.
func (r CreateUserRequest) EmailValue() string {
	return deref(r.Email)
}

// NameValue returns the requested name or an empty string when absent.
func (r UpdateUserRequest) NameValue() string {
	return deref(r.Name)
}

// EmailValue returns the requested email or an empty string when absent.
func (r UpdateUserRequest) EmailValue() string {
	return deref(r.Email)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
