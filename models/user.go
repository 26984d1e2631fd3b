package models

import "time"

// User is a single entry of the user directory.
//
// Values are treated as immutable once created: the repository replaces the
// stored value on update instead of mutating it, so a User handed out to a
// caller never changes underneath it.
type User struct {
	// ID is assigned by the repository on creation and never reused.
	ID int64 `json:"id"`

	// Name is the display name of the user (at least 2 characters after trimming).
	Name string `json:"name"`

	// Email is the contact address of the user.
	Email string `json:"email"`

	// CreatedAt is stamped once, at creation, and survives every update.
	CreatedAt time.Time `json:"createdAt"`
}

// WithContacts returns a copy of u carrying the given name and email.
// ID and CreatedAt are preserved.
func (u User) WithContacts(name, email string) User {
	u.Name = name
	u.Email = email
	return u
}
