// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the field-validation engine of the user directory.
//
// Core concepts:
//   - ValidateUser: the pure rule set for a candidate name/email pair,
//     returning every failed rule keyed by field.
//   - Validator: generic interface used by the service layer; UserValidator
//     adapts ValidateUser to request DTOs and reports failures as
//     *ValidationError.
//
// Validation never touches storage, so callers can run it before any
// mutation and discard the request on failure.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
