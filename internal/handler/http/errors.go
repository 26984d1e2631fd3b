// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

// Client-facing messages. They are part of the public API and must not change.
const (
	msgUserNotFound        = "User not found"
	msgInvalidJSON         = "Invalid JSON was passed"
	msgInternalServerError = "Internal server error"
	msgTooManyRequests     = "Too many requests"
	msgRouteNotFound       = "Resource not found"

	validationProblemTitle = "One or more validation errors occurred."
)
