// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the user directory HTTP API.
//
// The primary abstraction is [UserDirectoryClient], which hides the REST
// routes and JSON bodies from callers such as integration tests and tooling.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] and [errors.As]
// (e.g. [ErrNotFound] for 404, *[ValidationError] for a 400 validation
// problem).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-user-directory/models"
)

// UserDirectoryClient talks to a running user directory server.
type UserDirectoryClient interface {
	// ListUsers returns every user (GET /users).
	ListUsers(ctx context.Context) ([]models.User, error)

	// GetUser returns one user (GET /users/{id}) or ErrNotFound.
	GetUser(ctx context.Context, id int64) (models.User, error)

	// CreateUser creates a user (POST /users). A rejected request yields a
	// *ValidationError.
	CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error)

	// UpdateUser replaces name and email (PUT /users/{id}). Returns
	// ErrNotFound before any *ValidationError.
	UpdateUser(ctx context.Context, id int64, req models.UpdateUserRequest) (models.User, error)

	// DeleteUser removes a user (DELETE /users/{id}) or returns ErrNotFound.
	DeleteUser(ctx context.Context, id int64) error

	// Version returns the server version (GET /version).
	Version(ctx context.Context) (string, error)

	// Health reports whether the server answers GET /health with "ok".
	Health(ctx context.Context) error
}
