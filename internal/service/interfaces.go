package service

import (
	"context"

	"github.com/MKhiriev/go-user-directory/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// UserService composes the user repository and the validation engine.
//
// Write operations validate before touching the repository, so a failed
// request never leaves a partial change behind. Errors:
//   - store.ErrUserNotFound when the target id holds no user;
//   - *validators.ValidationError (matches validators.ErrValidation) when
//     the request fails validation.
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error)
	// UpdateUser checks existence first and validates only existing users.
	UpdateUser(ctx context.Context, id int64, req models.UpdateUserRequest) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// AppInfoService exposes build and version information of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
