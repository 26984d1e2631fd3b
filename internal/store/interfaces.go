package store

import (
	"context"

	"github.com/MKhiriev/go-user-directory/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

// UserRepository is the authoritative in-memory collection of users.
//
// Every method is safe for concurrent use. Operations on a single id are
// linearizable; nothing is guaranteed across different ids.
type UserRepository interface {
	// List returns a snapshot of all users in unspecified order.
	List(ctx context.Context) []models.User

	// Get returns the user stored at id or ErrUserNotFound.
	Get(ctx context.Context, id int64) (models.User, error)

	// Create allocates the next id, stamps CreatedAt and stores the user.
	// Callers must validate name and email beforehand.
	Create(ctx context.Context, name, email string) models.User

	// Update replaces name and email of the user at id, keeping ID and
	// CreatedAt. Returns ErrUserNotFound without mutating anything when
	// id holds no user.
	Update(ctx context.Context, id int64, name, email string) (models.User, error)

	// Delete removes the user at id and reports whether it existed.
	Delete(ctx context.Context, id int64) bool

	// Len returns the number of stored users.
	Len(ctx context.Context) int
}
