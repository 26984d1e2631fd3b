package store

import (
	"time"

	"github.com/MKhiriev/go-user-directory/models"
)

// DefaultSeed returns the demo users loaded when seeding is enabled:
// ids 1 and 2, both created at now.
func DefaultSeed(now time.Time) []models.User {
	now = now.UTC()
	return []models.User{
		{ID: 1, Name: "John Doe", Email: "john@example.com", CreatedAt: now},
		{ID: 2, Name: "Jane Smith", Email: "jane@example.com", CreatedAt: now},
	}
}
