package store

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/models"
)

const defaultShardCount = 16

// userRepository is the in-memory implementation of [UserRepository].
//
// Users live in a sharded map keyed by id. Ids come from lastID, a counter
// owned by this instance and advanced with a single atomic add, so two
// concurrent Create calls never share an id and independent repositories
// never interfere with each other.
type userRepository struct {
	users  *shardedMap[int64, models.User]
	lastID atomic.Int64
	now    func() time.Time

	logger *logger.Logger
}

// Option configures a repository built by NewUserRepository.
type Option func(*repositoryOptions)

type repositoryOptions struct {
	shards int
	seed   []models.User
	now    func() time.Time
}

// WithShardCount sets the number of independently locked shards.
func WithShardCount(n int) Option {
	return func(o *repositoryOptions) { o.shards = n }
}

// WithSeed preloads users. Their ids and CreatedAt are kept as given and the
// id counter starts above the highest seeded id.
func WithSeed(users ...models.User) Option {
	return func(o *repositoryOptions) { o.seed = append(o.seed, users...) }
}

// WithClock replaces time.Now as the source of CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(o *repositoryOptions) { o.now = now }
}

// NewUserRepository constructs an empty (or seeded) in-memory [UserRepository].
func NewUserRepository(logger *logger.Logger, opts ...Option) UserRepository {
	o := repositoryOptions{shards: defaultShardCount, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	r := &userRepository{
		users:  newShardedMap[int64, models.User](o.shards, hashInt64),
		now:    o.now,
		logger: logger,
	}

	var maxID int64
	for _, u := range o.seed {
		r.users.Store(u.ID, u)
		maxID = max(maxID, u.ID)
	}
	r.lastID.Store(maxID)

	logger.Debug().Int("shards", o.shards).Int("seeded", len(o.seed)).Msg("creating user repository")
	return r
}

func (r *userRepository) List(ctx context.Context) []models.User {
	return r.users.Values()
}

func (r *userRepository) Get(ctx context.Context, id int64) (models.User, error) {
	user, ok := r.users.Load(id)
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

func (r *userRepository) Create(ctx context.Context, name, email string) models.User {
	user := models.User{
		ID:        r.lastID.Add(1),
		Name:      name,
		Email:     email,
		CreatedAt: r.now().UTC(),
	}
	r.users.Store(user.ID, user)

	logger.FromContext(ctx).Debug().Int64("id", user.ID).Msg("user created")
	return user
}

func (r *userRepository) Update(ctx context.Context, id int64, name, email string) (models.User, error) {
	updated, ok := r.users.Update(id, func(current models.User) models.User {
		return current.WithContacts(name, email)
	})
	if !ok {
		return models.User{}, ErrUserNotFound
	}

	logger.FromContext(ctx).Debug().Int64("id", id).Msg("user updated")
	return updated, nil
}

func (r *userRepository) Delete(ctx context.Context, id int64) bool {
	deleted := r.users.Delete(id)
	if deleted {
		logger.FromContext(ctx).Debug().Int64("id", id).Msg("user deleted")
	}
	return deleted
}

func (r *userRepository) Len(ctx context.Context) int {
	return r.users.Len()
}
