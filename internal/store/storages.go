package store

import (
	"time"

	"github.com/MKhiriev/go-user-directory/internal/config"
	"github.com/MKhiriev/go-user-directory/internal/logger"
)

// Storages groups the repositories owned by the process.
type Storages struct {
	UserRepository UserRepository
}

// NewStorages builds the process-wide repositories from cfg.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	if cfg.Memory.Shards < 1 {
		return nil, ErrInvalidShardCount
	}

	opts := []Option{WithShardCount(cfg.Memory.Shards)}
	if !cfg.Memory.SkipDemoSeed {
		opts = append(opts, WithSeed(DefaultSeed(time.Now())...))
	}

	return &Storages{
		UserRepository: NewUserRepository(logger, opts...),
	}, nil
}
