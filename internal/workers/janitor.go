package workers

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-user-directory/internal/logger"
)

var ErrInvalidInterval = errors.New("janitor interval must be positive")

// Janitor calls Cleanup on a Cleaner at a fixed interval.
type Janitor struct {
	name    string
	cleaner Cleaner
	every   time.Duration

	logger *logger.Logger
}

func NewJanitor(name string, cleaner Cleaner, every time.Duration, logger *logger.Logger) *Janitor {
	return &Janitor{
		name:    name,
		cleaner: cleaner,
		every:   every,
		logger:  logger,
	}
}

func (j *Janitor) Run(ctx context.Context) error {
	if j.every <= 0 {
		return ErrInvalidInterval
	}

	t := time.NewTicker(j.every)
	defer t.Stop()

	j.logger.Info().Str("janitor", j.name).Dur("every", j.every).Msg("janitor started")
	for {
		select {
		case <-ctx.Done():
			j.logger.Info().Str("janitor", j.name).Msg("janitor stopped")
			return nil
		case <-t.C:
			if removed := j.cleaner.Cleanup(); removed > 0 {
				j.logger.Debug().Str("janitor", j.name).Int("removed", removed).Send()
			}
		}
	}
}
