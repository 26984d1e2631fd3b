package server

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-user-directory/internal/config"
	"github.com/MKhiriev/go-user-directory/internal/handler"
	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/workers"
	"golang.org/x/sync/errgroup"
)

type server struct {
	httpServer      *httpServer
	workers         *workers.Workers
	shutdownTimeout time.Duration

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, ws *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer:      newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		workers:         ws,
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}, nil
}

// RunServer serves until ctx is cancelled or SIGTERM, SIGINT or SIGQUIT
// arrives, then shuts down gracefully.
func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(
		ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *server) run(ctx context.Context) error {
	if s.httpServer == nil {
		return errors.New("no servers to run")
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.httpServer.RunServer(gctx)
	})

	if s.workers != nil && s.workers.Len() > 0 {
		g.Go(func() error {
			return s.workers.Run(gctx)
		})
	}

	// listen for stop signals or a failed sibling
	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		return s.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
