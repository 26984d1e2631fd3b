package server

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-user-directory/internal/config"
	"github.com/MKhiriev/go-user-directory/internal/handler"
	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/service"
	"github.com/MKhiriev/go-user-directory/internal/store"
	"github.com/MKhiriev/go-user-directory/internal/utils"
	"github.com/MKhiriev/go-user-directory/internal/workers"
	"github.com/MKhiriev/go-user-directory/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, ws *workers.Workers) *server {
	t.Helper()
	log := logger.Nop()
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", ShutdownTimeout: time.Second}

	storages, err := store.NewStorages(config.Storage{Memory: config.Memory{Shards: 2}}, log)
	require.NoError(t, err)
	services, err := service.NewServices(storages, config.App{Version: "test"}, models.AppBuildInfo{}, log)
	require.NoError(t, err)
	handlers, err := handler.NewHandlers(services, cfg, log)
	require.NoError(t, err)

	srv, err := NewServer(handlers, ws, cfg, log)
	require.NoError(t, err)
	return srv.(*server)
}

type blockingWorker struct {
	stopped chan struct{}
}

func (w *blockingWorker) Run(ctx context.Context) error {
	<-ctx.Done()
	close(w.stopped)
	return nil
}

type failingWorker struct{ err error }

func (w failingWorker) Run(context.Context) error { return w.err }

func TestNewServer_NoHandlers(t *testing.T) {
	srv, err := NewServer(nil, nil, config.Server{HTTPAddress: ":8080"}, logger.Nop())
	assert.Nil(t, srv)
	assert.ErrorIs(t, err, errNoServersAreCreated)

	srv, err = NewServer(&handler.Handlers{}, nil, config.Server{HTTPAddress: ":8080"}, logger.Nop())
	assert.Nil(t, srv)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestServer_ServesAndShutsDown(t *testing.T) {
	worker := &blockingWorker{stopped: make(chan struct{})}
	srv := newTestServer(t, workers.NewWorkers(worker))
	require.NoError(t, srv.httpServer.listen())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.run(ctx) }()

	resp, err := utils.NewHTTPClient().R().Get("http://" + srv.httpServer.addr() + "/health")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.JSONEq(t, `{"status":"ok"}`, resp.String())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}

	select {
	case <-worker.stopped:
	default:
		t.Fatal("worker was not stopped")
	}
}

func TestServer_WorkerFailureStopsServer(t *testing.T) {
	boom := errors.New("boom")
	srv := newTestServer(t, workers.NewWorkers(failingWorker{err: boom}))
	require.NoError(t, srv.httpServer.listen())

	done := make(chan error, 1)
	go func() { done <- srv.run(context.Background()) }()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, boom)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_ListenFailure(t *testing.T) {
	srv := newTestServer(t, nil)
	srv.httpServer.server.Addr = "127.0.0.1:-1"

	err := srv.run(context.Background())
	assert.Error(t, err)
}
