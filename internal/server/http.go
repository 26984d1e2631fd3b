package server

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/MKhiriev/go-user-directory/internal/config"
	"github.com/MKhiriev/go-user-directory/internal/logger"
)

type httpServer struct {
	server   *http.Server
	listener net.Listener

	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           handler,
			ReadHeaderTimeout: cfg.RequestTimeout,
			ReadTimeout:       cfg.RequestTimeout,
			WriteTimeout:      cfg.RequestTimeout,
		},
		logger: logger,
	}
}

// listen binds the configured address. It is a no-op once bound.
func (h *httpServer) listen() error {
	if h.listener != nil {
		return nil
	}

	ln, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return err
	}
	h.listener = ln
	return nil
}

// addr returns the bound address, or the configured one before listen.
func (h *httpServer) addr() string {
	if h.listener != nil {
		return h.listener.Addr().String()
	}
	return h.server.Addr
}

func (h *httpServer) RunServer(ctx context.Context) error {
	if err := h.listen(); err != nil {
		return err
	}

	h.logger.Info().Str("address", h.addr()).Msg("Launching HTTP server")
	if err := h.server.Serve(h.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (h *httpServer) Shutdown(ctx context.Context) error {
	h.logger.Info().Msg("HTTP server Shutdown")
	return h.server.Shutdown(ctx)
}
