package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)

	if len(h.allowedOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: h.allowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", traceIDHeader},
			ExposedHeaders: []string{"Location", traceIDHeader},
			MaxAge:         300,
		}))
	}
	if h.limiters != nil {
		router.Use(h.withRateLimit)
	}
	router.Use(middleware.Compress(5, "application/json"))

	router.Get("/users", h.pipeline(h.listUsers))
	router.Post("/users", h.pipeline(h.createUser))
	router.Get("/users/{id}", h.pipeline(h.getUser))
	router.Put("/users/{id}", h.pipeline(h.updateUser))
	router.Delete("/users/{id}", h.pipeline(h.deleteUser))

	router.Get("/version", h.pipeline(h.getServerVersion))
	router.Get("/health", h.pipeline(h.health))

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
