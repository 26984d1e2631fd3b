package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-user-directory/internal/logger"
)

// withAccessLog records one info line per request that completed normally:
// method, path, status, duration and size. uri keeps the query string.
// Failed requests are left to the error-guard stage and produce no line here.
func withAccessLog(next HandlerFunc) HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		log := logger.FromRequest(r)

		start := time.Now()

		path := r.URL.Path
		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		if err := next(lw, r); err != nil {
			return err
		}

		duration := time.Since(start)

		log.Info().
			Str("path", path).
			Str("uri", uri).
			Str("method", method).
			Int("status", lw.Status()).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()

		return nil
	}
}
