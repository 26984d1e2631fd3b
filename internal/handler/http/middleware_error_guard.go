package http

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-user-directory/internal/logger"
)

// withErrorGuard is the outermost pipeline stage.
//
// A returned error or a recovered panic is logged at error level and answered
// with 500 {"error":"Internal server error"}. When the handler has already
// sent headers, the failure is only logged. The stage itself never fails.
func withErrorGuard(next HandlerFunc) HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) (err error) {
		gw := &responseWriter{ResponseWriter: w}

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Str("panic", fmt.Sprint(rec)).
				Str("stack", string(debug.Stack())).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("uri", r.RequestURI).
				Msg("panic while handling request")

			writeInternalError(gw, r)
			err = nil
		}()

		if handlerErr := next(gw, r); handlerErr != nil {
			logger.FromRequest(r).Error().
				Err(handlerErr).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("uri", r.RequestURI).
				Msg("request failed")

			writeInternalError(gw, r)
		}

		return nil
	}
}

func writeInternalError(w *responseWriter, r *http.Request) {
	if w.wroteHeader {
		return
	}

	if err := writeError(w, http.StatusInternalServerError, msgInternalServerError); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing error response failed")
	}
}
