package http

import "net/http"

// HandlerFunc is a route handler that reports failures instead of answering
// them. A returned error is turned into a response by the error-guard stage.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Stage wraps a HandlerFunc with behaviour that runs around it.
type Stage func(next HandlerFunc) HandlerFunc

// Compose wraps h with stages and adapts the result to http.HandlerFunc.
//
// stages[0] is the outermost stage: it runs first on the way in and last on
// the way out. The first stage is expected to absorb errors, anything it
// returns is dropped.
func Compose(h HandlerFunc, stages ...Stage) http.HandlerFunc {
	for i := len(stages) - 1; i >= 0; i-- {
		h = stages[i](h)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		_ = h(w, r)
	}
}

// pipeline wraps a route handler with the handler's stage list.
func (h *Handler) pipeline(fn HandlerFunc) http.HandlerFunc {
	return Compose(fn, h.stages...)
}
