package http

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedTraceIDs always hands out the same id.
type fixedTraceIDs string

func (f fixedTraceIDs) Generate() string { return string(f) }

func serveWithTraceID(h *Handler, incoming string, next http.HandlerFunc) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	if incoming != "" {
		req.Header.Set(traceIDHeader, incoming)
	}

	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)
	return rr
}

func TestWithTraceID_HeaderSelection(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		want     string
	}{
		{name: "incoming id is reused", incoming: "client-trace-1", want: "client-trace-1"},
		{name: "uuid from upstream is reused", incoming: "550e8400-e29b-41d4-a716-446655440000", want: "550e8400-e29b-41d4-a716-446655440000"},
		{name: "missing id is generated", want: "generated-id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{logger: logger.Nop(), traceIDs: fixedTraceIDs("generated-id")}

			nextCalled := false
			rr := serveWithTraceID(h, tt.incoming, func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusNoContent)
			})

			assert.True(t, nextCalled)
			assert.Equal(t, http.StatusNoContent, rr.Code)
			assert.Equal(t, tt.want, rr.Header().Get(traceIDHeader))
		})
	}
}

func TestWithTraceID_GeneratesUniqueV7(t *testing.T) {
	h := &Handler{logger: logger.Nop(), traceIDs: utils.NewUUIDGenerator()}
	next := func(w http.ResponseWriter, r *http.Request) {}

	const n = 50
	ids := make(chan string, n)

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			ids <- serveWithTraceID(h, "", next).Header().Get(traceIDHeader)
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]struct{})
	for id := range ids {
		parsed, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(7), parsed.Version())
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, n)
}

func TestWithTraceID_LoggerCarriesTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{
		logger:   logger.NewLoggerWithWriter("test", &buf),
		traceIDs: fixedTraceIDs("unused"),
	}

	serveWithTraceID(h, "trace-42", func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})

	assert.Contains(t, buf.String(), `"trace_id":"trace-42"`)
	assert.NotContains(t, buf.String(), "unused")
}

func TestWithTraceID_OriginalRequestNotMutated(t *testing.T) {
	h := &Handler{logger: logger.NewLoggerWithWriter("test", io.Discard), traceIDs: fixedTraceIDs("id")}

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	originalCtx := req.Context()

	var attached bool
	rr := httptest.NewRecorder()
	h.withTraceID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotSame(t, req, r)
		attached = zerolog.Ctx(r.Context()).GetLevel() != zerolog.Disabled
	})).ServeHTTP(rr, req)

	assert.True(t, attached, "request logger must be attached to the context")
	assert.Equal(t, "id", rr.Header().Get(traceIDHeader))
	assert.Equal(t, originalCtx, req.Context())
	assert.Empty(t, req.Header.Get(traceIDHeader))
}
