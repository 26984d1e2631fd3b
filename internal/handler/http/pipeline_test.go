package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-user-directory/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// logLines splits the JSON log buffer into non-empty lines.
func logLines(buf *bytes.Buffer) []string {
	var lines []string
	for _, l := range strings.Split(buf.String(), "\n") {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

func servePipeline(h HandlerFunc, method, path string, buf *bytes.Buffer) *httptest.ResponseRecorder {
	handler := Compose(h, withErrorGuard, withAccessLog)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, makeRequest(method, path, buf))
	return rr
}

func TestCompose_StageOrder(t *testing.T) {
	var calls []string
	stage := func(name string) Stage {
		return func(next HandlerFunc) HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) error {
				calls = append(calls, name+":in")
				err := next(w, r)
				calls = append(calls, name+":out")
				return err
			}
		}
	}

	handler := Compose(func(w http.ResponseWriter, r *http.Request) error {
		calls = append(calls, "handler")
		return nil
	}, stage("outer"), stage("inner"))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"outer:in", "inner:in", "handler", "inner:out", "outer:out"}, calls)
}

func TestCompose_NoStages(t *testing.T) {
	handler := Compose(func(w http.ResponseWriter, r *http.Request) error {
		w.WriteHeader(http.StatusAccepted)
		return errors.New("dropped")
	})

	rr := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusAccepted, rr.Code)
}

func TestPipeline_Success_OneAccessLine(t *testing.T) {
	var buf bytes.Buffer

	rr := servePipeline(func(w http.ResponseWriter, r *http.Request) error {
		w.WriteHeader(http.StatusCreated)
		_, err := w.Write([]byte("created"))
		return err
	}, http.MethodPost, "/users", &buf)

	assert.Equal(t, http.StatusCreated, rr.Code)

	lines := logLines(&buf)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"level":"info"`)
	assert.Contains(t, lines[0], `"status":201`)
	assert.Contains(t, lines[0], `"size":7`)
	assert.Contains(t, lines[0], `"uri":"/users"`)
}

func TestPipeline_HandlerError(t *testing.T) {
	var buf bytes.Buffer

	rr := servePipeline(func(w http.ResponseWriter, r *http.Request) error {
		return errors.New("storage exploded")
	}, http.MethodGet, "/users/1", &buf)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Internal server error", body.Error)

	// one error entry, no access line
	lines := logLines(&buf)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"level":"error"`)
	assert.Contains(t, lines[0], "storage exploded")
	assert.Contains(t, lines[0], `"method":"GET"`)
	assert.Contains(t, lines[0], `"uri":"/users/1"`)
	assert.NotContains(t, lines[0], `"status"`)
}

func TestPipeline_HandlerPanic(t *testing.T) {
	var buf bytes.Buffer

	var rr *httptest.ResponseRecorder
	require.NotPanics(t, func() {
		rr = servePipeline(func(w http.ResponseWriter, r *http.Request) error {
			panic("nil map write")
		}, http.MethodDelete, "/users/2", &buf)
	})

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rr.Body.String())

	lines := logLines(&buf)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"level":"error"`)
	assert.Contains(t, lines[0], `"panic":"nil map write"`)
	assert.Contains(t, lines[0], `"stack":`)
}

func TestPipeline_ErrorAfterHeadersWritten(t *testing.T) {
	var buf bytes.Buffer

	rr := servePipeline(func(w http.ResponseWriter, r *http.Request) error {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[`))
		return errors.New("encoder failed midway")
	}, http.MethodGet, "/users", &buf)

	// the response already started: status and body stay as written
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `[`, rr.Body.String())

	lines := logLines(&buf)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "encoder failed midway")
}

func TestPipeline_AbortHandlerPanicIsRethrown(t *testing.T) {
	var buf bytes.Buffer

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		servePipeline(func(w http.ResponseWriter, r *http.Request) error {
			panic(http.ErrAbortHandler)
		}, http.MethodGet, "/users", &buf)
	})
}

func TestWithErrorGuard_NeverReturnsError(t *testing.T) {
	var buf bytes.Buffer
	guarded := withErrorGuard(func(w http.ResponseWriter, r *http.Request) error {
		return errors.New("boom")
	})

	err := guarded(httptest.NewRecorder(), makeRequest(http.MethodGet, "/", &buf))
	assert.NoError(t, err)
}
