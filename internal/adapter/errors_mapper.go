package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-user-directory/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := errorMessage(resp.Body())

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		var problem models.ValidationProblem
		if err := json.Unmarshal(resp.Body(), &problem); err == nil && len(problem.Errors) > 0 {
			return &ValidationError{Title: problem.Title, Fields: problem.Errors}
		}
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: retry after %ss", ErrTooManyRequests, resp.Header().Get("Retry-After"))
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// errorMessage extracts the "error" field of a JSON error body, falling back
// to the raw body.
func errorMessage(raw []byte) string {
	var resp models.ErrorResponse
	if err := json.Unmarshal(raw, &resp); err == nil && resp.Error != "" {
		return resp.Error
	}
	return strings.TrimSpace(string(raw))
}
