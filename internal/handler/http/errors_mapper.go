package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/store"
	"github.com/MKhiriev/go-user-directory/internal/utils"
	"github.com/MKhiriev/go-user-directory/internal/validators"
	"github.com/MKhiriev/go-user-directory/models"
)

type errorResponse struct {
	status  int
	message string
}

var errorStatusMap = map[error]errorResponse{
	store.ErrUserNotFound: {status: http.StatusNotFound, message: msgUserNotFound},
}

func statusFromError(err error) (errorResponse, bool) {
	for target, resp := range errorStatusMap {
		if errors.Is(err, target) {
			return resp, true
		}
	}
	return errorResponse{status: http.StatusInternalServerError, message: msgInternalServerError}, false
}

// writeServiceError answers known service errors. Unknown errors are returned
// unchanged so the error-guard stage handles them.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) error {
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		logger.FromRequest(r).Debug().Err(err).Msg("request failed validation")
		return writeValidationProblem(w, validationErr.Fields)
	}

	resp, ok := statusFromError(err)
	if !ok {
		return err
	}

	logger.FromRequest(r).Debug().Err(err).Int("status", resp.status).Send()
	return writeError(w, resp.status, resp.message)
}

func writeError(w http.ResponseWriter, status int, message string) error {
	_, err := utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
	return err
}

func writeValidationProblem(w http.ResponseWriter, fields validators.FieldErrors) error {
	problem := models.ValidationProblem{
		Title:  validationProblemTitle,
		Status: http.StatusBadRequest,
		Errors: fields,
	}
	_, err := utils.WriteJSON(w, problem, http.StatusBadRequest)
	return err
}
