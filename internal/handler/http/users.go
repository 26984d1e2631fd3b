package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/utils"
	"github.com/MKhiriev/go-user-directory/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) error {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		return writeServiceError(w, r, err)
	}
	if users == nil {
		users = []models.User{}
	}

	_, err = utils.WriteJSON(w, users, http.StatusOK)
	return err
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) error {
	id, ok := userIDFromRequest(r)
	if !ok {
		return writeError(w, http.StatusNotFound, msgUserNotFound)
	}

	user, err := h.services.UserService.GetUser(r.Context(), id)
	if err != nil {
		return writeServiceError(w, r, err)
	}

	_, err = utils.WriteJSON(w, user, http.StatusOK)
	return err
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) error {
	log := logger.FromRequest(r)

	var req models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		return writeError(w, http.StatusBadRequest, msgInvalidJSON)
	}

	user, err := h.services.UserService.CreateUser(r.Context(), req)
	if err != nil {
		return writeServiceError(w, r, err)
	}

	log.Debug().Int64("id", user.ID).Msg("user created")

	w.Header().Set("Location", fmt.Sprintf("/users/%d", user.ID))
	_, err = utils.WriteJSON(w, user, http.StatusCreated)
	return err
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) error {
	log := logger.FromRequest(r)

	id, ok := userIDFromRequest(r)
	if !ok {
		return writeError(w, http.StatusNotFound, msgUserNotFound)
	}

	var req models.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		return writeError(w, http.StatusBadRequest, msgInvalidJSON)
	}

	user, err := h.services.UserService.UpdateUser(r.Context(), id, req)
	if err != nil {
		return writeServiceError(w, r, err)
	}

	log.Debug().Int64("id", user.ID).Msg("user updated")

	_, err = utils.WriteJSON(w, user, http.StatusOK)
	return err
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) error {
	id, ok := userIDFromRequest(r)
	if !ok {
		return writeError(w, http.StatusNotFound, msgUserNotFound)
	}

	if err := h.services.UserService.DeleteUser(r.Context(), id); err != nil {
		return writeServiceError(w, r, err)
	}

	logger.FromRequest(r).Debug().Int64("id", id).Msg("user deleted")

	w.WriteHeader(http.StatusNoContent)
	return nil
}

// userIDFromRequest parses the {id} route parameter. Only positive integers
// can name a user; anything else is reported as a missing user.
func userIDFromRequest(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
