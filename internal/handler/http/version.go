package http

import (
	"net/http"

	"github.com/MKhiriev/go-user-directory/internal/utils"
	"github.com/MKhiriev/go-user-directory/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) error {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	_, err := utils.WriteText(w, serverVersion, http.StatusOK)
	return err
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) error {
	_, err := utils.WriteJSON(w, models.HealthResponse{Status: "ok"}, http.StatusOK)
	return err
}
