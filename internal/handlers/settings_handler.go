package handlers

import (
	"log/slog"
	"net/http"

	"github.com/neolayer/store-backend/internal/models"
	"github.com/neolayer/store-backend/internal/service"
)

// SettingsHandler serves the store settings document
type SettingsHandler struct {
	service *service.SettingsService
	logger  *slog.Logger
}

func NewSettingsHandler(service *service.SettingsService, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{
		service: service,
		logger:  logger,
	}
}

// GetSettings handles GET /api/settings
func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.GetSettings(r.Context())
	if err != nil {
		WriteAppError(w, err, h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, settings, h.logger)
}

// UpdateTheme handles PUT /api/settings/theme
func (h *SettingsHandler) UpdateTheme(w http.ResponseWriter, r *http.Request) {
	var req models.ThemeUpdateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteAppError(w, err, h.logger)
		return
	}

	theme, err := h.service.UpdateTheme(r.Context(), req.Theme)
	if err != nil {
		WriteAppError(w, err, h.logger)
		return
	}

	h.logger.Info("theme updated", "theme", theme)
	WriteJSON(w, http.StatusOK, models.ThemeUpdateResponse{
		Message: service.MsgThemeUpdated,
		Theme:   theme,
	}, h.logger)
}
