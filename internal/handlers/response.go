package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/neolayer/store-backend/internal/apperror"
	"github.com/neolayer/store-backend/internal/models"
)

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, status int, data interface{}, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteError writes an error response in JSON format
func WriteError(w http.ResponseWriter, status int, message string, logger *slog.Logger) {
	WriteJSON(w, status, models.ErrorResponse{Error: message}, logger)
}

// WriteAppError maps err to its HTTP status and writes {"error": message}.
// Every handler reports failures through here.
func WriteAppError(w http.ResponseWriter, err error, logger *slog.Logger) {
	appErr := apperror.From(err)
	if appErr.Status >= http.StatusInternalServerError {
		logger.Error("request failed", "kind", appErr.Kind, "error", err)
	} else {
		logger.Debug("request rejected", "kind", appErr.Kind, "status", appErr.Status, "error", err)
	}
	WriteError(w, appErr.Status, appErr.Message, logger)
}

// WriteMessage writes a 200 {"message": ...} confirmation
func WriteMessage(w http.ResponseWriter, message string, logger *slog.Logger) {
	WriteJSON(w, http.StatusOK, models.MessageResponse{Message: message}, logger)
}
