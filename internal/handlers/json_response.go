package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"simsea/internal/config"
	"simsea/internal/interfaces"
	"simsea/internal/normalize"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"message": message})
}

func writeJSONErrorResponse(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, map[string]any{"error": code, "message": message})
}

// writeServiceError maps the error taxonomy onto status codes. Anything it does
// not recognise is logged and answered with 500.
func writeServiceError(w http.ResponseWriter, logger logrus.FieldLogger, funcName string, err error) {
	var validationErr *interfaces.ValidationError
	var confirmErr *interfaces.ConfirmationRequiredError

	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":   "validation_error",
			"message": "The submission has invalid fields",
			"fields":  validationErr.Fields,
		})
	case errors.As(err, &confirmErr):
		writeJSON(w, http.StatusConflict, map[string]any{
			"error":   "confirmation_required",
			"message": confirmErr.Error(),
			"pending": confirmErr.Pending,
		})
	case errors.Is(err, normalize.ErrMalformedSubmission):
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
	case errors.Is(err, interfaces.ErrPermissionDenied):
		writeJSONErrorResponse(w, http.StatusForbidden, "permission_denied", "Permission denied")
	case errors.Is(err, interfaces.ErrNotFound):
		writeJSONErrorResponse(w, http.StatusNotFound, "not_found", "Not found")
	case errors.Is(err, interfaces.ErrUsernameTaken):
		writeJSONErrorResponse(w, http.StatusConflict, "username_taken", "Username already taken")
	case errors.Is(err, interfaces.ErrStorageUnavailable):
		if logger != nil {
			config.LogError(logger, "handlers", funcName, "storage unavailable", nil, err)
		}
		writeJSONErrorResponse(w, http.StatusServiceUnavailable, "storage_unavailable", "Storage is busy, try again later")
	default:
		if logger != nil {
			config.LogError(logger, "handlers", funcName, "unexpected error", nil, err)
		}
		writeJSONErrorResponse(w, http.StatusInternalServerError, "internal_error", "Internal server error")
	}
}
