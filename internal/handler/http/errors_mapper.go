package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-tweet/internal/logger"
	"github.com/MKhiriev/go-tweet/internal/service"
	"github.com/MKhiriev/go-tweet/internal/utils"
	"github.com/MKhiriev/go-tweet/internal/validators"
	"github.com/MKhiriev/go-tweet/models"
)

const (
	msgSomethingWentWrong = "Something went wrong!"
	msgInvalidJSON        = "Invalid JSON was passed"
)

var errorStatusMap = map[error]int{
	service.ErrValidation:        http.StatusBadRequest,
	service.ErrAuth:              http.StatusUnauthorized,
	service.ErrForbidden:         http.StatusForbidden,
	service.ErrNotFound:          http.StatusNotFound,
	service.ErrConflict:          http.StatusConflict,
	service.ErrSearchUnavailable: http.StatusServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError renders err as {"message", "details"}. Errors outside the
// service taxonomy are logged and answered with a generic 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	message, details, ok := service.Message(err)
	if !ok || status == http.StatusInternalServerError {
		log.Err(err).Msg("request failed with internal error")
		status, message, details = http.StatusInternalServerError, msgSomethingWentWrong, nil
	} else {
		log.Info().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, models.MessageResponse{Message: message, Details: details}, status)
}

// decodeJSON reads the request body into v. Malformed payloads produce a
// validation error so that writeError answers 400.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return service.NewValidationError(msgInvalidJSON, validators.ToDetails(err))
	}
	return nil
}
