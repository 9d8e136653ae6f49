package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is checked in order; the first match wins.
var errorResponses = []errorResponse{
	{service.ErrInvalidCredentialsInput, http.StatusUnprocessableEntity, "Invalid input, please check your data"},
	{service.ErrInvalidNoteInput, http.StatusUnprocessableEntity, "please enter valid data"},
	{service.ErrEmailAlreadyExists, http.StatusUnprocessableEntity, "User exists already, please login instead"},
	{service.ErrInvalidCredentials, http.StatusForbidden, "Incorrect email or password"},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusForbidden, "Authentication failed!"},
	{service.ErrUnauthorizedAccess, http.StatusUnauthorized, "You are not authorised to access this data"},
	{ErrMissingIdentity, http.StatusUnauthorized, "You are not authorised to access this data"},
	{service.ErrNoteNotFound, http.StatusNotFound, "Could not find note by this id"},
	{service.ErrUserNotFound, http.StatusNotFound, "User does not exist"},
	{ErrRouteNotFound, http.StatusNotFound, "Could not find this route"},
}

// responseFromError returns the status and user-facing message for err.
// Unknown errors become 500 with fallbackMessage.
func responseFromError(err error, fallbackMessage string) (int, string) {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.target) {
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, fallbackMessage
}

// writeError logs err and writes the matching {message} body. Internal
// details never reach the client.
func writeError(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string) {
	status, message := responseFromError(err, fallbackMessage)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, models.ErrorResponse{Message: message}, status)
}

// routeNotFound answers every request that matched no route, including
// known paths with an unsupported method.
func (h *Handler) routeNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrRouteNotFound, "")
}
