package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
)

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// It extracts the token from the "Authorization: Bearer <token>" header,
// validates it via [service.AuthService.ParseToken] and stores the caller
// identity in the request context (see [utils.WithIdentity]).
//
// Every failure, including a missing or malformed header, is answered with
// 403 and the message "Authentication failed!".
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			writeError(w, r, fmt.Errorf("%w: %w", service.ErrTokenIsExpiredOrInvalid, ErrEmptyAuthorizationHeader), "")
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %w: %w", service.ErrTokenIsExpiredOrInvalid, ErrInvalidAuthorizationHeader, err), "")
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", service.ErrTokenIsExpiredOrInvalid, err), "")
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(ctx, token.Identity())))
	})
}
