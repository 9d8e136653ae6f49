package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidCredentialsInput, err), msgSignupFailed)
		return
	}

	user, err := h.services.AuthService.Signup(ctx, creds)
	if err != nil {
		writeError(w, r, err, msgSignupFailed)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		writeError(w, r, err, msgSignupFailed)
		return
	}

	log.Debug().Str("user_id", user.UserID).Msg("user signed up")
	utils.WriteJSON(w, models.AuthResponse{UserID: user.UserID, Email: user.Email, Token: token.SignedString}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidCredentialsInput, err), msgLoginFailed)
		return
	}

	user, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		writeError(w, r, err, msgLoginFailed)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		writeError(w, r, err, msgLoginFailed)
		return
	}

	log.Debug().Str("user_id", user.UserID).Msg("user successfully logged in")
	utils.WriteJSON(w, models.AuthResponse{UserID: user.UserID, Email: user.Email, Token: token.SignedString}, http.StatusOK)
}
