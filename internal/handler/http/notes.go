package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/go-chi/chi/v5"
)

const (
	userIDParam = "uid"
	noteIDParam = "nid"
)

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrMissingIdentity, msgFetchNotesFailed)
		return
	}

	notes, err := h.services.NoteService.ListNotes(r.Context(), models.ListNotesRequest{
		RequestedUserID: chi.URLParam(r, userIDParam),
		CallerID:        identity.UserID,
	})
	if err != nil {
		writeError(w, r, err, msgFetchNotesFailed)
		return
	}

	if notes == nil {
		notes = []models.Note{}
	}
	utils.WriteJSON(w, models.NotesResponse{Notes: notes}, http.StatusOK)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrMissingIdentity, msgGetNoteFailed)
		return
	}

	note, err := h.services.NoteService.GetNote(r.Context(), models.NoteRequest{
		NoteID:    chi.URLParam(r, noteIDParam),
		URLUserID: chi.URLParam(r, userIDParam),
		CallerID:  identity.UserID,
	})
	if err != nil {
		writeError(w, r, err, msgGetNoteFailed)
		return
	}

	utils.WriteJSON(w, models.NoteResponse{Note: note}, http.StatusOK)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrMissingIdentity, msgAddNoteFailed)
		return
	}

	var body models.NoteBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidNoteInput, err), msgAddNoteFailed)
		return
	}

	note, err := h.services.NoteService.CreateNote(r.Context(), models.CreateNoteRequest{
		URLUserID:  chi.URLParam(r, userIDParam),
		CallerID:   identity.UserID,
		BodyUserID: body.UserID,
		Title:      body.Title,
		Content:    body.Content,
	})
	if err != nil {
		writeError(w, r, err, msgAddNoteFailed)
		return
	}

	utils.WriteJSON(w, models.NoteResponse{Note: note}, http.StatusCreated)
}

func (h *Handler) editNote(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrMissingIdentity, msgEditNoteFailed)
		return
	}

	var body models.NoteBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidNoteInput, err), msgEditNoteFailed)
		return
	}

	note, err := h.services.NoteService.EditNote(r.Context(), models.EditNoteRequest{
		NoteRequest: models.NoteRequest{
			NoteID:    chi.URLParam(r, noteIDParam),
			URLUserID: chi.URLParam(r, userIDParam),
			CallerID:  identity.UserID,
		},
		Title:   body.Title,
		Content: body.Content,
	})
	if err != nil {
		writeError(w, r, err, msgEditNoteFailed)
		return
	}

	utils.WriteJSON(w, models.NoteResponse{Note: note}, http.StatusCreated)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrMissingIdentity, msgDeleteNoteFailed)
		return
	}

	err := h.services.NoteService.DeleteNote(r.Context(), models.DeleteNoteRequest{
		URLUserID: chi.URLParam(r, userIDParam),
		CallerID:  identity.UserID,
		NoteID:    chi.URLParam(r, noteIDParam),
	})
	if err != nil {
		writeError(w, r, err, msgDeleteNoteFailed)
		return
	}

	utils.WriteJSON(w, nil, http.StatusNoContent)
}
