// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the notes HTTP API.
//
// The primary abstraction is [NotesAPI], implemented over resty by
// [NewHTTPNotesAPI]. Non-2xx responses are mapped by mapHTTPError to the
// sentinel errors in errors.go so that callers can use [errors.Is]
// (e.g. [ErrValidation] for 422, [ErrForbidden] for 403). The wrapped
// error text carries the server's message.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// NotesAPI talks to the notes server. After a successful Signup or Login the
// returned token is kept and sent as a bearer token on every later call.
type NotesAPI interface {
	// SetToken stores the bearer token used by authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token or an empty string.
	Token() string

	Signup(ctx context.Context, creds models.Credentials) (models.AuthResponse, error)
	Login(ctx context.Context, creds models.Credentials) (models.AuthResponse, error)

	// ListNotes returns the notes of userID, newest first.
	ListNotes(ctx context.Context, userID string) ([]models.Note, error)

	// CreateNote creates a note owned by userID.
	CreateNote(ctx context.Context, userID string, body models.NoteBody) (models.Note, error)

	GetNote(ctx context.Context, userID, noteID string) (models.Note, error)
	EditNote(ctx context.Context, userID, noteID string, body models.NoteBody) (models.Note, error)
	DeleteNote(ctx context.Context, userID, noteID string) error
}
