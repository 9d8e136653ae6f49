// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// AuthService registers users, checks their credentials and issues and
// verifies bearer tokens.
type AuthService interface {
	// Signup creates an account for creds and returns it.
	Signup(ctx context.Context, creds models.Credentials) (models.User, error)

	// Login returns the account matching creds.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)

	// CreateToken issues a signed token for user. No storage round-trip.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken verifies tokenString and returns the decoded token.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// NoteService manages the notes of a user and keeps the owner reference list
// consistent with them.
type NoteService interface {
	ListNotes(ctx context.Context, req models.ListNotesRequest) ([]models.Note, error)
	GetNote(ctx context.Context, req models.NoteRequest) (models.Note, error)
	CreateNote(ctx context.Context, req models.CreateNoteRequest) (models.Note, error)
	EditNote(ctx context.Context, req models.EditNoteRequest) (models.Note, error)
	DeleteNote(ctx context.Context, req models.DeleteNoteRequest) error
}

// NoteServiceWrapper decorates a NoteService with additional behaviour such
// as input validation.
type NoteServiceWrapper interface {
	Wrap(NoteService) NoteService
}

// IDGenerator issues identifiers for new users and notes.
type IDGenerator interface {
	Generate() string
}
