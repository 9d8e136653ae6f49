// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// UserRepository is the credential store: user accounts and the per-user
// owner reference list of notes.
type UserRepository interface {
	// CreateUser persists a new account. Returns [ErrEmailAlreadyExists]
	// when the e-mail is already registered.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the account registered under email or
	// [ErrNoUserWasFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the account with its NoteRefs in insertion order
	// or [ErrNoUserWasFound].
	FindUserByID(ctx context.Context, userID string) (models.User, error)

	// AppendNoteRef adds noteID to the end of the reference list of userID.
	AppendNoteRef(ctx context.Context, userID, noteID string) error

	// RemoveNoteRef detaches noteID from the reference list of userID.
	// Returns [ErrNoteRefNotFound] when there was nothing to remove.
	RemoveNoteRef(ctx context.Context, userID, noteID string) error
}

// NoteRepository is the note store.
type NoteRepository interface {
	CreateNote(ctx context.Context, note models.Note) error
	FindNoteByID(ctx context.Context, noteID string) (models.Note, error)
	// FindNotesByOwner returns the notes of ownerID, newest first.
	FindNotesByOwner(ctx context.Context, ownerID string) ([]models.Note, error)
	// UpdateNote overwrites title and content and bumps UpdatedAt.
	UpdateNote(ctx context.Context, note models.Note) (models.Note, error)
	DeleteNote(ctx context.Context, noteID string) error
}

// TxRepositories exposes the repositories bound to one open transaction.
type TxRepositories struct {
	Users UserRepository
	Notes NoteRepository
}

// Transactor runs a unit of work atomically. Every write performed through
// the [TxRepositories] passed to fn becomes visible together on commit, or
// not at all when fn or the commit fails.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context, repos TxRepositories) error) error
}
