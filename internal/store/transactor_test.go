// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTransactor(t *testing.T) (Transactor, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return NewTransactor(newDBFromSQL(db), logger.Nop()), mock
}

func createNoteUnit(note models.Note) func(ctx context.Context, repos TxRepositories) error {
	return func(ctx context.Context, repos TxRepositories) error {
		if err := repos.Notes.CreateNote(ctx, note); err != nil {
			return err
		}
		return repos.Users.AppendNoteRef(ctx, note.OwnerID, note.NoteID)
	}
}

func TestTransactor_CommitsBothWrites(t *testing.T) {
	tr, mock := newTestTransactor(t)
	now := time.Now().UTC()
	note := models.Note{NoteID: "n1", OwnerID: "u1", Title: "T1", CreatedAt: now, UpdatedAt: now}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(insertNoteSQL)).
		WithArgs("n1", "u1", "T1", "", now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(insertRefSQL)).
		WithArgs("u1", "n1").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, tr.WithinTransaction(testContext(), createNoteUnit(note)))
	require.NoError(t, mock.ExpectationsWereMet())
}

// TestTransactor_SecondWriteFailureRollsBack forces the reference-list write
// to fail after the note insert succeeded: nothing may be committed.
func TestTransactor_SecondWriteFailureRollsBack(t *testing.T) {
	tr, mock := newTestTransactor(t)
	note := models.Note{NoteID: "n1", OwnerID: "u1", Title: "T1"}
	failure := errors.New("disk full")

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(insertNoteSQL)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(insertRefSQL)).
		WillReturnError(failure)
	mock.ExpectRollback()

	err := tr.WithinTransaction(testContext(), createNoteUnit(note))
	require.Error(t, err)
	assert.ErrorIs(t, err, failure)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactor_DeleteUnitRollsBackWhenRefMissing(t *testing.T) {
	tr, mock := newTestTransactor(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(deleteNoteSQL)).
		WithArgs("n1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(deleteRefSQL)).
		WithArgs("n1", "u1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := tr.WithinTransaction(testContext(), func(ctx context.Context, repos TxRepositories) error {
		if err := repos.Notes.DeleteNote(ctx, "n1"); err != nil {
			return err
		}
		return repos.Users.RemoveNoteRef(ctx, "u1", "n1")
	})

	assert.ErrorIs(t, err, ErrNoteRefNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactor_BeginFails(t *testing.T) {
	tr, mock := newTestTransactor(t)
	mock.ExpectBegin().WillReturnError(errors.New("cannot begin"))

	called := false
	err := tr.WithinTransaction(testContext(), func(context.Context, TxRepositories) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, ErrBeginningTransaction)
	assert.False(t, called)
}

func TestTransactor_CommitFails(t *testing.T) {
	tr, mock := newTestTransactor(t)
	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(errors.New("deferred constraint"))

	err := tr.WithinTransaction(testContext(), func(context.Context, TxRepositories) error {
		return nil
	})

	assert.ErrorIs(t, err, ErrCommitingTransaction)
	require.NoError(t, mock.ExpectationsWereMet())
}
