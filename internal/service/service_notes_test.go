// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/mock"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type noteServiceDeps struct {
	notes *mock.MockNoteRepository
	users *mock.MockUserRepository
	tx    *mock.MockTransactor
}

func newTestNoteService(t *testing.T, strict bool) (NoteService, noteServiceDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := noteServiceDeps{
		notes: mock.NewMockNoteRepository(ctrl),
		users: mock.NewMockUserRepository(ctrl),
		tx:    mock.NewMockTransactor(ctrl),
	}
	cfg := testAppConfig()
	cfg.StrictNoteOwnership = strict
	svc := NewNoteService(deps.notes, deps.users, deps.tx, newIDs("note-1", "note-2"), cfg, logger.Nop())
	return svc, deps
}

func sampleNote() models.Note {
	now := time.Now().UTC()
	return models.Note{NoteID: "note-1", Title: "T1", Content: "C1", OwnerID: "user-A", CreatedAt: now, UpdatedAt: now}
}

// ─────────────────────────────────────────────
// ListNotes
// ─────────────────────────────────────────────

func TestNoteService_ListNotes_Success(t *testing.T) {
	svc, deps := newTestNoteService(t, false)
	want := []models.Note{sampleNote()}
	deps.notes.EXPECT().FindNotesByOwner(gomock.Any(), "user-A").Return(want, nil)

	got, err := svc.ListNotes(context.Background(), models.ListNotesRequest{RequestedUserID: "user-A", CallerID: "user-A"})

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestNoteService_ListNotes_CallerMismatch(t *testing.T) {
	tests := []struct {
		name string
		req  models.ListNotesRequest
	}{
		{name: "other user", req: models.ListNotesRequest{RequestedUserID: "user-B", CallerID: "user-A"}},
		{name: "empty caller", req: models.ListNotesRequest{RequestedUserID: "", CallerID: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestNoteService(t, false)

			_, err := svc.ListNotes(context.Background(), tt.req)

			assert.ErrorIs(t, err, ErrUnauthorizedAccess)
		})
	}
}

func TestNoteService_ListNotes_StorageError(t *testing.T) {
	svc, deps := newTestNoteService(t, false)
	deps.notes.EXPECT().FindNotesByOwner(gomock.Any(), "user-A").Return(nil, errStorage)

	_, err := svc.ListNotes(context.Background(), models.ListNotesRequest{RequestedUserID: "user-A", CallerID: "user-A"})

	assert.ErrorIs(t, err, errStorage)
}

// ─────────────────────────────────────────────
// GetNote
// ─────────────────────────────────────────────

func TestNoteService_GetNote(t *testing.T) {
	note := sampleNote()

	tests := []struct {
		name    string
		strict  bool
		req     models.NoteRequest
		findErr error
		lookup  bool
		wantErr error
	}{
		{
			name:   "any caller without strict ownership",
			req:    models.NoteRequest{NoteID: "note-1", URLUserID: "user-B", CallerID: "user-B"},
			lookup: true,
		},
		{
			name:    "not found",
			req:     models.NoteRequest{NoteID: "note-1", URLUserID: "user-A", CallerID: "user-A"},
			findErr: store.ErrNoteNotFound,
			lookup:  true,
			wantErr: ErrNoteNotFound,
		},
		{
			name:    "storage failure",
			req:     models.NoteRequest{NoteID: "note-1", URLUserID: "user-A", CallerID: "user-A"},
			findErr: errStorage,
			lookup:  true,
			wantErr: errStorage,
		},
		{
			name:   "owner with strict ownership",
			strict: true,
			req:    models.NoteRequest{NoteID: "note-1", URLUserID: "user-A", CallerID: "user-A"},
			lookup: true,
		},
		{
			name:    "non-owner with strict ownership",
			strict:  true,
			req:     models.NoteRequest{NoteID: "note-1", URLUserID: "user-B", CallerID: "user-B"},
			lookup:  true,
			wantErr: ErrUnauthorizedAccess,
		},
		{
			name:    "url user differs from caller with strict ownership",
			strict:  true,
			req:     models.NoteRequest{NoteID: "note-1", URLUserID: "user-B", CallerID: "user-A"},
			wantErr: ErrUnauthorizedAccess,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := newTestNoteService(t, tt.strict)
			if tt.lookup {
				found := note
				if tt.findErr != nil {
					found = models.Note{}
				}
				deps.notes.EXPECT().FindNoteByID(gomock.Any(), "note-1").Return(found, tt.findErr)
			}

			got, err := svc.GetNote(context.Background(), tt.req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, note, got)
		})
	}
}

// ─────────────────────────────────────────────
// CreateNote
// ─────────────────────────────────────────────

func validCreateRequest() models.CreateNoteRequest {
	return models.CreateNoteRequest{URLUserID: "user-A", CallerID: "user-A", BodyUserID: "user-A", Title: "T1"}
}

func TestNoteService_CreateNote_Success(t *testing.T) {
	svc, deps := newTestNoteService(t, false)

	deps.users.EXPECT().FindUserByID(gomock.Any(), "user-A").Return(models.User{UserID: "user-A"}, nil)
	runTxWith(deps.tx, deps.users, deps.notes)
	gomock.InOrder(
		deps.notes.EXPECT().CreateNote(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n models.Note) error {
				assert.Equal(t, "note-1", n.NoteID)
				assert.Equal(t, "user-A", n.OwnerID)
				assert.Equal(t, "T1", n.Title)
				assert.Empty(t, n.Content)
				assert.False(t, n.CreatedAt.IsZero())
				return nil
			}),
		deps.users.EXPECT().AppendNoteRef(gomock.Any(), "user-A", "note-1").Return(nil),
	)

	note, err := svc.CreateNote(context.Background(), validCreateRequest())

	require.NoError(t, err)
	assert.Equal(t, "note-1", note.NoteID)
	assert.Equal(t, "user-A", note.OwnerID)
	assert.Equal(t, "T1", note.Title)
}

func TestNoteService_CreateNote_IdentityMismatch(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.CreateNoteRequest)
	}{
		{name: "url differs", mutate: func(r *models.CreateNoteRequest) { r.URLUserID = "user-B" }},
		{name: "body differs", mutate: func(r *models.CreateNoteRequest) { r.BodyUserID = "user-B" }},
		{name: "caller differs", mutate: func(r *models.CreateNoteRequest) { r.CallerID = "user-B" }},
		{name: "body missing", mutate: func(r *models.CreateNoteRequest) { r.BodyUserID = "" }},
		{name: "all empty", mutate: func(r *models.CreateNoteRequest) { r.URLUserID, r.BodyUserID, r.CallerID = "", "", "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestNoteService(t, false)
			req := validCreateRequest()
			tt.mutate(&req)

			_, err := svc.CreateNote(context.Background(), req)

			assert.ErrorIs(t, err, ErrUnauthorizedAccess)
		})
	}
}

func TestNoteService_CreateNote_OwnerMissing(t *testing.T) {
	svc, deps := newTestNoteService(t, false)
	deps.users.EXPECT().FindUserByID(gomock.Any(), "user-A").Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.CreateNote(context.Background(), validCreateRequest())

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestNoteService_CreateNote_SecondWriteFails(t *testing.T) {
	svc, deps := newTestNoteService(t, false)

	deps.users.EXPECT().FindUserByID(gomock.Any(), "user-A").Return(models.User{UserID: "user-A"}, nil)
	runTxWith(deps.tx, deps.users, deps.notes)
	deps.notes.EXPECT().CreateNote(gomock.Any(), gomock.Any()).Return(nil)
	deps.users.EXPECT().AppendNoteRef(gomock.Any(), "user-A", "note-1").Return(errStorage)

	_, err := svc.CreateNote(context.Background(), validCreateRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, errStorage)
}

func TestNoteService_CreateNote_OwnerVanishedInsideTransaction(t *testing.T) {
	svc, deps := newTestNoteService(t, false)

	deps.users.EXPECT().FindUserByID(gomock.Any(), "user-A").Return(models.User{UserID: "user-A"}, nil)
	runTxWith(deps.tx, deps.users, deps.notes)
	deps.notes.EXPECT().CreateNote(gomock.Any(), gomock.Any()).Return(store.ErrNoUserWasFound)

	_, err := svc.CreateNote(context.Background(), validCreateRequest())

	assert.ErrorIs(t, err, ErrUserNotFound)
}

// ─────────────────────────────────────────────
// EditNote
// ─────────────────────────────────────────────

func TestNoteService_EditNote_Success(t *testing.T) {
	svc, deps := newTestNoteService(t, false)
	note := sampleNote()
	deps.notes.EXPECT().FindNoteByID(gomock.Any(), "note-1").Return(note, nil)
	deps.notes.EXPECT().UpdateNote(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n models.Note) (models.Note, error) {
			assert.Equal(t, "new title", n.Title)
			assert.Equal(t, "new content", n.Content)
			n.UpdatedAt = n.UpdatedAt.Add(time.Second)
			return n, nil
		})

	got, err := svc.EditNote(context.Background(), models.EditNoteRequest{
		NoteRequest: models.NoteRequest{NoteID: "note-1", URLUserID: "user-B", CallerID: "user-B"},
		Title:       "new title",
		Content:     "new content",
	})

	require.NoError(t, err)
	assert.Equal(t, "new title", got.Title)
	assert.Equal(t, "user-A", got.OwnerID)
	assert.True(t, got.UpdatedAt.After(note.UpdatedAt))
}

func TestNoteService_EditNote_NotFound(t *testing.T) {
	svc, deps := newTestNoteService(t, false)
	deps.notes.EXPECT().FindNoteByID(gomock.Any(), "missing").Return(models.Note{}, store.ErrNoteNotFound)

	_, err := svc.EditNote(context.Background(), models.EditNoteRequest{
		NoteRequest: models.NoteRequest{NoteID: "missing"},
		Title:       "t",
	})

	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestNoteService_EditNote_DeletedConcurrently(t *testing.T) {
	svc, deps := newTestNoteService(t, false)
	deps.notes.EXPECT().FindNoteByID(gomock.Any(), "note-1").Return(sampleNote(), nil)
	deps.notes.EXPECT().UpdateNote(gomock.Any(), gomock.Any()).Return(models.Note{}, store.ErrNoteNotFound)

	_, err := svc.EditNote(context.Background(), models.EditNoteRequest{
		NoteRequest: models.NoteRequest{NoteID: "note-1"},
		Title:       "t",
	})

	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestNoteService_EditNote_StrictNonOwner(t *testing.T) {
	svc, deps := newTestNoteService(t, true)
	deps.notes.EXPECT().FindNoteByID(gomock.Any(), "note-1").Return(sampleNote(), nil)

	_, err := svc.EditNote(context.Background(), models.EditNoteRequest{
		NoteRequest: models.NoteRequest{NoteID: "note-1", URLUserID: "user-B", CallerID: "user-B"},
		Title:       "t",
	})

	assert.ErrorIs(t, err, ErrUnauthorizedAccess)
}

// ─────────────────────────────────────────────
// DeleteNote
// ─────────────────────────────────────────────

func TestNoteService_DeleteNote_Success(t *testing.T) {
	svc, deps := newTestNoteService(t, false)
	deps.notes.EXPECT().FindNoteByID(gomock.Any(), "note-1").Return(sampleNote(), nil)
	runTxWith(deps.tx, deps.users, deps.notes)
	gomock.InOrder(
		deps.notes.EXPECT().DeleteNote(gomock.Any(), "note-1").Return(nil),
		deps.users.EXPECT().RemoveNoteRef(gomock.Any(), "user-A", "note-1").Return(nil),
	)

	err := svc.DeleteNote(context.Background(), models.DeleteNoteRequest{URLUserID: "user-A", CallerID: "user-A", NoteID: "note-1"})

	require.NoError(t, err)
}

func TestNoteService_DeleteNote_DetachesFromNoteOwner(t *testing.T) {
	svc, deps := newTestNoteService(t, false)
	note := sampleNote()
	note.OwnerID = "user-owner"
	deps.notes.EXPECT().FindNoteByID(gomock.Any(), "note-1").Return(note, nil)
	runTxWith(deps.tx, deps.users, deps.notes)
	deps.notes.EXPECT().DeleteNote(gomock.Any(), "note-1").Return(nil)
	deps.users.EXPECT().RemoveNoteRef(gomock.Any(), "user-owner", "note-1").Return(nil)

	err := svc.DeleteNote(context.Background(), models.DeleteNoteRequest{URLUserID: "user-A", CallerID: "user-A", NoteID: "note-1"})

	require.NoError(t, err)
}

func TestNoteService_DeleteNote_StrictNonOwner(t *testing.T) {
	svc, deps := newTestNoteService(t, true)
	deps.notes.EXPECT().FindNoteByID(gomock.Any(), "note-1").Return(sampleNote(), nil)
	deps.tx.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).Times(0)

	err := svc.DeleteNote(context.Background(), models.DeleteNoteRequest{URLUserID: "user-B", CallerID: "user-B", NoteID: "note-1"})

	assert.ErrorIs(t, err, ErrUnauthorizedAccess)
}

func TestNoteService_DeleteNote_StrictOwner(t *testing.T) {
	svc, deps := newTestNoteService(t, true)
	deps.notes.EXPECT().FindNoteByID(gomock.Any(), "note-1").Return(sampleNote(), nil)
	runTxWith(deps.tx, deps.users, deps.notes)
	deps.notes.EXPECT().DeleteNote(gomock.Any(), "note-1").Return(nil)
	deps.users.EXPECT().RemoveNoteRef(gomock.Any(), "user-A", "note-1").Return(nil)

	err := svc.DeleteNote(context.Background(), models.DeleteNoteRequest{URLUserID: "user-A", CallerID: "user-A", NoteID: "note-1"})

	require.NoError(t, err)
}

func TestNoteService_DeleteNote_CallerMismatch(t *testing.T) {
	svc, _ := newTestNoteService(t, false)

	err := svc.DeleteNote(context.Background(), models.DeleteNoteRequest{URLUserID: "user-B", CallerID: "user-A", NoteID: "note-1"})

	assert.ErrorIs(t, err, ErrUnauthorizedAccess)
}

func TestNoteService_DeleteNote_NotFound(t *testing.T) {
	svc, deps := newTestNoteService(t, false)
	deps.notes.EXPECT().FindNoteByID(gomock.Any(), "note-1").Return(models.Note{}, store.ErrNoteNotFound)

	err := svc.DeleteNote(context.Background(), models.DeleteNoteRequest{URLUserID: "user-A", CallerID: "user-A", NoteID: "note-1"})

	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestNoteService_DeleteNote_SecondWriteFails(t *testing.T) {
	svc, deps := newTestNoteService(t, false)
	deps.notes.EXPECT().FindNoteByID(gomock.Any(), "note-1").Return(sampleNote(), nil)
	runTxWith(deps.tx, deps.users, deps.notes)
	deps.notes.EXPECT().DeleteNote(gomock.Any(), "note-1").Return(nil)
	deps.users.EXPECT().RemoveNoteRef(gomock.Any(), "user-A", "note-1").Return(store.ErrNoteRefNotFound)

	err := svc.DeleteNote(context.Background(), models.DeleteNoteRequest{URLUserID: "user-A", CallerID: "user-A", NoteID: "note-1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrNoteRefNotFound)
	assert.NotErrorIs(t, err, ErrNoteNotFound)
}
