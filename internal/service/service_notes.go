package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// noteService is the concrete implementation of NoteService. Writes that
// touch both a note and its owner's reference list run through transactor.
type noteService struct {
	noteRepository store.NoteRepository
	userRepository store.UserRepository
	transactor     store.Transactor
	ids            IDGenerator

	// strictOwnership makes GetNote and EditNote require the caller to own
	// the note.
	strictOwnership bool

	logger *logger.Logger
}

func NewNoteService(
	noteRepository store.NoteRepository,
	userRepository store.UserRepository,
	transactor store.Transactor,
	ids IDGenerator,
	cfg config.App,
	logger *logger.Logger,
) NoteService {
	return &noteService{
		noteRepository:  noteRepository,
		userRepository:  userRepository,
		transactor:      transactor,
		ids:             ids,
		strictOwnership: cfg.StrictNoteOwnership,
		logger:          logger,
	}
}

// ListNotes returns the notes of req.RequestedUserID, newest first. Only the
// owner may list them.
func (s *noteService) ListNotes(ctx context.Context, req models.ListNotesRequest) ([]models.Note, error) {
	if req.CallerID == "" || req.CallerID != req.RequestedUserID {
		logger.FromContext(ctx).Warn().Str("func", "*noteService.ListNotes").
			Str("caller_id", req.CallerID).
			Str("requested_user_id", req.RequestedUserID).
			Msg("caller tried to list notes of a different user")
		return nil, ErrUnauthorizedAccess
	}

	notes, err := s.noteRepository.FindNotesByOwner(ctx, req.RequestedUserID)
	if err != nil {
		return nil, fmt.Errorf("fetching notes failed: %w", err)
	}

	return notes, nil
}

// GetNote returns the note with req.NoteID.
func (s *noteService) GetNote(ctx context.Context, req models.NoteRequest) (models.Note, error) {
	if err := s.checkStrictRequest(ctx, req); err != nil {
		return models.Note{}, err
	}

	note, err := s.findNote(ctx, req.NoteID)
	if err != nil {
		return models.Note{}, err
	}

	if err = s.checkStrictOwner(ctx, note, req.CallerID); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

// CreateNote stores a new note and appends it to the owner's reference list
// in one transaction.
//
// Checks run in this order:
//  1. the URL, body and token user ids must be equal (ErrUnauthorizedAccess);
//  2. the owner must exist (ErrUserNotFound).
func (s *noteService) CreateNote(ctx context.Context, req models.CreateNoteRequest) (models.Note, error) {
	log := logger.FromContext(ctx)

	if req.CallerID == "" || req.URLUserID != req.BodyUserID || req.URLUserID != req.CallerID || req.BodyUserID != req.CallerID {
		log.Warn().Str("func", "*noteService.CreateNote").
			Str("caller_id", req.CallerID).
			Str("url_user_id", req.URLUserID).
			Str("body_user_id", req.BodyUserID).
			Msg("user ids do not match")
		return models.Note{}, ErrUnauthorizedAccess
	}

	if _, err := s.userRepository.FindUserByID(ctx, req.CallerID); err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.Note{}, ErrUserNotFound
		}
		return models.Note{}, fmt.Errorf("adding note failed: %w", err)
	}

	now := time.Now().UTC()
	note := models.Note{
		NoteID:    s.ids.Generate(),
		Title:     req.Title,
		Content:   req.Content,
		OwnerID:   req.CallerID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context, repos store.TxRepositories) error {
		if err := repos.Notes.CreateNote(ctx, note); err != nil {
			return err
		}
		return repos.Users.AppendNoteRef(ctx, note.OwnerID, note.NoteID)
	})
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.Note{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*noteService.CreateNote").Str("owner_id", note.OwnerID).Msg("adding note failed")
		return models.Note{}, fmt.Errorf("adding note failed: %w", err)
	}

	log.Info().Str("func", "*noteService.CreateNote").Str("note_id", note.NoteID).Msg("note created")
	return note, nil
}

// EditNote overwrites the title and content of req.NoteID.
func (s *noteService) EditNote(ctx context.Context, req models.EditNoteRequest) (models.Note, error) {
	if err := s.checkStrictRequest(ctx, req.NoteRequest); err != nil {
		return models.Note{}, err
	}

	note, err := s.findNote(ctx, req.NoteID)
	if err != nil {
		return models.Note{}, err
	}

	if err = s.checkStrictOwner(ctx, note, req.CallerID); err != nil {
		return models.Note{}, err
	}

	note.Title = req.Title
	note.Content = req.Content

	updated, err := s.noteRepository.UpdateNote(ctx, note)
	if errors.Is(err, store.ErrNoteNotFound) {
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		return models.Note{}, fmt.Errorf("updating note failed: %w", err)
	}

	return updated, nil
}

// DeleteNote removes req.NoteID and detaches it from its owner's reference
// list in one transaction. The owner is taken from the note, not the caller.
// With strict ownership only the owner may delete.
func (s *noteService) DeleteNote(ctx context.Context, req models.DeleteNoteRequest) error {
	log := logger.FromContext(ctx)

	if req.CallerID == "" || req.CallerID != req.URLUserID {
		log.Warn().Str("func", "*noteService.DeleteNote").
			Str("caller_id", req.CallerID).
			Str("url_user_id", req.URLUserID).
			Msg("caller tried to delete a note on behalf of a different user")
		return ErrUnauthorizedAccess
	}

	note, err := s.findNote(ctx, req.NoteID)
	if err != nil {
		return err
	}

	if err = s.checkStrictOwner(ctx, note, req.CallerID); err != nil {
		return err
	}

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context, repos store.TxRepositories) error {
		if err := repos.Notes.DeleteNote(ctx, note.NoteID); err != nil {
			return err
		}
		return repos.Users.RemoveNoteRef(ctx, note.OwnerID, note.NoteID)
	})
	if errors.Is(err, store.ErrNoteNotFound) {
		return ErrNoteNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*noteService.DeleteNote").Str("note_id", note.NoteID).Msg("deleting note failed")
		return fmt.Errorf("deleting note failed: %w", err)
	}

	log.Info().Str("func", "*noteService.DeleteNote").Str("note_id", note.NoteID).Msg("note deleted")
	return nil
}

func (s *noteService) findNote(ctx context.Context, noteID string) (models.Note, error) {
	note, err := s.noteRepository.FindNoteByID(ctx, noteID)
	if errors.Is(err, store.ErrNoteNotFound) {
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		return models.Note{}, fmt.Errorf("note search failed: %w", err)
	}

	return note, nil
}

// checkStrictRequest rejects a request whose URL user differs from the
// caller. No-op unless strict ownership is on.
func (s *noteService) checkStrictRequest(ctx context.Context, req models.NoteRequest) error {
	if !s.strictOwnership {
		return nil
	}
	if req.CallerID == "" || req.CallerID != req.URLUserID {
		logger.FromContext(ctx).Warn().Str("caller_id", req.CallerID).Str("url_user_id", req.URLUserID).Msg("url user id does not match caller")
		return ErrUnauthorizedAccess
	}
	return nil
}

func (s *noteService) checkStrictOwner(ctx context.Context, note models.Note, callerID string) error {
	if !s.strictOwnership || note.OwnerID == callerID {
		return nil
	}
	logger.FromContext(ctx).Warn().Str("caller_id", callerID).Str("note_id", note.NoteID).Msg("caller does not own the note")
	return ErrUnauthorizedAccess
}
