package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// noteRepository is the SQL implementation of [NoteRepository] over the
// "notes" table.
type noteRepository struct {
	q      querier
	db     *DB
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return newNoteRepository(db.DB, db, logger)
}

func newNoteRepository(q querier, db *DB, logger *logger.Logger) *noteRepository {
	return &noteRepository{
		q:      q,
		db:     db,
		logger: logger,
	}
}

// CreateNote inserts note as given. A missing owner is reported as
// [ErrNoUserWasFound].
func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertNoteQuery(r.db.builder, note)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("failed to build query")
		return err
	}

	if _, err = r.q.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").
			Str("note_id", note.NoteID).
			Str("owner_id", note.OwnerID).
			Msg("failed to insert note")
		if r.db.classify(err) == ForeignKeyViolation {
			return ErrNoUserWasFound
		}
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *noteRepository) FindNoteByID(ctx context.Context, noteID string) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectNoteByIDQuery(r.db.builder, noteID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.FindNoteByID").Msg("failed to build query")
		return models.Note{}, err
	}

	note, err := scanNote(r.q.QueryRowContext(ctx, query, args...))
	if err != nil {
		if !errors.Is(err, ErrNoteNotFound) {
			log.Err(err).Str("func", "*noteRepository.FindNoteByID").Str("note_id", noteID).Msg("failed to find note")
		}
		return models.Note{}, err
	}

	return note, nil
}

// FindNotesByOwner returns every note of ownerID, newest first. An owner
// without notes yields an empty, non-nil slice.
func (r *noteRepository) FindNotesByOwner(ctx context.Context, ownerID string) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectNotesByOwnerQuery(r.db.builder, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.FindNotesByOwner").Msg("failed to build query")
		return nil, err
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.FindNotesByOwner").Str("owner_id", ownerID).Msg("failed to query notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		var note models.Note
		if err = rows.Scan(&note.NoteID, &note.OwnerID, &note.Title, &note.Content, &note.CreatedAt, &note.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*noteRepository.FindNotesByOwner").Str("owner_id", ownerID).Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		notes = append(notes, note)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*noteRepository.FindNotesByOwner").Str("owner_id", ownerID).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}

// UpdateNote overwrites title and content of note.NoteID, sets updated_at
// to the current time and returns the stored row.
func (r *noteRepository) UpdateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateNoteQuery(r.db.builder, note, time.Now().UTC())
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.UpdateNote").Msg("failed to build query")
		return models.Note{}, err
	}

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.UpdateNote").Str("note_id", note.NoteID).Msg("failed to update note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return models.Note{}, ErrNoteNotFound
	}

	return r.FindNoteByID(ctx, note.NoteID)
}

func (r *noteRepository) DeleteNote(ctx context.Context, noteID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteNoteQuery(r.db.builder, noteID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Msg("failed to build query")
		return err
	}

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Str("note_id", noteID).Msg("failed to delete note")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

func scanNote(row *sql.Row) (models.Note, error) {
	var note models.Note
	err := row.Scan(&note.NoteID, &note.OwnerID, &note.Title, &note.Content, &note.CreatedAt, &note.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return note, nil
}
