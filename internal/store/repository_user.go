package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// userRepository is the SQL implementation of [UserRepository]. It owns the
// "users" table and the "user_note_refs" owner reference list.
//
// q is either the pool or an open transaction, so the same code serves
// both plain calls and [Transactor] units of work.
type userRepository struct {
	q      querier
	db     *DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return newUserRepository(db.DB, db, logger)
}

func newUserRepository(q querier, db *DB, logger *logger.Logger) *userRepository {
	return &userRepository{
		q:      q,
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts a new account and returns it with an empty reference
// list.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - any other driver error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to build query")
		return models.User{}, err
	}

	if _, err = r.q.ExecContext(ctx, query, args...); err != nil {
		if r.db.classify(err) == UniqueViolation {
			log.Debug().Str("func", "*userRepository.CreateUser").Msg("email is already registered")
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to insert user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	user.NoteRefs = []string{}
	return user, nil
}

// FindUserByEmail returns the account registered under email. NoteRefs is
// not loaded.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserQuery(r.db.builder, map[string]any{"email": email})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("failed to build query")
		return models.User{}, err
	}

	user, err := r.scanUser(r.q.QueryRowContext(ctx, query, args...))
	if err != nil {
		if !errors.Is(err, ErrNoUserWasFound) {
			log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("failed to find user")
		}
		return models.User{}, err
	}

	return user, nil
}

// FindUserByID returns the account with NoteRefs in insertion order.
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserQuery(r.db.builder, map[string]any{"user_id": userID})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("failed to build query")
		return models.User{}, err
	}

	user, err := r.scanUser(r.q.QueryRowContext(ctx, query, args...))
	if err != nil {
		if !errors.Is(err, ErrNoUserWasFound) {
			log.Err(err).Str("func", "*userRepository.FindUserByID").Str("user_id", userID).Msg("failed to find user")
		}
		return models.User{}, err
	}

	user.NoteRefs, err = r.findNoteRefs(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Str("user_id", userID).Msg("failed to load note references")
		return models.User{}, err
	}

	return user, nil
}

// AppendNoteRef adds noteID to the end of userID's reference list.
// A missing user is reported as [ErrNoUserWasFound].
func (r *userRepository) AppendNoteRef(ctx context.Context, userID, noteID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertNoteRefQuery(r.db.builder, userID, noteID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.AppendNoteRef").Msg("failed to build query")
		return err
	}

	if _, err = r.q.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.AppendNoteRef").
			Str("user_id", userID).
			Str("note_id", noteID).
			Msg("failed to append note reference")
		if r.db.classify(err) == ForeignKeyViolation {
			return ErrNoUserWasFound
		}
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// RemoveNoteRef detaches noteID from userID's reference list.
func (r *userRepository) RemoveNoteRef(ctx context.Context, userID, noteID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteNoteRefQuery(r.db.builder, userID, noteID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.RemoveNoteRef").Msg("failed to build query")
		return err
	}

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.RemoveNoteRef").
			Str("user_id", userID).
			Str("note_id", noteID).
			Msg("failed to remove note reference")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrNoteRefNotFound
	}

	return nil
}

func (r *userRepository) scanUser(row *sql.Row) (models.User, error) {
	var user models.User
	err := row.Scan(&user.UserID, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return user, nil
}

func (r *userRepository) findNoteRefs(ctx context.Context, userID string) ([]string, error) {
	query, args, err := buildSelectNoteRefsQuery(r.db.builder, userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	refs := make([]string, 0)
	for rows.Next() {
		var noteID string
		if err = rows.Scan(&noteID); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		refs = append(refs, noteID)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return refs, nil
}
