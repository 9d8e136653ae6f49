package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

// sqlTransactor implements [Transactor] on database/sql transactions. It
// works unchanged for every supported driver.
type sqlTransactor struct {
	db     *DB
	logger *logger.Logger
}

func NewTransactor(db *DB, logger *logger.Logger) Transactor {
	return &sqlTransactor{
		db:     db,
		logger: logger,
	}
}

// WithinTransaction begins a transaction, runs fn with repositories bound to
// it and commits. If fn returns an error or the commit fails, every write of
// fn is rolled back and that error is returned.
func (t *sqlTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context, repos TxRepositories) error) error {
	log := logger.FromContext(ctx)

	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*sqlTransactor.WithinTransaction").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	// no-op once committed
	defer tx.Rollback()

	repos := TxRepositories{
		Users: newUserRepository(tx, t.db, t.logger),
		Notes: newNoteRepository(tx, t.db, t.logger),
	}

	if err = fn(ctx, repos); err != nil {
		log.Debug().Err(err).Str("func", "*sqlTransactor.WithinTransaction").Msg("unit of work failed, rolling back")
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*sqlTransactor.WithinTransaction").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
