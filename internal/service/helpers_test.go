package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/mock"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var errStorage = errors.New("storage error")

// fixedIDs hands out ids in order, then repeats the last one.
type fixedIDs struct {
	ids  []string
	next int
}

func (f *fixedIDs) Generate() string {
	id := f.ids[f.next]
	if f.next < len(f.ids)-1 {
		f.next++
	}
	return id
}

func newIDs(ids ...string) *fixedIDs {
	return &fixedIDs{ids: ids}
}

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:     "test-sign-key",
		TokenIssuer:      "go-notes-keeper-test",
		TokenDuration:    time.Hour,
		PasswordHashCost: bcrypt.MinCost,
	}
}

// runTxWith makes the mocked transactor run fn against the given repositories,
// returning whatever fn returns.
func runTxWith(tx *mock.MockTransactor, users store.UserRepository, notes store.NoteRepository) *gomock.Call {
	return tx.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, store.TxRepositories) error) error {
			return fn(ctx, store.TxRepositories{Users: users, Notes: notes})
		})
}
