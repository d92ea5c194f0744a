package store

import (
	"context"

	"github.com/MKhiriev/go-sign-gate/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AccountRepository persists and looks up credential records.
type AccountRepository interface {
	// FindAccount returns the account with exactly the given username, or
	// [ErrAccountNotFound].
	FindAccount(ctx context.Context, username string) (models.Account, error)

	// InsertAccount stores a new account. A row with the same username makes
	// it fail with [ErrUsernameTaken].
	InsertAccount(ctx context.Context, account models.Account) error
}
