package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sign-gate/internal/logger"
	"github.com/MKhiriev/go-sign-gate/models"
)

// accountRepository is the SQL implementation of [AccountRepository]. It
// works against the "accounts" table of any supported dialect; the embedded
// [*DB] provides the placeholder format and the error classifier.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type accountRepository struct {
	*DB
	logger *logger.Logger
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Str("driver", db.driver).Msg("creating account repository")
	return &accountRepository{
		DB:     db,
		logger: logger,
	}
}

// FindAccount retrieves the account whose username matches exactly.
//
// Error handling:
//   - no rows → [ErrAccountNotFound].
//   - connection-level failures → [ErrStoreUnavailable].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *accountRepository) FindAccount(ctx context.Context, username string) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindAccountQuery(r.placeholder, username)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.FindAccount").Msg("failed to create query")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var account models.Account
	err = r.QueryRowContext(ctx, query, args...).Scan(&account.Username, &account.PasswordHash, &account.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().Str("func", "*accountRepository.FindAccount").Str("username", username).Msg("account not found")
		return models.Account{}, ErrAccountNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.FindAccount").Str("username", username).Msg("error finding account")
		return models.Account{}, mapError(r.errorClassificator, err)
	}

	return account, nil
}

// InsertAccount stores a new account row.
//
// Error handling:
//   - uniqueness violation on username → [ErrUsernameTaken].
//   - connection-level failures → [ErrStoreUnavailable].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *accountRepository) InsertAccount(ctx context.Context, account models.Account) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertAccountQuery(r.placeholder, account)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.InsertAccount").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*accountRepository.InsertAccount").Str("username", account.Username).Msg("error inserting account")
		return mapError(r.errorClassificator, err)
	}

	log.Debug().Str("func", "*accountRepository.InsertAccount").Str("username", account.Username).Msg("account inserted")
	return nil
}
