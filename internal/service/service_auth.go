package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sign-gate/internal/logger"
	"github.com/MKhiriev/go-sign-gate/internal/store"
	"github.com/MKhiriev/go-sign-gate/models"
)

// authService is the concrete implementation of AuthService.
// It handles account registration and credential verification using an
// AccountRepository for persistence and a PasswordHasher for verifiers.
type authService struct {
	// accountRepository is the data-access layer used to create and look up
	// accounts.
	accountRepository store.AccountRepository

	// hasher produces and checks password verifiers.
	hasher PasswordHasher

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// AccountRepository and PasswordHasher.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(accountRepository store.AccountRepository, hasher PasswordHasher, logger *logger.Logger) AuthService {
	return &authService{
		accountRepository: accountRepository,
		hasher:            hasher,
		logger:            logger,
	}
}

// Register creates a new account.
//
// It checks that the username is free, hashes the password and delegates
// persistence to the AccountRepository. No password policy is applied;
// empty usernames and passwords are accepted.
//
// Returns:
//   - ErrUsernameTaken if an account with the username exists, either found
//     up front or reported by the store's uniqueness constraint on insert.
//   - ErrPasswordTooLong if the password exceeds bcrypt's input limit.
//   - A wrapped storage error if the repository fails (e.g. the store is
//     unavailable — see store.ErrStoreUnavailable).
func (a *authService) Register(ctx context.Context, creds models.Credentials) error {
	log := logger.FromContext(ctx)

	_, err := a.accountRepository.FindAccount(ctx, creds.Username)
	if err == nil {
		log.Info().Object("credentials", creds).Msg("username already taken")
		return ErrUsernameTaken
	}
	if !errors.Is(err, store.ErrAccountNotFound) {
		log.Err(err).Object("credentials", creds).Msg("account lookup failed")
		return fmt.Errorf("account lookup failed: %w", err)
	}

	hash, err := a.hasher.Hash(creds.Password)
	if err != nil {
		log.Err(err).Object("credentials", creds).Msg("password hashing failed")
		return err
	}

	err = a.accountRepository.InsertAccount(ctx, models.Account{Username: creds.Username, PasswordHash: hash})
	if errors.Is(err, store.ErrUsernameTaken) {
		log.Info().Object("credentials", creds).Msg("username taken concurrently")
		return ErrUsernameTaken
	}
	if err != nil {
		log.Err(err).Object("credentials", creds).Msg("account creation ended with error")
		return fmt.Errorf("account creation ended with error: %w", err)
	}

	log.Info().Object("credentials", creds).Msg("account registered")
	return nil
}

// Authenticate verifies creds against the stored account.
//
// Returns the account or:
//   - ErrInvalidCredentials if the username is unknown or the password does
//     not match. Both cases return the same error.
//   - A wrapped storage error if the repository lookup fails.
func (a *authService) Authenticate(ctx context.Context, creds models.Credentials) (models.Account, error) {
	log := logger.FromContext(ctx)

	account, err := a.accountRepository.FindAccount(ctx, creds.Username)
	if errors.Is(err, store.ErrAccountNotFound) {
		log.Info().Object("credentials", creds).Msg("authentication failed: unknown username")
		return models.Account{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Object("credentials", creds).Msg("account search by username failed")
		return models.Account{}, fmt.Errorf("account search by username failed: %w", err)
	}

	if err = a.hasher.Compare(account.PasswordHash, creds.Password); err != nil {
		log.Info().Object("credentials", creds).Msg("authentication failed: wrong password")
		return models.Account{}, ErrInvalidCredentials
	}

	return account, nil
}
