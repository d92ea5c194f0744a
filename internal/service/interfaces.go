package service

import (
	"context"

	"github.com/MKhiriev/go-sign-gate/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers and authenticates accounts.
type AuthService interface {
	// Register creates an account for creds. It fails with
	// [ErrUsernameTaken] when the username is already in use.
	Register(ctx context.Context, creds models.Credentials) error

	// Authenticate returns the account matching creds or
	// [ErrInvalidCredentials].
	Authenticate(ctx context.Context, creds models.Credentials) (models.Account, error)
}

// PasswordHasher turns passwords into salted one-way verifiers and checks
// passwords against them.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
