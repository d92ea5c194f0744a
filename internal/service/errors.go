package service

import (
	"errors"

	"github.com/MKhiriev/go-sign-gate/internal/store"
)

var (
	// ErrUsernameTaken is returned by Register when the username already
	// belongs to an account. It is the store sentinel so that a late
	// uniqueness conflict on insert matches too.
	ErrUsernameTaken = store.ErrUsernameTaken

	// ErrInvalidCredentials is returned by Authenticate both for an unknown
	// username and for a wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrPasswordTooLong is returned when a password exceeds bcrypt's
	// 72-byte input limit.
	ErrPasswordTooLong = errors.New("password is too long")

	ErrHashingPassword = errors.New("error hashing password")
)
