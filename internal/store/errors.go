package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameTaken is returned when an insert is rejected because an
	// account with the same username already exists.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrAccountNotFound is returned when no account matches the requested
	// username.
	ErrAccountNotFound = errors.New("account was not found")

	// ErrStoreUnavailable is returned when the database cannot be reached or
	// refuses to serve the request (lost connection, too many connections,
	// lock timeout, deadline exceeded).
	ErrStoreUnavailable = errors.New("credential store is unavailable")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrUnsupportedDriver is returned when the configured driver has no
	// connector.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
