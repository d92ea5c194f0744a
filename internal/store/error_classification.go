package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
)

// ErrorClassification is the result type returned by
// [ErrorClassificator.Classify].
type ErrorClassification int

const (
	// Unclassified errors are surfaced as "unexpected DB error".
	Unclassified ErrorClassification = iota

	// Conflict means a uniqueness constraint rejected the row.
	Conflict

	// Unavailable means the store could not serve the request at all.
	Unavailable
)

// ErrorClassificator maps a driver-specific error onto an
// [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// classifyCommon recognises driver-independent availability failures.
func classifyCommon(err error) ErrorClassification {
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, context.DeadlineExceeded) {
		return Unavailable
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return Unavailable
	}

	return Unclassified
}

// mapError translates err into one of the package sentinels according to
// classificator. Unclassified errors are wrapped as "unexpected DB error".
func mapError(classificator ErrorClassificator, err error) error {
	switch classificator.Classify(err) {
	case Conflict:
		return ErrUsernameTaken
	case Unavailable:
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	default:
		return fmt.Errorf("unexpected DB error: %w", err)
	}
}
