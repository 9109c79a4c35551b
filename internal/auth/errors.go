package auth

import (
	"errors"
	"fmt"
)

// ErrProviderConfig is returned when identity provider credentials are
// missing or invalid. Not retryable.
var ErrProviderConfig = errors.New("identity provider is not configured")

// ErrProviderExchange is returned when the provider rejects an authorization
// code or returns an incomplete profile. Partial profiles are never trusted.
var ErrProviderExchange = errors.New("identity provider exchange failed")

// ErrDirectory is returned when the user directory fails for a reason other
// than a missing record.
var ErrDirectory = errors.New("user directory error")

// OperationError wraps any failure crossing the auth boundary so the
// transport layer sees a uniform error shape. The cause stays reachable
// through errors.Is/As.
type OperationError struct {
	Op  string
	Err error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("auth %s: %v", e.Op, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

func opErr(op string, err error) error {
	return &OperationError{Op: op, Err: err}
}
