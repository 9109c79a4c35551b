package user

import (
	"context"
	"errors"
)

// ErrUserNotFound is returned when a user record is not found.
var ErrUserNotFound = errors.New("user not found")

// Repository provides operations on the users table. Upsert and RotateToken
// are single-statement and therefore atomic at the record level; concurrent
// logins for the same id serialize in the database, not in callers.
type Repository interface {
	FindByID(ctx context.Context, id string) (*User, error)
	Upsert(ctx context.Context, id string, profile Profile, token string) (*User, error)
	RotateToken(ctx context.Context, id string, token string) (*User, error)
}
