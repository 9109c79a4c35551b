package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository implements Repository using pgxpool.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new Repository backed by the given connection pool.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &PostgresRepository{pool: pool}
}

// FindByID retrieves a single user by its provider subject id.
func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*User, error) {
	query := `
		SELECT id, name, avatar, contact, token, wallet_id, income,
		       created_at, updated_at
		FROM users
		WHERE id = $1`

	var u User
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Name, &u.Avatar, &u.Contact,
		&u.Token, &u.WalletID, &u.Income,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("querying user: %w", err)
	}

	return &u, nil
}

// Upsert creates the user record on first login and refreshes profile fields
// plus token on every subsequent one. The conflict target is the primary key,
// so two concurrent logins for the same subject id serialize here.
func (r *PostgresRepository) Upsert(ctx context.Context, id string, profile Profile, token string) (*User, error) {
	query := `
		INSERT INTO users (id, name, avatar, contact, token)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
		    avatar = EXCLUDED.avatar,
		    contact = EXCLUDED.contact,
		    token = EXCLUDED.token,
		    updated_at = NOW()
		RETURNING id, name, avatar, contact, token, wallet_id, income,
		          created_at, updated_at`

	var u User
	err := r.pool.QueryRow(ctx, query, id, profile.Name, profile.Avatar, profile.Contact, token).Scan(
		&u.ID, &u.Name, &u.Avatar, &u.Contact,
		&u.Token, &u.WalletID, &u.Income,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("upserting user: %w", err)
	}

	return &u, nil
}

// RotateToken replaces the session token on an existing user, returning the
// updated record. Returns ErrUserNotFound if no record matches the id.
func (r *PostgresRepository) RotateToken(ctx context.Context, id string, token string) (*User, error) {
	query := `
		UPDATE users
		SET token = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, avatar, contact, token, wallet_id, income,
		          created_at, updated_at`

	var u User
	err := r.pool.QueryRow(ctx, query, id, token).Scan(
		&u.ID, &u.Name, &u.Avatar, &u.Contact,
		&u.Token, &u.WalletID, &u.Income,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("rotating user token: %w", err)
	}

	return &u, nil
}
