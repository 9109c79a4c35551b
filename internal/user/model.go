package user

import "time"

// User represents a row in the users table. The id is the identity
// provider's subject id and never changes after the record is created.
type User struct {
	ID        string
	Name      string
	Avatar    string
	Contact   string
	Token     *string // nil until the first login completes
	WalletID  *string // nil when no payout wallet is linked
	Income    int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Profile holds the identity fields refreshed from the provider on every
// code-path login.
type Profile struct {
	Name    string
	Avatar  string
	Contact string
}
