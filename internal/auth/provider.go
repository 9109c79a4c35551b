package auth

import "context"

// Profile is the identity data returned by the provider exchange. All four
// fields are mandatory; implementations must reject incomplete profiles with
// ErrProviderExchange rather than return a partial one.
type Profile struct {
	ID      string
	Name    string
	Avatar  string
	Contact string
}

// IdentityProvider abstracts the external identity provider. Exchange trades
// an authorization code for profile data and must honor ctx cancellation;
// AuthURL is pure and fails with ErrProviderConfig when credentials are
// missing.
type IdentityProvider interface {
	Exchange(ctx context.Context, code string) (*Profile, error)
	AuthURL() (string, error)
}
