package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/stayloft/stayloft/internal/session"
	"github.com/stayloft/stayloft/internal/user"
)

// Service is the login/logout state machine. It decides which of the two
// authentication paths to run, drives the provider exchange and the user
// directory, and projects the result into a Viewer. It never retries; retry
// policy belongs to the transport layer.
type Service struct {
	users    user.Repository
	provider IdentityProvider
	cookies  *session.Manager
}

// NewService creates a new auth Service.
func NewService(users user.Repository, provider IdentityProvider, cookies *session.Manager) *Service {
	return &Service{
		users:    users,
		provider: provider,
		cookies:  cookies,
	}
}

// Login resolves the current viewer. ExternalCode runs the provider exchange
// and upserts the directory record; ResumeSession rotates the token of the
// user named by the session cookie. Both paths mint a fresh token, so every
// successful login invalidates the previous credential.
func (s *Service) Login(ctx context.Context, w http.ResponseWriter, r *http.Request, input LoginInput) (Viewer, error) {
	switch in := input.(type) {
	case ExternalCode:
		return s.loginWithCode(ctx, w, in.Code)
	case ResumeSession:
		return s.resumeFromCookie(ctx, w, r)
	default:
		return Viewer{}, opErr("login", fmt.Errorf("unhandled login input %T", input))
	}
}

// Logout clears the session cookie and returns the anonymous viewer.
// Idempotent: logging out with no active session is a no-op success.
func (s *Service) Logout(w http.ResponseWriter) Viewer {
	s.cookies.Clear(w)
	return Anonymous()
}

// AuthURL returns the provider's authorization URL for client-initiated
// redirect. Pure; fails with ErrProviderConfig when credentials are missing.
func (s *Service) AuthURL() (string, error) {
	url, err := s.provider.AuthURL()
	if err != nil {
		return "", opErr("auth url", err)
	}
	return url, nil
}

func (s *Service) loginWithCode(ctx context.Context, w http.ResponseWriter, code string) (Viewer, error) {
	profile, err := s.provider.Exchange(ctx, code)
	if err != nil {
		return Viewer{}, opErr("login", err)
	}

	token, err := NewToken()
	if err != nil {
		return Viewer{}, opErr("login", err)
	}

	u, err := s.users.Upsert(ctx, profile.ID, user.Profile{
		Name:    profile.Name,
		Avatar:  profile.Avatar,
		Contact: profile.Contact,
	}, token)
	if err != nil {
		return Viewer{}, opErr("login", fmt.Errorf("%w: %w", ErrDirectory, err))
	}

	s.cookies.Set(w, u.ID, session.DefaultMaxAge)

	return project(u), nil
}

func (s *Service) resumeFromCookie(ctx context.Context, w http.ResponseWriter, r *http.Request) (Viewer, error) {
	id, ok := s.cookies.Read(r)
	if !ok {
		s.cookies.Clear(w)
		return Anonymous(), nil
	}

	token, err := NewToken()
	if err != nil {
		return Viewer{}, opErr("login", err)
	}

	u, err := s.users.RotateToken(ctx, id, token)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			slog.Debug("cleared stale session cookie", "userId", id)
			s.cookies.Clear(w)
			return Anonymous(), nil
		}
		return Viewer{}, opErr("login", fmt.Errorf("%w: %w", ErrDirectory, err))
	}

	return project(u), nil
}

// project builds the client-safe Viewer from a directory record. HasWallet
// is computed here and nowhere else.
func project(u *user.User) Viewer {
	id := u.ID
	v := Viewer{
		ID:         &id,
		Token:      u.Token,
		HasWallet:  u.WalletID != nil,
		DidRequest: true,
	}
	if u.Avatar != "" {
		avatar := u.Avatar
		v.Avatar = &avatar
	}
	return v
}
