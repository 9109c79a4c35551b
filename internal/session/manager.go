// Package session signs, verifies, and clears the viewer session cookie.
// It is a pure transform between an opaque user id and the HTTP headers;
// nothing here touches persistence.
package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"strings"
	"time"
)

// CookieName is the name of the signed viewer session cookie.
const CookieName = "viewer"

// DefaultMaxAge is how long a freshly issued session cookie lives.
const DefaultMaxAge = 365 * 24 * time.Hour

// Manager issues and verifies the signed session cookie. The cookie value is
// base64url(id) + "." + base64url(HMAC-SHA256(base64url(id))); any tampering
// breaks the signature and the cookie is treated as absent.
type Manager struct {
	secret []byte
	secure bool
}

// NewManager creates a Manager. secure controls the cookie's Secure flag and
// should be false only in local development.
func NewManager(secret []byte, secure bool) *Manager {
	return &Manager{secret: secret, secure: secure}
}

// Set writes the signed session cookie carrying the given user id.
func (m *Manager) Set(w http.ResponseWriter, id string, maxAge time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    m.sign(id),
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   m.secure,
	})
}

// Read extracts and verifies the session cookie from the request. It returns
// the embedded user id, or ok=false when the cookie is missing, malformed, or
// fails signature verification.
func (m *Manager) Read(r *http.Request) (string, bool) {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return "", false
	}

	encoded, sig, found := strings.Cut(c.Value, ".")
	if !found {
		return "", false
	}

	want := m.mac(encoded)
	got, err := base64.RawURLEncoding.DecodeString(sig)
	if err != nil || !hmac.Equal(got, want) {
		return "", false
	}

	id, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return "", false
	}

	return string(id), true
}

// Clear expires the session cookie. Clearing an absent cookie is harmless.
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   m.secure,
	})
}

func (m *Manager) sign(id string) string {
	encoded := base64.RawURLEncoding.EncodeToString([]byte(id))
	return encoded + "." + base64.RawURLEncoding.EncodeToString(m.mac(encoded))
}

func (m *Manager) mac(encoded string) []byte {
	h := hmac.New(sha256.New, m.secret)
	h.Write([]byte(encoded))
	return h.Sum(nil)
}
