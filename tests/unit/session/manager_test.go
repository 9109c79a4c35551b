package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stayloft/stayloft/internal/session"
)

var secret = []byte("session-test-secret")

func issue(t *testing.T, mgr *session.Manager, id string) *http.Cookie {
	t.Helper()

	rec := httptest.NewRecorder()
	mgr.Set(rec, id, session.DefaultMaxAge)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func requestWith(cookie *http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	return req
}

func TestSet_Attributes(t *testing.T) {
	t.Parallel()

	mgr := session.NewManager(secret, true)
	cookie := issue(t, mgr, "u1")

	assert.Equal(t, session.CookieName, cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, int(session.DefaultMaxAge.Seconds()), cookie.MaxAge)
}

func TestSet_InsecureInDevelopment(t *testing.T) {
	t.Parallel()

	mgr := session.NewManager(secret, false)
	cookie := issue(t, mgr, "u1")

	assert.False(t, cookie.Secure)
}

func TestRead_RoundTrip(t *testing.T) {
	t.Parallel()

	mgr := session.NewManager(secret, false)
	cookie := issue(t, mgr, "u1")

	id, ok := mgr.Read(requestWith(cookie))
	require.True(t, ok)
	assert.Equal(t, "u1", id)
}

func TestRead_ValueNotPlaintext(t *testing.T) {
	t.Parallel()

	mgr := session.NewManager(secret, false)
	cookie := issue(t, mgr, "u1")

	assert.NotEqual(t, "u1", cookie.Value, "cookie value must be encoded and signed")
	assert.Contains(t, cookie.Value, ".")
}

func TestRead_MissingCookie(t *testing.T) {
	t.Parallel()

	mgr := session.NewManager(secret, false)

	_, ok := mgr.Read(requestWith(nil))
	assert.False(t, ok)
}

func TestRead_TamperedValue(t *testing.T) {
	t.Parallel()

	mgr := session.NewManager(secret, false)

	tests := []struct {
		name   string
		mutate func(c *http.Cookie)
	}{
		{
			name:   "appended byte",
			mutate: func(c *http.Cookie) { c.Value += "x" },
		},
		{
			name:   "missing signature",
			mutate: func(c *http.Cookie) { c.Value = "dTE" },
		},
		{
			name:   "empty value",
			mutate: func(c *http.Cookie) { c.Value = "" },
		},
		{
			name:   "garbage",
			mutate: func(c *http.Cookie) { c.Value = "not-a-signed-cookie" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cookie := issue(t, mgr, "u1")
			tt.mutate(cookie)

			_, ok := mgr.Read(requestWith(cookie))
			assert.False(t, ok)
		})
	}
}

func TestRead_WrongSecret(t *testing.T) {
	t.Parallel()

	mgr := session.NewManager(secret, false)
	other := session.NewManager([]byte("a-different-secret"), false)

	cookie := issue(t, mgr, "u1")

	_, ok := other.Read(requestWith(cookie))
	assert.False(t, ok, "cookie signed with another secret must not verify")
}

func TestClear(t *testing.T) {
	t.Parallel()

	mgr := session.NewManager(secret, false)

	rec := httptest.NewRecorder()
	mgr.Clear(rec)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, session.CookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Less(t, cookies[0].MaxAge, 0)
	assert.True(t, cookies[0].HttpOnly)
}
