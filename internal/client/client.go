// Package client is the API client used by UI frontends. It drives the
// login/logout round trips and keeps a viewerstate.Store synchronized with
// the server's notion of the current viewer: a settled success dispatches the
// returned viewer into the store, a failure dispatches nothing and leaves the
// previously cached viewer authoritative.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"

	"github.com/stayloft/stayloft/internal/auth"
	"github.com/stayloft/stayloft/internal/viewerstate"
)

// Client talks to the viewer authentication endpoints. It carries a cookie
// jar so the session cookie issued on login is replayed on resume.
type Client struct {
	baseURL string
	http    *http.Client
	store   *viewerstate.Store
}

// New creates a Client against the given base URL, dispatching into store.
func New(baseURL string, store *viewerstate.Store) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("creating cookie jar: %w", err)
	}

	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Jar: jar},
		store:   store,
	}, nil
}

// Viewer returns the currently cached viewer.
func (c *Client) Viewer() auth.Viewer {
	return c.store.Viewer()
}

// Login performs a login round trip and, on success, installs the returned
// viewer in the store. ExternalCode sends the authorization code;
// ResumeSession sends an empty body so the server resumes from the cookie.
func (c *Client) Login(ctx context.Context, input auth.LoginInput) (auth.Viewer, error) {
	var body []byte
	if code, ok := input.(auth.ExternalCode); ok {
		var err error
		body, err = json.Marshal(map[string]string{"code": code.Code})
		if err != nil {
			return auth.Viewer{}, fmt.Errorf("encoding login request: %w", err)
		}
	}

	viewer, err := c.postViewer(ctx, "/auth/login", body)
	if err != nil {
		return auth.Viewer{}, err
	}

	c.store.Dispatch(viewerstate.Action{Type: viewerstate.ActionSetViewer, Viewer: &viewer})
	return viewer, nil
}

// Logout performs a logout round trip and, on success, installs the
// anonymous viewer in the store.
func (c *Client) Logout(ctx context.Context) (auth.Viewer, error) {
	viewer, err := c.postViewer(ctx, "/auth/logout", nil)
	if err != nil {
		return auth.Viewer{}, err
	}

	c.store.Dispatch(viewerstate.Action{Type: viewerstate.ActionSetViewer, Viewer: &viewer})
	return viewer, nil
}

// AuthURL fetches the provider authorization URL for redirect.
func (c *Client) AuthURL(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/url", nil)
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}

	var data struct {
		URL string `json:"url"`
	}
	if err := c.do(req, &data); err != nil {
		return "", err
	}

	return data.URL, nil
}

func (c *Client) postViewer(ctx context.Context, path string, body []byte) (auth.Viewer, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return auth.Viewer{}, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var viewer auth.Viewer
	if err := c.do(req, &viewer); err != nil {
		return auth.Viewer{}, err
	}

	return viewer, nil
}

// envelope mirrors the server's response wrapper.
type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) do(req *http.Request, data any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decoding response from %s: %w", req.URL.Path, err)
	}

	if env.Error != nil {
		return fmt.Errorf("%s: %s (%s)", req.URL.Path, env.Error.Message, env.Error.Code)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: unexpected status %d", req.URL.Path, resp.StatusCode)
	}

	if err := json.Unmarshal(env.Data, data); err != nil {
		return fmt.Errorf("decoding data from %s: %w", req.URL.Path, err)
	}

	return nil
}
