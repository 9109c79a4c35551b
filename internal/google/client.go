// Package google implements the identity provider exchange against Google
// OAuth. It trades an authorization code for the viewer's profile data and
// builds the authorization URL for client-initiated redirect.
package google

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	oauthgoogle "golang.org/x/oauth2/google"

	"github.com/stayloft/stayloft/internal/auth"
)

const defaultUserinfoURL = "https://www.googleapis.com/oauth2/v3/userinfo"

var scopes = []string{
	"https://www.googleapis.com/auth/userinfo.email",
	"https://www.googleapis.com/auth/userinfo.profile",
}

// Config holds the provider credentials. Any empty field leaves the client
// unconfigured; operations then fail with auth.ErrProviderConfig.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// Client implements auth.IdentityProvider against Google's OAuth endpoints.
type Client struct {
	oauth       *oauth2.Config
	userinfoURL string
	httpClient  *http.Client
}

// ClientOption customizes a Client.
type ClientOption func(*Client)

// WithEndpoint overrides the OAuth endpoint, primarily for tests.
func WithEndpoint(ep oauth2.Endpoint) ClientOption {
	return func(c *Client) { c.oauth.Endpoint = ep }
}

// WithUserinfoURL overrides the userinfo endpoint, primarily for tests.
func WithUserinfoURL(url string) ClientOption {
	return func(c *Client) { c.userinfoURL = url }
}

// WithHTTPClient overrides the HTTP client used for the exchange and the
// userinfo fetch.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a Client for the given credentials.
func NewClient(cfg Config, opts ...ClientOption) *Client {
	c := &Client{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       scopes,
			Endpoint:     oauthgoogle.Endpoint,
		},
		userinfoURL: defaultUserinfoURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// userinfo mirrors the OpenID Connect userinfo response.
type userinfo struct {
	Sub     string `json:"sub"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
	Email   string `json:"email"`
}

// Exchange trades an authorization code for the viewer's profile. A rejected
// code or a profile missing any required field fails with
// auth.ErrProviderExchange; nothing partial is ever returned.
func (c *Client) Exchange(ctx context.Context, code string) (*auth.Profile, error) {
	if !c.configured() {
		return nil, auth.ErrProviderConfig
	}

	if c.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	}

	token, err := c.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: exchanging code: %w", auth.ErrProviderExchange, err)
	}

	info, err := c.fetchUserinfo(ctx, token)
	if err != nil {
		return nil, err
	}

	if info.Sub == "" || info.Name == "" || info.Picture == "" || info.Email == "" {
		return nil, fmt.Errorf("%w: incomplete profile", auth.ErrProviderExchange)
	}

	return &auth.Profile{
		ID:      info.Sub,
		Name:    info.Name,
		Avatar:  info.Picture,
		Contact: info.Email,
	}, nil
}

// AuthURL returns the authorization URL the client should redirect to.
func (c *Client) AuthURL() (string, error) {
	if !c.configured() {
		return "", auth.ErrProviderConfig
	}
	return c.oauth.AuthCodeURL("", oauth2.AccessTypeOnline), nil
}

func (c *Client) fetchUserinfo(ctx context.Context, token *oauth2.Token) (*userinfo, error) {
	resp, err := c.oauth.Client(ctx, token).Get(c.userinfoURL)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching userinfo: %w", auth.ErrProviderExchange, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: userinfo returned status %d", auth.ErrProviderExchange, resp.StatusCode)
	}

	var info userinfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("%w: decoding userinfo: %w", auth.ErrProviderExchange, err)
	}

	return &info, nil
}

func (c *Client) configured() bool {
	return c.oauth.ClientID != "" && c.oauth.ClientSecret != "" && c.oauth.RedirectURL != ""
}
