// Package identity signs users in to the Microsoft identity platform with the
// OAuth2 device authorization grant and hands out authorized HTTP clients.
package identity

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/microsoft"
)

// ErrNoSession is returned when no token is cached for the app registration.
var ErrNoSession = errors.New("not signed in")

// ErrNotConfigured is returned when no client id is configured.
var ErrNotConfigured = errors.New("identity.client_id is not configured")

// TokenStore persists tokens by key.
type TokenStore interface {
	LoadToken(key string) (*oauth2.Token, error)
	SaveToken(key string, tok *oauth2.Token) error
	Delete(key string) error
}

// Config describes the app registration.
type Config struct {
	ClientID string
	Tenant   string
	Scopes   []string
	// Endpoint overrides the Microsoft endpoint of Tenant when set.
	Endpoint *oauth2.Endpoint
	// HTTPClient is used for identity and API calls when set.
	HTTPClient *http.Client
}

// DeviceCode is a pending sign-in the user completes in a browser.
type DeviceCode struct {
	UserCode        string
	VerificationURI string
	ExpiresAt       time.Time

	resp *oauth2.DeviceAuthResponse
}

// Message is the instruction shown to the user.
func (d *DeviceCode) Message() string {
	return fmt.Sprintf("To sign in, open %s and enter the code %s", d.VerificationURI, d.UserCode)
}

// Client signs in one app registration and caches its token.
type Client struct {
	oauth      *oauth2.Config
	store      TokenStore
	key        string
	httpClient *http.Client
}

// New creates a Client. key selects the cache entry in store.
func New(cfg Config, store TokenStore, key string) (*Client, error) {
	if strings.TrimSpace(cfg.ClientID) == "" {
		return nil, ErrNotConfigured
	}
	if store == nil {
		return nil, fmt.Errorf("identity: nil token store")
	}

	endpoint := microsoft.AzureADEndpoint(strings.TrimSpace(cfg.Tenant))
	if cfg.Endpoint != nil {
		endpoint = *cfg.Endpoint
	}
	// Public clients send client_id in the form body and have no secret.
	endpoint.AuthStyle = oauth2.AuthStyleInParams

	return &Client{
		oauth: &oauth2.Config{
			ClientID: cfg.ClientID,
			Endpoint: endpoint,
			Scopes:   append([]string(nil), cfg.Scopes...),
		},
		store:      store,
		key:        key,
		httpClient: cfg.HTTPClient,
	}, nil
}

// Key returns the cache key of the registration.
func (c *Client) Key() string {
	return c.key
}

func (c *Client) context(ctx context.Context) context.Context {
	if c.httpClient == nil {
		return ctx
	}
	return context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
}

// StartSignIn requests a device code.
func (c *Client) StartSignIn(ctx context.Context) (*DeviceCode, error) {
	resp, err := c.oauth.DeviceAuth(c.context(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to request device code: %w", err)
	}
	uri := resp.VerificationURI
	if uri == "" {
		uri = resp.VerificationURIComplete
	}
	return &DeviceCode{
		UserCode:        resp.UserCode,
		VerificationURI: uri,
		ExpiresAt:       resp.Expiry,
		resp:            resp,
	}, nil
}

// CompleteSignIn waits until the user approves the device code, then caches
// the issued token.
func (c *Client) CompleteSignIn(ctx context.Context, code *DeviceCode) error {
	if code == nil || code.resp == nil {
		return fmt.Errorf("no pending sign-in")
	}
	tok, err := c.oauth.DeviceAccessToken(c.context(ctx), code.resp)
	if err != nil {
		return fmt.Errorf("sign-in failed: %w", err)
	}
	if err := c.store.SaveToken(c.key, tok); err != nil {
		return err
	}
	return nil
}

// HTTPClient returns a client that authorizes requests with the cached token,
// refreshing and re-caching it as needed.
func (c *Client) HTTPClient(ctx context.Context) (*http.Client, error) {
	tok, err := c.loadToken()
	if err != nil {
		return nil, err
	}
	ctx = c.context(ctx)
	src := &persistingSource{
		base:  c.oauth.TokenSource(ctx, tok),
		store: c.store,
		key:   c.key,
		last:  tok.AccessToken,
	}
	return oauth2.NewClient(ctx, src), nil
}

// SignedIn reports whether a token is cached.
func (c *Client) SignedIn() bool {
	_, err := c.loadToken()
	return err == nil
}

// SignOut forgets the cached token.
func (c *Client) SignOut() error {
	if err := c.store.Delete(c.key); err != nil {
		return fmt.Errorf("failed to sign out: %w", err)
	}
	return nil
}

func (c *Client) loadToken() (*oauth2.Token, error) {
	tok, err := c.store.LoadToken(c.key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoSession, err)
	}
	if tok == nil {
		return nil, ErrNoSession
	}
	if tok.AccessToken == "" && tok.RefreshToken == "" {
		return nil, ErrNoSession
	}
	return tok, nil
}

// persistingSource writes refreshed tokens back to the store.
type persistingSource struct {
	mu    sync.Mutex
	base  oauth2.TokenSource
	store TokenStore
	key   string
	last  string
}

func (s *persistingSource) Token() (*oauth2.Token, error) {
	tok, err := s.base.Token()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if tok.AccessToken != s.last {
		if err := s.store.SaveToken(s.key, tok); err != nil {
			return nil, err
		}
		s.last = tok.AccessToken
	}
	return tok, nil
}
