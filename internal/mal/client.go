// Package mal implements the MyAnimeList API v2 client, the single-slot
// OAuth session state, and the PKCE authorization flow.
package mal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	apierrors "github.com/ktanaka/mal-mcp-server/internal/errors"
	"github.com/ktanaka/mal-mcp-server/metrics"
	"github.com/ktanaka/mal-mcp-server/tracing"
)

const (
	// API endpoints
	DefaultBaseURL  = "https://api.myanimelist.net/v2"
	DefaultAuthURL  = "https://myanimelist.net/v1/oauth2/authorize"
	DefaultTokenURL = "https://myanimelist.net/v1/oauth2/token" // #nosec G101 -- public OAuth endpoint URL, not credentials

	// clientIDHeader is required by MAL on every request.
	clientIDHeader = "X-MAL-CLIENT-ID"
)

// Client issues authenticated HTTP requests to the MAL API. It reads the
// bearer token from the Session at request time and attaches the client
// ID header unconditionally. Safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	authURL    string
	tokenURL   string
	config     *Config
	session    *Session
	logger     *slog.Logger
}

// ClientOption configures the client.
type ClientOption func(*Client)

// WithBaseURL sets a custom API base URL (useful for testing).
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithAuthURL sets a custom authorization endpoint (useful for testing).
func WithAuthURL(u string) ClientOption {
	return func(c *Client) {
		c.authURL = u
	}
}

// WithTokenURL sets a custom token endpoint (useful for testing).
func WithTokenURL(u string) ClientOption {
	return func(c *Client) {
		c.tokenURL = u
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = l
	}
}

// NewClient creates a new MAL API client bound to the given session.
func NewClient(cfg *Config, session *Session, opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    DefaultBaseURL,
		authURL:    DefaultAuthURL,
		tokenURL:   DefaultTokenURL,
		config:     cfg,
		session:    session,
		logger:     slog.Default(),
	}

	if cfg.Timeout <= 0 {
		c.httpClient.Timeout = 30 * time.Second
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Session returns the session this client reads credentials from.
func (c *Client) Session() *Session {
	return c.session
}

// LoginURL returns the local authorization endpoint, used in
// authentication-required error messages.
func (c *Client) LoginURL() string {
	return c.config.LoginURL()
}

// Get issues a GET request and returns the raw body and status code.
func (c *Client) Get(ctx context.Context, path string, query url.Values) ([]byte, int, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

// Patch issues a form-encoded PATCH request.
func (c *Client) Patch(ctx context.Context, path string, form url.Values) ([]byte, int, error) {
	return c.do(ctx, http.MethodPatch, path, nil, form)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) ([]byte, int, error) {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// do performs a single HTTP request against the MAL API. No retries; a
// non-2xx status is returned to the caller alongside the body so each
// operation can apply its own status mapping.
func (c *Client) do(ctx context.Context, method, path string, query, form url.Values) ([]byte, int, error) {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if form != nil {
		reqBody = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return nil, 0, fmt.Errorf("mal: creating request: %w", err)
	}

	req.Header.Set(clientIDHeader, c.config.ClientID)
	if tok := c.session.Token(); tok != nil {
		req.Header.Set("Authorization", "Bearer "+tok.AccessToken)
	}
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	req.Header.Set("Accept", "application/json")

	ctx, span := tracing.StartSpan(ctx, "mal.api")
	defer span.End()
	span.SetAttributes(
		attribute.String("http.request.method", method),
		attribute.String("mal.api.path", path),
	)
	req = req.WithContext(ctx)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		metrics.RecordAPICall(method, time.Since(start).Seconds(), 0)
		return nil, 0, fmt.Errorf("mal: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		span.RecordError(err)
		metrics.RecordAPICall(method, time.Since(start).Seconds(), resp.StatusCode)
		return nil, resp.StatusCode, fmt.Errorf("mal: reading response: %w", err)
	}

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	metrics.RecordAPICall(method, time.Since(start).Seconds(), resp.StatusCode)

	return body, resp.StatusCode, nil
}

// DecodeOK unmarshals body into v when status is 2xx; otherwise it logs
// the raw failure body as a diagnostic side channel and returns a typed
// UpstreamError carrying status and body.
func (c *Client) DecodeOK(body []byte, status int, v any) error {
	if status < 200 || status >= 300 {
		c.logger.Debug("MAL API error response", "status", status, "body", string(body))
		return apierrors.NewUpstreamError(status, body)
	}
	if v == nil {
		return nil
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("mal: decoding response: %w", err)
	}
	return nil
}

// RequireToken returns an AuthRequiredError when no access token is held.
// Gated operations call this before issuing any network request.
func (c *Client) RequireToken() error {
	if !c.session.Authorized() {
		return apierrors.NewAuthRequiredError(c.LoginURL())
	}
	return nil
}

// ExchangeCode exchanges an authorization code plus PKCE verifier for an
// access token. This call carries client credentials in the form body
// and no bearer header.
func (c *Client) ExchangeCode(ctx context.Context, code, verifier string) (*AccessToken, error) {
	form := url.Values{}
	form.Set("client_id", c.config.ClientID)
	form.Set("client_secret", c.config.ClientSecret)
	form.Set("code", code)
	form.Set("code_verifier", verifier)
	form.Set("grant_type", "authorization_code")
	form.Set("redirect_uri", c.config.RedirectURI)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("mal: creating token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("mal: token request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("mal: reading token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Debug("token exchange failed", "status", resp.StatusCode, "body", string(body))
		return nil, apierrors.NewUpstreamError(resp.StatusCode, body)
	}

	var tok AccessToken
	if err := json.Unmarshal(body, &tok); err != nil {
		return nil, fmt.Errorf("mal: decoding token response: %w", err)
	}

	return &tok, nil
}
