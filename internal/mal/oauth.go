package mal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	apierrors "github.com/ktanaka/mal-mcp-server/internal/errors"
	"github.com/ktanaka/mal-mcp-server/metrics"
)

// fixedState is sent as the OAuth state parameter on every redirect.
// A static state gives no CSRF protection; the PKCE verifier is the
// only binding between the redirect and the callback.
const fixedState = "mal-mcp-server"

// AuthFlow drives the two-step PKCE authorization exchange. Its only
// coupling to the rest of the server is writing into the Session that
// the Client reads.
type AuthFlow struct {
	client  *Client
	session *Session
	logger  *slog.Logger
}

// NewAuthFlow creates the authorization flow controller.
func NewAuthFlow(client *Client, logger *slog.Logger) *AuthFlow {
	return &AuthFlow{
		client:  client,
		session: client.Session(),
		logger:  logger,
	}
}

// AuthorizeURL generates a fresh verifier and builds the upstream
// authorization URL to redirect the user agent to. With the "plain"
// method the challenge equals the verifier.
func (f *AuthFlow) AuthorizeURL() (string, error) {
	verifier, err := f.session.BeginAuthorization()
	if err != nil {
		return "", err
	}

	params := url.Values{}
	params.Set("response_type", "code")
	params.Set("client_id", f.client.config.ClientID)
	params.Set("code_challenge", verifier)
	params.Set("code_challenge_method", "plain")
	params.Set("state", fixedState)
	params.Set("redirect_uri", f.client.config.RedirectURI)

	return f.client.authURL + "?" + params.Encode(), nil
}

// CompleteAuthorization consumes the pending verifier and exchanges the
// authorization code for an access token. The verifier is consumed even
// when the exchange fails; a previously held token is left untouched on
// failure.
func (f *AuthFlow) CompleteAuthorization(ctx context.Context, code string) error {
	verifier, ok := f.session.ConsumeVerifier()
	if !ok {
		return &apierrors.AuthStateError{Reason: "no pending authorization"}
	}

	tok, err := f.client.ExchangeCode(ctx, code, verifier)
	if err != nil {
		return fmt.Errorf("mal: token exchange: %w", err)
	}

	f.session.SetToken(tok)
	return nil
}

// HandleAuthorize is the GET /auth/mal handler: it starts a flow and
// redirects the browser to MAL's authorization endpoint.
func (f *AuthFlow) HandleAuthorize(w http.ResponseWriter, r *http.Request) {
	authURL, err := f.AuthorizeURL()
	if err != nil {
		f.logger.Error("Failed to start authorization", "error", err)
		http.Error(w, "failed to start authorization", http.StatusInternalServerError)
		return
	}

	f.logger.Info("Authorization started", "redirect", f.client.authURL)
	http.Redirect(w, r, authURL, http.StatusFound)
}

// HandleCallback is the GET /oauth/callback handler: it receives the
// authorization code and completes the exchange.
func (f *AuthFlow) HandleCallback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")

	if err := f.CompleteAuthorization(r.Context(), code); err != nil {
		var stateErr *apierrors.AuthStateError
		if errors.As(err, &stateErr) {
			metrics.AuthFailures.WithLabelValues("invalid_state").Inc()
			http.Error(w, "Invalid state", http.StatusBadRequest)
			return
		}

		f.logger.Error("Token exchange failed", "error", err)
		metrics.AuthFailures.WithLabelValues("exchange_failed").Inc()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success":false}`))
		return
	}

	f.logger.Info("Authorization completed")
	metrics.AuthCompleted.Inc()
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"success":true}`))
}
