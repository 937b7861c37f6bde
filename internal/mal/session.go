package mal

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
)

// AccessToken is the token object returned by the MAL token endpoint.
// Held for the lifetime of the process; never persisted or auto-refreshed.
type AccessToken struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// Session is the single-slot holder of the current authorization state:
// a PKCE verifier awaiting exchange, and the access token after a
// successful exchange. Only one authorization flow is expected to be in
// flight at a time; a new BeginAuthorization overwrites any pending
// verifier (last-write-wins).
type Session struct {
	mu              sync.RWMutex
	pendingVerifier string
	token           *AccessToken
}

// NewSession creates an empty session with no pending flow and no token.
func NewSession() *Session {
	return &Session{}
}

// BeginAuthorization generates a fresh PKCE verifier (32 random bytes,
// hex encoded) and stores it as the pending verifier, invalidating any
// earlier one.
func (s *Session) BeginAuthorization() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("mal: generating code verifier: %w", err)
	}
	verifier := hex.EncodeToString(buf)

	s.mu.Lock()
	s.pendingVerifier = verifier
	s.mu.Unlock()

	return verifier, nil
}

// ConsumeVerifier returns the pending verifier and clears it. The
// verifier is consumed regardless of whether the subsequent exchange
// succeeds.
func (s *Session) ConsumeVerifier() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	verifier := s.pendingVerifier
	s.pendingVerifier = ""
	return verifier, verifier != ""
}

// SetToken replaces the held access token.
func (s *Session) SetToken(tok *AccessToken) {
	s.mu.Lock()
	s.token = tok
	s.mu.Unlock()
}

// Token returns the currently held access token, or nil if the user has
// not authorized. Its presence is the sole gate for write operations.
func (s *Session) Token() *AccessToken {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Authorized reports whether an access token is held.
func (s *Session) Authorized() bool {
	return s.Token() != nil
}
