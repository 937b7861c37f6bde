package mal

import (
	"errors"
	"os"
	"time"
)

// Config holds MAL API connection settings.
type Config struct {
	// ClientID is the MAL API client ID, sent on every request.
	ClientID string

	// ClientSecret is used for the authorization-code token exchange.
	ClientSecret string

	// Port the HTTP listener binds to.
	Port string

	// RedirectURI is the OAuth callback URL registered with MAL.
	RedirectURI string

	// Timeout for API requests.
	Timeout time.Duration
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	clientID := os.Getenv("MAL_CLIENT_ID")
	if clientID == "" {
		return nil, errors.New("MAL_CLIENT_ID environment variable is required")
	}

	port := os.Getenv("MAL_PORT")
	if port == "" {
		port = "8080"
	}

	redirectURI := os.Getenv("MAL_REDIRECT_URI")
	if redirectURI == "" {
		redirectURI = "http://localhost:" + port + "/oauth/callback"
	}

	timeout := 30 * time.Second
	if t := os.Getenv("MAL_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil {
			timeout = d
		}
	}

	return &Config{
		ClientID:     clientID,
		ClientSecret: os.Getenv("MAL_CLIENT_SECRET"),
		Port:         port,
		RedirectURI:  redirectURI,
		Timeout:      timeout,
	}, nil
}

// LoginURL returns the local endpoint a user visits to start authorization.
func (c *Config) LoginURL() string {
	return "http://localhost:" + c.Port + "/auth/mal"
}

// HasSecret returns true if a client secret is configured for token exchange.
func (c *Config) HasSecret() bool {
	return c.ClientSecret != ""
}
