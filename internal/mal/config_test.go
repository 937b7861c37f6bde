package mal

import (
	"os"
	"testing"
	"time"
)

func TestLoadConfigRequiresClientID(t *testing.T) {
	t.Setenv("MAL_CLIENT_ID", "")

	if _, err := LoadConfig(); err == nil {
		t.Error("expected an error when MAL_CLIENT_ID is missing")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("MAL_CLIENT_ID", "cid")
	_ = os.Unsetenv("MAL_CLIENT_SECRET")
	_ = os.Unsetenv("MAL_PORT")
	_ = os.Unsetenv("MAL_REDIRECT_URI")
	_ = os.Unsetenv("MAL_TIMEOUT")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.RedirectURI != "http://localhost:8080/oauth/callback" {
		t.Errorf("RedirectURI = %q", cfg.RedirectURI)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}
	if cfg.HasSecret() {
		t.Error("HasSecret = true with no secret set")
	}
	if cfg.LoginURL() != "http://localhost:8080/auth/mal" {
		t.Errorf("LoginURL = %q", cfg.LoginURL())
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("MAL_CLIENT_ID", "cid")
	t.Setenv("MAL_CLIENT_SECRET", "secret")
	t.Setenv("MAL_PORT", "9000")
	t.Setenv("MAL_REDIRECT_URI", "https://example.com/cb")
	t.Setenv("MAL_TIMEOUT", "10s")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Port != "9000" {
		t.Errorf("Port = %q, want 9000", cfg.Port)
	}
	if cfg.RedirectURI != "https://example.com/cb" {
		t.Errorf("RedirectURI = %q", cfg.RedirectURI)
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v, want 10s", cfg.Timeout)
	}
	if !cfg.HasSecret() {
		t.Error("HasSecret = false with a secret set")
	}
	if cfg.LoginURL() != "http://localhost:9000/auth/mal" {
		t.Errorf("LoginURL = %q", cfg.LoginURL())
	}
}
