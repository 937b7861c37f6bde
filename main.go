// MAL MCP Server - A Model Context Protocol server for MyAnimeList
// Exposes the MAL API v2 catalog and per-user list management as typed tools,
// plus the OAuth2 PKCE flow needed for write access.
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ktanaka/mal-mcp-server/internal/anime"
	"github.com/ktanaka/mal-mcp-server/internal/mal"
	"github.com/ktanaka/mal-mcp-server/internal/manga"
	"github.com/ktanaka/mal-mcp-server/metrics"
	"github.com/ktanaka/mal-mcp-server/tools"
	"github.com/ktanaka/mal-mcp-server/tracing"
)

const (
	ServerName    = "mal-mcp-server"
	ServerVersion = "1.0.0"
)

const serverInstructions = `MAL MCP Server provides tools for the MyAnimeList catalog and your personal lists.

Read tools (no login needed):
- getanimelist / getmangalist: search the catalog by text
- getanimedetails / getmangadetails: full record for a known ID
- getanimeranking / getmangaranking: top listings by ranking type
- getseasonalanime: anime of a broadcast season
- getuseranimelist / getusermangalist: a user's public list

Authorized tools (visit the login URL from the error message first):
- getsuggestedanime: personalized suggestions
- updatemyanimeliststatus / updatemymangaliststatus: create or update a list entry
- deletemyanimelistitem / deletemymangalistitem: remove a list entry
- getuseranimelist / getusermangalist with user_name "@me"

Configure via environment variables:
- MAL_CLIENT_ID: MAL API client ID (required)
- MAL_CLIENT_SECRET: client secret for the token exchange
- MAL_PORT: HTTP listen port (default 8080)
- MAL_REDIRECT_URI: OAuth callback URL registered with MAL`

func main() {
	// Configure logging to stderr
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Load configuration from environment
	config, err := mal.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if !config.HasSecret() {
		logger.Warn("MAL_CLIENT_SECRET not set, token exchange will fail")
	}

	// Set up tracing
	ctx := context.Background()
	shutdown, err := tracing.Setup(ctx, tracing.DefaultConfig())
	if err != nil {
		log.Fatalf("Failed to set up tracing: %v", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Error("Tracing shutdown failed", "error", err)
		}
	}()

	// Shared session and API client
	session := mal.NewSession()
	apiClient := mal.NewClient(config, session, mal.WithLogger(logger))
	authFlow := mal.NewAuthFlow(apiClient, logger)

	animeClient := anime.NewClient(apiClient, logger)
	mangaClient := manga.NewClient(apiClient, logger)

	// Create MCP server
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Logger:       logger,
		Instructions: serverInstructions,
	})

	// Register all tools
	registry := tools.NewHandlerRegistry(animeClient, mangaClient, logger)
	registry.RegisterAll(server)

	// HTTP mux: MCP transport plus OAuth and operational endpoints
	mux := http.NewServeMux()
	mux.Handle("/mcp", mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil))
	mux.HandleFunc("/auth/mal", authFlow.HandleAuthorize)
	mux.HandleFunc("/oauth/callback", authFlow.HandleCallback)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	addr := ":" + config.Port
	logger.Info("Starting MAL MCP Server",
		"name", ServerName,
		"version", ServerVersion,
		"addr", addr,
		"login_url", config.LoginURL(),
	)

	if err := http.ListenAndServe(addr, countRequests(mux)); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// countRequests records transport-level request counts by method and status.
func countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		metrics.HTTPRequestsTotal.WithLabelValues(r.Method, strconv.Itoa(rec.status)).Inc()
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Flush keeps streaming responses working through the recorder.
func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
