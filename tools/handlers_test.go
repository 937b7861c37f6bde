package tools

import (
	"io"
	"log/slog"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ktanaka/mal-mcp-server/internal/anime"
	"github.com/ktanaka/mal-mcp-server/internal/mal"
	"github.com/ktanaka/mal-mcp-server/internal/manga"
)

func newTestRegistry(t *testing.T) *HandlerRegistry {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &mal.Config{ClientID: "cid", Port: "8080", RedirectURI: "http://localhost:8080/oauth/callback"}
	api := mal.NewClient(cfg, mal.NewSession(), mal.WithLogger(logger))

	return NewHandlerRegistry(anime.NewClient(api, logger), manga.NewClient(api, logger), logger)
}

func TestRegisterAll(t *testing.T) {
	registry := newTestRegistry(t)
	server := mcp.NewServer(&mcp.Implementation{Name: "test", Version: "0.0.0"}, nil)

	// Registration panics on schema errors; reaching the end means every
	// spec dispatched to a typed handler.
	registry.RegisterAll(server)
}

func TestBuildTool(t *testing.T) {
	registry := newTestRegistry(t)

	spec := ToolSpec{
		Name:        "deletemyanimelistitem",
		Title:       "Delete Anime List Item",
		Description: "desc",
		ReadOnly:    false,
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	}

	tool := registry.buildTool(spec)
	if tool.Name != spec.Name || tool.Description != spec.Description {
		t.Errorf("tool = %+v", tool)
	}
	if tool.Annotations.Title != spec.Title {
		t.Errorf("title = %q", tool.Annotations.Title)
	}
	if tool.Annotations.ReadOnlyHint {
		t.Error("destructive tool must not be read-only")
	}
	if tool.Annotations.DestructiveHint == nil || !*tool.Annotations.DestructiveHint {
		t.Error("destructive hint not set")
	}
	if tool.Annotations.OpenWorldHint == nil || !*tool.Annotations.OpenWorldHint {
		t.Error("open world hint not set")
	}
	if !tool.Annotations.IdempotentHint {
		t.Error("idempotent hint not set")
	}
}

func TestBuildToolReadOnly(t *testing.T) {
	registry := newTestRegistry(t)

	tool := registry.buildTool(ToolSpec{
		Name:       "getanimeranking",
		Title:      "Get Anime Ranking",
		ReadOnly:   true,
		Idempotent: true,
	})

	if !tool.Annotations.ReadOnlyHint {
		t.Error("read-only hint not set")
	}
	if tool.Annotations.DestructiveHint != nil {
		t.Error("read-only tool must not carry a destructive hint")
	}
}
