package tools

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/ktanaka/mal-mcp-server/internal/anime"
	apierrors "github.com/ktanaka/mal-mcp-server/internal/errors"
	"github.com/ktanaka/mal-mcp-server/internal/manga"
	"github.com/ktanaka/mal-mcp-server/metrics"
	"github.com/ktanaka/mal-mcp-server/tracing"
)

// HandlerRegistry provides type-safe tool registration by mapping
// tool names to their concrete handler implementations.
type HandlerRegistry struct {
	animeClient *anime.Client
	mangaClient *manga.Client
	logger      *slog.Logger
}

// NewHandlerRegistry creates a new handler registry.
func NewHandlerRegistry(animeClient *anime.Client, mangaClient *manga.Client, logger *slog.Logger) *HandlerRegistry {
	return &HandlerRegistry{
		animeClient: animeClient,
		mangaClient: mangaClient,
		logger:      logger,
	}
}

// RegisterAll registers all tools with the MCP server.
func (h *HandlerRegistry) RegisterAll(server *mcp.Server) {
	for _, spec := range AllTools {
		h.registerByName(server, spec)
	}
	h.logger.Info("Registered all tools", "count", len(AllTools))
}

// registerByName dispatches to the correct typed registration function.
func (h *HandlerRegistry) registerByName(server *mcp.Server, spec ToolSpec) {
	tool := h.buildTool(spec)

	switch spec.Method {
	// Anime tools
	case "GetAnimeList":
		register(h, server, tool, spec, h.animeClient.GetListMCP)
	case "GetAnimeDetails":
		register(h, server, tool, spec, h.animeClient.GetDetailsMCP)
	case "GetAnimeRanking":
		register(h, server, tool, spec, h.animeClient.GetRankingMCP)
	case "GetSeasonalAnime":
		register(h, server, tool, spec, h.animeClient.GetSeasonalMCP)
	case "GetSuggestedAnime":
		register(h, server, tool, spec, h.animeClient.GetSuggestedMCP)
	case "UpdateAnimeListStatus":
		register(h, server, tool, spec, h.animeClient.UpdateListStatusMCP)
	case "DeleteAnimeListItem":
		register(h, server, tool, spec, h.animeClient.DeleteListItemMCP)
	case "GetUserAnimeList":
		register(h, server, tool, spec, h.animeClient.GetUserListMCP)

	// Manga tools
	case "GetMangaList":
		register(h, server, tool, spec, h.mangaClient.GetListMCP)
	case "GetMangaDetails":
		register(h, server, tool, spec, h.mangaClient.GetDetailsMCP)
	case "GetMangaRanking":
		register(h, server, tool, spec, h.mangaClient.GetRankingMCP)
	case "UpdateMangaListStatus":
		register(h, server, tool, spec, h.mangaClient.UpdateListStatusMCP)
	case "DeleteMangaListItem":
		register(h, server, tool, spec, h.mangaClient.DeleteListItemMCP)
	case "GetUserMangaList":
		register(h, server, tool, spec, h.mangaClient.GetUserListMCP)

	default:
		h.logger.Error("Unknown method, tool not registered", "method", spec.Method, "tool", spec.Name)
	}
}

// buildTool creates an mcp.Tool from a ToolSpec.
func (h *HandlerRegistry) buildTool(spec ToolSpec) *mcp.Tool {
	annotations := &mcp.ToolAnnotations{
		Title:          spec.Title,
		ReadOnlyHint:   spec.ReadOnly,
		IdempotentHint: spec.Idempotent,
	}
	if spec.Destructive {
		annotations.DestructiveHint = ptr(true)
	}
	if spec.OpenWorld {
		annotations.OpenWorldHint = ptr(true)
	}

	return &mcp.Tool{
		Name:        spec.Name,
		Description: spec.Description,
		Annotations: annotations,
	}
}

// register is a generic helper that registers a tool with the MCP server.
// It wraps the client method with panic recovery, metrics, tracing, and logging.
func register[Args, Result any](
	h *HandlerRegistry,
	server *mcp.Server,
	tool *mcp.Tool,
	spec ToolSpec,
	method func(context.Context, Args) (Result, error),
) {
	mcp.AddTool(server, tool, func(ctx context.Context, req *mcp.CallToolRequest, args Args) (*mcp.CallToolResult, Result, error) {
		defer h.recoverPanic(spec.Name)

		// Start trace span
		ctx, span := tracing.StartSpan(ctx, "mcp.tool."+spec.Name)
		defer span.End()

		span.SetAttributes(
			attribute.String("mcp.tool.name", spec.Name),
			attribute.String("mcp.tool.category", spec.Category),
			attribute.String("mcp.tool.kind", spec.Kind),
			attribute.Bool("mcp.tool.readonly", spec.ReadOnly),
		)

		// Track in-flight requests
		metrics.RequestInFlight.WithLabelValues(spec.Name).Inc()
		defer metrics.RequestInFlight.WithLabelValues(spec.Name).Dec()

		start := time.Now()
		result, err := method(ctx, args)
		duration := time.Since(start).Seconds()

		span.SetAttributes(attribute.Float64("mcp.tool.duration_seconds", duration))

		if err != nil {
			if apierrors.IsAuthRequired(err) {
				metrics.AuthRequired.WithLabelValues(spec.Name).Inc()
			}
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			metrics.RecordRequest(spec.Name, duration, false)
			var zero Result
			return nil, zero, fmt.Errorf("%s failed: %w", spec.Name, err)
		}

		span.SetStatus(codes.Ok, "")
		metrics.RecordRequest(spec.Name, duration, true)
		h.logExecution(spec, args, result)
		return nil, result, nil
	})
}

// recoverPanic recovers from panics in tool handlers.
func (h *HandlerRegistry) recoverPanic(toolName string) {
	if rec := recover(); rec != nil {
		metrics.PanicsRecovered.WithLabelValues(toolName).Inc()
		h.logger.Error("Panic recovered",
			"tool", toolName,
			"panic", rec,
			"stack", string(debug.Stack()))
	}
}

// logExecution logs tool execution details.
func (h *HandlerRegistry) logExecution(spec ToolSpec, args, result any) {
	attrs := []any{"tool", spec.Name, "kind", spec.Kind}

	// Add extractable fields from args using type assertions
	switch a := args.(type) {
	// Anime args
	case anime.GetListArgs:
		attrs = append(attrs, "query", a.Query)
	case anime.GetDetailsArgs:
		attrs = append(attrs, "anime_id", a.AnimeID)
	case anime.GetRankingArgs:
		attrs = append(attrs, "ranking_type", a.RankingType)
	case anime.GetSeasonalArgs:
		attrs = append(attrs, "year", a.Year, "season", a.Season)
	case anime.UpdateListStatusArgs:
		attrs = append(attrs, "anime_id", a.AnimeID, "status", a.Status)
	case anime.DeleteListItemArgs:
		attrs = append(attrs, "anime_id", a.AnimeID)
	case anime.GetUserListArgs:
		attrs = append(attrs, "user_name", a.UserName)
	// Manga args
	case manga.GetListArgs:
		attrs = append(attrs, "query", a.Query)
	case manga.GetDetailsArgs:
		attrs = append(attrs, "manga_id", a.MangaID)
	case manga.GetRankingArgs:
		attrs = append(attrs, "ranking_type", a.RankingType)
	case manga.UpdateListStatusArgs:
		attrs = append(attrs, "manga_id", a.MangaID, "status", a.Status)
	case manga.DeleteListItemArgs:
		attrs = append(attrs, "manga_id", a.MangaID)
	case manga.GetUserListArgs:
		attrs = append(attrs, "user_name", a.UserName)
	}

	// Add extractable fields from result
	switch r := result.(type) {
	// Anime results
	case anime.GetListResult:
		attrs = append(attrs, "results_count", len(r.Data), "has_next", r.Paging.Next != "")
	case anime.GetDetailsResult:
		attrs = append(attrs, "title", r.Data.Title)
	case anime.DeleteListItemResult:
		attrs = append(attrs, "success", r.Success)
	// Manga results
	case manga.GetListResult:
		attrs = append(attrs, "results_count", len(r.Data), "has_next", r.Paging.Next != "")
	case manga.GetDetailsResult:
		attrs = append(attrs, "title", r.Data.Title)
	case manga.DeleteListItemResult:
		attrs = append(attrs, "success", r.Success)
	}

	h.logger.Info("Tool executed", attrs...)
}
