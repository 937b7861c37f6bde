package anime

import (
	"context"
	"fmt"

	apierrors "github.com/ktanaka/mal-mcp-server/internal/errors"
)

// MCP Tool wrapper methods
// These methods wrap the client methods with Args/Result types for MCP integration.

// GetListMCP is the MCP wrapper for searching the anime catalog.
func (c *Client) GetListMCP(ctx context.Context, args GetListArgs) (GetListResult, error) {
	if err := validateLimit(args.Limit, maxListLimit); err != nil {
		return GetListResult{}, err
	}
	if err := validateOffset(args.Offset); err != nil {
		return GetListResult{}, err
	}

	return c.List(ctx, args.Query, args.Limit, args.Offset, args.Fields)
}

// GetDetailsMCP is the MCP wrapper for fetching a single anime.
func (c *Client) GetDetailsMCP(ctx context.Context, args GetDetailsArgs) (GetDetailsResult, error) {
	if err := validateID(args.AnimeID); err != nil {
		return GetDetailsResult{}, err
	}

	return c.Details(ctx, args.AnimeID, args.Fields)
}

// GetRankingMCP is the MCP wrapper for the ranking listing.
func (c *Client) GetRankingMCP(ctx context.Context, args GetRankingArgs) (GetListResult, error) {
	if err := validateEnum("ranking_type", args.RankingType, rankingTypes); err != nil {
		return GetListResult{}, err
	}
	if err := validateLimit(args.Limit, maxRankingLimit); err != nil {
		return GetListResult{}, err
	}
	if err := validateOffset(args.Offset); err != nil {
		return GetListResult{}, err
	}

	return c.Ranking(ctx, args.RankingType, args.Limit, args.Offset, args.Fields)
}

// GetSeasonalMCP is the MCP wrapper for a broadcast season listing.
func (c *Client) GetSeasonalMCP(ctx context.Context, args GetSeasonalArgs) (GetListResult, error) {
	if args.Year <= 0 {
		return GetListResult{}, apierrors.NewValidationError("year", fmt.Sprintf("%d", args.Year), "must be a positive year")
	}
	if !seasons[args.Season] {
		return GetListResult{}, apierrors.NewValidationError("season", args.Season, "must be winter, spring, summer or fall")
	}
	if err := validateEnum("sort", args.Sort, seasonalSorts); err != nil {
		return GetListResult{}, err
	}
	if err := validateLimit(args.Limit, maxSeasonalLimit); err != nil {
		return GetListResult{}, err
	}
	if err := validateOffset(args.Offset); err != nil {
		return GetListResult{}, err
	}

	return c.Seasonal(ctx, args.Year, args.Season, args.Sort, args.Limit, args.Offset, args.Fields)
}

// GetSuggestedMCP is the MCP wrapper for personalized suggestions.
func (c *Client) GetSuggestedMCP(ctx context.Context, args GetSuggestedArgs) (GetListResult, error) {
	if err := validateLimit(args.Limit, maxSuggestedLimit); err != nil {
		return GetListResult{}, err
	}
	if err := validateOffset(args.Offset); err != nil {
		return GetListResult{}, err
	}

	return c.Suggested(ctx, args.Limit, args.Offset, args.Fields)
}

// UpdateListStatusMCP is the MCP wrapper for updating a list entry.
func (c *Client) UpdateListStatusMCP(ctx context.Context, args UpdateListStatusArgs) (UpdateListStatusResult, error) {
	if err := validateID(args.AnimeID); err != nil {
		return UpdateListStatusResult{}, err
	}
	if err := validateEnum("status", args.Status, watchStatuses); err != nil {
		return UpdateListStatusResult{}, err
	}
	if args.Score != nil {
		if err := validateRange("score", *args.Score, 0, 10); err != nil {
			return UpdateListStatusResult{}, err
		}
	}
	if args.Priority != nil {
		if err := validateRange("priority", *args.Priority, 0, 2); err != nil {
			return UpdateListStatusResult{}, err
		}
	}
	if args.RewatchValue != nil {
		if err := validateRange("rewatch_value", *args.RewatchValue, 0, 5); err != nil {
			return UpdateListStatusResult{}, err
		}
	}
	if err := validateDate("start_date", args.StartDate); err != nil {
		return UpdateListStatusResult{}, err
	}
	if err := validateDate("finish_date", args.FinishDate); err != nil {
		return UpdateListStatusResult{}, err
	}

	return c.UpdateListStatus(ctx, args)
}

// DeleteListItemMCP is the MCP wrapper for removing a list entry.
func (c *Client) DeleteListItemMCP(ctx context.Context, args DeleteListItemArgs) (DeleteListItemResult, error) {
	if err := validateID(args.AnimeID); err != nil {
		return DeleteListItemResult{}, err
	}

	return c.DeleteListItem(ctx, args.AnimeID)
}

// GetUserListMCP is the MCP wrapper for a user's anime list.
func (c *Client) GetUserListMCP(ctx context.Context, args GetUserListArgs) (GetListResult, error) {
	if args.UserName == "" {
		return GetListResult{}, apierrors.NewValidationError("user_name", "", "user name is required")
	}
	if err := validateEnum("status", args.Status, watchStatuses); err != nil {
		return GetListResult{}, err
	}
	if err := validateEnum("sort", args.Sort, userListSorts); err != nil {
		return GetListResult{}, err
	}
	if err := validateLimit(args.Limit, maxUserListLimit); err != nil {
		return GetListResult{}, err
	}
	if err := validateOffset(args.Offset); err != nil {
		return GetListResult{}, err
	}

	return c.UserList(ctx, args.UserName, args.Status, args.Sort, args.Limit, args.Offset, args.Fields)
}
