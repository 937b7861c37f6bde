package manga

import (
	"context"

	apierrors "github.com/ktanaka/mal-mcp-server/internal/errors"
)

// MCP Tool wrapper methods
// These methods wrap the client methods with Args/Result types for MCP integration.

// GetListMCP is the MCP wrapper for searching the manga catalog.
func (c *Client) GetListMCP(ctx context.Context, args GetListArgs) (GetListResult, error) {
	if err := validateLimit(args.Limit, maxListLimit); err != nil {
		return GetListResult{}, err
	}
	if err := validateOffset(args.Offset); err != nil {
		return GetListResult{}, err
	}

	return c.List(ctx, args.Query, args.Limit, args.Offset, args.Fields)
}

// GetDetailsMCP is the MCP wrapper for fetching a single manga.
func (c *Client) GetDetailsMCP(ctx context.Context, args GetDetailsArgs) (GetDetailsResult, error) {
	if err := validateID(args.MangaID); err != nil {
		return GetDetailsResult{}, err
	}

	return c.Details(ctx, args.MangaID, args.Fields)
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

// UpdateListStatusMCP is the MCP wrapper for updating a list entry.
func (c *Client) UpdateListStatusMCP(ctx context.Context, args UpdateListStatusArgs) (UpdateListStatusResult, error) {
	if err := validateID(args.MangaID); err != nil {
		return UpdateListStatusResult{}, err
	}
	if err := validateEnum("status", args.Status, readStatuses); err != nil {
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
	if args.RereadValue != nil {
		if err := validateRange("reread_value", *args.RereadValue, 0, 5); err != nil {
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
	if err := validateID(args.MangaID); err != nil {
		return DeleteListItemResult{}, err
	}

	return c.DeleteListItem(ctx, args.MangaID)
}

// GetUserListMCP is the MCP wrapper for a user's manga list.
func (c *Client) GetUserListMCP(ctx context.Context, args GetUserListArgs) (GetListResult, error) {
	if args.UserName == "" {
		return GetListResult{}, apierrors.NewValidationError("user_name", "", "user name is required")
	}
	if err := validateEnum("status", args.Status, readStatuses); err != nil {
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
