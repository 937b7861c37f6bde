package manga

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	apierrors "github.com/ktanaka/mal-mcp-server/internal/errors"
	"github.com/ktanaka/mal-mcp-server/internal/mal"
)

const (
	defaultLimit = 100

	maxListLimit     = 100
	maxRankingLimit  = 500
	maxUserListLimit = 1000
)

var defaultFields = []string{"id", "title"}

// Client exposes the manga endpoints of the MAL API.
type Client struct {
	api    *mal.Client
	logger *slog.Logger
}

// NewClient creates a manga client on top of the shared API client.
func NewClient(api *mal.Client, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{api: api, logger: logger}
}

// listQuery builds the shared limit/offset/fields query parameters.
// The fields selector is comma-joined in the order given.
func listQuery(limit, offset int, fields []string) url.Values {
	if limit == 0 {
		limit = defaultLimit
	}
	if len(fields) == 0 {
		fields = defaultFields
	}

	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))
	q.Set("fields", strings.Join(fields, ","))
	return q
}

// flatten lifts each node out of its wrapper, merging ranking metadata
// onto the node when present. Order and count are preserved.
func flatten(env mal.ListEnvelope[Manga]) []Manga {
	out := make([]Manga, 0, len(env.Data))
	for _, item := range env.Data {
		node := item.Node
		if item.Ranking != nil {
			node.Ranking = item.Ranking
		}
		out = append(out, node)
	}
	return out
}

func (c *Client) list(ctx context.Context, path string, query url.Values) (GetListResult, error) {
	body, status, err := c.api.Get(ctx, path, query)
	if err != nil {
		return GetListResult{}, err
	}

	var env mal.ListEnvelope[Manga]
	if err := c.api.DecodeOK(body, status, &env); err != nil {
		return GetListResult{}, err
	}

	return GetListResult{Data: flatten(env), Paging: env.Paging}, nil
}

// List searches the manga catalog.
func (c *Client) List(ctx context.Context, query string, limit, offset int, fields []string) (GetListResult, error) {
	q := listQuery(limit, offset, fields)
	q.Set("q", query)
	return c.list(ctx, "/manga", q)
}

// Details fetches a single manga by ID.
func (c *Client) Details(ctx context.Context, id int, fields []string) (GetDetailsResult, error) {
	if len(fields) == 0 {
		fields = defaultFields
	}
	q := url.Values{}
	q.Set("fields", strings.Join(fields, ","))

	body, status, err := c.api.Get(ctx, fmt.Sprintf("/manga/%d", id), q)
	if err != nil {
		return GetDetailsResult{}, err
	}

	var node Manga
	if err := c.api.DecodeOK(body, status, &node); err != nil {
		return GetDetailsResult{}, err
	}

	return GetDetailsResult{Data: node}, nil
}

// Ranking lists the manga ranking of the given type.
func (c *Client) Ranking(ctx context.Context, rankingType string, limit, offset int, fields []string) (GetListResult, error) {
	if rankingType == "" {
		rankingType = "all"
	}
	q := listQuery(limit, offset, fields)
	q.Set("ranking_type", rankingType)
	return c.list(ctx, "/manga/ranking", q)
}

// UpdateListStatus updates the authorized user's list entry for a
// manga. Only the fields present in args are sent; an entry is created
// upstream if none exists.
func (c *Client) UpdateListStatus(ctx context.Context, args UpdateListStatusArgs) (UpdateListStatusResult, error) {
	if err := c.api.RequireToken(); err != nil {
		return UpdateListStatusResult{}, err
	}

	form := url.Values{}
	if args.Status != "" {
		form.Set("status", args.Status)
	}
	if args.IsRereading != nil {
		form.Set("is_rereading", strconv.FormatBool(*args.IsRereading))
	}
	if args.Score != nil {
		form.Set("score", strconv.Itoa(*args.Score))
	}
	if args.NumVolumesRead != nil {
		form.Set("num_volumes_read", strconv.Itoa(*args.NumVolumesRead))
	}
	if args.NumChaptersRead != nil {
		form.Set("num_chapters_read", strconv.Itoa(*args.NumChaptersRead))
	}
	if args.Priority != nil {
		form.Set("priority", strconv.Itoa(*args.Priority))
	}
	if args.NumTimesReread != nil {
		form.Set("num_times_reread", strconv.Itoa(*args.NumTimesReread))
	}
	if args.RereadValue != nil {
		form.Set("reread_value", strconv.Itoa(*args.RereadValue))
	}
	if len(args.Tags) > 0 {
		form.Set("tags", strings.Join(args.Tags, ","))
	}
	if args.Comments != "" {
		form.Set("comments", args.Comments)
	}
	if args.StartDate != "" {
		form.Set("start_date", args.StartDate)
	}
	if args.FinishDate != "" {
		form.Set("finish_date", args.FinishDate)
	}

	body, status, err := c.api.Patch(ctx, fmt.Sprintf("/manga/%d/my_list_status", args.MangaID), form)
	if err != nil {
		return UpdateListStatusResult{}, err
	}
	if status == http.StatusNotFound {
		return UpdateListStatusResult{}, apierrors.NewNotFoundError("manga", args.MangaID)
	}

	var ls MyListStatus
	if err := c.api.DecodeOK(body, status, &ls); err != nil {
		return UpdateListStatusResult{}, err
	}

	return UpdateListStatusResult{Data: ls}, nil
}

// DeleteListItem removes a manga from the authorized user's list. A
// missing entry yields an unsuccessful result rather than an error.
func (c *Client) DeleteListItem(ctx context.Context, id int) (DeleteListItemResult, error) {
	if err := c.api.RequireToken(); err != nil {
		return DeleteListItemResult{}, err
	}

	body, status, err := c.api.Delete(ctx, fmt.Sprintf("/manga/%d/my_list_status", id))
	if err != nil {
		return DeleteListItemResult{}, err
	}

	switch {
	case status == http.StatusOK:
		return DeleteListItemResult{Success: true, Message: "Manga deleted successfully from your list."}, nil
	case status == http.StatusNotFound:
		return DeleteListItemResult{Success: false, Message: "Manga not found in your list."}, nil
	default:
		c.logger.Debug("delete failed", "status", status, "body", string(body))
		return DeleteListItemResult{}, apierrors.NewUpstreamError(status, body)
	}
}

// UserList lists a user's manga list. The name "@me" targets the
// authorized user and is gated; other names are public.
func (c *Client) UserList(ctx context.Context, userName, statusFilter, sort string, limit, offset int, fields []string) (GetListResult, error) {
	if userName == "@me" {
		if err := c.api.RequireToken(); err != nil {
			return GetListResult{}, err
		}
	}

	q := listQuery(limit, offset, fields)
	if statusFilter != "" {
		q.Set("status", statusFilter)
	}
	if sort != "" {
		q.Set("sort", sort)
	}
	return c.list(ctx, "/users/"+url.PathEscape(userName)+"/mangalist", q)
}
