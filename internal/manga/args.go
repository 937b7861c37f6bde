package manga

import "github.com/ktanaka/mal-mcp-server/internal/mal"

// GetListArgs contains parameters for searching the manga catalog.
type GetListArgs struct {
	Query  string   `json:"q" jsonschema:"required" jsonschema_description:"Search query"`
	Limit  int      `json:"limit,omitempty" jsonschema_description:"Maximum number of results (1-100, default 100)"`
	Offset int      `json:"offset,omitempty" jsonschema_description:"Pagination offset (default 0)"`
	Fields []string `json:"fields,omitempty" jsonschema_description:"Node fields to return (default id and title)"`
}

// GetListResult is a flattened list page: nodes with ranking merged in,
// paging passed through.
type GetListResult struct {
	Data   []Manga    `json:"data"`
	Paging mal.Paging `json:"paging"`
}

// GetDetailsArgs contains parameters for fetching a single manga.
type GetDetailsArgs struct {
	MangaID int      `json:"manga_id" jsonschema:"required" jsonschema_description:"MyAnimeList manga ID"`
	Fields  []string `json:"fields,omitempty" jsonschema_description:"Fields to return (default id and title)"`
}

// GetDetailsResult wraps the detail body under a uniform data key.
type GetDetailsResult struct {
	Data Manga `json:"data"`
}

// GetRankingArgs contains parameters for the ranking listing.
type GetRankingArgs struct {
	RankingType string   `json:"ranking_type,omitempty" jsonschema_description:"Ranking to list: all, manga, novels, oneshots, doujin, manhwa, manhua, bypopularity, favorite (default all)"`
	Limit       int      `json:"limit,omitempty" jsonschema_description:"Maximum number of results (1-500, default 100)"`
	Offset      int      `json:"offset,omitempty" jsonschema_description:"Pagination offset (default 0)"`
	Fields      []string `json:"fields,omitempty" jsonschema_description:"Node fields to return (default id and title)"`
}

// UpdateListStatusArgs contains the writable fields of the authorized
// user's list entry. Only set fields are sent upstream. Requires
// authorization.
type UpdateListStatusArgs struct {
	MangaID         int      `json:"manga_id" jsonschema:"required" jsonschema_description:"MyAnimeList manga ID"`
	Status          string   `json:"status,omitempty" jsonschema_description:"Read status: reading, completed, on_hold, dropped, plan_to_read"`
	IsRereading     *bool    `json:"is_rereading,omitempty" jsonschema_description:"Whether the manga is being reread"`
	Score           *int     `json:"score,omitempty" jsonschema_description:"Score 0-10"`
	NumVolumesRead  *int     `json:"num_volumes_read,omitempty" jsonschema_description:"Number of volumes read"`
	NumChaptersRead *int     `json:"num_chapters_read,omitempty" jsonschema_description:"Number of chapters read"`
	Priority        *int     `json:"priority,omitempty" jsonschema_description:"Priority 0-2"`
	NumTimesReread  *int     `json:"num_times_reread,omitempty" jsonschema_description:"Number of completed rereads"`
	RereadValue     *int     `json:"reread_value,omitempty" jsonschema_description:"Reread value 0-5"`
	Tags            []string `json:"tags,omitempty" jsonschema_description:"List entry tags"`
	Comments        string   `json:"comments,omitempty" jsonschema_description:"List entry comments"`
	StartDate       string   `json:"start_date,omitempty" jsonschema_description:"Date started reading (YYYY-MM-DD)"`
	FinishDate      string   `json:"finish_date,omitempty" jsonschema_description:"Date finished reading (YYYY-MM-DD)"`
}

// UpdateListStatusResult wraps the updated list status returned upstream.
type UpdateListStatusResult struct {
	Data MyListStatus `json:"data"`
}

// DeleteListItemArgs contains parameters for removing a list entry.
// Requires authorization.
type DeleteListItemArgs struct {
	MangaID int `json:"manga_id" jsonschema:"required" jsonschema_description:"MyAnimeList manga ID"`
}

// DeleteListItemResult reports the outcome of a delete. A missing entry
// is an unsuccessful result, not an error.
type DeleteListItemResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// GetUserListArgs contains parameters for a user's manga list. The
// literal user name "@me" targets the authorized user and requires
// authorization; any other name is public.
type GetUserListArgs struct {
	UserName string   `json:"user_name" jsonschema:"required" jsonschema_description:"MyAnimeList user name, or @me for the authorized user"`
	Status   string   `json:"status,omitempty" jsonschema_description:"Filter by read status: reading, completed, on_hold, dropped, plan_to_read"`
	Sort     string   `json:"sort,omitempty" jsonschema_description:"Sort order: list_score, list_updated_at, manga_title, manga_start_date, manga_id"`
	Limit    int      `json:"limit,omitempty" jsonschema_description:"Maximum number of results (1-1000, default 100)"`
	Offset   int      `json:"offset,omitempty" jsonschema_description:"Pagination offset (default 0)"`
	Fields   []string `json:"fields,omitempty" jsonschema_description:"Node fields to return (default id and title)"`
}
