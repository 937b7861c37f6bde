package anime

import "github.com/ktanaka/mal-mcp-server/internal/mal"

// GetListArgs contains parameters for searching the anime catalog.
type GetListArgs struct {
	Query  string   `json:"q" jsonschema:"required" jsonschema_description:"Search query"`
	Limit  int      `json:"limit,omitempty" jsonschema_description:"Maximum number of results (1-100, default 100)"`
	Offset int      `json:"offset,omitempty" jsonschema_description:"Pagination offset (default 0)"`
	Fields []string `json:"fields,omitempty" jsonschema_description:"Node fields to return (default id and title)"`
}

// GetListResult is a flattened list page: nodes with ranking merged in,
// paging passed through.
type GetListResult struct {
	Data   []Anime    `json:"data"`
	Paging mal.Paging `json:"paging"`
}

// GetDetailsArgs contains parameters for fetching a single anime.
type GetDetailsArgs struct {
	AnimeID int      `json:"anime_id" jsonschema:"required" jsonschema_description:"MyAnimeList anime ID"`
	Fields  []string `json:"fields,omitempty" jsonschema_description:"Fields to return (default id and title)"`
}

// GetDetailsResult wraps the detail body under a uniform data key.
type GetDetailsResult struct {
	Data Anime `json:"data"`
}

// GetRankingArgs contains parameters for the ranking listing.
type GetRankingArgs struct {
	RankingType string   `json:"ranking_type,omitempty" jsonschema_description:"Ranking to list: all, airing, upcoming, tv, ova, movie, special, bypopularity, favorite (default all)"`
	Limit       int      `json:"limit,omitempty" jsonschema_description:"Maximum number of results (1-500, default 100)"`
	Offset      int      `json:"offset,omitempty" jsonschema_description:"Pagination offset (default 0)"`
	Fields      []string `json:"fields,omitempty" jsonschema_description:"Node fields to return (default id and title)"`
}

// GetSeasonalArgs contains parameters for a broadcast season listing.
type GetSeasonalArgs struct {
	Year   int      `json:"year" jsonschema:"required" jsonschema_description:"Broadcast year, e.g. 2024"`
	Season string   `json:"season" jsonschema:"required" jsonschema_description:"Broadcast season: winter, spring, summer, fall"`
	Sort   string   `json:"sort,omitempty" jsonschema_description:"Sort order: anime_score or anime_num_list_users"`
	Limit  int      `json:"limit,omitempty" jsonschema_description:"Maximum number of results (1-500, default 100)"`
	Offset int      `json:"offset,omitempty" jsonschema_description:"Pagination offset (default 0)"`
	Fields []string `json:"fields,omitempty" jsonschema_description:"Node fields to return (default id and title)"`
}

// GetSuggestedArgs contains parameters for personalized suggestions.
// Requires authorization.
type GetSuggestedArgs struct {
	Limit  int      `json:"limit,omitempty" jsonschema_description:"Maximum number of results (1-100, default 100)"`
	Offset int      `json:"offset,omitempty" jsonschema_description:"Pagination offset (default 0)"`
	Fields []string `json:"fields,omitempty" jsonschema_description:"Node fields to return (default id and title)"`
}

// UpdateListStatusArgs contains the writable fields of the authorized
// user's list entry. Only set fields are sent upstream. Requires
// authorization.
type UpdateListStatusArgs struct {
	AnimeID            int      `json:"anime_id" jsonschema:"required" jsonschema_description:"MyAnimeList anime ID"`
	Status             string   `json:"status,omitempty" jsonschema_description:"Watch status: watching, completed, on_hold, dropped, plan_to_watch"`
	IsRewatching       *bool    `json:"is_rewatching,omitempty" jsonschema_description:"Whether the anime is being rewatched"`
	Score              *int     `json:"score,omitempty" jsonschema_description:"Score 0-10"`
	NumWatchedEpisodes *int     `json:"num_watched_episodes,omitempty" jsonschema_description:"Number of episodes watched"`
	Priority           *int     `json:"priority,omitempty" jsonschema_description:"Priority 0-2"`
	NumTimesRewatched  *int     `json:"num_times_rewatched,omitempty" jsonschema_description:"Number of completed rewatches"`
	RewatchValue       *int     `json:"rewatch_value,omitempty" jsonschema_description:"Rewatch value 0-5"`
	Tags               []string `json:"tags,omitempty" jsonschema_description:"List entry tags"`
	Comments           string   `json:"comments,omitempty" jsonschema_description:"List entry comments"`
	StartDate          string   `json:"start_date,omitempty" jsonschema_description:"Date started watching (YYYY-MM-DD)"`
	FinishDate         string   `json:"finish_date,omitempty" jsonschema_description:"Date finished watching (YYYY-MM-DD)"`
}

// UpdateListStatusResult wraps the updated list status returned upstream.
type UpdateListStatusResult struct {
	Data MyListStatus `json:"data"`
}

// DeleteListItemArgs contains parameters for removing a list entry.
// Requires authorization.
type DeleteListItemArgs struct {
	AnimeID int `json:"anime_id" jsonschema:"required" jsonschema_description:"MyAnimeList anime ID"`
}

// DeleteListItemResult reports the outcome of a delete. A missing entry
// is an unsuccessful result, not an error.
type DeleteListItemResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// GetUserListArgs contains parameters for a user's anime list. The
// literal user name "@me" targets the authorized user and requires
// authorization; any other name is public.
type GetUserListArgs struct {
	UserName string   `json:"user_name" jsonschema:"required" jsonschema_description:"MyAnimeList user name, or @me for the authorized user"`
	Status   string   `json:"status,omitempty" jsonschema_description:"Filter by watch status: watching, completed, on_hold, dropped, plan_to_watch"`
	Sort     string   `json:"sort,omitempty" jsonschema_description:"Sort order: list_score, list_updated_at, anime_title, anime_start_date, anime_id"`
	Limit    int      `json:"limit,omitempty" jsonschema_description:"Maximum number of results (1-1000, default 100)"`
	Offset   int      `json:"offset,omitempty" jsonschema_description:"Pagination offset (default 0)"`
	Fields   []string `json:"fields,omitempty" jsonschema_description:"Node fields to return (default id and title)"`
}
