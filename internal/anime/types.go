// Package anime exposes the anime half of the MAL catalog as typed
// operations and MCP tool wrappers.
package anime

import (
	"encoding/json"

	"github.com/ktanaka/mal-mcp-server/internal/mal"
)

// Anime is the catalog node for the anime kind. MAL returns only the
// requested fields, so everything beyond id/title is optional. Ranking
// is not an upstream node field; it is merged in from the list wrapper
// by ranking endpoints.
type Anime struct {
	ID                     int                    `json:"id,omitempty"`
	Title                  string                 `json:"title,omitempty"`
	MainPicture            *mal.Picture           `json:"main_picture,omitempty"`
	AlternativeTitles      *mal.AlternativeTitles `json:"alternative_titles,omitempty"`
	StartDate              string                 `json:"start_date,omitempty"`
	EndDate                string                 `json:"end_date,omitempty"`
	Synopsis               string                 `json:"synopsis,omitempty"`
	Mean                   *float64               `json:"mean,omitempty"`
	Rank                   *int                   `json:"rank,omitempty"`
	Popularity             *int                   `json:"popularity,omitempty"`
	NumListUsers           *int                   `json:"num_list_users,omitempty"`
	NumScoringUsers        *int                   `json:"num_scoring_users,omitempty"`
	NSFW                   string                 `json:"nsfw,omitempty"`
	Genres                 []mal.Genre            `json:"genres,omitempty"`
	CreatedAt              string                 `json:"created_at,omitempty"`
	UpdatedAt              string                 `json:"updated_at,omitempty"`
	MediaType              string                 `json:"media_type,omitempty"`
	Status                 string                 `json:"status,omitempty"`
	MyListStatus           *MyListStatus          `json:"my_list_status,omitempty"`
	NumEpisodes            *int                   `json:"num_episodes,omitempty"`
	StartSeason            *StartSeason           `json:"start_season,omitempty"`
	Broadcast              *Broadcast             `json:"broadcast,omitempty"`
	Source                 string                 `json:"source,omitempty"`
	AverageEpisodeDuration *int                   `json:"average_episode_duration,omitempty"`
	Rating                 string                 `json:"rating,omitempty"`
	Studios                []mal.Genre            `json:"studios,omitempty"`
	Pictures               []mal.Picture          `json:"pictures,omitempty"`
	Background             string                 `json:"background,omitempty"`
	RelatedAnime           []RelatedAnime         `json:"related_anime,omitempty"`
	RelatedManga           json.RawMessage        `json:"related_manga,omitempty"`
	Recommendations        json.RawMessage        `json:"recommendations,omitempty"`
	Statistics             *Statistics            `json:"statistics,omitempty"`
	Ranking                *mal.Ranking           `json:"ranking,omitempty"`
}

// MyListStatus is the authorized user's list entry for an anime. It is
// also the shape returned by a status update PATCH.
type MyListStatus struct {
	Status             string   `json:"status,omitempty"`
	Score              int      `json:"score"`
	NumEpisodesWatched int      `json:"num_episodes_watched"`
	IsRewatching       bool     `json:"is_rewatching"`
	StartDate          string   `json:"start_date,omitempty"`
	FinishDate         string   `json:"finish_date,omitempty"`
	Priority           int      `json:"priority"`
	NumTimesRewatched  int      `json:"num_times_rewatched"`
	RewatchValue       int      `json:"rewatch_value"`
	Tags               []string `json:"tags,omitempty"`
	Comments           string   `json:"comments,omitempty"`
	UpdatedAt          string   `json:"updated_at,omitempty"`
}

// StartSeason is the broadcast season an anime premiered in.
type StartSeason struct {
	Year   int    `json:"year"`
	Season string `json:"season"`
}

// Broadcast is the weekly broadcast slot.
type Broadcast struct {
	DayOfTheWeek string `json:"day_of_the_week"`
	StartTime    string `json:"start_time,omitempty"`
}

// RelatedAnime links a detail response to a related entry.
type RelatedAnime struct {
	Node                  Anime  `json:"node"`
	RelationType          string `json:"relation_type"`
	RelationTypeFormatted string `json:"relation_type_formatted,omitempty"`
}

// Statistics is the list-status breakdown on a detail response.
type Statistics struct {
	NumListUsers int             `json:"num_list_users"`
	Status       StatusBreakdown `json:"status"`
}

// StatusBreakdown counts list entries per watch status.
type StatusBreakdown struct {
	Watching    json.Number `json:"watching"`
	Completed   json.Number `json:"completed"`
	OnHold      json.Number `json:"on_hold"`
	Dropped     json.Number `json:"dropped"`
	PlanToWatch json.Number `json:"plan_to_watch"`
}
