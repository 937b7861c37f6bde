// Package manga exposes the manga half of the MAL catalog as typed
// operations and MCP tool wrappers.
package manga

import (
	"encoding/json"

	"github.com/ktanaka/mal-mcp-server/internal/mal"
)

// Manga is the catalog node for the manga kind. MAL returns only the
// requested fields, so everything beyond id/title is optional. Ranking
// is merged in from the list wrapper by the ranking endpoint.
type Manga struct {
	ID                int                    `json:"id,omitempty"`
	Title             string                 `json:"title,omitempty"`
	MainPicture       *mal.Picture           `json:"main_picture,omitempty"`
	AlternativeTitles *mal.AlternativeTitles `json:"alternative_titles,omitempty"`
	StartDate         string                 `json:"start_date,omitempty"`
	EndDate           string                 `json:"end_date,omitempty"`
	Synopsis          string                 `json:"synopsis,omitempty"`
	Mean              *float64               `json:"mean,omitempty"`
	Rank              *int                   `json:"rank,omitempty"`
	Popularity        *int                   `json:"popularity,omitempty"`
	NumListUsers      *int                   `json:"num_list_users,omitempty"`
	NumScoringUsers   *int                   `json:"num_scoring_users,omitempty"`
	NSFW              string                 `json:"nsfw,omitempty"`
	Genres            []mal.Genre            `json:"genres,omitempty"`
	CreatedAt         string                 `json:"created_at,omitempty"`
	UpdatedAt         string                 `json:"updated_at,omitempty"`
	MediaType         string                 `json:"media_type,omitempty"`
	Status            string                 `json:"status,omitempty"`
	MyListStatus      *MyListStatus          `json:"my_list_status,omitempty"`
	NumVolumes        *int                   `json:"num_volumes,omitempty"`
	NumChapters       *int                   `json:"num_chapters,omitempty"`
	Authors           []Author               `json:"authors,omitempty"`
	Pictures          []mal.Picture          `json:"pictures,omitempty"`
	Background        string                 `json:"background,omitempty"`
	RelatedAnime      json.RawMessage        `json:"related_anime,omitempty"`
	RelatedManga      []RelatedManga         `json:"related_manga,omitempty"`
	Recommendations   json.RawMessage        `json:"recommendations,omitempty"`
	Serialization     []Serialization        `json:"serialization,omitempty"`
	Ranking           *mal.Ranking           `json:"ranking,omitempty"`
}

// MyListStatus is the authorized user's list entry for a manga. It is
// also the shape returned by a status update PATCH.
type MyListStatus struct {
	Status          string   `json:"status,omitempty"`
	Score           int      `json:"score"`
	NumVolumesRead  int      `json:"num_volumes_read"`
	NumChaptersRead int      `json:"num_chapters_read"`
	IsRereading     bool     `json:"is_rereading"`
	StartDate       string   `json:"start_date,omitempty"`
	FinishDate      string   `json:"finish_date,omitempty"`
	Priority        int      `json:"priority"`
	NumTimesReread  int      `json:"num_times_reread"`
	RereadValue     int      `json:"reread_value"`
	Tags            []string `json:"tags,omitempty"`
	Comments        string   `json:"comments,omitempty"`
	UpdatedAt       string   `json:"updated_at,omitempty"`
}

// Author credits a person with their role on the work.
type Author struct {
	Node Person `json:"node"`
	Role string `json:"role,omitempty"`
}

// Person is an author node.
type Person struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// Serialization names a magazine the work was serialized in.
type Serialization struct {
	Node mal.Genre `json:"node"`
}

// RelatedManga links a detail response to a related entry.
type RelatedManga struct {
	Node                  Manga  `json:"node"`
	RelationType          string `json:"relation_type"`
	RelationTypeFormatted string `json:"relation_type_formatted,omitempty"`
}
