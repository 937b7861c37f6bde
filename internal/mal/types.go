package mal

// Paging is MAL's cursor-style pagination envelope, passed through to
// callers unchanged.
type Paging struct {
	Next     string `json:"next,omitempty"`
	Previous string `json:"previous,omitempty"`
}

// Ranking carries an item's position in a ranking listing.
type Ranking struct {
	Rank         int  `json:"rank"`
	PreviousRank *int `json:"previous_rank,omitempty"`
}

// Picture is a cover or gallery image.
type Picture struct {
	Medium string `json:"medium,omitempty"`
	Large  string `json:"large,omitempty"`
}

// AlternativeTitles holds localized and synonym titles.
type AlternativeTitles struct {
	Synonyms []string `json:"synonyms,omitempty"`
	En       string   `json:"en,omitempty"`
	Ja       string   `json:"ja,omitempty"`
}

// Genre is an id/name pair, also used for studios and magazines.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ListItem is MAL's list-item wrapper: the entity under a "node" key,
// with optional ranking metadata alongside.
type ListItem[T any] struct {
	Node    T        `json:"node"`
	Ranking *Ranking `json:"ranking,omitempty"`
}

// ListEnvelope is the raw shape of every MAL list response.
type ListEnvelope[T any] struct {
	Data   []ListItem[T] `json:"data"`
	Paging Paging        `json:"paging"`
}
