package tools

// AllTools contains all tool specifications for the MAL MCP server.
// Tools are organized by catalog kind for easier maintenance.
// Tool descriptions follow a structured format for optimal LLM tool selection:
// - USE WHEN: Natural language triggers
// - NOT FOR: Disambiguation from similar tools
// - PARAMETERS: Key arguments with defaults
// - RETURNS: What the tool returns
var AllTools = []ToolSpec{
	// ==========================================================================
	// ANIME TOOLS
	// ==========================================================================
	{
		Name:     "getanimelist",
		Method:   "GetAnimeList",
		Title:    "Search Anime",
		Category: "catalog",
		Kind:     "anime",
		Description: `Search the MyAnimeList anime catalog by text query.

USE WHEN: User asks "find anime about X", "search for Naruto", or wants anime matching a phrase.

NOT FOR: Top-rated listings (use getanimeranking). Not for a known anime ID (use getanimedetails).

PARAMETERS:
- q: Search query (required)
- limit: Max results, 1-100 (default 100)
- offset: Pagination offset (default 0)
- fields: Node fields to return (default id, title)

RETURNS: Matching anime with paging cursors.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "getanimedetails",
		Method:   "GetAnimeDetails",
		Title:    "Get Anime Details",
		Category: "catalog",
		Kind:     "anime",
		Description: `Get full details for one anime by its MyAnimeList ID.

USE WHEN: User asks "tell me about anime 5114", or a previous search returned an ID to expand.

NOT FOR: Finding an anime by name (use getanimelist).

PARAMETERS:
- anime_id: MyAnimeList anime ID (required)
- fields: Fields to return, e.g. synopsis, mean, genres, statistics (default id, title)

RETURNS: The anime record with the requested fields.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "getanimeranking",
		Method:   "GetAnimeRanking",
		Title:    "Get Anime Ranking",
		Category: "catalog",
		Kind:     "anime",
		Description: `List top anime by a ranking type.

USE WHEN: User asks "top anime", "best airing shows", "most popular movies".

NOT FOR: Text search (use getanimelist). Not for a specific season (use getseasonalanime).

PARAMETERS:
- ranking_type: all, airing, upcoming, tv, ova, movie, special, bypopularity, favorite (default all)
- limit: Max results, 1-500 (default 100)
- offset: Pagination offset (default 0)
- fields: Node fields to return (default id, title)

RETURNS: Ranked anime with rank numbers merged onto each entry, plus paging cursors.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "getseasonalanime",
		Method:   "GetSeasonalAnime",
		Title:    "Get Seasonal Anime",
		Category: "catalog",
		Kind:     "anime",
		Description: `List anime that aired in a specific broadcast season.

USE WHEN: User asks "what aired in fall 2023", "this season's anime", "winter 2024 lineup".

NOT FOR: All-time rankings (use getanimeranking).

PARAMETERS:
- year: Broadcast year (required)
- season: winter, spring, summer, fall (required)
- sort: anime_score or anime_num_list_users (optional)
- limit: Max results, 1-500 (default 100)
- offset: Pagination offset (default 0)
- fields: Node fields to return (default id, title)

RETURNS: Seasonal anime with paging cursors.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "getsuggestedanime",
		Method:   "GetSuggestedAnime",
		Title:    "Get Suggested Anime",
		Category: "list",
		Kind:     "anime",
		Description: `List personalized anime suggestions for the authorized user.

USE WHEN: User asks "what should I watch next", "recommend me anime".

NOT FOR: Generic top listings (use getanimeranking). Requires prior authorization via the login URL.

PARAMETERS:
- limit: Max results, 1-100 (default 100)
- offset: Pagination offset (default 0)
- fields: Node fields to return (default id, title)

RETURNS: Suggested anime with paging cursors.`,
		RequiresAuth: true,
		ReadOnly:     true,
		Idempotent:   true,
		OpenWorld:    true,
	},
	{
		Name:     "updatemyanimeliststatus",
		Method:   "UpdateAnimeListStatus",
		Title:    "Update Anime List Status",
		Category: "write",
		Kind:     "anime",
		Description: `Create or update the authorized user's list entry for an anime.

USE WHEN: User says "mark X as completed", "set my score to 8", "I watched 12 episodes".

NOT FOR: Removing an entry (use deletemyanimelistitem). Requires prior authorization.

PARAMETERS:
- anime_id: MyAnimeList anime ID (required)
- status: watching, completed, on_hold, dropped, plan_to_watch
- score: 0-10
- num_watched_episodes, is_rewatching, priority (0-2), num_times_rewatched,
  rewatch_value (0-5), tags, comments, start_date, finish_date (YYYY-MM-DD)

RETURNS: The updated list status.`,
		RequiresAuth: true,
		Idempotent:   true,
		OpenWorld:    true,
	},
	{
		Name:     "deletemyanimelistitem",
		Method:   "DeleteAnimeListItem",
		Title:    "Delete Anime List Item",
		Category: "write",
		Kind:     "anime",
		Description: `Remove an anime from the authorized user's list.

USE WHEN: User says "remove X from my list", "delete that entry".

NOT FOR: Changing a status (use updatemyanimeliststatus). Requires prior authorization.

PARAMETERS:
- anime_id: MyAnimeList anime ID (required)

RETURNS: success true when removed; success false when the anime was not on the list.`,
		RequiresAuth: true,
		Destructive:  true,
		Idempotent:   true,
		OpenWorld:    true,
	},
	{
		Name:     "getuseranimelist",
		Method:   "GetUserAnimeList",
		Title:    "Get User Anime List",
		Category: "list",
		Kind:     "anime",
		Description: `Get a user's anime list, optionally filtered and sorted.

USE WHEN: User asks "show my anime list", "what is <user> watching", "my completed shows".

NOT FOR: Catalog search (use getanimelist). The name "@me" targets the authorized user and requires prior authorization; other user names are public.

PARAMETERS:
- user_name: MyAnimeList user name or @me (required)
- status: watching, completed, on_hold, dropped, plan_to_watch (optional)
- sort: list_score, list_updated_at, anime_title, anime_start_date, anime_id (optional)
- limit: Max results, 1-1000 (default 100)
- offset: Pagination offset (default 0)
- fields: Node fields to return (default id, title)

RETURNS: List entries with paging cursors.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// MANGA TOOLS
	// ==========================================================================
	{
		Name:     "getmangalist",
		Method:   "GetMangaList",
		Title:    "Search Manga",
		Category: "catalog",
		Kind:     "manga",
		Description: `Search the MyAnimeList manga catalog by text query.

USE WHEN: User asks "find manga about X", "search for Berserk".

NOT FOR: Top-rated listings (use getmangaranking). Not for a known manga ID (use getmangadetails).

PARAMETERS:
- q: Search query (required)
- limit: Max results, 1-100 (default 100)
- offset: Pagination offset (default 0)
- fields: Node fields to return (default id, title)

RETURNS: Matching manga with paging cursors.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "getmangadetails",
		Method:   "GetMangaDetails",
		Title:    "Get Manga Details",
		Category: "catalog",
		Kind:     "manga",
		Description: `Get full details for one manga by its MyAnimeList ID.

USE WHEN: User asks "tell me about manga 2", or a previous search returned an ID to expand.

NOT FOR: Finding a manga by name (use getmangalist).

PARAMETERS:
- manga_id: MyAnimeList manga ID (required)
- fields: Fields to return, e.g. synopsis, authors, serialization (default id, title)

RETURNS: The manga record with the requested fields.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "getmangaranking",
		Method:   "GetMangaRanking",
		Title:    "Get Manga Ranking",
		Category: "catalog",
		Kind:     "manga",
		Description: `List top manga by a ranking type.

USE WHEN: User asks "top manga", "best light novels", "most popular manhwa".

NOT FOR: Text search (use getmangalist).

PARAMETERS:
- ranking_type: all, manga, novels, oneshots, doujin, manhwa, manhua, bypopularity, favorite (default all)
- limit: Max results, 1-500 (default 100)
- offset: Pagination offset (default 0)
- fields: Node fields to return (default id, title)

RETURNS: Ranked manga with rank numbers merged onto each entry, plus paging cursors.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "updatemymangaliststatus",
		Method:   "UpdateMangaListStatus",
		Title:    "Update Manga List Status",
		Category: "write",
		Kind:     "manga",
		Description: `Create or update the authorized user's list entry for a manga.

USE WHEN: User says "mark X as reading", "I read 30 chapters", "score it 9".

NOT FOR: Removing an entry (use deletemymangalistitem). Requires prior authorization.

PARAMETERS:
- manga_id: MyAnimeList manga ID (required)
- status: reading, completed, on_hold, dropped, plan_to_read
- score: 0-10
- num_volumes_read, num_chapters_read, is_rereading, priority (0-2),
  num_times_reread, reread_value (0-5), tags, comments, start_date, finish_date (YYYY-MM-DD)

RETURNS: The updated list status.`,
		RequiresAuth: true,
		Idempotent:   true,
		OpenWorld:    true,
	},
	{
		Name:     "deletemymangalistitem",
		Method:   "DeleteMangaListItem",
		Title:    "Delete Manga List Item",
		Category: "write",
		Kind:     "manga",
		Description: `Remove a manga from the authorized user's list.

USE WHEN: User says "remove X from my manga list".

NOT FOR: Changing a status (use updatemymangaliststatus). Requires prior authorization.

PARAMETERS:
- manga_id: MyAnimeList manga ID (required)

RETURNS: success true when removed; success false when the manga was not on the list.`,
		RequiresAuth: true,
		Destructive:  true,
		Idempotent:   true,
		OpenWorld:    true,
	},
	{
		Name:     "getusermangalist",
		Method:   "GetUserMangaList",
		Title:    "Get User Manga List",
		Category: "list",
		Kind:     "manga",
		Description: `Get a user's manga list, optionally filtered and sorted.

USE WHEN: User asks "show my manga list", "what is <user> reading".

NOT FOR: Catalog search (use getmangalist). The name "@me" targets the authorized user and requires prior authorization; other user names are public.

PARAMETERS:
- user_name: MyAnimeList user name or @me (required)
- status: reading, completed, on_hold, dropped, plan_to_read (optional)
- sort: list_score, list_updated_at, manga_title, manga_start_date, manga_id (optional)
- limit: Max results, 1-1000 (default 100)
- offset: Pagination offset (default 0)
- fields: Node fields to return (default id, title)

RETURNS: List entries with paging cursors.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
}
