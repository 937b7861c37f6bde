package manga

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	apierrors "github.com/ktanaka/mal-mcp-server/internal/errors"
	"github.com/ktanaka/mal-mcp-server/internal/mal"
)

func testConfig() *mal.Config {
	return &mal.Config{
		ClientID:    "cid",
		Port:        "8080",
		RedirectURI: "http://localhost:8080/oauth/callback",
		Timeout:     5 * time.Second,
	}
}

func newTestClient(t *testing.T, handler http.Handler) (*Client, *mal.Session) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	session := mal.NewSession()
	api := mal.NewClient(testConfig(), session, mal.WithBaseURL(server.URL))
	return NewClient(api, nil), session
}

func TestRankingMergesRankOntoNodes(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/manga/ranking" {
			t.Errorf("path = %q, want /manga/ranking", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{
			"data": [
				{"node": {"id": 2, "title": "Berserk"}, "ranking": {"rank": 1}},
				{"node": {"id": 1706, "title": "JoJo"}, "ranking": {"rank": 2}}
			],
			"paging": {}
		}`))
	}))

	result, err := client.Ranking(context.Background(), "manga", 0, 0, nil)
	if err != nil {
		t.Fatalf("Ranking failed: %v", err)
	}
	if len(result.Data) != 2 {
		t.Fatalf("got %d items, want 2", len(result.Data))
	}
	if result.Data[0].Ranking == nil || result.Data[0].Ranking.Rank != 1 {
		t.Errorf("first item ranking = %+v", result.Data[0].Ranking)
	}
	if result.Data[0].ID != 2 || result.Data[1].ID != 1706 {
		t.Error("item order was not preserved")
	}
}

func TestDetailsDecodesMangaFields(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/manga/2" {
			t.Errorf("path = %q, want /manga/2", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{
			"id": 2,
			"title": "Berserk",
			"num_volumes": 0,
			"num_chapters": 0,
			"authors": [{"node": {"id": 1868, "first_name": "Kentarou", "last_name": "Miura"}, "role": "Story & Art"}],
			"serialization": [{"node": {"id": 2, "name": "Young Animal"}}]
		}`))
	}))

	result, err := client.Details(context.Background(), 2, []string{"id", "title", "authors", "serialization"})
	if err != nil {
		t.Fatalf("Details failed: %v", err)
	}
	if result.Data.Title != "Berserk" {
		t.Errorf("title = %q", result.Data.Title)
	}
	if len(result.Data.Authors) != 1 || result.Data.Authors[0].Node.LastName != "Miura" {
		t.Errorf("authors = %+v", result.Data.Authors)
	}
	if len(result.Data.Serialization) != 1 || result.Data.Serialization[0].Node.Name != "Young Animal" {
		t.Errorf("serialization = %+v", result.Data.Serialization)
	}
}

func TestGatedToolsFailBeforeNetwork(t *testing.T) {
	var calls atomic.Int64
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{}`))
	}))
	ctx := context.Background()

	if _, err := client.UpdateListStatus(ctx, UpdateListStatusArgs{MangaID: 1, Status: "reading"}); !apierrors.IsAuthRequired(err) {
		t.Errorf("update: expected AuthRequiredError, got %v", err)
	}
	if _, err := client.DeleteListItem(ctx, 1); !apierrors.IsAuthRequired(err) {
		t.Errorf("delete: expected AuthRequiredError, got %v", err)
	}
	if _, err := client.UserList(ctx, "@me", "", "", 0, 0, nil); !apierrors.IsAuthRequired(err) {
		t.Errorf("own user list: expected AuthRequiredError, got %v", err)
	}

	if got := calls.Load(); got != 0 {
		t.Errorf("upstream saw %d requests, want 0 before authorization", got)
	}
}

func TestDeleteListItemStatusMapping(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		wantSuccess bool
		wantMessage string
		wantErr     bool
	}{
		{"deleted", http.StatusOK, true, "Manga deleted successfully from your list.", false},
		{"not on list", http.StatusNotFound, false, "Manga not found in your list.", false},
		{"upstream failure", http.StatusBadGateway, false, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, session := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{}`))
			}))
			session.SetToken(&mal.AccessToken{AccessToken: "tok"})

			result, err := client.DeleteListItem(context.Background(), 2)
			if tt.wantErr {
				if !apierrors.IsUpstream(err) {
					t.Fatalf("expected UpstreamError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DeleteListItem failed: %v", err)
			}
			if result.Success != tt.wantSuccess || result.Message != tt.wantMessage {
				t.Errorf("result = %+v", result)
			}
		})
	}
}

func TestUpdateListStatusFormFields(t *testing.T) {
	client, session := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("method = %q, want PATCH", r.Method)
		}
		if r.URL.Path != "/manga/2/my_list_status" {
			t.Errorf("path = %q", r.URL.Path)
		}
		_ = r.ParseForm()
		if got := r.PostForm.Get("num_chapters_read"); got != "364" {
			t.Errorf("num_chapters_read = %q", got)
		}
		if got := r.PostForm.Get("is_rereading"); got != "true" {
			t.Errorf("is_rereading = %q", got)
		}
		if r.PostForm.Has("score") {
			t.Error("unset score was sent")
		}
		_, _ = w.Write([]byte(`{"status":"reading","num_chapters_read":364,"is_rereading":true}`))
	}))
	session.SetToken(&mal.AccessToken{AccessToken: "tok"})

	chapters := 364
	rereading := true
	result, err := client.UpdateListStatus(context.Background(), UpdateListStatusArgs{
		MangaID:         2,
		Status:          "reading",
		NumChaptersRead: &chapters,
		IsRereading:     &rereading,
	})
	if err != nil {
		t.Fatalf("UpdateListStatus failed: %v", err)
	}
	if result.Data.NumChaptersRead != 364 || !result.Data.IsRereading {
		t.Errorf("result = %+v", result.Data)
	}
}

func TestGetUserListMCPValidation(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("invalid input reached the upstream")
	}))
	ctx := context.Background()

	tests := []struct {
		name string
		args GetUserListArgs
	}{
		{"missing user name", GetUserListArgs{}},
		{"anime status on manga list", GetUserListArgs{UserName: "u", Status: "watching"}},
		{"anime sort on manga list", GetUserListArgs{UserName: "u", Sort: "anime_title"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := client.GetUserListMCP(ctx, tt.args); !apierrors.IsValidation(err) {
				t.Errorf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestGetRankingMCPValidation(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("invalid input reached the upstream")
	}))

	if _, err := client.GetRankingMCP(context.Background(), GetRankingArgs{RankingType: "airing"}); !apierrors.IsValidation(err) {
		t.Errorf("anime ranking type must be rejected for manga, got %v", err)
	}
}
