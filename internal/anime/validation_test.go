package anime

import (
	"context"
	"net/http"
	"testing"

	apierrors "github.com/ktanaka/mal-mcp-server/internal/errors"
)

// rejectingClient fails the test if any request reaches the upstream.
func rejectingClient(t *testing.T) *Client {
	t.Helper()
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("invalid input reached the upstream")
	}))
	return client
}

func TestGetRankingMCPValidation(t *testing.T) {
	client := rejectingClient(t)
	ctx := context.Background()

	tests := []struct {
		name string
		args GetRankingArgs
	}{
		{"unknown ranking type", GetRankingArgs{RankingType: "best"}},
		{"limit above cap", GetRankingArgs{Limit: 501}},
		{"negative offset", GetRankingArgs{Offset: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := client.GetRankingMCP(ctx, tt.args); !apierrors.IsValidation(err) {
				t.Errorf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestGetSeasonalMCPValidation(t *testing.T) {
	client := rejectingClient(t)
	ctx := context.Background()

	tests := []struct {
		name string
		args GetSeasonalArgs
	}{
		{"missing year", GetSeasonalArgs{Season: "winter"}},
		{"missing season", GetSeasonalArgs{Year: 2024}},
		{"unknown season", GetSeasonalArgs{Year: 2024, Season: "autumn"}},
		{"unknown sort", GetSeasonalArgs{Year: 2024, Season: "fall", Sort: "alphabetical"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := client.GetSeasonalMCP(ctx, tt.args); !apierrors.IsValidation(err) {
				t.Errorf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestUpdateListStatusMCPValidation(t *testing.T) {
	client := rejectingClient(t)
	ctx := context.Background()

	badScore := 11
	badPriority := 3
	badRewatch := 6

	tests := []struct {
		name string
		args UpdateListStatusArgs
	}{
		{"missing id", UpdateListStatusArgs{Status: "watching"}},
		{"unknown status", UpdateListStatusArgs{AnimeID: 1, Status: "binging"}},
		{"score out of range", UpdateListStatusArgs{AnimeID: 1, Score: &badScore}},
		{"priority out of range", UpdateListStatusArgs{AnimeID: 1, Priority: &badPriority}},
		{"rewatch value out of range", UpdateListStatusArgs{AnimeID: 1, RewatchValue: &badRewatch}},
		{"bad start date", UpdateListStatusArgs{AnimeID: 1, StartDate: "01/02/2024"}},
		{"bad finish date", UpdateListStatusArgs{AnimeID: 1, FinishDate: "2024-1-2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := client.UpdateListStatusMCP(ctx, tt.args); !apierrors.IsValidation(err) {
				t.Errorf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestGetUserListMCPValidation(t *testing.T) {
	client := rejectingClient(t)
	ctx := context.Background()

	tests := []struct {
		name string
		args GetUserListArgs
	}{
		{"missing user name", GetUserListArgs{}},
		{"unknown status", GetUserListArgs{UserName: "u", Status: "paused"}},
		{"unknown sort", GetUserListArgs{UserName: "u", Sort: "manga_title"}},
		{"limit above cap", GetUserListArgs{UserName: "u", Limit: 1001}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := client.GetUserListMCP(ctx, tt.args); !apierrors.IsValidation(err) {
				t.Errorf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestGetDetailsMCPValidation(t *testing.T) {
	client := rejectingClient(t)

	if _, err := client.GetDetailsMCP(context.Background(), GetDetailsArgs{AnimeID: 0}); !apierrors.IsValidation(err) {
		t.Errorf("expected ValidationError for id 0, got %v", err)
	}
}

func TestValidDates(t *testing.T) {
	if err := validateDate("start_date", "2024-01-15"); err != nil {
		t.Errorf("valid date rejected: %v", err)
	}
	if err := validateDate("start_date", ""); err != nil {
		t.Errorf("empty date should be allowed: %v", err)
	}
}
