package anime

import (
	"fmt"
	"regexp"

	apierrors "github.com/ktanaka/mal-mcp-server/internal/errors"
)

// Enum vocabularies accepted by the MAL anime endpoints.
var (
	rankingTypes = map[string]bool{
		"all": true, "airing": true, "upcoming": true, "tv": true,
		"ova": true, "movie": true, "special": true,
		"bypopularity": true, "favorite": true,
	}
	seasons = map[string]bool{
		"winter": true, "spring": true, "summer": true, "fall": true,
	}
	seasonalSorts = map[string]bool{
		"anime_score": true, "anime_num_list_users": true,
	}
	watchStatuses = map[string]bool{
		"watching": true, "completed": true, "on_hold": true,
		"dropped": true, "plan_to_watch": true,
	}
	userListSorts = map[string]bool{
		"list_score": true, "list_updated_at": true, "anime_title": true,
		"anime_start_date": true, "anime_id": true,
	}

	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

func validateEnum(field, value string, allowed map[string]bool) error {
	if value == "" || allowed[value] {
		return nil
	}
	return apierrors.NewValidationError(field, value, "not a recognized value")
}

func validateLimit(limit, max int) error {
	if limit < 0 || limit > max {
		return apierrors.NewValidationError("limit", fmt.Sprintf("%d", limit),
			fmt.Sprintf("must be between 1 and %d", max))
	}
	return nil
}

func validateOffset(offset int) error {
	if offset < 0 {
		return apierrors.NewValidationError("offset", fmt.Sprintf("%d", offset), "must not be negative")
	}
	return nil
}

func validateID(id int) error {
	if id <= 0 {
		return apierrors.NewValidationError("anime_id", fmt.Sprintf("%d", id), "must be a positive integer")
	}
	return nil
}

func validateRange(field string, v, min, max int) error {
	if v < min || v > max {
		return apierrors.NewValidationError(field, fmt.Sprintf("%d", v),
			fmt.Sprintf("must be between %d and %d", min, max))
	}
	return nil
}

func validateDate(field, value string) error {
	if value == "" || datePattern.MatchString(value) {
		return nil
	}
	return apierrors.NewValidationError(field, value, "must be formatted YYYY-MM-DD")
}
