package manga

import (
	"fmt"
	"regexp"

	apierrors "github.com/ktanaka/mal-mcp-server/internal/errors"
)

// Enum vocabularies accepted by the MAL manga endpoints.
var (
	rankingTypes = map[string]bool{
		"all": true, "manga": true, "novels": true, "oneshots": true,
		"doujin": true, "manhwa": true, "manhua": true,
		"bypopularity": true, "favorite": true,
	}
	readStatuses = map[string]bool{
		"reading": true, "completed": true, "on_hold": true,
		"dropped": true, "plan_to_read": true,
	}
	userListSorts = map[string]bool{
		"list_score": true, "list_updated_at": true, "manga_title": true,
		"manga_start_date": true, "manga_id": true,
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
		return apierrors.NewValidationError("manga_id", fmt.Sprintf("%d", id), "must be a positive integer")
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
