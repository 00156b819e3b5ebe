package dashboard

import (
	"strings"
	"time"

	"projectboard/internal/domain/models"
)

// dateLayouts are tried in order. Layouts without a zone parse as UTC, so a
// date-only bound means midnight UTC of that day.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseDate parses a textual timestamp. ok is false for empty or malformed input.
func parseDate(value string) (t time.Time, ok bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// Recompute returns the projects of all that match every active criterion,
// in their original order. Empty or unparseable date bounds are ignored; a
// project whose createdAt cannot be parsed never satisfies an active bound.
// The result is a new slice and all is not modified.
func Recompute(all []models.Project, filters models.FilterCriteria) []models.Project {
	needle := strings.ToLower(filters.ClientName)
	start, hasStart := parseDate(filters.StartDate)
	end, hasEnd := parseDate(filters.EndDate)

	filtered := make([]models.Project, 0, len(all))
	for _, project := range all {
		if filters.Status != "" && string(project.Status) != filters.Status {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(project.ClientName), needle) {
			continue
		}
		if hasStart || hasEnd {
			created, ok := parseDate(project.CreatedAt)
			if !ok {
				continue
			}
			if hasStart && created.Before(start) {
				continue
			}
			if hasEnd && created.After(end) {
				continue
			}
		}
		filtered = append(filtered, project)
	}
	return filtered
}
