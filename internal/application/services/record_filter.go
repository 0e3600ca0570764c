package services

import (
	"strings"

	"github.com/migranthealth/careconnect/internal/domain/entities"
)

// FilterRecords narrows records by category selection and free-text search.
//
// An empty selection, or one containing "all", disables the category
// stage; otherwise a record passes when its category is any selected one.
// A non-blank query must appear, case-insensitively, in the title, hospital
// or doctor. Both stages must pass. Input order is kept and records is not modified.
func FilterRecords(records []entities.HealthRecord, selected []string, query string) []entities.HealthRecord {
	allowed := categorySet(selected)
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]entities.HealthRecord, 0, len(records))
	for _, r := range records {
		if allowed != nil {
			if _, ok := allowed[r.Category]; !ok {
				continue
			}
		}
		if q != "" && !recordMatches(r, q) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// categorySet returns nil when the selection means "every category".
func categorySet(selected []string) map[entities.RecordCategory]struct{} {
	if len(selected) == 0 {
		return nil
	}
	set := make(map[entities.RecordCategory]struct{}, len(selected))
	for _, c := range selected {
		if entities.RecordCategory(c) == entities.CategoryAll {
			return nil
		}
		set[entities.RecordCategory(c)] = struct{}{}
	}
	return set
}

func recordMatches(r entities.HealthRecord, q string) bool {
	return strings.Contains(strings.ToLower(r.Title), q) ||
		strings.Contains(strings.ToLower(r.Hospital), q) ||
		strings.Contains(strings.ToLower(r.Doctor), q)
}

// ToggleCategory flips category in the selection and returns the new one.
// "all" and specific categories are mutually exclusive: choosing "all"
// resets to ["all"], choosing a specific category drops "all", and removing
// the last specific category falls back to ["all"]. selected is not modified.
func ToggleCategory(selected []string, category string) []string {
	if entities.RecordCategory(category) == entities.CategoryAll {
		return []string{string(entities.CategoryAll)}
	}

	next := make([]string, 0, len(selected)+1)
	removed := false
	for _, c := range selected {
		switch {
		case entities.RecordCategory(c) == entities.CategoryAll:
		case c == category:
			removed = true
		default:
			next = append(next, c)
		}
	}
	if !removed {
		next = append(next, category)
	}
	if len(next) == 0 {
		return []string{string(entities.CategoryAll)}
	}
	return next
}
