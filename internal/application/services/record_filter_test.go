package services

import (
	"testing"

	"github.com/migranthealth/careconnect/internal/domain/entities"
	"github.com/migranthealth/careconnect/internal/fixtures"
	"github.com/stretchr/testify/assert"
)

func recordIDs(records []entities.HealthRecord) []string {
	ids := make([]string, len(records))
	for i, r := range records {
		ids[i] = r.ID
	}
	return ids
}

func TestFilterRecords_AllWithEmptyQueryIsIdentity(t *testing.T) {
	records := fixtures.HealthRecords()
	assert.Equal(t, records, FilterRecords(records, []string{"all"}, ""))
	assert.Equal(t, records, FilterRecords(records, []string{"lab", "all"}, "   "))
}

func TestFilterRecords_EmptySelectionMeansAll(t *testing.T) {
	records := fixtures.HealthRecords()
	assert.Equal(t, records, FilterRecords(records, nil, ""))
	assert.Equal(t, records, FilterRecords(records, []string{}, ""))
}

func TestFilterRecords_CategoryMembership(t *testing.T) {
	records := fixtures.HealthRecords()
	selected := []string{"lab", "imaging"}

	got := FilterRecords(records, selected, "")

	assert.Equal(t, []string{"rec-1", "rec-3", "rec-6"}, recordIDs(got))
	for _, r := range got {
		assert.Contains(t, selected, string(r.Category))
	}
	for _, r := range records {
		if r.Category != entities.CategoryLab && r.Category != entities.CategoryImaging {
			assert.NotContains(t, recordIDs(got), r.ID)
		}
	}
}

func TestFilterRecords_SearchAcrossFields(t *testing.T) {
	records := fixtures.HealthRecords()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"title", "lipid", []string{"rec-6"}},
		{"hospital case-insensitive", "apollo", []string{"rec-3", "rec-8"}},
		{"doctor", "  DR. RAJESH ", []string{"rec-2", "rec-8"}},
		{"no match", "oncology", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, recordIDs(FilterRecords(records, []string{"all"}, tt.query)))
		})
	}
}

func TestFilterRecords_StagesComposeByIntersection(t *testing.T) {
	records := fixtures.HealthRecords()
	selections := [][]string{{"lab"}, {"prescription", "discharge"}, {"vaccination"}, {}}
	queries := []string{"", "aiims", "safdarjung", "dr.", "zzz"}

	for _, sel := range selections {
		for _, q := range queries {
			byCategory := FilterRecords(records, sel, "")
			bySearch := recordIDs(FilterRecords(records, []string{"all"}, q))

			var want []string
			for _, r := range byCategory {
				for _, id := range bySearch {
					if id == r.ID {
						want = append(want, r.ID)
					}
				}
			}

			got := recordIDs(FilterRecords(records, sel, q))
			if len(want) == 0 {
				assert.Empty(t, got, "selection %v query %q", sel, q)
				continue
			}
			assert.Equal(t, want, got, "selection %v query %q", sel, q)
		}
	}
}

func TestFilterRecords_DoesNotMutateInput(t *testing.T) {
	records := fixtures.HealthRecords()
	before := fixtures.HealthRecords()
	_ = FilterRecords(records, []string{"lab"}, "blood")
	assert.Equal(t, before, records)
}

func TestToggleCategory(t *testing.T) {
	t.Run("selecting from all replaces all", func(t *testing.T) {
		assert.Equal(t, []string{"lab"}, ToggleCategory([]string{"all"}, "lab"))
	})

	t.Run("deselecting last category reverts to all", func(t *testing.T) {
		assert.Equal(t, []string{"all"}, ToggleCategory([]string{"lab"}, "lab"))
	})

	t.Run("selections accumulate in order", func(t *testing.T) {
		sel := ToggleCategory([]string{"all"}, "lab")
		sel = ToggleCategory(sel, "prescription")
		assert.Equal(t, []string{"lab", "prescription"}, sel)
	})

	t.Run("deselecting one of several keeps the rest", func(t *testing.T) {
		assert.Equal(t, []string{"prescription"}, ToggleCategory([]string{"lab", "prescription"}, "lab"))
	})

	t.Run("choosing all clears specific categories", func(t *testing.T) {
		assert.Equal(t, []string{"all"}, ToggleCategory([]string{"lab", "imaging"}, "all"))
	})

	t.Run("input is not modified", func(t *testing.T) {
		sel := []string{"lab", "imaging"}
		_ = ToggleCategory(sel, "lab")
		assert.Equal(t, []string{"lab", "imaging"}, sel)
	})
}
