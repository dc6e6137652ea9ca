package radar

import (
	"fmt"
	"slices"
	"strings"
)

// ListViewState holds the search, filter and sort selections of the trend
// table. The zero value is not ready for use; call NewListViewState.
type ListViewState struct {
	searchText     string
	focusArea      string
	classification string
	sortField      string
	sortDescending bool
	caseSensitive  bool
	itemCount      int
}

// NewListViewState returns a list state with no search, no filters and no
// sort applied. Search matching is case-sensitive unless configured.
func NewListViewState(caseSensitive bool) *ListViewState {
	s := &ListViewState{caseSensitive: caseSensitive}
	s.Reset()
	return s
}

// Reset restores defaults on list-view entry. The case sensitivity option
// is configuration, not view state, and survives a reset.
func (s *ListViewState) Reset() {
	s.searchText = ""
	s.focusArea = FilterAll
	s.classification = FilterAll
	s.sortField = ""
	s.sortDescending = false
	s.itemCount = 0
}

// SetSearchText stores the raw query. An empty string clears search.
func (s *ListViewState) SetSearchText(text string) {
	s.searchText = text
}

// SetFocusAreaFilter selects a focus area. FilterAll or "" disables it.
func (s *ListViewState) SetFocusAreaFilter(key string) {
	s.focusArea = normalizeFilterKey(key)
}

// SetClassificationFilter selects a classification. FilterAll or ""
// disables it.
func (s *ListViewState) SetClassificationFilter(key string) {
	s.classification = normalizeFilterKey(key)
}

// SetCaseSensitive controls whether search matching respects case.
func (s *ListViewState) SetCaseSensitive(enabled bool) {
	s.caseSensitive = enabled
}

// ClearFilters drops search text and both equality filters, keeping sort.
func (s *ListViewState) ClearFilters() {
	s.searchText = ""
	s.focusArea = FilterAll
	s.classification = FilterAll
}

// CycleFocusAreaFilter advances all -> each known focus area -> all.
func (s *ListViewState) CycleFocusAreaFilter() {
	s.focusArea = nextKey(s.focusArea, FocusAreas())
}

// CycleClassificationFilter advances all -> signal -> noise -> all.
func (s *ListViewState) CycleClassificationFilter() {
	s.classification = nextKey(s.classification, Classifications())
}

// ToggleSort flips direction when field is already the sort field.
// Otherwise it switches to field with that field's default direction:
// descending for confidence, ascending for everything else.
func (s *ListViewState) ToggleSort(field string) {
	if field == s.sortField {
		s.sortDescending = !s.sortDescending
		return
	}
	s.sortField = field
	s.sortDescending = field == FieldConfidence
}

// Recompute returns the records passing every active filter, ordered by
// the current sort, and updates the item count. records is not modified.
func (s *ListViewState) Recompute(records []TrendRecord) ([]TrendRecord, int) {
	visible := make([]TrendRecord, 0, len(records))
	for _, rec := range records {
		if s.matches(rec) {
			visible = append(visible, rec)
		}
	}
	s.itemCount = len(visible)
	s.sortRecords(visible)
	return visible, s.itemCount
}

func (s *ListViewState) matches(rec TrendRecord) bool {
	if s.searchText != "" {
		if !s.contains(rec.ToolName) && !s.contains(rec.TechnicalInsight) {
			return false
		}
	}
	if s.focusArea != FilterAll && rec.FocusArea != s.focusArea {
		return false
	}
	if s.classification != FilterAll && rec.Classification != s.classification {
		return false
	}
	return true
}

func (s *ListViewState) contains(value string) bool {
	if s.caseSensitive {
		return strings.Contains(value, s.searchText)
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(s.searchText))
}

func (s *ListViewState) sortRecords(records []TrendRecord) {
	less := lessFor(s.sortField)
	if less == nil {
		return
	}
	desc := s.sortDescending
	slices.SortStableFunc(records, func(a, b TrendRecord) int {
		if desc {
			a, b = b, a
		}
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		}
		return 0
	})
}

func lessFor(field string) func(a, b TrendRecord) bool {
	switch field {
	case FieldConfidence:
		return func(a, b TrendRecord) bool { return a.ConfidenceScore < b.ConfidenceScore }
	case FieldToolName:
		return func(a, b TrendRecord) bool { return a.ToolName < b.ToolName }
	case "focus_area":
		return func(a, b TrendRecord) bool { return a.FocusArea < b.FocusArea }
	case "classification":
		return func(a, b TrendRecord) bool { return a.Classification < b.Classification }
	case "technical_insight":
		return func(a, b TrendRecord) bool { return a.TechnicalInsight < b.TechnicalInsight }
	default:
		return nil
	}
}

// SearchText returns the current query.
func (s *ListViewState) SearchText() string { return s.searchText }

// FocusAreaFilter returns the selected focus area or FilterAll.
func (s *ListViewState) FocusAreaFilter() string { return s.focusArea }

// ClassificationFilter returns the selected classification or FilterAll.
func (s *ListViewState) ClassificationFilter() string { return s.classification }

// SortField returns the active sort field, empty when unsorted.
func (s *ListViewState) SortField() string { return s.sortField }

// SortDescending reports the active sort direction.
func (s *ListViewState) SortDescending() bool { return s.sortDescending }

// CaseSensitive reports whether search respects case.
func (s *ListViewState) CaseSensitive() bool { return s.caseSensitive }

// ItemCount is the post-filter count from the last Recompute.
func (s *ListViewState) ItemCount() int { return s.itemCount }

// Filtered reports whether any search or filter is active.
func (s *ListViewState) Filtered() bool {
	return s.searchText != "" || s.focusArea != FilterAll || s.classification != FilterAll
}

// FilterSummary describes the active search/filters/sort for a title bar.
func (s *ListViewState) FilterSummary() string {
	var parts []string
	if s.focusArea != FilterAll {
		parts = append(parts, FocusAreaText(s.focusArea))
	}
	if s.classification != FilterAll {
		parts = append(parts, strings.ToUpper(s.classification))
	}
	if s.searchText != "" {
		parts = append(parts, "/"+s.searchText)
	}
	if s.sortField != "" {
		dir := "↑"
		if s.sortDescending {
			dir = "↓"
		}
		parts = append(parts, fmt.Sprintf("%s %s", s.sortField, dir))
	}
	return strings.Join(parts, " • ")
}

// normalizeFilterKey maps "" to FilterAll. Other keys compare exactly.
func normalizeFilterKey(key string) string {
	if key == "" {
		return FilterAll
	}
	return key
}

func nextKey(current string, keys []string) string {
	if current == FilterAll {
		return keys[0]
	}
	for i, k := range keys {
		if k == current {
			if i == len(keys)-1 {
				return FilterAll
			}
			return keys[i+1]
		}
	}
	return FilterAll
}
