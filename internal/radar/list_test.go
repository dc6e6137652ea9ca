package radar

import (
	"reflect"
	"testing"
)

func sampleRecords() []TrendRecord {
	return []TrendRecord{
		{ID: 1, ToolName: "A", Classification: "signal", FocusArea: "x", ConfidenceScore: 95},
		{ID: 2, ToolName: "B", Classification: "noise", FocusArea: "y", ConfidenceScore: 50},
	}
}

func names(records []TrendRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ToolName)
	}
	return out
}

func TestRecompute_Filters(t *testing.T) {
	records := sampleRecords()

	cases := []struct {
		name  string
		setup func(*ListViewState)
		want  []string
	}{
		{"no filters", func(*ListViewState) {}, []string{"A", "B"}},
		{"search", func(s *ListViewState) { s.SetSearchText("A") }, []string{"A"}},
		{"focus", func(s *ListViewState) { s.SetFocusAreaFilter("x") }, []string{"A"}},
		{"classification", func(s *ListViewState) { s.SetClassificationFilter("noise") }, []string{"B"}},
		{"all sentinel", func(s *ListViewState) {
			s.SetFocusAreaFilter(FilterAll)
			s.SetClassificationFilter(FilterAll)
		}, []string{"A", "B"}},
		{"empty key means all", func(s *ListViewState) {
			s.SetFocusAreaFilter("")
			s.SetClassificationFilter("")
		}, []string{"A", "B"}},
		{"padded focus key is not trimmed", func(s *ListViewState) { s.SetFocusAreaFilter(" x") }, []string{}},
		{"padded classification key is not trimmed", func(s *ListViewState) { s.SetClassificationFilter("noise ") }, []string{}},
		{"filters AND together", func(s *ListViewState) {
			s.SetFocusAreaFilter("x")
			s.SetClassificationFilter("noise")
		}, []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewListViewState(true)
			tc.setup(s)
			visible, count := s.Recompute(records)
			if got := names(visible); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("visible = %v, want %v", got, tc.want)
			}
			if count != len(tc.want) || s.ItemCount() != len(tc.want) {
				t.Fatalf("count = %d, ItemCount = %d, want %d", count, s.ItemCount(), len(tc.want))
			}
		})
	}
}

func TestRecompute_SearchMatchesInsightOrName(t *testing.T) {
	records := []TrendRecord{
		{ToolName: "LiveKit", TechnicalInsight: "WebRTC transport"},
		{ToolName: "Temporal", TechnicalInsight: "durable workflows"},
		{ToolName: "Other", TechnicalInsight: "nothing relevant"},
	}
	s := NewListViewState(true)
	s.SetSearchText("WebRTC")
	visible, _ := s.Recompute(records)
	if got := names(visible); !reflect.DeepEqual(got, []string{"LiveKit"}) {
		t.Fatalf("insight search = %v, want [LiveKit]", got)
	}

	s.SetSearchText("Temp")
	visible, _ = s.Recompute(records)
	if got := names(visible); !reflect.DeepEqual(got, []string{"Temporal"}) {
		t.Fatalf("name search = %v, want [Temporal]", got)
	}
}

func TestRecompute_CaseSensitivityOption(t *testing.T) {
	records := []TrendRecord{{ToolName: "LangGraph"}}

	s := NewListViewState(true)
	s.SetSearchText("langgraph")
	if _, count := s.Recompute(records); count != 0 {
		t.Fatalf("case-sensitive count = %d, want 0", count)
	}

	s.SetCaseSensitive(false)
	if _, count := s.Recompute(records); count != 1 {
		t.Fatalf("case-insensitive count = %d, want 1", count)
	}
	if s.CaseSensitive() {
		t.Fatalf("CaseSensitive() = true, want false")
	}
}

func TestToggleSort_ConfidenceFromDefault(t *testing.T) {
	records := []TrendRecord{
		{ToolName: "low", ConfidenceScore: 10},
		{ToolName: "high", ConfidenceScore: 99},
		{ToolName: "mid", ConfidenceScore: 75},
	}
	s := NewListViewState(true)

	s.ToggleSort(FieldConfidence)
	visible, _ := s.Recompute(records)
	if got := names(visible); !reflect.DeepEqual(got, []string{"high", "mid", "low"}) {
		t.Fatalf("first toggle = %v, want descending", got)
	}
	if !s.SortDescending() {
		t.Fatalf("SortDescending = false after first confidence toggle")
	}

	s.ToggleSort(FieldConfidence)
	visible, _ = s.Recompute(records)
	if got := names(visible); !reflect.DeepEqual(got, []string{"low", "mid", "high"}) {
		t.Fatalf("second toggle = %v, want ascending", got)
	}
}

func TestToggleSort_NameDefaultsAscending(t *testing.T) {
	records := []TrendRecord{{ToolName: "b"}, {ToolName: "c"}, {ToolName: "a"}}
	s := NewListViewState(true)
	s.ToggleSort(FieldConfidence)
	s.ToggleSort(FieldToolName)
	if s.SortDescending() || s.SortField() != FieldToolName {
		t.Fatalf("sort = %s desc=%v, want tool_name ascending", s.SortField(), s.SortDescending())
	}
	visible, _ := s.Recompute(records)
	if got := names(visible); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("name sort = %v, want [a b c]", got)
	}
}

func TestToggleSort_StableOnTies(t *testing.T) {
	records := []TrendRecord{
		{ToolName: "first", ConfidenceScore: 80},
		{ToolName: "second", ConfidenceScore: 80},
		{ToolName: "top", ConfidenceScore: 90},
		{ToolName: "third", ConfidenceScore: 80},
	}
	s := NewListViewState(true)
	s.ToggleSort(FieldConfidence)
	visible, _ := s.Recompute(records)
	want := []string{"top", "first", "second", "third"}
	if got := names(visible); !reflect.DeepEqual(got, want) {
		t.Fatalf("descending ties = %v, want %v", got, want)
	}

	s.ToggleSort(FieldConfidence)
	visible, _ = s.Recompute(records)
	want = []string{"first", "second", "third", "top"}
	if got := names(visible); !reflect.DeepEqual(got, want) {
		t.Fatalf("ascending ties = %v, want %v", got, want)
	}
}

func TestToggleSort_DoesNotChangeCount(t *testing.T) {
	s := NewListViewState(true)
	s.SetClassificationFilter("signal")
	s.Recompute(sampleRecords())
	s.ToggleSort(FieldToolName)
	if s.ItemCount() != 1 {
		t.Fatalf("ItemCount after sort = %d, want 1", s.ItemCount())
	}
}

func TestRecompute_DoesNotMutateInput(t *testing.T) {
	records := []TrendRecord{{ToolName: "b"}, {ToolName: "a"}}
	s := NewListViewState(true)
	s.ToggleSort(FieldToolName)
	s.Recompute(records)
	if records[0].ToolName != "b" {
		t.Fatalf("input reordered: %v", names(records))
	}
}

func TestReset_KeepsCaseSensitivity(t *testing.T) {
	s := NewListViewState(false)
	s.SetSearchText("x")
	s.SetFocusAreaFilter("y")
	s.SetClassificationFilter("noise")
	s.ToggleSort(FieldToolName)
	s.Reset()

	if s.Filtered() || s.SortField() != "" || s.SortDescending() {
		t.Fatalf("Reset left state behind: %q", s.FilterSummary())
	}
	if s.CaseSensitive() {
		t.Fatalf("Reset changed case sensitivity")
	}
}

func TestCycleFilters(t *testing.T) {
	s := NewListViewState(true)
	var seen []string
	for i := 0; i < 4; i++ {
		s.CycleFocusAreaFilter()
		seen = append(seen, s.FocusAreaFilter())
	}
	want := []string{FocusVoiceAIUX, FocusAgentOrchestration, FocusDurableRuntime, FilterAll}
	if !reflect.DeepEqual(seen, want) {
		t.Fatalf("focus cycle = %v, want %v", seen, want)
	}

	seen = nil
	for i := 0; i < 3; i++ {
		s.CycleClassificationFilter()
		seen = append(seen, s.ClassificationFilter())
	}
	want = []string{ClassSignal, ClassNoise, FilterAll}
	if !reflect.DeepEqual(seen, want) {
		t.Fatalf("classification cycle = %v, want %v", seen, want)
	}
}

func TestFilterSummary(t *testing.T) {
	s := NewListViewState(true)
	if got := s.FilterSummary(); got != "" {
		t.Fatalf("FilterSummary default = %q, want empty", got)
	}
	s.SetFocusAreaFilter(FocusDurableRuntime)
	s.SetClassificationFilter(ClassSignal)
	s.SetSearchText("temporal")
	s.ToggleSort(FieldConfidence)
	want := "Durable Runtime • SIGNAL • /temporal • confidence_score ↓"
	if got := s.FilterSummary(); got != want {
		t.Fatalf("FilterSummary = %q, want %q", got, want)
	}
}
