package radar

import (
	"errors"
	"reflect"
	"testing"
)

func TestLoadByIndex(t *testing.T) {
	records := sampleRecords()
	records[1].TechnicalInsight = "insight"
	records[1].SignalEvidence = []string{"e1"}
	records[1].NoiseIndicators = []string{"n1", "n2"}

	if _, err := LoadByIndex(records, 5); !errors.Is(err, ErrNotFound) {
		t.Fatalf("LoadByIndex(5) error = %v, want ErrNotFound", err)
	}
	if _, err := LoadByIndex(records, -1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("LoadByIndex(-1) error = %v, want ErrNotFound", err)
	}

	d, err := LoadByIndex(records, 1)
	if err != nil {
		t.Fatalf("LoadByIndex(1) returned error: %v", err)
	}
	if d.ToolName != "B" || d.Classification != "noise" || d.FocusArea != "y" || d.ConfidenceScore != 50 {
		t.Fatalf("detail = %#v, want record B", d)
	}
	if d.TechnicalInsight != "insight" || d.Index != 1 || d.ID != 2 {
		t.Fatalf("detail = %#v, want insight, index 1, id 2", d)
	}
	if !reflect.DeepEqual(d.SignalEvidence, []string{"e1"}) || !reflect.DeepEqual(d.NoiseIndicators, []string{"n1", "n2"}) {
		t.Fatalf("evidence = %v / %v", d.SignalEvidence, d.NoiseIndicators)
	}

	d.SignalEvidence[0] = "mutated"
	if records[1].SignalEvidence[0] != "e1" {
		t.Fatalf("detail should copy evidence slices")
	}
}

func TestLoadByIndex_DefaultsMissingFields(t *testing.T) {
	d, err := LoadByIndex([]TrendRecord{{}}, 0)
	if err != nil {
		t.Fatalf("LoadByIndex returned error: %v", err)
	}
	if d.SignalEvidence == nil || d.NoiseIndicators == nil {
		t.Fatalf("evidence lists should default to empty, got %#v", d)
	}
	if len(d.SignalEvidence) != 0 || d.ConfidenceScore != 0 || d.ToolName != "" {
		t.Fatalf("detail = %#v, want zero defaults", d)
	}
}

func TestLoadByIndexString(t *testing.T) {
	records := sampleRecords()
	for _, raw := range []string{"abc", "", "1.5", "-1", "2"} {
		if _, err := LoadByIndexString(records, raw); !errors.Is(err, ErrNotFound) {
			t.Fatalf("LoadByIndexString(%q) error = %v, want ErrNotFound", raw, err)
		}
	}
	d, err := LoadByIndexString(records, " 0 ")
	if err != nil || d.ToolName != "A" {
		t.Fatalf("LoadByIndexString(0) = %#v, %v", d, err)
	}
}

func TestLoadByID_SurvivesReorder(t *testing.T) {
	records := sampleRecords()
	reordered := []TrendRecord{records[1], records[0]}

	d, err := LoadByID(reordered, 1)
	if err != nil {
		t.Fatalf("LoadByID returned error: %v", err)
	}
	if d.ToolName != "A" || d.Index != 1 {
		t.Fatalf("LoadByID = %#v, want A at index 1", d)
	}
	if _, err := LoadByID(reordered, 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("LoadByID(42) error = %v, want ErrNotFound", err)
	}
	if _, err := LoadByID(reordered, 0); !errors.Is(err, ErrNotFound) {
		t.Fatalf("LoadByID(0) error = %v, want ErrNotFound", err)
	}
}

func TestResolveIndexByToolName_FirstMatchWins(t *testing.T) {
	records := []TrendRecord{{ToolName: "dup"}, {ToolName: "other"}, {ToolName: "dup"}}
	idx, err := ResolveIndexByToolName(records, "dup")
	if err != nil || idx != 0 {
		t.Fatalf("ResolveIndexByToolName = %d, %v, want 0", idx, err)
	}
	if _, err := ResolveIndexByToolName(records, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing name error = %v, want ErrNotFound", err)
	}
}
