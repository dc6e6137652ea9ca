package radar

import (
	"errors"
	"strconv"
	"strings"
)

// ErrNotFound reports that an index, id or name resolves to no record.
// Callers redirect to the data table rather than surfacing it.
var ErrNotFound = errors.New("trend not found")

// TrendDetail is the display model of a single trend record.
type TrendDetail struct {
	Index                int
	ID                   int64
	ToolName             string
	FocusArea            string
	FocusAreaText        string
	Classification       string
	ConfidenceScore      int
	TechnicalInsight     string
	SignalEvidence       []string
	NoiseIndicators      []string
	ArchitecturalVerdict bool
	Timestamp            string
}

// ConfidenceText is the bucket label for the detail's score.
func (d TrendDetail) ConfidenceText() string {
	return ConfidenceText(d.ConfidenceScore)
}

// LoadByIndex copies the record at index into a detail view. Out-of-range
// indexes, including negative ones, return ErrNotFound.
func LoadByIndex(records []TrendRecord, index int) (TrendDetail, error) {
	if index < 0 || index >= len(records) {
		return TrendDetail{}, ErrNotFound
	}
	return newDetail(records[index], index), nil
}

// LoadByIndexString parses a route argument and loads it. Non-numeric input
// returns ErrNotFound.
func LoadByIndexString(records []TrendRecord, raw string) (TrendDetail, error) {
	index, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return TrendDetail{}, ErrNotFound
	}
	return LoadByIndex(records, index)
}

// LoadByID loads the record carrying the stable id, independent of its
// current position in records.
func LoadByID(records []TrendRecord, id int64) (TrendDetail, error) {
	index, err := ResolveIndexByID(records, id)
	if err != nil {
		return TrendDetail{}, err
	}
	return newDetail(records[index], index), nil
}

// ResolveIndexByToolName returns the position of the first record whose
// tool name matches exactly. Names are not unique; the first match wins.
func ResolveIndexByToolName(records []TrendRecord, name string) (int, error) {
	for i, rec := range records {
		if rec.ToolName == name {
			return i, nil
		}
	}
	return -1, ErrNotFound
}

// ResolveIndexByID returns the position of the record with the given id.
func ResolveIndexByID(records []TrendRecord, id int64) (int, error) {
	if id <= 0 {
		return -1, ErrNotFound
	}
	for i, rec := range records {
		if rec.ID == id {
			return i, nil
		}
	}
	return -1, ErrNotFound
}

func newDetail(rec TrendRecord, index int) TrendDetail {
	return TrendDetail{
		Index:                index,
		ID:                   rec.ID,
		ToolName:             rec.ToolName,
		FocusArea:            rec.FocusArea,
		FocusAreaText:        FocusAreaText(rec.FocusArea),
		Classification:       rec.Classification,
		ConfidenceScore:      rec.ConfidenceScore,
		TechnicalInsight:     rec.TechnicalInsight,
		SignalEvidence:       cloneStrings(rec.SignalEvidence),
		NoiseIndicators:      cloneStrings(rec.NoiseIndicators),
		ArchitecturalVerdict: rec.ArchitecturalVerdict,
		Timestamp:            rec.Timestamp,
	}
}
