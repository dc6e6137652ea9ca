package radar

import (
	"cmp"
	"slices"
	"time"
)

const refreshedLayout = "Mon, 02 Jan 2006 15:04:05"

// Summary aggregates a record set for the main view. Signal and Noise need
// not add up to Total: other classifications land in neither bucket.
type Summary struct {
	Signal      int
	Noise       int
	Total       int
	ByFocusArea map[string]FocusCounts
	RefreshedAt time.Time
}

// FocusCounts is the signal/noise split within one focus area.
type FocusCounts struct {
	Signal int
	Noise  int
	Total  int
}

// RecomputeCounts counts signal and noise records and stamps now. A nil or
// empty record set yields zero counts.
func RecomputeCounts(records []TrendRecord, now time.Time) Summary {
	sum := Summary{
		Total:       len(records),
		ByFocusArea: make(map[string]FocusCounts),
		RefreshedAt: now,
	}
	for _, rec := range records {
		fc := sum.ByFocusArea[rec.FocusArea]
		fc.Total++
		switch rec.Classification {
		case ClassSignal:
			sum.Signal++
			fc.Signal++
		case ClassNoise:
			sum.Noise++
			fc.Noise++
		}
		sum.ByFocusArea[rec.FocusArea] = fc
	}
	return sum
}

// FormatRefreshed renders the refresh time in the local zone.
func (s Summary) FormatRefreshed() string {
	if s.RefreshedAt.IsZero() {
		return ""
	}
	return s.RefreshedAt.Local().Format(refreshedLayout)
}

// FocusArea returns the counts for one focus area, zero when absent.
func (s Summary) FocusArea(area string) FocusCounts {
	return s.ByFocusArea[area]
}

// TopSignals returns up to n signal records of a focus area, highest
// confidence first. Ties keep record order.
func TopSignals(records []TrendRecord, focusArea string, n int) []TrendRecord {
	var out []TrendRecord
	for _, rec := range records {
		if rec.FocusArea == focusArea && rec.Classification == ClassSignal {
			out = append(out, rec)
		}
	}
	slices.SortStableFunc(out, func(a, b TrendRecord) int {
		return cmp.Compare(b.ConfidenceScore, a.ConfidenceScore)
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
