package radarapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/codescale/radar/internal/radar"
)

// Health mirrors GET /.
type Health struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// Healthy reports whether the backend declared itself healthy.
func (h Health) Healthy() bool {
	return h.Status == "healthy"
}

// RadarResponse mirrors GET /api/radar. RadarDate is empty when the
// backend has no analysis yet.
type RadarResponse struct {
	RadarDate string  `json:"radar_date"`
	Trends    []Trend `json:"trends"`
}

// ItemList mirrors GET /items.
type ItemList struct {
	Items []Trend `json:"items"`
	Total int     `json:"total"`
}

// Trend is one trend in transport form. It accepts both the radar payload
// (evidence as arrays, verdict as bool) and the items payload (evidence as
// JSON-encoded strings, verdict as a number).
type Trend struct {
	ID                   int64      `json:"id"`
	RadarDate            string     `json:"radar_date"`
	FocusArea            string     `json:"focus_area"`
	ToolName             string     `json:"tool_name"`
	Classification       string     `json:"classification"`
	ConfidenceScore      int        `json:"confidence_score"`
	TechnicalInsight     string     `json:"technical_insight"`
	SignalEvidence       StringList `json:"signal_evidence"`
	NoiseIndicators      StringList `json:"noise_indicators"`
	ArchitecturalVerdict Verdict    `json:"architectural_verdict"`
	Timestamp            string     `json:"timestamp"`
}

type errorBody struct {
	Detail string `json:"detail"`
}

// StringList decodes a JSON array of strings, a JSON string holding such
// an array, or null.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}
	if data[0] == '"' {
		var encoded string
		if err := json.Unmarshal(data, &encoded); err != nil {
			return err
		}
		if encoded == "" {
			*l = nil
			return nil
		}
		data = []byte(encoded)
	}
	var out []string
	if err := json.Unmarshal(data, &out); err != nil {
		return fmt.Errorf("string list: %w", err)
	}
	*l = out
	return nil
}

// Verdict decodes a JSON bool or number. Non-zero numbers are true.
type Verdict bool

func (v *Verdict) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch string(data) {
	case "", "null", "false":
		*v = false
		return nil
	case "true":
		*v = true
		return nil
	}
	n, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("architectural verdict %s: %w", data, err)
	}
	*v = n != 0
	return nil
}

// Records converts trends to core records. Trends without a backend id get
// an id hashed from radar date, focus area and tool name, so a trend keeps
// its id when the backend reorders the response.
func Records(trends []Trend) []radar.TrendRecord {
	if len(trends) == 0 {
		return nil
	}
	out := make([]radar.TrendRecord, len(trends))
	seen := make(map[string]int, len(trends))
	for i, t := range trends {
		rec := t.Record()
		if rec.ID <= 0 {
			rec.ID = contentID(t, seen)
		}
		out[i] = rec
	}
	return out
}

// contentID hashes the identifying fields of t. Repeats of the same key
// within one response are numbered in order of appearance.
func contentID(t Trend, seen map[string]int) int64 {
	key := t.RadarDate + "\x00" + t.FocusArea + "\x00" + t.ToolName
	n := seen[key]
	seen[key] = n + 1
	if n > 0 {
		key += "\x00" + strconv.Itoa(n)
	}
	id := int64(xxhash.Sum64String(key) >> 1)
	if id == 0 {
		id = 1
	}
	return id
}

// Record converts a single trend without assigning a fallback id.
func (t Trend) Record() radar.TrendRecord {
	return radar.TrendRecord{
		ID:                   t.ID,
		ToolName:             t.ToolName,
		FocusArea:            t.FocusArea,
		Classification:       t.Classification,
		ConfidenceScore:      t.ConfidenceScore,
		TechnicalInsight:     t.TechnicalInsight,
		SignalEvidence:       copyList(t.SignalEvidence),
		NoiseIndicators:      copyList(t.NoiseIndicators),
		ArchitecturalVerdict: bool(t.ArchitecturalVerdict),
		Timestamp:            t.Timestamp,
	}
}

func copyList(values StringList) []string {
	if len(values) == 0 {
		return []string{}
	}
	dup := make([]string, len(values))
	copy(dup, values)
	return dup
}
