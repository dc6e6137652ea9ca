package radar

// Known focus areas.
const (
	FocusVoiceAIUX          = "voice_ai_ux"
	FocusAgentOrchestration = "agent_orchestration"
	FocusDurableRuntime     = "durable_runtime"
)

// Known classifications.
const (
	ClassSignal = "signal"
	ClassNoise  = "noise"
)

// FilterAll is the sentinel filter key meaning "no filter".
const FilterAll = "all"

// Sortable fields.
const (
	FieldConfidence = "confidence_score"
	FieldToolName   = "tool_name"
)

// TrendRecord is one evaluated signal-vs-noise assessment of an AI tool.
// Records are owned by the data source; this package only reads them.
type TrendRecord struct {
	ID                   int64
	ToolName             string
	FocusArea            string
	Classification       string
	ConfidenceScore      int
	TechnicalInsight     string
	SignalEvidence       []string
	NoiseIndicators      []string
	ArchitecturalVerdict bool
	Timestamp            string
}

// FocusAreas returns the known focus areas in display order.
func FocusAreas() []string {
	return []string{FocusVoiceAIUX, FocusAgentOrchestration, FocusDurableRuntime}
}

// Classifications returns the known classifications in display order.
func Classifications() []string {
	return []string{ClassSignal, ClassNoise}
}

func cloneStrings(values []string) []string {
	if len(values) == 0 {
		return []string{}
	}
	dup := make([]string, len(values))
	copy(dup, values)
	return dup
}
