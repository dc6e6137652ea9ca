package radar

// ValueState is the semantic tone of a classification.
type ValueState string

const (
	StatePositive ValueState = "positive"
	StateNegative ValueState = "negative"
	StateNeutral  ValueState = "neutral"
)

// Icon identifies the glyph shown next to a classification.
type Icon string

const (
	IconAccept   Icon = "accept"
	IconDecline  Icon = "decline"
	IconQuestion Icon = "question"
)

// Glyph returns the terminal rendering of the icon.
func (i Icon) Glyph() string {
	switch i {
	case IconAccept:
		return "✔"
	case IconDecline:
		return "✘"
	default:
		return "?"
	}
}

const (
	highConfidence   = 90
	mediumConfidence = 70
)

var focusAreaLabels = map[string]string{
	FocusVoiceAIUX:          "Voice AI UX",
	FocusAgentOrchestration: "Agent Orchestration",
	FocusDurableRuntime:     "Durable Runtime",
}

// ClassificationState maps a classification to its display tone.
func ClassificationState(classification string) ValueState {
	switch classification {
	case ClassSignal:
		return StatePositive
	case ClassNoise:
		return StateNegative
	default:
		return StateNeutral
	}
}

// ClassificationIcon maps a classification to its icon.
func ClassificationIcon(classification string) Icon {
	switch classification {
	case ClassSignal:
		return IconAccept
	case ClassNoise:
		return IconDecline
	default:
		return IconQuestion
	}
}

// ConfidenceText buckets a 0-100 score into High, Medium or Low.
// Thresholds are inclusive: 90 is High and 70 is Medium.
func ConfidenceText(score int) string {
	switch {
	case score >= highConfidence:
		return "High"
	case score >= mediumConfidence:
		return "Medium"
	default:
		return "Low"
	}
}

// FocusAreaText returns the display label for a focus area. Unknown keys
// are returned unchanged.
func FocusAreaText(focusArea string) string {
	if label, ok := focusAreaLabels[focusArea]; ok {
		return label
	}
	return focusArea
}
