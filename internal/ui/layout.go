package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// layoutCompactWidth is the threshold below which the header drops labels.
	layoutCompactWidth = 100

	// layoutInsightWidth is the minimum content width that shows the
	// insight column in the data table.
	layoutInsightWidth = 110
)

// Sidebar widths.
const (
	sidebarExpandedWidth  = 26
	sidebarCollapsedWidth = 5
)

const (
	// settingsLogLines is how many log lines the settings view tails.
	settingsLogLines = 200

	// topSignalLimit is how many signals a section view lists.
	topSignalLimit = 5

	// defaultUITick is the snapshot refresh interval of the UI.
	defaultUITick = time.Second

	// statusTTL is how long a transient footer message stays visible.
	statusTTL = 3 * time.Second
)
