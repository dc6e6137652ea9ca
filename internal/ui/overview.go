package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/codescale/radar/internal/radar"
)

// handleOverviewKey covers the main view, the focus-area sections and the
// not-found page. Enter opens the data table, narrowed to the section's
// focus area when there is one.
func (m Model) handleOverviewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "d":
		cmd := m.navigate(radar.NavigationRequest{Dest: radar.DestDataTable})
		return m, cmd
	case "enter":
		area, ok := radar.FocusAreaFor(m.dest)
		cmd := m.navigate(radar.NavigationRequest{Dest: radar.DestDataTable})
		if ok {
			m.list.SetFocusAreaFilter(area)
			m.recomputeTable()
		}
		return m, cmd
	}
	return m, nil
}

// renderOverview renders the main view: totals and one block per focus area.
func (m Model) renderOverview(width, height int) string {
	styles := m.theme.Styles()
	if !m.snapshot.HasData {
		return m.renderWaiting()
	}

	sum := m.summary
	var b strings.Builder
	b.WriteString(styles.Title.Render("Research Radar"))
	if m.snapshot.RadarDate != "" {
		b.WriteString("  ")
		b.WriteString(styles.InfoText.Render(m.snapshot.RadarDate))
	}
	b.WriteString("\n\n")
	b.WriteString(m.countsLine(radar.FocusCounts{Signal: sum.Signal, Noise: sum.Noise, Total: sum.Total}))
	b.WriteString("\n")
	if refreshed := sum.FormatRefreshed(); refreshed != "" {
		b.WriteString(styles.FaintText.Render("Last refreshed " + refreshed))
		b.WriteString("\n")
	}

	for _, area := range radar.FocusAreas() {
		b.WriteString("\n")
		b.WriteString(styles.AccentText.Render(radar.FocusAreaText(area)))
		b.WriteString("  ")
		b.WriteString(m.countsLine(sum.FocusArea(area)))
		b.WriteString("\n")
		b.WriteString(m.signalBar(sum.FocusArea(area), max(min(width-2, 50), 10)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("enter/d open the data table • 2-4 focus areas"))
	return clipLines(b.String(), height)
}

// renderSection renders a focus-area section: its counts and the top
// signals by confidence.
func (m Model) renderSection(width, height int) string {
	styles := m.theme.Styles()
	area, _ := radar.FocusAreaFor(m.dest)
	if !m.snapshot.HasData {
		return m.renderWaiting()
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render(radar.FocusAreaText(area)))
	b.WriteString("\n\n")
	counts := m.summary.FocusArea(area)
	b.WriteString(m.countsLine(counts))
	b.WriteString("\n")
	b.WriteString(m.signalBar(counts, max(min(width-2, 50), 10)))
	b.WriteString("\n\n")

	b.WriteString(styles.AccentText.Render("Top signals"))
	b.WriteString("\n")
	top := radar.TopSignals(m.snapshot.Records, area, topSignalLimit)
	if len(top) == 0 {
		b.WriteString(styles.MutedText.Render("No signals in this focus area."))
		b.WriteString("\n")
	}
	for i, rec := range top {
		b.WriteString(styles.FaintText.Render(fmt.Sprintf("%d. ", i+1)))
		b.WriteString(styles.Text.Render(padRight(rec.ToolName, colTool)))
		b.WriteString(" ")
		b.WriteString(styles.StateStyle(radar.StatePositive).Render(fmt.Sprintf("%3d", rec.ConfidenceScore)))
		b.WriteString(" ")
		b.WriteString(styles.MutedText.Render(radar.ConfidenceText(rec.ConfidenceScore)))
		b.WriteString("\n")
		if insight := wrap(rec.TechnicalInsight, max(width-5, 10)); len(insight) > 0 {
			b.WriteString("   ")
			b.WriteString(styles.FaintText.Render(truncate(insight[0], max(width-5, 10))))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("enter browse this focus area • esc back"))
	return clipLines(b.String(), height)
}

func (m Model) countsLine(c radar.FocusCounts) string {
	styles := m.theme.Styles()
	return styles.MutedText.Render("Signal ") +
		styles.StateStyle(radar.StatePositive).Render(fmt.Sprintf("%d", c.Signal)) +
		styles.FaintText.Render("  •  ") +
		styles.MutedText.Render("Noise ") +
		styles.StateStyle(radar.StateNegative).Render(fmt.Sprintf("%d", c.Noise)) +
		styles.FaintText.Render("  •  ") +
		styles.MutedText.Render("Total ") +
		styles.Text.Render(fmt.Sprintf("%d", c.Total))
}

// signalBar draws the signal/noise split as a proportional bar.
func (m Model) signalBar(c radar.FocusCounts, width int) string {
	styles := m.theme.Styles()
	if c.Total == 0 {
		return styles.FaintText.Render(strings.Repeat("░", width))
	}
	signal := c.Signal * width / c.Total
	noise := c.Noise * width / c.Total
	rest := max(width-signal-noise, 0)
	return styles.StateStyle(radar.StatePositive).Render(strings.Repeat("█", signal)) +
		styles.StateStyle(radar.StateNegative).Render(strings.Repeat("█", noise)) +
		styles.FaintText.Render(strings.Repeat("░", rest))
}

// renderNotFound is shown for unknown routes.
func (m Model) renderNotFound(width int) string {
	styles := m.theme.Styles()
	lines := []string{
		styles.DangerText.Render("Not found"),
		"",
		styles.MutedText.Render(truncate("That view does not exist.", width)),
		styles.FaintText.Render("esc main view • d data table"),
	}
	return strings.Join(lines, "\n")
}

// clipLines drops lines past height.
func clipLines(s string, height int) string {
	if height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= height {
		return s
	}
	return strings.Join(lines[:height], "\n")
}
