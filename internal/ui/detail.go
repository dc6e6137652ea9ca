package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/codescale/radar/internal/radar"
)

// handleDetailKey scrolls the detail pane and copies the tool name.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		cmd := m.copyToolName(m.detail.ToolName)
		return m, cmd
	case "g", "home":
		m.detailViewport.GotoTop()
		return m, nil
	case "G", "end":
		m.detailViewport.GotoBottom()
		return m, nil
	case "d":
		cmd := m.navigate(radar.NavigationRequest{Dest: radar.DestDataTable})
		return m, cmd
	}
	var cmd tea.Cmd
	m.detailViewport, cmd = m.detailViewport.Update(msg)
	return m, cmd
}

// updateDetailViewport re-renders the detail body into the viewport.
func (m *Model) updateDetailViewport() {
	if m.dest != radar.DestTrendDetail || m.detailViewport.Width <= 0 {
		return
	}
	m.detailViewport.SetContent(m.detailContent(m.detailViewport.Width))
}

func (m Model) renderDetail() string {
	return m.detailViewport.View()
}

// detailContent lays out one trend: title, classification line, insight,
// evidence lists and metadata.
func (m Model) detailContent(width int) string {
	styles := m.theme.Styles()
	d := m.detail
	tone := radar.ClassificationState(d.Classification)
	labelStyle := styles.MutedText.Width(12)

	var b strings.Builder
	b.WriteString(styles.StateStyle(tone).Render(radar.ClassificationIcon(d.Classification).Glyph()))
	b.WriteString(" ")
	b.WriteString(styles.Title.Render(d.ToolName))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", max(min(width, 60), 1))))
	b.WriteString("\n")

	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(value)
		b.WriteString("\n")
	}
	row("Focus", styles.Text.Render(d.FocusAreaText))
	row("Class", styles.StateStyle(tone).Render(strings.ToUpper(d.Classification)))
	row("Confidence", fmt.Sprintf("%s %s",
		styles.Text.Render(fmt.Sprintf("%d", d.ConfidenceScore)),
		styles.MutedText.Render("("+d.ConfidenceText()+")")))
	verdict := styles.StateStyle(radar.StateNegative).Render("not recommended")
	if d.ArchitecturalVerdict {
		verdict = styles.StateStyle(radar.StatePositive).Render("adopt")
	}
	row("Verdict", verdict)

	b.WriteString("\n")
	b.WriteString(styles.Title.Render("Technical Insight"))
	b.WriteString("\n")
	insight := wrap(d.TechnicalInsight, max(width-2, 10))
	if len(insight) == 0 {
		b.WriteString(styles.FaintText.Render("No insight recorded."))
		b.WriteString("\n")
	}
	for _, line := range insight {
		b.WriteString(styles.Text.Render(line))
		b.WriteString("\n")
	}

	m.writeEvidence(&b, "Signal Evidence", d.SignalEvidence, styles.StateStyle(radar.StatePositive).Render("+"), width)
	m.writeEvidence(&b, "Noise Indicators", d.NoiseIndicators, styles.StateStyle(radar.StateNegative).Render("-"), width)

	b.WriteString("\n")
	if d.Timestamp != "" {
		row("Analyzed", styles.MutedText.Render(d.Timestamp))
	}
	row("Record", styles.FaintText.Render(fmt.Sprintf("#%d (row %d)", d.ID, d.Index)))

	return b.String()
}

func (m Model) writeEvidence(b *strings.Builder, title string, items []string, bullet string, width int) {
	styles := m.theme.Styles()
	b.WriteString("\n")
	b.WriteString(styles.Title.Render(title))
	b.WriteString("\n")
	if len(items) == 0 {
		b.WriteString(styles.FaintText.Render("None"))
		b.WriteString("\n")
		return
	}
	for _, item := range items {
		for i, line := range wrap(item, max(width-4, 10)) {
			if i == 0 {
				b.WriteString(bullet + " ")
			} else {
				b.WriteString("  ")
			}
			b.WriteString(styles.Text.Render(line))
			b.WriteString("\n")
		}
	}
}
