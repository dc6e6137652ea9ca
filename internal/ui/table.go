package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/codescale/radar/internal/radar"
)

// Column widths of the data table.
const (
	colIcon       = 2
	colTool       = 24
	colFocus      = 20
	colClass      = 8
	colConfidence = 11
)

// recomputeTable reapplies the list state to the snapshot and keeps the
// selection on the same record id when it is still visible.
func (m *Model) recomputeTable() {
	m.visible, _ = m.list.Recompute(m.snapshot.Records)
	if len(m.visible) == 0 {
		m.selectedRow = 0
		return
	}
	if m.selectedID > 0 {
		for i, rec := range m.visible {
			if rec.ID == m.selectedID {
				m.selectedRow = i
				return
			}
		}
	}
	m.selectedRow = clamp(m.selectedRow, 0, len(m.visible)-1)
	m.selectedID = m.visible[m.selectedRow].ID
}

// selectedRecord returns the highlighted row, if any.
func (m Model) selectedRecord() (radar.TrendRecord, bool) {
	if m.selectedRow < 0 || m.selectedRow >= len(m.visible) {
		return radar.TrendRecord{}, false
	}
	return m.visible[m.selectedRow], true
}

func (m *Model) moveSelection(row int) {
	if len(m.visible) == 0 {
		return
	}
	m.selectedRow = clamp(row, 0, len(m.visible)-1)
	m.selectedID = m.visible[m.selectedRow].ID
}

// handleTableKey processes keyboard input for the data table.
func (m Model) handleTableKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	_, h := m.contentSize()
	page := max(h-3, 1)

	switch msg.String() {
	case "j", "down":
		m.moveSelection(m.selectedRow + 1)
	case "k", "up":
		m.moveSelection(m.selectedRow - 1)
	case "g", "home":
		m.moveSelection(0)
	case "G", "end":
		m.moveSelection(len(m.visible) - 1)
	case "pgdown", "ctrl+d":
		m.moveSelection(m.selectedRow + page)
	case "pgup", "ctrl+u":
		m.moveSelection(m.selectedRow - page)

	case "enter":
		row, ok := m.selectedRecord()
		if !ok {
			return m, nil
		}
		req, ok := radar.SelectRow(m.snapshot.Records, row)
		if !ok {
			cmd := m.setStatus("Trend no longer available")
			return m, cmd
		}
		cmd := m.navigate(req)
		return m, cmd

	case "/":
		cmd := m.startSearch()
		return m, cmd

	case "f":
		m.list.CycleFocusAreaFilter()
		m.recomputeTable()
	case "c":
		m.list.CycleClassificationFilter()
		m.recomputeTable()
	case "s":
		m.list.ToggleSort(radar.FieldConfidence)
		m.recomputeTable()
	case "n":
		m.list.ToggleSort(radar.FieldToolName)
		m.recomputeTable()
	case "x":
		m.list.ClearFilters()
		m.recomputeTable()

	case "i":
		cmd := m.toggleCaseSensitive()
		return m, cmd

	case "y":
		row, ok := m.selectedRecord()
		if !ok {
			return m, nil
		}
		cmd := m.copyToolName(row.ToolName)
		return m, cmd
	}

	return m, nil
}

// toggleCaseSensitive flips search case matching and persists the choice.
func (m *Model) toggleCaseSensitive() tea.Cmd {
	enabled := !m.list.CaseSensitive()
	m.list.SetCaseSensitive(enabled)
	m.prefs = m.prefs.WithCaseSensitive(enabled)
	m.savePrefs()
	if m.dest == radar.DestDataTable {
		m.recomputeTable()
	}
	if m.dest == radar.DestSettings {
		m.updateSettingsViewport()
	}
	if enabled {
		return m.setStatus("Search is case-sensitive")
	}
	return m.setStatus("Search ignores case")
}

func (m *Model) copyToolName(name string) tea.Cmd {
	if err := m.copyFn(name); err != nil {
		m.logger.Warn("clipboard copy failed", "error", err)
		return m.setStatus("Clipboard unavailable")
	}
	return m.setStatus("Copied " + truncate(name, 40))
}

// renderTable renders the title, column header and visible rows.
func (m Model) renderTable(width, height int) string {
	styles := m.theme.Styles()

	if !m.snapshot.HasData {
		return m.renderWaiting()
	}

	title := styles.Title.Render(fmt.Sprintf("Trends %d/%d", m.list.ItemCount(), len(m.snapshot.Records)))
	if summary := m.list.FilterSummary(); summary != "" {
		title += "  " + styles.MutedText.Render(truncate(summary, max(width-20, 10)))
	}

	lines := []string{title, styles.FaintText.Render(m.tableHeader(width))}

	if len(m.visible) == 0 {
		msg := "No trends in this radar."
		if m.list.Filtered() {
			msg = "No trends match. Press x to clear filters."
		}
		lines = append(lines, "", styles.MutedText.Render(msg))
		return strings.Join(lines, "\n")
	}

	rows := max(height-len(lines), 1)
	start := 0
	if m.selectedRow >= rows {
		start = m.selectedRow - rows + 1
	}
	end := min(start+rows, len(m.visible))

	for i := start; i < end; i++ {
		lines = append(lines, m.renderTableRow(m.visible[i], width, i == m.selectedRow))
	}
	return strings.Join(lines, "\n")
}

func (m Model) tableHeader(width int) string {
	cols := []string{
		padRight("", colIcon),
		padRight("TOOL", colTool),
		padRight("FOCUS AREA", colFocus),
		padRight("CLASS", colClass),
		padRight("CONFIDENCE", colConfidence),
	}
	if insight := m.insightWidth(width); insight > 0 {
		cols = append(cols, padRight("INSIGHT", insight))
	}
	return strings.Join(cols, " ")
}

func (m Model) insightWidth(width int) int {
	if width < layoutInsightWidth {
		return 0
	}
	fixed := colIcon + colTool + colFocus + colClass + colConfidence + 5
	return max(width-fixed-1, 0)
}

func (m Model) renderTableRow(rec radar.TrendRecord, width int, selected bool) string {
	styles := m.theme.Styles()
	tone := radar.ClassificationState(rec.Classification)
	icon := radar.ClassificationIcon(rec.Classification).Glyph()
	confidence := fmt.Sprintf("%3d %s", rec.ConfidenceScore, radar.ConfidenceText(rec.ConfidenceScore))

	cells := []string{
		padRight(icon, colIcon),
		padRight(rec.ToolName, colTool),
		padRight(radar.FocusAreaText(rec.FocusArea), colFocus),
		padRight(strings.ToUpper(rec.Classification), colClass),
		padRight(confidence, colConfidence),
	}
	if insight := m.insightWidth(width); insight > 0 {
		cells = append(cells, padRight(strings.ReplaceAll(rec.TechnicalInsight, "\n", " "), insight))
	}

	if selected {
		return styles.Selected.Width(width).Render(strings.Join(cells, " "))
	}

	toneStyle := styles.StateStyle(tone)
	cells[0] = toneStyle.Render(cells[0])
	cells[1] = styles.Text.Render(cells[1])
	cells[2] = styles.MutedText.Render(cells[2])
	cells[3] = toneStyle.Render(cells[3])
	cells[4] = lipgloss.NewStyle().Foreground(lipgloss.Color(m.confidenceColor(rec.ConfidenceScore))).Render(cells[4])
	for i := 5; i < len(cells); i++ {
		cells[i] = styles.FaintText.Render(cells[i])
	}
	return strings.Join(cells, " ")
}

// confidenceColor maps the confidence bucket to a palette colour.
func (m Model) confidenceColor(score int) string {
	switch radar.ConfidenceText(score) {
	case "High":
		return m.theme.Positive
	case "Medium":
		return m.theme.Warning
	default:
		return m.theme.Muted
	}
}
