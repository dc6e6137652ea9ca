package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/codescale/radar/internal/logtail"
	"github.com/codescale/radar/internal/radar"
)

// handleSettingsKey toggles search case sensitivity and scrolls the log.
func (m Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "i":
		cmd := m.toggleCaseSensitive()
		return m, cmd
	case "L":
		return m, loadLogTailCmd(m.config.LogPath())
	case "g", "home":
		m.settingsViewport.GotoTop()
		return m, nil
	case "G", "end":
		m.settingsViewport.GotoBottom()
		return m, nil
	}
	var cmd tea.Cmd
	m.settingsViewport, cmd = m.settingsViewport.Update(msg)
	return m, cmd
}

// updateSettingsViewport re-renders settings and keeps the log pinned to
// its newest line.
func (m *Model) updateSettingsViewport() {
	if m.dest != radar.DestSettings || m.settingsViewport.Width <= 0 {
		return
	}
	m.settingsViewport.SetContent(m.settingsContent(m.settingsViewport.Width))
	m.settingsViewport.GotoBottom()
}

func (m Model) renderSettings() string {
	return m.settingsViewport.View()
}

func (m Model) settingsContent(width int) string {
	styles := m.theme.Styles()
	labelStyle := styles.MutedText.Width(18)
	cfg := m.config

	var b strings.Builder
	b.WriteString(styles.Title.Render("Settings"))
	b.WriteString("\n\n")

	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(styles.Text.Render(truncateMiddle(value, max(width-20, 10))))
		b.WriteString("\n")
	}
	date := cfg.RadarDate
	if date == "" {
		date = "latest"
	}
	caseLabel := "off"
	if m.list.CaseSensitive() {
		caseLabel = "on"
	}
	row("Config file", cfg.Path)
	row("API", cfg.APIURL)
	row("Radar date", date)
	row("Poll interval", cfg.PollInterval().String())
	row("Request timeout", cfg.RequestTimeout.String())
	row("Log file", cfg.LogPath())
	row("Theme", m.theme.Name)
	row("Case-sensitive", caseLabel+"  (i to toggle)")
	if m.snapshot.HasHealth {
		row("Backend", fmt.Sprintf("%s (%s)", m.snapshot.Health.Service, m.snapshot.Health.Status))
	}

	b.WriteString("\n")
	b.WriteString(styles.Title.Render("Log"))
	b.WriteString(styles.FaintText.Render("  L reload"))
	b.WriteString("\n")
	switch {
	case m.logErr != nil:
		b.WriteString(styles.DangerText.Render(m.logErr.Error()))
		b.WriteString("\n")
	case len(m.logLines) == 0:
		b.WriteString(styles.FaintText.Render("No log entries yet."))
		b.WriteString("\n")
	}
	for _, line := range m.logLines {
		b.WriteString(m.formatLogLine(logtail.Parse(line), width))
		b.WriteString("\n")
	}
	return b.String()
}

// formatLogLine colours the level and dims the attributes of a log entry.
func (m Model) formatLogLine(e logtail.Entry, width int) string {
	styles := m.theme.Styles()
	if e.Level == "" {
		return styles.MutedText.Render(truncate(e.Message, width))
	}

	ts := e.Time
	if len(ts) >= 19 {
		ts = ts[11:19]
	}

	var levelColor string
	switch e.Level {
	case "ERROR":
		levelColor = m.theme.Negative
	case "WARN":
		levelColor = m.theme.Warning
	case "DEBUG":
		levelColor = m.theme.Faint
	default:
		levelColor = m.theme.Info
	}

	attrs := make([]string, 0, len(e.Attrs))
	for _, a := range e.Attrs {
		attrs = append(attrs, a.Key+"="+a.Value)
	}
	rest := e.Message
	if len(attrs) > 0 {
		rest += " " + strings.Join(attrs, " ")
	}

	return styles.FaintText.Render(ts) + " " +
		lipgloss.NewStyle().Foreground(lipgloss.Color(levelColor)).Render(padRight(e.Level, 5)) + " " +
		styles.Text.Render(truncate(rest, max(width-16, 10)))
}
