package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/codescale/radar/internal/radar"
)

// renderSidebar draws the navigation menu. Collapsed, it shows only the
// jump numbers.
func (m Model) renderSidebar() string {
	styles := m.theme.Styles()
	_, h := m.contentSize()
	width := m.sidebarWidth() - 2
	active := m.activeNavIndex()

	var lines []string
	if m.sidebarExpanded {
		lines = append(lines, styles.Title.Render("Radar"), "")
	} else {
		lines = append(lines, styles.Title.Render("R"), "")
	}

	for i, item := range radar.NavItems() {
		label := fmt.Sprintf("%d", i+1)
		if m.sidebarExpanded {
			label = fmt.Sprintf("%d %s", i+1, item.Label)
		}
		label = padRight(label, width)

		style := styles.MutedText
		switch {
		case m.focus == paneSidebar && i == m.navCursor:
			style = styles.Selected
		case i == active:
			style = styles.AccentText.Bold(true)
		}
		lines = append(lines, style.Render(label))
	}

	border := m.theme.Border
	if m.focus == paneSidebar {
		border = m.theme.BorderFocus
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Width(width).
		Height(h).
		Render(strings.Join(lines, "\n"))
}

// activeNavIndex returns the sidebar entry of the current view, -1 when
// the view has none.
func (m Model) activeNavIndex() int {
	dest := m.dest
	if dest == radar.DestDataTable || dest == radar.DestTrendDetail {
		dest = radar.DestMain
	}
	for i, item := range radar.NavItems() {
		if item.Dest == dest {
			return i
		}
	}
	return -1
}
