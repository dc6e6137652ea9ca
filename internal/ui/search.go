package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// startSearch opens the search prompt seeded with the current query.
func (m *Model) startSearch() tea.Cmd {
	m.searching = true
	m.searchPrev = m.list.SearchText()
	m.searchInput.SetValue(m.searchPrev)
	m.searchInput.CursorEnd()
	return m.searchInput.Focus()
}

// handleSearchKey filters live while typing. Enter keeps the query, Esc
// restores the one in place before the prompt opened.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.stopSearch()
		return m, nil
	case "esc":
		m.list.SetSearchText(m.searchPrev)
		m.recomputeTable()
		m.stopSearch()
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if value := m.searchInput.Value(); value != m.list.SearchText() {
		m.list.SetSearchText(value)
		m.selectedRow = 0
		m.selectedID = 0
		m.recomputeTable()
	}
	return m, cmd
}

func (m *Model) stopSearch() {
	m.searching = false
	m.searchInput.Blur()
}
