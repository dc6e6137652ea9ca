package ui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/codescale/radar/internal/radar"
)

// navigate routes to req.Dest. Detail requests wait for the first snapshot
// with data; a request that resolves to no record lands on the data table.
func (m *Model) navigate(req radar.NavigationRequest) tea.Cmd {
	m.focus = paneContent

	switch req.Dest {
	case radar.DestDataTable:
		m.pending = nil
		m.dest = radar.DestDataTable
		m.list.Reset()
		m.selectedRow = 0
		m.selectedID = 0
		m.recomputeTable()

	case radar.DestTrendDetail:
		m.dest = radar.DestTrendDetail
		if !m.snapshot.HasData {
			m.pending = &req
			return nil
		}
		m.pending = nil
		detail, err := m.loadDetail(req)
		if err != nil {
			if errors.Is(err, radar.ErrNotFound) {
				m.logger.Info("trend not found, showing data table", "index", req.Index, "id", req.ID, "route_arg", req.Arg)
			}
			return m.navigate(radar.NavigationRequest{Dest: radar.DestDataTable})
		}
		m.detail = detail
		m.detailViewport.GotoTop()
		m.updateDetailViewport()

	case radar.DestSettings:
		m.pending = nil
		m.dest = radar.DestSettings
		m.updateSettingsViewport()
		m.syncNavCursor()
		return loadLogTailCmd(m.config.LogPath())

	default:
		m.pending = nil
		m.dest = req.Dest
	}

	m.syncNavCursor()
	return nil
}

// loadDetail resolves by stable id when the request carries one. Route
// requests only know a position, given as the raw route argument.
func (m Model) loadDetail(req radar.NavigationRequest) (radar.TrendDetail, error) {
	switch {
	case req.ID > 0:
		return radar.LoadByID(m.snapshot.Records, req.ID)
	case req.Arg != "":
		return radar.LoadByIndexString(m.snapshot.Records, req.Arg)
	default:
		return radar.LoadByIndex(m.snapshot.Records, req.Index)
	}
}

// reloadDetail refreshes the open detail after new data arrives. The
// record is followed by id; ids survive upstream reordering.
func (m *Model) reloadDetail() tea.Cmd {
	req := radar.NavigationRequest{Dest: radar.DestTrendDetail, Index: m.detail.Index, ID: m.detail.ID}
	detail, err := m.loadDetail(req)
	if err != nil {
		return m.navigate(radar.NavigationRequest{Dest: radar.DestDataTable})
	}
	offset := m.detailViewport.YOffset
	m.detail = detail
	m.updateDetailViewport()
	m.detailViewport.SetYOffset(offset)
	return nil
}

// openNavItem routes to a sidebar entry.
func (m *Model) openNavItem(item radar.NavItem) tea.Cmd {
	return m.navigate(radar.NavigationRequest{Dest: radar.ResolveDestination(item.Key)})
}

// back walks one level up: detail to table, everything else to main.
func (m *Model) back() tea.Cmd {
	if m.focus == paneSidebar {
		m.focus = paneContent
		return nil
	}
	switch m.dest {
	case radar.DestMain:
		return nil
	case radar.DestTrendDetail:
		return m.navigate(radar.NavigationRequest{Dest: radar.DestDataTable})
	default:
		return m.navigate(radar.NavigationRequest{Dest: radar.DestMain})
	}
}

// syncNavCursor points the sidebar cursor at the entry owning the current
// destination. Views without an entry keep the cursor where it is.
func (m *Model) syncNavCursor() {
	if i := m.activeNavIndex(); i >= 0 {
		m.navCursor = i
	}
}

// handleSidebarKey moves the sidebar cursor and opens entries.
func (m Model) handleSidebarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := radar.NavItems()
	switch msg.String() {
	case "j", "down":
		if m.navCursor < len(items)-1 {
			m.navCursor++
		}
	case "k", "up":
		if m.navCursor > 0 {
			m.navCursor--
		}
	case "g", "home":
		m.navCursor = 0
	case "G", "end":
		m.navCursor = len(items) - 1
	case "enter", "l", "right":
		cmd := m.openNavItem(items[m.navCursor])
		return m, cmd
	}
	return m, nil
}
