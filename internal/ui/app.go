package ui

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/codescale/radar/internal/config"
	"github.com/codescale/radar/internal/logtail"
	"github.com/codescale/radar/internal/prefs"
	"github.com/codescale/radar/internal/radar"
	"github.com/codescale/radar/internal/state"
)

// pane identifies which column receives keyboard input.
type pane int

const (
	paneContent pane = iota
	paneSidebar
)

// Options configures the UI.
type Options struct {
	Context context.Context
	Store   *state.Store
	// Refresh asks the poller for an immediate fetch. Nil disables manual
	// refresh.
	Refresh      func()
	Config       config.Config
	Prefs        prefs.Prefs
	PrefsPath    string
	PollTick     time.Duration
	InitialRoute string
	Logger       *slog.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	store     *state.Store
	refresh   func()
	config    config.Config
	prefs     prefs.Prefs
	prefsPath string
	pollTick  time.Duration
	logger    *slog.Logger
	copyFn    func(string) error

	// UI state
	keys     keyMap
	help     help.Model
	spinner  spinner.Model
	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool
	focus    pane

	// Data state
	snapshot   state.Snapshot
	summary    radar.Summary
	refreshing bool

	// Navigation state
	dest            radar.Destination
	pending         *radar.NavigationRequest
	sidebarExpanded bool
	navCursor       int

	// Data table state
	list        *radar.ListViewState
	visible     []radar.TrendRecord
	selectedRow int
	selectedID  int64
	searching   bool
	searchInput textinput.Model
	searchPrev  string

	// Detail state
	detail         radar.TrendDetail
	detailViewport viewport.Model

	// Settings state
	settingsViewport viewport.Model
	logLines         []string
	logErr           error

	// Footer message
	status    string
	statusSeq int
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = defaultUITick
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	p := opts.Prefs
	if p.Theme == "" {
		p = prefs.Defaults()
	}
	theme := GetTheme(p.Theme)

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))

	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "tool name or insight"
	ti.CharLimit = 120

	m := Model{
		store:            opts.Store,
		refresh:          opts.Refresh,
		config:           opts.Config,
		prefs:            p,
		prefsPath:        prefsPath,
		pollTick:         pollTick,
		logger:           logger,
		copyFn:           clipboard.WriteAll,
		keys:             DefaultKeyMap(),
		help:             help.New(),
		spinner:          sp,
		theme:            theme,
		dest:             radar.DestMain,
		sidebarExpanded:  p.SidebarExpanded,
		list:             radar.NewListViewState(p.CaseSensitive(opts.Config.SearchCaseSensitive)),
		searchInput:      ti,
		detailViewport:   viewport.New(0, 0),
		settingsViewport: viewport.New(0, 0),
	}
	if opts.Store != nil {
		m.applySnapshot(opts.Store.Snapshot())
	}
	m.navigate(radar.ParseRoute(opts.InitialRoute))
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.spinner.Tick,
		tickCmd(m.pollTick),
	}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	if m.dest == radar.DestSettings {
		cmds = append(cmds, loadLogTailCmd(m.config.LogPath()))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		m.resizeViewports()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		cmd := m.handleSnapshot(state.Snapshot(msg))
		return m, cmd

	case logTailMsg:
		m.logLines = msg.lines
		m.logErr = msg.err
		m.updateSettingsViewport()
		return m, nil

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// handleKey processes keyboard input. Search mode and the help overlay
// capture every key; everything else goes through the global bindings first.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "e":
		return m, tea.Quit

	case "h", "?":
		m.showHelp = true
		return m, nil

	case "T":
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))
		m.prefs.Theme = m.theme.Name
		m.savePrefs()
		m.updateDetailViewport()
		m.updateSettingsViewport()
		return m, nil

	case "tab", "shift+tab":
		m.toggleFocus()
		return m, nil

	case "[":
		m.sidebarExpanded = radar.ToggleSidebar(m.sidebarExpanded)
		m.prefs.SidebarExpanded = m.sidebarExpanded
		m.savePrefs()
		m.resizeViewports()
		return m, nil

	case "1", "2", "3", "4", "5":
		items := radar.NavItems()
		idx := int(msg.String()[0] - '1')
		if idx < len(items) {
			cmd := m.openNavItem(items[idx])
			return m, cmd
		}
		return m, nil

	case "r":
		cmd := m.manualRefresh()
		return m, cmd

	case "esc":
		cmd := m.back()
		return m, cmd
	}

	if m.focus == paneSidebar {
		return m.handleSidebarKey(msg)
	}

	switch m.dest {
	case radar.DestDataTable:
		return m.handleTableKey(msg)
	case radar.DestTrendDetail:
		return m.handleDetailKey(msg)
	case radar.DestSettings:
		return m.handleSettingsKey(msg)
	case radar.DestMain, radar.DestVoiceAI, radar.DestAgentOrch, radar.DestDurableRuntime, radar.DestNotFound:
		return m.handleOverviewKey(msg)
	}

	return m, nil
}

// toggleFocus moves keyboard focus between the sidebar and the content.
func (m *Model) toggleFocus() {
	if m.focus == paneSidebar {
		m.focus = paneContent
		return
	}
	m.focus = paneSidebar
	m.syncNavCursor()
}

// handleTick processes the polling tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}

	cmds = append(cmds, tickCmd(m.pollTick))

	return m, tea.Batch(cmds...)
}

// handleSnapshot applies a new snapshot and retries a pending navigation
// once data is available.
func (m *Model) handleSnapshot(snap state.Snapshot) tea.Cmd {
	polled := !snap.LastUpdated.Equal(m.snapshot.LastUpdated)
	changed := !snap.LastSuccess.Equal(m.snapshot.LastSuccess)
	m.applySnapshot(snap)
	if polled {
		m.refreshing = false
	}

	if m.pending != nil && snap.HasData {
		req := *m.pending
		m.pending = nil
		return m.navigate(req)
	}

	switch m.dest {
	case radar.DestDataTable:
		m.recomputeTable()
	case radar.DestTrendDetail:
		if changed && m.pending == nil {
			return m.reloadDetail()
		}
	}
	return nil
}

// applySnapshot stores snap and recomputes the summary when a successful
// poll replaced the data. Failed polls leave the refreshed time alone.
func (m *Model) applySnapshot(snap state.Snapshot) {
	if snap.LastSuccess.Equal(m.snapshot.LastSuccess) && m.summary.ByFocusArea != nil {
		m.snapshot = snap
		return
	}
	m.snapshot = snap
	m.summary = radar.RecomputeCounts(snap.Records, time.Now())
}

// manualRefresh nudges the poller and restamps the summary.
func (m *Model) manualRefresh() tea.Cmd {
	if m.refresh == nil {
		return m.setStatus("Refresh unavailable")
	}
	m.refresh()
	m.refreshing = true
	m.summary = radar.RecomputeCounts(m.snapshot.Records, time.Now())
	m.logger.Info("manual refresh requested")
	if m.dest == radar.DestSettings {
		return tea.Batch(m.setStatus("Refreshing..."), loadLogTailCmd(m.config.LogPath()))
	}
	return m.setStatus("Refreshing...")
}

// setStatus shows a transient footer message.
func (m *Model) setStatus(text string) tea.Cmd {
	m.statusSeq++
	m.status = text
	seq := m.statusSeq
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.logger.Warn("save prefs failed", "path", m.prefsPath, "error", err)
	}
}

// resizeViewports fits the scrollable panes to the content area.
func (m *Model) resizeViewports() {
	w, h := m.contentSize()
	m.detailViewport.Width = w
	m.detailViewport.Height = h
	m.settingsViewport.Width = w
	m.settingsViewport.Height = h
	m.updateDetailViewport()
	m.updateSettingsViewport()
}

// contentSize returns the inner size of the content pane.
func (m Model) contentSize() (int, int) {
	w := m.width - m.sidebarWidth() - 2
	h := m.height - 4
	return max(w, 0), max(h, 0)
}

func (m Model) sidebarWidth() int {
	if m.sidebarExpanded {
		return sidebarExpandedWidth
	}
	return sidebarCollapsedWidth
}

// renderMain renders the header, the sidebar and content row, and the footer.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), m.renderContentPane())
	b.WriteString(body)
	b.WriteString("\n")

	b.WriteString(m.renderFooter())

	return b.String()
}

// renderContentPane frames the current view.
func (m Model) renderContentPane() string {
	w, h := m.contentSize()
	border := m.theme.Border
	if m.focus == paneContent {
		border = m.theme.BorderFocus
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Width(w).
		Height(h).
		MaxHeight(h + 2).
		Render(m.renderContent(w, h))
}

// renderContent renders the main content area based on the destination.
func (m Model) renderContent(width, height int) string {
	switch m.dest {
	case radar.DestMain:
		return m.renderOverview(width, height)
	case radar.DestDataTable:
		return m.renderTable(width, height)
	case radar.DestTrendDetail:
		if m.pending != nil {
			return m.renderWaiting()
		}
		return m.renderDetail()
	case radar.DestVoiceAI, radar.DestAgentOrch, radar.DestDurableRuntime:
		return m.renderSection(width, height)
	case radar.DestSettings:
		return m.renderSettings()
	default:
		return m.renderNotFound(width)
	}
}

// renderFooter shows the search prompt, a status message, or key hints.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	switch {
	case m.searching:
		return styles.Footer.Width(m.width).Render(m.searchInput.View())
	case m.status != "":
		return styles.Footer.Width(m.width).Render(styles.WarningText.Render(m.status))
	default:
		return styles.Footer.Width(m.width).Render(m.help.ShortHelpView(m.keys.ShortHelp()))
	}
}

func (m Model) renderWaiting() string {
	styles := m.theme.Styles()
	return m.spinner.View() + " " + styles.MutedText.Render("Waiting for radar data...")
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type logTailMsg struct {
	lines []string
	err   error
}

type clearStatusMsg struct{ seq int }

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func loadLogTailCmd(path string) tea.Cmd {
	return func() tea.Msg {
		lines, err := logtail.Read(path, settingsLogLines)
		return logTailMsg{lines: lines, err: err}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
