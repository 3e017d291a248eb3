package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tbl "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/artable/internal/artwork"
	"github.com/rshade/artable/internal/logging"
	"github.com/rshade/artable/internal/table"
)

// ViewState is the screen the browser is showing.
type ViewState int

const (
	// ViewStateList shows the table (or the loading indicator).
	ViewStateList ViewState = iota
	// ViewStateDetail shows every field of one record.
	ViewStateDetail
	// ViewStateQuitting is set once the user quits.
	ViewStateQuitting
)

// Table column widths.
const (
	colWidthCheck       = 3
	colWidthTitle       = 30
	colWidthOrigin      = 14
	colWidthArtist      = 28
	colWidthInscription = 20
	colWidthYear        = 10
)

// chromeHeight is the number of rows used by header, pagination and help.
const chromeHeight = 7

// PageLoadedMsg carries a finished page-load cycle back to the event loop.
type PageLoadedMsg struct {
	Result table.LoadResult
}

// BrowserOption configures a BrowserModel.
type BrowserOption func(*BrowserModel)

// WithPageChangeHook registers a callback for every page change the user makes.
func WithPageChangeHook(fn func(page int)) BrowserOption {
	return func(m *BrowserModel) { m.onPageChange = fn }
}

// WithRowToggleHook registers a callback for every row toggle.
func WithRowToggleHook(fn func(id int, selected bool)) BrowserOption {
	return func(m *BrowserModel) { m.onRowToggle = fn }
}

// BrowserModel is the Bubble Tea model for the artwork table.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type BrowserModel struct {
	ctx  context.Context
	ctrl *table.Controller

	// View state
	state  ViewState
	detail artwork.Record

	// Interactive components
	table   tbl.Model
	spinner spinner.Model
	help    help.Model
	keys    KeyMap

	// Display configuration
	width  int
	height int

	// Outbound callbacks
	onPageChange func(page int)
	onRowToggle  func(id int, selected bool)
}

// NewBrowserModel creates the browser around ctrl. The first page load starts in Init.
func NewBrowserModel(ctx context.Context, ctrl *table.Controller, opts ...BrowserOption) BrowserModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = InfoStyle

	m := BrowserModel{
		ctx:     ctx,
		ctrl:    ctrl,
		state:   ViewStateList,
		spinner: s,
		help:    help.New(),
		keys:    DefaultKeyMap(),
		width:   TerminalWidth(),
		height:  defaultHeight,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.table = m.buildTable(0)
	return m
}

// Init starts the first page load (Bubble Tea interface).
func (m BrowserModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadCmd(m.ctrl.Start()))
}

// loadCmd runs a cycle off the event loop.
func loadCmd(cycle table.Cycle) tea.Cmd {
	return func() tea.Msg {
		return PageLoadedMsg{Result: cycle.Run()}
	}
}

// Update handles messages and updates the model state (Bubble Tea interface).
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.rebuildTable()
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case PageLoadedMsg:
		return m.handlePageLoaded(msg)
	case tea.KeyMsg:
		switch m.state {
		case ViewStateList:
			return m.handleListKeypress(msg)
		case ViewStateDetail:
			return m.handleDetailKeypress(msg)
		case ViewStateQuitting:
			return m, nil
		}
	}
	return m, nil
}

func (m BrowserModel) handlePageLoaded(msg PageLoadedMsg) (tea.Model, tea.Cmd) {
	if !m.ctrl.Apply(msg.Result) {
		return m, nil
	}
	if msg.Result.Outcome == artwork.OutcomeSuccess {
		m.table = m.buildTable(0)
	}
	return m, nil
}

func (m BrowserModel) handleListKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Prev):
		p := m.ctrl.Pagination()
		if !p.HasPrevious() {
			return m, nil
		}
		return m.navigate(p.Previous())
	case key.Matches(msg, m.keys.Next):
		p := m.ctrl.Pagination()
		if !p.HasNext() {
			return m, nil
		}
		return m.navigate(p.Next())
	case key.Matches(msg, m.keys.Reload):
		return m, loadCmd(m.ctrl.Reload())
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	// Row actions need visible rows.
	if m.ctrl.Loading() || len(m.ctrl.Records()) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Toggle):
		return m.toggleRow()
	case key.Matches(msg, m.keys.ToggleAll):
		m.ctrl.ToggleSelectAll()
		m.rebuildTable()
		return m, nil
	case key.Matches(msg, m.keys.Detail):
		if rec, ok := m.cursorRecord(); ok {
			m.detail = rec
			m.state = ViewStateDetail
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
}

func (m BrowserModel) handleDetailKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Detail):
		m.state = ViewStateList
		m.table.Focus()
		return m, nil
	case key.Matches(msg, m.keys.Toggle):
		if selected, err := m.ctrl.ToggleSelection(m.detail.ID); err == nil {
			m.notifyToggle(m.detail.ID, selected)
			m.rebuildTable()
		}
		return m, nil
	}
	return m, nil
}

func (m BrowserModel) quit() (tea.Model, tea.Cmd) {
	m.state = ViewStateQuitting
	m.ctrl.Close()
	return m, tea.Quit
}

// navigate applies a page emitted by the pagination control.
func (m BrowserModel) navigate(page int) (tea.Model, tea.Cmd) {
	cycle, changed := m.ctrl.SetPage(page)
	if !changed {
		return m, nil
	}
	if m.onPageChange != nil {
		m.onPageChange(m.ctrl.Page())
	}
	logging.FromContext(m.ctx).Debug().Int("page", m.ctrl.Page()).Msg("page change requested")
	return m, loadCmd(cycle)
}

func (m BrowserModel) toggleRow() (tea.Model, tea.Cmd) {
	rec, ok := m.cursorRecord()
	if !ok {
		return m, nil
	}
	selected, err := m.ctrl.ToggleSelection(rec.ID)
	if err != nil {
		logging.FromContext(m.ctx).Warn().Err(err).Int("id", rec.ID).Msg("row toggle ignored")
		return m, nil
	}
	m.notifyToggle(rec.ID, selected)
	m.rebuildTable()
	return m, nil
}

func (m BrowserModel) notifyToggle(id int, selected bool) {
	if m.onRowToggle != nil {
		m.onRowToggle(id, selected)
	}
}

func (m BrowserModel) cursorRecord() (artwork.Record, bool) {
	records := m.ctrl.Records()
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(records) {
		return artwork.Record{}, false
	}
	return records[cursor], true
}

// rebuildTable reconstructs the table keeping the cursor row.
func (m *BrowserModel) rebuildTable() {
	m.table = m.buildTable(m.table.Cursor())
}

// buildTable creates a table model for the current page.
func (m *BrowserModel) buildTable(cursor int) tbl.Model {
	columns := []tbl.Column{
		{Title: checkbox(m.ctrl.AllSelectedOnPage()), Width: colWidthCheck},
		{Title: "Title", Width: colWidthTitle},
		{Title: "Origin", Width: colWidthOrigin},
		{Title: "Artist", Width: colWidthArtist},
		{Title: "Inscription", Width: colWidthInscription},
		{Title: "Start Year", Width: colWidthYear},
		{Title: "End Year", Width: colWidthYear},
	}

	records := m.ctrl.Records()
	rows := make([]tbl.Row, len(records))
	for i, r := range records {
		rows[i] = tbl.Row{
			checkbox(m.ctrl.IsSelected(r.ID)),
			cellText(r.Title),
			cellText(r.PlaceOfOrigin),
			cellText(r.ArtistDisplay),
			cellText(r.Inscription),
			yearText(r.DateStart),
			yearText(r.DateEnd),
		}
	}

	availableHeight := m.height - chromeHeight
	if availableHeight < len(rows)+1 {
		availableHeight = len(rows) + 1
	}

	t := tbl.New(
		tbl.WithColumns(columns),
		tbl.WithRows(rows),
		tbl.WithFocused(m.state == ViewStateList),
		tbl.WithHeight(availableHeight),
	)

	s := tbl.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	t.SetStyles(s)

	if cursor >= len(rows) {
		cursor = len(rows) - 1
	}
	if cursor > 0 {
		t.SetCursor(cursor)
	}
	return t
}

// Controller returns the underlying table controller.
func (m BrowserModel) Controller() *table.Controller {
	return m.ctrl
}

// State returns the current view state.
func (m BrowserModel) State() ViewState {
	return m.state
}
