package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/datagrid/internal/grid"
	"github.com/rshade/datagrid/internal/logging"
	"github.com/rshade/datagrid/internal/pagination"
	"github.com/rshade/datagrid/internal/pipeline"
	"github.com/rshade/datagrid/internal/render"
	"github.com/rshade/datagrid/internal/source"
)

// GridConfig describes what an interactive grid shows.
type GridConfig struct {
	Title   string
	Records []grid.Record
	Columns []grid.Column
	Sort    *grid.SortDirective
	RowKey  grid.RowKeySpec
	Sorter  *grid.SortEngine

	// Paging selects the pagination mode. nil means self-managed with defaults.
	// Disabled shows every record; a TotalPages of 0 or more treats Records as one
	// page of an externally managed collection; Page is the page shown first.
	Paging *pagination.Params

	// Fetcher switches the grid to externally managed paging: Records is ignored
	// and each page is requested from Fetcher as the user pages or sorts.
	Fetcher source.PageFetcher

	EmptyMessage string
}

// PageLoadedMsg delivers a fetched page.
type PageLoadedMsg struct {
	Seq  int
	Page source.Page
}

// PageErrorMsg reports a failed fetch.
type PageErrorMsg struct {
	Seq int
	Err error
}

// gridEvents collects pipeline callbacks. It is shared by every copy of the model
// because the pipeline keeps the handlers from the most recent render.
type gridEvents struct {
	sort        *grid.SortDirective
	sortChanged bool
	page        int
	pageChanged bool
}

func (e *gridEvents) onSort(directive *grid.SortDirective) {
	e.sort = directive
	e.sortChanged = true
}

func (e *gridEvents) onPage(page int) {
	e.page = page
	e.pageChanged = true
}

func (e *gridEvents) takeSort() (*grid.SortDirective, bool) {
	directive, changed := e.sort, e.sortChanged
	e.sort, e.sortChanged = nil, false
	return directive, changed
}

func (e *gridEvents) takePage() (int, bool) {
	page, changed := e.page, e.pageChanged
	e.page, e.pageChanged = 0, false
	return page, changed
}

// GridModel is the Bubble Tea model for the interactive data grid.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type GridModel struct {
	state ViewState
	ctx   context.Context
	cfg   GridConfig

	pipe   *pipeline.Pipeline
	events *gridEvents
	out    *pipeline.Output

	records []grid.Record
	sort    *grid.SortDirective

	// Externally managed paging state, as last reported by the fetcher.
	page       int
	totalPages int
	seq        int

	table        table.Model
	activeColumn int
	width        int
	height       int

	loadingState *LoadingState
	err          error
}

// NewGridModel creates an interactive grid. With a Fetcher the model starts in
// ViewStateLoading and Init requests the first page.
func NewGridModel(ctx context.Context, cfg GridConfig) GridModel {
	if cfg.Paging == nil {
		cfg.Paging = pagination.NewParams()
	}

	m := GridModel{
		state:        ViewStateList,
		ctx:          ctx,
		cfg:          cfg,
		pipe:         pipeline.New(cfg.Sorter),
		events:       &gridEvents{},
		records:      cfg.Records,
		sort:         cfg.Sort,
		page:         max(cfg.Paging.Page, pagination.DefaultPage),
		width:        defaultWidth,
		height:       defaultHeight,
		loadingState: NewLoadingState(),
	}

	if cfg.Fetcher != nil {
		m.state = ViewStateLoading
		m.records = nil
		m.seq = 1
		return m
	}
	if cfg.Paging.IsExternallyManaged() {
		m.totalPages = cfg.Paging.TotalPages
	}

	m.refresh()
	return m
}

// Init starts the spinner and, for a fetched grid, loads the first page.
func (m GridModel) Init() tea.Cmd {
	if m.cfg.Fetcher == nil {
		return nil
	}
	return tea.Batch(m.loadingState.Init(), m.fetch(m.page))
}

// Update handles messages and updates the model state (Bubble Tea interface).
func (m GridModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.rebuildTable()
		return m, nil
	case PageLoadedMsg:
		return m.handlePageLoaded(msg)
	case PageErrorMsg:
		return m.handlePageError(msg)
	}

	switch m.state {
	case ViewStateLoading:
		return m.handleLoadingUpdate(msg)
	case ViewStateList:
		return m.handleListUpdate(msg)
	case ViewStateError:
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			return m.quitOn(keyMsg)
		}
		return m, nil
	case ViewStateQuitting:
		return m, nil
	default:
		return m, nil
	}
}

func (m GridModel) handleLoadingUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return m.quitOn(keyMsg)
	}
	return m, m.loadingState.Update(msg)
}

func (m GridModel) quitOn(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case keyQuit, keyCtrlC, keyEsc:
		m.state = ViewStateQuitting
		return m, tea.Quit
	}
	return m, nil
}

func (m GridModel) handlePageLoaded(msg PageLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Seq != m.seq {
		return m, nil
	}

	m.records = msg.Page.Records
	m.page = msg.Page.Number
	m.totalPages = msg.Page.TotalPages
	m.state = ViewStateList

	logging.FromContext(m.ctx).Debug().
		Ctx(m.ctx).
		Str("component", "tui").
		Str("operation", "page_loaded").
		Int("page", m.page).
		Int("total_pages", m.totalPages).
		Int("records", len(m.records)).
		Msg("page loaded")

	m.refresh()
	return m, nil
}

func (m GridModel) handlePageError(msg PageErrorMsg) (tea.Model, tea.Cmd) {
	if msg.Seq != m.seq {
		return m, nil
	}

	logging.FromContext(m.ctx).Error().
		Ctx(m.ctx).
		Str("component", "tui").
		Str("operation", "fetch_page").
		Err(msg.Err).
		Msg("page fetch failed")

	m.err = msg.Err
	m.state = ViewStateError
	return m, nil
}

func (m GridModel) handleListUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	return m.handleListKeypress(keyMsg)
}

func (m GridModel) handleListKeypress(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case keyQuit, keyCtrlC:
		m.state = ViewStateQuitting
		return m, tea.Quit
	case keyLeft, keyH:
		m.moveColumn(-1)
		return m, nil
	case keyRight, keyL:
		m.moveColumn(1)
		return m, nil
	case keyEnter, keyS:
		return m.headerClick()
	case keyNext, keyPgDown:
		return m.changePage(m.pipe.CurrentPage() + 1)
	case keyPrev, keyPgUp:
		return m.changePage(m.pipe.CurrentPage() - 1)
	case keyFirst, keyFirstAlt:
		return m.changePage(pagination.MinPage)
	case keyLast, keyLastAlt:
		return m.changePage(m.out.TotalPages)
	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(keyMsg)
		return m, cmd
	}
}

// moveColumn moves the active column by delta, clamped to the column set.
func (m *GridModel) moveColumn(delta int) {
	next := m.activeColumn + delta
	if next < 0 || next >= len(m.cfg.Columns) {
		return
	}
	m.activeColumn = next
	m.rebuildTable()
}

// headerClick activates the header of the active column. Fetched grids reload the
// current page under the new sort.
func (m GridModel) headerClick() (tea.Model, tea.Cmd) {
	if len(m.cfg.Columns) == 0 {
		return m, nil
	}
	if !m.pipe.HeaderClick(m.cfg.Columns[m.activeColumn].Key) {
		return m, nil
	}

	directive, changed := m.events.takeSort()
	if !changed || directive.Equal(m.sort) {
		return m, nil
	}
	m.sort = directive

	if m.cfg.Fetcher != nil {
		return m.startFetch(m.pipe.CurrentPage())
	}
	m.refresh()
	return m, nil
}

// changePage moves to page when it is inside the current range.
func (m GridModel) changePage(page int) (tea.Model, tea.Cmd) {
	if m.out == nil || page < pagination.MinPage || page > m.out.TotalPages || page == m.pipe.CurrentPage() {
		return m, nil
	}

	m.pipe.PageChange(page)

	if requested, ok := m.events.takePage(); ok {
		if m.cfg.Fetcher != nil {
			return m.startFetch(requested)
		}
		// Without a fetcher the caller-supplied records stay; only the page moves.
		m.page = requested
	}
	m.refresh()
	return m, nil
}

func (m GridModel) startFetch(page int) (tea.Model, tea.Cmd) {
	m.seq++
	m.state = ViewStateLoading
	return m, tea.Batch(m.loadingState.Init(), m.fetch(page))
}

// fetch returns a command that loads page from the fetcher.
func (m GridModel) fetch(page int) tea.Cmd {
	ctx := m.ctx
	fetcher := m.cfg.Fetcher
	size := pagination.ResolvePageSize(&pagination.Options{PageSize: m.cfg.Paging.PageSize}, 0)
	directive := m.sort
	seq := m.seq

	return func() tea.Msg {
		p, err := fetcher.FetchPage(ctx, page, size, directive)
		if err != nil {
			return PageErrorMsg{Seq: seq, Err: err}
		}
		return PageLoadedMsg{Seq: seq, Page: p}
	}
}

// paginationOptions describes the current paging mode to the pipeline.
func (m *GridModel) paginationOptions() *pagination.Options {
	paging := m.cfg.Paging
	if m.cfg.Fetcher != nil {
		opts := pagination.ExternallyManaged(m.page, m.totalPages, paging.PageSize, m.events.onPage)
		opts.Siblings = paging.Siblings
		opts.Boundaries = paging.Boundaries
		return opts
	}

	opts := paging.ToOptions(m.events.onPage)
	if opts.Kind() == pagination.KindExternallyManaged {
		page := m.page
		opts.Page = &page
	}
	return opts
}

// refresh runs the pipeline and rebuilds the table.
func (m *GridModel) refresh() {
	m.out = m.pipe.Render(m.ctx, pipeline.Input{
		Records:      m.records,
		Columns:      m.cfg.Columns,
		Sort:         m.sort,
		OnSortChange: m.events.onSort,
		Pagination:   m.paginationOptions(),
		RowKey:       m.cfg.RowKey,
	})
	m.rebuildTable()
}

func (m *GridModel) rebuildTable() {
	if m.out == nil {
		return
	}
	cursor := m.table.Cursor()
	m.table = m.buildTable()
	if cursor > 0 && cursor < len(m.out.Rows) {
		m.table.SetCursor(cursor)
	}
}

// buildTable creates a table model from the last pipeline output.
func (m *GridModel) buildTable() table.Model {
	columns := make([]table.Column, len(m.out.Columns))
	for i, column := range m.out.Columns {
		title := render.HeaderLabel(column, m.out.Sort, true)
		if i == m.activeColumn {
			title = "[" + title + "]"
		}
		columns[i] = table.Column{Title: title, Width: m.columnWidth(i, title)}
	}

	rows := make([]table.Row, len(m.out.Rows))
	for r, row := range m.out.Rows {
		cells := make(table.Row, len(row.Cells))
		for c, cell := range row.Cells {
			cells[c] = render.DisplayString(cell.Display)
		}
		rows[r] = cells
	}

	height := max(m.height-chromeHeight, minHeight)

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	t.SetStyles(s)

	return t
}

// columnWidth returns the configured width of column i, or one fitted to its
// title and visible cells.
func (m *GridModel) columnWidth(i int, title string) int {
	if w := m.out.Columns[i].Width; w > 0 {
		return w
	}
	width := lipgloss.Width(title) + headerAllowance
	for _, row := range m.out.Rows {
		width = max(width, lipgloss.Width(render.DisplayString(row.Cells[i].Display)))
	}
	return min(max(width, minColumnWidth), maxColumnWidth)
}

// Output returns the most recent pipeline output.
func (m GridModel) Output() *pipeline.Output {
	return m.out
}

// State returns the current view state.
func (m GridModel) State() ViewState {
	return m.state
}

// Run starts an interactive grid and blocks until the user quits.
func Run(ctx context.Context, cfg GridConfig) error {
	p := tea.NewProgram(NewGridModel(ctx, cfg), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run interactive grid: %w", err)
	}
	return nil
}
