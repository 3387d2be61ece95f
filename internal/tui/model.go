package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/gridview/internal/logging"
	"github.com/rshade/gridview/internal/record"
	"github.com/rshade/gridview/internal/render"
	"github.com/rshade/gridview/internal/tui/detail"
	listview "github.com/rshade/gridview/internal/tui/list"
	"github.com/rshade/gridview/internal/view"
)

// ViewState is the screen currently shown.
type ViewState int

const (
	// ViewStateLoading shows the spinner until the first load completes.
	ViewStateLoading ViewState = iota
	// ViewStateList shows the table.
	ViewStateList
	// ViewStateDetail shows one activated record.
	ViewStateDetail
	// ViewStateError shows a failed first load.
	ViewStateError
	// ViewStateQuitting is set while the program exits.
	ViewStateQuitting
)

// Loader fetches the full record collection. It is called on start, on
// manual reload and whenever a watched input changes.
type Loader func(ctx context.Context) ([]record.Record, error)

// TableFunc builds the table controller from the first loaded records. The
// returned table already holds records; fields supply column width caps.
type TableFunc func(records []record.Record) (*view.Table[record.Record], []record.Field, error)

// recordsLoadedMsg carries the result of a Loader call.
type recordsLoadedMsg struct {
	records []record.Record
	err     error
}

// Options configures the browser.
type Options struct {
	// Title is shown above the table.
	Title string
	// Watcher enables live reload; nil disables it.
	Watcher *Watcher
}

// Model is the Bubble Tea model of the table browser.
type Model struct {
	ctx     context.Context
	build   TableFunc
	table   *view.Table[record.Record]
	load    Loader
	watcher *Watcher
	title   string
	caps    map[string]int

	rows    *listview.Model[view.Row[record.Record]]
	search  textinput.Model
	loading *LoadingState

	state     ViewState
	searching bool
	focus     int
	widths    []int
	current   record.Record
	status    string
	statusErr bool
	err       error

	width  int
	height int
}

// NewModel creates a browser that shows a spinner until load first returns,
// then builds its table with build.
func NewModel(ctx context.Context, build TableFunc, load Loader, opts Options) *Model {
	search := textinput.New()
	search.Placeholder = view.DefaultSearchPlaceholder
	search.CharLimit = filterInputCharLimit
	search.Width = filterInputWidth

	title := opts.Title
	if title == "" {
		title = "gridview"
	}

	m := &Model{
		ctx:     ctx,
		build:   build,
		load:    load,
		watcher: opts.Watcher,
		title:   title,
		search:  search,
		loading: NewLoadingState("Loading records..."),
		state:   ViewStateLoading,
		width:   defaultWidth,
		height:  defaultHeight,
	}
	m.rows = listview.New(nil, m.rowsHeight(), m.width, m.renderRow)
	return m
}

// Init starts the spinner, the first load and the watcher.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loading.Init(), m.loadCmd()}
	if m.watcher != nil {
		cmds = append(cmds, m.watcher.Next())
	}
	return tea.Batch(cmds...)
}

// reload puts the table into its loading state and fetches the records again.
func (m *Model) reload(status string) tea.Cmd {
	m.setStatus(status, false)
	if m.table != nil {
		m.table.SetLoading(true)
		m.syncRows(false)
	}
	return tea.Batch(m.loading.Init(), m.loadCmd())
}

func (m *Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		records, err := m.load(m.ctx)
		return recordsLoadedMsg{records: records, err: err}
	}
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.rows.SetSize(m.rowsHeight(), m.width)
		if m.table != nil {
			m.syncRows(false)
		}
		return m, nil
	case recordsLoadedMsg:
		return m, m.handleLoaded(msg)
	case fileChangedMsg:
		return m, tea.Batch(m.reload("reloading "+msg.path), m.watcher.Next())
	case watchErrMsg:
		m.setStatus("watch stopped: "+msg.err.Error(), true)
		return m, nil
	case spinner.TickMsg:
		if m.state == ViewStateLoading || (m.table != nil && m.table.Loading()) {
			return m, m.loading.Update(msg)
		}
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKeyMsg(msg)
	}
	return m, nil
}

func (m *Model) handleLoaded(msg recordsLoadedMsg) tea.Cmd {
	log := logging.FromContext(m.ctx)
	if msg.err != nil {
		log.Error().Str("component", "tui").Err(msg.err).Msg("load failed")
		if m.state == ViewStateLoading {
			m.err = msg.err
			m.state = ViewStateError
			return nil
		}
		m.setStatus("reload failed: "+msg.err.Error(), true)
		if m.table != nil {
			m.table.SetLoading(false)
			m.syncRows(false)
		}
		return nil
	}

	if m.table == nil {
		table, fields, err := m.build(msg.records)
		if err != nil {
			log.Error().Str("component", "tui").Err(err).Msg("building table failed")
			m.err = err
			m.state = ViewStateError
			return nil
		}
		m.table = table
		m.caps = record.Widths(fields)
		m.search.Placeholder = table.SearchPlaceholder()
		m.search.SetValue(table.State().Query)
	} else {
		m.table.SetRecords(msg.records)
		m.table.SetLoading(false)
	}

	if m.state == ViewStateLoading {
		m.state = ViewStateList
	} else if m.status != "" && !m.statusErr {
		m.setStatus(fmt.Sprintf("reloaded %d records", len(msg.records)), false)
	}
	log.Debug().Str("component", "tui").Int("records", len(msg.records)).Msg("records loaded")
	m.syncRows(false)
	return nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	if key == keyCtrlC {
		m.state = ViewStateQuitting
		return tea.Quit
	}

	switch m.state {
	case ViewStateLoading, ViewStateError:
		if key == keyQuit || key == keyEsc {
			m.state = ViewStateQuitting
			return tea.Quit
		}
		return nil
	case ViewStateDetail:
		switch key {
		case keyEsc, keyEnter, keyQuit:
			m.state = ViewStateList
		}
		return nil
	case ViewStateQuitting:
		return nil
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}
	return m.handleListKey(msg)
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case keyEnter, keyEsc:
		m.searching = false
		m.search.Blur()
		return nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if q := m.search.Value(); q != m.table.State().Query {
		m.table.SetQuery(q)
		m.syncRows(true)
	}
	return cmd
}

func (m *Model) handleListKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	switch key {
	case keyQuit:
		m.state = ViewStateQuitting
		return tea.Quit
	case keySlash:
		m.searching = true
		return m.search.Focus()
	case keyEsc:
		if m.table.State().Query != "" {
			m.search.SetValue("")
			m.table.SetQuery("")
			m.syncRows(true)
		}
		return nil
	case keyLeft, keyH:
		m.moveFocus(-1)
		return nil
	case keyRight, keyL:
		m.moveFocus(1)
		return nil
	case keyS:
		m.sortFocused()
		return nil
	case keyNext:
		m.table.NextPage()
		m.syncRows(true)
		return nil
	case keyPrev:
		m.table.PrevPage()
		m.syncRows(true)
		return nil
	case keyPlus:
		m.resize(m.table.State().PageSize.Next())
		return nil
	case keyMinus:
		m.resize(m.table.State().PageSize.Prev())
		return nil
	case keyEnter:
		m.activate()
		return nil
	case keyReload:
		return m.reload("reloading")
	}

	if slot, err := strconv.Atoi(key); err == nil && slot >= 1 && len(key) == 1 {
		window := m.table.View().Window
		if slot <= len(window) {
			m.table.SetPage(window[slot-1])
			m.syncRows(true)
		}
		return nil
	}

	_, cmd := m.rows.Update(msg)
	return cmd
}

func (m *Model) moveFocus(delta int) {
	n := len(m.table.Schema().Visible())
	if n == 0 {
		return
	}
	m.focus = (m.focus + delta + n) % n
}

func (m *Model) sortFocused() {
	visible := m.table.Schema().Visible()
	if m.focus >= len(visible) {
		return
	}
	col := visible[m.focus]
	if err := m.table.ToggleSort(col.Key); err != nil {
		if errors.Is(err, view.ErrNotSortable) {
			m.setStatus(fmt.Sprintf("%s is not sortable", col.Header), true)
			return
		}
		m.setStatus(err.Error(), true)
		return
	}
	m.clearStatus()
	m.syncRows(true)
}

func (m *Model) resize(ps view.PageSize) {
	if err := m.table.SetPageSize(ps); err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.setStatus(fmt.Sprintf("%d rows per page", ps), false)
	m.syncRows(true)
}

func (m *Model) activate() {
	rec, err := m.table.ActivateRow(m.rows.Selected())
	if err != nil {
		return
	}
	m.current = rec
	m.state = ViewStateDetail
}

// syncRows pushes the current page into the row cursor and refits the columns.
func (m *Model) syncRows(resetCursor bool) {
	rows := m.table.Rows()
	if resetCursor {
		m.rows.SetSelected(0)
	}
	m.rows.SetItems(rows)

	visible := m.table.Schema().Visible()
	headers := m.headerLabels(visible)
	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = r.Cells
	}
	caps := make([]int, len(visible))
	for i, col := range visible {
		caps[i] = m.caps[col.Key]
	}
	m.widths = columnWidths(headers, cells, caps, m.width)
}

func (m *Model) headerLabels(visible []view.Column[record.Record]) []string {
	st := m.table.State()
	labels := make([]string, len(visible))
	for i, col := range visible {
		labels[i] = render.HeaderLabel(col.Header, col.Key, st)
	}
	return labels
}

func (m *Model) renderRow(row view.Row[record.Record], selected bool) string {
	line := joinCells(row.Cells, m.widths)
	if selected {
		return TableSelectedStyle.Render(line)
	}
	return line
}

func (m *Model) rowsHeight() int {
	h := m.height - chromeHeight
	if h < minHeight {
		return minHeight
	}
	return h
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

func (m *Model) clearStatus() {
	m.status = ""
	m.statusErr = false
}

// View renders the current screen.
func (m *Model) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateLoading:
		return RenderLoading(m.loading)
	case ViewStateError:
		return ErrorStyle.Render("Error: "+m.err.Error()) + "\n\n" + SubtleStyle.Render("[q] Quit")
	case ViewStateDetail:
		return m.renderDetail()
	default:
		return m.renderList()
	}
}

func (m *Model) renderList() string {
	d := m.table.View()
	var b strings.Builder

	b.WriteString(HeaderStyle.Render(m.title))
	b.WriteString("  ")
	b.WriteString(SubtleStyle.Render(render.Summary(d)))
	b.WriteString("\n")
	b.WriteString(m.search.View())
	b.WriteString("\n")
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if m.table.Loading() {
		b.WriteString(InfoStyle.Render(strings.TrimSpace(RenderLoading(m.loading))))
	} else if msg := m.table.EmptyMessage(); msg != "" {
		b.WriteString(InfoStyle.Render(msg))
	} else {
		b.WriteString(m.rows.View())
	}
	b.WriteString("\n")

	if pager := render.PagerLine(d); pager != "" {
		b.WriteString(pager)
		b.WriteString("\n")
	}
	if m.status != "" {
		if m.statusErr {
			b.WriteString(ErrorStyle.Render(m.status))
		} else {
			b.WriteString(LabelStyle.Render(m.status))
		}
		b.WriteString("\n")
	}
	b.WriteString(SubtleStyle.Render(helpListText))
	return b.String()
}

func (m *Model) renderHeader() string {
	visible := m.table.Schema().Visible()
	headers := m.headerLabels(visible)
	parts := make([]string, len(headers))
	for i, h := range headers {
		w := 0
		if i < len(m.widths) {
			w = m.widths[i]
		}
		cell := fitCell(h, w)
		if i == m.focus {
			cell = FocusedHeaderStyle.Render(cell)
		}
		parts[i] = cell
	}
	return TableHeaderStyle.Render(strings.Join(parts, strings.Repeat(" ", cellGap)))
}

func (m *Model) renderDetail() string {
	schema := m.table.Schema()
	fields := make([]detail.Field, 0, len(m.current.Order))
	for _, key := range m.current.Order {
		label := record.Humanize(key)
		value := m.current.Get(key).String()
		if col, ok := schema.Column(key); ok {
			label = col.Header
			value = schema.RenderCell(key, m.current)
		}
		fields = append(fields, detail.Field{Label: label, Value: value})
	}
	return detail.Render(m.current.Key, fields, m.width)
}

// CurrentState returns the screen being shown.
func (m *Model) CurrentState() ViewState {
	return m.state
}

// Searching reports whether the search box has focus.
func (m *Model) Searching() bool {
	return m.searching
}

// Status returns the status line text.
func (m *Model) Status() string {
	return m.status
}

// Run starts the browser full-screen and blocks until the user quits.
func Run(ctx context.Context, m *Model) error {
	return runProgram(ctx, m, tea.WithAltScreen())
}

// runProgram runs m until it quits and always releases the watcher.
func runProgram(ctx context.Context, m *Model, opts ...tea.ProgramOption) (err error) {
	if m.watcher != nil {
		defer func() {
			if closeErr := m.watcher.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("closing watcher: %w", closeErr)
			}
		}()
	}
	p := tea.NewProgram(m, append(opts, tea.WithContext(ctx))...)
	if _, err = p.Run(); err != nil {
		return fmt.Errorf("running browser: %w", err)
	}
	return nil
}
