package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/gridview/internal/record"
	"github.com/rshade/gridview/internal/view"
)

func testRecords(n int) []record.Record {
	records := make([]record.Record, n)
	for i := range records {
		records[i] = record.New(map[string]any{
			"id":     fmt.Sprintf("r%02d", i+1),
			"name":   fmt.Sprintf("item %02d", i+1),
			"amount": (i + 1) * 10,
			"tags":   map[string]any{"n": i},
		}, []string{"id", "name", "amount", "tags"}, "id")
	}
	return records
}

func buildTable(opts ...view.Option[record.Record]) TableFunc {
	return func(records []record.Record) (*view.Table[record.Record], []record.Field, error) {
		schema, fields, err := record.InferSchema(records, nil)
		if err != nil {
			return nil, nil, err
		}
		table := view.NewTable(schema, append([]view.Option[record.Record]{view.WithKeyFunc(record.KeyOf)}, opts...)...)
		table.SetRecords(records)
		return table, fields, nil
	}
}

func newTestModel(t *testing.T, records []record.Record) *Model {
	t.Helper()
	load := func(context.Context) ([]record.Record, error) { return records, nil }
	return NewModel(context.Background(), buildTable(), load, Options{Title: "deals"})
}

func loaded(t *testing.T, records []record.Record) *Model {
	t.Helper()
	m := newTestModel(t, records)
	m.Update(recordsLoadedMsg{records: records})
	require.Equal(t, ViewStateList, m.CurrentState())
	return m
}

func press(m *Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case keyEnter:
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case keyEsc:
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case keyCtrlC:
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		_, cmd = m.Update(msg)
	}
	return cmd
}

func TestModel_LoadingThenList(t *testing.T) {
	records := testRecords(23)
	m := newTestModel(t, records)

	assert.Equal(t, ViewStateLoading, m.CurrentState())
	assert.Nil(t, m.table)
	assert.Contains(t, m.View(), "Loading records...")
	assert.NotNil(t, m.Init())

	m.Update(recordsLoadedMsg{records: records})
	assert.Equal(t, ViewStateList, m.CurrentState())
	require.NotNil(t, m.table)
	assert.Equal(t, 10, m.rows.ItemCount())

	out := m.View()
	assert.Contains(t, out, "deals")
	assert.Contains(t, out, "page 1/3, 23 records")
	assert.Contains(t, out, "item 01")
	assert.Contains(t, out, "[1]")
}

func TestModel_LoadError(t *testing.T) {
	m := newTestModel(t, nil)
	m.Update(recordsLoadedMsg{err: errors.New("boom")})

	assert.Equal(t, ViewStateError, m.CurrentState())
	assert.Contains(t, m.View(), "boom")
	assert.NotNil(t, press(m, keyQuit))
	assert.Equal(t, ViewStateQuitting, m.CurrentState())
	assert.Empty(t, m.View())
}

func TestModel_BuildError(t *testing.T) {
	failing := func([]record.Record) (*view.Table[record.Record], []record.Field, error) {
		return nil, nil, errors.New("bad columns")
	}
	m := NewModel(context.Background(), failing, nil, Options{})
	m.Update(recordsLoadedMsg{records: testRecords(1)})

	assert.Equal(t, ViewStateError, m.CurrentState())
	assert.Contains(t, m.View(), "bad columns")
}

func TestModel_ReloadErrorKeepsRows(t *testing.T) {
	m := loaded(t, testRecords(5))
	m.Update(recordsLoadedMsg{err: errors.New("disk gone")})

	assert.Equal(t, ViewStateList, m.CurrentState())
	assert.Contains(t, m.Status(), "reload failed")
	assert.Equal(t, 5, m.rows.ItemCount())
}

func TestModel_ReloadShowsLoading(t *testing.T) {
	m := loaded(t, testRecords(5))

	assert.NotNil(t, press(m, keyReload))
	assert.True(t, m.table.Loading())
	assert.Equal(t, 0, m.rows.ItemCount())
	assert.Contains(t, m.View(), "Loading records...")

	m.Update(recordsLoadedMsg{records: testRecords(7)})
	assert.False(t, m.table.Loading())
	assert.Equal(t, 7, m.rows.ItemCount())
	assert.NotContains(t, m.View(), "Loading records...")
}

func TestModel_ReloadFailureLeavesLoading(t *testing.T) {
	m := loaded(t, testRecords(5))

	press(m, keyReload)
	m.Update(recordsLoadedMsg{err: errors.New("disk gone")})

	assert.False(t, m.table.Loading())
	assert.Equal(t, 5, m.rows.ItemCount())
}

func TestModel_Paging(t *testing.T) {
	m := loaded(t, testRecords(23))

	press(m, keyNext)
	assert.Equal(t, 2, m.table.State().Page)
	assert.Equal(t, "r11", m.table.Rows()[0].Key)

	press(m, keyPrev, keyPrev)
	assert.Equal(t, 1, m.table.State().Page)

	press(m, "3")
	assert.Equal(t, 3, m.table.State().Page)
	assert.Equal(t, 3, m.rows.ItemCount())

	press(m, "5")
	assert.Equal(t, 3, m.table.State().Page, "slots beyond the window are ignored")

	press(m, keyNext)
	assert.Equal(t, 3, m.table.State().Page)
}

func TestModel_PageSize(t *testing.T) {
	m := loaded(t, testRecords(23))
	press(m, keyNext)

	press(m, keyPlus)
	assert.Equal(t, view.PageSize25, m.table.State().PageSize)
	assert.Equal(t, 1, m.table.State().Page)
	assert.Contains(t, m.View(), "page 1/1, 23 records")

	press(m, keyMinus, keyMinus)
	assert.Equal(t, view.PageSize5, m.table.State().PageSize)
	assert.Equal(t, 5, m.rows.ItemCount())
}

func TestModel_Search(t *testing.T) {
	m := loaded(t, testRecords(23))
	press(m, keyNext)

	press(m, keySlash)
	require.True(t, m.Searching())

	press(m, "item 2")
	assert.Equal(t, "item 2", m.table.State().Query)
	assert.Equal(t, 1, m.table.State().Page)
	assert.Equal(t, 4, m.rows.ItemCount())

	press(m, keyQuit)
	assert.Equal(t, ViewStateList, m.CurrentState(), "q is text while searching")
	assert.Equal(t, "item 2q", m.table.State().Query)
	assert.Contains(t, m.View(), "No results for \"item 2q\"")

	press(m, keyEsc)
	assert.False(t, m.Searching())
	assert.Equal(t, "item 2q", m.table.State().Query)

	press(m, keyEsc)
	assert.Empty(t, m.table.State().Query)
	assert.Equal(t, 10, m.rows.ItemCount())
}

func TestModel_SortFocusedColumn(t *testing.T) {
	m := loaded(t, testRecords(23))

	press(m, keyL, keyL, keyS)
	assert.Equal(t, "amount", m.table.State().SortKey)
	assert.Equal(t, view.Ascending, m.table.State().SortDirection)

	press(m, keyS)
	assert.Equal(t, view.Descending, m.table.State().SortDirection)
	assert.Equal(t, "230", m.table.Rows()[0].Cells[2])
	assert.Contains(t, m.View(), "Amount ▼")

	press(m, keyL, keyS)
	assert.Contains(t, m.Status(), "Tags is not sortable")
	assert.Equal(t, "amount", m.table.State().SortKey)

	press(m, keyL)
	assert.Equal(t, 0, m.focus, "focus wraps around")
	press(m, keyH)
	assert.Equal(t, 3, m.focus)
}

func TestModel_Detail(t *testing.T) {
	m := loaded(t, testRecords(23))

	press(m, "down", "down", keyEnter)
	require.Equal(t, ViewStateDetail, m.CurrentState())
	out := m.View()
	assert.Contains(t, out, "r03")
	assert.Contains(t, out, "item 03")
	assert.Contains(t, out, "Amount")
	assert.Equal(t, 1, strings.Count(out, "[Esc]"), "key hint shown once")

	press(m, keyEsc)
	assert.Equal(t, ViewStateList, m.CurrentState())
}

func TestModel_ActivateCallback(t *testing.T) {
	records := testRecords(3)

	var activated []string
	build := buildTable(view.WithRowActivate(func(r record.Record) { activated = append(activated, r.Key) }))
	m := NewModel(context.Background(), build, nil, Options{})
	m.Update(recordsLoadedMsg{records: records})

	press(m, "down", keyEnter)
	assert.Equal(t, []string{"r02"}, activated)
}

func TestModel_WindowResize(t *testing.T) {
	m := loaded(t, testRecords(23))
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 12})

	assert.Equal(t, 12-chromeHeight, m.rows.Height())
	assert.LessOrEqual(t, sum(m.widths)+cellGap*(len(m.widths)-1), 40)
}

func TestModel_FileChangedReloads(t *testing.T) {
	records := testRecords(2)
	m := loaded(t, records)
	m.watcher = &Watcher{}

	_, cmd := m.Update(fileChangedMsg{path: "/tmp/deals.json"})
	assert.NotNil(t, cmd)
	assert.Contains(t, m.Status(), "reloading /tmp/deals.json")

	m.Update(recordsLoadedMsg{records: testRecords(4)})
	assert.Equal(t, "reloaded 4 records", m.Status())
	assert.Equal(t, 4, m.rows.ItemCount())
}

func TestModel_Quit(t *testing.T) {
	m := loaded(t, testRecords(1))
	assert.NotNil(t, press(m, keyCtrlC))
	assert.Equal(t, ViewStateQuitting, m.CurrentState())
}
