package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClientTable(records []client, opts ...Option[client]) *Table[client] {
	opts = append([]Option[client]{WithKeyFunc(func(c client) string { return c.ID })}, opts...)
	tbl := NewTable(clientSchema(), opts...)
	tbl.SetRecords(records)
	return tbl
}

func TestTable_EndToEnd(t *testing.T) {
	records := makeClients(30)
	records[29].Amount = 75

	tbl := newClientTable(records)

	v := tbl.View()
	assert.Equal(t, 3, v.TotalPages)
	assert.Equal(t, []int{1, 2, 3}, v.Window)
	assert.Equal(t, names(records[:10]), names(v.PageItems), "unsorted page 1 keeps input order")
	assert.True(t, v.ShowPager())

	require.NoError(t, tbl.ToggleSort("name"))
	assert.Equal(t, []string{
		"Client 1", "Client 10", "Client 11", "Client 12", "Client 13",
		"Client 14", "Client 15", "Client 16", "Client 17", "Client 18",
	}, names(tbl.View().PageItems))

	tbl.SetPage(3)
	require.Equal(t, 3, tbl.State().Page)

	tbl.SetQuery("7")
	v = tbl.View()
	assert.Len(t, v.Filtered, 4)
	assert.Equal(t, 1, v.TotalPages)
	assert.Equal(t, 1, tbl.State().Page)
	assert.Equal(t, []string{"Client 17", "Client 27", "Client 30", "Client 7"}, names(v.PageItems))
	assert.False(t, v.ShowPager())
}

func TestTable_ToggleSortErrors(t *testing.T) {
	tbl := newClientTable(makeClients(3))
	assert.ErrorIs(t, tbl.ToggleSort("email"), ErrNotSortable)
	assert.ErrorIs(t, tbl.ToggleSort("nope"), ErrUnknownColumn)
	assert.False(t, tbl.State().Sorted())
}

func TestTable_SortDescendingKeepsPage(t *testing.T) {
	tbl := newClientTable(makeClients(30))
	tbl.SetPage(2)

	require.NoError(t, tbl.ToggleSort("amount"))
	require.NoError(t, tbl.ToggleSort("amount"))

	assert.Equal(t, 2, tbl.State().Page)
	assert.Equal(t, Descending, tbl.State().SortDirection)
	assert.Equal(t, "Client 20", tbl.View().PageItems[0].Name)
}

func TestTable_PageSizeResetsPage(t *testing.T) {
	tbl := newClientTable(makeClients(60))
	tbl.SetPage(4)

	require.NoError(t, tbl.SetPageSize(PageSize25))
	assert.Equal(t, 1, tbl.State().Page)
	assert.Equal(t, 3, tbl.View().TotalPages)

	assert.ErrorIs(t, tbl.SetPageSize(PageSize(30)), ErrInvalidPageSize)
	assert.Equal(t, PageSize25, tbl.State().PageSize)
}

func TestTable_PrevNextDisabledAtEdges(t *testing.T) {
	tbl := newClientTable(makeClients(25))

	tbl.PrevPage()
	assert.Equal(t, 1, tbl.State().Page)
	assert.False(t, tbl.View().HasPrevious)

	tbl.NextPage()
	tbl.NextPage()
	tbl.NextPage()
	assert.Equal(t, 3, tbl.State().Page)
	assert.False(t, tbl.View().HasNext)
	assert.Len(t, tbl.View().PageItems, 5)
}

func TestTable_ClampsPageWhenRecordsShrink(t *testing.T) {
	records := makeClients(21)
	tbl := newClientTable(records)
	tbl.SetPage(3)
	require.Len(t, tbl.View().PageItems, 1)

	tbl.SetRecords(records[:20])

	assert.Equal(t, 2, tbl.State().Page)
	assert.Len(t, tbl.View().PageItems, 10)
	assert.Equal(t, []int{1, 2}, tbl.View().Window)
}

func TestTable_EmptyStates(t *testing.T) {
	tbl := newClientTable(nil)
	assert.Equal(t, EmptyNoData, tbl.View().Empty.Kind)
	assert.Equal(t, DefaultEmptyPlaceholder, tbl.EmptyMessage())

	tbl.SetRecords(makeClients(5))
	assert.Equal(t, EmptyNone, tbl.View().Empty.Kind)
	assert.Equal(t, "", tbl.EmptyMessage())

	tbl.SetQuery("zzz")
	assert.Equal(t, EmptyState{Kind: EmptyNoMatch, Query: "zzz"}, tbl.View().Empty)
	assert.Contains(t, tbl.EmptyMessage(), `No results for "zzz"`)
}

func TestTable_Placeholders(t *testing.T) {
	tbl := newClientTable(nil, WithPlaceholders[client]("Find clients...", "Nothing here"))
	assert.Equal(t, "Find clients...", tbl.SearchPlaceholder())
	assert.Equal(t, "Nothing here", tbl.EmptyMessage())
}

func TestTable_ExternalSearch(t *testing.T) {
	var forwarded []string
	tbl := newClientTable(makeClients(12), WithExternalSearch[client](func(q string) {
		forwarded = append(forwarded, q)
	}))
	tbl.SetPage(2)

	tbl.SetQuery("Client 3")

	assert.True(t, tbl.Delegated())
	assert.Equal(t, []string{"Client 3"}, forwarded)
	assert.Len(t, tbl.View().Filtered, 12, "local filtering is skipped")
	assert.Equal(t, 1, tbl.State().Page)
}

func TestTable_InitialStateInvalidPageSizeFallsBack(t *testing.T) {
	initial := NewState()
	initial.PageSize = 7
	tbl := NewTable(clientSchema(), WithInitialState[client](initial))
	tbl.SetRecords(makeClients(30))

	assert.Equal(t, DefaultPageSize, tbl.State().PageSize)
	assert.Len(t, tbl.View().PageItems, int(DefaultPageSize))
	assert.Equal(t, 3, tbl.View().TotalPages)
}

func TestDerive_InvalidPageSizeIsReplaced(t *testing.T) {
	state := NewState()
	state.PageSize = 7

	d := Derive(state, makeClients(30), clientSchema(), Options{MaxVisible: DefaultMaxVisible})
	assert.Equal(t, DefaultPageSize, d.State.PageSize)
	assert.Len(t, d.PageItems, int(DefaultPageSize))
}

func TestTable_Loading(t *testing.T) {
	tbl := newClientTable(makeClients(12))
	tbl.SetPage(2)

	tbl.SetLoading(true)
	v := tbl.View()
	assert.True(t, v.Loading)
	assert.Nil(t, v.PageItems)
	assert.False(t, v.ShowPager())

	tbl.SetLoading(false)
	assert.Equal(t, 2, tbl.State().Page)
	assert.Len(t, tbl.View().PageItems, 2)
}

func TestTable_RowsAndActivation(t *testing.T) {
	var activated []string
	tbl := newClientTable(makeClients(3), WithRowActivate(func(c client) {
		activated = append(activated, c.ID)
	}))

	rows := tbl.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, "c-2", rows[1].Key)
	assert.Equal(t, []string{"Client 2", "client2@example.com", "20", "", ""}, rows[1].Cells)

	rec, err := tbl.ActivateRow(2)
	require.NoError(t, err)
	assert.Equal(t, "c-3", rec.ID)
	assert.Equal(t, []string{"c-3"}, activated)

	_, err = tbl.ActivateRow(3)
	assert.ErrorIs(t, err, ErrRowOutOfRange)
}

func TestTable_InitialStateIsClamped(t *testing.T) {
	initial := NewState().WithPage(9)
	tbl := NewTable(clientSchema(), WithInitialState[client](initial))
	assert.Equal(t, 1, tbl.State().Page)
}
