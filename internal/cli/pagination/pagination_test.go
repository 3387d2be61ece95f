package pagination

import (
	"fmt"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/gridview/internal/view"
)

type item struct {
	Name  string
	Price float64
	Note  string
}

func itemSchema() *view.Schema[item] {
	return view.MustSchema(
		view.Column[item]{Key: "name", Sortable: true, Value: func(i item) view.Value { return view.Text(i.Name) }},
		view.Column[item]{Key: "price", Sortable: true, Value: func(i item) view.Value { return view.Number(i.Price) }},
		view.Column[item]{Key: "note", Value: func(i item) view.Value { return view.Text(i.Note) }},
	)
}

func makeItems(n int) []item {
	items := make([]item, n)
	for i := range items {
		items[i] = item{Name: fmt.Sprintf("item %02d", i+1), Price: float64(i + 1)}
	}
	return items
}

func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr error
	}{
		{name: "valid default", params: *NewParams()},
		{name: "valid sorted", params: Params{Page: 3, PageSize: 25, SortField: "name", SortOrder: "desc"}},
		{name: "zero page", params: Params{Page: 0, PageSize: 10}, wantErr: ErrInvalidPage},
		{name: "negative page", params: Params{Page: -1, PageSize: 10}, wantErr: ErrInvalidPage},
		{name: "page size outside set", params: Params{Page: 1, PageSize: 20}, wantErr: view.ErrInvalidPageSize},
		{name: "zero page size", params: Params{Page: 1, PageSize: 0}, wantErr: view.ErrInvalidPageSize},
		{
			name:    "bad order",
			params:  Params{Page: 1, PageSize: 10, SortField: "name", SortOrder: "up"},
			wantErr: ErrInvalidSortOrder,
		},
		{name: "order ignored without field", params: Params{Page: 1, PageSize: 10, SortOrder: "up"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantField string
		wantOrder string
		wantErr   error
	}{
		{name: "empty", input: "", wantField: "", wantOrder: "asc"},
		{name: "blank", input: "  ", wantField: "", wantOrder: "asc"},
		{name: "field only", input: "amount", wantField: "amount", wantOrder: "asc"},
		{name: "desc", input: "amount:desc", wantField: "amount", wantOrder: "desc"},
		{name: "upper order", input: "name:ASC", wantField: "name", wantOrder: "asc"},
		{name: "spaces", input: " name : desc ", wantField: "name", wantOrder: "desc"},
		{name: "too many colons", input: "a:b:c", wantErr: ErrInvalidSortFormat},
		{name: "empty field", input: ":desc", wantErr: ErrEmptySortField},
		{name: "bad order", input: "name:sideways", wantErr: ErrInvalidSortOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, order, err := ParseSort(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantField, field)
			assert.Equal(t, tt.wantOrder, order)
		})
	}
}

func TestParams_SetSort(t *testing.T) {
	p := NewParams()
	require.NoError(t, p.SetSort("price:desc"))
	assert.Equal(t, "price", p.SortField)
	assert.Equal(t, SortOrderDesc, p.SortOrder)

	require.Error(t, p.SetSort("price:down"))
	assert.Equal(t, "price", p.SortField, "failed parse keeps previous sort")
}

func TestValidateSortField(t *testing.T) {
	schema := itemSchema()
	assert.NoError(t, ValidateSortField(schema, ""))
	assert.NoError(t, ValidateSortField(schema, "price"))

	err := ValidateSortField(schema, "note")
	require.ErrorIs(t, err, ErrInvalidSortField)
	assert.Contains(t, err.Error(), "valid: name, price")
}

func TestRegisterFlags(t *testing.T) {
	fs := pflag.NewFlagSet("show", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--page", "2", "--page-size", "25", "--sort", "name:desc", "-q", "ann"}))

	page, _ := fs.GetInt(FlagPage)
	size, _ := fs.GetInt(FlagPageSize)
	sortExpr, _ := fs.GetString(FlagSort)
	query, _ := fs.GetString(FlagQuery)
	assert.Equal(t, 2, page)
	assert.Equal(t, 25, size)
	assert.Equal(t, "name:desc", sortExpr)
	assert.Equal(t, "ann", query)
}

func TestApply(t *testing.T) {
	tests := []struct {
		name      string
		params    Params
		wantPage  int
		wantFirst string
		wantDir   view.Direction
		wantErr   error
	}{
		{
			name:      "defaults",
			params:    *NewParams(),
			wantPage:  1,
			wantFirst: "item 01",
		},
		{
			name:      "page two sorted desc",
			params:    Params{Page: 2, PageSize: 5, SortField: "price", SortOrder: "desc"},
			wantPage:  2,
			wantFirst: "item 17",
			wantDir:   view.Descending,
		},
		{
			name:      "page beyond end clamps",
			params:    Params{Page: 99, PageSize: 10, SortField: "name", SortOrder: "asc"},
			wantPage:  3,
			wantFirst: "item 21",
		},
		{
			name:      "query narrows before paging",
			params:    Params{Page: 1, PageSize: 5, Query: "item 1"},
			wantPage:  1,
			wantFirst: "item 10",
		},
		{
			name:    "unsortable column",
			params:  Params{Page: 1, PageSize: 10, SortField: "note", SortOrder: "asc"},
			wantErr: ErrInvalidSortField,
		},
		{
			name:    "invalid page size",
			params:  Params{Page: 1, PageSize: 7},
			wantErr: view.ErrInvalidPageSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := view.NewTable(itemSchema())
			table.SetRecords(makeItems(22))

			err := Apply(tt.params, table)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			d := table.View()
			assert.Equal(t, tt.wantPage, d.State.Page)
			require.NotEmpty(t, d.PageItems)
			assert.Equal(t, tt.wantFirst, d.PageItems[0].Name)
			assert.Equal(t, tt.wantDir, d.State.SortDirection)
		})
	}
}
