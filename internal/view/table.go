package view

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"
)

// ErrRowOutOfRange is returned when activating a row that is not on the current page.
var ErrRowOutOfRange = errors.New("row index out of range")

// Default placeholder texts.
const (
	DefaultSearchPlaceholder = "Search..."
	DefaultEmptyPlaceholder  = "No data"
)

// KeyFunc returns a unique, stable key for a record.
type KeyFunc[T any] func(record T) string

// Row is one rendered record of the current page.
type Row[T any] struct {
	Key    string
	Cells  []string
	Record T
}

// Option configures a Table.
type Option[T any] func(*Table[T])

// WithKeyFunc sets the record key extractor used for row identity.
func WithKeyFunc[T any](fn KeyFunc[T]) Option[T] {
	return func(t *Table[T]) { t.keyFn = fn }
}

// WithRowActivate registers the callback invoked by ActivateRow.
func WithRowActivate[T any](fn func(T)) Option[T] {
	return func(t *Table[T]) { t.onActivate = fn }
}

// WithExternalSearch delegates filtering: every query change is forwarded to fn
// and the local filter becomes a no-op.
func WithExternalSearch[T any](fn func(query string)) Option[T] {
	return func(t *Table[T]) { t.onSearch = fn }
}

// WithLocale sets the collation locale for text sorting.
func WithLocale[T any](tag language.Tag) Option[T] {
	return func(t *Table[T]) { t.locale = tag }
}

// WithMaxVisible sets the page window size.
func WithMaxVisible[T any](n int) Option[T] {
	return func(t *Table[T]) { t.maxVisible = n }
}

// WithLogger sets the logger used for transition tracing.
func WithLogger[T any](logger zerolog.Logger) Option[T] {
	return func(t *Table[T]) { t.logger = logger }
}

// WithPlaceholders overrides the search and empty-state texts. Empty strings keep the defaults.
func WithPlaceholders[T any](search, empty string) Option[T] {
	return func(t *Table[T]) {
		if search != "" {
			t.searchPlaceholder = search
		}
		if empty != "" {
			t.emptyPlaceholder = empty
		}
	}
}

// WithInitialState starts the view from s instead of NewState. A page size
// outside the enumerated set falls back to DefaultPageSize.
func WithInitialState[T any](s State) Option[T] {
	return func(t *Table[T]) {
		if !s.PageSize.Valid() {
			s.PageSize = DefaultPageSize
		}
		t.state = s
	}
}

// Table is the controller of one view. It owns the State, holds the caller's
// current records and recomputes the derived view synchronously after every
// transition. A Table is not safe for concurrent use.
type Table[T any] struct {
	schema  *Schema[T]
	records []T
	state   State
	loading bool
	derived Derived[T]

	keyFn      KeyFunc[T]
	onActivate func(T)
	onSearch   func(string)

	locale            language.Tag
	maxVisible        int
	searchPlaceholder string
	emptyPlaceholder  string

	logger zerolog.Logger
}

// NewTable creates a controller over schema with default state and no records.
func NewTable[T any](schema *Schema[T], opts ...Option[T]) *Table[T] {
	t := &Table[T]{
		schema:            schema,
		state:             NewState(),
		locale:            DefaultLocale,
		maxVisible:        DefaultMaxVisible,
		searchPlaceholder: DefaultSearchPlaceholder,
		emptyPlaceholder:  DefaultEmptyPlaceholder,
		logger:            zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.keyFn == nil {
		t.keyFn = func(T) string { return "" }
	}
	t.recompute()
	return t
}

// Schema returns the table's column schema.
func (t *Table[T]) Schema() *Schema[T] { return t.schema }

// State returns the current (clamped) view state.
func (t *Table[T]) State() State { return t.state }

// View returns the most recent derivation.
func (t *Table[T]) View() Derived[T] { return t.derived }

// Loading reports whether the table is showing the loading placeholder.
func (t *Table[T]) Loading() bool { return t.loading }

// Delegated reports whether filtering is handled by an external collaborator.
func (t *Table[T]) Delegated() bool { return t.onSearch != nil }

// SearchPlaceholder returns the text shown in an empty search input.
func (t *Table[T]) SearchPlaceholder() string { return t.searchPlaceholder }

// EmptyMessage returns the text for the current empty state, or "" when the page has items.
func (t *Table[T]) EmptyMessage() string {
	switch t.derived.Empty.Kind {
	case EmptyNoMatch:
		if t.derived.Empty.Query != "" {
			return fmt.Sprintf("%s\nNo results for %q", t.emptyPlaceholder, t.derived.Empty.Query)
		}
		return t.emptyPlaceholder
	case EmptyNoData:
		return t.emptyPlaceholder
	default:
		return ""
	}
}

// SetRecords replaces the collection owned by the caller and recomputes.
func (t *Table[T]) SetRecords(records []T) {
	t.records = records
	t.logger.Debug().Int("records", len(records)).Msg("records replaced")
	t.recompute()
}

// SetLoading toggles the loading placeholder. While loading nothing is derived.
func (t *Table[T]) SetLoading(loading bool) {
	t.loading = loading
	t.recompute()
}

// SetQuery applies a new query and resets to page 1. With external search
// configured, the query is forwarded and the records are shown unfiltered.
func (t *Table[T]) SetQuery(q string) {
	t.dispatch(SetQuery{Query: q})
	if t.onSearch != nil {
		t.onSearch(q)
	}
}

// ToggleSort sorts by key, flipping the direction if key is already active.
func (t *Table[T]) ToggleSort(key string) error {
	if err := t.schema.CheckSortable(key); err != nil {
		return err
	}
	t.dispatch(ToggleSort{Key: key})
	return nil
}

// SetPageSize changes the page size and resets to page 1.
func (t *Table[T]) SetPageSize(ps PageSize) error {
	if !ps.Valid() {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, ps)
	}
	t.dispatch(SetPageSize{Size: ps})
	return nil
}

// SetPage jumps to page n.
func (t *Table[T]) SetPage(n int) {
	t.dispatch(SetPage{Page: n})
}

// NextPage advances one page; a no-op on the last page.
func (t *Table[T]) NextPage() {
	t.dispatch(NextPage{TotalPages: t.derived.TotalPages})
}

// PrevPage goes back one page; a no-op on the first page.
func (t *Table[T]) PrevPage() {
	t.dispatch(PrevPage{})
}

// Rows renders the current page.
func (t *Table[T]) Rows() []Row[T] {
	rows := make([]Row[T], len(t.derived.PageItems))
	for i, record := range t.derived.PageItems {
		rows[i] = Row[T]{
			Key:    t.keyFn(record),
			Cells:  t.schema.RenderRow(record),
			Record: record,
		}
	}
	return rows
}

// ActivateRow invokes the row activation callback for the i-th record of the
// current page and returns that record.
func (t *Table[T]) ActivateRow(i int) (T, error) {
	var zero T
	if i < 0 || i >= len(t.derived.PageItems) {
		return zero, fmt.Errorf("%w: %d (page has %d rows)", ErrRowOutOfRange, i, len(t.derived.PageItems))
	}
	record := t.derived.PageItems[i]
	if t.onActivate != nil {
		t.onActivate(record)
	}
	return record, nil
}

func (t *Table[T]) dispatch(a Action) {
	t.state = Reduce(t.state, a)
	t.recompute()
	t.logger.Debug().
		Str("action", fmt.Sprintf("%T", a)).
		Str("query", t.state.Query).
		Str("sort_key", t.state.SortKey).
		Stringer("sort_direction", t.state.SortDirection).
		Int("page", t.state.Page).
		Int("page_size", int(t.state.PageSize)).
		Int("total_pages", t.derived.TotalPages).
		Msg("view state changed")
}

func (t *Table[T]) recompute() {
	t.derived = Derive(t.state, t.records, t.schema, Options{
		Delegated:  t.onSearch != nil,
		Loading:    t.loading,
		MaxVisible: t.maxVisible,
		Locale:     t.locale,
	})
	if !t.loading {
		t.state = t.derived.State
	}
}
