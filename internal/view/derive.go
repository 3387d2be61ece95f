package view

import "golang.org/x/text/language"

// EmptyKind tells an empty page apart from a populated one.
type EmptyKind int

const (
	// EmptyNone means the page has items (or the view is loading).
	EmptyNone EmptyKind = iota
	// EmptyNoData means the input collection itself is empty.
	EmptyNoData
	// EmptyNoMatch means records exist but none match the query.
	EmptyNoMatch
)

// EmptyState describes why a derived page has no items.
type EmptyState struct {
	Kind EmptyKind

	// Query echoes the active query when Kind is EmptyNoMatch.
	Query string
}

// Options tune a derivation.
type Options struct {
	// Delegated hands filtering to an external collaborator.
	Delegated bool

	// Loading skips recomputation entirely.
	Loading bool

	// MaxVisible bounds the page window; 0 means DefaultMaxVisible.
	MaxVisible int

	// Locale selects text collation; the zero tag means DefaultLocale.
	Locale language.Tag
}

// Derived is the full recomputation of a view for one State and record collection.
type Derived[T any] struct {
	// State is the input state with Page clamped to [1, max(1, TotalPages)].
	State State

	Filtered   []T
	Sorted     []T
	PageItems  []T
	TotalPages int
	Window     []int

	HasPrevious bool
	HasNext     bool
	Loading     bool
	Empty       EmptyState
}

// ShowPager reports whether page controls should be offered at all.
func (d Derived[T]) ShowPager() bool {
	return !d.Loading && d.TotalPages > 1
}

// Derive runs Filter, Sort, Paginate and PageWindow for state over records.
//
// The page is clamped to the available pages on every derivation, so a
// collection that shrinks under the current page lands on its last page
// instead of an empty one. A page size outside the enumerated set is
// replaced by DefaultPageSize. The clamped state is returned in Derived.State.
func Derive[T any](state State, records []T, schema *Schema[T], opts Options) Derived[T] {
	if !state.PageSize.Valid() {
		state.PageSize = DefaultPageSize
	}
	if opts.Loading {
		return Derived[T]{State: state, Loading: true}
	}

	tag := opts.Locale
	if tag == language.Und {
		tag = DefaultLocale
	}

	pageSize := int(state.PageSize)

	filtered := Filter(records, schema, state.Query, opts.Delegated)
	sorted := Sort(filtered, schema, state.SortKey, state.SortDirection, tag)
	total := TotalPages(len(sorted), pageSize)

	state = state.ClampPage(total)
	items, _ := Paginate(sorted, state.Page, pageSize)

	d := Derived[T]{
		State:       state,
		Filtered:    filtered,
		Sorted:      sorted,
		PageItems:   items,
		TotalPages:  total,
		Window:      PageWindow(state.Page, total, opts.MaxVisible),
		HasPrevious: state.Page > 1,
		HasNext:     state.Page < total,
	}

	if len(items) == 0 {
		switch {
		case len(records) == 0:
			d.Empty = EmptyState{Kind: EmptyNoData}
		default:
			d.Empty = EmptyState{Kind: EmptyNoMatch, Query: state.Query}
		}
	}
	return d
}
