package view

import (
	"errors"
	"fmt"
	"strings"
)

// Direction is the sort direction.
type Direction int

const (
	// Ascending sorts smallest first.
	Ascending Direction = iota
	// Descending sorts largest first.
	Descending
)

// ErrInvalidDirection is returned by ParseDirection.
var ErrInvalidDirection = errors.New("sort direction must be 'asc' or 'desc'")

// String returns "asc" or "desc".
func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// Toggle returns the opposite direction.
func (d Direction) Toggle() Direction {
	if d == Descending {
		return Ascending
	}
	return Descending
}

// ParseDirection parses "asc" or "desc" (case-insensitive). Empty means ascending.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc":
		return Ascending, nil
	case "desc":
		return Descending, nil
	default:
		return Ascending, fmt.Errorf("%w: got %q", ErrInvalidDirection, s)
	}
}

// PageSize is one of the enumerated page sizes.
type PageSize int

// Allowed page sizes.
const (
	PageSize5   PageSize = 5
	PageSize10  PageSize = 10
	PageSize25  PageSize = 25
	PageSize50  PageSize = 50
	PageSize100 PageSize = 100

	DefaultPageSize = PageSize10
)

// ErrInvalidPageSize is returned for sizes outside the enumerated set.
var ErrInvalidPageSize = errors.New("page size must be one of 5, 10, 25, 50, 100")

// PageSizes returns the enumerated page sizes in ascending order.
func PageSizes() []PageSize {
	return []PageSize{PageSize5, PageSize10, PageSize25, PageSize50, PageSize100}
}

// ParsePageSize validates n against the enumerated set.
func ParsePageSize(n int) (PageSize, error) {
	ps := PageSize(n)
	if !ps.Valid() {
		return DefaultPageSize, fmt.Errorf("%w: got %d", ErrInvalidPageSize, n)
	}
	return ps, nil
}

// Valid reports whether ps is in the enumerated set.
func (ps PageSize) Valid() bool {
	switch ps {
	case PageSize5, PageSize10, PageSize25, PageSize50, PageSize100:
		return true
	default:
		return false
	}
}

// Next returns the next larger size, wrapping to the smallest.
func (ps PageSize) Next() PageSize {
	sizes := PageSizes()
	for i, s := range sizes {
		if s == ps {
			return sizes[(i+1)%len(sizes)]
		}
	}
	return DefaultPageSize
}

// Prev returns the next smaller size, wrapping to the largest.
func (ps PageSize) Prev() PageSize {
	sizes := PageSizes()
	for i, s := range sizes {
		if s == ps {
			return sizes[(i+len(sizes)-1)%len(sizes)]
		}
	}
	return DefaultPageSize
}

// State is the view state driving Derive. It is a value type; transitions
// return a new State and never modify the receiver.
type State struct {
	Query         string
	SortKey       string
	SortDirection Direction
	Page          int
	PageSize      PageSize
}

// NewState returns the state of a freshly mounted view: no query, no sort,
// page 1 and the default page size.
func NewState() State {
	return State{
		Page:          1,
		PageSize:      DefaultPageSize,
		SortDirection: Ascending,
	}
}

// Sorted reports whether a sort key is set.
func (s State) Sorted() bool {
	return s.SortKey != ""
}

// WithQuery sets the query and resets to page 1. Sort and page size are kept.
func (s State) WithQuery(q string) State {
	s.Query = q
	s.Page = 1
	return s
}

// WithSort flips the direction when key is already the sort key, otherwise it
// sorts ascending by key. The page is kept.
func (s State) WithSort(key string) State {
	if key == s.SortKey {
		s.SortDirection = s.SortDirection.Toggle()
		return s
	}
	s.SortKey = key
	s.SortDirection = Ascending
	return s
}

// WithPageSize sets the page size and resets to page 1. Sizes outside the
// enumerated set leave the state unchanged.
func (s State) WithPageSize(ps PageSize) State {
	if !ps.Valid() {
		return s
	}
	s.PageSize = ps
	s.Page = 1
	return s
}

// WithPage jumps to page n. Pages below 1 are ignored.
func (s State) WithPage(n int) State {
	if n < 1 {
		return s
	}
	s.Page = n
	return s
}

// NextPage advances one page unless already on the last of totalPages.
func (s State) NextPage(totalPages int) State {
	if s.Page >= totalPages {
		return s
	}
	s.Page++
	return s
}

// PrevPage goes back one page unless already on the first.
func (s State) PrevPage() State {
	if s.Page <= 1 {
		return s
	}
	s.Page--
	return s
}

// ClampPage bounds the page to [1, max(1, totalPages)].
func (s State) ClampPage(totalPages int) State {
	upper := totalPages
	if upper < 1 {
		upper = 1
	}
	switch {
	case s.Page < 1:
		s.Page = 1
	case s.Page > upper:
		s.Page = upper
	}
	return s
}
