package pagination

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/rshade/gridview/internal/view"
)

// Flag names and defaults.
const (
	FlagPage     = "page"
	FlagPageSize = "page-size"
	FlagSort     = "sort"
	FlagQuery    = "query"

	DefaultPage      = 1
	MinPage          = 1
	DefaultSortField = ""
	DefaultSortOrder = "asc"
	SortOrderAsc     = "asc"
	SortOrderDesc    = "desc"
)

// Common validation errors.
var (
	ErrInvalidPage       = errors.New("page must be >= 1")
	ErrInvalidSortOrder  = errors.New("sort order must be 'asc' or 'desc'")
	ErrInvalidSortFormat = errors.New("invalid sort format: use 'field' or 'field:order' (e.g., 'amount:desc')")
	ErrEmptySortField    = errors.New("sort field cannot be empty")
	ErrInvalidSortField  = errors.New("invalid sort field")
)

// sortPartsMax is the maximum number of parts in a sort string (field:order).
const sortPartsMax = 2

// Params holds the paging flags of a command.
type Params struct {
	// Page is the 1-based page number.
	Page int

	// PageSize is one of the enumerated page sizes.
	PageSize int

	// SortField is the column key to sort by; empty means unsorted.
	SortField string

	// SortOrder is the sort direction: "asc" or "desc".
	SortOrder string

	// Query is the search text.
	Query string
}

// NewParams creates Params with default values.
func NewParams() *Params {
	return &Params{
		Page:      DefaultPage,
		PageSize:  int(view.DefaultPageSize),
		SortField: DefaultSortField,
		SortOrder: DefaultSortOrder,
	}
}

// RegisterFlags adds --page, --page-size, --sort and --query to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.Int(FlagPage, DefaultPage, "page number (1-based)")
	fs.Int(FlagPageSize, int(view.DefaultPageSize), "rows per page: 5, 10, 25, 50 or 100")
	fs.String(FlagSort, "", "sort column as 'field' or 'field:asc|desc'")
	fs.StringP(FlagQuery, "q", "", "case-insensitive search across all fields")
}

// Validate checks the parameters (value receiver).
// Returns an error if validation fails.
func (p Params) Validate() error {
	if p.Page < MinPage {
		return fmt.Errorf("%w: got %d", ErrInvalidPage, p.Page)
	}
	if _, err := view.ParsePageSize(p.PageSize); err != nil {
		return err
	}
	if p.SortField != "" && p.SortOrder != SortOrderAsc && p.SortOrder != SortOrderDesc {
		return fmt.Errorf("%w: got %q", ErrInvalidSortOrder, p.SortOrder)
	}
	return nil
}

// SetSort parses expr into SortField and SortOrder.
func (p *Params) SetSort(expr string) error {
	field, order, err := ParseSort(expr)
	if err != nil {
		return err
	}
	p.SortField, p.SortOrder = field, order
	return nil
}

// ParseSort parses a sort string in the format "field" or "field:order".
// Examples: "amount", "amount:desc", "name:asc"
// An empty string means no sort.
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func ParseSort(sortStr string) (field, order string, err error) {
	if strings.TrimSpace(sortStr) == "" {
		return DefaultSortField, DefaultSortOrder, nil
	}

	parts := strings.Split(sortStr, ":")
	switch len(parts) {
	case 1:
		field = strings.TrimSpace(parts[0])
		order = DefaultSortOrder
	case sortPartsMax:
		field = strings.TrimSpace(parts[0])
		order = strings.ToLower(strings.TrimSpace(parts[1]))
	default:
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSortFormat, sortStr)
	}

	if field == "" {
		return "", "", ErrEmptySortField
	}

	if order != SortOrderAsc && order != SortOrderDesc {
		return "", "", fmt.Errorf("%w: got %q", ErrInvalidSortOrder, order)
	}

	return field, order, nil
}

// Sortable is the part of a schema that sort validation needs.
type Sortable interface {
	IsSortable(key string) bool
	SortableKeys() []string
}

// ValidateSortField checks field against the sortable columns of s.
func ValidateSortField(s Sortable, field string) error {
	if field == "" || s.IsSortable(field) {
		return nil
	}
	return fmt.Errorf("%w: %q (valid: %s)", ErrInvalidSortField, field, strings.Join(s.SortableKeys(), ", "))
}

// Apply replays p onto t in the order the view would see it interactively:
// query, page size, sort, then page. The page is clamped by the view.
func Apply[T any](p Params, t *view.Table[T]) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := ValidateSortField(t.Schema(), p.SortField); err != nil {
		return err
	}

	t.SetQuery(p.Query)

	ps, err := view.ParsePageSize(p.PageSize)
	if err != nil {
		return err
	}
	if err := t.SetPageSize(ps); err != nil {
		return err
	}

	if p.SortField != "" {
		want := view.Ascending
		if p.SortOrder == SortOrderDesc {
			want = view.Descending
		}
		for t.State().SortKey != p.SortField || t.State().SortDirection != want {
			if err := t.ToggleSort(p.SortField); err != nil {
				return err
			}
		}
	}

	t.SetPage(p.Page)
	return nil
}
