package render

import (
	"github.com/rshade/gridview/internal/view"
)

// Meta contains metadata about a rendered page.
type Meta struct {
	CurrentPage   int    `json:"current_page"             yaml:"current_page"`
	PageSize      int    `json:"page_size"                yaml:"page_size"`
	TotalPages    int    `json:"total_pages"              yaml:"total_pages"`
	TotalItems    int    `json:"total_items"              yaml:"total_items"`
	HasPrevious   bool   `json:"has_previous"             yaml:"has_previous"`
	HasNext       bool   `json:"has_next"                 yaml:"has_next"`
	Window        []int  `json:"window"                   yaml:"window"`
	Query         string `json:"query,omitempty"          yaml:"query,omitempty"`
	SortField     string `json:"sort_field,omitempty"     yaml:"sort_field,omitempty"`
	SortDirection string `json:"sort_direction,omitempty" yaml:"sort_direction,omitempty"`
}

// NewMeta creates pagination metadata from a derived view.
// TotalItems counts the filtered records, not the whole collection.
func NewMeta[T any](d view.Derived[T]) Meta {
	window := d.Window
	if window == nil {
		window = []int{}
	}

	meta := Meta{
		CurrentPage: d.State.Page,
		PageSize:    int(d.State.PageSize),
		TotalPages:  d.TotalPages,
		TotalItems:  len(d.Filtered),
		HasPrevious: d.HasPrevious,
		HasNext:     d.HasNext,
		Window:      window,
		Query:       d.State.Query,
	}
	if d.State.Sorted() {
		meta.SortField = d.State.SortKey
		meta.SortDirection = d.State.SortDirection.String()
	}
	return meta
}
