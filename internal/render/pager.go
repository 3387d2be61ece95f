package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rshade/gridview/internal/view"
)

// Sort indicators appended to the active column header.
const (
	IndicatorAsc  = "▲"
	IndicatorDesc = "▼"
)

// Pager arrows.
const (
	ArrowPrev = "«"
	ArrowNext = "»"
)

// HeaderLabel returns header with the sort indicator when key is the active sort column.
func HeaderLabel(header, key string, s view.State) string {
	if !s.Sorted() || s.SortKey != key {
		return header
	}
	if s.SortDirection == view.Descending {
		return header + " " + IndicatorDesc
	}
	return header + " " + IndicatorAsc
}

// PagerLine renders the page window as "« 1 [2] 3 »". The current page is
// bracketed and an arrow is left out when its direction is unavailable.
// Returns "" when the pager is hidden.
func PagerLine[T any](d view.Derived[T]) string {
	if !d.ShowPager() {
		return ""
	}

	parts := make([]string, 0, len(d.Window)+2)
	if d.HasPrevious {
		parts = append(parts, ArrowPrev)
	}
	for _, p := range d.Window {
		if p == d.State.Page {
			parts = append(parts, "["+strconv.Itoa(p)+"]")
			continue
		}
		parts = append(parts, strconv.Itoa(p))
	}
	if d.HasNext {
		parts = append(parts, ArrowNext)
	}
	return strings.Join(parts, " ")
}

// Summary describes the position in the filtered collection: "page 2/3, 23 records".
func Summary[T any](d view.Derived[T]) string {
	n := len(d.Filtered)
	noun := "records"
	if n == 1 {
		noun = "record"
	}
	if d.TotalPages == 0 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("page %d/%d, %d %s", d.State.Page, d.TotalPages, n, noun)
}
