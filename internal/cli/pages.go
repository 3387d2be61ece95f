package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/gridview/internal/cli/pagination"
	"github.com/rshade/gridview/internal/render"
	"github.com/rshade/gridview/internal/view"
)

// NewPagesCmd creates the pages command, which prints the page-link window.
func NewPagesCmd() *cobra.Command {
	var current, total int

	cmd := &cobra.Command{
		Use:   "pages",
		Short: "Print the page links for a position",
		Long:  "Print the window of page numbers a pager offers for --current out of --total pages.",
		Example: `  gridview pages --current 7 --total 20
  gridview pages --current 1 --total 3 --max-visible 7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if total < 0 {
				return fmt.Errorf("total must be >= 0, got %d", total)
			}
			if current < pagination.MinPage || (total > 0 && current > total) {
				return fmt.Errorf("%w: current %d is outside 1..%d", pagination.ErrInvalidPage, current, max(total, 1))
			}

			cfg := configFrom(cmd.Context())
			_, err := fmt.Fprintln(cmd.OutOrStdout(), pageLinks(current, total, cfg.MaxVisible))
			return err
		},
	}

	fs := cmd.Flags()
	fs.IntVar(&current, "current", pagination.DefaultPage, "current page (1-based)")
	fs.IntVar(&total, "total", 0, "total number of pages")
	fs.Int("max-visible", view.DefaultMaxVisible, "number of page links in the window")

	return cmd
}

// pageLinks renders the window the way the pager footer does; a single page
// has no pager, so it is printed bare.
func pageLinks(current, total, maxVisible int) string {
	window := view.PageWindow(current, total, maxVisible)
	d := view.Derived[struct{}]{
		State:       view.State{Page: current},
		TotalPages:  total,
		Window:      window,
		HasPrevious: current > 1,
		HasNext:     current < total,
	}
	if line := render.PagerLine(d); line != "" {
		return line
	}

	parts := make([]string, len(window))
	for i, p := range window {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, " ")
}
