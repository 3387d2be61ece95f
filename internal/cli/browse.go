package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/gridview/internal/config"
	"github.com/rshade/gridview/internal/record"
	"github.com/rshade/gridview/internal/source"
	"github.com/rshade/gridview/internal/tui"
	"github.com/rshade/gridview/internal/view"
)

// Browse errors.
var (
	ErrNotTerminal = errors.New("browse needs an interactive terminal; use show instead")
	ErrStdinBrowse = errors.New("browse cannot read records from stdin; stdin is the keyboard")
)

// NewBrowseCmd creates the browse command, which starts the interactive viewer.
func NewBrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse [inputs...]",
		Short: "Browse records interactively",
		Long: "Open a full-screen table. Keys: / search, left/right focus a column, s sort it,\n" +
			"n/p page, 1-5 jump to a page link, +/- page size, up/down move, enter open, esc back, q quit.",
		Example: `  gridview browse deals.json
  gridview browse exports/*.json --watch --page-size 25`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal(os.Stdout) {
				return ErrNotTerminal
			}
			ctx := cmd.Context()
			m, err := newBrowser(ctx, configFrom(ctx))
			if err != nil {
				return err
			}
			return tui.Run(ctx, m)
		},
	}

	fs := cmd.Flags()
	registerViewFlags(fs)
	fs.Bool("watch", false, "reload when an input file changes")

	return cmd
}

// newBrowser wires the loader, table builder and optional watcher into a browser model.
func newBrowser(ctx context.Context, cfg *config.Config) (*tui.Model, error) {
	if len(cfg.Inputs) == 0 {
		return nil, ErrNoInputs
	}
	if slices.Contains(cfg.Inputs, source.Stdin) {
		return nil, ErrStdinBrowse
	}

	var watcher *tui.Watcher
	if cfg.Watch {
		w, err := tui.NewWatcher(cfg.Inputs)
		if err != nil {
			return nil, fmt.Errorf("watching inputs: %w", err)
		}
		watcher = w
	}

	load := func(ctx context.Context) ([]record.Record, error) {
		return loadRecords(ctx, cfg, nil)
	}
	build := func(records []record.Record) (*view.Table[record.Record], []record.Field, error) {
		return newTable(ctx, cfg, records)
	}

	return tui.NewModel(ctx, build, load, tui.Options{
		Title:   browseTitle(cfg.Inputs),
		Watcher: watcher,
	}), nil
}

func browseTitle(inputs []string) string {
	names := make([]string, len(inputs))
	for i, in := range inputs {
		names[i] = filepath.Base(in)
	}
	return strings.Join(names, ", ")
}
