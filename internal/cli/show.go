package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/gridview/internal/config"
	"github.com/rshade/gridview/internal/logging"
	"github.com/rshade/gridview/internal/record"
	"github.com/rshade/gridview/internal/render"
)

// NewShowCmd creates the show command, which prints one page of records.
func NewShowCmd() *cobra.Command {
	var failEmpty bool

	cmd := &cobra.Command{
		Use:   "show [inputs...]",
		Short: "Print one page of records",
		Long: "Load records, apply the search query, sort and page, then print the page followed by\n" +
			"the page links and a summary. Use - to read JSON from stdin.",
		Example: `  gridview show deals.json --sort amount:desc
  gridview show contacts.csv -q acme --page 2 --format markdown
  cat deals.json | gridview show - --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := configFrom(cmd.Context())
			return runShow(cmd.Context(), cmd.OutOrStdout(), cmd.InOrStdin(), cfg, failEmpty)
		},
	}

	fs := cmd.Flags()
	registerViewFlags(fs)
	fs.StringP("format", "f", string(render.FormatTable), "output format: "+strings.Join(render.Formats(), ", "))
	fs.BoolVar(&failEmpty, "fail-empty", false, fmt.Sprintf("exit with status %d when no record matches", ExitCodeEmpty))

	return cmd
}

func runShow(ctx context.Context, w io.Writer, stdin io.Reader, cfg *config.Config, failEmpty bool) error {
	log := logging.FromContext(ctx)

	records, err := loadRecords(ctx, cfg, stdin)
	if err != nil {
		return err
	}
	t, fields, err := newTable(ctx, cfg, records)
	if err != nil {
		return err
	}
	format, err := render.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	d := t.View()
	log.Debug().
		Int("records", len(records)).
		Int("matched", len(d.Filtered)).
		Int("page", d.State.Page).
		Int("total_pages", d.TotalPages).
		Msg("rendering page")

	if err := render.Page(w, format, t, render.Options[record.Record]{Widths: record.Widths(fields)}); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}

	if failEmpty && len(d.Filtered) == 0 {
		return &ExitError{ExitCode: ExitCodeEmpty, Reason: "no records match"}
	}
	return nil
}
