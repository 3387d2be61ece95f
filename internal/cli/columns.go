package cli

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/rshade/gridview/internal/record"
)

// NewColumnsCmd creates the columns command, which prints the inferred schema.
func NewColumnsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "columns [inputs...]",
		Short: "Print the columns inferred from the inputs",
		Long: "Print every field found in the inputs with its header, value kind and whether it can be\n" +
			"sorted. Fields left out of a configured column list are shown as hidden; they are still searched.",
		Example: `  gridview columns deals.json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg := configFrom(ctx)

			records, err := loadRecords(ctx, cfg, cmd.InOrStdin())
			if err != nil {
				return err
			}
			_, fields, err := record.InferSchema(records, cfg.Columns)
			if err != nil {
				return fmt.Errorf("building columns: %w", err)
			}

			tw := table.NewWriter()
			style := table.StyleLight
			style.Format.Header = text.FormatDefault
			tw.SetStyle(style)
			tw.AppendHeader(table.Row{"Key", "Header", "Kind", "Sortable", "Hidden", "Renderer", "Width"})
			for _, f := range fields {
				width := "-"
				if f.Width > 0 {
					width = strconv.Itoa(f.Width)
				}
				tw.AppendRow(table.Row{f.Key, f.Header, f.Kind.String(), yesNo(f.Sortable), yesNo(f.Hidden), f.Renderer, width})
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), tw.Render())
			return err
		},
	}

	registerSourceFlags(cmd.Flags())
	return cmd
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
