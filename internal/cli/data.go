package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/rshade/gridview/internal/cli/pagination"
	"github.com/rshade/gridview/internal/config"
	"github.com/rshade/gridview/internal/logging"
	"github.com/rshade/gridview/internal/record"
	"github.com/rshade/gridview/internal/source"
	"github.com/rshade/gridview/internal/view"
)

// ErrNoInputs is returned when no input was given by argument, config or environment.
var ErrNoInputs = errors.New("no inputs: pass files as arguments, set inputs in gridview.yaml or GRIDVIEW_INPUTS")

// ExitCodeEmpty is the exit status of show --fail-empty when nothing matches.
const ExitCodeEmpty = 3

// ExitError asks main to exit with ExitCode instead of the generic failure status.
type ExitError struct {
	ExitCode int
	Reason   string
}

func (e *ExitError) Error() string {
	return e.Reason
}

// registerSourceFlags adds the flags that control how inputs are read.
func registerSourceFlags(fs *pflag.FlagSet) {
	fs.String("key-field", record.DefaultKeyField, "field used as the record key (generated when absent)")
	fs.Bool("csv-numbers", false, "convert numeric CSV cells to numbers")
	fs.String("sql-query", "", "SELECT statement run against SQLite inputs")
}

// registerViewFlags adds the source flags plus the flags that shape the view.
func registerViewFlags(fs *pflag.FlagSet) {
	registerSourceFlags(fs)
	pagination.RegisterFlags(fs)
	fs.Int("max-visible", view.DefaultMaxVisible, "number of page links in the pager")
	fs.String("locale", view.DefaultLocale.String(), "BCP 47 locale used to collate text columns")
	fs.String("search-placeholder", view.DefaultSearchPlaceholder, "text shown in the empty search box")
	fs.String("empty-placeholder", view.DefaultEmptyPlaceholder, "text shown when there is nothing to list")
}

func sourceOptions(cfg *config.Config, stdin io.Reader) source.Options {
	return source.Options{
		KeyField:   cfg.KeyField,
		CSVNumbers: cfg.CSVNumbers,
		SQLQuery:   cfg.SQLQuery,
		Stdin:      stdin,
	}
}

// loadRecords reads every configured input.
func loadRecords(ctx context.Context, cfg *config.Config, stdin io.Reader) ([]record.Record, error) {
	if len(cfg.Inputs) == 0 {
		return nil, ErrNoInputs
	}
	return source.LoadAll(ctx, cfg.Inputs, sourceOptions(cfg, stdin))
}

// newTable infers a schema from records and the configured columns, builds
// the view over them and replays the configured query, sort and page.
func newTable(
	ctx context.Context,
	cfg *config.Config,
	records []record.Record,
	opts ...view.Option[record.Record],
) (*view.Table[record.Record], []record.Field, error) {
	schema, fields, err := record.InferSchema(records, cfg.Columns)
	if err != nil {
		return nil, nil, fmt.Errorf("building columns: %w", err)
	}
	lang, err := cfg.Language()
	if err != nil {
		return nil, nil, err
	}
	params, err := cfg.Params()
	if err != nil {
		return nil, nil, err
	}

	base := []view.Option[record.Record]{
		view.WithKeyFunc(record.KeyOf),
		view.WithLocale[record.Record](lang),
		view.WithMaxVisible[record.Record](cfg.MaxVisible),
		view.WithPlaceholders[record.Record](cfg.Placeholders.Search, cfg.Placeholders.Empty),
		view.WithLogger[record.Record](logging.ComponentLogger(*logging.FromContext(ctx), "view")),
	}
	t := view.NewTable(schema, append(base, opts...)...)
	t.SetRecords(records)

	if err := pagination.Apply(params, t); err != nil {
		return nil, nil, err
	}
	return t, fields, nil
}
