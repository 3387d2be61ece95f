package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/rshade/gridview/internal/logging"
	"github.com/rshade/gridview/internal/record"
)

// Source errors.
var (
	ErrUnsupportedFormat = errors.New("unsupported input format")
	ErrInvalidShape      = errors.New("input must be a list of objects")
	ErrSourceFailed      = errors.New("source reported failure")
	ErrMissingQuery      = errors.New("sqlite input requires a query")
)

// Format identifies an input encoding.
type Format string

// Known formats.
const (
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
	FormatCSV    Format = "csv"
	FormatSQLite Format = "sqlite"
)

// Stdin is the path that reads JSON from standard input.
const Stdin = "-"

// Options control how inputs are decoded.
type Options struct {
	// KeyField names the field used as record key; ULIDs are generated when absent.
	KeyField string

	// CSVNumbers converts CSV cells that parse as numbers into numeric values.
	CSVNumbers bool

	// SQLQuery is the statement run against SQLite inputs.
	SQLQuery string

	// Stdin replaces os.Stdin for the "-" path.
	Stdin io.Reader
}

// DetectFormat maps a path to its format by extension.
func DetectFormat(path string) (Format, error) {
	if path == Stdin {
		return FormatJSON, nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".csv":
		return FormatCSV, nil
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Load reads one input.
func Load(ctx context.Context, path string, opts Options) ([]record.Record, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	if format == FormatSQLite {
		return loadSQLite(ctx, path, opts)
	}

	var r io.Reader
	if path == Stdin {
		r = opts.Stdin
		if r == nil {
			r = os.Stdin
		}
	} else {
		f, openErr := os.Open(path)
		if openErr != nil {
			return nil, fmt.Errorf("opening %s: %w", path, openErr)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	var records []record.Record
	switch format {
	case FormatJSON:
		records, err = decodeJSON(r, opts)
	case FormatYAML:
		records, err = decodeYAML(r, opts)
	case FormatCSV:
		records, err = decodeCSV(r, opts)
	default:
		err = fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	logging.FromContext(ctx).Debug().
		Ctx(ctx).
		Str("component", "source").
		Str("path", path).
		Str("format", string(format)).
		Int("records", len(records)).
		Msg("input loaded")
	return records, nil
}

// LoadAll reads every input concurrently and concatenates the records in path order.
func LoadAll(ctx context.Context, paths []string, opts Options) ([]record.Record, error) {
	results := make([][]record.Record, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			records, err := Load(gctx, path, opts)
			if err != nil {
				return err
			}
			results[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, rs := range results {
		total += len(rs)
	}
	all := make([]record.Record, 0, total)
	for _, rs := range results {
		all = append(all, rs...)
	}
	return all, nil
}
