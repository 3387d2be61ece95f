package render

import (
	"encoding/csv"
	"errors"
	"fmt"
	"html"
	"io"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/rshade/gridview/internal/view"
)

// Format is an output encoding for a page.
type Format string

// Supported formats.
const (
	FormatTable    Format = "table"
	FormatMarkdown Format = "markdown"
	FormatCSV      Format = "csv"
	FormatHTML     Format = "html"
	FormatJSON     Format = "json"
)

// ErrUnknownFormat is returned by ParseFormat.
var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists the supported format names.
func Formats() []string {
	return []string{
		string(FormatTable),
		string(FormatMarkdown),
		string(FormatCSV),
		string(FormatHTML),
		string(FormatJSON),
	}
}

// ParseFormat resolves a format name; "md" is accepted for markdown.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(FormatTable):
		return FormatTable, nil
	case string(FormatMarkdown), "md":
		return FormatMarkdown, nil
	case string(FormatCSV):
		return FormatCSV, nil
	case string(FormatHTML):
		return FormatHTML, nil
	case string(FormatJSON):
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q (valid: %s)", ErrUnknownFormat, s, strings.Join(Formats(), ", "))
	}
}

// Options tune page output.
type Options[T any] struct {
	// Widths caps the width of the keyed columns in table output.
	Widths map[string]int

	// Item converts a record into its JSON form. Defaults to a map of the
	// visible column keys to their rendered cells.
	Item func(T) any
}

// Document is the JSON output shape.
type Document struct {
	Items      []any  `json:"items"`
	Pagination Meta   `json:"pagination"`
	Empty      string `json:"empty,omitempty"`
}

// Page writes the current page of t to w in format.
func Page[T any](w io.Writer, format Format, t *view.Table[T], opts Options[T]) error {
	d := t.View()

	if format == FormatJSON {
		return writeJSON(w, t, opts)
	}

	if d.Loading {
		_, err := fmt.Fprintln(w, "Loading...")
		return err
	}

	if format == FormatCSV {
		return writeCSV(w, t)
	}

	tw := newWriter(t, opts)

	var out string
	switch format {
	case FormatTable:
		if len(d.PageItems) == 0 {
			return writeLines(w, t.EmptyMessage())
		}
		out = tw.Render()
	case FormatMarkdown:
		if len(d.PageItems) == 0 {
			return writeLines(w, t.EmptyMessage())
		}
		out = tw.RenderMarkdown()
	case FormatHTML:
		caption := footer(d)
		if len(d.PageItems) == 0 {
			caption = t.EmptyMessage()
		}
		tw.SetCaption("%s", html.EscapeString(caption))
		return writeLines(w, tw.RenderHTML())
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if err := writeLines(w, out); err != nil {
		return err
	}
	if f := footer(d); f != "" {
		if format == FormatMarkdown {
			return writeLines(w, "", f)
		}
		return writeLines(w, f)
	}
	return nil
}

func newWriter[T any](t *view.Table[T], opts Options[T]) table.Writer {
	schema := t.Schema()
	state := t.State()
	cols := schema.Visible()

	tw := table.NewWriter()
	style := table.StyleLight
	style.Format.Header = text.FormatDefault
	style.HTML.CSSClass = "gridview"
	tw.SetStyle(style)

	header := make(table.Row, len(cols))
	var configs []table.ColumnConfig
	for i, col := range cols {
		header[i] = HeaderLabel(col.Header, col.Key, state)
		if width := opts.Widths[col.Key]; width > 0 {
			configs = append(configs, table.ColumnConfig{Number: i + 1, WidthMax: width})
		}
	}
	tw.AppendHeader(header)
	if len(configs) > 0 {
		tw.SetColumnConfigs(configs)
	}

	for _, row := range t.Rows() {
		cells := make(table.Row, len(row.Cells))
		for i, c := range row.Cells {
			cells[i] = c
		}
		tw.AppendRow(cells)
	}
	return tw
}

// writeCSV emits RFC 4180 CSV with plain headers and no footer.
func writeCSV[T any](w io.Writer, t *view.Table[T]) error {
	cols := t.Schema().Visible()
	header := make([]string, len(cols))
	for i, col := range cols {
		header[i] = col.Header
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range t.Rows() {
		if err := cw.Write(row.Cells); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func footer[T any](d view.Derived[T]) string {
	pager := PagerLine(d)
	summary := Summary(d)
	if pager == "" {
		return summary
	}
	return pager + "  " + summary
}

func writeJSON[T any](w io.Writer, t *view.Table[T], opts Options[T]) error {
	d := t.View()
	item := opts.Item
	if item == nil {
		item = visibleCells(t.Schema())
	}

	doc := Document{
		Items:      make([]any, 0, len(d.PageItems)),
		Pagination: NewMeta(d),
		Empty:      t.EmptyMessage(),
	}
	for _, rec := range d.PageItems {
		doc.Items = append(doc.Items, item(rec))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func visibleCells[T any](schema *view.Schema[T]) func(T) any {
	cols := schema.Visible()
	return func(rec T) any {
		m := make(map[string]string, len(cols))
		for _, col := range cols {
			m[col.Key] = schema.RenderCell(col.Key, rec)
		}
		return m
	}
}

func writeLines(w io.Writer, lines ...string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
