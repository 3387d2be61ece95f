package view

import (
	"errors"
	"fmt"
	"sort"
)

// Schema construction errors.
var (
	ErrInvalidColumn = errors.New("invalid column")
	ErrUnknownColumn = errors.New("unknown column")
	ErrNotSortable   = errors.New("column is not sortable")
)

// Accessor extracts one field of a record.
type Accessor[T any] func(record T) Value

// Renderer produces the display text of one cell.
type Renderer[T any] func(record T) string

// Column describes one field of the record type T.
type Column[T any] struct {
	// Key identifies the column; it is the sort key used by State.
	Key string

	// Header is the display label.
	Header string

	// Sortable marks columns whose header toggles sorting.
	Sortable bool

	// Hidden columns are searched but not rendered.
	Hidden bool

	// Value extracts the field. Columns without an accessor are synthetic:
	// they are rendered but never filtered or sorted.
	Value Accessor[T]

	// Render overrides the default stringification of Value.
	Render Renderer[T]
}

// Schema is an immutable, validated set of columns with render strategies
// resolved once at construction.
type Schema[T any] struct {
	columns   []Column[T]
	index     map[string]int
	renderers map[string]Renderer[T]
}

// NewSchema validates the columns and resolves each column's renderer.
// Keys must be unique and non-empty, and every column needs an accessor or a renderer.
func NewSchema[T any](columns ...Column[T]) (*Schema[T], error) {
	s := &Schema[T]{
		columns:   make([]Column[T], 0, len(columns)),
		index:     make(map[string]int, len(columns)),
		renderers: make(map[string]Renderer[T], len(columns)),
	}

	for i, col := range columns {
		if col.Key == "" {
			return nil, fmt.Errorf("%w: column %d has an empty key", ErrInvalidColumn, i)
		}
		if _, dup := s.index[col.Key]; dup {
			return nil, fmt.Errorf("%w: duplicate key %q", ErrInvalidColumn, col.Key)
		}
		if col.Value == nil && col.Render == nil {
			return nil, fmt.Errorf("%w: %q has neither accessor nor renderer", ErrInvalidColumn, col.Key)
		}
		if col.Value == nil && col.Sortable {
			return nil, fmt.Errorf("%w: synthetic column %q cannot be sortable", ErrInvalidColumn, col.Key)
		}
		if col.Header == "" {
			col.Header = col.Key
		}

		s.index[col.Key] = len(s.columns)
		s.columns = append(s.columns, col)
		s.renderers[col.Key] = resolveRenderer(col)
	}

	return s, nil
}

// MustSchema is NewSchema for statically known columns; it panics on invalid input.
func MustSchema[T any](columns ...Column[T]) *Schema[T] {
	s, err := NewSchema(columns...)
	if err != nil {
		panic(err)
	}
	return s
}

func resolveRenderer[T any](col Column[T]) Renderer[T] {
	if col.Render != nil {
		return col.Render
	}
	accessor := col.Value
	return func(record T) string {
		return accessor(record).String()
	}
}

// Columns returns all columns, hidden ones included, in declaration order.
func (s *Schema[T]) Columns() []Column[T] {
	out := make([]Column[T], len(s.columns))
	copy(out, s.columns)
	return out
}

// Visible returns the columns that are rendered.
func (s *Schema[T]) Visible() []Column[T] {
	out := make([]Column[T], 0, len(s.columns))
	for _, col := range s.columns {
		if !col.Hidden {
			out = append(out, col)
		}
	}
	return out
}

// Column looks up a column by key.
func (s *Schema[T]) Column(key string) (Column[T], bool) {
	i, ok := s.index[key]
	if !ok {
		return Column[T]{}, false
	}
	return s.columns[i], true
}

// IsSortable reports whether key names a sortable column.
func (s *Schema[T]) IsSortable(key string) bool {
	col, ok := s.Column(key)
	return ok && col.Sortable
}

// SortableKeys returns the sortable column keys in alphabetical order.
func (s *Schema[T]) SortableKeys() []string {
	keys := make([]string, 0, len(s.columns))
	for _, col := range s.columns {
		if col.Sortable {
			keys = append(keys, col.Key)
		}
	}
	sort.Strings(keys)
	return keys
}

// CheckSortable returns ErrUnknownColumn or ErrNotSortable when key cannot be sorted on.
func (s *Schema[T]) CheckSortable(key string) error {
	col, ok := s.Column(key)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownColumn, key)
	}
	if !col.Sortable {
		return fmt.Errorf("%w: %q", ErrNotSortable, key)
	}
	return nil
}

// RenderCell renders one cell. Unknown keys render as an empty string.
func (s *Schema[T]) RenderCell(key string, record T) string {
	render, ok := s.renderers[key]
	if !ok {
		return ""
	}
	return render(record)
}

// RenderRow renders the visible cells of a record in column order.
func (s *Schema[T]) RenderRow(record T) []string {
	cells := make([]string, 0, len(s.columns))
	for _, col := range s.columns {
		if col.Hidden {
			continue
		}
		cells = append(cells, s.renderers[col.Key](record))
	}
	return cells
}

// value extracts the field under key, or Missing for unknown and synthetic columns.
func (s *Schema[T]) value(key string, record T) Value {
	col, ok := s.Column(key)
	if !ok || col.Value == nil {
		return Missing()
	}
	return col.Value(record)
}
