package record

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rshade/gridview/internal/view"
)

// ColumnSpec overrides the inferred presentation of one field.
type ColumnSpec struct {
	Key      string `koanf:"key"      yaml:"key"`
	Header   string `koanf:"header"   yaml:"header,omitempty"`
	Sortable *bool  `koanf:"sortable" yaml:"sortable,omitempty"`
	Hidden   bool   `koanf:"hidden"   yaml:"hidden,omitempty"`
	Renderer string `koanf:"renderer" yaml:"renderer,omitempty"`
	Width    int    `koanf:"width"    yaml:"width,omitempty"`
}

// Field describes one inferred column.
type Field struct {
	Key      string
	Header   string
	Kind     view.Kind
	Sortable bool
	Hidden   bool
	Renderer string

	// Width caps the displayed cell width; 0 means unbounded.
	Width int
}

// Widths maps the key of every width-capped field to its width.
func Widths(fields []Field) map[string]int {
	widths := map[string]int{}
	for _, f := range fields {
		if f.Width > 0 {
			widths[f.Key] = f.Width
		}
	}
	return widths
}

// InferFields scans records and returns one Field per distinct field name in
// first-seen order. A field's kind is the single kind of its present values,
// or KindOther when values disagree. Only text and numeric fields are sortable.
func InferFields(records []Record) []Field {
	var order []string
	kinds := map[string]view.Kind{}

	for _, r := range records {
		for _, key := range r.Order {
			v := r.Get(key)
			prev, seen := kinds[key]
			if !seen {
				order = append(order, key)
				kinds[key] = v.Kind
				continue
			}
			kinds[key] = mergeKind(prev, v.Kind)
		}
	}

	fields := make([]Field, len(order))
	for i, key := range order {
		kind := kinds[key]
		fields[i] = Field{
			Key:      key,
			Header:   Humanize(key),
			Kind:     kind,
			Sortable: kind == view.KindText || kind == view.KindNumber,
			Renderer: "raw",
		}
	}
	return fields
}

func mergeKind(a, b view.Kind) view.Kind {
	switch {
	case a == b:
		return a
	case a == view.KindMissing:
		return b
	case b == view.KindMissing:
		return a
	default:
		return view.KindOther
	}
}

// ApplySpecs merges column overrides into inferred fields. Configured columns
// come first in configured order; remaining fields are kept but hidden, so they are
// still searched. Without specs the inferred fields are returned unchanged.
func ApplySpecs(fields []Field, specs []ColumnSpec) ([]Field, error) {
	if len(specs) == 0 {
		return fields, nil
	}

	byKey := make(map[string]Field, len(fields))
	for _, f := range fields {
		byKey[f.Key] = f
	}

	out := make([]Field, 0, len(fields)+len(specs))
	used := make(map[string]bool, len(specs))
	for _, spec := range specs {
		if spec.Key == "" {
			return nil, fmt.Errorf("%w: column spec without key", view.ErrInvalidColumn)
		}
		if used[spec.Key] {
			return nil, fmt.Errorf("%w: duplicate column spec %q", view.ErrInvalidColumn, spec.Key)
		}
		if _, err := LookupRenderer(spec.Renderer); err != nil {
			return nil, fmt.Errorf("column %q: %w", spec.Key, err)
		}
		used[spec.Key] = true

		f, ok := byKey[spec.Key]
		if !ok {
			f = Field{Key: spec.Key, Header: Humanize(spec.Key), Kind: view.KindMissing}
		}
		if spec.Header != "" {
			f.Header = spec.Header
		}
		if spec.Sortable != nil {
			f.Sortable = *spec.Sortable
		}
		if spec.Width < 0 {
			return nil, fmt.Errorf("%w: column %q width must be >= 0", view.ErrInvalidColumn, spec.Key)
		}
		f.Hidden = spec.Hidden
		f.Width = spec.Width
		f.Renderer = spec.Renderer
		if f.Renderer == "" {
			f.Renderer = "raw"
		}
		out = append(out, f)
	}

	for _, f := range fields {
		if used[f.Key] {
			continue
		}
		f.Hidden = true
		out = append(out, f)
	}
	return out, nil
}

// Schema builds a view schema over records from fields.
func Schema(fields []Field) (*view.Schema[Record], error) {
	columns := make([]view.Column[Record], 0, len(fields))
	for _, f := range fields {
		render, err := LookupRenderer(f.Renderer)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", f.Key, err)
		}
		key := f.Key
		columns = append(columns, view.Column[Record]{
			Key:      key,
			Header:   f.Header,
			Sortable: f.Sortable,
			Hidden:   f.Hidden,
			Value:    func(r Record) view.Value { return r.Get(key) },
			Render:   func(r Record) string { return render(r.Get(key)) },
		})
	}
	return view.NewSchema(columns...)
}

// InferSchema is InferFields, ApplySpecs and Schema in one step.
func InferSchema(records []Record, specs []ColumnSpec) (*view.Schema[Record], []Field, error) {
	fields, err := ApplySpecs(InferFields(records), specs)
	if err != nil {
		return nil, nil, err
	}
	schema, err := Schema(fields)
	if err != nil {
		return nil, nil, err
	}
	return schema, fields, nil
}

// Humanize turns a field name into a header: "createdAt" and "created_at" become "Created At".
func Humanize(key string) string {
	var words []string
	var current []rune
	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = current[:0]
		}
	}

	runes := []rune(key)
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || r == '.' || unicode.IsSpace(r):
			flush()
		case unicode.IsUpper(r) && i > 0 && !unicode.IsUpper(runes[i-1]):
			flush()
			current = append(current, r)
		default:
			current = append(current, r)
		}
	}
	flush()

	if len(words) == 0 {
		return key
	}
	return cases.Title(language.English).String(strings.Join(words, " "))
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
