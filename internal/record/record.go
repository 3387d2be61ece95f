package record

import (
	"github.com/oklog/ulid/v2"

	"github.com/rshade/gridview/internal/view"
)

// DefaultKeyField is the field used as the record key when present.
const DefaultKeyField = "id"

// Record is one loaded row.
type Record struct {
	// Key is unique and stable for the lifetime of the loaded collection.
	Key string

	// Fields holds the decoded values by field name.
	Fields map[string]any

	// Order is the field order as it appeared in the source.
	Order []string
}

// New builds a record from fields, taking its key from keyField or
// generating a ULID when the field is absent or empty.
func New(fields map[string]any, order []string, keyField string) Record {
	if fields == nil {
		fields = map[string]any{}
	}
	if len(order) == 0 {
		order = sortedKeys(fields)
	}
	return Record{
		Key:    keyFrom(fields, keyField),
		Fields: fields,
		Order:  order,
	}
}

// Get returns the classified value of a field.
func (r Record) Get(field string) view.Value {
	v, ok := r.Fields[field]
	if !ok {
		return view.Missing()
	}
	return view.ValueOf(v)
}

// KeyOf is the view.KeyFunc for records.
func KeyOf(r Record) string {
	return r.Key
}

func keyFrom(fields map[string]any, keyField string) string {
	if keyField == "" {
		keyField = DefaultKeyField
	}
	if raw, ok := fields[keyField]; ok {
		if s := view.ValueOf(raw).String(); s != "" {
			return s
		}
	}
	return ulid.Make().String()
}
