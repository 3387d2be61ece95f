package view

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Filter returns the records in which any field matches query.
//
// Text fields match case-insensitively on substring. Numeric fields match when
// their decimal string form contains the query as typed (not lowercased). Any
// other kind never matches. An empty query keeps every record.
//
// When delegated is true, filtering belongs to an external collaborator and the
// records are returned unchanged.
func Filter[T any](records []T, schema *Schema[T], query string, delegated bool) []T {
	if delegated || query == "" {
		return records
	}

	lower := cases.Lower(language.Und)
	needle := lower.String(query)

	out := make([]T, 0, len(records))
	for _, record := range records {
		if matchesAny(schema, record, query, needle, lower) {
			out = append(out, record)
		}
	}
	return out
}

func matchesAny[T any](schema *Schema[T], record T, query, needle string, lower cases.Caser) bool {
	for _, col := range schema.columns {
		if col.Value == nil {
			continue
		}
		v := col.Value(record)
		switch v.Kind {
		case KindText:
			if strings.Contains(lower.String(v.Text), needle) {
				return true
			}
		case KindNumber:
			if strings.Contains(FormatNumber(v.Number), query) {
				return true
			}
		case KindMissing, KindOther:
		}
	}
	return false
}
