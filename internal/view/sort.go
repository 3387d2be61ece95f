package view

import (
	"math"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultLocale is the collation locale used when none is configured.
var DefaultLocale = language.English //nolint:gochecknoglobals // Immutable language tag.

// NewCollator returns a locale-aware string comparator for tag.
// A Collator is not safe for concurrent use; Sort creates one per call.
func NewCollator(tag language.Tag) *collate.Collator {
	return collate.New(tag)
}

// Sort returns a new slice ordered by the column under key.
//
// Text pairs are compared with locale-aware collation for tag, numeric pairs by
// difference. Any other pairing (mixed kinds, missing fields, structured values)
// compares equal. Descending order negates the comparison, so equal pairs stay
// equal in both directions. The sort is stable, so equal elements keep their
// filtered order. An empty key returns records unchanged.
func Sort[T any](records []T, schema *Schema[T], key string, dir Direction, tag language.Tag) []T {
	if key == "" {
		return records
	}
	if _, ok := schema.Column(key); !ok {
		return records
	}

	values := make([]Value, len(records))
	for i, record := range records {
		values[i] = schema.value(key, record)
	}

	order := make([]int, len(records))
	for i := range order {
		order[i] = i
	}

	collator := NewCollator(tag)
	sort.SliceStable(order, func(i, j int) bool {
		c := compareValues(collator, values[order[i]], values[order[j]])
		if dir == Descending {
			c = -c
		}
		return c < 0
	})

	sorted := make([]T, len(records))
	for i, idx := range order {
		sorted[i] = records[idx]
	}
	return sorted
}

// compareValues returns the sign of a compared to b, or 0 when the pair has no defined order.
func compareValues(collator *collate.Collator, a, b Value) int {
	switch {
	case a.Kind == KindText && b.Kind == KindText:
		return collator.CompareString(a.Text, b.Text)
	case a.Kind == KindNumber && b.Kind == KindNumber:
		d := a.Number - b.Number
		switch {
		case math.IsNaN(d) || d == 0:
			return 0
		case d < 0:
			return -1
		default:
			return 1
		}
	default:
		return 0
	}
}
