package view

import (
	"fmt"
	"math"
	"reflect"
	"strconv"

	json "github.com/goccy/go-json"
)

// Kind classifies a field value for filtering and sorting.
type Kind int

const (
	// KindMissing is an absent or nil field.
	KindMissing Kind = iota
	// KindText is a string field.
	KindText
	// KindNumber is any integer or floating point field.
	KindNumber
	// KindOther is any other value (maps, slices, structs, booleans, times).
	KindOther
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindOther:
		return "other"
	default:
		return "unknown"
	}
}

// Value is a classified field value extracted from a record by a column accessor.
type Value struct {
	Kind   Kind
	Text   string
	Number float64
	Raw    any
}

// Text wraps a string value.
func Text(s string) Value {
	return Value{Kind: KindText, Text: s, Raw: s}
}

// Number wraps a numeric value.
func Number(f float64) Value {
	return Value{Kind: KindNumber, Number: f, Raw: f}
}

// Missing is the value of an absent field.
func Missing() Value {
	return Value{Kind: KindMissing}
}

// Other wraps a value that neither filters nor sorts.
func Other(v any) Value {
	return Value{Kind: KindOther, Raw: v}
}

// ValueOf classifies an arbitrary Go value.
// Strings are text, every integer and float kind (and json.Number) is numeric,
// nil is missing and everything else is KindOther.
func ValueOf(v any) Value {
	switch x := v.(type) {
	case nil:
		return Missing()
	case Value:
		return x
	case string:
		return Text(x)
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return Text(x.String())
		}
		return Number(f)
	case float64:
		return Number(x)
	case float32:
		return Number(float64(x))
	case int:
		return Number(float64(x))
	case int64:
		return Number(float64(x))
	case int32:
		return Number(float64(x))
	case uint64:
		return Number(float64(x))
	case uint:
		return Number(float64(x))
	}

	// Named numeric types (type Cents int64) and the rarer widths.
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Number(float64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Number(float64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return Number(rv.Float())
	case reflect.String:
		return Text(rv.String())
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Missing()
		}
		return ValueOf(rv.Elem().Interface())
	case reflect.Slice, reflect.Map:
		if rv.IsNil() {
			return Missing()
		}
		return Other(v)
	default:
		return Other(v)
	}
}

// String renders the value the way a cell without a renderer shows it.
// Numbers use the shortest decimal form without an exponent and structured
// values are serialized as JSON.
func (v Value) String() string {
	switch v.Kind {
	case KindText:
		return v.Text
	case KindNumber:
		return FormatNumber(v.Number)
	case KindOther:
		b, err := json.Marshal(v.Raw)
		if err != nil {
			return fmt.Sprintf("%v", v.Raw)
		}
		return string(b)
	default:
		return ""
	}
}

// FormatNumber returns the decimal string form of f used for display and for
// numeric substring matching: 3, 2.5, -0.125.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
