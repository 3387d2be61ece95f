package view

import (
	"math"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
)

type cents int64

func TestValueOf(t *testing.T) {
	s := "ptr"
	var nilPtr *string

	tests := []struct {
		name     string
		in       any
		wantKind Kind
		wantStr  string
	}{
		{name: "string", in: "hello", wantKind: KindText, wantStr: "hello"},
		{name: "int", in: 42, wantKind: KindNumber, wantStr: "42"},
		{name: "float", in: 2.5, wantKind: KindNumber, wantStr: "2.5"},
		{name: "negative fraction", in: -0.125, wantKind: KindNumber, wantStr: "-0.125"},
		{name: "named int", in: cents(1999), wantKind: KindNumber, wantStr: "1999"},
		{name: "uint8", in: uint8(7), wantKind: KindNumber, wantStr: "7"},
		{name: "json number", in: json.Number("1e3"), wantKind: KindNumber, wantStr: "1000"},
		{name: "nil", in: nil, wantKind: KindMissing, wantStr: ""},
		{name: "nil pointer", in: nilPtr, wantKind: KindMissing, wantStr: ""},
		{name: "string pointer", in: &s, wantKind: KindText, wantStr: "ptr"},
		{name: "bool is other", in: true, wantKind: KindOther, wantStr: "true"},
		{name: "map is structured", in: map[string]any{"type": "deal", "id": "d-1"}, wantKind: KindOther, wantStr: `{"id":"d-1","type":"deal"}`},
		{name: "slice is structured", in: []string{"a", "b"}, wantKind: KindOther, wantStr: `["a","b"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ValueOf(tt.in)
			assert.Equal(t, tt.wantKind, v.Kind)
			assert.Equal(t, tt.wantStr, v.String())
		})
	}
}

func TestValueString_UnmarshallableFallsBack(t *testing.T) {
	v := Other(make(chan int))
	assert.NotEmpty(t, v.String())
}

func TestFormatNumber_LargeValuesHaveNoExponent(t *testing.T) {
	assert.Equal(t, "123456789012", FormatNumber(123456789012))
	assert.Equal(t, "0.1", FormatNumber(0.1))
}

func TestFormatNumber_NegativeZero(t *testing.T) {
	assert.Equal(t, "0", FormatNumber(math.Copysign(0, -1)))
	assert.Equal(t, "0", Number(math.Copysign(0, -1)).String())
}
