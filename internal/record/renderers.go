package record

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/gridview/internal/view"
)

// ErrUnknownRenderer is returned when a column names a renderer that does not exist.
var ErrUnknownRenderer = errors.New("unknown renderer")

// ValueRenderer formats one classified value for display.
type ValueRenderer func(v view.Value) string

// printer is the locale-aware message printer for number formatting.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// renderers is the strategy table of named cell renderers.
//
//nolint:gochecknoglobals // Read-only lookup table.
var renderers = map[string]ValueRenderer{
	"raw":     renderRaw,
	"number":  renderNumber,
	"money":   renderMoney,
	"percent": renderPercent,
	"upper":   renderUpper,
	"json":    renderJSON,
	"bool":    renderBool,
}

// RendererNames returns the registered renderer names in sorted order.
func RendererNames() []string {
	names := make([]string, 0, len(renderers))
	for name := range renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupRenderer resolves a renderer by name. The empty name is "raw".
func LookupRenderer(name string) (ValueRenderer, error) {
	if name == "" {
		name = "raw"
	}
	r, ok := renderers[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownRenderer, name, strings.Join(RendererNames(), ", "))
	}
	return r, nil
}

func renderRaw(v view.Value) string {
	return v.String()
}

// renderNumber formats numbers with thousand separators: 18248 -> "18,248", 1234.5 -> "1,234.5".
func renderNumber(v view.Value) string {
	if v.Kind != view.KindNumber {
		return v.String()
	}
	if v.Number == math.Trunc(v.Number) && math.Abs(v.Number) < math.MaxInt64 {
		return printer.Sprintf("%d", int64(v.Number))
	}
	return FormatFloat(v.Number, decimalsOf(v.Number))
}

// renderMoney formats numbers with two decimals and thousand separators.
func renderMoney(v view.Value) string {
	if v.Kind != view.KindNumber {
		return v.String()
	}
	return FormatFloat(v.Number, 2) //nolint:mnd // Cents precision.
}

// renderPercent treats numbers as ratios: 0.125 -> "12.5%".
func renderPercent(v view.Value) string {
	if v.Kind != view.KindNumber {
		return v.String()
	}
	const hundred = 100
	return view.FormatNumber(math.Round(v.Number*hundred*hundred)/hundred) + "%"
}

func renderUpper(v view.Value) string {
	return strings.ToUpper(v.String())
}

// renderJSON forces the structured text form, quoting text values.
func renderJSON(v view.Value) string {
	if v.Kind == view.KindText {
		return fmt.Sprintf("%q", v.Text)
	}
	if v.Kind == view.KindMissing {
		return "null"
	}
	return view.Other(v.Raw).String()
}

func renderBool(v view.Value) string {
	if b, ok := v.Raw.(bool); ok {
		if b {
			return "yes"
		}
		return "no"
	}
	return v.String()
}

// FormatFloat formats a float with the specified precision and thousand separators.
// Example: FormatFloat(1234.567, 2) returns "1,234.57".
func FormatFloat(f float64, precision int) string {
	const base = 10
	multiplier := math.Pow(base, float64(precision))
	rounded := math.Round(f*multiplier) / multiplier

	if precision == 0 {
		return printer.Sprintf("%d", int64(rounded))
	}

	formatted := fmt.Sprintf("%.*f", precision, rounded)
	intPart, fracPart, ok := strings.Cut(formatted, ".")
	if !ok {
		return formatted
	}

	sign := ""
	if strings.HasPrefix(intPart, "-") {
		sign, intPart = "-", intPart[1:]
	}
	var n int64
	if _, err := fmt.Sscan(intPart, &n); err != nil {
		return formatted
	}
	return sign + printer.Sprintf("%d", n) + "." + fracPart
}

// decimalsOf returns the number of fractional digits in the shortest form of f, capped at 6.
func decimalsOf(f float64) int {
	const maxDecimals = 6
	s := view.FormatNumber(f)
	_, frac, ok := strings.Cut(s, ".")
	if !ok {
		return 0
	}
	return min(len(frac), maxDecimals)
}
