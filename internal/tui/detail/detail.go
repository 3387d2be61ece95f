package detail

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// minValueWidth keeps values readable on very narrow terminals.
const minValueWidth = 10

// labelGap separates labels from values.
const labelGap = 2

//nolint:gochecknoglobals // Immutable lipgloss styles.
var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
)

// Field is one labeled value.
type Field struct {
	Label string
	Value string
}

// Render lays out fields under title within width columns.
func Render(title string, fields []Field, width int) string {
	labelWidth := 0
	for _, f := range fields {
		if w := runewidth.StringWidth(f.Label); w > labelWidth {
			labelWidth = w
		}
	}

	valueWidth := width - labelWidth - labelGap
	if valueWidth < minValueWidth {
		valueWidth = minValueWidth
	}
	indent := strings.Repeat(" ", labelWidth+labelGap)

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(title))
	sb.WriteString("\n\n")
	for _, f := range fields {
		label := runewidth.FillRight(f.Label, labelWidth) + strings.Repeat(" ", labelGap)
		lines := Wrap(f.Value, valueWidth)
		for i, line := range lines {
			if i == 0 {
				sb.WriteString(labelStyle.Render(label))
			} else {
				sb.WriteString(indent)
			}
			sb.WriteString(valueStyle.Render(line))
			sb.WriteString("\n")
		}
	}
	sb.WriteString("\n")
	sb.WriteString(hintStyle.Render("[Esc] Back to list"))
	return sb.String()
}

// Wrap splits s into lines no wider than width display columns. Embedded
// newlines are kept; an empty value yields one empty line.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}

	var lines []string
	for _, para := range strings.Split(s, "\n") {
		var current strings.Builder
		w := 0
		for _, r := range para {
			rw := runewidth.RuneWidth(r)
			if w+rw > width && w > 0 {
				lines = append(lines, current.String())
				current.Reset()
				w = 0
			}
			current.WriteRune(r)
			w += rw
		}
		lines = append(lines, current.String())
	}
	return lines
}
