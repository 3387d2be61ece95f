package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

// fitCell truncates s to width display columns, marking cut text with an
// ellipsis, and pads it to exactly width. Newlines are flattened.
func fitCell(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = strings.ReplaceAll(s, "\n", " ")
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, ellipsis)
	}
	return runewidth.FillRight(s, width)
}

// columnWidths sizes each column to its widest header or cell, capped by
// caps (0 means uncapped), then shrinks the widest columns until the row
// fits total display columns including gaps.
func columnWidths(headers []string, rows [][]string, caps []int, total int) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i := range widths {
			if i < len(row) {
				if w := runewidth.StringWidth(strings.ReplaceAll(row[i], "\n", " ")); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}
	for i := range widths {
		if i < len(caps) && caps[i] > 0 && widths[i] > caps[i] {
			widths[i] = caps[i]
		}
	}

	if total <= 0 || len(widths) == 0 {
		return widths
	}
	budget := total - cellGap*(len(widths)-1)
	for sum(widths) > budget {
		widest := 0
		for i := range widths {
			if widths[i] > widths[widest] {
				widest = i
			}
		}
		if widths[widest] <= 1 {
			break
		}
		widths[widest]--
	}
	return widths
}

func sum(ns []int) int {
	total := 0
	for _, n := range ns {
		total += n
	}
	return total
}

// joinCells fits each cell to its width and joins them with the column gap.
func joinCells(cells []string, widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		var c string
		if i < len(cells) {
			c = cells[i]
		}
		parts[i] = fitCell(c, w)
	}
	return strings.Join(parts, strings.Repeat(" ", cellGap))
}
