package tabular

import (
	"strings"
	"unicode/utf8"
)

// PlainFormatter is the minimal fallback variant: fixed-width space-padded
// columns with no borders. Style distinctions are ignored beyond basic
// alignment, and nothing outside the standard library is used, so it works in
// any environment.
type PlainFormatter struct{}

// NewPlainFormatter creates the fallback formatter variant
func NewPlainFormatter() *PlainFormatter {
	return &PlainFormatter{}
}

// Render implements Formatter
func (f *PlainFormatter) Render(headers []string, rows [][]string, _ Style) string {
	if len(headers) == 0 {
		headers = []string{indexHeader}
	}
	headers = clipCells(headers)

	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = clipCells(padTo(row, len(headers)))
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range cells {
		for i, c := range row {
			if n := utf8.RuneCountInString(c); n > widths[i] {
				widths[i] = n
			}
		}
	}

	lines := make([]string, 0, len(cells)+2)
	lines = append(lines, joinPadded(headers, widths))
	for _, row := range cells {
		lines = append(lines, joinPadded(row, widths))
	}
	if len(cells) == 0 {
		lines = append(lines, emptyMarker)
	}

	return strings.Join(lines, "\n")
}

// clipCells caps cells at maxCellWidth runes with an ellipsis marker
func clipCells(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		if utf8.RuneCountInString(c) > maxCellWidth {
			runes := []rune(c)
			c = string(runes[:maxCellWidth-3]) + "..."
		}
		out[i] = c
	}
	return out
}

// joinPadded left-aligns each cell to its column width with a two-space
// separator, trimming trailing padding
func joinPadded(cells []string, widths []int) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = c + strings.Repeat(" ", widths[i]-utf8.RuneCountInString(c))
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}
