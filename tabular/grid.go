package tabular

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// maxCellWidth bounds the rendered width of any single cell; wider content is
// truncated with an ellipsis marker
const maxCellWidth = 100

// GridFormatter is the boxed renderer. It draws the full border grammar of
// the requested style, measures cells by display width and right-aligns
// numeric columns.
type GridFormatter struct{}

// NewGridFormatter creates the boxed formatter variant
func NewGridFormatter() *GridFormatter {
	return &GridFormatter{}
}

// Render implements Formatter
func (f *GridFormatter) Render(headers []string, rows [][]string, style Style) string {
	spec := specFor(style)

	if len(headers) == 0 {
		headers = []string{indexHeader}
	}
	headers = truncateCells(headers)

	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = truncateCells(padTo(row, len(headers)))
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range cells {
		for i, c := range row {
			if w := runewidth.StringWidth(c); w > widths[i] {
				widths[i] = w
			}
		}
	}

	rightAlign := numericColumns(cells, len(headers))

	var lines []string
	if spec.above != nil {
		lines = append(lines, rule(*spec.above, widths, spec.padding))
	}
	lines = append(lines, renderRow(spec.header, headers, widths, rightAlign, spec.padding))
	if spec.belowHeader != nil {
		if spec.alignColons {
			lines = append(lines, alignRule(*spec.belowHeader, widths, rightAlign))
		} else {
			lines = append(lines, rule(*spec.belowHeader, widths, spec.padding))
		}
	}
	for i, row := range cells {
		if i > 0 && spec.between != nil {
			lines = append(lines, rule(*spec.between, widths, spec.padding))
		}
		lines = append(lines, renderRow(spec.row, row, widths, rightAlign, spec.padding))
	}
	if spec.below != nil {
		lines = append(lines, rule(*spec.below, widths, spec.padding))
	}
	if len(cells) == 0 {
		lines = append(lines, emptyMarker)
	}

	return strings.Join(lines, "\n")
}

// truncateCells caps every cell at maxCellWidth display columns
func truncateCells(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = runewidth.Truncate(c, maxCellWidth, "...")
	}
	return out
}

// padTo extends a short row with empty cells so it has exactly n columns
func padTo(row []string, n int) []string {
	if len(row) >= n {
		return row[:n]
	}
	padded := make([]string, n)
	copy(padded, row)
	return padded
}

// numericColumns marks columns whose non-empty cells all parse as numbers;
// those render right-aligned
func numericColumns(rows [][]string, n int) []bool {
	numeric := make([]bool, n)
	for i := range numeric {
		seen := false
		ok := true
		for _, row := range rows {
			c := row[i]
			if c == "" {
				continue
			}
			seen = true
			if _, err := strconv.ParseFloat(c, 64); err != nil {
				ok = false
				break
			}
		}
		numeric[i] = seen && ok
	}
	return numeric
}

// rule draws one horizontal border line
func rule(l lineSpec, widths []int, padding int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat(l.fill, w+2*padding)
	}
	return l.begin + strings.Join(parts, l.sep) + l.end
}

// alignRule draws the markdown-pipe header rule with per-column alignment
// colons
func alignRule(l lineSpec, widths []int, rightAlign []bool) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		if rightAlign[i] {
			parts[i] = strings.Repeat(l.fill, w+1) + ":"
		} else {
			parts[i] = ":" + strings.Repeat(l.fill, w+1)
		}
	}
	return l.begin + strings.Join(parts, l.sep) + l.end
}

// renderRow draws one header or data row
func renderRow(r rowSpec, cells []string, widths []int, rightAlign []bool, padding int) string {
	pad := strings.Repeat(" ", padding)
	parts := make([]string, len(cells))
	for i, c := range cells {
		if rightAlign[i] {
			parts[i] = pad + runewidth.FillLeft(c, widths[i]) + pad
		} else {
			parts[i] = pad + runewidth.FillRight(c, widths[i]) + pad
		}
	}
	line := r.begin + strings.Join(parts, r.sep) + r.end
	if r.end == "" {
		line = strings.TrimRight(line, " ")
	}
	return line
}
