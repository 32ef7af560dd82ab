// Package tabular renders grids of header and cell strings as aligned text
// tables in a number of widely used styles. It offers two interchangeable
// formatter variants: a boxed renderer that draws full borders, and a plain
// space-padded fallback with no dependencies beyond the standard library.
package tabular

import (
	"os"
	"strings"
)

// Formatter turns a header row plus data rows into a renderable text block.
// Implementations must handle zero rows (headers plus an explicit empty-state
// marker) and zero columns (a synthesized index column) without failing.
type Formatter interface {
	Render(headers []string, rows [][]string, style Style) string
}

// emptyMarker is appended below the header when there are no data rows
const emptyMarker = "(no data rows)"

// indexHeader is synthesized when a caller renders a table with no columns
const indexHeader = "#"

// Default selects the formatter variant for the current environment: the
// boxed renderer when the locale can display box-drawing characters, the
// plain fallback otherwise.
func Default() Formatter {
	if localeSupportsUnicode() {
		return NewGridFormatter()
	}
	return NewPlainFormatter()
}

// localeSupportsUnicode checks the usual locale variables for a UTF-8
// charmap; an unset locale is treated as UTF-8 capable
func localeSupportsUnicode() bool {
	for _, name := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		if v := os.Getenv(name); v != "" {
			return strings.Contains(strings.ToLower(v), "utf")
		}
	}
	return true
}
