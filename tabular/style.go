package tabular

import (
	"fmt"
	"strings"
)

// Style names a table rendering style
type Style string

const (
	StylePlain     Style = "plain"
	StyleSimple    Style = "simple"
	StyleGithub    Style = "github"
	StyleGrid      Style = "grid"
	StyleFancyGrid Style = "fancy_grid"
	StylePipe      Style = "pipe"
	StyleOrgtbl    Style = "orgtbl"
	StyleJira      Style = "jira"
)

// StyleNames returns the valid style names in their canonical order
func StyleNames() []string {
	return []string{"plain", "simple", "github", "grid", "fancy_grid", "pipe", "orgtbl", "jira"}
}

// ParseStyle validates a style name. The error message lists the valid set.
func ParseStyle(name string) (Style, error) {
	for _, s := range StyleNames() {
		if name == s {
			return Style(name), nil
		}
	}
	return "", fmt.Errorf("invalid table format %q (valid formats: %s)", name, strings.Join(StyleNames(), ", "))
}

// lineSpec describes one horizontal rule: begin/end caps, the fill drawn
// across each column and the separator between columns
type lineSpec struct {
	begin string
	fill  string
	sep   string
	end   string
}

// rowSpec describes the delimiters around and between the cells of one row
type rowSpec struct {
	begin string
	sep   string
	end   string
}

// styleSpec is the full border grammar of one style; nil lines are omitted
type styleSpec struct {
	above       *lineSpec
	belowHeader *lineSpec
	between     *lineSpec
	below       *lineSpec
	header      rowSpec
	row         rowSpec
	padding     int
	alignColons bool // markdown-pipe alignment markers in the header rule
}

var styleSpecs = map[Style]styleSpec{
	StylePlain: {
		header: rowSpec{sep: "  "},
		row:    rowSpec{sep: "  "},
	},
	StyleSimple: {
		belowHeader: &lineSpec{fill: "-", sep: "  "},
		header:      rowSpec{sep: "  "},
		row:         rowSpec{sep: "  "},
	},
	StyleGithub: {
		belowHeader: &lineSpec{begin: "|", fill: "-", sep: "|", end: "|"},
		header:      rowSpec{begin: "|", sep: "|", end: "|"},
		row:         rowSpec{begin: "|", sep: "|", end: "|"},
		padding:     1,
	},
	StyleGrid: {
		above:       &lineSpec{begin: "+", fill: "-", sep: "+", end: "+"},
		belowHeader: &lineSpec{begin: "+", fill: "=", sep: "+", end: "+"},
		between:     &lineSpec{begin: "+", fill: "-", sep: "+", end: "+"},
		below:       &lineSpec{begin: "+", fill: "-", sep: "+", end: "+"},
		header:      rowSpec{begin: "|", sep: "|", end: "|"},
		row:         rowSpec{begin: "|", sep: "|", end: "|"},
		padding:     1,
	},
	StyleFancyGrid: {
		above:       &lineSpec{begin: "╒", fill: "═", sep: "╤", end: "╕"},
		belowHeader: &lineSpec{begin: "╞", fill: "═", sep: "╪", end: "╡"},
		between:     &lineSpec{begin: "├", fill: "─", sep: "┼", end: "┤"},
		below:       &lineSpec{begin: "╘", fill: "═", sep: "╧", end: "╛"},
		header:      rowSpec{begin: "│", sep: "│", end: "│"},
		row:         rowSpec{begin: "│", sep: "│", end: "│"},
		padding:     1,
	},
	StylePipe: {
		belowHeader: &lineSpec{begin: "|", fill: "-", sep: "|", end: "|"},
		header:      rowSpec{begin: "|", sep: "|", end: "|"},
		row:         rowSpec{begin: "|", sep: "|", end: "|"},
		padding:     1,
		alignColons: true,
	},
	StyleOrgtbl: {
		belowHeader: &lineSpec{begin: "|", fill: "-", sep: "+", end: "|"},
		header:      rowSpec{begin: "|", sep: "|", end: "|"},
		row:         rowSpec{begin: "|", sep: "|", end: "|"},
		padding:     1,
	},
	StyleJira: {
		header:  rowSpec{begin: "||", sep: "||", end: "||"},
		row:     rowSpec{begin: "|", sep: "|", end: "|"},
		padding: 1,
	},
}

// specFor resolves a style to its grammar; unrecognized styles render as grid
func specFor(style Style) styleSpec {
	if spec, ok := styleSpecs[style]; ok {
		return spec
	}
	return styleSpecs[StyleGrid]
}
