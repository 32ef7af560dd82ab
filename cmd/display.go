package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pqlens/pqlens/model"
	"github.com/pqlens/pqlens/tabular"
)

// display is the static, non-interactive rendering path
type display struct {
	formatter tabular.Formatter
	out       io.Writer
}

func newDisplay(formatter tabular.Formatter, out io.Writer) *display {
	return &display{
		formatter: formatter,
		out:       out,
	}
}

// showSummary prints the dataset structure: shape, column names and types.
// It is printed for every dataset, including empty ones, so output stays
// consistent across files.
func (d *display) showSummary(ds *model.Dataset) {
	fmt.Fprintf(d.out, "\nParquet file shape: (%d, %d)\n", ds.RowCount(), ds.ColumnCount())

	if ds.ColumnCount() == 0 {
		fmt.Fprintln(d.out, "\nThis parquet file has no columns.")
		fmt.Fprintln(d.out, "It contains only row metadata without any data columns.")
		if ds.RowCount() > 0 {
			fmt.Fprintf(d.out, "Number of rows: %d\n", ds.RowCount())
		}
		return
	}

	fmt.Fprintln(d.out, "\nColumns:")
	for i, name := range ds.ColumnNames() {
		fmt.Fprintf(d.out, "  %-24s %s\n", name, ds.TypeLabel(i))
	}
}

// showTable prints the summary followed by the first rows of the dataset.
// A rows value exceeding the dataset's row count is silently clamped.
func (d *display) showTable(ds *model.Dataset, rows int, style tabular.Style) {
	d.showSummary(ds)

	if ds.ColumnCount() == 0 {
		return
	}

	if rows < 0 {
		rows = 0
	}
	n := min(rows, ds.RowCount())

	if ds.RowCount() == 0 {
		fmt.Fprintln(d.out, "\nFile structure (no data rows):")
	} else {
		fmt.Fprintf(d.out, "\nFirst %d rows:\n", n)
	}

	headers, grid := extractGrid(ds, 0, n, allColumns(ds))
	fmt.Fprintln(d.out, d.formatter.Render(headers, grid, style))
}

// extractGrid builds the header row and cell grid for the given row window
// and column selection, with the row-number index column first. Shared by the
// static and interactive paths.
func extractGrid(ds *model.Dataset, start, end int, cols []int) (headers []string, rows [][]string) {
	headers = make([]string, 0, len(cols)+1)
	headers = append(headers, "#")
	for _, c := range cols {
		headers = append(headers, ds.ColumnName(c))
	}

	rows = make([][]string, 0, end-start)
	for r := start; r < end; r++ {
		row := make([]string, 0, len(cols)+1)
		row = append(row, strconv.Itoa(r))
		for _, c := range cols {
			row = append(row, ds.Cell(r, c))
		}
		rows = append(rows, row)
	}
	return headers, rows
}

// allColumns returns every column index of the dataset in order
func allColumns(ds *model.Dataset) []int {
	cols := make([]int, ds.ColumnCount())
	for i := range cols {
		cols[i] = i
	}
	return cols
}
