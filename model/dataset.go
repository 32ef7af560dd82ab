package model

import (
	"github.com/hangxie/parquet-go/v2/parquet"
)

// Column holds the loaded values of one leaf column along with the schema
// information needed to render them.
type Column struct {
	name   string
	typ    parquet.Type
	schema *parquet.SchemaElement
	values []any
}

// NewColumn creates a Column; schema may be nil for columns without
// logical/converted type information.
func NewColumn(name string, typ parquet.Type, schema *parquet.SchemaElement, values []any) Column {
	return Column{
		name:   name,
		typ:    typ,
		schema: schema,
		values: values,
	}
}

// Dataset is an immutable in-memory table loaded from a parquet file.
// Cell values are kept in their decoded Go form and rendered to display
// strings lazily.
type Dataset struct {
	columns []Column
	numRows int
}

// NewDataset creates a Dataset from loaded columns. numRows governs the row
// extent even when the file has zero columns.
func NewDataset(columns []Column, numRows int) *Dataset {
	if numRows < 0 {
		numRows = 0
	}
	return &Dataset{
		columns: columns,
		numRows: numRows,
	}
}

// RowCount returns the number of rows
func (d *Dataset) RowCount() int {
	return d.numRows
}

// ColumnCount returns the number of columns
func (d *Dataset) ColumnCount() int {
	return len(d.columns)
}

// ColumnNames returns the ordered column names
func (d *Dataset) ColumnNames() []string {
	names := make([]string, len(d.columns))
	for i, col := range d.columns {
		names[i] = col.name
	}
	return names
}

// ColumnName returns the name of a single column, or "" when out of range
func (d *Dataset) ColumnName(col int) string {
	if col < 0 || col >= len(d.columns) {
		return ""
	}
	return d.columns[col].name
}

// Cell renders the value at (row, col) to its display string. Out-of-range
// coordinates render as the empty string so callers never need to bounds-check
// before display.
func (d *Dataset) Cell(row, col int) string {
	if col < 0 || col >= len(d.columns) {
		return ""
	}
	c := d.columns[col]
	if row < 0 || row >= len(c.values) {
		return ""
	}
	return FormatValue(c.values[row], c.typ, c.schema)
}

// TypeLabel returns a human readable type description for a column, combining
// the physical type with the logical type when one is set.
func (d *Dataset) TypeLabel(col int) string {
	if col < 0 || col >= len(d.columns) {
		return "-"
	}
	c := d.columns[col]
	label := c.typ.String()
	if c.schema != nil {
		if logical := formatLogicalType(c.schema.LogicalType); logical != "-" {
			label += " (" + logical + ")"
		}
	}
	return label
}
