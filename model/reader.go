package model

import (
	"fmt"
	"os"
	"strings"

	"github.com/hangxie/parquet-go/v2/parquet"
	"github.com/hangxie/parquet-go/v2/reader"
	pio "github.com/hangxie/parquet-tools/io"
)

// Read loads the full contents of a parquet file into a Dataset. The uri can
// be a local path or any object store URI supported by parquet-tools
// (s3://, gs://, wasbs://, http:// and friends); local paths are validated
// before any parquet parsing is attempted.
func Read(uri string, option pio.ReadOption) (*Dataset, error) {
	if isLocal(uri) {
		if err := checkLocalFile(uri); err != nil {
			return nil, err
		}
	}

	fr, err := pio.NewParquetFileReader(uri, option)
	if err != nil {
		return nil, fmt.Errorf("invalid parquet file %s (%v): %w", uri, err, ErrNotParquet)
	}
	defer func() { _ = fr.PFile.Close() }()

	footer := fr.Footer
	if footer == nil {
		return nil, fmt.Errorf("invalid parquet file %s (missing footer): %w", uri, ErrNotParquet)
	}

	leaves := leafColumns(footer.Schema)
	numRows := footer.NumRows

	columns := make([]Column, len(leaves))
	for i, leaf := range leaves {
		columns[i] = NewColumn(strings.Join(leaf.path, "."), leaf.elem.GetType(), leaf.elem, nil)
	}

	if len(leaves) > 0 && numRows > 0 {
		cr, err := reader.NewParquetColumnReader(fr.PFile, 4)
		if err != nil {
			return nil, fmt.Errorf("invalid parquet file %s (%v): %w", uri, err, ErrNotParquet)
		}
		defer func() { _ = cr.ReadStopWithError() }()

		for i, leaf := range leaves {
			count := leafValueCount(footer, i)
			if count <= 0 {
				count = numRows
			}
			values, rls, _, err := cr.ReadColumnByIndex(int64(i), count)
			if err != nil {
				return nil, fmt.Errorf("cannot read column %s of %s (%v): %w",
					strings.Join(leaf.path, "."), uri, err, ErrNotParquet)
			}
			columns[i] = NewColumn(strings.Join(leaf.path, "."), leaf.elem.GetType(), leaf.elem, groupByRows(values, rls, numRows))
		}
	}

	return NewDataset(columns, int(numRows)), nil
}

// isLocal reports whether uri is a plain filesystem path rather than an
// object store URI
func isLocal(uri string) bool {
	return !strings.Contains(uri, "://")
}

// checkLocalFile validates existence, readability and non-emptiness of a
// local file before the parquet layer touches it
func checkLocalFile(path string) error {
	stat, err := os.Stat(path)
	switch {
	case os.IsNotExist(err):
		return fmt.Errorf("%s: %w", path, ErrFileNotFound)
	case os.IsPermission(err):
		return fmt.Errorf("%s: %w", path, ErrPermissionDenied)
	case err != nil:
		return fmt.Errorf("%s (%v): %w", path, err, ErrFileNotFound)
	}

	if stat.Size() == 0 {
		return fmt.Errorf("%s: %w", path, ErrEmptyFile)
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsPermission(err) {
			return fmt.Errorf("%s: %w", path, ErrPermissionDenied)
		}
		return fmt.Errorf("%s (%v): %w", path, err, ErrPermissionDenied)
	}
	_ = f.Close()

	return nil
}

// leafColumn pairs a leaf schema element with its full dotted path
type leafColumn struct {
	path []string
	elem *parquet.SchemaElement
}

// leafColumns walks the flat pre-order schema list and returns the leaf
// columns in file order, reconstructing each path from the group nesting
func leafColumns(schema []*parquet.SchemaElement) []leafColumn {
	if len(schema) == 0 {
		return nil
	}

	type frame struct {
		name      string
		remaining int
	}

	var stack []frame
	var out []leafColumn

	// schema[0] is the root group
	for _, elem := range schema[1:] {
		for len(stack) > 0 && stack[len(stack)-1].remaining == 0 {
			stack = stack[:len(stack)-1]
		}
		if len(stack) > 0 {
			stack[len(stack)-1].remaining--
		}

		path := make([]string, 0, len(stack)+1)
		for _, f := range stack {
			path = append(path, f.name)
		}
		path = append(path, elem.Name)

		children := 0
		if elem.NumChildren != nil {
			children = int(*elem.NumChildren)
		}
		if children > 0 {
			stack = append(stack, frame{name: elem.Name, remaining: children})
			continue
		}

		out = append(out, leafColumn{path: path, elem: elem})
	}

	return out
}

// leafValueCount sums the stored value count of one leaf column across the
// file's row groups; repeated fields store more values than the file has rows
func leafValueCount(footer *parquet.FileMetaData, col int) int64 {
	var n int64
	for _, rg := range footer.RowGroups {
		if col >= len(rg.Columns) {
			continue
		}
		if md := rg.Columns[col].GetMetaData(); md != nil {
			n += md.NumValues
		}
	}
	return n
}

// groupByRows reassembles leaf values into one entry per row. Flat columns
// carry one value per row and pass through unchanged. Values of repeated
// fields continue the current row while their repetition level is non-zero,
// and each such row becomes a slice.
func groupByRows(values []any, rls []int32, numRows int64) []any {
	repeated := false
	for _, rl := range rls {
		if rl > 0 {
			repeated = true
			break
		}
	}
	if !repeated || len(rls) != len(values) {
		return alignToRows(values, numRows)
	}

	rows := make([]any, 0, numRows)
	var current []any
	for i, v := range values {
		if rls[i] == 0 && current != nil {
			rows = append(rows, current)
			current = nil
		}
		current = append(current, v)
	}
	if current != nil {
		rows = append(rows, current)
	}
	return alignToRows(rows, numRows)
}

// alignToRows pads or truncates a value slice to exactly numRows entries so
// every column indexes uniformly by row
func alignToRows(values []any, numRows int64) []any {
	n := int(numRows)
	if len(values) == n {
		return values
	}
	if len(values) > n {
		return values[:n]
	}
	aligned := make([]any, n)
	copy(aligned, values)
	return aligned
}
