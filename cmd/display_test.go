package cmd

import (
	"bytes"
	"testing"

	"github.com/hangxie/parquet-go/v2/parquet"
	"github.com/stretchr/testify/assert"

	"github.com/pqlens/pqlens/model"
	"github.com/pqlens/pqlens/tabular"
)

func twoColDataset() *model.Dataset {
	return model.NewDataset([]model.Column{
		model.NewColumn("id", parquet.Type_INT64, nil, []any{int64(1), int64(2)}),
		model.NewColumn("name", parquet.Type_BYTE_ARRAY, nil, []any{"alice", "bob"}),
	}, 2)
}

func Test_Display_ShowSummary(t *testing.T) {
	var out bytes.Buffer
	newDisplay(tabular.NewPlainFormatter(), &out).showSummary(twoColDataset())

	got := out.String()
	assert.Contains(t, got, "Parquet file shape: (2, 2)")
	assert.Contains(t, got, "Columns:")
	assert.Contains(t, got, "  id                       INT64")
	assert.Contains(t, got, "  name                     BYTE_ARRAY")
}

func Test_Display_ShowSummary_NoColumns(t *testing.T) {
	var out bytes.Buffer
	newDisplay(tabular.NewPlainFormatter(), &out).showSummary(model.NewDataset(nil, 5))

	got := out.String()
	assert.Contains(t, got, "Parquet file shape: (5, 0)")
	assert.Contains(t, got, "This parquet file has no columns.")
	assert.Contains(t, got, "Number of rows: 5")
}

func Test_Display_ShowTable(t *testing.T) {
	var out bytes.Buffer
	newDisplay(tabular.NewPlainFormatter(), &out).showTable(twoColDataset(), 10, tabular.StyleGrid)

	got := out.String()
	// the requested row count is clamped to what the file has
	assert.Contains(t, got, "First 2 rows:")
	assert.Contains(t, got, "#  id  name")
	assert.Contains(t, got, "0  1   alice")
	assert.Contains(t, got, "1  2   bob")
}

func Test_Display_ShowTable_FewerRows(t *testing.T) {
	var out bytes.Buffer
	newDisplay(tabular.NewPlainFormatter(), &out).showTable(twoColDataset(), 1, tabular.StyleGrid)

	got := out.String()
	assert.Contains(t, got, "First 1 rows:")
	assert.Contains(t, got, "0  1   alice")
	assert.NotContains(t, got, "bob")
}

func Test_Display_ShowTable_NoRows(t *testing.T) {
	ds := model.NewDataset([]model.Column{
		model.NewColumn("id", parquet.Type_INT64, nil, nil),
	}, 0)

	var out bytes.Buffer
	newDisplay(tabular.NewPlainFormatter(), &out).showTable(ds, 10, tabular.StyleGrid)

	got := out.String()
	assert.Contains(t, got, "File structure (no data rows):")
	assert.Contains(t, got, "(no data rows)")
}

func Test_Display_ShowTable_NoColumns(t *testing.T) {
	var out bytes.Buffer
	newDisplay(tabular.NewPlainFormatter(), &out).showTable(model.NewDataset(nil, 0), 10, tabular.StyleGrid)

	got := out.String()
	assert.Contains(t, got, "This parquet file has no columns.")
	assert.NotContains(t, got, "First")
}

func Test_ExtractGrid(t *testing.T) {
	ds := twoColDataset()

	headers, rows := extractGrid(ds, 0, 2, []int{0, 1})
	assert.Equal(t, []string{"#", "id", "name"}, headers)
	assert.Equal(t, [][]string{
		{"0", "1", "alice"},
		{"1", "2", "bob"},
	}, rows)

	// column selection drives both headers and cells
	headers, rows = extractGrid(ds, 1, 2, []int{1})
	assert.Equal(t, []string{"#", "name"}, headers)
	assert.Equal(t, [][]string{{"1", "bob"}}, rows)

	// empty window yields headers only
	headers, rows = extractGrid(ds, 0, 0, []int{0})
	assert.Equal(t, []string{"#", "id"}, headers)
	assert.Empty(t, rows)
}

func Test_AllColumns(t *testing.T) {
	assert.Equal(t, []int{0, 1}, allColumns(twoColDataset()))
	assert.Empty(t, allColumns(model.NewDataset(nil, 0)))
}
