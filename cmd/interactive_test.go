package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/hangxie/parquet-go/v2/parquet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pqlens/pqlens/model"
	"github.com/pqlens/pqlens/tabular"
)

// scriptTerminal replays a fixed key sequence and records every painted frame
type scriptTerminal struct {
	width   int
	height  int
	keys    []Key
	frames  [][]string
	readErr error
	closed  bool
}

func (t *scriptTerminal) Size() (int, int) { return t.width, t.height }

func (t *scriptTerminal) Paint(lines []string) {
	frame := make([]string, len(lines))
	copy(frame, lines)
	t.frames = append(t.frames, frame)
}

func (t *scriptTerminal) ReadKey() (Key, error) {
	if len(t.keys) == 0 {
		if t.readErr != nil {
			return KeyUnknown, t.readErr
		}
		return KeyQuit, nil
	}
	key := t.keys[0]
	t.keys = t.keys[1:]
	return key, nil
}

func (t *scriptTerminal) Interrupt() {}

func (t *scriptTerminal) Close() { t.closed = true }

func gridDataset(rows, cols int) *model.Dataset {
	columns := make([]model.Column, cols)
	for c := range cols {
		values := make([]any, rows)
		for r := range rows {
			values[r] = int64(r*cols + c)
		}
		columns[c] = model.NewColumn(fmt.Sprintf("col%02d", c), parquet.Type_INT64, nil, values)
	}
	return model.NewDataset(columns, rows)
}

func newTestViewer(ds *model.Dataset, term *scriptTerminal, pageSize int) *InteractiveViewer {
	iv := NewInteractiveViewer(ds, tabular.NewPlainFormatter(), tabular.StylePlain, pageSize)
	iv.term = term
	return iv
}

func Test_InteractiveViewer_Paging(t *testing.T) {
	term := &scriptTerminal{
		width:  90,
		height: 24,
		keys:   []Key{KeyPageDown, KeyPageDown, KeyQuit},
	}
	iv := newTestViewer(gridDataset(150, 1), term, 10)

	require.NoError(t, iv.Run())
	require.Len(t, term.frames, 3)
	assert.True(t, term.closed)

	assert.Equal(t, "--- Showing rows 1-10 of 150 (Page 1/15) ---", term.frames[0][0])
	assert.Equal(t, "--- Showing rows 11-20 of 150 (Page 2/15) ---", term.frames[1][0])
	assert.Equal(t, "--- Showing rows 21-30 of 150 (Page 3/15) ---", term.frames[2][0])
}

func Test_InteractiveViewer_PagingClampsAtEnd(t *testing.T) {
	keys := make([]Key, 0, 21)
	for range 20 {
		keys = append(keys, KeyPageDown)
	}
	keys = append(keys, KeyQuit)

	term := &scriptTerminal{width: 90, height: 24, keys: keys}
	iv := newTestViewer(gridDataset(150, 1), term, 10)

	require.NoError(t, iv.Run())
	last := term.frames[len(term.frames)-1]
	assert.Equal(t, "--- Showing rows 141-150 of 150 (Page 15/15) ---", last[0])
}

func Test_InteractiveViewer_ColumnScrolling(t *testing.T) {
	term := &scriptTerminal{
		width:  90,
		height: 24,
		keys:   []Key{KeyRight, KeyQuit},
	}
	iv := newTestViewer(gridDataset(10, 20), term, 10)

	require.NoError(t, iv.Run())
	require.Len(t, term.frames, 2)

	// width 90 leaves room for five data columns next to the index column
	assert.Contains(t, term.frames[0][1], "Columns 1-5 of 20")
	assert.Contains(t, term.frames[1][1], "Columns 2-6 of 20")

	// the first frame's table shows the first window's headers
	assert.Contains(t, term.frames[0][3], "col00")
	assert.Contains(t, term.frames[0][3], "col04")
	assert.NotContains(t, term.frames[0][3], "col05")
}

func Test_InteractiveViewer_ColumnScrollClampsAtLast(t *testing.T) {
	keys := make([]Key, 0, 31)
	for range 30 {
		keys = append(keys, KeyRight)
	}
	keys = append(keys, KeyQuit)

	term := &scriptTerminal{width: 90, height: 24, keys: keys}
	iv := newTestViewer(gridDataset(10, 20), term, 10)

	require.NoError(t, iv.Run())
	last := term.frames[len(term.frames)-1]
	assert.Contains(t, last[1], "Columns 20-20 of 20")
}

func Test_InteractiveViewer_RowAndColumnKeys(t *testing.T) {
	term := &scriptTerminal{
		width:  90,
		height: 24,
		keys:   []Key{KeyDown, KeyDown, KeyUp, KeyRight, KeyLeft, KeyUnknown, KeyQuit},
	}
	iv := newTestViewer(gridDataset(30, 3), term, 10)

	require.NoError(t, iv.Run())
	require.Len(t, term.frames, 7)

	assert.Equal(t, "--- Showing rows 1-10 of 30 (Page 1/3) ---", term.frames[0][0])
	assert.Equal(t, "--- Showing rows 2-11 of 30 (Page 1/3) ---", term.frames[1][0])
	assert.Equal(t, "--- Showing rows 3-12 of 30 (Page 1/3) ---", term.frames[2][0])
	assert.Equal(t, "--- Showing rows 2-11 of 30 (Page 1/3) ---", term.frames[3][0])

	// unknown keys redraw without changing the window
	assert.Equal(t, term.frames[5], term.frames[6])
}

func Test_InteractiveViewer_Copy(t *testing.T) {
	term := &scriptTerminal{
		width:  90,
		height: 24,
		keys:   []Key{KeyCopy, KeyQuit},
	}
	iv := newTestViewer(gridDataset(10, 2), term, 10)

	require.NoError(t, iv.Run())
	require.Len(t, term.frames, 2)

	// the outcome notice shows on the frame after the copy, then clears
	assert.NotContains(t, term.frames[0][1], "clipboard")
	assert.Regexp(t, `copied \d+ rows to clipboard|clipboard unavailable`, term.frames[1][1])
}

func Test_InteractiveViewer_NoColumns(t *testing.T) {
	term := &scriptTerminal{width: 90, height: 24}
	iv := newTestViewer(model.NewDataset(nil, 5), term, 10)

	// nothing to navigate; the terminal is never started
	require.NoError(t, iv.Run())
	assert.Empty(t, term.frames)
	assert.False(t, term.closed)
}

func Test_InteractiveViewer_NoRows(t *testing.T) {
	term := &scriptTerminal{width: 90, height: 24}
	iv := newTestViewer(gridDataset(0, 3), term, 10)

	require.NoError(t, iv.Run())
	assert.Empty(t, term.frames)
	assert.False(t, term.closed)
}

func Test_InteractiveViewer_ReadError(t *testing.T) {
	term := &scriptTerminal{
		width:   90,
		height:  24,
		readErr: errors.New("tty gone"),
	}
	iv := newTestViewer(gridDataset(10, 1), term, 10)

	err := iv.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive session aborted")
	assert.True(t, term.closed, "terminal must be restored on error paths")
}

func Test_InteractiveViewer_ColumnWidths(t *testing.T) {
	ds := model.NewDataset([]model.Column{
		model.NewColumn("a", parquet.Type_BYTE_ARRAY, nil, []any{"x"}),
		model.NewColumn("b", parquet.Type_BYTE_ARRAY, nil, []any{"this cell is rather wide for a column"}),
	}, 1)
	iv := newTestViewer(ds, nil, 10)

	widths := iv.columnWidths(0, 1)
	require.Len(t, widths, 2)
	assert.Equal(t, minColWidth, widths[0])
	assert.Equal(t, 37, widths[1])
}
