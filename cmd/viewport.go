package cmd

// Display geometry constants for the interactive view
const (
	minColWidth    = 10  // narrowest rendered data column
	maxColWidth    = 100 // truncation threshold for headers and cells
	indexColWidth  = 6   // row number column, always visible
	separatorWidth = 3   // per-column border and padding allowance
	borderMargin   = 4   // outer table border
	extraMargin    = 10  // slack so the table never wraps
)

// viewport tracks the visible window into the dataset during an interactive
// session. Offsets are clamped by every transition so they always satisfy
// 0 <= rowOffset <= rowCount-1 and 0 <= colOffset <= colCount-1 (both zero
// for empty extents).
type viewport struct {
	rowOffset int
	colOffset int
	pageSize  int
}

func newViewport(pageSize int) viewport {
	if pageSize < 1 {
		pageSize = 1
	}
	return viewport{pageSize: pageSize}
}

// clip re-clamps both offsets against the dataset extents, e.g. after a
// terminal resize
func (v *viewport) clip(rowCount, colCount int) {
	v.rowOffset = clamp(v.rowOffset, 0, rowCount-1)
	v.colOffset = clamp(v.colOffset, 0, colCount-1)
}

// rowUp scrolls one row towards the top
func (v *viewport) rowUp(rowCount int) {
	v.rowOffset = clamp(v.rowOffset-1, 0, rowCount-1)
}

// rowDown scrolls one row towards the bottom; the final partial page is
// reachable row by row
func (v *viewport) rowDown(rowCount int) {
	v.rowOffset = clamp(v.rowOffset+1, 0, rowCount-1)
}

// pageUp scrolls one full page towards the top
func (v *viewport) pageUp(rowCount int) {
	v.rowOffset = clamp(v.rowOffset-v.pageSize, 0, rowCount-1)
}

// pageDown scrolls one full page towards the bottom, clamped so the last page
// is always a full page when the dataset has one
func (v *viewport) pageDown(rowCount int) {
	v.rowOffset = clamp(v.rowOffset+v.pageSize, 0, max(0, rowCount-v.pageSize))
}

// colLeft scrolls one column towards the first column
func (v *viewport) colLeft(colCount int) {
	v.colOffset = clamp(v.colOffset-1, 0, colCount-1)
}

// colRight scrolls one column towards the last column; the offset stops at
// the last column so the view never empties
func (v *viewport) colRight(colCount int) {
	v.colOffset = clamp(v.colOffset+1, 0, colCount-1)
}

// rowWindow returns the half-open row range visible on the current page
func (v *viewport) rowWindow(rowCount int) (start, end int) {
	start = clamp(v.rowOffset, 0, rowCount-1)
	end = min(start+v.pageSize, rowCount)
	if rowCount == 0 {
		return 0, 0
	}
	return start, end
}

// page returns the 1-based current page number and the total page count
func (v *viewport) page(rowCount int) (current, total int) {
	total = (rowCount + v.pageSize - 1) / v.pageSize
	if total < 1 {
		total = 1
	}
	current = v.rowOffset/v.pageSize + 1
	if current > total {
		current = total
	}
	return current, total
}

// fitColumns greedily selects the data columns that fit into available width,
// scanning left to right from colOffset. The index column's cost is already
// deducted by the caller. At least one data column is always selected even
// when it overflows, so a narrow terminal never renders an empty view.
func fitColumns(available int, widths []int, colOffset int) []int {
	if colOffset < 0 || colOffset >= len(widths) {
		return nil
	}

	var visible []int
	for i := colOffset; i < len(widths); i++ {
		cost := widths[i] + separatorWidth
		if len(visible) > 0 && cost > available {
			break
		}
		visible = append(visible, i)
		available -= cost
	}
	return visible
}

func clamp(x, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
