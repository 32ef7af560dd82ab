package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-runewidth"

	"github.com/pqlens/pqlens/model"
	"github.com/pqlens/pqlens/tabular"
)

// InteractiveViewer drives the paged navigation session over a loaded
// dataset. It owns the viewport state for the lifetime of the session; the
// dataset itself is read-only.
type InteractiveViewer struct {
	ds        *model.Dataset
	formatter tabular.Formatter
	style     tabular.Style
	term      Terminal
	view      viewport

	// last rendered window, kept for clipboard export
	lastCols  []int
	lastStart int
	lastEnd   int
	notice    string
}

// NewInteractiveViewer creates a viewer; the terminal variant is selected
// lazily when Run starts so construction never touches the TTY.
func NewInteractiveViewer(ds *model.Dataset, formatter tabular.Formatter, style tabular.Style, pageSize int) *InteractiveViewer {
	return &InteractiveViewer{
		ds:        ds,
		formatter: formatter,
		style:     style,
		view:      newViewport(pageSize),
	}
}

// Run starts the interactive session and blocks until the user quits, input
// ends, or a display error occurs. The terminal mode is restored on every
// exit path, including interrupt signals.
func (iv *InteractiveViewer) Run() error {
	if iv.ds.ColumnCount() == 0 {
		fmt.Println("\nThis parquet file has no columns.")
		fmt.Println("It contains only row metadata without any data columns.")
		if iv.ds.RowCount() > 0 {
			fmt.Printf("Number of rows: %d\n", iv.ds.RowCount())
		}
		fmt.Println("\nNothing to display in interactive mode.")
		return nil
	}
	if iv.ds.RowCount() == 0 {
		fmt.Printf("\nThis parquet file has %d columns but no data rows.\n", iv.ds.ColumnCount())
		fmt.Println("\nNothing to navigate in interactive mode.")
		return nil
	}

	if iv.term == nil {
		iv.term = newTerminal()
	}
	defer iv.term.Close()

	// translate interrupt signals into a normal quit so Close always runs
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer func() {
		signal.Stop(sigCh)
		close(sigCh)
	}()
	go func() {
		if _, ok := <-sigCh; ok {
			iv.term.Interrupt()
		}
	}()

	return iv.loop()
}

// loop is the navigation state machine: render, block on one key, apply the
// transition, repeat. The redraw always reflects the latest transition before
// the next key is read.
func (iv *InteractiveViewer) loop() error {
	rowCount := iv.ds.RowCount()
	colCount := iv.ds.ColumnCount()

	for {
		width, _ := iv.term.Size()
		iv.view.clip(rowCount, colCount)
		iv.term.Paint(iv.renderFrame(width))

		key, err := iv.term.ReadKey()
		if err != nil {
			return fmt.Errorf("interactive session aborted: %w", err)
		}

		switch key {
		case KeyUp:
			iv.view.rowUp(rowCount)
		case KeyDown:
			iv.view.rowDown(rowCount)
		case KeyPageUp:
			iv.view.pageUp(rowCount)
		case KeyPageDown:
			iv.view.pageDown(rowCount)
		case KeyLeft:
			iv.view.colLeft(colCount)
		case KeyRight:
			iv.view.colRight(colCount)
		case KeyCopy:
			iv.copyVisible()
		case KeyQuit:
			return nil
		case KeyUnknown:
			// redraw only; also covers terminal resize
		}
	}
}

// renderFrame produces the full screen content for the current viewport and
// terminal width: status lines followed by the rendered table
func (iv *InteractiveViewer) renderFrame(width int) []string {
	rowCount := iv.ds.RowCount()
	colCount := iv.ds.ColumnCount()

	start, end := iv.view.rowWindow(rowCount)
	widths := iv.columnWidths(start, end)

	available := width - indexColWidth - separatorWidth - borderMargin - extraMargin
	visible := fitColumns(available, widths, iv.view.colOffset)

	iv.lastCols = visible
	iv.lastStart = start
	iv.lastEnd = end

	current, total := iv.view.page(rowCount)
	status := fmt.Sprintf("--- Showing rows %d-%d of %d (Page %d/%d) ---", start+1, end, rowCount, current, total)

	colRange := ""
	if len(visible) > 0 {
		colRange = fmt.Sprintf("Columns %d-%d of %d", visible[0]+1, visible[len(visible)-1]+1, colCount)
	}
	help := fmt.Sprintf("%s | Up/Down: row | PgUp/PgDn: page | Left/Right: columns | (c)opy | (q)uit", colRange)
	if iv.notice != "" {
		help += " | " + iv.notice
		iv.notice = ""
	}

	headers, grid := extractGrid(iv.ds, start, end, visible)
	table := iv.formatter.Render(headers, grid, iv.style)

	frame := []string{status, help, ""}
	return append(frame, strings.Split(table, "\n")...)
}

// columnWidths estimates the rendered width of every data column from its
// header and the cells in the current row window, clamped to the
// [minColWidth, maxColWidth] range
func (iv *InteractiveViewer) columnWidths(start, end int) []int {
	// sample at most ten rows per column, the way a glance estimates width
	sampleEnd := min(end, start+10)

	widths := make([]int, iv.ds.ColumnCount())
	for c := range widths {
		w := runewidth.StringWidth(iv.ds.ColumnName(c))
		for r := start; r < sampleEnd; r++ {
			if cw := runewidth.StringWidth(iv.ds.Cell(r, c)); cw > w {
				w = cw
			}
		}
		widths[c] = clamp(w, minColWidth, maxColWidth)
	}
	return widths
}

// copyVisible exports the currently visible window, headers included, as
// tab-separated text to the system clipboard. The result is reported on the
// next frame's status line; clipboard failures are never fatal.
func (iv *InteractiveViewer) copyVisible() {
	headers, grid := extractGrid(iv.ds, iv.lastStart, iv.lastEnd, iv.lastCols)

	var b strings.Builder
	b.WriteString(strings.Join(headers, "\t"))
	b.WriteString("\n")
	for _, row := range grid {
		b.WriteString(strings.Join(row, "\t"))
		b.WriteString("\n")
	}

	if err := clipboard.WriteAll(b.String()); err != nil {
		iv.notice = "clipboard unavailable"
		return
	}
	iv.notice = fmt.Sprintf("copied %d rows to clipboard", len(grid))
}
