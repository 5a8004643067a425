package xlsx

import (
	"fmt"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

// sheetWriter keeps the first error and tracks the widest text per column so
// widths can be set once all cells are written.
type sheetWriter struct {
	f      *excelize.File
	widths []int
	err    error
}

func (w *sheetWriter) cell(row, col int) string {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil && w.err == nil {
		w.err = err
	}
	return name
}

func (w *sheetWriter) set(row, col int, v interface{}) {
	if w.err != nil {
		return
	}
	if err := w.f.SetCellValue(SheetName, w.cell(row, col), v); err != nil {
		w.err = err
		return
	}
	w.track(col, utf8.RuneCountInString(fmt.Sprint(v)))
}

func (w *sheetWriter) track(col, n int) {
	if col < 1 || col > len(w.widths) {
		return
	}
	if n > w.widths[col-1] {
		w.widths[col-1] = n
	}
}

func (w *sheetWriter) style(r1, c1, r2, c2, id int) {
	if w.err != nil {
		return
	}
	if err := w.f.SetCellStyle(SheetName, w.cell(r1, c1), w.cell(r2, c2), id); err != nil {
		w.err = err
	}
}

// merge joins row 1 from column first to last. Every merged cell reports the
// first cell's value, so text counts toward each column's width.
func (w *sheetWriter) merge(first, last int, text string, id int) {
	if w.err != nil {
		return
	}
	from, to := w.cell(1, first), w.cell(1, last)
	for c := first; c <= last; c++ {
		w.track(c, utf8.RuneCountInString(text))
	}
	if err := w.f.MergeCell(SheetName, from, to); err != nil {
		w.err = err
		return
	}
	if err := w.f.SetCellStyle(SheetName, from, to, id); err != nil {
		w.err = err
	}
}

func (w *sheetWriter) applyWidths() error {
	for i, n := range w.widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		// every column has blank cells (spacer rows), which count as
		// emptyCellWidth characters
		if n < emptyCellWidth {
			n = emptyCellWidth
		}
		if err := w.f.SetColWidth(SheetName, col, col, float64(n+2)); err != nil {
			return err
		}
	}
	return nil
}
