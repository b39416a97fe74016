package engine

// InteractiveCellSize returns the pixel size of one cell of the main grid
// for a viewport, leaving room for page padding and the control bar. It
// never changes the grid itself; hosts call it again on resize.
func InteractiveCellSize(viewW, viewH, rows, cols int) int {
	if rows <= 0 || cols <= 0 {
		return 1
	}
	size := min((viewW-32)/cols, (viewH-200)/rows, 100)
	if size < 1 {
		size = 1
	}
	return size
}

// BackgroundDims returns the grid needed to cover a viewport with cells of
// the given size, rounding partial cells up.
func BackgroundDims(viewW, viewH, cellSize int) (rows, cols int) {
	if cellSize <= 0 {
		cellSize = 1
	}
	rows = max(ceilDiv(viewH, cellSize), 1)
	cols = max(ceilDiv(viewW, cellSize), 1)
	return rows, cols
}

// PreviewLayout sizes cells so a patternRows x patternCols bitmap plus
// margin cells fits the viewport, then fills the viewport with whole cells.
func PreviewLayout(viewW, viewH, patternRows, patternCols, margin int) (cellSize, rows, cols int) {
	spanW, spanH := max(patternCols+margin, 1), max(patternRows+margin, 1)
	cellSize = min(viewW/spanW, viewH/spanH)
	if cellSize < 1 {
		cellSize = 1
	}
	rows = max(viewH/cellSize, 1)
	cols = max(viewW/cellSize, 1)
	return cellSize, rows, cols
}

// CellAt maps a pixel position to a cell of a rows x cols grid drawn with
// square cells of cellSize pixels at the origin.
func CellAt(x, y, cellSize, rows, cols int) (row, col int, ok bool) {
	if cellSize <= 0 || x < 0 || y < 0 {
		return 0, 0, false
	}
	row, col = y/cellSize, x/cellSize
	if row >= rows || col >= cols {
		return 0, 0, false
	}
	return row, col, true
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
