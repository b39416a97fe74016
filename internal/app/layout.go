package app

import "math"

// fitCell returns the largest cell size at which a rows x cols grid fits
// the view, never below 1.
func fitCell(viewW, viewH, rows, cols int) int {
	if rows <= 0 || cols <= 0 {
		return 1
	}
	return max(min(viewW/cols, viewH/rows), 1)
}

// GalleryColumns returns the column count of a near-square layout.
func GalleryColumns(n int) int {
	if n <= 1 {
		return 1
	}
	return int(math.Ceil(math.Sqrt(float64(n))))
}
