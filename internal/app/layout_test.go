package app

import "testing"

func TestFitCell(t *testing.T) {
	tests := []struct {
		w, h, rows, cols int
		want             int
	}{
		{320, 192, 16, 26, 12},
		{100, 100, 10, 10, 10},
		{5, 5, 10, 10, 1},
		{100, 100, 0, 10, 1},
	}
	for _, tt := range tests {
		if got := fitCell(tt.w, tt.h, tt.rows, tt.cols); got != tt.want {
			t.Fatalf("fitCell(%d, %d, %d, %d) = %d, want %d", tt.w, tt.h, tt.rows, tt.cols, got, tt.want)
		}
	}
}

func TestGalleryColumns(t *testing.T) {
	for n, want := range map[int]int{0: 1, 1: 1, 2: 2, 4: 2, 5: 3, 6: 3, 10: 4} {
		if got := GalleryColumns(n); got != want {
			t.Fatalf("GalleryColumns(%d) = %d, want %d", n, got, want)
		}
	}
}
