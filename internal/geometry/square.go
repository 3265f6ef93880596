package geometry

import "math"

// Square is the on-screen area of an n x n board.
type Square struct {
	X, Y  float64 // top-left corner
	Size  float64
	Cells int
}

// Fit centers a square of side min(ratio*w, ratio*h) in a w x h surface.
func Fit(w, h int, ratio float64, cells int) Square {
	size := math.Min(float64(w)*ratio, float64(h)*ratio)
	return Square{
		X:     (float64(w) - size) / 2,
		Y:     (float64(h) - size) / 2,
		Size:  size,
		Cells: cells,
	}
}

func (s Square) CellSize() float64 {
	if s.Cells <= 0 {
		return 0
	}
	return s.Size / float64(s.Cells)
}

// CellAt maps a surface point to a cell. ok is false for points outside
// the board, including the far edge at exactly X+Size or Y+Size.
func (s Square) CellAt(x, y float64) (col, row int, ok bool) {
	cell := s.CellSize()
	if cell <= 0 {
		return 0, 0, false
	}
	col = int(math.Floor((x - s.X) / cell))
	row = int(math.Floor((y - s.Y) / cell))
	if col < 0 || col >= s.Cells || row < 0 || row >= s.Cells {
		return col, row, false
	}
	return col, row, true
}

// Center returns the surface point at the middle of (col, row).
func (s Square) Center(col, row int) (x, y float64) {
	cell := s.CellSize()
	return s.X + cell*float64(col) + cell/2, s.Y + cell*float64(row) + cell/2
}
