package view

import "canvaslife/src/universe"

//Surface is the drawing target of a known pixel size
//the surface owns its colors, the painter decides only what is stroked and what is filled
type Surface interface {
	Size() (width int, height int)
	Clear()
	StrokeRect(x, y, w, h float64)
	FillRect(x, y, w, h float64)
}

//PaintGrid clears the surface and draws every cell as the bordered rectangle
//the cell at (row, col) is placed at (row*w, col*h) where w = width/rows and h = height/cols,
//live cells are filled, dead cells are outlined only
func PaintGrid(s Surface, g *universe.Grid) {
	s.Clear()
	rows, cols := g.RowCount(), g.ColCount()
	if rows == 0 || cols == 0 {
		return
	}
	sw, sh := s.Size()
	w := float64(sw) / float64(rows)
	h := float64(sh) / float64(cols)
	g.Walk(func(row int, col int, alive bool) {
		x := float64(row) * w
		y := float64(col) * h
		s.StrokeRect(x, y, w, h)
		if alive {
			s.FillRect(x, y, w, h)
		}
	})
}
