package universe

import "fmt"

type Cell bool

//Coord identifies the cell by its row and column
type Coord struct {
	Row int
	Col int
}

//neighborOffsets is the same for every cell, only the bounds validity differs by position
var neighborOffsets = [8]Coord{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

//Grid is the fixed size rows x cols field, all cells are stored row by row in one buffer
type Grid struct {
	rows  int
	cols  int
	cells []Cell
}

//NewGrid allocates the rows x cols grid with all cells dead
//panics on negative dimensions
func NewGrid(rows int, cols int) *Grid {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("universe: negative grid dimensions %dx%d", rows, cols))
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
}

func (g *Grid) RowCount() int {
	return g.rows
}

func (g *Grid) ColCount() int {
	return g.cols
}

//InBounds reports whether 0 <= row < RowCount and 0 <= col < ColCount
func (g *Grid) InBounds(row int, col int) bool {
	return row >= 0 && col >= 0 && row < g.rows && col < g.cols
}

func (g *Grid) IsAlive(row int, col int) bool {
	return bool(g.cells[g.index(row, col)])
}

func (g *Grid) SetAlive(row int, col int, alive bool) {
	g.cells[g.index(row, col)] = Cell(alive)
}

//NeighborsOf returns the 8 coordinates around (row, col) without bounds filtering
//the caller has to discard the entries outside the grid
func (g *Grid) NeighborsOf(row int, col int) [8]Coord {
	var n [8]Coord
	for i, o := range neighborOffsets {
		n[i] = Coord{row + o.Row, col + o.Col}
	}
	return n
}

//SeedRandom picks count random coordinates (with replacement) and makes them alive
//duplicates are possible, so fewer than count cells may end up alive
func (g *Grid) SeedRandom(count int, rnd Random) {
	if g.rows == 0 || g.cols == 0 {
		return
	}
	for i := 0; i < count; i++ {
		row := rnd.Intn(g.rows)
		col := rnd.Intn(g.cols)
		g.cells[g.index(row, col)] = true
	}
}

//Settle makes the cells at the coordinates alive, coordinates outside the grid are skipped
func (g *Grid) Settle(coords []Coord) {
	for _, c := range coords {
		if !g.InBounds(c.Row, c.Col) {
			continue
		}
		g.SetAlive(c.Row, c.Col, true)
	}
}

//LiveCells calculates the count of live cells
func (g *Grid) LiveCells() int {
	liveCells := 0
	for _, c := range g.cells {
		if c {
			liveCells++
		}
	}
	return liveCells
}

//Clear kills all cells
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = false
	}
}

//CopyFrom overwrites the grid state with src, both grids must have the same dimensions
func (g *Grid) CopyFrom(src *Grid) {
	g.mustMatch(src)
	copy(g.cells, src.cells)
}

//Clone returns the independent copy of the grid
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.rows, g.cols)
	copy(c.cells, g.cells)
	return c
}

//Equal reports whether both grids have the same dimensions and the same live cells
func (g *Grid) Equal(o *Grid) bool {
	if g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

//Walk walks the entire grid row by row and calls the cb function for each cell
func (g *Grid) Walk(cb func(row int, col int, alive bool)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			cb(row, col, bool(g.cells[row*g.cols+col]))
		}
	}
}

func (g *Grid) String() string {
	b := make([]byte, 0, (g.cols+1)*g.rows)
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			if g.cells[row*g.cols+col] {
				b = append(b, '#')
			} else {
				b = append(b, '.')
			}
		}
		b = append(b, '\n')
	}
	return string(b)
}

func (g *Grid) index(row int, col int) int {
	if !g.InBounds(row, col) {
		panic(fmt.Sprintf("universe: cell (%d, %d) is outside the %dx%d grid", row, col, g.rows, g.cols))
	}
	return row*g.cols + col
}

func (g *Grid) mustMatch(o *Grid) {
	if g.rows != o.rows || g.cols != o.cols {
		panic(fmt.Sprintf("universe: grid dimensions differ %dx%d != %dx%d", g.rows, g.cols, o.rows, o.cols))
	}
}
