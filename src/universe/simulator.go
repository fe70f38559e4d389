package universe

/*
	Simulator with two buffers
	the next generation is calculated to the back buffer reading only the active one,
	then the buffers are swapped, so the active grid is never changed while it is read
*/
type Simulator struct {
	active     *Grid
	back       *Grid
	generation int
}

//NewSimulator creates the simulator which owns g as its active grid
func NewSimulator(g *Grid) *Simulator {
	return &Simulator{
		active: g,
		back:   NewGrid(g.RowCount(), g.ColCount()),
	}
}

//Grid returns the active generation
//it stays untouched until the next Step call
func (s *Simulator) Grid() *Grid {
	return s.active
}

//Generation returns the number of steps done
func (s *Simulator) Generation() int {
	return s.generation
}

//Step advances the simulation by one generation and returns the new active grid
func (s *Simulator) Step() *Grid {
	NextGeneration(s.back, s.active)
	s.active, s.back = s.back, s.active
	s.generation++
	return s.active
}

//Step calculates the next generation of g into the new grid, g is not changed
func Step(g *Grid) *Grid {
	next := NewGrid(g.RowCount(), g.ColCount())
	NextGeneration(next, g)
	return next
}

//NextGeneration writes the generation following src into dst
//every dst cell is written, src is only read
func NextGeneration(dst *Grid, src *Grid) {
	if dst == src {
		panic("universe: the next generation can't be calculated in place")
	}
	dst.mustMatch(src)
	for row := 0; row < src.rows; row++ {
		for col := 0; col < src.cols; col++ {
			i := row*src.cols + col
			dst.cells[i] = Cell(cellNextState(LiveNeighbors(src, row, col), bool(src.cells[i])))
		}
	}
}

//LiveNeighbors counts the alive in-bounds neighbors of the cell
//the coordinates outside the grid are excluded from the tally
func LiveNeighbors(g *Grid, row int, col int) int {
	liveNeighbours := 0
	for _, n := range g.NeighborsOf(row, col) {
		if !g.InBounds(n.Row, n.Col) {
			continue
		}
		if g.cells[n.Row*g.cols+n.Col] {
			liveNeighbours++
		}
	}
	return liveNeighbours
}

//cellNextState calculates the next state for the cell
//2 neighbors keep the current state, 3 makes the cell alive, anything else kills it
func cellNextState(liveNeighbours int, alive bool) bool {
	switch {
	case liveNeighbours < 2 || liveNeighbours > 3:
		return false
	case liveNeighbours == 3:
		return true
	default:
		return alive
	}
}
