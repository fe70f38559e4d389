package universe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomGrid(rows int, cols int, count int, seed int64) *Grid {
	g := NewGrid(rows, cols)
	g.SeedRandom(count, newRandom(seed))
	return g
}

func TestStep_AllDeadStaysDead(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {3, 3}, {10, 4}, {50, 50}} {
		next := Step(NewGrid(dims[0], dims[1]))
		assert.Equal(t, 0, next.LiveCells())
	}
}

func TestStep_Rules(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := randomGrid(12, 9, 50, seed)
		next := Step(g)
		g.Walk(func(row int, col int, alive bool) {
			n := LiveNeighbors(g, row, col)
			switch {
			case n == 3:
				assert.True(t, next.IsAlive(row, col), "seed %d cell %d,%d n=3", seed, row, col)
			case n < 2 || n > 3:
				assert.False(t, next.IsAlive(row, col), "seed %d cell %d,%d n=%d", seed, row, col, n)
			default:
				assert.Equal(t, alive, next.IsAlive(row, col), "seed %d cell %d,%d n=2", seed, row, col)
			}
		})
	}
}

func TestCellNextState(t *testing.T) {
	for n := 0; n <= 8; n++ {
		for _, alive := range []bool{false, true} {
			want := n == 3 || (n == 2 && alive)
			assert.Equal(t, want, cellNextState(n, alive), "n=%d alive=%v", n, alive)
		}
	}
}

func TestLiveNeighbors_Boundaries(t *testing.T) {
	g := NewGrid(5, 4)
	g.Walk(func(row int, col int, _ bool) { g.SetAlive(row, col, true) })

	g.Walk(func(row int, col int, _ bool) {
		edgeRow := row == 0 || row == g.RowCount()-1
		edgeCol := col == 0 || col == g.ColCount()-1
		n := LiveNeighbors(g, row, col)
		switch {
		case edgeRow && edgeCol:
			assert.Equal(t, 3, n, "corner %d,%d", row, col)
		case edgeRow || edgeCol:
			assert.Equal(t, 5, n, "edge %d,%d", row, col)
		default:
			assert.Equal(t, 8, n, "interior %d,%d", row, col)
		}
	})
}

func TestStep_DoesNotMutateInput(t *testing.T) {
	g := randomGrid(20, 20, 150, 7)
	saved := g.Clone()
	next := Step(g)
	assert.True(t, saved.Equal(g))
	assert.False(t, next == g)
}

func TestStep_IsolatedCellDies(t *testing.T) {
	g := NewGrid(3, 3)
	g.SetAlive(1, 1, true)
	assert.Equal(t, 0, Step(g).LiveCells())
}

func TestStep_Blinker(t *testing.T) {
	horizontal := NewGrid(5, 5)
	horizontal.Settle([]Coord{{2, 1}, {2, 2}, {2, 3}})
	vertical := NewGrid(5, 5)
	vertical.Settle([]Coord{{1, 2}, {2, 2}, {3, 2}})

	first := Step(horizontal)
	require.True(t, first.Equal(vertical), "got\n%v", first)
	second := Step(first)
	assert.True(t, second.Equal(horizontal), "got\n%v", second)
}

func TestStep_BlinkerOn3x3(t *testing.T) {
	g := NewGrid(3, 3)
	g.Settle(Templates["blinker"].Coordinates)
	vertical := NewGrid(3, 3)
	vertical.Settle([]Coord{{0, 1}, {1, 1}, {2, 1}})

	assert.True(t, Step(g).Equal(vertical))
	assert.True(t, Step(Step(g)).Equal(g))
}

func TestStep_Block(t *testing.T) {
	g := NewGrid(4, 4)
	g.Settle([]Coord{{1, 1}, {1, 2}, {2, 1}, {2, 2}})
	assert.True(t, Step(g).Equal(g))
}

func TestNextGeneration_Preconditions(t *testing.T) {
	g := NewGrid(3, 3)
	assert.Panics(t, func() { NextGeneration(g, g) })
	assert.Panics(t, func() { NextGeneration(NewGrid(3, 4), g) })
}

func TestSimulator_Step(t *testing.T) {
	g := randomGrid(15, 15, 80, 3)
	want := g.Clone()
	sim := NewSimulator(g)
	assert.Equal(t, 0, sim.Generation())
	assert.Same(t, g, sim.Grid())

	for i := 1; i <= 10; i++ {
		prev := sim.Grid().Clone()
		got := sim.Step()
		want = Step(want)
		require.True(t, want.Equal(got), "generation %d", i)
		assert.Equal(t, i, sim.Generation())
		assert.Same(t, got, sim.Grid())
		assert.NotSame(t, got, prev)
	}
}

func TestSimulator_SwapsBuffers(t *testing.T) {
	g := NewGrid(3, 3)
	sim := NewSimulator(g)
	first := sim.Step()
	assert.NotSame(t, g, first)
	second := sim.Step()
	assert.Same(t, g, second)
}
