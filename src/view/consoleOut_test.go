package view

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"canvaslife/src/universe"
)

func TestConsoleOut(t *testing.T) {
	var b bytes.Buffer
	c := NewConsoleOutTo(&b, false)

	o := universe.DefaultOptions
	o.MaxSteps = 20
	o.RandomSeed = 3
	c.Register(o)
	assert.Contains(t, b.String(), "Dimension: 50 x 50")
	assert.Contains(t, b.String(), "Seeding: 200 random cells (seed 3)")
	assert.Contains(t, b.String(), "Max iterations: 20 steps")

	g := universe.NewGrid(50, 50)
	for gen := 0; gen < 20; gen++ {
		c.Refresh(universe.Frame{Grid: g, Status: universe.Status{Generation: gen, LiveCells: 7}})
	}
	assert.Contains(t, b.String(), "Simulation started, live cells: 7")
	assert.Contains(t, b.String(), "Tick: 10, live cells: 7")
	assert.NotContains(t, b.String(), "Tick: 11")

	c.Refresh(universe.Frame{Grid: g, Status: universe.Status{Generation: 20, RunningMode: universe.RunningStateFinished}})
	assert.Contains(t, b.String(), "Last tick: 20")

	require.NoError(t, c.Start(context.Background()))
}

func TestConsoleOut_StartCancelled(t *testing.T) {
	var b bytes.Buffer
	c := NewConsoleOutTo(&b, false)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.NoError(t, c.Start(ctx))
}

func TestFieldText(t *testing.T) {
	g := universe.NewGrid(3, 2)
	g.SetAlive(0, 0, true)
	g.SetAlive(2, 1, true)
	assert.Equal(t, "#..\n..#", fieldText(g, 10, 10, "#", "."))
}

func TestFieldText_Cropped(t *testing.T) {
	g := universe.NewGrid(5, 4)
	g.SetAlive(4, 0, true)
	text := fieldText(g, 3, 3, "#", ".")
	lines := bytes.Split([]byte(text), []byte("\n"))
	require.Len(t, lines, 3)
	assert.Equal(t, "...", string(lines[0]))
	assert.Equal(t, "...", string(lines[1]))
	assert.Contains(t, string(lines[2]), "The field size is larger than the viewing area")
}

func TestSeedingDescr(t *testing.T) {
	o := universe.DefaultOptions
	assert.Equal(t, "200 random cells", seedingDescr(o))
	o.Template = "glider"
	assert.Equal(t, "template glider", seedingDescr(o))
	assert.Equal(t, "unlimited", maxStepsDescr(0))
}
