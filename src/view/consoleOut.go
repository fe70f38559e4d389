package view

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/logrusorgru/aurora"

	"canvaslife/src/universe"
)

//ConsoleOut prints the configuration, the progress and the final statistics without drawing the grid
type ConsoleOut struct {
	w         io.Writer
	au        aurora.Aurora
	every     int
	startTime time.Time
	done      chan struct{}
	doneOnce  sync.Once
}

func NewConsoleOut() *ConsoleOut {
	return NewConsoleOutTo(os.Stdout, true)
}

//NewConsoleOutTo creates the ConsoleOut which writes to w
func NewConsoleOutTo(w io.Writer, colors bool) *ConsoleOut {
	return &ConsoleOut{
		w:         w,
		au:        aurora.NewAurora(colors),
		every:     10,
		startTime: time.Now(),
		done:      make(chan struct{}),
	}
}

func (c *ConsoleOut) Register(o universe.Options) {
	fmt.Fprintln(c.w, "Running configuration:")
	c.printProps([][2]interface{}{
		{"Dimension", fmt.Sprintf("%v x %v", o.RowCount, o.ColCount)},
		{"Seeding", seedingDescr(o)},
		{"Interval", o.Interval},
		{"Start delay", o.StartDelay},
		{"Max iterations", maxStepsDescr(o.MaxSteps)},
	})
}

func (c *ConsoleOut) Refresh(f universe.Frame) {
	st := f.Status
	switch {
	case st.RunningMode == universe.RunningStateFinished:
		fmt.Fprintln(c.w, c.au.Red("\nFinished:"))
		c.printProps([][2]interface{}{
			{"Last tick", st.Generation},
			{"Total time", time.Since(c.startTime).Round(time.Millisecond)},
			{"Live cells", st.LiveCells},
		})
		c.finish()
	case st.Generation == 0:
		fmt.Fprintf(c.w, "\nSimulation started, live cells: %v\n", st.LiveCells)
	case st.Generation%c.every == 0:
		fmt.Fprintf(c.w, "  %s %v, live cells: %v, evaluation time: %v\n",
			c.au.Cyan("Tick:"), st.Generation, st.LiveCells, st.IterationTime.Round(time.Microsecond))
	}
}

//Start blocks until the driver reports Finished or the context is cancelled
func (c *ConsoleOut) Start(ctx context.Context) error {
	select {
	case <-ctx.Done():
	case <-c.done:
	}
	return nil
}

func (c *ConsoleOut) finish() {
	c.doneOnce.Do(func() { close(c.done) })
}

func (c *ConsoleOut) printProps(props [][2]interface{}) {
	for _, p := range props {
		fmt.Fprintf(c.w, "  %s: %v\n", c.au.Green(p[0]), p[1])
	}
}

func seedingDescr(o universe.Options) string {
	if o.Template != "" {
		return "template " + o.Template
	}
	if o.RandomSeed != 0 {
		return fmt.Sprintf("%v random cells (seed %v)", o.SeedCount, o.RandomSeed)
	}
	return fmt.Sprintf("%v random cells", o.SeedCount)
}

func maxStepsDescr(n int) string {
	if n == 0 {
		return "unlimited"
	}
	return fmt.Sprintf("%v steps", n)
}
