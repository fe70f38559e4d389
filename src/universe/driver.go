package universe

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

//Driver owns the simulation and runs it on the timed loop
//every tick is one step followed by one refresh of all registered viewers
type Driver struct {
	options Options
	sim     *Simulator
	state   struct {
		Status
		sync.Mutex
	}
	views []Viewer
}

//NewDriver validates the options, creates the grid and settles it
//with the template or, if no template is set, with random data
func NewDriver(o Options) (*Driver, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	g := NewGrid(o.RowCount, o.ColCount)
	if o.Template != "" {
		g.Settle(Templates[o.Template].Coordinates)
	} else {
		g.SeedRandom(o.SeedCount, newRandom(o.RandomSeed))
	}
	return NewDriverWithGrid(o, g), nil
}

//NewDriverWithGrid creates the driver over the already settled grid
//grid dimensions take precedence over the options
func NewDriverWithGrid(o Options, g *Grid) *Driver {
	o.RowCount, o.ColCount = g.RowCount(), g.ColCount()
	d := &Driver{
		options: o,
		sim:     NewSimulator(g),
	}
	d.state.LiveCells = g.LiveCells()
	return d
}

//RegisterViewer registers the viewer - the driver will call the viewer on every tick
//must be called before Run
func (d *Driver) RegisterViewer(v Viewer) {
	d.views = append(d.views, v)
	v.Register(d.options)
}

//Status returns current status represented by Status struct
func (d *Driver) Status() Status {
	d.state.Lock()
	defer d.state.Unlock()
	return d.state.Status
}

//Options returns the configuration the driver runs with
func (d *Driver) Options() Options {
	return d.options
}

//Run draws the initial grid, waits for the start delay and then ticks every Interval
//returns nil when MaxSteps is reached or the context is cancelled
//cancellation is checked between the ticks only, a tick is never interrupted
func (d *Driver) Run(ctx context.Context) error {
	d.refreshView(d.Status())
	if !d.wait(ctx, d.options.StartDelay) {
		return nil
	}
	d.switchRunningState(RunningStateRunning)
	for {
		st := d.Tick()
		if st.RunningMode == RunningStateFinished {
			return nil
		}
		if !d.wait(ctx, d.options.Interval) {
			d.switchRunningState(RunningStateWaiting)
			return nil
		}
	}
}

//Tick does one simulation step and refreshes the viewers with the new generation
func (d *Driver) Tick() Status {
	start := time.Now()
	g := d.sim.Step()

	d.state.Lock()
	d.state.Generation = d.sim.Generation()
	d.state.LiveCells = g.LiveCells()
	d.state.IterationTime = time.Since(start)
	if d.options.MaxSteps != 0 && d.state.Generation >= d.options.MaxSteps {
		d.state.RunningMode = RunningStateFinished
	}
	st := d.state.Status
	d.state.Unlock()

	d.refreshView(st)
	return st
}

//switchRunningState switch the state of the driver to RunningState
func (d *Driver) switchRunningState(to RunningState) {
	d.state.Lock()
	d.state.RunningMode = to
	d.state.Unlock()
}

//wait sleeps for the duration, returns false if the context is done first
func (d *Driver) wait(ctx context.Context, delay time.Duration) bool {
	if delay <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

//refreshView calls Refresh event for all registered views
func (d *Driver) refreshView(st Status) {
	f := Frame{Grid: d.sim.Grid(), Status: st}
	for _, v := range d.views {
		v.Refresh(f)
	}
}

func newRandom(seed int64) Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
