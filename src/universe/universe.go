package universe

import "time"

//Status represents the status of the simulation at concrete moment
type Status struct {
	Generation    int
	RunningMode   RunningState
	LiveCells     int
	IterationTime time.Duration
}

//Frame is what the driver hands to the viewers on every tick
//the Grid is only valid during the Refresh call, a viewer which draws later must copy it
type Frame struct {
	Grid   *Grid
	Status Status
}

//Viewer is the interface to any Viewer - the object who can display simulation data
type Viewer interface {
	Register(o Options)
	Refresh(f Frame)
}

//Random is the source of uniform random integers in [0, n)
//*rand.Rand satisfies it
type Random interface {
	Intn(n int) int
}

//RunningState is the driver running status at the concrete moment
type RunningState int

const (
	RunningStateWaiting  RunningState = 0x0
	RunningStateRunning  RunningState = 0x1
	RunningStateFinished RunningState = 0x2
)

func (r RunningState) String() string {
	switch r {
	case RunningStateWaiting:
		return "waiting"
	case RunningStateRunning:
		return "running"
	case RunningStateFinished:
		return "finished"
	}
	return "unknown"
}
