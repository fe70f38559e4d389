package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/integrii/flaggy"
	"golang.org/x/sync/errgroup"

	"canvaslife/src/universe"
	"canvaslife/src/view"
	"canvaslife/src/view/window"
)

//Frontend is the viewer which owns the blocking main loop of the process
type Frontend interface {
	universe.Viewer
	Start(ctx context.Context) error
}

var (
	frontends = map[string]func(eo *EnvOptions) Frontend{
		"window": func(eo *EnvOptions) Frontend {
			return window.NewWindow(eo.surfaceWidth, eo.surfaceHeight)
		},
		"terminal": func(_ *EnvOptions) Frontend {
			return view.NewViewTerminal()
		},
		"console": func(_ *EnvOptions) Frontend {
			return view.NewConsoleOut()
		},
	}
)

type EnvOptions struct {
	frontend      string
	config        string
	surfaceWidth  int
	surfaceHeight int
}

func main() {
	eo, uo := initOptions()

	d, err := universe.NewDriver(uo)
	if err != nil {
		log.Fatalln(err)
	}

	f := frontends[eo.frontend](eo)
	d.RegisterViewer(f)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, d, f); err != nil {
		log.Fatalln(err)
	}

	if eo.frontend != "console" {
		st := d.Status()
		fmt.Printf("Stopped at tick %v, live cells: %v\n", st.Generation, st.LiveCells)
	}
}

//run drives the simulation in the background while the frontend loop blocks the calling goroutine
//the simulation is cancelled as soon as the frontend returns
func run(ctx context.Context, d *universe.Driver, f Frontend) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return d.Run(ctx)
	})

	err := f.Start(ctx)
	cancel()
	if werr := eg.Wait(); err == nil {
		err = werr
	}
	return err
}

func initOptions() (eo *EnvOptions, uo universe.Options) {

	eo = &EnvOptions{frontend: "window", surfaceWidth: 500, surfaceHeight: 500}
	uo = universe.DefaultOptions

	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	bindFlags(flaggy.DefaultParser, eo, &uo)
	flaggy.Parse()

	//the flags given on the command line override the config file
	if eo.config != "" {
		var err error
		if uo, err = universe.LoadOptions(eo.config); err != nil {
			log.Fatalln(err)
		}
		p := flaggy.NewParser(os.Args[0])
		bindFlags(p, eo, &uo)
		if err = p.ParseArgs(os.Args[1:]); err != nil {
			log.Fatalln(err)
		}
	}

	if _, ok := frontends[eo.frontend]; !ok {
		flaggy.ShowHelpAndExit("unknown view")
	}
	if err := uo.Validate(); err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}

	return
}

func bindFlags(p *flaggy.Parser, eo *EnvOptions, uo *universe.Options) {
	frontendNames := make([]string, 0, len(frontends))
	for k := range frontends {
		frontendNames = append(frontendNames, k)
	}
	sort.Strings(frontendNames)

	p.String(&eo.config, "f", "config", "JSON file with the simulation options, flags override it")
	p.Int(&uo.RowCount, "r", "rows", "Number of grid rows")
	p.Int(&uo.ColCount, "c", "cols", "Number of grid columns")
	p.Int(&uo.SeedCount, "n", "seeds", "Number of random cells made alive at start (duplicates possible)")
	p.Int64(&uo.RandomSeed, "", "randomSeed", "Seed of the random source, 0 is unseeded")
	p.String(&uo.Template, "t", "template", "Settle with the template instead of random data ["+strings.Join(universe.TemplateNames(), "|")+"]")
	p.Duration(&uo.Interval, "i", "interval", "Simulation speed (interval between the steps) in format the number with 'ms' suffix, for example 150ms")
	p.Duration(&uo.StartDelay, "d", "delay", "Delay before the first step")
	p.Int(&uo.MaxSteps, "s", "maxSteps", "Limit the simulation to maxSteps, 0 runs forever")
	p.String(&eo.frontend, "v", "view", "Frontend to use ["+strings.Join(frontendNames, "|")+"]")
	p.Int(&eo.surfaceWidth, "", "width", "Window width in pixels")
	p.Int(&eo.surfaceHeight, "", "height", "Window height in pixels")
}
