package view

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"canvaslife/src/universe"
)

type keyBindings struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

type ConsoleUI struct {
	g *gocui.Gui
	k []keyBindings

	//the copy of the last frame, the driver's grid is not kept after Refresh returns
	last struct {
		sync.Mutex
		options universe.Options
		status  universe.Status
		grid    *universe.Grid
	}
	liveFiller string
	deadFiller string
}

var (
	runningStateDescr = map[universe.RunningState]string{
		universe.RunningStateWaiting:  aurora.Colorize("waiting", aurora.BlueFg).String(),
		universe.RunningStateRunning:  aurora.Colorize("running", aurora.CyanFg).String(),
		universe.RunningStateFinished: aurora.Colorize("finished", aurora.RedFg).String(),
	}
)

func NewViewTerminal() *ConsoleUI {

	var err error
	t := ConsoleUI{
		liveFiller: aurora.Green("█").BgBrightGreen().String(),
		deadFiller: "░",
	}
	t.last.grid = universe.NewGrid(0, 0)

	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}

	t.k = []keyBindings{
		{gocui.KeyCtrlC,
			"^C",
			"Exit",
			t.cmdQuit,
			""},
		{'q',
			"Q",
			"Exit",
			t.cmdQuit,
			""},
	}
	t.g.SetManagerFunc(t.layout)

	t.initKeyBindings(t.k)

	return &t
}

func (t *ConsoleUI) initKeyBindings(k []keyBindings) {
	for _, kb := range k {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(gui *gocui.Gui, view *gocui.View) error { return h(view) }); err != nil {
			log.Panicln(err)
		}
	}
}

func (t *ConsoleUI) Register(o universe.Options) {
	t.last.Lock()
	t.last.options = o
	t.last.grid = universe.NewGrid(o.RowCount, o.ColCount)
	t.last.Unlock()
}

//Start runs the terminal main loop until the user quits or the context is cancelled
func (t *ConsoleUI) Start(ctx context.Context) error {
	defer t.g.Close()

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			t.g.Update(func(g *gocui.Gui) error { return gocui.ErrQuit })
		case <-stop:
		}
	}()

	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return err
	}
	return nil
}

//Refresh copies the frame and asks the gui goroutine to redraw
func (t *ConsoleUI) Refresh(f universe.Frame) {
	t.last.Lock()
	t.last.status = f.Status
	t.last.grid.CopyFrom(f.Grid)
	t.last.Unlock()

	t.g.Update(func(g *gocui.Gui) error {
		t.drawStatus(g)
		t.drawField(g)
		return nil
	})
}

//fieldText draws the grid as text cropped to maxW x maxH chars
//the grid row goes along the line like on the canvas, the last line is replaced by the warning when cropped
func fieldText(g *universe.Grid, maxW int, maxH int, live string, dead string) string {
	var b bytes.Buffer
	crop := g.RowCount() > maxW || g.ColCount() > maxH

	for col := 0; col < g.ColCount(); col++ {
		//discard the data outside the view area
		if col >= maxH {
			break
		}
		//line feed char
		if col != 0 {
			b.WriteByte(10)
		}
		if crop && col == (maxH-1) {
			b.WriteString(aurora.Red("The field size is larger than the viewing area").BgBlack().String())
			break
		}
		for row := 0; row < g.RowCount() && row < maxW; row++ {
			if g.IsAlive(row, col) {
				b.WriteString(live)
			} else {
				b.WriteString(dead)
			}
		}
	}
	return b.String()
}

//drawField must be called from the gui goroutine
func (t *ConsoleUI) drawField(g *gocui.Gui) {
	v, e := g.View("grid")
	if e != nil {
		return
	}
	//the entire field is redrawing at once
	v.Clear()

	maxW, maxH := v.Size()
	t.last.Lock()
	text := fieldText(t.last.grid, maxW, maxH, t.liveFiller, t.deadFiller)
	t.last.Unlock()
	_, _ = fmt.Fprint(v, text)
}

func (t *ConsoleUI) drawStatus(g *gocui.Gui) {
	t.last.Lock()
	s := t.last.status
	t.last.Unlock()
	if v, e := g.View("status"); e == nil {
		v.Clear()
		_, _ = fmt.Fprintln(v, t.renderProp("Tick", "%v", s.Generation))
		_, _ = fmt.Fprintln(v, t.renderProp("Live Cells", "%v", s.LiveCells))
		_, _ = fmt.Fprintln(v, t.renderProp("Evaluation time", "%v", s.IterationTime.Round(time.Microsecond)))
		_, _ = fmt.Fprintln(v, t.renderProp("Mode", "%v", runningStateDescr[s.RunningMode]))
	}
}

func (t *ConsoleUI) drawConfiguration(g *gocui.Gui) {
	t.last.Lock()
	c := t.last.options
	t.last.Unlock()
	if v, e := g.View("configuration"); e == nil {
		v.Clear()
		_, _ = fmt.Fprintln(v, t.renderProp("Dimension", "%v x %v", c.RowCount, c.ColCount))
		_, _ = fmt.Fprintln(v, t.renderProp("Seeding", "%v", seedingDescr(c)))
		_, _ = fmt.Fprintln(v, t.renderProp("Interval", "%v", c.Interval))
		_, _ = fmt.Fprintln(v, t.renderProp("Iterations", "%v", maxStepsDescr(c.MaxSteps)))
	}
}

func (t *ConsoleUI) renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {

	maxX, maxY := g.Size()
	leftColumnWidth := 34
	minWindowHeight := 20

	if maxY < minWindowHeight {
		if _, err := t.headerLayout(g, maxY, "Terminal height too small"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
		_ = g.DeleteView("configuration")
		_ = g.DeleteView("status")
		_ = g.DeleteView("grid")
		return nil

	} else {
		if _, err := t.headerLayout(g, 3, "Conway's Game of Life"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
	}

	if v, err := g.SetView("configuration", 0, 3, leftColumnWidth, 3+(maxY-5-3)/2); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Configuration"
		v.Frame = true
		t.drawConfiguration(g)
	}

	if v, err := g.SetView("status", 0, 3+(maxY-5-3)/2+1, leftColumnWidth, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
		t.drawStatus(g)
	}

	if v, err := g.SetView("grid", leftColumnWidth+1, 3, maxX-1, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Grid"
		v.Frame = true
	}
	t.drawField(g)

	if v, err := g.SetView("help", -1, maxY-5, maxX, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		b := bytes.Buffer{}
		b.WriteString("KEYBINDINGS: ")
		for i, k := range t.k {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}

	return nil
}

func (t *ConsoleUI) headerLayout(g *gocui.Gui, height int, text string) (v *gocui.View, err error) {
	maxX, _ := g.Size()
	if v, err = g.SetView("header", -1, -1, maxX+1, height); err != nil {
		if err == gocui.ErrUnknownView && v != nil {
			v.Frame = false
			v.BgColor = gocui.ColorCyan
			v.FgColor = gocui.ColorBlack
		}
	}
	if v != nil {
		v.Clear()
		pad := 0
		if maxX > len(text) {
			pad = (maxX - len(text)) / 2
		}
		_, _ = fmt.Fprintln(v, strings.Repeat("\n", height/2+1)+strings.Repeat(" ", pad)+text)
	}
	return
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}
