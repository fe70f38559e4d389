package window

import (
	"context"
	"fmt"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"canvaslife/src/universe"
	"canvaslife/src/view"
)

var (
	background = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	stroke     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	fill       = color.RGBA{R: 102, G: 102, B: 102, A: 255}
)

//surface draws to the ebiten image
type surface struct {
	img *ebiten.Image
}

func (s surface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s surface) Clear() {
	s.img.Fill(background)
}

func (s surface) StrokeRect(x, y, w, h float64) {
	ebitenutil.DrawLine(s.img, x, y, x+w, y, stroke)
	ebitenutil.DrawLine(s.img, x, y, x, y+h, stroke)
	ebitenutil.DrawLine(s.img, x+w, y, x+w, y+h, stroke)
	ebitenutil.DrawLine(s.img, x, y+h, x+w, y+h, stroke)
}

func (s surface) FillRect(x, y, w, h float64) {
	ebitenutil.DrawRect(s.img, x, y, w, h, fill)
}

//Window shows the grid in the desktop window of the fixed pixel size
//implements universe.Viewer and ebiten.Game
type Window struct {
	width  int
	height int
	ctx    context.Context

	last struct {
		sync.Mutex
		grid   *universe.Grid
		status universe.Status
	}
}

func NewWindow(width int, height int) *Window {
	w := &Window{width: width, height: height, ctx: context.Background()}
	w.last.grid = universe.NewGrid(0, 0)
	return w
}

func (w *Window) Register(o universe.Options) {
	w.last.Lock()
	w.last.grid = universe.NewGrid(o.RowCount, o.ColCount)
	w.last.Unlock()
}

//Refresh copies the frame, it is drawn on the next ebiten frame
func (w *Window) Refresh(f universe.Frame) {
	w.last.Lock()
	w.last.grid.CopyFrom(f.Grid)
	w.last.status = f.Status
	w.last.Unlock()
}

//Start opens the window and blocks until it is closed or the context is cancelled
//must be called from the main goroutine
func (w *Window) Start(ctx context.Context) error {
	w.ctx = ctx
	ebiten.SetWindowSize(w.width, w.height)
	ebiten.SetWindowTitle("Conway's Game of Life")
	return ebiten.RunGame(w)
}

func (w *Window) Update() error {
	if w.ctx.Err() != nil {
		return ebiten.Termination
	}
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	w.last.Lock()
	defer w.last.Unlock()
	view.PaintGrid(surface{screen}, w.last.grid)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("Tick: %d", w.last.status.Generation))
}

func (w *Window) Layout(_, _ int) (int, int) {
	return w.width, w.height
}
