package ui

import (
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/HuXin0817/pipopipette/pkg/models/chess"
)

// Board draws a grid and turns taps on its lines into edges. It never changes the grid
// itself; the owner plays the edge handed to OnEdge and calls Update.
type Board struct {
	widget.BaseWidget
	Geometry

	OnEdge func(chess.Edge)

	size    fyne.Size
	content *fyne.Container
	lines   map[chess.Edge]*canvas.Rectangle
	boxes   map[chess.Box]*canvas.Rectangle
	mu      sync.Mutex
}

func NewBoard(g *chess.Grid, geo Geometry) *Board {
	b := &Board{
		Geometry: geo,
		size:     geo.CanvasSize(g.Rows(), g.Cols()),
		content:  container.NewWithoutLayout(),
		lines:    make(map[chess.Edge]*canvas.Rectangle),
		boxes:    make(map[chess.Box]*canvas.Rectangle),
	}

	for _, cs := range g.Cells() {
		r := canvas.NewRectangle(DisplayColor(cs.DisplayColor()))
		pos, size := geo.BoxRect(cs.Box)
		place(r, pos, size)
		b.boxes[cs.Box] = r
		b.content.Add(r)
	}

	for _, ls := range g.Lines() {
		r := canvas.NewRectangle(DisplayColor(ls.DisplayColor()))
		pos, size := geo.LineRect(ls.Edge)
		place(r, pos, size)
		b.lines[ls.Edge] = r
		b.content.Add(r)
	}

	for _, p := range chess.Points(g.Rows(), g.Cols()) {
		c := canvas.NewCircle(DotColor)
		pos, size := geo.DotRect(p)
		place(c, pos, size)
		b.content.Add(c)
	}

	b.ExtendBaseWidget(b)
	return b
}

func place(o fyne.CanvasObject, pos fyne.Position, size fyne.Size) {
	o.Move(pos)
	o.Resize(size)
}

func (b *Board) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(b.content)
}

func (b *Board) MinSize() fyne.Size {
	return b.size
}

func (b *Board) Tapped(ev *fyne.PointEvent) {
	if e, ok := b.EdgeAt(ev.Position.X, ev.Position.Y); ok && b.OnEdge != nil {
		b.OnEdge(e)
	}
}

// Update recolours every line and box from g.
func (b *Board) Update(g *chess.Grid) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ls := range g.Lines() {
		if r, ok := b.lines[ls.Edge]; ok {
			r.FillColor = DisplayColor(ls.DisplayColor())
		}
	}
	for _, cs := range g.Cells() {
		if r, ok := b.boxes[cs.Box]; ok {
			r.FillColor = DisplayColor(cs.DisplayColor())
		}
	}
	b.content.Refresh()
}

// StatusText is the score line shown under the board.
func StatusText(m *chess.Match) string {
	s := m.Grid().Score()
	return fmt.Sprintf("Red %d - %d Blue    %s", s.Red, s.Blue, m.Message())
}
