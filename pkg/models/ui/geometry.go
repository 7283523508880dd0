package ui

import (
	"fyne.io/fyne/v2"
	"github.com/HuXin0817/pipopipette/pkg/models/chess"
)

const DefaultLineLength = float32(100)

// Geometry lays a grid out on a canvas. Dots are LineWidth squares; each box is a
// LineLength square, so one box plus the line before it spans BoxDimension.
type Geometry struct {
	LineLength float32
	LineWidth  float32
}

func NewGeometry(lineLength float32) Geometry {
	return Geometry{LineLength: lineLength, LineWidth: lineLength / 5}
}

func (g Geometry) BoxDimension() float32 {
	return g.LineLength + g.LineWidth
}

func (g Geometry) CanvasSize(rows, cols int) fyne.Size {
	return fyne.NewSize(
		float32(cols)*g.BoxDimension()+g.LineWidth-1,
		float32(rows)*g.BoxDimension()+g.LineWidth-1,
	)
}

// EdgeAt returns the line under canvas position (x, y). Dots and box interiors are not
// lines. The edge may lie outside the grid when (x, y) is past its border.
func (g Geometry) EdgeAt(x, y float32) (chess.Edge, bool) {
	if x < 0 || y < 0 {
		return chess.Edge{}, false
	}

	dim := g.BoxDimension()
	col, row := int(x/dim), int(y/dim)
	dx, dy := x-float32(col)*dim, y-float32(row)*dim

	switch {
	case dx < g.LineWidth && dy > g.LineWidth:
		return chess.NewEdge(row, col, chess.Vertical), true
	case dx >= g.LineWidth && dy < g.LineWidth:
		return chess.NewEdge(row, col, chess.Horizontal), true
	}
	return chess.Edge{}, false
}

func (g Geometry) LineRect(e chess.Edge) (fyne.Position, fyne.Size) {
	x, y := float32(e.Col)*g.BoxDimension(), float32(e.Row)*g.BoxDimension()
	if e.Orientation == chess.Horizontal {
		return fyne.NewPos(x+g.LineWidth, y), fyne.NewSize(g.LineLength, g.LineWidth)
	}
	return fyne.NewPos(x, y+g.LineWidth), fyne.NewSize(g.LineWidth, g.LineLength)
}

func (g Geometry) BoxRect(b chess.Box) (fyne.Position, fyne.Size) {
	x, y := float32(b.Col)*g.BoxDimension(), float32(b.Row)*g.BoxDimension()
	return fyne.NewPos(x+g.LineWidth, y+g.LineWidth), fyne.NewSize(g.LineLength, g.LineLength)
}

func (g Geometry) DotRect(p chess.Point) (fyne.Position, fyne.Size) {
	x, y := float32(p.Col)*g.BoxDimension(), float32(p.Row)*g.BoxDimension()
	return fyne.NewPos(x, y), fyne.NewSize(g.LineWidth, g.LineWidth)
}
