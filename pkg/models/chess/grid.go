package chess

import (
	"fmt"
	"strings"
)

// Grid owns every line and cell of a board and is the only place cell ownership is decided.
// It is not safe for concurrent use.
type Grid struct {
	rows  int
	cols  int
	edges []Edge
	lines map[Edge]*Line
	boxes []Box
	cells map[Box]*Cell
}

type Score struct {
	Red  int
	Blue int
}

func (s Score) Of(c Color) int {
	switch c {
	case Red:
		return s.Red
	case Blue:
		return s.Blue
	}
	return 0
}

func (s Score) String() string {
	return fmt.Sprintf("red %d - blue %d", s.Red, s.Blue)
}

type LineState struct {
	Edge
	Line
}

type CellState struct {
	Box
	Cell
}

func EdgeCount(rows, cols int) int {
	return rows*(cols+1) + cols*(rows+1)
}

func NewGrid(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidDimensions)
	}

	g := &Grid{
		rows:  rows,
		cols:  cols,
		edges: make([]Edge, 0, EdgeCount(rows, cols)),
		lines: make(map[Edge]*Line, EdgeCount(rows, cols)),
		boxes: make([]Box, 0, rows*cols),
		cells: make(map[Box]*Cell, rows*cols),
	}

	for r := range rows + 1 {
		for c := range cols + 1 {
			if c < cols {
				g.addLine(NewEdge(r, c, Horizontal))
			}
			if r < rows {
				g.addLine(NewEdge(r, c, Vertical))
			}
			if r < rows && c < cols {
				b := NewBox(r, c)
				g.boxes = append(g.boxes, b)
				g.cells[b] = &Cell{}
			}
		}
	}
	return g, nil
}

func (g *Grid) addLine(e Edge) {
	g.edges = append(g.edges, e)
	g.lines[e] = &Line{}
}

func (g *Grid) Rows() int { return g.rows }

func (g *Grid) Cols() int { return g.cols }

func (g *Grid) EdgeCount() int { return len(g.edges) }

func (g *Grid) InBounds(e Edge) bool {
	_, c := g.lines[e]
	return c
}

func (g *Grid) boxInBounds(b Box) bool {
	_, c := g.cells[b]
	return c
}

func (g *Grid) Line(e Edge) (Line, bool) {
	l, c := g.lines[e]
	if !c {
		return Line{}, false
	}
	return *l, true
}

func (g *Grid) Cell(b Box) (Cell, bool) {
	cell, c := g.cells[b]
	if !c {
		return Cell{}, false
	}
	return *cell, true
}

func (g *Grid) Lines() (lines []LineState) {
	for _, e := range g.edges {
		lines = append(lines, LineState{Edge: e, Line: *g.lines[e]})
	}
	return
}

func (g *Grid) Cells() (cells []CellState) {
	for _, b := range g.boxes {
		cells = append(cells, CellState{Box: b, Cell: *g.cells[b]})
	}
	return
}

func (g *Grid) LegalMoves() (moves []Edge) {
	for _, e := range g.edges {
		if !g.lines[e].Claimed {
			moves = append(moves, e)
		}
	}
	return
}

// ValidateMove checks orientation, then bounds, then whether the line is free.
func (g *Grid) ValidateMove(e Edge) error {
	if !e.Orientation.Valid() {
		return ErrInvalidOrientation
	}
	l, c := g.lines[e]
	if !c {
		return ErrOutOfBounds
	}
	if l.Claimed {
		return ErrAlreadyClaimed
	}
	return nil
}

// ApplyMove claims e for color and returns the boxes this move filled. The move must have
// passed ValidateMove.
func (g *Grid) ApplyMove(e Edge, color Color) []Box {
	l, c := g.lines[e]
	if !c {
		panic(fmt.Sprintf("chess: apply move %v outside a %dx%d grid", e, g.rows, g.cols))
	}
	l.Claimed = true
	return g.SettleBoxes(e, color)
}

// SettleBoxes fills, with color, every unfilled box next to e whose four lines are claimed.
func (g *Grid) SettleBoxes(e Edge, color Color) (filled []Box) {
	for _, b := range e.NearBoxes() {
		cell, c := g.cells[b]
		if !c || cell.Filled {
			continue
		}
		if g.claimedLinesInBox(b) == 4 {
			cell.assign(color)
			filled = append(filled, b)
		}
	}
	return
}

func (g *Grid) claimedLinesInBox(b Box) (count int) {
	for _, e := range b.Edges() {
		if g.lines[e].Claimed {
			count++
		}
	}
	return
}

func (g *Grid) IsFull() bool {
	for _, l := range g.lines {
		if !l.Claimed {
			return false
		}
	}
	return true
}

func (g *Grid) Score() (s Score) {
	for _, cell := range g.cells {
		if !cell.Filled {
			continue
		}
		switch cell.Owner {
		case Red:
			s.Red++
		case Blue:
			s.Blue++
		}
	}
	return
}

func (g *Grid) claimed(r, c int, o Orientation) bool {
	return g.lines[NewEdge(r, c, o)].Claimed
}

// Picture draws the board as text. mark renders the three-character body of a box.
func (g *Grid) Picture(mark func(Cell) string) string {
	const indent = "\n   "
	var sb strings.Builder

	sb.WriteString(indent)
	for c := range g.cols + 1 {
		fmt.Fprintf(&sb, "%-4d", c)
	}

	for r := range g.rows {
		sb.WriteString(indent)
		g.drawHorizontal(&sb, r)
		sb.WriteString(indent)
		for c := range g.cols {
			sb.WriteString(bar(g.claimed(r, c, Vertical)))
			sb.WriteString(mark(*g.cells[NewBox(r, c)]))
		}
		sb.WriteString(bar(g.claimed(r, g.cols, Vertical)))
	}

	sb.WriteString(indent)
	g.drawHorizontal(&sb, g.rows)
	sb.WriteString(indent)
	return sb.String()
}

func (g *Grid) drawHorizontal(sb *strings.Builder, r int) {
	for c := range g.cols {
		sb.WriteString("+")
		if g.claimed(r, c, Horizontal) {
			sb.WriteString("---")
		} else {
			sb.WriteString("   ")
		}
	}
	fmt.Fprintf(sb, "+%2d", r)
}

func bar(claimed bool) string {
	if claimed {
		return "|"
	}
	return " "
}

// CenterMark is the plain box body: the owner's initial centred in three columns.
func CenterMark(cell Cell) string {
	if i := cell.Initial(); i != "" {
		return " " + i + " "
	}
	return "   "
}

func (g *Grid) String() string {
	return g.Picture(CenterMark)
}
