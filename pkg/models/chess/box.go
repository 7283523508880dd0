package chess

import (
	"fmt"
	"strings"
)

type Color string

const (
	NoColor Color = ""
	Red     Color = "red"
	Blue    Color = "blue"
)

var Colors = [...]Color{Red, Blue}

func (c Color) Valid() bool {
	return c == Red || c == Blue
}

func (c Color) Other() Color {
	switch c {
	case Red:
		return Blue
	case Blue:
		return Red
	}
	return NoColor
}

func ParseColor(s string) (Color, error) {
	c := Color(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return NoColor, fmt.Errorf("color %q: %w", s, ErrUnknownColor)
	}
	return c, nil
}

// Box addresses a cell by its top-left point.
type Box struct {
	Row int
	Col int
}

func NewBox(row, col int) Box {
	return Box{Row: row, Col: col}
}

func (b Box) Point() Point {
	return NewPoint(b.Row, b.Col)
}

// Edges returns top, left, right and bottom.
func (b Box) Edges() [4]Edge {
	return [...]Edge{
		NewEdge(b.Row, b.Col, Horizontal),
		NewEdge(b.Row, b.Col, Vertical),
		NewEdge(b.Row, b.Col+1, Vertical),
		NewEdge(b.Row+1, b.Col, Horizontal),
	}
}

func (b Box) String() string {
	return fmt.Sprintf("%d,%d", b.Row, b.Col)
}

var cellDisplayColor = map[Color]string{
	NoColor: "grey",
	Red:     "red",
	Blue:    "blue",
}

type Cell struct {
	Owner  Color
	Filled bool
}

func (c *Cell) assign(owner Color) {
	c.Owner = owner
	c.Filled = true
}

func (c Cell) DisplayColor() string {
	return cellDisplayColor[c.Owner]
}

// Initial is the one-letter owner mark used by text renderings.
func (c Cell) Initial() string {
	if !c.Filled || c.Owner == NoColor {
		return ""
	}
	return strings.ToUpper(string(c.Owner)[:1])
}

func (c Cell) String() string {
	if c.Filled {
		return "box filled by " + string(c.Owner)
	}
	return "empty box"
}
