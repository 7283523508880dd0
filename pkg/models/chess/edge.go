package chess

import (
	"fmt"
	"strings"
)

type Orientation byte

const (
	Horizontal Orientation = 'H'
	Vertical   Orientation = 'V'
)

func (o Orientation) Valid() bool {
	return o == Horizontal || o == Vertical
}

func (o Orientation) String() string {
	return string(o)
}

// ParseOrientation keeps whatever single byte it is given so that validation can report it.
func ParseOrientation(s string) (Orientation, error) {
	s = strings.TrimSpace(s)
	if len(s) != 1 {
		return 0, fmt.Errorf("orientation %q: %w", s, ErrInvalidOrientation)
	}
	return Orientation(strings.ToUpper(s)[0]), nil
}

func (o Orientation) MarshalText() ([]byte, error) {
	return []byte{byte(o)}, nil
}

func (o *Orientation) UnmarshalText(text []byte) (err error) {
	*o, err = ParseOrientation(string(text))
	return
}

// Edge addresses a line by the point it starts from: the left point of a horizontal
// line, the top point of a vertical one.
type Edge struct {
	Row         int
	Col         int
	Orientation Orientation
}

func NewEdge(row, col int, o Orientation) Edge {
	return Edge{Row: row, Col: col, Orientation: o}
}

func (e Edge) Points() [2]Point {
	if e.Orientation == Vertical {
		return [...]Point{NewPoint(e.Row, e.Col), NewPoint(e.Row+1, e.Col)}
	}
	return [...]Point{NewPoint(e.Row, e.Col), NewPoint(e.Row, e.Col+1)}
}

// NearBoxes returns the addresses of the boxes on both sides of the edge. Addresses
// outside the grid are not filtered here.
func (e Edge) NearBoxes() [2]Box {
	if e.Orientation == Vertical {
		return [...]Box{NewBox(e.Row, e.Col), NewBox(e.Row, e.Col-1)}
	}
	return [...]Box{NewBox(e.Row-1, e.Col), NewBox(e.Row, e.Col)}
}

func (e Edge) String() string {
	return fmt.Sprintf("%d,%d,%c", e.Row, e.Col, e.Orientation)
}

const (
	ClaimedLineColor   = "black"
	UnclaimedLineColor = "white"
)

type Line struct {
	Claimed bool
}

func (l Line) DisplayColor() string {
	if l.Claimed {
		return ClaimedLineColor
	}
	return UnclaimedLineColor
}

func (l Line) String() string {
	if l.Claimed {
		return "claimed line"
	}
	return "free line"
}
