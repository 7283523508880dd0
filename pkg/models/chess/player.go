package chess

import (
	"errors"
	"fmt"
	"strings"
)

type Kind int8

const (
	Human Kind = iota + 1
	Automated
)

var kindName = map[Kind]string{
	Human:     "Human",
	Automated: "Automated",
}

func (k Kind) String() string {
	return kindName[k]
}

func ParseKind(s string) (Kind, error) {
	s = strings.TrimSpace(s)
	for k, name := range kindName {
		if strings.EqualFold(s, name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("kind %q: %w", s, ErrUnknownKind)
}

// Player picks the next move for the color it is seated at.
type Player interface {
	Color() Color
	Kind() Kind
	ChooseMove(g *Grid) (Edge, error)
}

// Seating builds the player of the given kind for a color.
type Seating func(Color, Kind) Player

var ErrNoChooser = errors.New("player takes its moves from outside the match")

// seat is the player used when no Seating is supplied: it records color and kind, and its
// moves must be submitted to the match directly.
type seat struct {
	color Color
	kind  Kind
}

func (s seat) Color() Color { return s.color }

func (s seat) Kind() Kind { return s.kind }

func (s seat) ChooseMove(*Grid) (Edge, error) { return Edge{}, ErrNoChooser }

func NewSeat(c Color, k Kind) Player {
	return seat{color: c, kind: k}
}
