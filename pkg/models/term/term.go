package term

import (
	"fmt"
	"io"
	"strings"

	"github.com/HuXin0817/pipopipette/pkg/models/chess"
	"github.com/logrusorgru/aurora"
)

// Renderer prints matches to a terminal, colouring each box by its owner.
type Renderer struct {
	out io.Writer
	au  aurora.Aurora
}

func NewRenderer(out io.Writer, colors bool) *Renderer {
	return &Renderer{out: out, au: aurora.NewAurora(colors)}
}

func (r *Renderer) mark(cell chess.Cell) string {
	switch cell.Owner {
	case chess.Red:
		return " " + r.au.Red(cell.Initial()).Bold().String() + " "
	case chess.Blue:
		return " " + r.au.Blue(cell.Initial()).Bold().String() + " "
	}
	return chess.CenterMark(cell)
}

func (r *Renderer) color(c chess.Color) string {
	switch c {
	case chess.Red:
		return r.au.Red(c).String()
	case chess.Blue:
		return r.au.Blue(c).String()
	}
	return string(c)
}

// Board renders the grid followed by the score and the turn or result message.
func (r *Renderer) Board(m *chess.Match) string {
	var sb strings.Builder
	sb.WriteString(m.Grid().Picture(r.mark))
	sb.WriteString("\n")

	score := m.Grid().Score()
	fmt.Fprintf(&sb, "%s %d - %d %s\n", r.color(chess.Red), score.Red, score.Blue, r.color(chess.Blue))
	if winner, ok := m.Winner(); ok {
		sb.WriteString(strings.Replace(m.Message(), string(winner), r.color(winner), 1))
	} else {
		sb.WriteString(strings.Replace(m.Message(), string(m.Current()), r.color(m.Current()), 1))
	}
	sb.WriteString("\n")
	return sb.String()
}

func (r *Renderer) Print(m *chess.Match) {
	fmt.Fprint(r.out, r.Board(m))
}

// Rejected tells the player why a move was refused.
func (r *Renderer) Rejected(err error) {
	fmt.Fprintln(r.out, r.au.Yellow(fmt.Sprintf("Move refused: %v", err)))
}
