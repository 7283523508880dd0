package player

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/HuXin0817/pipopipette/pkg/models/chess"
)

const (
	rowPrompt         = "Row index of the line you want to play? "
	colPrompt         = "Column index of the line you want to play? "
	orientationPrompt = "Orientation of the line you want to play (H or V)? "
)

// Human reads its moves from a terminal. The move is not checked against the grid; the
// match rejects illegal ones.
type Human struct {
	color chess.Color
	in    *bufio.Reader
	out   io.Writer
}

func NewHuman(c chess.Color, in io.Reader, out io.Writer) *Human {
	br, ok := in.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(in)
	}
	return &Human{color: c, in: br, out: out}
}

func (h *Human) Color() chess.Color { return h.color }

func (h *Human) Kind() chess.Kind { return chess.Human }

func (h *Human) ChooseMove(*chess.Grid) (chess.Edge, error) {
	row, err := h.readInt(rowPrompt)
	if err != nil {
		return chess.Edge{}, err
	}
	col, err := h.readInt(colPrompt)
	if err != nil {
		return chess.Edge{}, err
	}

	for {
		s, err := h.ask(orientationPrompt)
		if err != nil {
			return chess.Edge{}, err
		}
		o, err := chess.ParseOrientation(s)
		if err != nil {
			fmt.Fprintln(h.out, "Please type a single letter.")
			continue
		}
		return chess.NewEdge(row, col, o), nil
	}
}

func (h *Human) readInt(prompt string) (int, error) {
	for {
		s, err := h.ask(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(s)
		if err == nil {
			return n, nil
		}
		fmt.Fprintf(h.out, "%q is not a number.\n", s)
	}
}

func (h *Human) ask(prompt string) (string, error) {
	fmt.Fprint(h.out, prompt)
	line, err := h.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("read %s player move: %w", h.color, err)
	}
	return strings.TrimSpace(line), nil
}
