package chess

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

type State int8

const (
	Setup State = iota
	InProgress
	Finished
)

func (s State) String() string {
	switch s {
	case Setup:
		return "Setup"
	case InProgress:
		return "InProgress"
	case Finished:
		return "Finished"
	}
	return ""
}

// Match runs turns over a Grid for a red and a blue player. Red moves first.
// Calls must be serialised by the owner; a Match holds no lock.
type Match struct {
	grid         *Grid
	players      map[Color]Player
	current      Color
	winner       Color
	state        State
	seating      Seating
	humanRestore bool
}

type Option func(*Match)

// WithHumanRestore makes Load seat two Human players whatever kinds the save records.
func WithHumanRestore() Option {
	return func(m *Match) {
		m.humanRestore = true
	}
}

func NewMatch(rows, cols int, red, blue Kind, seating Seating, opts ...Option) (*Match, error) {
	m := &Match{
		current: Red,
		state:   Setup,
		seating: seating,
	}
	if m.seating == nil {
		m.seating = NewSeat
	}
	for _, opt := range opts {
		opt(m)
	}

	var err error
	if m.grid, err = NewGrid(rows, cols); err != nil {
		return nil, err
	}
	if err = m.seat(red, blue); err != nil {
		return nil, err
	}

	m.state = InProgress
	return m, nil
}

func (m *Match) seat(red, blue Kind) error {
	players := make(map[Color]Player, len(Colors))
	for c, k := range map[Color]Kind{Red: red, Blue: blue} {
		if _, ok := kindName[k]; !ok {
			return fmt.Errorf("%s player: %w", c, ErrUnknownKind)
		}
		players[c] = m.seating(c, k)
	}
	m.players = players
	return nil
}

func (m *Match) Grid() *Grid { return m.grid }

func (m *Match) Current() Color { return m.current }

func (m *Match) Player(c Color) Player { return m.players[c] }

func (m *Match) CurrentPlayer() Player { return m.players[m.current] }

func (m *Match) State() State { return m.state }

func (m *Match) Winner() (Color, bool) {
	return m.winner, m.winner != NoColor
}

// PlayMove plays e for the current player. It returns the boxes the move filled; the
// current player keeps the turn if there is at least one. A rejected move changes nothing.
func (m *Match) PlayMove(e Edge) ([]Box, error) {
	if err := m.grid.ValidateMove(e); err != nil {
		return nil, err
	}

	filled := m.grid.ApplyMove(e, m.current)
	if len(filled) == 0 {
		m.current = m.current.Other()
	}
	return filled, nil
}

// IsOver reports whether every line is claimed. The first time it does, the winner is
// decided: red only with strictly more boxes, blue otherwise, ties included.
func (m *Match) IsOver() bool {
	if !m.grid.IsFull() {
		return false
	}
	if m.winner == NoColor {
		if s := m.grid.Score(); s.Red > s.Blue {
			m.winner = Red
		} else {
			m.winner = Blue
		}
		m.state = Finished
	}
	return true
}

func (m *Match) Message() string {
	if m.winner == NoColor {
		return fmt.Sprintf("It is the %s player's turn.", m.current)
	}
	return fmt.Sprintf("The winner is the %s player!", m.winner)
}

// Save writes the current color, the red and blue kinds, then the grid lines.
func (m *Match) Save(w io.Writer) error {
	body, err := m.grid.MarshalText()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s\n%s\n%s\n", m.current, m.players[Red].Kind(), m.players[Blue].Kind())
	buf.Write(body)

	if _, err = buf.WriteTo(w); err != nil {
		return fmt.Errorf("save match: %w", err)
	}
	return nil
}

const headerLines = 3

// Load replaces the match with the one read from r onto a fresh grid of the same size.
// On error the match is left as it was.
func (m *Match) Load(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("load match: %w", err)
	}

	parts := strings.SplitN(string(data), "\n", headerLines+1)
	if len(parts) < headerLines {
		return &ParseError{Line: len(parts), Text: string(data), Err: fmt.Errorf("want %d header lines", headerLines)}
	}
	header := make([]string, headerLines)
	for i := range header {
		header[i] = strings.TrimRight(parts[i], "\r")
	}

	current, err := parseSavedColor(header[0])
	if err != nil {
		return &ParseError{Line: 1, Text: header[0], Err: err}
	}
	var kinds [2]Kind
	for i := range kinds {
		if kinds[i], err = ParseKind(header[i+1]); err != nil {
			return &ParseError{Line: i + 2, Text: header[i+1], Err: err}
		}
	}

	grid, err := NewGrid(m.grid.Rows(), m.grid.Cols())
	if err != nil {
		return err
	}
	var body string
	if len(parts) > headerLines {
		body = parts[headerLines]
	}
	records, err := grid.parseRecords(body, headerLines+1)
	if err != nil {
		return err
	}
	grid.apply(records)

	red, blue := kinds[0], kinds[1]
	if m.humanRestore {
		red, blue = Human, Human
	}
	if err = m.seat(red, blue); err != nil {
		return err
	}
	m.grid = grid
	m.current = current
	m.winner = NoColor
	m.state = InProgress
	return nil
}
