package chess

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

const fieldDelimiter = ","

// MarshalText writes one "row,col,O" line per claimed line, then one "row,col,color" line
// per filled box.
func (g *Grid) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	for _, e := range g.edges {
		if g.lines[e].Claimed {
			fmt.Fprintf(&buf, "%d,%d,%c\n", e.Row, e.Col, e.Orientation)
		}
	}
	for _, b := range g.boxes {
		if cell := g.cells[b]; cell.Filled {
			fmt.Fprintf(&buf, "%d,%d,%s\n", b.Row, b.Col, cell.Owner)
		}
	}
	return buf.Bytes(), nil
}

// UnmarshalText restores the lines and boxes listed in text on top of the current state.
// Box ownership is taken as written and not re-derived from the lines. Nothing is applied
// unless every line parses.
func (g *Grid) UnmarshalText(text []byte) error {
	records, err := g.parseRecords(string(text), 1)
	if err != nil {
		return err
	}
	g.apply(records)
	return nil
}

type record struct {
	edge    Edge
	box     Box
	owner   Color
	isBoxed bool
}

func (g *Grid) parseRecords(text string, firstLine int) (records []record, err error) {
	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimRight(raw, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		r, err := g.parseRecord(line)
		if err != nil {
			return nil, &ParseError{Line: firstLine + i, Text: line, Err: err}
		}
		records = append(records, r)
	}
	return
}

func (g *Grid) parseRecord(line string) (r record, err error) {
	fields := strings.Split(line, fieldDelimiter)
	if len(fields) != 3 {
		return r, fmt.Errorf("want 3 fields, got %d", len(fields))
	}

	row, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return r, fmt.Errorf("row: %w", err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return r, fmt.Errorf("col: %w", err)
	}

	attr := fields[2]
	if o := Orientation(firstByte(attr)); len(attr) == 1 && o.Valid() {
		r.edge = NewEdge(row, col, o)
		if !g.InBounds(r.edge) {
			return r, fmt.Errorf("line %v: %w", r.edge, ErrOutOfBounds)
		}
		return r, nil
	}

	owner, err := parseSavedColor(attr)
	if err != nil {
		return r, fmt.Errorf("%q is neither an orientation nor a color: %w", attr, ErrUnknownColor)
	}
	r.box, r.owner, r.isBoxed = NewBox(row, col), owner, true
	if !g.boxInBounds(r.box) {
		return r, fmt.Errorf("box %v: %w", r.box, ErrOutOfBounds)
	}
	return r, nil
}

// parseSavedColor accepts only the exact tokens MarshalText and Save write.
func parseSavedColor(s string) (Color, error) {
	if c := Color(s); c.Valid() {
		return c, nil
	}
	return NoColor, fmt.Errorf("color %q: %w", s, ErrUnknownColor)
}

func firstByte(s string) byte {
	if s == "" {
		return 0
	}
	return s[0]
}

func (g *Grid) apply(records []record) {
	for _, r := range records {
		if r.isBoxed {
			g.cells[r.box].assign(r.owner)
			continue
		}
		g.lines[r.edge].Claimed = true
	}
}
