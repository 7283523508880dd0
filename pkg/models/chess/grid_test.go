package chess

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGrid(t *testing.T, rows, cols int) *Grid {
	t.Helper()
	g, err := NewGrid(rows, cols)
	require.NoError(t, err)
	return g
}

func claim(t *testing.T, g *Grid, color Color, edges ...Edge) (filled []Box) {
	t.Helper()
	for _, e := range edges {
		require.NoError(t, g.ValidateMove(e), "move %v", e)
		filled = append(filled, g.ApplyMove(e, color)...)
	}
	return
}

func TestNewGridCounts(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{{1, 1}, {1, 4}, {3, 3}, {2, 5}, {6, 6}} {
		t.Run(fmt.Sprintf("%dx%d", tc.rows, tc.cols), func(t *testing.T) {
			g := newTestGrid(t, tc.rows, tc.cols)

			want := tc.rows*(tc.cols+1) + tc.cols*(tc.rows+1)
			assert.Equal(t, want, g.EdgeCount())
			assert.Len(t, g.LegalMoves(), want)
			assert.Len(t, g.Lines(), want)
			assert.Len(t, g.Cells(), tc.rows*tc.cols)

			seen := make(map[Edge]bool)
			for _, e := range g.LegalMoves() {
				assert.False(t, seen[e], "duplicate edge %v", e)
				seen[e] = true
				assert.True(t, g.InBounds(e))
			}
		})
	}
}

func TestNewGridRejectsEmptyDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 2}} {
		_, err := NewGrid(dims[0], dims[1])
		assert.ErrorIs(t, err, ErrInvalidDimensions)
	}
}

func TestInBounds(t *testing.T) {
	g := newTestGrid(t, 2, 3)

	for _, e := range []Edge{
		NewEdge(0, 0, Horizontal), NewEdge(2, 2, Horizontal),
		NewEdge(0, 0, Vertical), NewEdge(1, 3, Vertical),
	} {
		assert.True(t, g.InBounds(e), "%v", e)
	}
	for _, e := range []Edge{
		NewEdge(0, 3, Horizontal), NewEdge(3, 0, Horizontal),
		NewEdge(2, 0, Vertical), NewEdge(0, 4, Vertical),
		NewEdge(-1, 0, Horizontal), NewEdge(0, 0, 'X'),
	} {
		assert.False(t, g.InBounds(e), "%v", e)
	}
}

func TestValidateMove(t *testing.T) {
	g := newTestGrid(t, 3, 3)
	claim(t, g, Red, NewEdge(1, 1, Vertical))

	cases := []struct {
		name string
		edge Edge
		want error
	}{
		{"free", NewEdge(0, 0, Horizontal), nil},
		{"bad orientation", NewEdge(0, 0, 'X'), ErrInvalidOrientation},
		{"bad orientation out of bounds", NewEdge(40, -2, 'X'), ErrInvalidOrientation},
		{"lowercase orientation", NewEdge(0, 0, 'h'), ErrInvalidOrientation},
		{"horizontal past last column", NewEdge(0, 3, Horizontal), ErrOutOfBounds},
		{"vertical past last row", NewEdge(3, 0, Vertical), ErrOutOfBounds},
		{"negative", NewEdge(-1, 0, Vertical), ErrOutOfBounds},
		{"claimed", NewEdge(1, 1, Vertical), ErrAlreadyClaimed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			before, _ := g.MarshalText()
			err := g.ValidateMove(tc.edge)
			if tc.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.want)
			}
			after, _ := g.MarshalText()
			assert.Equal(t, before, after, "validation must not mutate")
		})
	}
}

func TestLegalMovesShrinkByOne(t *testing.T) {
	g := newTestGrid(t, 3, 4)
	r := rand.New(rand.NewSource(7))

	for left := g.EdgeCount(); left > 0; left-- {
		moves := g.LegalMoves()
		require.Len(t, moves, left)
		require.False(t, g.IsFull())
		claim(t, g, Colors[left%2], moves[r.Intn(len(moves))])
	}
	assert.Empty(t, g.LegalMoves())
	assert.True(t, g.IsFull())
}

func TestBoxFillsOnFourthLineOnly(t *testing.T) {
	g := newTestGrid(t, 2, 2)
	b := NewBox(1, 1)
	edges := b.Edges()

	for i, e := range edges[:3] {
		assert.Empty(t, claim(t, g, Red, e), "line %d should not fill", i)
		cell, _ := g.Cell(b)
		assert.False(t, cell.Filled)
	}

	// Lines elsewhere never touch the box.
	assert.Empty(t, claim(t, g, Blue, NewEdge(0, 0, Horizontal), NewEdge(0, 0, Vertical)))
	cell, _ := g.Cell(b)
	assert.False(t, cell.Filled)

	assert.Equal(t, []Box{b}, claim(t, g, Blue, edges[3]))
	cell, _ = g.Cell(b)
	assert.Equal(t, Cell{Owner: Blue, Filled: true}, cell)
	assert.Equal(t, Score{Blue: 1}, g.Score())
}

func TestApplyMoveFillsTwoBoxes(t *testing.T) {
	g := newTestGrid(t, 1, 2)
	claim(t, g, Red,
		NewEdge(0, 0, Horizontal), NewEdge(0, 1, Horizontal),
		NewEdge(1, 0, Horizontal), NewEdge(1, 1, Horizontal),
		NewEdge(0, 0, Vertical), NewEdge(0, 2, Vertical),
	)

	filled := claim(t, g, Blue, NewEdge(0, 1, Vertical))
	assert.ElementsMatch(t, []Box{NewBox(0, 0), NewBox(0, 1)}, filled)
	assert.Equal(t, Score{Blue: 2}, g.Score())
	assert.True(t, g.IsFull())
}

func TestSettleBoxesKeepsFirstOwner(t *testing.T) {
	g := newTestGrid(t, 1, 1)
	edges := NewBox(0, 0).Edges()
	claim(t, g, Red, edges[:]...)

	assert.Empty(t, g.SettleBoxes(NewEdge(0, 0, Horizontal), Blue))
	cell, _ := g.Cell(NewBox(0, 0))
	assert.Equal(t, Red, cell.Owner)
}

func TestApplyMoveOutsideGridPanics(t *testing.T) {
	g := newTestGrid(t, 1, 1)
	assert.Panics(t, func() { g.ApplyMove(NewEdge(5, 5, Horizontal), Red) })
}

func TestFilledMatchesClaimedLinesThroughoutPlay(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := newTestGrid(t, 3, 3)
		r := rand.New(rand.NewSource(seed))
		color := Red
		for !g.IsFull() {
			moves := g.LegalMoves()
			e := moves[r.Intn(len(moves))]
			if len(g.ApplyMove(e, color)) == 0 {
				color = color.Other()
			}
			for _, cs := range g.Cells() {
				require.Equal(t, g.claimedLinesInBox(cs.Box) == 4, cs.Filled, "seed %d box %v", seed, cs.Box)
			}
		}
		s := g.Score()
		assert.Equal(t, 9, s.Red+s.Blue)
	}
}

func TestPicture(t *testing.T) {
	g := newTestGrid(t, 1, 1)
	edges := NewBox(0, 0).Edges()
	claim(t, g, Red, edges[:]...)

	want := "\n   0   1   " +
		"\n   +---+ 0" +
		"\n   | R |" +
		"\n   +---+ 1" +
		"\n   "
	assert.Equal(t, want, g.String())
}

func TestEdgeGeometry(t *testing.T) {
	assert.Equal(t, [2]Box{NewBox(2, 3), NewBox(2, 2)}, NewEdge(2, 3, Vertical).NearBoxes())
	assert.Equal(t, [2]Box{NewBox(1, 3), NewBox(2, 3)}, NewEdge(2, 3, Horizontal).NearBoxes())
	assert.Equal(t, [2]Point{NewPoint(1, 1), NewPoint(2, 1)}, NewEdge(1, 1, Vertical).Points())
	assert.Equal(t, [2]Point{NewPoint(1, 1), NewPoint(1, 2)}, NewEdge(1, 1, Horizontal).Points())
	assert.Equal(t, "4,5,V", NewEdge(4, 5, Vertical).String())

	o, err := ParseOrientation(" v ")
	require.NoError(t, err)
	assert.Equal(t, Vertical, o)
	o, err = ParseOrientation("x")
	require.NoError(t, err)
	assert.False(t, o.Valid())
	_, err = ParseOrientation("HV")
	assert.ErrorIs(t, err, ErrInvalidOrientation)
}

func TestDisplayColors(t *testing.T) {
	assert.Equal(t, "white", Line{}.DisplayColor())
	assert.Equal(t, "black", Line{Claimed: true}.DisplayColor())
	assert.Equal(t, "grey", Cell{}.DisplayColor())
	assert.Equal(t, "blue", Cell{Owner: Blue, Filled: true}.DisplayColor())
	assert.Equal(t, "B", Cell{Owner: Blue, Filled: true}.Initial())
	assert.Equal(t, "", Cell{}.Initial())
	assert.Equal(t, Blue, Red.Other())
	assert.Equal(t, Red, Blue.Other())
}
