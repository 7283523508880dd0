package term

import (
	"bytes"
	"errors"
	"testing"

	"github.com/HuXin0817/pipopipette/pkg/models/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainBoard(t *testing.T) {
	m, err := chess.NewMatch(1, 1, chess.Human, chess.Human, nil)
	require.NoError(t, err)
	for _, e := range chess.NewBox(0, 0).Edges() {
		_, err = m.PlayMove(e)
		require.NoError(t, err)
	}
	require.True(t, m.IsOver())

	var out bytes.Buffer
	NewRenderer(&out, false).Print(m)
	assert.Equal(t,
		"\n   0   1   \n   +---+ 0\n   | B |\n   +---+ 1\n   \nred 0 - 1 blue\nThe winner is the blue player!\n",
		out.String())
}

func TestColouredMarks(t *testing.T) {
	r := NewRenderer(nil, true)
	assert.Equal(t, "   ", r.mark(chess.Cell{}))

	red := r.mark(chess.Cell{Owner: chess.Red, Filled: true})
	assert.Contains(t, red, "R")
	assert.Contains(t, red, "\x1b[")
	assert.NotEqual(t, red, r.mark(chess.Cell{Owner: chess.Blue, Filled: true}))
}

func TestRejected(t *testing.T) {
	var out bytes.Buffer
	NewRenderer(&out, false).Rejected(errors.New("line already claimed"))
	assert.Equal(t, "Move refused: line already claimed\n", out.String())
}
