package player

import (
	"bufio"
	"io"
	"math/rand"

	"github.com/HuXin0817/pipopipette/pkg/models/chess"
)

// Seat returns a Seating whose human players share in and out, and whose automated
// players draw from rng. rng is not safe for concurrent matches.
func Seat(in io.Reader, out io.Writer, rng *rand.Rand) chess.Seating {
	br := bufio.NewReader(in)
	return func(c chess.Color, k chess.Kind) chess.Player {
		if k == chess.Automated {
			return NewAutomated(c, rng)
		}
		return NewHuman(c, br, out)
	}
}
