package player

import (
	"fmt"
	"math/rand"

	"github.com/HuXin0817/pipopipette/pkg/models/chess"
)

// Automated plays a uniformly random legal move.
type Automated struct {
	color chess.Color
	rng   *rand.Rand
}

func NewAutomated(c chess.Color, rng *rand.Rand) *Automated {
	return &Automated{color: c, rng: rng}
}

func (a *Automated) Color() chess.Color { return a.color }

func (a *Automated) Kind() chess.Kind { return chess.Automated }

func (a *Automated) ChooseMove(g *chess.Grid) (chess.Edge, error) {
	moves := g.LegalMoves()
	if len(moves) == 0 {
		return chess.Edge{}, fmt.Errorf("%s player: %w", a.color, chess.ErrNoLegalMove)
	}
	return moves[a.rng.Intn(len(moves))], nil
}
