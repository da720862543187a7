package agent

import (
	"fmt"

	"github.com/ur-fault/checkengine/experiments/metrics"
	"github.com/ur-fault/checkengine/game"
	"github.com/ur-fault/checkengine/searcher"
	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns a baseline agent picking uniformly among the legal
// moves. Agents with the same seed play the same games.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(b *game.Board) (game.Move, metrics.SearchMetric, error) {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, metrics.SearchMetric{}, fmt.Errorf("%s on turn %d: %w", b.CurrentPlayer(), b.Turn(), searcher.ErrNoLegalMoves)
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{}, nil
}
