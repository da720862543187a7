package agent

import (
	"github.com/ur-fault/checkengine/experiments/metrics"
	"github.com/ur-fault/checkengine/game"
)

type Agent interface {
	// FindMove returns a move for the player on the move and the metrics (if collected) of the search
	FindMove(b *game.Board) (game.Move, metrics.SearchMetric, error)
}
