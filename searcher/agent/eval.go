package agent

import (
	"github.com/ur-fault/checkengine/experiments/metrics"
	"github.com/ur-fault/checkengine/game"
	"github.com/ur-fault/checkengine/searcher"
)

type evaluationAgent struct {
	minimax *searcher.Minimax
}

// NewEvaluationAgent returns a new agent playing the best move found by minimax.
func NewEvaluationAgent(minimax *searcher.Minimax) Agent {
	return evaluationAgent{minimax: minimax}
}

func (a evaluationAgent) FindMove(b *game.Board) (game.Move, metrics.SearchMetric, error) {
	return a.minimax.FindBestMove(b)
}
