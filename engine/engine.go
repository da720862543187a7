package engine

import "github.com/ur-fault/checkengine/experiments/metrics"

type Engine interface {
	// Run plays a game till there's a winner or the turn cap is reached. The winner is empty for a draw.
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
