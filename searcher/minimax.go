package searcher

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/ur-fault/checkengine/experiments/metrics"
	"github.com/ur-fault/checkengine/game"
)

type Option func(m *Minimax)

// Minimax is an exhaustive depth-bounded search. It explores the board in
// place through apply/undo and leaves it as it found it.
type Minimax struct {
	maxDepth int
	win      float64
	evaluate game.Evaluate
	metrics  metrics.Collector
}

// WithMaxDepth bounds the search in full turns. A capture chain counts as one
// turn.
func WithMaxDepth(depth int) Option {
	return func(m *Minimax) {
		if depth >= 0 {
			m.maxDepth = depth
		}
	}
}

func WithWin(win float64) Option {
	return func(m *Minimax) {
		if win > 0 {
			m.win = win
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

// NewMinimax creates a search. Depth and win value default to the board's
// RateConfig.
func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		maxDepth: -1,
		evaluate: game.EvaluateRates,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// MaxDepth reports the configured depth, or -1 when the board decides.
func (m *Minimax) MaxDepth() int {
	return m.maxDepth
}

func (m *Minimax) settings(b *game.Board) (maxDepth int, win float64) {
	maxDepth, win = m.maxDepth, m.win
	if maxDepth < 0 {
		maxDepth = b.Rating().MaxDepth
	}
	if win <= 0 {
		win = b.Rating().Win
	}
	return maxDepth, win
}

// Rate returns the minimax value of b from the perspective of player.
func (m *Minimax) Rate(b *game.Board, player game.Color) float64 {
	maxDepth, win := m.settings(b)
	s := &search{maxDepth: maxDepth, win: win, evaluate: m.evaluate, metrics: metrics.NewDummyCollector()}

	rating := s.rate(b, 0)
	if player != b.CurrentPlayer() {
		return -rating
	}
	return rating
}

// FindBestMove returns the first legal move with the highest minimax value
// for the player on the move.
func (m *Minimax) FindBestMove(b *game.Board) (game.Move, metrics.SearchMetric, error) {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, metrics.SearchMetric{}, fmt.Errorf("%s on turn %d: %w", b.CurrentPlayer(), b.Turn(), ErrNoLegalMoves)
	}

	maxDepth, win := m.settings(b)
	s := &search{maxDepth: maxDepth, win: win, evaluate: m.evaluate, metrics: m.metrics}

	m.metrics.Start(maxDepth)
	mover := b.CurrentPlayer()
	best, bestRating := moves[0], 0.0
	for i, move := range moves {
		var rating float64
		b.WithMove(move, func(child *game.Board) {
			rating = s.rate(child, 0)
			if child.CurrentPlayer() != mover {
				rating = -rating
			}
		})
		if i == 0 || rating > bestRating {
			best, bestRating = move, rating
		}
	}
	metric := m.metrics.Complete()

	log.Debug().Msgf("%s picked %s rated %g", mover, best, bestRating)
	return best, metric, nil
}

type search struct {
	maxDepth int
	win      float64
	evaluate game.Evaluate
	metrics  metrics.Collector
}

// rate scores b from the perspective of its mover. depth counts completed
// full turns below the search root.
func (s *search) rate(b *game.Board, depth int) float64 {
	s.metrics.AddNode()

	if winner, decided := b.Winner(); decided {
		s.metrics.AddTerminal()
		return terminal(b, winner, s.win)
	}
	if depth >= s.maxDepth {
		s.metrics.AddLeaf()
		return s.evaluate(b)
	}

	mover := b.CurrentPlayer()
	best := 0.0
	for i, move := range b.LegalMoves() {
		var rating float64
		b.WithMove(move, func(child *game.Board) {
			if child.CurrentPlayer() == mover {
				rating = s.rate(child, depth)
			} else {
				rating = -s.rate(child, depth+1)
			}
		})
		if i == 0 || rating > best {
			best = rating
		}
	}
	return best
}
