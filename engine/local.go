package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/ur-fault/checkengine/experiments/metrics"
	"github.com/ur-fault/checkengine/game"
	"github.com/ur-fault/checkengine/meta"
	"github.com/ur-fault/checkengine/searcher/agent"
)

var _ Engine = (*Local)(nil)

type Option func(e *Local)

// Observer is called after every applied move.
type Observer func(b *game.Board, move game.Move)

// Local plays two agents against each other on one board.
type Local struct {
	board    *game.Board
	agents   map[game.Color]agent.Agent
	maxTurns int
	observer Observer
}

func WithMaxTurns(turns int) Option {
	return func(e *Local) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

func WithObserver(observer Observer) Option {
	return func(e *Local) {
		e.observer = observer
	}
}

func LocalEngine(board *game.Board, white, black agent.Agent, options ...Option) *Local {
	if board == nil {
		panic("engine needs a board")
	}
	if white == nil || black == nil {
		panic("engine needs an agent for each player")
	}

	e := &Local{ // Default values
		board: board,
		agents: map[game.Color]agent.Agent{
			game.White: white,
			game.Black: black,
		},
		maxTurns: meta.MaxTurns,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the game loop until a winner is found or the turn cap is hit.
func (e *Local) Run() (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		ID:             uuid.New(),
		StartingPlayer: e.board.CurrentPlayer(),
		StartTime:      time.Now(),
	}
	logger := log.With().Str("game", gameMetric.ID.String()).Logger()

	logger.Info().Msgf("%s is starting", gameMetric.StartingPlayer)

	var moveMetrics []metrics.MoveMetric
	winner, decided := e.board.Winner()
	for !decided && e.board.Turn() < e.maxTurns {
		player := e.board.CurrentPlayer()

		move, searchMetric, err := e.agents[player].FindMove(e.board)
		if err != nil {
			return "", gameMetric, moveMetrics, fmt.Errorf("%s failed to find a move: %w", player, err)
		}
		winner, decided, err = e.board.Push(move)
		if err != nil {
			return "", gameMetric, moveMetrics, fmt.Errorf("%s played an illegal move: %w", player, err)
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         len(moveMetrics) + 1,
			Player:       player,
			Move:         move.String(),
			SearchMetric: searchMetric,
		})
		logger.Debug().
			Int("turn", e.board.Turn()).
			Stringer("player", player).
			Stringer("move", move).
			Msg("played")

		if e.observer != nil {
			e.observer(e.board, move)
		}
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	gameMetric.Turns = e.board.Turn()

	if !decided {
		logger.Info().Msgf("stopped after %d turns without a winner", e.board.Turn())
		return "", gameMetric, moveMetrics, nil
	}

	gameMetric.Winner = winner.String()
	logger.Info().Msgf("%s won after %d turns", winner, e.board.Turn())
	return gameMetric.Winner, gameMetric, moveMetrics, nil
}
