package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ur-fault/checkengine/game"
)

func place(t *testing.T, pieces map[game.Coord]game.PlayersPiece) *game.Board {
	t.Helper()
	b := game.EmptyBoard(game.DefaultRateConfig())
	for c, p := range pieces {
		require.NoError(t, b.Place(c, p))
	}
	return b
}

var (
	whitePawn = game.NewPlayersPiece(game.White, game.Pawn)
	blackPawn = game.NewPlayersPiece(game.Black, game.Pawn)
)

func TestFindBestMove(t *testing.T) {
	t.Run("continuing a winning capture chain beats an earlier capture", func(t *testing.T) {
		b := place(t, map[game.Coord]game.PlayersPiece{
			game.C(2, 2): whitePawn,
			game.C(2, 4): whitePawn,
			game.C(3, 3): blackPawn,
			game.C(5, 1): blackPawn,
		})
		moves := b.LegalMoves()
		require.Len(t, moves, 2, "Both pawns can capture")
		require.Equal(t, game.C(2, 2), moves[0].From, "The capture ending the turn is generated first")

		m := NewMinimax(WithMaxDepth(1))
		move, _, err := m.FindBestMove(b)

		require.NoError(t, err)
		require.Equal(t, game.C(2, 4), move.From, "Search should start the chain")
		require.Equal(t, game.C(4, 2), move.To, "Search should land next to the second victim")
	})

	t.Run("always captures when a capture is available", func(t *testing.T) {
		b := place(t, map[game.Coord]game.PlayersPiece{
			game.C(1, 1): whitePawn,
			game.C(2, 2): whitePawn,
			game.C(3, 3): blackPawn,
			game.C(6, 6): blackPawn,
		})

		move, _, err := NewMinimax(WithMaxDepth(1)).FindBestMove(b)

		require.NoError(t, err)
		require.True(t, move.IsCapture(), "Captures are forced")
	})

	t.Run("board without moves", func(t *testing.T) {
		b := place(t, map[game.Coord]game.PlayersPiece{
			game.C(7, 1): whitePawn,
			game.C(0, 0): blackPawn,
		})

		_, _, err := NewMinimax().FindBestMove(b)

		require.ErrorIs(t, err, ErrNoLegalMoves)
	})

	t.Run("leaves the board untouched", func(t *testing.T) {
		b, err := game.NewBoard(3, game.DefaultRateConfig())
		require.NoError(t, err)
		hash, history := b.Hash(), len(b.History())

		_, _, err = NewMinimax(WithMaxDepth(2)).FindBestMove(b)

		require.NoError(t, err)
		require.Equal(t, hash, b.Hash(), "Search should undo every move it applies")
		require.Len(t, b.History(), history)
		require.Equal(t, game.White, b.CurrentPlayer())
	})

	t.Run("custom evaluation picks the first best move", func(t *testing.T) {
		b, err := game.NewBoard(2, game.DefaultRateConfig())
		require.NoError(t, err)
		// Rated from Black's side after White's move.
		evaluate := func(b *game.Board) float64 {
			if p, ok := b.At(game.C(2, 6)); ok && p.Color == game.White {
				return -5
			}
			return 0
		}

		move, _, err := NewMinimax(WithMaxDepth(0), WithEvaluationFn(evaluate)).FindBestMove(b)

		require.NoError(t, err)
		require.Equal(t, game.C(1, 5), move.From)
		require.Equal(t, game.C(2, 6), move.To)
	})

	t.Run("metrics count the explored positions", func(t *testing.T) {
		b, err := game.NewBoard(2, game.DefaultRateConfig())
		require.NoError(t, err)
		require.Len(t, b.LegalMoves(), 7)

		_, metric, err := NewMinimax(WithMaxDepth(0), WithMetrics()).FindBestMove(b)

		require.NoError(t, err)
		require.Equal(t, 0, metric.MaxDepth)
		require.Equal(t, 7, metric.Nodes, "Every child should be visited once")
		require.Equal(t, 7, metric.Leaves, "Every child should be cut at depth 0")
		require.Equal(t, 0, metric.Terminals)
	})

	t.Run("metrics are empty without collector", func(t *testing.T) {
		b, err := game.NewBoard(2, game.DefaultRateConfig())
		require.NoError(t, err)

		_, metric, err := NewMinimax(WithMaxDepth(1)).FindBestMove(b)

		require.NoError(t, err)
		require.Zero(t, metric.Nodes)
	})
}

func TestRate(t *testing.T) {
	t.Run("decided board rates exactly the win value", func(t *testing.T) {
		b := place(t, map[game.Coord]game.PlayersPiece{
			game.C(2, 2): whitePawn,
		})

		m := NewMinimax()
		require.Equal(t, 1000.0, m.Rate(b, game.White))
		require.Equal(t, -1000.0, m.Rate(b, game.Black))

		m = NewMinimax(WithWin(7))
		require.Equal(t, 7.0, m.Rate(b, game.White))
		require.Equal(t, -7.0, m.Rate(b, game.Black))
	})

	t.Run("perspectives are opposite", func(t *testing.T) {
		b, err := game.NewBoard(2, game.DefaultRateConfig())
		require.NoError(t, err)

		m := NewMinimax(WithMaxDepth(1))
		require.Equal(t, m.Rate(b, game.White), -m.Rate(b, game.Black))
	})

	t.Run("depth 0 is the static evaluation", func(t *testing.T) {
		b := place(t, map[game.Coord]game.PlayersPiece{
			game.C(2, 2): whitePawn,
			game.C(3, 3): blackPawn,
			game.C(6, 6): blackPawn,
		})

		m := NewMinimax(WithMaxDepth(0))
		require.Equal(t, b.RateCurrentBoard(), m.Rate(b, game.White))
	})

	t.Run("winning chain is worth the win value", func(t *testing.T) {
		b := place(t, map[game.Coord]game.PlayersPiece{
			game.C(2, 4): whitePawn,
			game.C(3, 3): blackPawn,
			game.C(5, 1): blackPawn,
		})

		m := NewMinimax(WithMaxDepth(1))
		require.Equal(t, 1000.0, m.Rate(b, game.White), "White takes both pawns in one turn")
	})

	t.Run("negative options keep the defaults", func(t *testing.T) {
		m := NewMinimax(WithMaxDepth(-3), WithWin(-1), WithEvaluationFn(nil))
		require.Equal(t, -1, m.MaxDepth())
		require.NotNil(t, m.evaluate)
	})
}
