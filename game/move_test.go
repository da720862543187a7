package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMovePredicates(t *testing.T) {
	t.Run("quiet pawn move", func(t *testing.T) {
		m := Move{From: C(2, 2), To: C(3, 3), Piece: Pawn, Color: White}

		require.False(t, m.IsCapture())
		require.False(t, m.IsUpgrade())
		require.False(t, m.Continues())
		require.Equal(t, Pawn, m.FuturePiece())
		require.Equal(t, "C3 -> D4", m.String())
	})

	t.Run("capture that continues", func(t *testing.T) {
		m := Move{
			From:     C(2, 2),
			To:       C(4, 4),
			Piece:    Pawn,
			Color:    White,
			Capture:  true,
			Captured: Captured{At: C(3, 3), Piece: Queen},
		}

		require.True(t, m.Continues())
		require.Equal(t, "C3 -> E5 # D4 Queen", m.String())
	})

	t.Run("capture onto the far rank upgrades", func(t *testing.T) {
		m := Move{
			From:     C(2, 2),
			To:       C(0, 0),
			Piece:    Pawn,
			Color:    Black,
			Capture:  true,
			Captured: Captured{At: C(1, 1), Piece: Pawn},
		}

		require.True(t, m.IsUpgrade())
		require.False(t, m.Continues(), "Promotion should end the chain")
		require.Equal(t, Queen, m.FuturePiece())
		require.Equal(t, "C3 -> A1 # B2 Pawn @@", m.String())
	})

	t.Run("queens never upgrade", func(t *testing.T) {
		m := Move{From: C(5, 5), To: C(7, 7), Piece: Queen, Color: White}

		require.False(t, m.IsUpgrade())
		require.Equal(t, Queen, m.FuturePiece())
	})
}

func TestColor(t *testing.T) {
	require.Equal(t, Black, White.Other())
	require.Equal(t, White, White.Other().Other())
	require.Equal(t, 1, White.Dir())
	require.Equal(t, -1, Black.Dir())
	require.Equal(t, 7, White.FarRow())
	require.Equal(t, 0, Black.FarRow())
}

func TestCoordString(t *testing.T) {
	require.Equal(t, "A1", C(0, 0).String())
	require.Equal(t, "B3", C(2, 1).String())
	require.Equal(t, "H8", C(7, 7).String())
}

func TestMoveFilters(t *testing.T) {
	quiet := Move{From: C(0, 0), To: C(1, 1), Piece: Pawn}
	pawnCapture := Move{From: C(2, 2), To: C(4, 4), Piece: Pawn, Capture: true}
	queenCapture := Move{From: C(5, 5), To: C(7, 7), Piece: Queen, Capture: true}

	moves := []Move{quiet, pawnCapture, queenCapture}
	require.True(t, containsCapture(moves))
	require.False(t, containsCapture([]Move{quiet}))

	captures := filterCaptures([]Move{quiet, pawnCapture, queenCapture})
	require.Equal(t, []Move{pawnCapture, queenCapture}, captures)

	require.True(t, containsPiece(Queen, captures))
	require.Equal(t, []Move{queenCapture}, filterPiece(Queen, captures))
}
