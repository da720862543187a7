package searcher

import (
	"errors"

	"github.com/ur-fault/checkengine/game"
)

var ErrNoLegalMoves = errors.New("no legal moves")

// terminal scores a decided position from the perspective of the mover.
func terminal(b *game.Board, winner game.Color, win float64) float64 {
	if winner == b.CurrentPlayer() {
		return win
	}
	return -win
}
