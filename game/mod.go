package game

// Size is the side length of the board.
const Size = 8

// Evaluates the board to a score from the perspective of the player to move:
// positive values favor the mover, negative values favor the opponent.
type Evaluate func(*Board) float64

// EvaluateRates is the default evaluation driven by the board's RateConfig.
func EvaluateRates(b *Board) float64 {
	return b.RateCurrentBoard()
}
