package game

// RateCurrentBoard scores the position for the side to move as the
// difference between its score and the opponent's.
func (b *Board) RateCurrentBoard() float64 {
	player := b.CurrentPlayer()
	return b.ratePlayer(player) - b.ratePlayer(player.Other())
}

// ratePlayer sums material, position and capture threats of every piece.
func (b *Board) ratePlayer(color Color) float64 {
	rc := b.rating

	score := 0.0
	for _, p := range b.Pieces(color) {
		score += rc.Pieces.Rate(p.Piece)
		score += rc.Position.Rate(p.At, color, p.Piece)

		if !rc.Kills.enabled() {
			continue
		}
		captures, _ := b.MovesFor(p.At, OnlyCaptures)
		for _, m := range captures {
			score += rc.Kills.Rate(m.Captured.Piece)
		}
	}
	return score
}
