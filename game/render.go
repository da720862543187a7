package game

import (
	"fmt"
	"strings"
)

func (b *Board) String() string {
	return b.render(nil)
}

// RenderMoves prints the board with the destinations of the piece on c
// marked by '*'.
func (b *Board) RenderMoves(c Coord) string {
	moves, _ := b.MovesFor(c, AnyMove)
	return b.render(moves)
}

func (b *Board) render(moves []Move) string {
	var sb strings.Builder

	player := b.CurrentPlayer()
	fmt.Fprintf(&sb, "#%d - Player %s is on the move\n", b.turn+1, player)
	fmt.Fprintf(&sb, "Rating for %s - %g\n", player, b.RateCurrentBoard())

	targets := make(map[Coord]bool, len(moves))
	for _, m := range moves {
		targets[m.To] = true
	}

	sb.WriteString("  ")
	for col := 0; col < Size; col++ {
		fmt.Fprintf(&sb, " %c", 'A'+rune(col))
	}
	sb.WriteByte('\n')

	// Row 8 on top so that White plays upwards.
	for row := Size - 1; row >= 0; row-- {
		fmt.Fprintf(&sb, "%d |", row+1)
		for col := 0; col < Size; col++ {
			c := C(row, col)
			switch p, ok := b.At(c); {
			case ok:
				sb.WriteByte(p.Symbol())
			case targets[c]:
				sb.WriteByte('*')
			default:
				sb.WriteByte('.')
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
