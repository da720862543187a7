package game

import "fmt"

// Piece is the kind of a piece regardless of who owns it.
type Piece int8

const (
	Pawn Piece = iota
	Queen
)

func (p Piece) String() string {
	if p == Queen {
		return "Queen"
	}
	return "Pawn"
}

// PlayersPiece is a piece belonging to a player.
type PlayersPiece struct {
	Color Color
	Piece Piece
}

func NewPlayersPiece(color Color, piece Piece) PlayersPiece {
	return PlayersPiece{Color: color, Piece: piece}
}

// Symbol is the single character used when printing the board:
// w/W for white pawn/queen, b/B for black.
func (p PlayersPiece) Symbol() byte {
	var s byte = 'w'
	if p.Color == Black {
		s = 'b'
	}
	if p.Piece == Queen {
		s -= 'a' - 'A'
	}
	return s
}

func (p PlayersPiece) String() string {
	return fmt.Sprintf("%s %s", p.Color, p.Piece)
}

// Square is a single cell of the board. The zero value is an empty square.
type Square struct {
	PlayersPiece
	Occupied bool
}
