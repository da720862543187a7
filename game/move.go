package game

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Captured records a jumped piece so that it can be restored on undo.
// Its color is always the opponent of the mover.
type Captured struct {
	At    Coord
	Piece Piece
}

// Move is a single piece transition. One turn may consist of several moves
// when a piece chains captures, so the mover's color is stored explicitly.
type Move struct {
	From  Coord
	To    Coord
	Piece Piece // kind before promotion
	Color Color

	Capture  bool
	Captured Captured
}

func (m Move) IsCapture() bool {
	return m.Capture
}

// IsUpgrade reports whether a pawn lands on the far rank with this move.
func (m Move) IsUpgrade() bool {
	return m.Piece == Pawn && m.To.Row == m.Color.FarRow()
}

// Continues reports whether the mover may keep capturing after this move.
// Promotion ends a capture chain.
func (m Move) Continues() bool {
	return m.Capture && !m.IsUpgrade()
}

// FuturePiece is the kind of the piece after it lands.
func (m Move) FuturePiece() Piece {
	if m.IsUpgrade() {
		return Queen
	}
	return m.Piece
}

func (m Move) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s -> %s", m.From, m.To)
	if m.Capture {
		fmt.Fprintf(&sb, " # %s %s", m.Captured.At, m.Captured.Piece)
	}
	if m.IsUpgrade() {
		sb.WriteString(" @@")
	}
	return sb.String()
}

func containsCapture(moves []Move) bool {
	return slices.ContainsFunc(moves, Move.IsCapture)
}

func filterCaptures(moves []Move) []Move {
	return slices.DeleteFunc(moves, func(m Move) bool { return !m.Capture })
}

func containsPiece(piece Piece, moves []Move) bool {
	return slices.ContainsFunc(moves, func(m Move) bool { return m.Piece == piece })
}

func filterPiece(piece Piece, moves []Move) []Move {
	return slices.DeleteFunc(moves, func(m Move) bool { return m.Piece != piece })
}
