package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"golang.org/x/exp/slices"
)

// CaptureFilter restricts the moves generated for a square.
type CaptureFilter int8

const (
	AnyMove CaptureFilter = iota
	OnlyCaptures
	OnlyQuiet
)

func (f CaptureFilter) quiet() bool    { return f != OnlyCaptures }
func (f CaptureFilter) captures() bool { return f != OnlyQuiet }

// Board is the whole game: the grid, the history of applied moves and the
// rating configuration used by evaluation and search. It is mutated in place
// for the entire game; the side to move is derived from the history.
type Board struct {
	squares [Size][Size]Square
	moves   []Move
	turn    int
	rating  RateConfig
}

// Located is a piece together with the square it stands on.
type Located struct {
	At Coord
	PlayersPiece
}

// NewBoard sets up rows lines of pawns for each player on the dark squares.
func NewBoard(rows int, rating RateConfig) (*Board, error) {
	if rows < 0 || rows > Size/2 {
		return nil, fmt.Errorf("starting rows %d outside [0, %d]: %w", rows, Size/2, ErrInvalidConfig)
	}

	b := EmptyBoard(rating)
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			c := C(row, col)
			if !c.Dark() {
				continue
			}
			if row < rows {
				b.set(c, NewPlayersPiece(White, Pawn))
			} else if row >= Size-rows {
				b.set(c, NewPlayersPiece(Black, Pawn))
			}
		}
	}
	return b, nil
}

// EmptyBoard returns a board without any pieces.
func EmptyBoard(rating RateConfig) *Board {
	return &Board{
		moves:  make([]Move, 0, 64),
		rating: rating,
	}
}

func (b *Board) Rating() RateConfig {
	return b.rating
}

// Turn is the number of completed full turns. A capture chain counts once.
func (b *Board) Turn() int {
	return b.turn
}

// History returns a copy of the applied moves, oldest first.
func (b *Board) History() []Move {
	return slices.Clone(b.moves)
}

func (b *Board) At(c Coord) (PlayersPiece, bool) {
	if !c.InBounds() {
		return PlayersPiece{}, false
	}
	sq := b.squares[c.Row][c.Col]
	return sq.PlayersPiece, sq.Occupied
}

// Place puts a piece on a dark square, replacing whatever stood there.
func (b *Board) Place(c Coord, p PlayersPiece) error {
	if !c.InBounds() || !c.Dark() {
		return fmt.Errorf("cannot place %s on %s: %w", p, c, ErrInvalidSquare)
	}
	b.set(c, p)
	return nil
}

func (b *Board) Remove(c Coord) {
	if c.InBounds() {
		b.clear(c)
	}
}

func (b *Board) set(c Coord, p PlayersPiece) {
	b.squares[c.Row][c.Col] = Square{PlayersPiece: p, Occupied: true}
}

func (b *Board) clear(c Coord) {
	b.squares[c.Row][c.Col] = Square{}
}

func (b *Board) isFree(c Coord) bool {
	return c.InBounds() && !b.squares[c.Row][c.Col].Occupied
}

func (b *Board) isEnemy(c Coord, color Color) bool {
	p, ok := b.At(c)
	return ok && p.Color != color
}

// Pieces lists the pieces of a player in row-major order.
func (b *Board) Pieces(color Color) []Located {
	var pieces []Located
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			sq := b.squares[row][col]
			if sq.Occupied && sq.Color == color {
				pieces = append(pieces, Located{At: C(row, col), PlayersPiece: sq.PlayersPiece})
			}
		}
	}
	return pieces
}

func (b *Board) hasPieces(color Color) bool {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			sq := b.squares[row][col]
			if sq.Occupied && sq.Color == color {
				return true
			}
		}
	}
	return false
}

func (b *Board) LastMove() (Move, bool) {
	if len(b.moves) == 0 {
		return Move{}, false
	}
	return b.moves[len(b.moves)-1], true
}

func (b *Board) LastPlayer() (Color, bool) {
	m, ok := b.LastMove()
	return m.Color, ok
}

// CurrentPlayer derives the side to move from the last move: a capture that
// did not promote keeps the turn while the landing piece can capture again.
func (b *Board) CurrentPlayer() Color {
	last, ok := b.LastMove()
	if !ok {
		return White
	}
	if last.Continues() && b.canCapture(last.To) {
		return last.Color
	}
	return last.Color.Other()
}

func (b *Board) canCapture(c Coord) bool {
	moves, ok := b.MovesFor(c, OnlyCaptures)
	return ok && len(moves) > 0
}

// MovesFor generates the moves of the piece on c, ignoring whose turn it is
// and the forced capture rules. ok is false when the square is empty.
func (b *Board) MovesFor(c Coord, filter CaptureFilter) (moves []Move, ok bool) {
	p, ok := b.At(c)
	if !ok {
		return nil, false
	}
	if p.Piece == Queen {
		return b.queenMoves(c, p.Color, filter), true
	}
	return b.pawnMoves(c, p.Color, filter), true
}

func (b *Board) pawnMoves(from Coord, color Color, filter CaptureFilter) []Move {
	var moves []Move
	dir := color.Dir()

	for _, dc := range [...]int{-1, 1} {
		to := from.Step(dir, dc)
		if b.isFree(to) {
			if filter.quiet() {
				moves = append(moves, Move{From: from, To: to, Piece: Pawn, Color: color})
			}
			continue
		}

		landing := to.Step(dir, dc)
		if filter.captures() && b.isEnemy(to, color) && b.isFree(landing) {
			jumped, _ := b.At(to)
			moves = append(moves, Move{
				From:     from,
				To:       landing,
				Piece:    Pawn,
				Color:    color,
				Capture:  true,
				Captured: Captured{At: to, Piece: jumped.Piece},
			})
		}
	}
	return moves
}

func (b *Board) queenMoves(from Coord, color Color, filter CaptureFilter) []Move {
	var moves []Move

	for _, dr := range [...]int{-1, 1} {
		for _, dc := range [...]int{-1, 1} {
			to := from.Step(dr, dc)
			for b.isFree(to) {
				if filter.quiet() {
					moves = append(moves, Move{From: from, To: to, Piece: Queen, Color: color})
				}
				to = to.Step(dr, dc)
			}

			if !filter.captures() || !b.isEnemy(to, color) {
				continue
			}

			// Flying capture: any free square past the jumped piece is a landing.
			jumped, _ := b.At(to)
			for landing := to.Step(dr, dc); b.isFree(landing); landing = landing.Step(dr, dc) {
				moves = append(moves, Move{
					From:     from,
					To:       landing,
					Piece:    Queen,
					Color:    color,
					Capture:  true,
					Captured: Captured{At: to, Piece: jumped.Piece},
				})
			}
		}
	}
	return moves
}

// LegalMoves returns the moves of the side to move. Captures are forced, and
// when a queen can capture only queen captures remain.
func (b *Board) LegalMoves() []Move {
	var moves []Move
	for _, p := range b.Pieces(b.CurrentPlayer()) {
		pm, _ := b.MovesFor(p.At, AnyMove)
		moves = append(moves, pm...)
	}

	if !containsCapture(moves) {
		return moves
	}
	moves = filterCaptures(moves)

	if !containsPiece(Queen, moves) {
		return moves
	}
	return filterPiece(Queen, moves)
}

func (b *Board) IsLegal(m Move) bool {
	p, ok := b.At(m.From)
	if !ok || p.Color != b.CurrentPlayer() {
		return false
	}
	return slices.Contains(b.LegalMoves(), m)
}

// Winner reports the winner of a finished game. A player without pieces, or
// without legal moves on their turn, loses.
func (b *Board) Winner() (Color, bool) {
	if !b.hasPieces(White) {
		return Black, true
	}
	if !b.hasPieces(Black) {
		return White, true
	}
	if len(b.LegalMoves()) == 0 {
		return b.CurrentPlayer().Other(), true
	}
	return White, false
}

// Push validates and applies m, then reports the winner if the game is over.
func (b *Board) Push(m Move) (winner Color, decided bool, err error) {
	if !b.IsLegal(m) {
		return White, false, fmt.Errorf("%s cannot play %s: %w", m.Color, m, ErrInvalidMove)
	}
	b.PushUnchecked(m)
	winner, decided = b.Winner()
	return winner, decided, nil
}

// PushUnchecked applies a move known to come from LegalMoves.
func (b *Board) PushUnchecked(m Move) {
	b.clear(m.From)
	if m.Capture {
		b.clear(m.Captured.At)
	}
	b.set(m.To, NewPlayersPiece(m.Color, m.FuturePiece()))

	b.moves = append(b.moves, m)

	if b.CurrentPlayer() != m.Color {
		b.turn++
	}
}

// Pop undoes the last move.
func (b *Board) Pop() (Move, error) {
	if len(b.moves) == 0 {
		return Move{}, fmt.Errorf("pop: %w", ErrEmptyHistory)
	}
	return b.pop(), nil
}

func (b *Board) pop() Move {
	m := b.moves[len(b.moves)-1]
	if b.CurrentPlayer() != m.Color {
		b.turn--
	}
	b.moves = b.moves[:len(b.moves)-1]

	b.set(m.From, NewPlayersPiece(m.Color, m.Piece))
	if m.Capture {
		b.set(m.Captured.At, NewPlayersPiece(m.Color.Other(), m.Captured.Piece))
	}
	b.clear(m.To)

	return m
}

// WithMove applies m without validation, calls fn and undoes m again.
func (b *Board) WithMove(m Move, fn func(*Board)) {
	before := len(b.moves)
	b.PushUnchecked(m)
	fn(b)
	if len(b.moves) != before+1 {
		panic(fmt.Sprintf("history changed from %d to %d moves while exploring %s", before+1, len(b.moves), m))
	}
	b.pop()
}

// Hash digests the grid, the history length and the turn counter.
func (b *Board) Hash() uint64 {
	hasher := fnv.New64a()

	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			sq := b.squares[row][col]
			if !sq.Occupied {
				hasher.Write([]byte{0})
				continue
			}
			hasher.Write([]byte{1, byte(sq.Color), byte(sq.Piece)})
		}
	}

	binary.Write(hasher, binary.LittleEndian, int64(len(b.moves)))
	binary.Write(hasher, binary.LittleEndian, int64(b.turn))

	return hasher.Sum64()
}
