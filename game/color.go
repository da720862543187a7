package game

// Color identifies a player. White moves first from row 0, Black from row 7.
type Color int8

const (
	White Color = iota
	Black
)

// Dir is the row direction pawns of this color advance in.
func (c Color) Dir() int {
	if c == White {
		return 1
	}
	return -1
}

func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

// HomeRow is the row a color's pawns start from.
func (c Color) HomeRow() int {
	if c == White {
		return 0
	}
	return Size - 1
}

// FarRow is the row where a color's pawns are promoted.
func (c Color) FarRow() int {
	return c.Other().HomeRow()
}

func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}
