package game

import "fmt"

// Coord addresses a square by row and column, both in [0, Size).
type Coord struct {
	Row int
	Col int
}

func C(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

func (c Coord) InBounds() bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

// Dark reports whether pieces may stand on c. A1 (0, 0) is dark.
func (c Coord) Dark() bool {
	return (c.Row+c.Col)%2 == 0
}

// Step returns the coordinate offset by dr rows and dc columns.
func (c Coord) Step(dr, dc int) Coord {
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// String renders the column as a letter and the row as a 1-based number, e.g. "A1".
func (c Coord) String() string {
	return fmt.Sprintf("%c%d", 'A'+rune(c.Col), c.Row+1)
}
