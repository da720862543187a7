package meta

// StartingRows is the number of pawn rows each player starts with.
const StartingRows = 2

// MaxTurns caps the number of full turns of a game.
const MaxTurns = 100

// DefaultDepth is the minimax depth in full turns.
const DefaultDepth = 5
