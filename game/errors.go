package game

import "errors"

var (
	ErrInvalidMove   = errors.New("invalid move")
	ErrEmptyHistory  = errors.New("no moves to pop")
	ErrInvalidSquare = errors.New("invalid square")
	ErrInvalidConfig = errors.New("invalid configuration")
)
