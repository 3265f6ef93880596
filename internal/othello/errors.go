package othello

import "errors"

var (
	ErrOutOfBounds  = errors.New("cell is off the board")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrIllegalMove  = errors.New("move captures nothing")
)
