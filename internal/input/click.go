// Package input turns pointer positions into moves.
package input

import (
	"errors"
	"fmt"

	"othello/internal/geometry"
	"othello/internal/othello"
)

var ErrOffBoard = errors.New("click is outside the board")

// Click maps a surface point to a cell and plays it for the player to move.
// Points outside the board return ErrOffBoard and touch nothing. Rejected
// moves return the engine's error with the board and turn unchanged.
func Click(engine *othello.Engine, area geometry.Square, x, y float64) (othello.Coord, error) {
	col, row, ok := area.CellAt(x, y)
	if !ok {
		return othello.Coord{}, fmt.Errorf("point (%.1f,%.1f): %w", x, y, ErrOffBoard)
	}

	cell := othello.Coord{Col: col, Row: row}
	if err := engine.Play(col, row); err != nil {
		return cell, err
	}
	return cell, nil
}
