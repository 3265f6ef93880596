// Package othello holds the game rules. Nothing here knows about drawing.
package othello

import (
	"fmt"

	"go.uber.org/zap"
)

type Engine struct {
	board  Board
	turn   Player
	logger *zap.Logger
}

// NewEngine sets up the opening position with Black to move.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		board:  NewBoard(),
		turn:   PlayerBlack,
		logger: logger,
	}
}

// Board returns a copy of the grid.
func (e *Engine) Board() Board {
	return e.board
}

func (e *Engine) Turn() Player {
	return e.turn
}

func (e *Engine) Count(kind Cell) int {
	return e.board.Count(kind)
}

// IsValidMove reports whether the player to move may place at (col, row).
func (e *Engine) IsValidMove(col, row int) bool {
	if !inBounds(col, row) || e.board[col][row] != Empty {
		return false
	}

	self := e.turn.Piece()
	for _, d := range directions {
		if _, ok := e.board.bounded(col, row, d.dx, d.dy, self); ok {
			return true
		}
	}
	return false
}

func (e *Engine) checkMove(col, row int) error {
	if !inBounds(col, row) {
		return fmt.Errorf("move (%d,%d): %w", col, row, ErrOutOfBounds)
	}
	if e.board[col][row] != Empty {
		return fmt.Errorf("move (%d,%d): %w", col, row, ErrCellOccupied)
	}
	if !e.IsValidMove(col, row) {
		return fmt.Errorf("move (%d,%d) for %s: %w", col, row, e.turn, ErrIllegalMove)
	}
	return nil
}

// MakeMove places the current player's piece at (col, row) and flips every
// bounded run of opponent pieces. The board is left untouched when the move
// is not legal. The turn does not change.
func (e *Engine) MakeMove(col, row int) error {
	if err := e.checkMove(col, row); err != nil {
		return err
	}

	self := e.turn.Piece()
	e.board[col][row] = self

	flipped := 0
	for _, d := range directions {
		// rays from one origin never share a cell, so flipping right after
		// each scan cannot affect the next direction
		run, ok := e.board.bounded(col, row, d.dx, d.dy, self)
		if !ok {
			continue
		}
		for _, c := range run {
			e.board[c.Col][c.Row] = self
		}
		flipped += len(run)
	}

	e.logger.Debug("move applied",
		zap.Int("col", col),
		zap.Int("row", row),
		zap.Stringer("player", e.turn),
		zap.Int("flipped", flipped),
	)
	return nil
}

// AdvanceTurn hands the move to the opponent.
func (e *Engine) AdvanceTurn() {
	e.turn = e.turn.Opponent()
}

// Play applies a move and advances the turn. On error nothing changes.
func (e *Engine) Play(col, row int) error {
	if err := e.MakeMove(col, row); err != nil {
		return err
	}
	e.AdvanceTurn()
	return nil
}

// ValidMoves lists every legal cell for the player to move, column by column.
func (e *Engine) ValidMoves() []Coord {
	var moves []Coord
	for col := 0; col < BoardSize; col++ {
		for row := 0; row < BoardSize; row++ {
			if e.IsValidMove(col, row) {
				moves = append(moves, Coord{col, row})
			}
		}
	}
	return moves
}
