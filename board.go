package main

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"othello/internal/geometry"
	"othello/internal/input"
	"othello/internal/othello"
)

const (
	pieceRadius = 0.4 // of a cell
	rimWidth    = 2
	gridWidth   = 1
)

// BoardView draws the board and turns clicks into moves. It is driven by the
// frame loop: Start enables input, Update polls it.
type BoardView struct {
	engine  *othello.Engine
	logger  *zap.Logger
	ratio   float64
	area    geometry.Square
	screenW int
	screenH int
	input   bool
}

func NewBoardView(engine *othello.Engine, ratio float64, logger *zap.Logger) *BoardView {
	return &BoardView{
		engine: engine,
		logger: logger,
		ratio:  ratio,
	}
}

// Resize recomputes the board square for a new surface size.
func (b *BoardView) Resize(w, h int) {
	if w == b.screenW && h == b.screenH {
		return
	}
	b.screenW, b.screenH = w, h
	b.area = geometry.Fit(w, h, b.ratio, othello.BoardSize)
	b.logger.Debug("board resized",
		zap.Int("width", w),
		zap.Int("height", h),
		zap.Float64("board_size", b.area.Size),
	)
}

func (b *BoardView) Start() {
	b.input = true
	b.logger.Info("board ready", zap.Stringer("player", b.engine.Turn()))
}

func (b *BoardView) Update(elapsed time.Duration) {
	if !b.input {
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		b.handleClick(float64(x), float64(y))
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		b.handleClick(float64(x), float64(y))
	}
}

func (b *BoardView) handleClick(x, y float64) {
	cell, err := input.Click(b.engine, b.area, x, y)
	switch {
	case err == nil:
		b.logger.Info("move played",
			zap.Int("col", cell.Col),
			zap.Int("row", cell.Row),
			zap.Stringer("next", b.engine.Turn()),
		)
	case errors.Is(err, input.ErrOffBoard):
		// ignored
	case errors.Is(err, othello.ErrIllegalMove), errors.Is(err, othello.ErrCellOccupied):
		b.logger.Debug("move rejected", zap.Error(err))
	default:
		b.logger.Warn("unexpected move error", zap.Error(err))
	}
}

func (b *BoardView) status() string {
	return fmt.Sprintf("Current player: %s", b.engine.Turn())
}

func (b *BoardView) Draw(screen *ebiten.Image) {
	screen.Fill(pageColor)

	area := b.area
	cell := float32(area.CellSize())
	left, top, size := float32(area.X), float32(area.Y), float32(area.Size)

	vector.DrawFilledRect(screen, left, top, size, size, boardColor, false)

	for i := 0; i <= othello.BoardSize; i++ {
		offset := cell * float32(i)
		vector.StrokeLine(screen, left, top+offset, left+size, top+offset, gridWidth, gridColor, false)
		vector.StrokeLine(screen, left+offset, top, left+offset, top+size, gridWidth, gridColor, false)
	}

	board := b.engine.Board()
	radius := cell * pieceRadius
	for col := 0; col < othello.BoardSize; col++ {
		for row := 0; row < othello.BoardSize; row++ {
			var pieceColor color.Color
			switch board[col][row] {
			case othello.Black:
				pieceColor = blackPieceColor
			case othello.White:
				pieceColor = whitePieceColor
			default:
				continue
			}
			cx, cy := area.Center(col, row)
			vector.DrawFilledCircle(screen, float32(cx), float32(cy), radius, pieceColor, true)
			vector.StrokeCircle(screen, float32(cx), float32(cy), radius, rimWidth, rimColor, true)
		}
	}

	// Draw hints for the player to move
	hintColor := blackHintColor
	if b.engine.Turn() == othello.PlayerWhite {
		hintColor = whiteHintColor
	}
	for _, move := range b.engine.ValidMoves() {
		cx, cy := area.Center(move.Col, move.Row)
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), radius, hintColor, true)
	}

	msg := b.status()
	ebitenutil.DebugPrintAt(screen, msg, b.screenW/2-len(msg)*3, 10)
}
