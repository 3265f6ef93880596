package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"othello/internal/config"
	"othello/internal/frameloop"
	"othello/internal/othello"
)

var configPath = flag.String("config", "", "path to configuration file (environment only when empty)")

// frameHost hands the armed frame callback to the next ebiten Update.
type frameHost struct {
	pending func(time.Duration)
	start   time.Time
}

func (h *frameHost) RequestFrame(cb func(time.Duration)) {
	h.pending = cb
}

func (h *frameHost) fire() {
	cb := h.pending
	if cb == nil {
		return
	}
	h.pending = nil
	cb(time.Since(h.start))
}

type Game struct {
	host    *frameHost
	loop    *frameloop.Scheduler
	board   *BoardView
	boardID uuid.UUID
}

// Initialize the game: engine, board view and the frame loop driving it
func NewGame(cfg *config.Config, logger *zap.Logger) *Game {
	host := &frameHost{start: time.Now()}

	var opts []frameloop.Option
	if cfg.Loop.StopWhenEmpty {
		opts = append(opts, frameloop.WithStopWhenEmpty())
	}
	loop := frameloop.New(host, logger.Named("frameloop"), opts...)

	engine := othello.NewEngine(logger.Named("engine"))
	board := NewBoardView(engine, cfg.Window.BoardRatio, logger.Named("board"))
	board.Resize(cfg.Window.Width, cfg.Window.Height)

	boardID := loop.Add(board)
	loop.Run()

	return &Game{
		host:    host,
		loop:    loop,
		board:   board,
		boardID: boardID,
	}
}

// Layout follows the window so the board can stay square and centered
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	g.board.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Update runs one frame of the loop
func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.loop.Remove(g.boardID)
		return ebiten.Termination
	}
	g.host.fire()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.board.Draw(screen)
}

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	game := NewGame(cfg, logger)

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	logger.Info("starting othello",
		zap.String("title", cfg.Window.Title),
		zap.Float64("board_ratio", cfg.Window.BoardRatio),
	)

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("game loop failed", zap.Error(err))
	}
}

func initLogger(levelName, format string) (*zap.Logger, error) {
	var level zapcore.Level
	switch levelName {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
