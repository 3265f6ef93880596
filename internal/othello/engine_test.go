package othello

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func emptyEngine(turn Player) *Engine {
	engine := NewEngine(nil)
	engine.board = Board{}
	engine.turn = turn
	return engine
}

func TestNewEngine(t *testing.T) {
	engine := NewEngine(zaptest.NewLogger(t))
	board := engine.Board()

	assert.Equal(t, Black, board[3][3])
	assert.Equal(t, Black, board[4][4])
	assert.Equal(t, White, board[3][4])
	assert.Equal(t, White, board[4][3])

	assert.Equal(t, 2, board.Count(Black))
	assert.Equal(t, 2, board.Count(White))
	assert.Equal(t, 60, board.Count(Empty))
	assert.Equal(t, PlayerBlack, engine.Turn())
}

func TestPlayer(t *testing.T) {
	assert.Equal(t, PlayerWhite, PlayerBlack.Opponent())
	assert.Equal(t, PlayerBlack, PlayerWhite.Opponent())
	assert.Equal(t, Black, PlayerBlack.Piece())
	assert.Equal(t, White, PlayerWhite.Piece())
	assert.Equal(t, "White", PlayerWhite.String())
}

func TestEngine_IsValidMove(t *testing.T) {
	t.Run("Rejects off-board cells", func(t *testing.T) {
		engine := NewEngine(nil)

		for _, c := range []Coord{{-1, 0}, {0, -1}, {8, 0}, {0, 8}, {8, 8}, {-1, -1}} {
			assert.False(t, engine.IsValidMove(c.Col, c.Row), "cell %v", c)
		}
	})

	t.Run("Rejects occupied cells", func(t *testing.T) {
		engine := NewEngine(nil)

		assert.False(t, engine.IsValidMove(3, 3))
		assert.False(t, engine.IsValidMove(3, 4))
	})

	t.Run("Opening moves for Black", func(t *testing.T) {
		engine := NewEngine(nil)

		want := []Coord{{2, 4}, {3, 5}, {4, 2}, {5, 3}}
		assert.Equal(t, want, engine.ValidMoves())
	})

	t.Run("Opening moves for White", func(t *testing.T) {
		engine := NewEngine(nil)
		engine.AdvanceTurn()

		want := []Coord{{2, 3}, {3, 2}, {4, 5}, {5, 4}}
		assert.Equal(t, want, engine.ValidMoves())
	})

	t.Run("Adjacent own piece without opponent run is not a capture", func(t *testing.T) {
		engine := NewEngine(nil)

		// (2,3) touches Black (3,3) directly; the diagonal through White
		// (3,4) runs into the empty (4,5)
		assert.False(t, engine.IsValidMove(2, 3))
	})

	t.Run("Run ending at the edge is not a capture", func(t *testing.T) {
		engine := emptyEngine(PlayerBlack)
		for col := 1; col < BoardSize; col++ {
			engine.board[col][0] = White
		}

		assert.False(t, engine.IsValidMove(0, 0))
	})

	t.Run("Does not mutate the board", func(t *testing.T) {
		engine := NewEngine(nil)
		before := engine.Board()

		for col := -1; col <= BoardSize; col++ {
			for row := -1; row <= BoardSize; row++ {
				engine.IsValidMove(col, row)
			}
		}

		assert.Equal(t, before, engine.Board())
	})
}

func TestEngine_Play(t *testing.T) {
	t.Run("Opening capture flips the bounded piece", func(t *testing.T) {
		// Given: the opening position
		engine := NewEngine(zaptest.NewLogger(t))

		// When: Black plays (2,4)
		err := engine.Play(2, 4)

		// Then: White (3,4) is captured and White is to move
		require.NoError(t, err)
		want := NewBoard()
		want[2][4] = Black
		want[3][4] = Black
		if diff := cmp.Diff(want, engine.Board()); diff != "" {
			t.Errorf("board mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, 4, engine.Count(Black))
		assert.Equal(t, 1, engine.Count(White))
		assert.Equal(t, 5, 64-engine.Count(Empty))
		assert.Equal(t, PlayerWhite, engine.Turn())
	})

	t.Run("Illegal move leaves board and turn alone", func(t *testing.T) {
		engine := NewEngine(nil)
		before := engine.Board()

		err := engine.Play(2, 3)

		assert.ErrorIs(t, err, ErrIllegalMove)
		assert.Equal(t, before, engine.Board())
		assert.Equal(t, PlayerBlack, engine.Turn())
	})

	t.Run("Occupied and off-board moves are typed errors", func(t *testing.T) {
		engine := NewEngine(nil)

		assert.ErrorIs(t, engine.Play(3, 3), ErrCellOccupied)
		assert.ErrorIs(t, engine.Play(8, 0), ErrOutOfBounds)
		assert.ErrorIs(t, engine.Play(0, -1), ErrOutOfBounds)
		assert.Equal(t, PlayerBlack, engine.Turn())
	})

	t.Run("Turn alternates on every applied move", func(t *testing.T) {
		engine := NewEngine(nil)

		require.NoError(t, engine.Play(2, 4)) // Black
		assert.Equal(t, PlayerWhite, engine.Turn())

		assert.Error(t, engine.Play(0, 0))
		assert.Equal(t, PlayerWhite, engine.Turn())

		require.NoError(t, engine.Play(2, 5)) // White
		assert.Equal(t, PlayerBlack, engine.Turn())

		require.NoError(t, engine.Play(3, 5)) // Black
		assert.Equal(t, PlayerWhite, engine.Turn())
	})
}

func TestEngine_MakeMove(t *testing.T) {
	t.Run("Flips several directions at once", func(t *testing.T) {
		// Given: Black at the three ends, White in between
		//   col: 0 1 2 3
		//   row 0: B . . B
		//   row 1: . W . W
		//   row 2: . . W W
		//   row 3: W . W _   <- Black plays (3,3)
		engine := emptyEngine(PlayerBlack)
		engine.board[0][0] = Black
		engine.board[1][1] = White
		engine.board[2][2] = White
		engine.board[3][0] = Black
		engine.board[3][1] = White
		engine.board[3][2] = White
		engine.board[0][3] = White // open line to the left: no anchor
		engine.board[2][3] = White

		// When
		err := engine.MakeMove(3, 3)

		// Then: diagonal and vertical runs flip, the unanchored row does not
		require.NoError(t, err)
		assert.Equal(t, Black, engine.board[3][3])
		assert.Equal(t, Black, engine.board[1][1])
		assert.Equal(t, Black, engine.board[2][2])
		assert.Equal(t, Black, engine.board[3][1])
		assert.Equal(t, Black, engine.board[3][2])
		assert.Equal(t, White, engine.board[2][3])
		assert.Equal(t, White, engine.board[0][3])
		assert.Equal(t, PlayerBlack, engine.Turn(), "MakeMove must not advance the turn")
	})

	t.Run("Gap breaks the run", func(t *testing.T) {
		engine := emptyEngine(PlayerWhite)
		engine.board[0][1] = Black
		engine.board[0][2] = White // anchor for a legal move
		engine.board[1][0] = Black
		// (2,0) empty, (3,0) White: the row has a gap
		engine.board[3][0] = White

		require.NoError(t, engine.MakeMove(0, 0))

		assert.Equal(t, White, engine.board[0][1])
		assert.Equal(t, Black, engine.board[1][0])
	})

	t.Run("Every cell keeps a single known state", func(t *testing.T) {
		engine := NewEngine(nil)

		for i := 0; i < 20; i++ {
			moves := engine.ValidMoves()
			if len(moves) == 0 {
				break
			}
			require.NoError(t, engine.Play(moves[0].Col, moves[0].Row))
		}

		board := engine.Board()
		assert.Equal(t, 64, board.Count(Empty)+board.Count(Black)+board.Count(White))
	})
}

func TestBoard_Get(t *testing.T) {
	b := NewBoard()

	assert.Equal(t, Black, b.Get(3, 3))
	assert.Equal(t, Empty, b.Get(-1, 3))
	assert.Equal(t, Empty, b.Get(3, 8))
}
