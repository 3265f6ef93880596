package othello

const BoardSize = 8 // 8x8 grid

// Cell is the content of one board square.
type Cell int

const (
	Empty Cell = iota
	Black
	White
)

func (c Cell) String() string {
	switch c {
	case Empty:
		return "Empty"
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return "Invalid"
	}
}

// Player is whose move is next.
type Player int

const (
	PlayerBlack Player = iota
	PlayerWhite
)

// Opponent returns the other player.
func (p Player) Opponent() Player {
	if p == PlayerBlack {
		return PlayerWhite
	}
	return PlayerBlack
}

// Piece returns the cell kind the player places.
func (p Player) Piece() Cell {
	if p == PlayerBlack {
		return Black
	}
	return White
}

func (p Player) String() string {
	return p.Piece().String()
}

type Coord struct {
	Col, Row int
}

// Board is indexed [column][row].
type Board [BoardSize][BoardSize]Cell

// Directions for scanning captures
var directions = []struct{ dx, dy int }{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// NewBoard returns the standard opening position.
func NewBoard() Board {
	var b Board
	mid := BoardSize / 2
	b[mid-1][mid-1], b[mid][mid] = Black, Black
	b[mid-1][mid], b[mid][mid-1] = White, White

	return b
}

func inBounds(col, row int) bool {
	return col >= 0 && col < BoardSize && row >= 0 && row < BoardSize
}

// Get returns the cell at (col, row). Out-of-range coordinates read as Empty.
func (b *Board) Get(col, row int) Cell {
	if !inBounds(col, row) {
		return Empty
	}
	return b[col][row]
}

// Count returns how many cells hold the given kind.
func (b *Board) Count(kind Cell) int {
	n := 0
	for col := 0; col < BoardSize; col++ {
		for row := 0; row < BoardSize; row++ {
			if b[col][row] == kind {
				n++
			}
		}
	}
	return n
}

// bounded reports whether the ray from (col, row) along (dx, dy) crosses at
// least one opponent piece and then ends on a piece of self. It returns the
// crossed opponent cells when it does.
func (b *Board) bounded(col, row, dx, dy int, self Cell) ([]Coord, bool) {
	var run []Coord
	x, y := col+dx, row+dy
	for inBounds(x, y) {
		switch b[x][y] {
		case Empty:
			return nil, false
		case self:
			return run, len(run) > 0
		default:
			run = append(run, Coord{x, y})
		}
		x += dx
		y += dy
	}
	return nil, false
}
