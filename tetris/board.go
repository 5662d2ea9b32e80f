// Package tetris implements the game-state engine of a falling-block puzzle:
// pieces, collision, merging, line clearing, scoring and the phase machine.
// Every operation works on values, so a Board or State handed to a caller is
// never changed behind its back.
package tetris

const (
	Width  = 10
	Height = 20

	// LinePoints is the score awarded per cleared row.
	LinePoints = 100
)

// Cell is a board or shape cell. Empty is 0, values 1-5 are piece colours.
type Cell uint8

const Empty Cell = 0

// Board is the playing field, indexed [row][column] with row 0 at the top.
type Board [Height][Width]Cell

// At returns the cell at column x, row y. Coordinates outside the board read
// as Empty.
func (b *Board) At(x, y int) Cell {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return Empty
	}
	return b[y][x]
}

// RowFull reports whether row y has no empty cell.
func (b *Board) RowFull(y int) bool {
	for _, c := range b[y] {
		if c == Empty {
			return false
		}
	}
	return true
}

// Occupied returns the number of non-empty cells.
func (b *Board) Occupied() int {
	n := 0
	for y := range b {
		for _, c := range b[y] {
			if c != Empty {
				n++
			}
		}
	}
	return n
}

// Collides reports whether placing piece with its top-left cell at (x, y)
// would put a filled cell left or right of the board, below the bottom row,
// or onto an occupied cell. Rows above the board are allowed.
func Collides(board Board, piece Piece, x, y int) bool {
	for col, row := range piece.Cells() {
		bx := x + col
		by := y + row

		if bx < 0 || bx >= Width || by >= Height {
			return true
		}

		if by >= 0 && board[by][bx] != Empty {
			return true
		}
	}
	return false
}

// Merge writes the filled cells of piece at (x, y) into a copy of board using
// the piece colour. Cells that land above the board are dropped.
func Merge(board Board, piece Piece, x, y int) Board {
	for col, row := range piece.Cells() {
		bx := x + col
		by := y + row
		if by < 0 || by >= Height || bx < 0 || bx >= Width {
			continue
		}
		board[by][bx] = piece.Color
	}
	return board
}

// ClearLines removes every full row in a single pass and shifts the rows
// above it down, filling the top with empty rows. It returns the new board and
// the number of rows removed.
func ClearLines(board Board) (Board, int) {
	var cleared Board
	write := Height - 1
	for y := Height - 1; y >= 0; y-- {
		if board.RowFull(y) {
			continue
		}
		cleared[write] = board[y]
		write--
	}
	return cleared, write + 1
}

// DropRow returns the lowest row the piece can occupy in column x, probing
// downward from the top of the board until the next row would collide.
func DropRow(board Board, piece Piece, x int) int {
	if piece.IsZero() {
		return 0
	}

	y := 0
	for !Collides(board, piece, x, y+1) {
		y++
	}
	return y
}
