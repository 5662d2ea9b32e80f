package tetris_test

import (
	"fmt"
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPiece(t *testing.T, i int) tetris.Piece {
	t.Helper()
	p, err := tetris.PieceAt(i)
	require.NoError(t, err)
	return p
}

func fillRow(b *tetris.Board, y int, c tetris.Cell) {
	for x := range tetris.Width {
		b[y][x] = c
	}
}

func TestCollides(t *testing.T) {
	square := mustPiece(t, 2)

	var board tetris.Board
	board[19][0] = 4

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"open field", 4, 5, false},
		{"left wall", -1, 5, true},
		{"flush left", 0, 5, false},
		{"right wall", tetris.Width - 1, 5, true},
		{"flush right", tetris.Width - 2, 5, false},
		{"floor", 4, tetris.Height - 1, true},
		{"resting on floor", 4, tetris.Height - 2, false},
		{"occupied cell", 0, 18, true},
		{"above the board", 4, -1, false},
		{"fully above the board", 4, -5, false},
		{"above the board but off the side", -1, -3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tetris.Collides(board, square, tt.x, tt.y))
		})
	}
}

func TestCollidesIgnoresShapeHoles(t *testing.T) {
	tee := mustPiece(t, 0) // [[1,1,1],[0,1,0]]

	var board tetris.Board
	board[19][0] = 2
	board[19][2] = 2

	assert.False(t, tetris.Collides(board, tee, 0, 18), "holes in the shape must not hit the board")
	board[19][1] = 2
	assert.True(t, tetris.Collides(board, tee, 0, 18))
}

func TestMergeDoesNotMutateInput(t *testing.T) {
	var board tetris.Board
	board[19][9] = 3
	before := board

	merged := tetris.Merge(board, mustPiece(t, 0), 0, 0)

	assert.Equal(t, before, board)
	assert.Equal(t, tetris.Cell(1), merged[0][0])
	assert.Equal(t, tetris.Cell(1), merged[0][1])
	assert.Equal(t, tetris.Cell(1), merged[0][2])
	assert.Equal(t, tetris.Empty, merged[1][0])
	assert.Equal(t, tetris.Cell(1), merged[1][1])
	assert.Equal(t, board[19], merged[19], "rows not touched by the piece are carried over")
}

func TestMergeUsesPieceColor(t *testing.T) {
	piece := tetris.Piece{Shape: tetris.Shape{{9, 9}}, Color: 4}
	merged := tetris.Merge(tetris.Board{}, piece, 3, 7)
	assert.Equal(t, tetris.Cell(4), merged[7][3])
	assert.Equal(t, tetris.Cell(4), merged[7][4])
	assert.Equal(t, 2, merged.Occupied())
}

func TestMergeDropsCellsAboveBoard(t *testing.T) {
	merged := tetris.Merge(tetris.Board{}, mustPiece(t, 3), 0, -2)
	// [[4,0],[4,4],[4,4]] at y=-2 leaves only the last row visible
	assert.Equal(t, 2, merged.Occupied())
	assert.Equal(t, tetris.Cell(4), merged[0][0])
	assert.Equal(t, tetris.Cell(4), merged[0][1])
}

func TestClearLinesWithoutFullRows(t *testing.T) {
	var board tetris.Board
	board[19][0] = 1
	board[18][5] = 2
	board[0][9] = 3

	cleared, n := tetris.ClearLines(board)
	assert.Equal(t, 0, n)
	assert.Equal(t, board, cleared)
}

func TestClearLinesRemovesFullRows(t *testing.T) {
	for k := 1; k <= 4; k++ {
		t.Run(fmt.Sprintf("%d rows", k), func(t *testing.T) {
			var board tetris.Board
			for i := range k {
				fillRow(&board, tetris.Height-1-i*2, 5)
			}
			board[tetris.Height-2][0] = 1

			cleared, n := tetris.ClearLines(board)

			assert.Equal(t, k, n)
			assert.Len(t, cleared, tetris.Height)
			assert.Len(t, cleared[0], tetris.Width)
			for y := range k {
				assert.Equal(t, [tetris.Width]tetris.Cell{}, cleared[y], "row %d should be empty", y)
			}
			assert.Equal(t, tetris.Cell(1), cleared[tetris.Height-1][0], "the marker falls to the floor")
			assert.Equal(t, board.Occupied()-k*tetris.Width, cleared.Occupied())
		})
	}
}

func TestClearLinesIsSinglePass(t *testing.T) {
	var board tetris.Board
	fillRow(&board, 19, 1)
	fillRow(&board, 18, 2)
	fillRow(&board, 17, 3)
	board[16][4] = 4

	cleared, n := tetris.ClearLines(board)
	assert.Equal(t, 3, n)
	assert.Equal(t, tetris.Cell(4), cleared[19][4])
	assert.Equal(t, 1, cleared.Occupied())
}

func TestCompleteRowScenario(t *testing.T) {
	var board tetris.Board
	fillRow(&board, 19, 2)
	board[19][3] = tetris.Empty
	board[18][7] = 5

	column := tetris.Piece{Shape: tetris.Shape{{1}}, Color: 1}
	require.False(t, tetris.Collides(board, column, 3, 19))

	merged := tetris.Merge(board, column, 3, 19)
	cleared, n := tetris.ClearLines(merged)

	assert.Equal(t, 1, n)
	assert.Equal(t, 100, n*tetris.LinePoints)
	assert.Equal(t, [tetris.Width]tetris.Cell{}, cleared[0])
	assert.Equal(t, tetris.Cell(5), cleared[19][7], "row 18 shifts into row 19")
	assert.Equal(t, 1, cleared.Occupied())
}

func TestDropRow(t *testing.T) {
	square := mustPiece(t, 2)

	var board tetris.Board
	assert.Equal(t, tetris.Height-2, tetris.DropRow(board, square, 4))

	board[15][5] = 1
	assert.Equal(t, 13, tetris.DropRow(board, square, 4))
	assert.Equal(t, tetris.Height-2, tetris.DropRow(board, square, 6))
	assert.Equal(t, 0, tetris.DropRow(board, tetris.Piece{}, 4))
}

func TestBoardAt(t *testing.T) {
	var board tetris.Board
	board[2][3] = 4
	assert.Equal(t, tetris.Cell(4), board.At(3, 2))
	assert.Equal(t, tetris.Empty, board.At(-1, 2))
	assert.Equal(t, tetris.Empty, board.At(3, tetris.Height))
}
