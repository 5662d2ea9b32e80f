package tetris_test

import (
	"fmt"

	"github.com/plus3/blockfall/tetris"
)

// ExampleReduce walks a game through its phases using the pure reducer.
// Each call returns a new State; the previous value stays valid.
func ExampleReduce() {
	rng := tetris.NewRand(1)

	s := tetris.State{}
	fmt.Println(s.Phase)

	s, _ = tetris.Reduce(s, tetris.ActionStart, rng)
	fmt.Println(s.Phase, s.X, s.Y)

	s, _ = tetris.Reduce(s, tetris.ActionTick, rng)
	fmt.Println(s.Y)

	s, _ = tetris.Reduce(s, tetris.ActionTogglePause, rng)
	paused, _ := tetris.Reduce(s, tetris.ActionTick, rng)
	fmt.Println(paused.Phase, paused.Y)

	// Output:
	// not-started
	// running 4 0
	// 1
	// paused 1
}

// ExamplePiece_Rotate shows the clockwise transpose-then-reverse rotation.
func ExamplePiece_Rotate() {
	tee, _ := tetris.PieceAt(0)
	for _, row := range tee.Rotate().Shape {
		fmt.Println(row)
	}

	// Output:
	// [0 1]
	// [1 1]
	// [0 1]
}

// ExampleClearLines clears a completed bottom row.
func ExampleClearLines() {
	var board tetris.Board
	for x := range tetris.Width {
		board[tetris.Height-1][x] = 2
	}
	board[tetris.Height-2][0] = 1

	board, cleared := tetris.ClearLines(board)
	fmt.Println(cleared, cleared*tetris.LinePoints, board[tetris.Height-1][0])

	// Output:
	// 1 100 1
}
