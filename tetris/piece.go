package tetris

import (
	"errors"
	"fmt"
	"iter"
	"math/rand/v2"
	"slices"
)

// ErrUnknownPiece is returned when a piece index is outside the catalogue.
var ErrUnknownPiece = errors.New("tetris: unknown piece")

// Shape is a rectangular grid of cells, row-major. Zero cells are holes.
type Shape [][]Cell

// Piece is a shape with the colour used when it is merged into the board.
type Piece struct {
	Shape Shape
	Color Cell
}

var catalogue = [...]Piece{
	{Shape: Shape{
		{1, 1, 1},
		{0, 1, 0},
	}, Color: 1},
	{Shape: Shape{
		{2, 2, 0},
		{0, 2, 2},
	}, Color: 2},
	{Shape: Shape{
		{3, 3},
		{3, 3},
	}, Color: 3},
	{Shape: Shape{
		{4, 0},
		{4, 4},
		{4, 4},
	}, Color: 4},
	{Shape: Shape{
		{0, 5},
		{5, 5},
		{5, 0},
	}, Color: 5},
}

// PieceCount is the number of shapes pieces are drawn from.
const PieceCount = len(catalogue)

// PieceAt returns a copy of the i-th catalogue piece.
func PieceAt(i int) (Piece, error) {
	if i < 0 || i >= PieceCount {
		return Piece{}, fmt.Errorf("%w: index %d", ErrUnknownPiece, i)
	}
	return catalogue[i].clone(), nil
}

// Rand is the random source pieces are drawn with. *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// NewRand returns a deterministic source for the given seed.
func NewRand(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomPiece picks a catalogue piece uniformly.
func RandomPiece(r Rand) Piece {
	return catalogue[r.IntN(PieceCount)].clone()
}

// IsZero reports whether p holds no shape.
func (p Piece) IsZero() bool {
	return len(p.Shape) == 0
}

// Width returns the number of columns of the shape.
func (p Piece) Width() int {
	if len(p.Shape) == 0 {
		return 0
	}
	return len(p.Shape[0])
}

// Height returns the number of rows of the shape.
func (p Piece) Height() int {
	return len(p.Shape)
}

// Cells yields the column and row of every filled cell of the shape.
func (p Piece) Cells() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for row := range p.Shape {
			for col, c := range p.Shape[row] {
				if c == Empty {
					continue
				}
				if !yield(col, row) {
					return
				}
			}
		}
	}
}

// Rotate returns the piece turned 90 degrees clockwise: the shape is
// transposed and then every resulting row is reversed.
func (p Piece) Rotate() Piece {
	if p.IsZero() {
		return p
	}

	rows, cols := p.Height(), p.Width()
	rotated := make(Shape, cols)
	for c := range cols {
		rotated[c] = make([]Cell, rows)
		for r := range rows {
			rotated[c][r] = p.Shape[r][c]
		}
		slices.Reverse(rotated[c])
	}

	return Piece{Shape: rotated, Color: p.Color}
}

// Equal reports whether both pieces have the same colour and shape.
func (p Piece) Equal(other Piece) bool {
	if p.Color != other.Color || len(p.Shape) != len(other.Shape) {
		return false
	}
	for r := range p.Shape {
		if len(p.Shape[r]) != len(other.Shape[r]) {
			return false
		}
		for c := range p.Shape[r] {
			if p.Shape[r][c] != other.Shape[r][c] {
				return false
			}
		}
	}
	return true
}

func (p Piece) clone() Piece {
	shape := make(Shape, len(p.Shape))
	for i := range shape {
		shape[i] = make([]Cell, len(p.Shape[i]))
		copy(shape[i], p.Shape[i])
	}
	return Piece{Shape: shape, Color: p.Color}
}
