package board_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/qzchen/quantumchess/pkg/board"
	"github.com/qzchen/quantumchess/pkg/qerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSquare(t *testing.T) {
	sq, err := board.ParseSquareStr("e4")
	require.NoError(t, err)
	assert.Equal(t, board.NewSquare(5, 4), sq)
	assert.Equal(t, "e4", sq.String())

	_, err = board.ParseSquareStr("i9")
	assert.True(t, errors.Is(err, qerr.ErrInvalidCoordinate))

	_, err = board.ParseSquareStr("e44")
	assert.True(t, errors.Is(err, qerr.ErrInvalidCoordinate))
}

func TestStandardBoardWinner(t *testing.T) {
	b := board.NewStandardBoard()
	assert.Equal(t, board.NoWinner, b.Winner())
	assert.Equal(t, board.White, b.Turn())
	assert.Len(t, b.Pieces(), 32)
}

func TestWinnerOnKingCapture(t *testing.T) {
	b := board.NewEmptyBoard()
	wk := board.NewPiece(board.White, board.King, board.NewSquare(5, 1))
	bk := board.NewPiece(board.Black, board.King, board.NewSquare(5, 8))
	b.AddPiece(wk)
	b.AddPiece(bk)

	assert.Equal(t, board.NoWinner, b.Winner())

	bk.Clear()
	assert.Equal(t, board.WhiteWins, b.Winner())

	wk.Clear()
	assert.Equal(t, board.Draw, b.Winner())
}

func TestForkIsIndependent(t *testing.T) {
	b := board.NewStandardBoard()
	fork := b.Fork()

	fork.Pieces()[0].Clear()
	assert.True(t, b.Pieces()[0].Alive())
	assert.False(t, fork.Pieces()[0].Alive())
}

func TestMeasureCollapsesFullDistribution(t *testing.T) {
	p := board.NewPiece(board.White, board.Knight, board.NewSquare(1, 3))
	p.Place = []board.Placement{
		{At: board.NewSquare(1, 3), Probability: 0.5},
		{At: board.NewSquare(3, 3), Probability: 0.5},
	}

	sq, ok := p.Measure(rand.New(rand.NewSource(1)))
	require.True(t, ok, "total probability 1 always yields an outcome")
	assert.Contains(t, []board.Square{board.NewSquare(1, 3), board.NewSquare(3, 3)}, sq)
	assert.False(t, p.Superposed())
	assert.InDelta(t, 1.0, p.ProbabilityAt(sq), 1e-9)
}

func TestMeasureWithStrippedMassMayKill(t *testing.T) {
	// A capture elsewhere stripped half the piece's mass; measurement either
	// lands on the surviving placement or the piece dies.
	p := board.NewPiece(board.White, board.Knight, board.NewSquare(1, 3))
	p.Place = []board.Placement{{At: board.NewSquare(1, 3), Probability: 0.5}}

	sq, ok := p.Measure(rand.New(rand.NewSource(2)))
	if ok {
		assert.Equal(t, board.NewSquare(1, 3), sq)
		assert.InDelta(t, 1.0, p.ProbabilityAt(sq), 1e-9)
	} else {
		assert.False(t, p.Alive())
	}
}

func TestPieceSuperposition(t *testing.T) {
	p := board.NewPiece(board.White, board.Rook, board.NewSquare(1, 1))
	assert.False(t, p.Superposed())

	p.Remove(board.NewSquare(1, 1), 0.5)
	p.Add(board.NewSquare(4, 1), 0.5)
	assert.True(t, p.Superposed())
	assert.InDelta(t, 0.5, p.ProbabilityAt(board.NewSquare(1, 1)), 1e-9)
	assert.InDelta(t, 0.5, p.ProbabilityAt(board.NewSquare(4, 1)), 1e-9)
}
