package action_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/qzchen/quantumchess/pkg/action"
	"github.com/qzchen/quantumchess/pkg/board"
	"github.com/qzchen/quantumchess/pkg/qerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyMoveOnStandardBoard(t *testing.T) {
	b := board.NewStandardBoard()
	e := action.NewEngine(1)

	record, err := e.Apply(b, board.NewMove(board.NewSquare(5, 2), board.NewSquare(5, 4)))
	require.NoError(t, err)
	assert.Equal(t, "e2-e4", record)
	assert.Equal(t, board.Black, b.Turn())

	pawn := b.FindPiece(board.NewSquare(5, 4), board.Pawn)
	require.NotNil(t, pawn)
	assert.False(t, pawn.Superposed())
}

func TestApplyIllegalActionRejected(t *testing.T) {
	b := board.NewStandardBoard()
	e := action.NewEngine(1)

	_, err := e.Apply(b, board.NewMove(board.NewSquare(5, 2), board.NewSquare(5, 6)))
	assert.Error(t, err)
}

func TestApplySplitKnight(t *testing.T) {
	b := board.NewStandardBoard()
	e := action.NewEngine(1)

	record, err := e.Apply(b, board.NewSplit(board.NewSquare(2, 1), board.NewSquare(1, 3), board.NewSquare(3, 3)))
	require.NoError(t, err)
	assert.Equal(t, "Nb1-a3^c3", record)

	knight := b.FindPiece(board.NewSquare(1, 3), board.Knight)
	require.NotNil(t, knight)
	assert.True(t, knight.Superposed())
	assert.InDelta(t, 0.5, knight.ProbabilityAt(board.NewSquare(1, 3)), 1e-9)
	assert.InDelta(t, 0.5, knight.ProbabilityAt(board.NewSquare(3, 3)), 1e-9)
}

func TestApplyMergeRecombinesSuperposedKnight(t *testing.T) {
	b := board.NewStandardBoard()
	e := action.NewEngine(1)

	_, err := e.Apply(b, board.NewSplit(board.NewSquare(2, 1), board.NewSquare(1, 3), board.NewSquare(3, 3)))
	require.NoError(t, err)
	b.SetTurn(board.White)

	record, err := e.Apply(b, board.NewMerge(board.NewSquare(1, 3), board.NewSquare(3, 3), board.NewSquare(2, 5)))
	require.NoError(t, err)
	assert.Equal(t, "Na3^c3-b5", record)

	knight := b.FindPiece(board.NewSquare(2, 5), board.Knight)
	require.NotNil(t, knight)
	assert.False(t, knight.Superposed())
	assert.InDelta(t, 1.0, knight.ProbabilityAt(board.NewSquare(2, 5)), 1e-9)
}

func TestApplyAttackMeasuresDefender(t *testing.T) {
	b := board.NewEmptyBoard()
	whiteKing := board.NewPiece(board.White, board.King, board.NewSquare(5, 1))
	blackKing := board.NewPiece(board.Black, board.King, board.NewSquare(5, 8))
	knight := board.NewPiece(board.White, board.Knight, board.NewSquare(3, 5))
	pawn := board.NewPiece(board.Black, board.Pawn, board.NewSquare(1, 4))
	pawn.Place = []board.Placement{
		{At: board.NewSquare(1, 4), Probability: 0.5},
		{At: board.NewSquare(2, 4), Probability: 0.5},
	}
	b.AddPiece(whiteKing)
	b.AddPiece(blackKing)
	b.AddPiece(knight)
	b.AddPiece(pawn)

	e := &action.Engine{Rand: rand.New(rand.NewSource(7))}
	_, err := e.Apply(b, board.NewMove(board.NewSquare(3, 5), board.NewSquare(1, 4)))
	require.NoError(t, err)

	assert.False(t, pawn.Superposed())
}

func TestApplyPawnPromotion(t *testing.T) {
	b := board.NewEmptyBoard()
	pawn := board.NewPiece(board.White, board.Pawn, board.NewSquare(1, 7))
	b.AddPiece(board.NewPiece(board.White, board.King, board.NewSquare(5, 1)))
	b.AddPiece(board.NewPiece(board.Black, board.King, board.NewSquare(5, 8)))
	b.AddPiece(pawn)

	e := action.NewEngine(1)
	record, err := e.Apply(b, board.NewMove(board.NewSquare(1, 7), board.NewSquare(1, 8)))
	require.NoError(t, err)
	assert.Equal(t, "a8-Q", record)

	assert.Equal(t, board.Queen, pawn.Kind)
	assert.InDelta(t, 1.0, pawn.ProbabilityAt(board.NewSquare(1, 8)), 1e-9)
	assert.False(t, pawn.Superposed())
}

func TestApplyMoveThroughSuperposedObstacleSuperposesMover(t *testing.T) {
	b := board.NewEmptyBoard()
	rook := board.NewPiece(board.White, board.Rook, board.NewSquare(1, 1))
	knight := board.NewPiece(board.White, board.Knight, board.NewSquare(1, 4))
	knight.Place = []board.Placement{
		{At: board.NewSquare(1, 4), Probability: 0.5},
		{At: board.NewSquare(3, 4), Probability: 0.5},
	}
	b.AddPiece(board.NewPiece(board.White, board.King, board.NewSquare(5, 1)))
	b.AddPiece(board.NewPiece(board.Black, board.King, board.NewSquare(5, 8)))
	b.AddPiece(rook)
	b.AddPiece(knight)

	e := action.NewEngine(1)
	record, err := e.Apply(b, board.NewMove(board.NewSquare(1, 1), board.NewSquare(1, 8)))
	require.NoError(t, err)
	assert.Equal(t, "Ra1-a8", record)

	assert.True(t, rook.Superposed())
	assert.InDelta(t, 0.5, rook.ProbabilityAt(board.NewSquare(1, 1)), 1e-9)
	assert.InDelta(t, 0.5, rook.ProbabilityAt(board.NewSquare(1, 8)), 1e-9)
}

func TestApplyMeetSameKindSwapsSquares(t *testing.T) {
	b := board.NewEmptyBoard()
	attacker := board.NewPiece(board.White, board.Knight, board.NewSquare(2, 1))
	defender := board.NewPiece(board.White, board.Knight, board.NewSquare(3, 3))
	defender.Place = []board.Placement{
		{At: board.NewSquare(3, 3), Probability: 0.5},
		{At: board.NewSquare(5, 5), Probability: 0.5},
	}
	b.AddPiece(board.NewPiece(board.White, board.King, board.NewSquare(5, 1)))
	b.AddPiece(board.NewPiece(board.Black, board.King, board.NewSquare(5, 8)))
	b.AddPiece(attacker)
	b.AddPiece(defender)

	e := action.NewEngine(1)
	record, err := e.Apply(b, board.NewMove(board.NewSquare(2, 1), board.NewSquare(3, 3)))
	require.NoError(t, err)
	assert.Equal(t, "Nb1-c3", record)

	assert.InDelta(t, 1.0, attacker.ProbabilityAt(board.NewSquare(3, 3)), 1e-9)
	assert.InDelta(t, 0, attacker.ProbabilityAt(board.NewSquare(2, 1)), 1e-9)
	assert.InDelta(t, 0.5, defender.ProbabilityAt(board.NewSquare(2, 1)), 1e-9)
	assert.InDelta(t, 0.5, defender.ProbabilityAt(board.NewSquare(5, 5)), 1e-9)
	assert.InDelta(t, 0, defender.ProbabilityAt(board.NewSquare(3, 3)), 1e-9)
}

func TestApplyEmptySourceReportsNoSuchPiece(t *testing.T) {
	b := board.NewStandardBoard()
	e := action.NewEngine(1)

	_, err := e.Apply(b, board.NewMove(board.NewSquare(4, 4), board.NewSquare(4, 5)))
	require.Error(t, err)
	assert.True(t, errors.Is(err, qerr.ErrNoSuchPiece))
}

func TestApplyMergeAcrossPiecesReportsNoSuchPiece(t *testing.T) {
	b := board.NewStandardBoard()
	e := action.NewEngine(1)

	_, err := e.Apply(b, board.NewMerge(board.NewSquare(2, 1), board.NewSquare(7, 1), board.NewSquare(4, 4)))
	require.Error(t, err)
	assert.True(t, errors.Is(err, qerr.ErrNoSuchPiece))
}

func TestApplyCastlingQueenSide(t *testing.T) {
	b := board.NewEmptyBoard()
	b.AddPiece(board.NewPiece(board.White, board.Rook, board.NewSquare(1, 1)))
	b.AddPiece(board.NewPiece(board.White, board.King, board.NewSquare(5, 1)))
	b.AddPiece(board.NewPiece(board.Black, board.King, board.NewSquare(5, 8)))

	e := action.NewEngine(1)
	record, err := e.Apply(b, board.NewMove(board.NewSquare(1, 1), board.NewSquare(5, 1)))
	require.NoError(t, err)
	assert.Equal(t, "0-0-0", record)

	assert.NotNil(t, b.FindPiece(board.NewSquare(4, 1), board.Rook))
	assert.NotNil(t, b.FindPiece(board.NewSquare(3, 1), board.King))
}

func TestWinnerAfterKingCapture(t *testing.T) {
	b := board.NewEmptyBoard()
	whiteKing := board.NewPiece(board.White, board.King, board.NewSquare(5, 1))
	blackKing := board.NewPiece(board.Black, board.King, board.NewSquare(5, 8))
	b.AddPiece(whiteKing)
	b.AddPiece(blackKing)

	blackKing.Clear()
	assert.Equal(t, board.WhiteWins, b.Winner())
}
